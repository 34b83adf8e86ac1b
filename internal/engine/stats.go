package engine

import (
	"context"
	"math"

	"github.com/jai-bhavaani/new-tracker/internal/storage"
)

// StatsUpdate is a partial snapshot. Nil fields keep their current value.
//
// Set fields are ABSOLUTE replacements, not deltas: callers read the current
// snapshot and pass currentValue + delta themselves (LogActivity does this).
// The aggregator only owns the streak and the day rollover.
type StatsUpdate struct {
	StudyHours      *float64
	WorkoutMins     *float64
	WaterLitres     *float64
	MindfulnessMins *float64
	SleepHours      *float64
	DistractionMins *float64
	TasksCompleted  *int
}

// ReadStats returns the current snapshot, or a zero snapshot if none exists
// or the stored one is corrupt.
func (s *Service) ReadStats(ctx context.Context) (storage.Snapshot, error) {
	var snap storage.Snapshot
	found, err := s.store.ReadJSON(ctx, fullKey(keyStats), &snap)
	if err != nil || !found {
		return storage.Snapshot{}, nil
	}
	return snap, nil
}

// UpdateStats merges the partial into the snapshot and maintains the streak:
//
//   - First update on a new day-key exactly one day after the previous one
//     increments the streak.
//   - A gap of more than one day, or no prior value, resets the streak to 1.
//   - Updates within the same day-key leave the streak unchanged.
//
// The stats day rolls over at StatsResetHour (02:00), so activity logged at
// 01:30 still lands on the previous day and a late night does not break an
// ongoing streak.
func (s *Service) UpdateStats(ctx context.Context, upd StatsUpdate) (storage.Snapshot, error) {
	cur, err := s.ReadStats(ctx)
	if err != nil {
		return storage.Snapshot{}, err
	}

	todayKey := ResolveDayKey(s.now(), StatsResetHour)
	lastKey := NormalizeDayKey(cur.LastUpdated)

	streak := cur.StreakDays
	if lastKey != todayKey {
		if diff, ok := DiffDays(lastKey, todayKey); ok && diff == 1 {
			streak++
		} else {
			streak = 1
		}
	}

	next := cur
	if upd.StudyHours != nil {
		next.StudyHours = *upd.StudyHours
	}
	if upd.WorkoutMins != nil {
		next.WorkoutMins = *upd.WorkoutMins
	}
	if upd.WaterLitres != nil {
		next.WaterLitres = *upd.WaterLitres
	}
	if upd.MindfulnessMins != nil {
		next.MindfulnessMins = *upd.MindfulnessMins
	}
	if upd.SleepHours != nil {
		next.SleepHours = *upd.SleepHours
	}
	if upd.DistractionMins != nil {
		next.DistractionMins = *upd.DistractionMins
	}
	if upd.TasksCompleted != nil {
		next.TasksCompleted = *upd.TasksCompleted
	}
	next.StreakDays = streak
	next.LastUpdated = todayKey

	if err := s.store.WriteJSON(ctx, fullKey(keyStats), next); err != nil {
		return storage.Snapshot{}, err
	}
	return next, nil
}

// MaxDailyStudyHours caps the study accumulator for a single day.
const MaxDailyStudyHours = 24

// LogResult reports everything a single log gesture changed.
type LogResult struct {
	Snapshot  storage.Snapshot
	Record    storage.Record
	XPAwarded int
	TotalXP   int
}

// LogActivity is the one-gesture flow behind `trk log`: fold the record into
// the daily snapshot (computing the new absolute values), award category XP,
// and append the detailed record to the day's log.
func (s *Service) LogActivity(ctx context.Context, cat Category, rec storage.Record) (*LogResult, error) {
	if err := ValidateRecord(cat, rec); err != nil {
		return nil, err
	}
	cur, err := s.ReadStats(ctx)
	if err != nil {
		return nil, err
	}

	var upd StatsUpdate
	xp := 0
	switch cat {
	case CategoryStudy:
		total := math.Min(cur.StudyHours+rec.Hours, MaxDailyStudyHours)
		upd.StudyHours = &total
		xp = int(math.Round(rec.Hours * XPPerStudyHour))
	case CategoryWorkout:
		total := cur.WorkoutMins + rec.Mins
		upd.WorkoutMins = &total
		xp = int(math.Round(rec.Mins / WorkoutMinsPerXP))
	case CategoryWellness:
		water := cur.WaterLitres + rec.Water
		meditation := cur.MindfulnessMins + rec.Meditation
		upd.WaterLitres = &water
		upd.MindfulnessMins = &meditation
		if rec.Water > 0 {
			xp += XPPerWaterLog
		}
		if rec.Meditation > 0 {
			xp += int(math.Round(rec.Meditation / MeditationMinsPerXP))
		}
	case CategorySleep:
		total := cur.SleepHours + rec.Hours
		upd.SleepHours = &total
		xp = int(math.Round(rec.Hours * XPPerSleepHour))
	case CategoryDistractions:
		total := cur.DistractionMins + rec.Mins
		upd.DistractionMins = &total
	}

	snap, err := s.UpdateStats(ctx, upd)
	if err != nil {
		return nil, err
	}

	total := 0
	if xp > 0 {
		if total, err = s.AddXP(ctx, xp); err != nil {
			return nil, err
		}
	}

	stamped, err := s.AppendActivity(ctx, cat, rec)
	if err != nil {
		return nil, err
	}

	return &LogResult{Snapshot: snap, Record: stamped, XPAwarded: xp, TotalXP: total}, nil
}
