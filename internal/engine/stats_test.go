package engine

import (
	"context"
	"testing"
	"time"

	"github.com/jai-bhavaani/new-tracker/internal/storage"
)

func floatPtr(v float64) *float64 { return &v }

func TestFirstUpdateStartsStreak(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	pinClock(svc, localTime(2026, time.March, 10, 12, 0))

	snap, err := svc.UpdateStats(ctx, StatsUpdate{StudyHours: floatPtr(2)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if snap.StreakDays != 1 {
		t.Fatalf("streak=%d, want 1", snap.StreakDays)
	}
	if snap.StudyHours != 2 {
		t.Fatalf("studyHours=%v, want 2", snap.StudyHours)
	}
	if snap.LastUpdated != "2026-03-10" {
		t.Fatalf("lastUpdated=%q", snap.LastUpdated)
	}
}

func TestStreakAcrossDays(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	// Day 1.
	pinClock(svc, localTime(2026, time.March, 10, 12, 0))
	if _, err := svc.UpdateStats(ctx, StatsUpdate{StudyHours: floatPtr(1)}); err != nil {
		t.Fatalf("day 1: %v", err)
	}

	// Day 2, consecutive.
	pinClock(svc, localTime(2026, time.March, 11, 12, 0))
	snap, err := svc.UpdateStats(ctx, StatsUpdate{StudyHours: floatPtr(1)})
	if err != nil {
		t.Fatalf("day 2: %v", err)
	}
	if snap.StreakDays != 2 {
		t.Fatalf("consecutive day streak=%d, want 2", snap.StreakDays)
	}

	// Second update the same day leaves the streak alone.
	snap, err = svc.UpdateStats(ctx, StatsUpdate{WorkoutMins: floatPtr(30)})
	if err != nil {
		t.Fatalf("same day: %v", err)
	}
	if snap.StreakDays != 2 {
		t.Fatalf("same-day streak=%d, want 2", snap.StreakDays)
	}

	// Three days of silence reset the streak.
	pinClock(svc, localTime(2026, time.March, 14, 12, 0))
	snap, err = svc.UpdateStats(ctx, StatsUpdate{StudyHours: floatPtr(1)})
	if err != nil {
		t.Fatalf("after gap: %v", err)
	}
	if snap.StreakDays != 1 {
		t.Fatalf("post-gap streak=%d, want 1", snap.StreakDays)
	}
}

// Activity at 01:30 counts toward the previous stats day, so a late night
// does not break the streak.
func TestLateNightKeepsStreakDay(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	pinClock(svc, localTime(2026, time.March, 10, 23, 0))
	if _, err := svc.UpdateStats(ctx, StatsUpdate{StudyHours: floatPtr(1)}); err != nil {
		t.Fatalf("evening: %v", err)
	}

	pinClock(svc, localTime(2026, time.March, 11, 1, 30))
	snap, err := svc.UpdateStats(ctx, StatsUpdate{StudyHours: floatPtr(2)})
	if err != nil {
		t.Fatalf("late night: %v", err)
	}
	if snap.StreakDays != 1 {
		t.Fatalf("streak=%d, want 1 (still the same stats day)", snap.StreakDays)
	}
	if snap.LastUpdated != "2026-03-10" {
		t.Fatalf("lastUpdated=%q, want 2026-03-10", snap.LastUpdated)
	}
}

// Legacy snapshots stored a full ISO timestamp in lastUpdated.
func TestStreakSurvivesLegacyTimestamp(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	pinClock(svc, localTime(2026, time.March, 10, 12, 0))
	snap, err := svc.UpdateStats(ctx, StatsUpdate{StudyHours: floatPtr(1)})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	snap.LastUpdated = localTime(2026, time.March, 10, 12, 0).Format(time.RFC3339)
	if err := svc.Store().WriteJSON(ctx, fullKey(keyStats), snap); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	pinClock(svc, localTime(2026, time.March, 11, 12, 0))
	snap, err = svc.UpdateStats(ctx, StatsUpdate{StudyHours: floatPtr(1)})
	if err != nil {
		t.Fatalf("next day: %v", err)
	}
	if snap.StreakDays != 2 {
		t.Fatalf("streak=%d, want 2", snap.StreakDays)
	}
}

func TestUpdateStatsFieldsAreAbsolute(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	pinClock(svc, localTime(2026, time.March, 10, 12, 0))

	if _, err := svc.UpdateStats(ctx, StatsUpdate{StudyHours: floatPtr(3)}); err != nil {
		t.Fatalf("first: %v", err)
	}
	snap, err := svc.UpdateStats(ctx, StatsUpdate{StudyHours: floatPtr(2)})
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if snap.StudyHours != 2 {
		t.Fatalf("studyHours=%v, want replacement value 2", snap.StudyHours)
	}
}

func TestCorruptSnapshotReadsAsZero(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	if err := svc.Store().WriteRaw(ctx, fullKey(keyStats), "{broken"); err != nil {
		t.Fatalf("write raw: %v", err)
	}
	snap, err := svc.ReadStats(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if snap.StudyHours != 0 || snap.StreakDays != 0 {
		t.Fatalf("corrupt snapshot did not zero out: %+v", snap)
	}
}

func TestLogActivityStudy(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	pinClock(svc, localTime(2026, time.March, 10, 12, 0))

	res, err := svc.LogActivity(ctx, CategoryStudy, storage.Record{Hours: 1.5, Topic: "Go"})
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if res.Snapshot.StudyHours != 1.5 {
		t.Fatalf("studyHours=%v, want 1.5", res.Snapshot.StudyHours)
	}
	if res.XPAwarded != 30 {
		t.Fatalf("xp=%d, want 30", res.XPAwarded)
	}
	if res.Record.Timestamp == "" {
		t.Fatal("record not stamped")
	}

	logs, err := svc.ReadDay(ctx, CategoryStudy, "2026-03-10")
	if err != nil {
		t.Fatalf("read day: %v", err)
	}
	if len(logs) != 1 || logs[0].Topic != "Go" {
		t.Fatalf("logs=%+v", logs)
	}
}

func TestLogActivityStudyCapped(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	pinClock(svc, localTime(2026, time.March, 10, 12, 0))

	if _, err := svc.LogActivity(ctx, CategoryStudy, storage.Record{Hours: 20}); err != nil {
		t.Fatalf("first: %v", err)
	}
	res, err := svc.LogActivity(ctx, CategoryStudy, storage.Record{Hours: 10})
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if res.Snapshot.StudyHours != MaxDailyStudyHours {
		t.Fatalf("studyHours=%v, want cap %v", res.Snapshot.StudyHours, float64(MaxDailyStudyHours))
	}
}

func TestLogActivityWellnessXP(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	pinClock(svc, localTime(2026, time.March, 10, 12, 0))

	res, err := svc.LogActivity(ctx, CategoryWellness, storage.Record{Water: 0.5, Meditation: 10})
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	// 5 for the water log plus 10/2 for meditation.
	if res.XPAwarded != 10 {
		t.Fatalf("xp=%d, want 10", res.XPAwarded)
	}
	if res.Snapshot.WaterLitres != 0.5 || res.Snapshot.MindfulnessMins != 10 {
		t.Fatalf("snapshot=%+v", res.Snapshot)
	}
}

func TestLogActivityDistractionsNoXP(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	pinClock(svc, localTime(2026, time.March, 10, 12, 0))

	res, err := svc.LogActivity(ctx, CategoryDistractions, storage.Record{Mins: 45, Name: "YouTube"})
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if res.XPAwarded != 0 {
		t.Fatalf("distraction awarded %d xp", res.XPAwarded)
	}
	if res.Snapshot.DistractionMins != 45 {
		t.Fatalf("distractionMins=%v", res.Snapshot.DistractionMins)
	}
}

func TestLogActivityRejectsInvalidRecord(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	pinClock(svc, localTime(2026, time.March, 10, 12, 0))

	if _, err := svc.LogActivity(ctx, CategoryStudy, storage.Record{}); err == nil {
		t.Fatal("zero-hour study log accepted")
	}
	snap, err := svc.ReadStats(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if snap.StreakDays != 0 {
		t.Fatal("rejected log still touched the snapshot")
	}
}

func TestStreakScenario(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	pinClock(svc, localTime(2026, time.March, 1, 12, 0))
	snap, err := svc.UpdateStats(ctx, StatsUpdate{StudyHours: floatPtr(2)})
	if err != nil {
		t.Fatalf("day 1: %v", err)
	}
	if snap.StudyHours != 2 || snap.StreakDays != 1 || snap.LastUpdated != "2026-03-01" {
		t.Fatalf("day 1 snapshot=%+v", snap)
	}

	// The caller reads then adds; the update carries the absolute 2+2.
	pinClock(svc, localTime(2026, time.March, 2, 12, 0))
	snap, err = svc.UpdateStats(ctx, StatsUpdate{StudyHours: floatPtr(4)})
	if err != nil {
		t.Fatalf("day 2: %v", err)
	}
	if snap.StudyHours != 4 || snap.StreakDays != 2 || snap.LastUpdated != "2026-03-02" {
		t.Fatalf("day 2 snapshot=%+v", snap)
	}

	pinClock(svc, localTime(2026, time.March, 5, 12, 0))
	snap, err = svc.UpdateStats(ctx, StatsUpdate{StudyHours: floatPtr(1)})
	if err != nil {
		t.Fatalf("day 5: %v", err)
	}
	if snap.StreakDays != 1 {
		t.Fatalf("day 5 streak=%d, want 1", snap.StreakDays)
	}
}
