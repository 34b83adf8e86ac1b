package engine

import (
	"context"
	"strings"
	"time"

	"github.com/jai-bhavaani/new-tracker/internal/storage"
)

// DailySummary aggregates one calendar day across every log category.
type DailySummary struct {
	Date            string  `json:"date"`
	Label           string  `json:"label"`
	StudyHours      float64 `json:"studyHours"`
	WorkoutMins     float64 `json:"workoutMins"`
	SleepHours      float64 `json:"sleepHours"`
	DistractionMins float64 `json:"distractionMins"`
	MindfulnessMins float64 `json:"mindfulnessMins"`
	TasksCompleted  int     `json:"tasksCompleted"`
}

// DailyHistory replays the activity logs for the last `days` calendar dates,
// oldest first. Every call recomputes from raw logs; there is no cache.
// O(days x categories) point reads, fine for days <= 365 on a local store.
func (s *Service) DailyHistory(ctx context.Context, days int) ([]DailySummary, error) {
	tasks, err := s.Tasks(ctx)
	if err != nil {
		return nil, err
	}

	history := make([]DailySummary, 0, days)
	for i := days - 1; i >= 0; i-- {
		d := s.now().AddDate(0, 0, -i)
		dateStr := MidnightKey(d)

		sum := DailySummary{Date: dateStr, Label: d.Format("Mon")}

		study, err := s.ReadDay(ctx, CategoryStudy, dateStr)
		if err != nil {
			return nil, err
		}
		for _, r := range study {
			sum.StudyHours += r.Hours
		}

		workout, err := s.ReadDay(ctx, CategoryWorkout, dateStr)
		if err != nil {
			return nil, err
		}
		for _, r := range workout {
			sum.WorkoutMins += r.Mins
		}

		sleep, err := s.ReadDay(ctx, CategorySleep, dateStr)
		if err != nil {
			return nil, err
		}
		for _, r := range sleep {
			sum.SleepHours += r.Hours
		}

		distractions, err := s.ReadDay(ctx, CategoryDistractions, dateStr)
		if err != nil {
			return nil, err
		}
		for _, r := range distractions {
			sum.DistractionMins += r.Mins
		}

		wellness, err := s.ReadDay(ctx, CategoryWellness, dateStr)
		if err != nil {
			return nil, err
		}
		for _, r := range wellness {
			sum.MindfulnessMins += r.Meditation
		}

		sum.TasksCompleted = countTasksDoneOn(tasks, dateStr)
		history = append(history, sum)
	}
	return history, nil
}

// countTasksDoneOn matches by calendar-date prefix of the stored completion
// timestamp, i.e. exact date equality rather than timezone-aware math.
func countTasksDoneOn(tasks []storage.Task, dateStr string) int {
	n := 0
	for _, t := range tasks {
		if t.Completed && t.CompletedAt != "" && strings.HasPrefix(t.CompletedAt, dateStr) {
			n++
		}
	}
	return n
}

// WeeklySeries is the 7-day study-hours + tasks-done series with weekday
// labels, for the compact chart on the home screen.
type WeeklySeries struct {
	Labels     []string  `json:"labels"`
	StudyHours []float64 `json:"studyData"`
	TasksDone  []int     `json:"tasksData"`
}

func (s *Service) WeeklyHistory(ctx context.Context) (WeeklySeries, error) {
	daily, err := s.DailyHistory(ctx, 7)
	if err != nil {
		return WeeklySeries{}, err
	}
	series := WeeklySeries{
		Labels:     make([]string, 0, len(daily)),
		StudyHours: make([]float64, 0, len(daily)),
		TasksDone:  make([]int, 0, len(daily)),
	}
	for _, day := range daily {
		series.Labels = append(series.Labels, day.Label)
		series.StudyHours = append(series.StudyHours, day.StudyHours)
		series.TasksDone = append(series.TasksDone, day.TasksCompleted)
	}
	return series, nil
}

// MonthlySummary is a calendar-month rollup of daily summaries.
type MonthlySummary struct {
	Label           string  `json:"label"`
	StudyHours      float64 `json:"studyHours"`
	WorkoutMins     float64 `json:"workoutMins"`
	SleepHours      float64 `json:"sleepHours"`
	DistractionMins float64 `json:"distractionMins"`
	MindfulnessMins float64 `json:"mindfulnessMins"`
	TasksCompleted  int     `json:"tasksCompleted"`
	Days            int     `json:"count"`
}

// YearlyHistory buckets the last 365 days by month label ("Jan 06"),
// returned in chronological (first-seen) order.
func (s *Service) YearlyHistory(ctx context.Context) ([]MonthlySummary, error) {
	daily, err := s.DailyHistory(ctx, 365)
	if err != nil {
		return nil, err
	}

	buckets := map[string]*MonthlySummary{}
	var order []string
	for _, day := range daily {
		d, err := time.ParseInLocation(DayKeyLayout, day.Date, time.Local)
		if err != nil {
			continue
		}
		label := d.Format("Jan 06")
		b, ok := buckets[label]
		if !ok {
			b = &MonthlySummary{Label: label}
			buckets[label] = b
			order = append(order, label)
		}
		b.StudyHours += day.StudyHours
		b.WorkoutMins += day.WorkoutMins
		b.SleepHours += day.SleepHours
		b.DistractionMins += day.DistractionMins
		b.MindfulnessMins += day.MindfulnessMins
		b.TasksCompleted += day.TasksCompleted
		b.Days++
	}

	out := make([]MonthlySummary, 0, len(order))
	for _, label := range order {
		out = append(out, *buckets[label])
	}
	return out, nil
}

// Distribution is a labeled value series in first-insertion order; it is
// deliberately not sorted, matching the charts it feeds.
type Distribution struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"data"`
}

// StudyTopicDistribution sums study hours per free-text topic over the last
// `days`. Entries without a topic are dropped.
func (s *Service) StudyTopicDistribution(ctx context.Context, days int) (Distribution, error) {
	return s.distribution(ctx, days, CategoryStudy, func(r storage.Record) (string, float64) {
		return r.Topic, r.Hours
	})
}

// DistractionDistribution sums distraction minutes per source name over the
// last `days`. Unnamed entries are dropped.
func (s *Service) DistractionDistribution(ctx context.Context, days int) (Distribution, error) {
	return s.distribution(ctx, days, CategoryDistractions, func(r storage.Record) (string, float64) {
		return r.Name, r.Mins
	})
}

func (s *Service) distribution(ctx context.Context, days int, cat Category, pick func(storage.Record) (string, float64)) (Distribution, error) {
	totals := map[string]float64{}
	var order []string

	for i := days - 1; i >= 0; i-- {
		dateStr := MidnightKey(s.now().AddDate(0, 0, -i))
		logs, err := s.ReadDay(ctx, cat, dateStr)
		if err != nil {
			return Distribution{}, err
		}
		for _, r := range logs {
			label, value := pick(r)
			if label == "" {
				continue
			}
			if _, seen := totals[label]; !seen {
				order = append(order, label)
			}
			totals[label] += value
		}
	}

	dist := Distribution{Labels: order, Values: make([]float64, 0, len(order))}
	for _, label := range order {
		dist.Values = append(dist.Values, totals[label])
	}
	return dist, nil
}
