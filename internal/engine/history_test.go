package engine

import (
	"context"
	"testing"
	"time"

	"github.com/jai-bhavaani/new-tracker/internal/storage"
)

func TestDailyHistoryAggregates(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	pinClock(svc, localTime(2026, time.March, 9, 10, 0))
	if _, err := svc.AppendActivity(ctx, CategoryStudy, storage.Record{Hours: 1.5, Topic: "Go"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := svc.AppendActivity(ctx, CategoryStudy, storage.Record{Hours: 0.5, Topic: "SQL"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := svc.AppendActivity(ctx, CategorySleep, storage.Record{Hours: 7}); err != nil {
		t.Fatalf("append: %v", err)
	}

	pinClock(svc, localTime(2026, time.March, 10, 10, 0))
	task, err := svc.AddTask(ctx, AddTaskInput{Title: "Review"})
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	if _, err := svc.CompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	daily, err := svc.DailyHistory(ctx, 2)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(daily) != 2 {
		t.Fatalf("got %d days, want 2", len(daily))
	}
	yesterday, today := daily[0], daily[1]
	if yesterday.Date != "2026-03-09" || today.Date != "2026-03-10" {
		t.Fatalf("window order wrong: %q then %q", yesterday.Date, today.Date)
	}
	if yesterday.StudyHours != 2 {
		t.Fatalf("studyHours=%v, want 2", yesterday.StudyHours)
	}
	if yesterday.SleepHours != 7 {
		t.Fatalf("sleepHours=%v, want 7", yesterday.SleepHours)
	}
	if yesterday.TasksCompleted != 0 || today.TasksCompleted != 1 {
		t.Fatalf("task counts: %d/%d", yesterday.TasksCompleted, today.TasksCompleted)
	}
}

func TestWeeklyHistoryShape(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	pinClock(svc, localTime(2026, time.March, 10, 10, 0))

	if _, err := svc.AppendActivity(ctx, CategoryStudy, storage.Record{Hours: 3}); err != nil {
		t.Fatalf("append: %v", err)
	}

	series, err := svc.WeeklyHistory(ctx)
	if err != nil {
		t.Fatalf("weekly: %v", err)
	}
	if len(series.Labels) != 7 || len(series.StudyHours) != 7 || len(series.TasksDone) != 7 {
		t.Fatalf("series lengths: %d/%d/%d", len(series.Labels), len(series.StudyHours), len(series.TasksDone))
	}
	if series.StudyHours[6] != 3 {
		t.Fatalf("today's hours=%v, want 3", series.StudyHours[6])
	}
	if series.Labels[6] != "Tue" {
		t.Fatalf("today's label=%q, want Tue", series.Labels[6])
	}
}

func TestYearlyHistoryBucketsMonthsInOrder(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	pinClock(svc, localTime(2026, time.February, 27, 10, 0))
	if _, err := svc.AppendActivity(ctx, CategoryStudy, storage.Record{Hours: 2}); err != nil {
		t.Fatalf("append: %v", err)
	}
	pinClock(svc, localTime(2026, time.March, 2, 10, 0))
	if _, err := svc.AppendActivity(ctx, CategoryStudy, storage.Record{Hours: 1}); err != nil {
		t.Fatalf("append: %v", err)
	}

	months, err := svc.YearlyHistory(ctx)
	if err != nil {
		t.Fatalf("yearly: %v", err)
	}
	if len(months) < 12 {
		t.Fatalf("got %d month buckets", len(months))
	}
	last := months[len(months)-1]
	if last.Label != "Mar 26" {
		t.Fatalf("last bucket=%q, want Mar 26", last.Label)
	}
	if last.StudyHours != 1 {
		t.Fatalf("Mar hours=%v, want 1", last.StudyHours)
	}
	prev := months[len(months)-2]
	if prev.Label != "Feb 26" || prev.StudyHours != 2 {
		t.Fatalf("Feb bucket=%+v", prev)
	}
}

func TestStudyTopicDistribution(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	pinClock(svc, localTime(2026, time.March, 10, 10, 0))

	for _, rec := range []storage.Record{
		{Hours: 2, Topic: "Go"},
		{Hours: 1, Topic: "SQL"},
		{Hours: 0.5, Topic: "Go"},
		{Hours: 1}, // no topic, dropped
	} {
		if _, err := svc.AppendActivity(ctx, CategoryStudy, rec); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	dist, err := svc.StudyTopicDistribution(ctx, 7)
	if err != nil {
		t.Fatalf("distribution: %v", err)
	}
	if len(dist.Labels) != 2 {
		t.Fatalf("labels=%v, want Go and SQL only", dist.Labels)
	}
	if dist.Labels[0] != "Go" || dist.Labels[1] != "SQL" {
		t.Fatalf("insertion order lost: %v", dist.Labels)
	}
	if dist.Values[0] != 2.5 || dist.Values[1] != 1 {
		t.Fatalf("values=%v", dist.Values)
	}
}

func TestDistractionDistribution(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	pinClock(svc, localTime(2026, time.March, 10, 10, 0))

	for _, rec := range []storage.Record{
		{Mins: 30, Name: "YouTube"},
		{Mins: 15, Name: "News"},
		{Mins: 10, Name: "YouTube"},
	} {
		if _, err := svc.AppendActivity(ctx, CategoryDistractions, rec); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	dist, err := svc.DistractionDistribution(ctx, 7)
	if err != nil {
		t.Fatalf("distribution: %v", err)
	}
	if len(dist.Labels) != 2 || dist.Values[0] != 40 {
		t.Fatalf("dist=%+v", dist)
	}
}
