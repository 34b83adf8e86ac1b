package engine

import (
	"context"
	"testing"
	"time"

	"github.com/jai-bhavaani/new-tracker/internal/storage"
)

func TestHeatLevelBuckets(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 2: 1, 3: 2, 4: 2, 5: 3, 6: 3, 7: 4, 12: 4}
	for score, want := range cases {
		if got := HeatLevel(score); got != want {
			t.Fatalf("HeatLevel(%d)=%d, want %d", score, got, want)
		}
	}
}

func TestActivityHeatmapCounts(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	// Yesterday: two study entries and one workout.
	pinClock(svc, localTime(2026, time.March, 9, 10, 0))
	for _, rec := range []storage.Record{{Hours: 1}, {Hours: 2}} {
		if _, err := svc.AppendActivity(ctx, CategoryStudy, rec); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if _, err := svc.AppendActivity(ctx, CategoryWorkout, storage.Record{Mins: 30}); err != nil {
		t.Fatalf("append: %v", err)
	}

	// Today: one task completed.
	pinClock(svc, localTime(2026, time.March, 10, 10, 0))
	task, err := svc.AddTask(ctx, AddTaskInput{Title: "Ship it"})
	if err != nil {
		t.Fatalf("add task: %v", err)
	}
	if _, err := svc.CompleteTask(ctx, task.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	cells, err := svc.ActivityHeatmap(ctx, 3)
	if err != nil {
		t.Fatalf("heatmap: %v", err)
	}
	if len(cells) != 3 {
		t.Fatalf("got %d cells, want 3", len(cells))
	}
	if cells[0].Date != "2026-03-08" || cells[2].Date != "2026-03-10" {
		t.Fatalf("window not oldest-first: %+v", cells)
	}
	if cells[0].Count != 0 || cells[0].Level != 0 {
		t.Fatalf("empty day scored %d/%d", cells[0].Count, cells[0].Level)
	}
	if cells[1].Count != 3 || cells[1].Level != 2 {
		t.Fatalf("busy day scored %d/%d, want 3/2", cells[1].Count, cells[1].Level)
	}
	if cells[2].Count != 1 || cells[2].Level != 1 {
		t.Fatalf("task day scored %d/%d, want 1/1", cells[2].Count, cells[2].Level)
	}
}

// Wellness entries only count when they carry water or meditation.
func TestActivityHeatmapWellnessFilter(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	pinClock(svc, localTime(2026, time.March, 10, 10, 0))

	key := storage.Prefix + "wellness_2026-03-10"
	if err := svc.Store().WriteRaw(ctx, key, `[{"water":0.5},{"topic":"noise"}]`); err != nil {
		t.Fatalf("write raw: %v", err)
	}

	cells, err := svc.ActivityHeatmap(ctx, 1)
	if err != nil {
		t.Fatalf("heatmap: %v", err)
	}
	if cells[0].Count != 1 {
		t.Fatalf("count=%d, want 1 (empty wellness entry counted)", cells[0].Count)
	}
}
