package engine

import (
	"context"
	"testing"
	"time"
)

func TestHabitStreakLifecycle(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	pinClock(svc, localTime(2026, time.March, 10, 8, 0))

	h, err := svc.AddHabit(ctx, "Morning pages", "", "mind")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	// First completion.
	res, err := svc.CompleteHabit(ctx, h.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if res.Habit.CurrentStreak != 1 {
		t.Fatalf("first streak=%d, want 1", res.Habit.CurrentStreak)
	}
	if res.XPAwarded != XPPerStreakDay {
		t.Fatalf("xp=%d, want %d", res.XPAwarded, XPPerStreakDay)
	}

	// Next day extends.
	pinClock(svc, localTime(2026, time.March, 11, 8, 0))
	res, err = svc.CompleteHabit(ctx, h.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if res.Habit.CurrentStreak != 2 {
		t.Fatalf("day-2 streak=%d, want 2", res.Habit.CurrentStreak)
	}
	if res.XPAwarded != 2*XPPerStreakDay {
		t.Fatalf("day-2 xp=%d, want %d", res.XPAwarded, 2*XPPerStreakDay)
	}
	if res.Habit.LongestStreak != 2 {
		t.Fatalf("longest=%d, want 2", res.Habit.LongestStreak)
	}

	// A missed day breaks it.
	pinClock(svc, localTime(2026, time.March, 13, 8, 0))
	res, err = svc.CompleteHabit(ctx, h.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if res.Habit.CurrentStreak != 1 {
		t.Fatalf("post-gap streak=%d, want 1", res.Habit.CurrentStreak)
	}
	if res.Habit.LongestStreak != 2 {
		t.Fatalf("longest=%d, want 2 preserved", res.Habit.LongestStreak)
	}
}

// Same-day completions keep the streak but still refresh lastCompletedAt.
func TestHabitSameDayCompletion(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	pinClock(svc, localTime(2026, time.March, 10, 8, 0))

	h, err := svc.AddHabit(ctx, "Stretch", "", "body")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	first, err := svc.CompleteHabit(ctx, h.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	pinClock(svc, localTime(2026, time.March, 10, 20, 0))
	second, err := svc.CompleteHabit(ctx, h.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if second.Habit.CurrentStreak != 1 {
		t.Fatalf("same-day streak=%d, want unchanged 1", second.Habit.CurrentStreak)
	}
	if second.Habit.LastCompletedAt == first.Habit.LastCompletedAt {
		t.Fatal("lastCompletedAt not refreshed on same-day completion")
	}
}

func TestDeleteHabit(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	h, err := svc.AddHabit(ctx, "Floss", "", "body")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.DeleteHabit(ctx, h.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteHabit(ctx, h.ID); err == nil {
		t.Fatal("second delete reported success")
	}
	if _, err := svc.CompleteHabit(ctx, h.ID); err == nil {
		t.Fatal("completed a deleted habit")
	}
}

func TestAddHabitValidation(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()

	if _, err := svc.AddHabit(context.Background(), "  ", "", ""); err == nil {
		t.Fatal("blank title accepted")
	}
}
