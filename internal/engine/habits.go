package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jai-bhavaani/new-tracker/internal/storage"
)

// Habits returns all habits, or an empty list if none are stored.
func (s *Service) Habits(ctx context.Context) ([]storage.Habit, error) {
	habits := []storage.Habit{}
	if _, err := s.store.ReadJSON(ctx, fullKey(keyHabits), &habits); err != nil {
		return []storage.Habit{}, nil
	}
	return habits, nil
}

func (s *Service) AddHabit(ctx context.Context, title, description, category string) (storage.Habit, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return storage.Habit{}, errors.New("title is required")
	}

	habits, err := s.Habits(ctx)
	if err != nil {
		return storage.Habit{}, err
	}
	h := storage.Habit{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(description),
		Category:    category,
		CreatedAt:   s.now().UTC().Format(time.RFC3339),
	}
	habits = append(habits, h)
	if err := s.store.WriteJSON(ctx, fullKey(keyHabits), habits); err != nil {
		return storage.Habit{}, err
	}
	return h, nil
}

type HabitCompleteResult struct {
	Habit     storage.Habit
	XPAwarded int
	TotalXP   int
}

// CompleteHabit recomputes the habit's streak from the whole-day difference
// between today and the last completion:
//
//	no prior completion -> 1
//	exactly one day     -> streak + 1
//	more than one day   -> 1 (broken)
//	same day (or less)  -> unchanged
//
// lastCompletedAt is refreshed even on the same-day branch; that matches the
// system this replaces and is pinned by a test. XP proportional to the
// resulting streak is awarded on every completion.
func (s *Service) CompleteHabit(ctx context.Context, id string) (*HabitCompleteResult, error) {
	habits, err := s.Habits(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range habits {
		if habits[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("habit %s not found", id)
	}

	now := s.now()
	h := habits[idx]

	newStreak := h.CurrentStreak
	if last := NormalizeDayKey(h.LastCompletedAt); last == "" {
		newStreak = 1
	} else if diff, ok := DiffDays(last, MidnightKey(now)); !ok {
		newStreak = 1
	} else if diff == 1 {
		newStreak = h.CurrentStreak + 1
	} else if diff > 1 {
		newStreak = 1
	}

	h.CurrentStreak = newStreak
	if newStreak > h.LongestStreak {
		h.LongestStreak = newStreak
	}
	h.LastCompletedAt = now.UTC().Format(time.RFC3339)
	habits[idx] = h

	if err := s.store.WriteJSON(ctx, fullKey(keyHabits), habits); err != nil {
		return nil, err
	}

	xp := XPPerStreakDay * newStreak
	total, err := s.AddXP(ctx, xp)
	if err != nil {
		return nil, err
	}
	return &HabitCompleteResult{Habit: h, XPAwarded: xp, TotalXP: total}, nil
}

func (s *Service) DeleteHabit(ctx context.Context, id string) error {
	habits, err := s.Habits(ctx)
	if err != nil {
		return err
	}
	kept := habits[:0]
	for _, h := range habits {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	if len(kept) == len(habits) {
		return fmt.Errorf("habit %s not found", id)
	}
	return s.store.WriteJSON(ctx, fullKey(keyHabits), kept)
}
