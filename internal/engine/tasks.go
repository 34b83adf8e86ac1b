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

const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

const (
	RepeatNone     = "None"
	RepeatDaily    = "Daily"
	RepeatWeekly   = "Weekly"
	RepeatWeekdays = "Weekdays"
)

// ParsePriority parses user input to a priority. Empty or unrecognized
// input defaults to Medium.
func ParsePriority(input string) string {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "high", "h":
		return PriorityHigh
	case "low", "l":
		return PriorityLow
	default:
		return PriorityMedium
	}
}

func ParseRepetition(input string) (string, error) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "", "none":
		return RepeatNone, nil
	case "daily":
		return RepeatDaily, nil
	case "weekly":
		return RepeatWeekly, nil
	case "weekdays":
		return RepeatWeekdays, nil
	default:
		return "", fmt.Errorf("invalid repetition: %q", input)
	}
}

// Tasks returns the flat task list, or an empty list if none are stored.
func (s *Service) Tasks(ctx context.Context) ([]storage.Task, error) {
	tasks := []storage.Task{}
	if _, err := s.store.ReadJSON(ctx, fullKey(keyTasks), &tasks); err != nil {
		return []storage.Task{}, nil
	}
	return tasks, nil
}

type AddTaskInput struct {
	Title       string
	Description string
	Priority    string
	Category    string
	Repeating   string
	DueDate     string
}

func (s *Service) AddTask(ctx context.Context, in AddTaskInput) (storage.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return storage.Task{}, errors.New("title is required")
	}
	if in.Priority == "" {
		in.Priority = PriorityMedium
	}
	if in.Repeating == "" {
		in.Repeating = RepeatNone
	}
	if in.DueDate != "" {
		if _, err := time.Parse(DayKeyLayout, in.DueDate); err != nil {
			return storage.Task{}, fmt.Errorf("invalid due date %q (want YYYY-MM-DD)", in.DueDate)
		}
	}

	tasks, err := s.Tasks(ctx)
	if err != nil {
		return storage.Task{}, err
	}
	t := storage.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Priority:    in.Priority,
		Category:    in.Category,
		CreatedAt:   s.now().UTC().Format(time.RFC3339),
		Repeating:   in.Repeating,
		DueDate:     in.DueDate,
	}
	tasks = append(tasks, t)
	if err := s.store.WriteJSON(ctx, fullKey(keyTasks), tasks); err != nil {
		return storage.Task{}, err
	}
	return t, nil
}

type TaskCompleteResult struct {
	Task *storage.Task
	// Renewed is the fresh clone appended when a repeating task completes.
	Renewed        *storage.Task
	XPAwarded      int
	TotalXP        int
	TasksCompleted int
}

// CompleteTask marks the task done and awards flat task XP. Completing a
// repeating task appends a new open task with a fresh id; the original stays
// completed, so history and analytics keep seeing it. The snapshot's
// all-time tasksCompleted counter is bumped directly, without touching the
// streak day logic.
func (s *Service) CompleteTask(ctx context.Context, id string) (*TaskCompleteResult, error) {
	tasks, err := s.Tasks(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range tasks {
		if tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("task %s not found", id)
	}
	if tasks[idx].Completed {
		return nil, fmt.Errorf("task %s is already done", id)
	}

	now := s.now()
	tasks[idx].Completed = true
	tasks[idx].CompletedAt = now.UTC().Format(time.RFC3339)

	var renewed *storage.Task
	if r := tasks[idx].Repeating; r != "" && r != RepeatNone {
		clone := tasks[idx]
		clone.ID = uuid.NewString()
		clone.Completed = false
		clone.CompletedAt = ""
		clone.CreatedAt = now.UTC().Format(time.RFC3339)
		tasks = append(tasks, clone)
		renewed = &tasks[len(tasks)-1]
	}

	if err := s.store.WriteJSON(ctx, fullKey(keyTasks), tasks); err != nil {
		return nil, err
	}

	snap, err := s.ReadStats(ctx)
	if err != nil {
		return nil, err
	}
	snap.TasksCompleted++
	if err := s.store.WriteJSON(ctx, fullKey(keyStats), snap); err != nil {
		return nil, err
	}

	total, err := s.AddXP(ctx, XPTaskCompleted)
	if err != nil {
		return nil, err
	}

	return &TaskCompleteResult{
		Task:           &tasks[idx],
		Renewed:        renewed,
		XPAwarded:      XPTaskCompleted,
		TotalXP:        total,
		TasksCompleted: snap.TasksCompleted,
	}, nil
}

func (s *Service) DeleteTask(ctx context.Context, id string) error {
	tasks, err := s.Tasks(ctx)
	if err != nil {
		return err
	}
	kept := tasks[:0]
	for _, t := range tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(tasks) {
		return fmt.Errorf("task %s not found", id)
	}
	return s.store.WriteJSON(ctx, fullKey(keyTasks), kept)
}
