package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jai-bhavaani/new-tracker/internal/storage"
)

const (
	PeriodWeekly  = "Weekly"
	PeriodMonthly = "Monthly"
	PeriodYearly  = "Yearly"
)

func ParsePeriod(input string) (string, error) {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "", "weekly", "week":
		return PeriodWeekly, nil
	case "monthly", "month":
		return PeriodMonthly, nil
	case "yearly", "year":
		return PeriodYearly, nil
	default:
		return "", fmt.Errorf("invalid period: %q", input)
	}
}

func (s *Service) Targets(ctx context.Context) ([]storage.Target, error) {
	targets := []storage.Target{}
	if _, err := s.store.ReadJSON(ctx, fullKey(keyTargets), &targets); err != nil {
		return []storage.Target{}, nil
	}
	return targets, nil
}

func (s *Service) AddTarget(ctx context.Context, text, period string) (storage.Target, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return storage.Target{}, errors.New("text is required")
	}
	targets, err := s.Targets(ctx)
	if err != nil {
		return storage.Target{}, err
	}
	t := storage.Target{ID: uuid.NewString(), Text: text, Period: period}
	targets = append(targets, t)
	if err := s.store.WriteJSON(ctx, fullKey(keyTargets), targets); err != nil {
		return storage.Target{}, err
	}
	return t, nil
}

// ToggleTarget flips a target's completed flag.
func (s *Service) ToggleTarget(ctx context.Context, id string) (storage.Target, error) {
	targets, err := s.Targets(ctx)
	if err != nil {
		return storage.Target{}, err
	}
	for i := range targets {
		if targets[i].ID == id {
			targets[i].Completed = !targets[i].Completed
			if err := s.store.WriteJSON(ctx, fullKey(keyTargets), targets); err != nil {
				return storage.Target{}, err
			}
			return targets[i], nil
		}
	}
	return storage.Target{}, fmt.Errorf("target %s not found", id)
}

func (s *Service) DeleteTarget(ctx context.Context, id string) error {
	targets, err := s.Targets(ctx)
	if err != nil {
		return err
	}
	kept := targets[:0]
	for _, t := range targets {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(targets) {
		return fmt.Errorf("target %s not found", id)
	}
	return s.store.WriteJSON(ctx, fullKey(keyTargets), kept)
}
