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

// Learnings returns all learning entries, normalized: entries written by an
// older format carried the note under "text" instead of "content", and some
// lack a tags array. Reads repair both; the authoritative migration happens
// in RestoreBackup.
func (s *Service) Learnings(ctx context.Context) ([]storage.LearningEntry, error) {
	entries := []storage.LearningEntry{}
	if _, err := s.store.ReadJSON(ctx, fullKey(keyLearnings), &entries); err != nil {
		return []storage.LearningEntry{}, nil
	}
	for i := range entries {
		if entries[i].Content == "" && entries[i].Text != "" {
			entries[i].Content = entries[i].Text
		}
		if entries[i].Tags == nil {
			entries[i].Tags = []string{}
		}
	}
	return entries, nil
}

func (s *Service) AddLearning(ctx context.Context, content string, tags []string) (storage.LearningEntry, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return storage.LearningEntry{}, errors.New("content is required")
	}
	if tags == nil {
		tags = []string{}
	}
	entries, err := s.Learnings(ctx)
	if err != nil {
		return storage.LearningEntry{}, err
	}
	e := storage.LearningEntry{
		ID:        uuid.NewString(),
		Content:   content,
		Tags:      tags,
		CreatedAt: s.now().UTC().Format(time.RFC3339),
	}
	// Newest first, like the feed that displays them.
	entries = append([]storage.LearningEntry{e}, entries...)
	if err := s.store.WriteJSON(ctx, fullKey(keyLearnings), entries); err != nil {
		return storage.LearningEntry{}, err
	}
	return e, nil
}

func (s *Service) DeleteLearning(ctx context.Context, id string) error {
	entries, err := s.Learnings(ctx)
	if err != nil {
		return err
	}
	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(entries) {
		return fmt.Errorf("learning %s not found", id)
	}
	return s.store.WriteJSON(ctx, fullKey(keyLearnings), kept)
}

// Profile returns the stored user profile, defaulting the name.
func (s *Service) Profile(ctx context.Context) (storage.Profile, error) {
	p := storage.Profile{Name: "User"}
	if _, err := s.store.ReadJSON(ctx, fullKey(keyProfile), &p); err != nil {
		return storage.Profile{Name: "User"}, nil
	}
	if p.Name == "" {
		p.Name = "User"
	}
	return p, nil
}

func (s *Service) SaveProfile(ctx context.Context, p storage.Profile) error {
	return s.store.WriteJSON(ctx, fullKey(keyProfile), p)
}
