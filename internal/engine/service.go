package engine

import (
	"time"

	"github.com/jai-bhavaani/new-tracker/internal/storage"
)

// Key suffixes under the storage namespace. Activity logs use
// "{category}_{dayKey}" keys built by logKey.
const (
	keyStats        = "stats"
	keyTasks        = "tasks"
	keyHabits       = "habits"
	keyTargets      = "targets"
	keyLearnings    = "learnings"
	keyProfile      = "profile"
	keyGamification = "gamification"
)

func fullKey(suffix string) string {
	return storage.Prefix + suffix
}

type Service struct {
	store *storage.Store
	now   func() time.Time
}

func NewService(store *storage.Store) *Service {
	return &Service{store: store, now: time.Now}
}

func (s *Service) Store() *storage.Store { return s.store }

// WithClock overrides the service clock. Tests use it to pin day boundaries.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}
