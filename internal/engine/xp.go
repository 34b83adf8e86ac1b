package engine

import (
	"context"
	"math"

	"github.com/jai-bhavaani/new-tracker/internal/storage"
)

// Fixed conversion rates applied at the call sites that award XP.
const (
	XPPerStudyHour      = 20.0
	WorkoutMinsPerXP    = 5.0
	XPPerWaterLog       = 5
	MeditationMinsPerXP = 2.0
	XPPerSleepHour      = 10.0
	XPTaskCompleted     = 8
	XPPerStreakDay      = 2
)

// LevelCurveDivisor shapes the non-linear leveling curve: later levels need
// disproportionately more XP.
const LevelCurveDivisor = 50.0

// LevelForXP derives the level from total XP: floor(sqrt(xp/50)) + 1.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return int(math.Floor(math.Sqrt(float64(xp)/LevelCurveDivisor))) + 1
}

// XPRequiredForLevel is the curve inverse: the total XP threshold at which
// the given level starts. Level 1 starts at 0.
func XPRequiredForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	n := float64(level - 1)
	return int(math.Ceil(n * n * LevelCurveDivisor))
}

// Gamification returns the current ledger state, defaulting to zero XP and
// no achievements.
func (s *Service) Gamification(ctx context.Context) (storage.GamificationState, error) {
	state := storage.GamificationState{UnlockedAchievements: []string{}}
	if _, err := s.store.ReadJSON(ctx, fullKey(keyGamification), &state); err != nil {
		return storage.GamificationState{UnlockedAchievements: []string{}}, nil
	}
	if state.UnlockedAchievements == nil {
		state.UnlockedAchievements = []string{}
	}
	return state, nil
}

// AddXP adds to the cumulative XP counter and returns the new total. XP is
// monotonically non-decreasing; negative amounts are ignored.
func (s *Service) AddXP(ctx context.Context, amount int) (int, error) {
	state, err := s.Gamification(ctx)
	if err != nil {
		return 0, err
	}
	if amount > 0 {
		state.TotalXP += amount
	}
	if err := s.store.WriteJSON(ctx, fullKey(keyGamification), state); err != nil {
		return 0, err
	}
	return state.TotalXP, nil
}
