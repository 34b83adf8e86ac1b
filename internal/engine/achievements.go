package engine

import (
	"context"

	"github.com/jai-bhavaani/new-tracker/internal/storage"
)

// Achievement represents a badge the user can earn.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      bool
}

// AchievementChecker calculates which achievements the current state earns.
type AchievementChecker struct {
	snapshot storage.Snapshot
	game     storage.GamificationState
	habits   []storage.Habit
}

func NewAchievementChecker(snapshot storage.Snapshot, game storage.GamificationState, habits []storage.Habit) *AchievementChecker {
	return &AchievementChecker{snapshot: snapshot, game: game, habits: habits}
}

// GetAchievements returns all achievements with their earned status.
func (c *AchievementChecker) GetAchievements() []Achievement {
	level := LevelForXP(c.game.TotalXP)
	longestHabit := 0
	for _, h := range c.habits {
		if h.LongestStreak > longestHabit {
			longestHabit = h.LongestStreak
		}
	}

	return []Achievement{
		// Level milestones
		c.threshold("getting_started", "Getting Started", "Reach level 2", "🌱", level >= 2),
		c.threshold("on_the_path", "On the Path", "Reach level 5", "🌿", level >= 5),
		c.threshold("scholar", "Scholar", "Reach level 10", "⭐", level >= 10),
		c.threshold("sage", "Sage", "Reach level 20", "💫", level >= 20),

		// Daily streak milestones
		c.threshold("warming_up", "Warming Up", "3-day streak", "🔥", c.snapshot.StreakDays >= 3),
		c.threshold("on_a_roll", "On a Roll", "7-day streak", "🚀", c.snapshot.StreakDays >= 7),
		c.threshold("unstoppable", "Unstoppable", "30-day streak", "🏆", c.snapshot.StreakDays >= 30),

		// Task completion milestones
		c.threshold("first_task", "First Step", "Complete 1 task", "✓", c.snapshot.TasksCompleted >= 1),
		c.threshold("productive", "Productive", "Complete 10 tasks", "📋", c.snapshot.TasksCompleted >= 10),
		c.threshold("achiever", "Achiever", "Complete 50 tasks", "🏅", c.snapshot.TasksCompleted >= 50),
		c.threshold("powerhouse", "Powerhouse", "Complete 100 tasks", "💪", c.snapshot.TasksCompleted >= 100),

		// Habits
		c.threshold("habit_former", "Habit Former", "Create a habit", "🌾", len(c.habits) >= 1),
		c.threshold("habit_master", "Habit Master", "7-day habit streak", "🧘", longestHabit >= 7),
	}
}

func (c *AchievementChecker) threshold(id, name, description, icon string, earned bool) Achievement {
	return Achievement{ID: id, Name: name, Description: description, Icon: icon, Earned: earned}
}

// EvaluateAchievements recomputes earned achievements and records newly
// earned ids in the ledger. Unlocks are monotonic: an id once recorded is
// never removed, even if the state that earned it later regresses.
func (s *Service) EvaluateAchievements(ctx context.Context) ([]Achievement, []Achievement, error) {
	snap, err := s.ReadStats(ctx)
	if err != nil {
		return nil, nil, err
	}
	game, err := s.Gamification(ctx)
	if err != nil {
		return nil, nil, err
	}
	habits, err := s.Habits(ctx)
	if err != nil {
		return nil, nil, err
	}

	all := NewAchievementChecker(snap, game, habits).GetAchievements()

	unlocked := map[string]bool{}
	for _, id := range game.UnlockedAchievements {
		unlocked[id] = true
	}

	var newly []Achievement
	for i := range all {
		if unlocked[all[i].ID] {
			all[i].Earned = true
			continue
		}
		if all[i].Earned {
			game.UnlockedAchievements = append(game.UnlockedAchievements, all[i].ID)
			newly = append(newly, all[i])
		}
	}

	if len(newly) > 0 {
		if err := s.store.WriteJSON(ctx, fullKey(keyGamification), game); err != nil {
			return nil, nil, err
		}
	}
	return all, newly, nil
}
