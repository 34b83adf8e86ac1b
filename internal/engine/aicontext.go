package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/jai-bhavaani/new-tracker/internal/storage"
)

// AIContext is the structured context object handed to the AI collaborator
// alongside every prompt. Field names match the document the assistant was
// tuned against.
type AIContext struct {
	UserProfile  AIProfile            `json:"userProfile"`
	Gamification AIGamification       `json:"gamification"`
	CurrentStats storage.Snapshot     `json:"currentStats"`
	Tasks        AITasks              `json:"tasks"`
	Targets      []AITarget           `json:"targets"`
	Learnings    []string             `json:"recentLearnings"`
	DetailedLog  map[string]AIDayLogs `json:"detailedActivityLog"`
	WeeklyTotals []DailySummary       `json:"weeklyAggregates"`
}

type AIProfile struct {
	Name         string `json:"name"`
	PrimaryGoal  string `json:"primaryGoal"`
	DetailedGoal string `json:"detailedGoal"`
	Education    string `json:"education"`
}

type AIGamification struct {
	Level        int      `json:"level"`
	XP           int      `json:"xp"`
	Achievements []string `json:"achievements"`
}

type AITasks struct {
	Active            []AIActiveTask    `json:"active"`
	RecentlyCompleted []AICompletedTask `json:"recentlyCompleted"`
}

type AIActiveTask struct {
	Title    string `json:"title"`
	Priority string `json:"priority"`
	Category string `json:"category"`
}

type AICompletedTask struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	CompletedAt string `json:"completedAt"`
}

type AITarget struct {
	Text      string `json:"text"`
	Period    string `json:"period"`
	Completed bool   `json:"completed"`
}

// AIDayLogs carries one day's entries as short human-readable strings.
type AIDayLogs struct {
	Study        []string `json:"study"`
	Workout      []string `json:"workout"`
	Distractions []string `json:"distractions"`
}

const recentLearningsInContext = 5

// BuildAIContext assembles the full context object: profile, progression,
// today's snapshot, task state, targets, recent learnings, a 7-day detailed
// activity log, and 7-day aggregates. Never fails over missing data; absent
// pieces come through as defaults.
func (s *Service) BuildAIContext(ctx context.Context) (*AIContext, error) {
	profile, err := s.Profile(ctx)
	if err != nil {
		return nil, err
	}
	snap, err := s.ReadStats(ctx)
	if err != nil {
		return nil, err
	}
	game, err := s.Gamification(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	targets, err := s.Targets(ctx)
	if err != nil {
		return nil, err
	}
	learnings, err := s.Learnings(ctx)
	if err != nil {
		return nil, err
	}
	weekly, err := s.DailyHistory(ctx, 7)
	if err != nil {
		return nil, err
	}

	out := &AIContext{
		UserProfile: AIProfile{
			Name:         profile.Name,
			PrimaryGoal:  profile.PrimaryGoal,
			DetailedGoal: orNone(profile.DetailedGoal),
			Education:    orNone(profile.Education),
		},
		Gamification: AIGamification{
			Level:        LevelForXP(game.TotalXP),
			XP:           game.TotalXP,
			Achievements: game.UnlockedAchievements,
		},
		CurrentStats: snap,
		Targets:      []AITarget{},
		Learnings:    []string{},
		DetailedLog:  map[string]AIDayLogs{},
		WeeklyTotals: weekly,
	}

	oneWeekAgo := s.now().AddDate(0, 0, -7)
	for _, t := range tasks {
		if !t.Completed {
			out.Tasks.Active = append(out.Tasks.Active, AIActiveTask{Title: t.Title, Priority: t.Priority, Category: t.Category})
			continue
		}
		if t.CompletedAt == "" {
			continue
		}
		done, err := time.Parse(time.RFC3339, t.CompletedAt)
		if err == nil && !done.Before(oneWeekAgo) {
			out.Tasks.RecentlyCompleted = append(out.Tasks.RecentlyCompleted, AICompletedTask{Title: t.Title, Category: t.Category, CompletedAt: t.CompletedAt})
		}
	}

	for _, t := range targets {
		out.Targets = append(out.Targets, AITarget{Text: t.Text, Period: t.Period, Completed: t.Completed})
	}

	for i, e := range learnings {
		if i >= recentLearningsInContext {
			break
		}
		out.Learnings = append(out.Learnings, e.Content)
	}

	for i := 6; i >= 0; i-- {
		dateStr := MidnightKey(s.now().AddDate(0, 0, -i))

		study, err := s.ReadDay(ctx, CategoryStudy, dateStr)
		if err != nil {
			return nil, err
		}
		workout, err := s.ReadDay(ctx, CategoryWorkout, dateStr)
		if err != nil {
			return nil, err
		}
		distractions, err := s.ReadDay(ctx, CategoryDistractions, dateStr)
		if err != nil {
			return nil, err
		}
		if len(study) == 0 && len(workout) == 0 && len(distractions) == 0 {
			continue
		}

		day := AIDayLogs{Study: []string{}, Workout: []string{}, Distractions: []string{}}
		for _, r := range study {
			day.Study = append(day.Study, fmt.Sprintf("%s (%gh)", r.Topic, r.Hours))
		}
		for _, r := range workout {
			day.Workout = append(day.Workout, fmt.Sprintf("%s (%gm)", r.Type, r.Mins))
		}
		for _, r := range distractions {
			day.Distractions = append(day.Distractions, fmt.Sprintf("%s (%gm)", r.Name, r.Mins))
		}
		out.DetailedLog[dateStr] = day
	}

	return out, nil
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}
