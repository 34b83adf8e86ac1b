package storage

import "encoding/json"

// JSON field names follow the legacy web-storage format so existing backups
// round-trip unchanged. Timestamps are ISO strings for the same reason: the
// analytics layer matches completion dates by calendar-date prefix.

// Snapshot is the single "current day" stats record. All activity fields are
// cumulative for the current day only; TasksCompleted is cumulative across
// all time (legacy behavior, kept).
type Snapshot struct {
	StudyHours      float64 `json:"studyHours"`
	WorkoutMins     float64 `json:"workoutMins"`
	WaterLitres     float64 `json:"waterLitres"`
	MindfulnessMins float64 `json:"mindfulnessMins"`
	SleepHours      float64 `json:"sleepHours"`
	DistractionMins float64 `json:"distractionMins"`
	TasksCompleted  int     `json:"tasksCompleted"`
	StreakDays      int     `json:"streakDays"`
	LastUpdated     string  `json:"lastUpdated"`
}

// Record is one activity-log entry. The populated fields depend on the
// category; validation happens at the append boundary in the engine.
type Record struct {
	Timestamp  string  `json:"timestamp,omitempty"`
	Hours      float64 `json:"hours,omitempty"`
	Mins       float64 `json:"mins,omitempty"`
	Water      float64 `json:"water,omitempty"`
	Meditation float64 `json:"meditation,omitempty"`
	Topic      string  `json:"topic,omitempty"`
	Name       string  `json:"name,omitempty"`
	Type       string  `json:"type,omitempty"`
	StartTime  string  `json:"startTime,omitempty"`
	EndTime    string  `json:"endTime,omitempty"`
}

type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"createdAt"`
	CompletedAt string `json:"completedAt,omitempty"`
	Repeating   string `json:"repeating,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
}

type Habit struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	Category        string `json:"category"`
	CreatedAt       string `json:"createdAt"`
	LastCompletedAt string `json:"lastCompletedAt,omitempty"`
	CurrentStreak   int    `json:"currentStreak"`
	LongestStreak   int    `json:"longestStreak"`
}

type Target struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Period    string `json:"period"`
	Completed bool   `json:"completed"`
}

type LearningEntry struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	// Text is the pre-migration field name; reads fall back to it.
	Text      string   `json:"text,omitempty"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"createdAt"`
}

type Profile struct {
	Name string `json:"name"`
	// Age was stored as either a number or an empty string.
	Age          json.RawMessage `json:"age,omitempty"`
	PrimaryGoal  string          `json:"primaryGoal"`
	Education    string          `json:"education,omitempty"`
	DetailedGoal string          `json:"detailedGoal,omitempty"`
}

type GamificationState struct {
	TotalXP              int      `json:"totalXP"`
	UnlockedAchievements []string `json:"unlockedAchievements"`
}
