package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Tracker theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconStudy       = "📚"
	IconWorkout     = "🏋️"
	IconWellness    = "🧘"
	IconSleep       = "😴"
	IconDistraction = "📵"
	IconTask        = "📋"
	IconHabit       = "🌱"
	IconStreak      = "🔥"
	IconXP          = "⚡"
	IconTrophy      = "🏆"
	IconChart       = "📈"
	IconTarget      = "🎯"
	IconBook        = "📖"
	IconBackup      = "📦"
	IconDone        = "✅"
	IconInfo        = "ℹ️"
	IconWarn        = "⚠️"
	IconError       = "🧨"
)

var (
	cPrimary = lipgloss.Color("37")  // teal
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)
)

// heatStyles are the five heatmap shades, darkest to brightest.
var heatStyles = [5]lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
}

// HeatGlyph renders one heatmap day as a shaded block.
func HeatGlyph(level int) string {
	if level < 0 {
		level = 0
	}
	if level > 4 {
		level = 4
	}
	return heatStyles[level].Render("■")
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func CategoryIcon(category string) string {
	switch category {
	case "study":
		return IconStudy
	case "workout":
		return IconWorkout
	case "wellness":
		return IconWellness
	case "sleep":
		return IconSleep
	case "distractions":
		return IconDistraction
	default:
		return IconChart
	}
}

func PriorityText(priority string) string {
	switch priority {
	case "High":
		return Bad.Render("High")
	case "Low":
		return Muted.Render("Low")
	default:
		return Warn.Render("Medium")
	}
}
