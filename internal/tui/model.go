package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jai-bhavaani/new-tracker/internal/engine"
	"github.com/jai-bhavaani/new-tracker/internal/storage"
	"github.com/jai-bhavaani/new-tracker/internal/ui"
)

const heatmapDays = 28

type dashModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	snapshot storage.Snapshot
	game     storage.GamificationState
	tasks    []storage.Task
	habits   []storage.Habit
	heat     []engine.HeatmapCell

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	snapshot storage.Snapshot
	game     storage.GamificationState
	tasks    []storage.Task
	habits   []storage.Habit
	heat     []engine.HeatmapCell
	err      error
}

type completedMsg struct {
	res *engine.TaskCompleteResult
	err error
}

func newDashModel(ctx context.Context, svc *engine.Service) dashModel {
	return dashModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m dashModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m dashModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.svc.ReadStats(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		game, err := m.svc.Gamification(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		tasks, err := m.svc.Tasks(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		habits, err := m.svc.Habits(m.ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		heat, err := m.svc.ActivityHeatmap(m.ctx, heatmapDays)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{snapshot: snap, game: game, tasks: tasks, habits: habits, heat: heat}
	}
}

func (m dashModel) completeCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.CompleteTask(m.ctx, id)
		return completedMsg{res: res, err: err}
	}
}

func (m dashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.snapshot = msg.snapshot
		m.game = msg.game
		m.tasks = msg.tasks
		m.habits = msg.habits
		m.heat = msg.heat
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case completedMsg:
		if msg.err != nil {
			m.lastLog = "Complete failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Completed %q: +%d XP", msg.res.Task.Title, msg.res.XPAwarded)
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.pendingTasks())-1 {
				m.selected++
			}
			return m, nil
		case "c", " ":
			pending := m.pendingTasks()
			if m.selected < 0 || m.selected >= len(pending) {
				return m, nil
			}
			t := pending[m.selected]
			m.lastLog = fmt.Sprintf("Completing %q…", t.Title)
			return m, m.completeCmd(t.ID)
		}
	}
	return m, nil
}

func (m dashModel) pendingTasks() []storage.Task {
	var out []storage.Task
	for _, t := range m.tasks {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

func (m dashModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderToday())
	b.WriteString("\n")
	b.WriteString(m.renderHeatmap())
	b.WriteString("\n")
	b.WriteString(m.renderTasks())
	b.WriteString("\n")
	b.WriteString(ui.Dim.Render("j/k: move  c/space: complete  r: refresh  q: quit"))
	b.WriteString("\n")
	b.WriteString(m.lastLog)
	b.WriteString("\n")
	return b.String()
}

func (m dashModel) renderHeader() string {
	level := engine.LevelForXP(m.game.TotalXP)
	cur := engine.XPRequiredForLevel(level)
	next := engine.XPRequiredForLevel(level + 1)
	bar := progressBar(m.game.TotalXP-cur, next-cur, 30)
	return fmt.Sprintf("%s | Level %d | XP %d %s | %s %d-day streak",
		ui.Title.Render("Tracker"), level, m.game.TotalXP, bar, ui.IconStreak, m.snapshot.StreakDays)
}

func (m dashModel) renderToday() string {
	if m.loading {
		return "Loading…"
	}
	s := m.snapshot
	lines := []string{
		ui.H2.Render("Today"),
		fmt.Sprintf("  %s study %gh   %s workout %gm   %s sleep %gh", ui.IconStudy, s.StudyHours, ui.IconWorkout, s.WorkoutMins, ui.IconSleep, s.SleepHours),
		fmt.Sprintf("  %s water %gl   meditation %gm   %s distractions %gm", ui.IconWellness, s.WaterLitres, s.MindfulnessMins, ui.IconDistraction, s.DistractionMins),
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m dashModel) renderHeatmap() string {
	if len(m.heat) == 0 {
		return ""
	}
	glyphs := make([]string, 0, len(m.heat))
	for _, cell := range m.heat {
		glyphs = append(glyphs, ui.HeatGlyph(cell.Level))
	}
	return ui.H2.Render(fmt.Sprintf("Last %d days", len(m.heat))) + "\n  " + strings.Join(glyphs, "") + "\n"
}

func (m dashModel) renderTasks() string {
	pending := m.pendingTasks()
	out := []string{ui.H2.Render("Pending tasks")}
	if len(pending) == 0 {
		out = append(out, "  (none)")
		return strings.Join(out, "\n") + "\n"
	}
	for i, t := range pending {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		repeat := ""
		if t.Repeating != "" && t.Repeating != engine.RepeatNone {
			repeat = " " + ui.Muted.Render("("+t.Repeating+")")
		}
		out = append(out, fmt.Sprintf("%s%s %s%s", cursor, ui.PriorityText(t.Priority), t.Title, repeat))
	}
	return strings.Join(out, "\n") + "\n"
}

func progressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	ratio := float64(value) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
