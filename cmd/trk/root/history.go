package root

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jai-bhavaani/new-tracker/internal/engine"
	"github.com/jai-bhavaani/new-tracker/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var view string
	var days int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show activity history and breakdowns",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			switch strings.ToLower(view) {
			case "daily":
				return printDailyHistory(ctx, svc, out, days)
			case "weekly":
				return printWeeklyHistory(ctx, svc, out)
			case "yearly":
				return printYearlyHistory(ctx, svc, out)
			case "topics":
				return printDistribution(ctx, out, ui.IconStudy, "Study topics", "h", func() (engine.Distribution, error) {
					return svc.StudyTopicDistribution(ctx, days)
				})
			case "distractions":
				return printDistribution(ctx, out, ui.IconDistraction, "Distractions", "m", func() (engine.Distribution, error) {
					return svc.DistractionDistribution(ctx, days)
				})
			default:
				return fmt.Errorf("unknown view %q (daily|weekly|yearly|topics|distractions)", view)
			}
		},
	}
	cmd.Flags().StringVarP(&view, "view", "v", "daily", "View (daily|weekly|yearly|topics|distractions)")
	cmd.Flags().IntVarP(&days, "days", "n", 7, "Days to cover for daily/topics/distractions")
	return cmd
}

func printDailyHistory(ctx context.Context, svc *engine.Service, out io.Writer, days int) error {
	daily, err := svc.DailyHistory(ctx, days)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, ui.Heading(ui.IconChart, fmt.Sprintf("Last %d days", days)))
	for _, d := range daily {
		var parts []string
		if d.StudyHours > 0 {
			parts = append(parts, fmt.Sprintf("%s %.1fh", ui.IconStudy, d.StudyHours))
		}
		if d.WorkoutMins > 0 {
			parts = append(parts, fmt.Sprintf("%s %.0fm", ui.IconWorkout, d.WorkoutMins))
		}
		if d.SleepHours > 0 {
			parts = append(parts, fmt.Sprintf("%s %.1fh", ui.IconSleep, d.SleepHours))
		}
		if d.MindfulnessMins > 0 {
			parts = append(parts, fmt.Sprintf("%s %.0fm", ui.IconWellness, d.MindfulnessMins))
		}
		if d.DistractionMins > 0 {
			parts = append(parts, fmt.Sprintf("%s %.0fm", ui.IconDistraction, d.DistractionMins))
		}
		if d.TasksCompleted > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", ui.IconTask, d.TasksCompleted))
		}
		line := ui.Muted.Render("(rest day)")
		if len(parts) > 0 {
			line = strings.Join(parts, "  ")
		}
		fmt.Fprintf(out, "  %s %s  %s\n", ui.Key.Render(d.Date), ui.Dim.Render(d.Label), line)
	}
	return nil
}

func printWeeklyHistory(ctx context.Context, svc *engine.Service, out io.Writer) error {
	series, err := svc.WeeklyHistory(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, ui.Heading(ui.IconChart, "This week"))
	var maxHours float64
	for _, h := range series.StudyHours {
		if h > maxHours {
			maxHours = h
		}
	}
	for i, label := range series.Labels {
		bar := studyBar(series.StudyHours[i], maxHours, 20)
		fmt.Fprintf(out, "  %s %s %.1fh  %s %d tasks\n",
			ui.Key.Render(label), bar, series.StudyHours[i], ui.IconTask, series.TasksDone[i])
	}
	return nil
}

func printYearlyHistory(ctx context.Context, svc *engine.Service, out io.Writer) error {
	months, err := svc.YearlyHistory(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, ui.Heading(ui.IconChart, "Last 12 months"))
	for _, m := range months {
		fmt.Fprintf(out, "  %s  %s %.1fh  %s %.0fm  %s %d\n",
			ui.Key.Render(m.Label),
			ui.IconStudy, m.StudyHours,
			ui.IconWorkout, m.WorkoutMins,
			ui.IconTask, m.TasksCompleted)
	}
	return nil
}

func printDistribution(ctx context.Context, out io.Writer, icon, title, unit string, fetch func() (engine.Distribution, error)) error {
	dist, err := fetch()
	if err != nil {
		return err
	}
	if len(dist.Labels) == 0 {
		fmt.Fprintln(out, ui.Muted.Render("(no data)"))
		return nil
	}
	fmt.Fprintln(out, ui.Heading(icon, title))
	var max float64
	for _, v := range dist.Values {
		if v > max {
			max = v
		}
	}
	for i, label := range dist.Labels {
		fmt.Fprintf(out, "  %-20s %s %.1f%s\n", label, studyBar(dist.Values[i], max, 20), dist.Values[i], unit)
	}
	return nil
}

// studyBar renders value/max as a fixed-width block bar.
func studyBar(value, max float64, width int) string {
	if max <= 0 {
		return ui.Dim.Render(strings.Repeat("░", width))
	}
	filled := int(value / max * float64(width))
	if filled > width {
		filled = width
	}
	return ui.Good.Render(strings.Repeat("█", filled)) + ui.Dim.Render(strings.Repeat("░", width-filled))
}
