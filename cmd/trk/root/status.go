package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jai-bhavaani/new-tracker/internal/engine"
	"github.com/jai-bhavaani/new-tracker/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show today's stats, streak and progression",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			profile, err := svc.Profile(ctx)
			if err != nil {
				return err
			}
			snap, err := svc.ReadStats(ctx)
			if err != nil {
				return err
			}
			game, err := svc.Gamification(ctx)
			if err != nil {
				return err
			}

			level := engine.LevelForXP(game.TotalXP)
			nextReq := engine.XPRequiredForLevel(level + 1)
			toNext := nextReq - game.TotalXP
			if toNext < 0 {
				toNext = 0
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconChart, "Hello, "+profile.Name))
			fmt.Fprintln(out, ui.LabelValue("Level", level))
			fmt.Fprintln(out, ui.LabelValue("Total XP", fmt.Sprintf("%d (next level at %d, %d to go)", game.TotalXP, nextReq, toNext)))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d days", ui.IconStreak, snap.StreakDays)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Today"))
			fmt.Fprintf(out, "- %s Study: %gh\n", ui.IconStudy, snap.StudyHours)
			fmt.Fprintf(out, "- %s Workout: %gm\n", ui.IconWorkout, snap.WorkoutMins)
			fmt.Fprintf(out, "- %s Water: %gl, Meditation: %gm\n", ui.IconWellness, snap.WaterLitres, snap.MindfulnessMins)
			fmt.Fprintf(out, "- %s Sleep: %gh\n", ui.IconSleep, snap.SleepHours)
			fmt.Fprintf(out, "- %s Distractions: %gm\n", ui.IconDistraction, snap.DistractionMins)
			fmt.Fprintf(out, "- %s Tasks completed (all time): %d\n", ui.IconTask, snap.TasksCompleted)
			fmt.Fprintln(out, "")

			all, _, err := svc.EvaluateAchievements(ctx)
			if err != nil {
				return err
			}
			earned := 0
			for _, a := range all {
				if a.Earned {
					earned++
				}
			}
			fmt.Fprintln(out, ui.H2.Render(ui.IconTrophy+" Achievements"))
			fmt.Fprintln(out, ui.LabelValue("Earned", fmt.Sprintf("%d / %d", earned, len(all))))
			for _, a := range all {
				if a.Earned {
					fmt.Fprintf(out, "- %s %s %s\n", a.Icon, a.Name, ui.Muted.Render(a.Description))
				}
			}
			return nil
		},
	}

	return cmd
}
