package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jai-bhavaani/new-tracker/internal/engine"
	"github.com/jai-bhavaani/new-tracker/internal/storage"
	"github.com/jai-bhavaani/new-tracker/internal/ui"
)

func newLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log an activity (study, workout, wellness, sleep, distraction)",
	}
	cmd.AddCommand(
		newLogStudyCmd(),
		newLogWorkoutCmd(),
		newLogWellnessCmd(),
		newLogSleepCmd(),
		newLogDistractionCmd(),
	)
	return cmd
}

func positiveNumberArg(name string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New(name + " is required")
		}
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil || v <= 0 {
			return errors.New(name + " must be a positive number")
		}
		return nil
	}
}

func runLog(cmd *cobra.Command, cat engine.Category, rec storage.Record) error {
	ctx := context.Background()
	svc, cleanup, err := openService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	res, err := svc.LogActivity(ctx, cat, rec)
	if err != nil {
		return err
	}
	printLogResult(ctx, cmd, svc, cat, res)
	return nil
}

func printLogResult(ctx context.Context, cmd *cobra.Command, svc *engine.Service, cat engine.Category, res *engine.LogResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Heading(ui.CategoryIcon(string(cat)), "Activity logged"))
	if res.XPAwarded > 0 {
		fmt.Fprintln(out, ui.Gold.Render(fmt.Sprintf("%s +%d XP", ui.IconXP, res.XPAwarded)))
	}
	fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d days", ui.IconStreak, res.Snapshot.StreakDays)))

	if _, newly, err := svc.EvaluateAchievements(ctx); err == nil {
		for _, a := range newly {
			fmt.Fprintln(out, ui.Gold.Render(fmt.Sprintf("%s Achievement unlocked: %s %s", ui.IconTrophy, a.Icon, a.Name)))
		}
	}
}

func newLogStudyCmd() *cobra.Command {
	var topic string

	cmd := &cobra.Command{
		Use:   "study <hours>",
		Short: "Log a study session",
		Args:  positiveNumberArg("hours"),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, _ := strconv.ParseFloat(args[0], 64)
			return runLog(cmd, engine.CategoryStudy, storage.Record{Hours: hours, Topic: topic})
		},
	}

	cmd.Flags().StringVarP(&topic, "topic", "t", "", "What was studied")
	return cmd
}

func newLogWorkoutCmd() *cobra.Command {
	var workoutType string

	cmd := &cobra.Command{
		Use:   "workout <mins>",
		Short: "Log a workout",
		Args:  positiveNumberArg("mins"),
		RunE: func(cmd *cobra.Command, args []string) error {
			mins, _ := strconv.ParseFloat(args[0], 64)
			return runLog(cmd, engine.CategoryWorkout, storage.Record{Mins: mins, Type: workoutType})
		},
	}

	cmd.Flags().StringVarP(&workoutType, "type", "t", "", "Workout type (run, gym, ...)")
	return cmd
}

func newLogWellnessCmd() *cobra.Command {
	var water float64
	var meditation float64

	cmd := &cobra.Command{
		Use:   "wellness",
		Short: "Log water intake and/or meditation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(cmd, engine.CategoryWellness, storage.Record{Water: water, Meditation: meditation})
		},
	}

	cmd.Flags().Float64VarP(&water, "water", "w", 0, "Water intake in litres")
	cmd.Flags().Float64VarP(&meditation, "meditation", "m", 0, "Meditation minutes")
	return cmd
}

func newLogSleepCmd() *cobra.Command {
	var from string
	var to string

	cmd := &cobra.Command{
		Use:   "sleep <hours>",
		Short: "Log last night's sleep",
		Args:  positiveNumberArg("hours"),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, _ := strconv.ParseFloat(args[0], 64)
			return runLog(cmd, engine.CategorySleep, storage.Record{Hours: hours, StartTime: from, EndTime: to})
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Bed time (e.g. 23:30)")
	cmd.Flags().StringVar(&to, "to", "", "Wake time (e.g. 07:00)")
	return cmd
}

func newLogDistractionCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "distraction <mins>",
		Short: "Log time lost to a distraction",
		Args:  positiveNumberArg("mins"),
		RunE: func(cmd *cobra.Command, args []string) error {
			mins, _ := strconv.ParseFloat(args[0], 64)
			return runLog(cmd, engine.CategoryDistractions, storage.Record{Mins: mins, Name: name})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Distraction source (e.g. YouTube)")
	return cmd
}
