package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jai-bhavaani/new-tracker/internal/engine"
	"github.com/jai-bhavaani/new-tracker/internal/ui"
)

func newHabitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage habits and their streaks",
	}
	cmd.AddCommand(
		newHabitAddCmd(),
		newHabitListCmd(),
		newHabitDoneCmd(),
		newHabitRemoveCmd(),
	)
	return cmd
}

func newHabitAddCmd() *cobra.Command {
	var description string
	var category string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a habit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			h, err := svc.AddHabit(ctx, args[0], description, category)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconHabit+" Habit added"), h.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "desc", "d", "", "Description")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Free-form category")
	return cmd
}

func newHabitListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List habits",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			habits, err := svc.Habits(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(habits) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no habits yet — start building a streak)"))
				return nil
			}
			for _, h := range habits {
				fmt.Fprintf(out, "%s %s  %s %s %s\n",
					ui.IconHabit, h.Title,
					ui.Warn.Render(fmt.Sprintf("%s %d", ui.IconStreak, h.CurrentStreak)),
					ui.Muted.Render(fmt.Sprintf("(best %d)", h.LongestStreak)),
					ui.Dim.Render(h.ID[:8]))
			}
			return nil
		},
	}

	return cmd
}

func resolveHabitID(ctx context.Context, svc *engine.Service, input string) (string, error) {
	habits, err := svc.Habits(ctx)
	if err != nil {
		return "", err
	}
	return resolveID(input, len(habits), func(i int) string { return habits[i].ID }, "habit")
}

// resolveID matches a full id or an unambiguous prefix against a list.
func resolveID(input string, n int, idAt func(int) string, kind string) (string, error) {
	var match string
	for i := 0; i < n; i++ {
		id := idAt(i)
		if id == input {
			return id, nil
		}
		if len(input) >= 4 && len(id) >= len(input) && id[:len(input)] == input {
			if match != "" {
				return "", fmt.Errorf("%s id %q is ambiguous", kind, input)
			}
			match = id
		}
	}
	if match == "" {
		return "", fmt.Errorf("%s %s not found", kind, input)
	}
	return match, nil
}

func newHabitDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a habit completed for today",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveHabitID(ctx, svc, args[0])
			if err != nil {
				return err
			}
			res, err := svc.CompleteHabit(ctx, id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s  %s %s\n",
				ui.Good.Render(ui.IconDone+" Completed"), res.Habit.Title,
				ui.Warn.Render(fmt.Sprintf("%s %d-day streak", ui.IconStreak, res.Habit.CurrentStreak)),
				ui.Gold.Render(fmt.Sprintf("(+%d XP)", res.XPAwarded)))
			if _, newly, err := svc.EvaluateAchievements(ctx); err == nil {
				for _, a := range newly {
					fmt.Fprintln(out, ui.Gold.Render(fmt.Sprintf("%s Achievement unlocked: %s %s", ui.IconTrophy, a.Icon, a.Name)))
				}
			}
			return nil
		},
	}

	return cmd
}

func newHabitRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a habit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveHabitID(ctx, svc, args[0])
			if err != nil {
				return err
			}
			if err := svc.DeleteHabit(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("Habit deleted"))
			return nil
		},
	}

	return cmd
}


