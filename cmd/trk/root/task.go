package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jai-bhavaani/new-tracker/internal/engine"
	"github.com/jai-bhavaani/new-tracker/internal/ui"
)

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(
		newTaskAddCmd(),
		newTaskListCmd(),
		newTaskDoneCmd(),
		newTaskRemoveCmd(),
	)
	return cmd
}

func newTaskAddCmd() *cobra.Command {
	var description string
	var priority string
	var category string
	var repeating string
	var dueDate string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			repeat, err := engine.ParseRepetition(repeating)
			if err != nil {
				return err
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := svc.AddTask(ctx, engine.AddTaskInput{
				Title:       args[0],
				Description: description,
				Priority:    engine.ParsePriority(priority),
				Category:    category,
				Repeating:   repeat,
				DueDate:     dueDate,
			})
			if err != nil {
				return err
			}

			line := fmt.Sprintf("%s %s %s", ui.Good.Render(ui.IconTask+" Added"), t.Title, ui.Muted.Render("("+t.Priority+")"))
			fmt.Fprintln(cmd.OutOrStdout(), line)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "desc", "d", "", "Description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "Priority (high|medium|low)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Free-form category")
	cmd.Flags().StringVarP(&repeating, "repeat", "r", "none", "Repetition (none|daily|weekly|weekdays)")
	cmd.Flags().StringVar(&dueDate, "due", "", "Due date (YYYY-MM-DD)")
	return cmd
}

func newTaskListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			tasks, err := svc.Tasks(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			shown := 0
			for _, t := range tasks {
				if t.Completed && !all {
					continue
				}
				shown++
				mark := " "
				if t.Completed {
					mark = ui.Good.Render("✓")
				}
				repeat := ""
				if t.Repeating != "" && t.Repeating != engine.RepeatNone {
					repeat = " " + ui.Muted.Render("🔁 "+t.Repeating)
				}
				due := ""
				if t.DueDate != "" {
					due = " " + ui.Warn.Render("due "+t.DueDate)
				}
				fmt.Fprintf(out, "[%s] %s  %s%s%s %s\n", mark, ui.PriorityText(t.Priority), t.Title, repeat, due, ui.Dim.Render(t.ID[:8]))
			}
			if shown == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no tasks)"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include completed tasks")
	return cmd
}

// resolveTaskID accepts a full id or an unambiguous prefix.
func resolveTaskID(ctx context.Context, svc *engine.Service, input string) (string, error) {
	tasks, err := svc.Tasks(ctx)
	if err != nil {
		return "", err
	}
	return resolveID(input, len(tasks), func(i int) string { return tasks[i].ID }, "task")
}

func newTaskDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Complete a task",
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

			id, err := resolveTaskID(ctx, svc, args[0])
			if err != nil {
				return err
			}
			res, err := svc.CompleteTask(ctx, id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s %s\n", ui.Good.Render(ui.IconDone+" Done"), res.Task.Title, ui.Gold.Render(fmt.Sprintf("(+%d XP)", res.XPAwarded)))
			if res.Renewed != nil {
				fmt.Fprintf(out, "%s Recurring task (%s) renewed\n", ui.IconInfo, res.Renewed.Repeating)
			}
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

func newTaskRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
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

			id, err := resolveTaskID(ctx, svc, args[0])
			if err != nil {
				return err
			}
			if err := svc.DeleteTask(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("Task deleted"))
			return nil
		},
	}

	return cmd
}
