package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jai-bhavaani/new-tracker/internal/engine"
	"github.com/jai-bhavaani/new-tracker/internal/ui"
)

func newTargetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "target",
		Short: "Manage weekly and monthly targets",
	}
	cmd.AddCommand(
		newTargetAddCmd(),
		newTargetListCmd(),
		newTargetToggleCmd(),
		newTargetRemoveCmd(),
	)
	return cmd
}

func newTargetAddCmd() *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a target",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("target text is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := engine.ParsePeriod(period)
			if err != nil {
				return err
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := svc.AddTarget(ctx, args[0], p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s target: %s\n",
				ui.IconTarget, t.Period, ui.Key.Render(t.Text))
			return nil
		},
	}
	cmd.Flags().StringVarP(&period, "period", "p", engine.PeriodWeekly, "weekly or monthly")
	return cmd
}

func newTargetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			targets, err := svc.Targets(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(targets) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No targets set. Add one with: trk target add"))
				return nil
			}
			fmt.Fprintln(out, ui.Heading(ui.IconTarget, "Targets"))
			for _, t := range targets {
				box := "[ ]"
				text := t.Text
				if t.Completed {
					box = "[x]"
					text = ui.Muted.Render(text)
				}
				fmt.Fprintf(out, "  %s %s %s  %s\n",
					box, text, ui.Dim.Render("("+t.Period+")"), ui.Dim.Render(t.ID[:8]))
			}
			return nil
		},
	}
}

func newTargetToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Toggle a target done or not done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveTargetID(ctx, svc, args[0])
			if err != nil {
				return err
			}
			t, err := svc.ToggleTarget(ctx, id)
			if err != nil {
				return err
			}
			state := "reopened"
			icon := ui.IconInfo
			if t.Completed {
				state = "completed"
				icon = ui.IconDone
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Target %s: %s\n", icon, state, t.Text)
			return nil
		},
	}
}

func newTargetRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a target",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveTargetID(ctx, svc, args[0])
			if err != nil {
				return err
			}
			if err := svc.DeleteTarget(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Target deleted.")
			return nil
		},
	}
}

func resolveTargetID(ctx context.Context, svc *engine.Service, input string) (string, error) {
	targets, err := svc.Targets(ctx)
	if err != nil {
		return "", err
	}
	return resolveID(input, len(targets), func(i int) string { return targets[i].ID }, "target")
}
