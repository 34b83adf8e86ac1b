package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jai-bhavaani/new-tracker/internal/engine"
	"github.com/jai-bhavaani/new-tracker/internal/ui"
)

func newLearnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "learn",
		Short: "Keep a journal of things learned",
	}
	cmd.AddCommand(
		newLearnAddCmd(),
		newLearnListCmd(),
		newLearnRemoveCmd(),
	)
	return cmd
}

func newLearnAddCmd() *cobra.Command {
	var tags []string

	cmd := &cobra.Command{
		Use:   "add <content>",
		Short: "Record something you learned",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("content is required")
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

			e, err := svc.AddLearning(ctx, args[0], tags)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Noted: %s\n", ui.IconBook, ui.Key.Render(e.Content))
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Tags (repeatable)")
	return cmd
}

func newLearnListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			entries, err := svc.Learnings(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Nothing recorded yet. Add with: trk learn add"))
				return nil
			}
			if limit > 0 && len(entries) > limit {
				entries = entries[:limit]
			}
			fmt.Fprintln(out, ui.Heading(ui.IconBook, "Learnings"))
			for _, e := range entries {
				date := e.CreatedAt
				if len(date) >= 10 {
					date = date[:10]
				}
				fmt.Fprintf(out, "  %s %s  %s\n", ui.Dim.Render(date), e.Content, ui.Dim.Render(e.ID[:8]))
				if len(e.Tags) > 0 {
					fmt.Fprintf(out, "    %s\n", ui.Muted.Render("#"+strings.Join(e.Tags, " #")))
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Max entries to show (0 for all)")
	return cmd
}

func newLearnRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a journal entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := resolveLearningID(ctx, svc, args[0])
			if err != nil {
				return err
			}
			if err := svc.DeleteLearning(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Entry deleted.")
			return nil
		},
	}
}

func resolveLearningID(ctx context.Context, svc *engine.Service, input string) (string, error) {
	entries, err := svc.Learnings(ctx)
	if err != nil {
		return "", err
	}
	return resolveID(input, len(entries), func(i int) string { return entries[i].ID }, "entry")
}
