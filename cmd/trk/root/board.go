package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jai-bhavaani/new-tracker/internal/tui"
)

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the interactive dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunDashboard(ctx, svc, cmd.OutOrStdout())
		},
	}
}
