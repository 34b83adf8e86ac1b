package root

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jai-bhavaani/new-tracker/internal/ui"
)

func newHeatmapCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Show an activity heatmap",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			cells, err := svc.ActivityHeatmap(ctx, days)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconChart, fmt.Sprintf("Activity, last %d days", days)))

			// One row per week, aligned to weekday columns.
			var row strings.Builder
			pad := 0
			if len(cells) > 0 {
				if t, err := time.Parse("2006-01-02", cells[0].Date); err == nil {
					pad = int(t.Weekday())
				}
			}
			row.WriteString(strings.Repeat("  ", pad))
			for i, c := range cells {
				row.WriteString(ui.HeatGlyph(c.Level) + " ")
				if (pad+i+1)%7 == 0 {
					fmt.Fprintf(out, "  %s\n", row.String())
					row.Reset()
				}
			}
			if row.Len() > 0 {
				fmt.Fprintf(out, "  %s\n", row.String())
			}

			active := 0
			total := 0
			for _, c := range cells {
				if c.Count > 0 {
					active++
				}
				total += c.Count
			}
			fmt.Fprintf(out, "\n  %s\n", ui.Muted.Render(fmt.Sprintf("%d active days, %d entries", active, total)))
			return nil
		},
	}
	cmd.Flags().IntVarP(&days, "days", "n", 84, "Days to cover")
	return cmd
}
