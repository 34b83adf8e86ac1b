package root

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jai-bhavaani/new-tracker/internal/ui"
)

func newBackupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export and restore tracker data",
	}
	cmd.AddCommand(
		newBackupExportCmd(),
		newBackupRestoreCmd(),
		newBackupCSVCmd(),
	)
	return cmd
}

func newBackupExportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all tracker data as a JSON backup",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			blob, err := svc.ExportBackup(ctx)
			if err != nil {
				return err
			}
			if outPath == "" || outPath == "-" {
				_, err = cmd.OutOrStdout().Write(append(blob, '\n'))
				return err
			}
			if err := os.WriteFile(outPath, blob, 0o600); err != nil {
				return fmt.Errorf("write backup: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Backup written to %s\n", ui.IconBackup, ui.Key.Render(outPath))
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default stdout)")
	return cmd
}

func newBackupRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <file>",
		Short: "Restore tracker data from a JSON backup",
		Long:  "Restore replaces every tracker key found in the backup. Keys the backup does not contain are left untouched.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read backup: %w", err)
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.RestoreBackup(ctx, blob); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Backup restored from %s\n", ui.IconBackup, ui.Key.Render(args[0]))
			return nil
		},
	}
}

func newBackupCSVCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export activity logs and tasks as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if outPath == "" || outPath == "-" {
				return svc.ExportCSV(ctx, cmd.OutOrStdout())
			}
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create csv: %w", err)
			}
			if err := svc.ExportCSV(ctx, f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s CSV written to %s\n", ui.IconBackup, ui.Key.Render(outPath))
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default stdout)")
	return cmd
}
