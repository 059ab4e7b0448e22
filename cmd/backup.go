package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// backupCmd is the parent command for favorites backups.
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export and restore favorites backups",
	Long:  `Backups are JSON documents stored under backups/ in the configured S3/MinIO bucket.`,
}

var backupExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the current favorites",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := bootstrap()
		if err != nil {
			return err
		}
		defer cleanup()

		svc, err := a.backupService()
		if err != nil {
			return err
		}

		report, err := svc.Export(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, report)
		}
		fmt.Fprintln(out, statusText(true, fmt.Sprintf("Exported %d favorites", report.Count)))
		fmt.Fprintln(out, labelValue("Name", report.Name))
		for _, p := range report.Pruned {
			fmt.Fprintln(out, mutedStyle.Render("pruned "+p))
		}
		return nil
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored backups",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := bootstrap()
		if err != nil {
			return err
		}
		defer cleanup()

		svc, err := a.backupService()
		if err != nil {
			return err
		}

		list, err := svc.List(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, list)
		}
		if len(list) == 0 {
			fmt.Fprintln(out, mutedStyle.Render("No backups."))
			return nil
		}
		for _, b := range list {
			fmt.Fprintf(out, "%s  %s\n", b.Name, mutedStyle.Render(b.LastModified.Format("2006-01-02 15:04:05")))
		}
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <name>",
	Short: "Restore favorites from a backup",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := bootstrap()
		if err != nil {
			return err
		}
		defer cleanup()

		svc, err := a.backupService()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		a.warmCatalog(ctx)

		report, err := svc.Restore(ctx, args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, report)
		}
		fmt.Fprintln(out, statusText(report.Pending == 0, fmt.Sprintf("Restored %d favorites from %s", report.Restored, report.Name)))
		if report.Pending > 0 {
			fmt.Fprintln(out, warnStyle.Render(fmt.Sprintf("%s %d favorites could not be saved", iconWarn, report.Pending)))
		}
		return nil
	},
}

func init() {
	backupCmd.AddCommand(backupExportCmd, backupListCmd, backupRestoreCmd)
	RootCmd.AddCommand(backupCmd)
}
