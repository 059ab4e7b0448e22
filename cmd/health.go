package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var fixFlag bool

// healthCmd runs the health checks once and prints the report.
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the hero store, backup bucket and remote catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := bootstrap()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx := cmd.Context()
		svc := a.health.Service()

		if fixFlag {
			if _, err := svc.CheckSchema(true); err != nil {
				return err
			}
			if a.storage != nil {
				if _, err := svc.CheckStorage(ctx, true); err != nil {
					return err
				}
			}
		}

		report := svc.CheckAll(ctx)

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, report)
		}

		fmt.Fprintln(out, heading("Health"))
		if report.Schema != nil {
			fmt.Fprintln(out, statusText(report.Schema.Status == "ok", fmt.Sprintf("schema %s (missing: %v)", report.Schema.Status, report.Schema.MissingColumns)))
		} else {
			fmt.Fprintln(out, statusText(false, "schema: "+report.SchemaError))
		}
		if report.Storage != nil {
			fmt.Fprintln(out, statusText(report.Storage.Exists, fmt.Sprintf("storage %s (%s)", report.Storage.Status, report.Storage.Bucket)))
		} else {
			fmt.Fprintln(out, statusText(false, "storage: "+report.StorageError))
		}
		if report.Source.Reachable {
			fmt.Fprintln(out, statusText(true, fmt.Sprintf("source reachable, %d of %d characters from %s", report.Source.Published, report.Source.Characters, report.Source.Publisher)))
		} else {
			fmt.Fprintln(out, statusText(false, "source: "+report.Source.Error))
		}

		if !report.Healthy {
			return fmt.Errorf("health check failed")
		}
		return nil
	},
}

func init() {
	healthCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create missing columns and the backup bucket")
	RootCmd.AddCommand(healthCmd)
}
