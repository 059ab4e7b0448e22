package cmd

import (
	"fmt"
	"os"

	"hero-catalog/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var jsonOutput bool

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "hero-catalog",
	Short: "Hero Catalog Service",
	Long: `Hero Catalog serves the Marvel heroes of the public Superhero API,
keeps your favorites in a local store and backs them up to S3 compatible storage.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the development config gives readable CLI errors.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print raw JSON instead of formatted output")
}
