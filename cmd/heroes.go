package cmd

import (
	"fmt"

	"hero-catalog/core/utils"
	"hero-catalog/feature/heroes/pipeline"

	"github.com/spf13/cobra"
)

var (
	queryFlag string
	sortFlag  string
	orderFlag string
)

// refreshCmd fetches the remote catalog and reconciles favorites.
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Fetch the remote catalog and reconcile favorites",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := bootstrap()
		if err != nil {
			return err
		}
		defer cleanup()

		report, err := a.heroes.Service().Refresh(cmd.Context())
		if err != nil {
			return fmt.Errorf("refresh failed: %w", err)
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, report)
		}
		fmt.Fprintln(out, heading("Catalog refreshed"))
		fmt.Fprintln(out, labelValue("Fetched", report.Fetched))
		fmt.Fprintln(out, labelValue("Kept", report.Kept))
		fmt.Fprintln(out, labelValue("Favorites", report.Favorites))
		fmt.Fprintln(out, labelValue("Took", report.ExecutionTime))
		for _, e := range report.LookupErrors {
			fmt.Fprintln(out, warnStyle.Render(iconWarn+" "+e))
		}
		return nil
	},
}

// heroesCmd lists the catalog.
var heroesCmd = &cobra.Command{
	Use:   "heroes",
	Short: "List heroes",
	Long: `Lists the hero catalog, optionally filtered by name and sorted.

Examples:
  hero-catalog heroes --query iron
  hero-catalog heroes --sort strength --order desc`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := pipeline.ParseOptions(queryFlag, sortFlag, orderFlag)
		if err != nil {
			return err
		}

		a, cleanup, err := bootstrap()
		if err != nil {
			return err
		}
		defer cleanup()

		list, err := a.heroes.Service().List(cmd.Context(), opts)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), list)
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderHeroList(list))
		return nil
	},
}

// favoriteCmd toggles the favorite flag of a hero.
var favoriteCmd = &cobra.Command{
	Use:   "favorite <id>",
	Short: "Toggle a hero's favorite flag",
	Args:  validateID,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := utils.ParseID(args[0])

		a, cleanup, err := bootstrap()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx := cmd.Context()
		a.warmCatalog(ctx)

		res, err := a.heroes.Service().ToggleFavorite(ctx, id)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), res)
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderToggle(res))
		return nil
	},
}

// favoritesCmd lists the stored favorites.
var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List favorite heroes",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := bootstrap()
		if err != nil {
			return err
		}
		defer cleanup()

		list, err := a.heroes.Service().Favorites(cmd.Context())
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), list)
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderHeroList(list))
		return nil
	},
}

// biographyCmd shows a hero with its biography.
var biographyCmd = &cobra.Command{
	Use:     "biography <id>",
	Aliases: []string{"detail"},
	Short:   "Show a hero and its biography",
	Args:    validateID,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, _ := utils.ParseID(args[0])

		a, cleanup, err := bootstrap()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx := cmd.Context()
		a.warmCatalog(ctx)

		detail, err := a.heroes.Service().Detail(ctx, id)
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), detail)
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderDetail(detail))
		return nil
	},
}

func validateID(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("id is required")
	}
	_, err := utils.ParseID(args[0])
	return err
}

func init() {
	heroesCmd.Flags().StringVarP(&queryFlag, "query", "q", "", "Case-insensitive name filter")
	heroesCmd.Flags().StringVarP(&sortFlag, "sort", "s", "", "Sort by name, intelligence or strength")
	heroesCmd.Flags().StringVarP(&orderFlag, "order", "o", "asc", "Sort order: asc or desc")

	RootCmd.AddCommand(refreshCmd, heroesCmd, favoriteCmd, favoritesCmd, biographyCmd)
}

