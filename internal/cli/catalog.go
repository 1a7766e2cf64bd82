package cli

import (
	"github.com/spf13/cobra"

	"github.com/gamepulse/gamepulse-api/internal/catalog"
)

func newGamesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "List catalog games",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service()
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), svc.Games())
			}
			for _, title := range svc.Games() {
				printf(cmd.OutOrStdout(), "%s\n", title)
			}
			return nil
		},
	}
}

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Work with catalog documents",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a catalog document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.LoadFromFile(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			printf(w, "Catalog %s is valid\n", cat.Version())
			for _, c := range catalog.Categories {
				printf(w, "  %-5s %d components\n", c, cat.Count(c))
			}
			printf(w, "  games %d\n", len(cat.Titles()))
			return nil
		},
	})

	return cmd
}
