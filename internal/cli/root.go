// Package cli implements the gamepulse command line tool. Every command
// works offline against the embedded catalog or a catalog file.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gamepulse/gamepulse-api/internal/advisor"
	"github.com/gamepulse/gamepulse-api/internal/catalog"
	"github.com/gamepulse/gamepulse-api/internal/performance"
	"github.com/gamepulse/gamepulse-api/internal/storage"
)

// Version is set at build time
var Version = "dev"

// options holds the flags shared by the estimation commands
type options struct {
	catalogPath string
	jsonOutput  bool
	specs       performance.Specs
	game        string
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:     "gamepulse",
		Version: Version,
		Short:   "Estimate game performance and plan PC upgrades",
		Long: `gamepulse estimates how well a PC runs catalog games and
proposes upgrades. It works offline; generated plans always use the
deterministic planner.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "catalog file (default: embedded catalog)")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "output JSON")

	root.AddCommand(
		newEstimateCmd(opts),
		newClassifyCmd(opts),
		newGraphCmd(opts),
		newUpgradesCmd(opts),
		newPlanCmd(opts),
		newGamesCmd(opts),
		newCatalogCmd(),
	)

	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// addSpecFlags registers the PC description flags on cmd
func addSpecFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVar(&opts.specs.CPU, "cpu", "", "CPU model, e.g. \"Intel i5-12400\"")
	cmd.Flags().StringVar(&opts.specs.GPU, "gpu", "", "GPU model, e.g. \"NVIDIA RTX 3060\"")
	cmd.Flags().StringVar(&opts.specs.RAM, "ram", "", "RAM size, e.g. \"16 GB\"")
	_ = cmd.MarkFlagRequired("cpu")
}

func addGameFlag(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVar(&opts.game, "game", "", "game title")
	_ = cmd.MarkFlagRequired("game")
}

// service builds an offline advisor over the selected catalog
func (o *options) service() (*advisor.Service, error) {
	cat := catalog.Default()
	if o.catalogPath != "" {
		var err error
		if cat, err = catalog.LoadFromFile(o.catalogPath); err != nil {
			return nil, err
		}
	}
	return advisor.NewService(cat, storage.NewInMemoryUserStore(), nil, advisor.DefaultConfig()), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatSpecs(s performance.Specs) string {
	parts := []string{orNone(s.CPU), orNone(s.GPU), orNone(s.RAM)}
	return strings.Join(parts, " / ")
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func printf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}
