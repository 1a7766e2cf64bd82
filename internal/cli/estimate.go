package cli

import (
	"github.com/spf13/cobra"
)

func newEstimateCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the frame rate of a PC in a game",
		Long: `Estimate prints the estimated frame rate. Unknown components score
as average hardware and unknown games use a neutral multiplier.`,
		Example: `  gamepulse estimate --cpu "Intel i5-12400" --gpu "NVIDIA RTX 3060" --ram "16 GB" --game "Elden Ring"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service()
			if err != nil {
				return err
			}
			fps := svc.Estimate(opts.specs, opts.game)

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"game":         opts.game,
					"estimatedFPS": fps,
				})
			}
			printf(cmd.OutOrStdout(), "%s on %s: ~%d FPS\n", opts.game, formatSpecs(opts.specs), fps)
			return nil
		},
	}
	addSpecFlags(cmd, opts)
	addGameFlag(cmd, opts)
	return cmd
}

func newClassifyCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify how well a PC runs a catalog game",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service()
			if err != nil {
				return err
			}
			result, err := svc.Classify(opts.specs, opts.game)
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			w := cmd.OutOrStdout()
			printf(w, "Game:    %s\n", opts.game)
			printf(w, "PC:      %s\n", formatSpecs(opts.specs))
			printf(w, "FPS:     ~%d\n", result.EstimatedFPS)
			printf(w, "Status:  %s (%s settings)\n", result.Status, result.Tier)
			printf(w, "%s\n", result.Message)
			return nil
		},
	}
	addSpecFlags(cmd, opts)
	addGameFlag(cmd, opts)
	return cmd
}

func newGraphCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Classify a PC against every catalog game",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service()
			if err != nil {
				return err
			}
			rows := svc.Graph(opts.specs)

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), rows)
			}
			w := cmd.OutOrStdout()
			for _, r := range rows {
				printf(w, "%-24s %4d FPS  %s\n", r.Game, r.FPS, r.Status)
			}
			return nil
		},
	}
	addSpecFlags(cmd, opts)
	return cmd
}
