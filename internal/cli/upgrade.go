package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gamepulse/gamepulse-api/internal/catalog"
	"github.com/gamepulse/gamepulse-api/internal/planner"
)

func newUpgradesCmd(opts *options) *cobra.Command {
	var budget string

	cmd := &cobra.Command{
		Use:   "upgrades",
		Short: "Propose budget-tier upgrades toward a game's high tier",
		RunE: func(cmd *cobra.Command, args []string) error {
			tier := catalog.BudgetTier(strings.ToLower(budget))
			if !tier.Valid() {
				return fmt.Errorf("unknown budget %q (want low, medium or high)", budget)
			}

			svc, err := opts.service()
			if err != nil {
				return err
			}
			result, err := svc.Recommend(opts.specs, opts.game, tier)
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			w := cmd.OutOrStdout()
			printf(w, "%s\n", result.Summary)
			for _, r := range result.Recommendations {
				printf(w, "  [%s] %s: %s -> %s  $%.0f\n", r.Priority, strings.ToUpper(string(r.Category)), orNone(r.Current), r.Recommended, r.Price)
			}
			printf(w, "Total: $%.0f\n", result.TotalCost)
			return nil
		},
	}
	addSpecFlags(cmd, opts)
	addGameFlag(cmd, opts)
	cmd.Flags().StringVar(&budget, "budget", string(catalog.BudgetMedium), "budget tier: low, medium or high")
	return cmd
}

func newPlanCmd(opts *options) *cobra.Command {
	var (
		budget    float64
		targetFPS int
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build a dollar-budgeted upgrade plan around the bottleneck",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.service()
			if err != nil {
				return err
			}
			plan, err := svc.Plan(context.Background(), opts.specs, opts.game, budget, targetFPS)
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), plan)
			}
			printPlan(cmd, plan)
			return nil
		},
	}
	addSpecFlags(cmd, opts)
	addGameFlag(cmd, opts)
	cmd.Flags().Float64Var(&budget, "budget", planner.DefaultBudget, "budget in USD")
	cmd.Flags().IntVar(&targetFPS, "target-fps", planner.DefaultTargetFPS, "target frame rate")
	return cmd
}

func printPlan(cmd *cobra.Command, plan planner.Plan) {
	w := cmd.OutOrStdout()
	printf(w, "Current: ~%d FPS  Target: %d FPS  Budget: $%.0f\n", plan.CurrentFPS, plan.TargetFPS, plan.Budget)
	printf(w, "Bottleneck: %s\n", plan.Analysis.Bottleneck)
	printf(w, "  %s\n", plan.Analysis.BottleneckReason)

	if len(plan.Recommendations) == 0 {
		printf(w, "No upgrade fits this budget.\n")
		return
	}
	printf(w, "Plan:\n")
	for _, r := range plan.Recommendations {
		printf(w, "  [%s] %s: %s  $%.0f  %s\n", r.Priority, r.Component, r.Name, r.Price, r.FPSGain)
	}
	printf(w, "Total: $%.0f  Expected: ~%d FPS\n", plan.TotalCost, plan.ExpectedFPS)
}
