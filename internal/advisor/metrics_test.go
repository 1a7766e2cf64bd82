package advisor

import (
	"context"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/gamepulse/gamepulse-api/internal/catalog"
	"github.com/gamepulse/gamepulse-api/internal/metrics"
)

func TestRecommendNormalizesBudget(t *testing.T) {
	svc, _ := newTestService(t, nil)

	tests := []struct {
		budget      catalog.BudgetTier
		wantBudget  catalog.BudgetTier
		wantSummary string
	}{
		{"junk-0", catalog.BudgetMedium, "Optimal recommendations"},
		{"LOW", catalog.BudgetLow, "Budget recommendations"},
		{" High ", catalog.BudgetHigh, "Premium recommendations"},
	}

	for _, tt := range tests {
		t.Run(string(tt.budget), func(t *testing.T) {
			result, err := svc.Recommend(entrySpecs, "Cyberpunk 2077", tt.budget)
			if err != nil {
				t.Fatalf("Recommend() error = %v", err)
			}
			if result.Budget != tt.wantBudget || result.Summary != tt.wantSummary {
				t.Errorf("budget = %q summary = %q, want %q and %q", result.Budget, result.Summary, tt.wantBudget, tt.wantSummary)
			}
		})
	}
}

func TestUnknownBudgetsShareOneSeries(t *testing.T) {
	svc, _ := newTestService(t, nil)

	for i := 0; i < 50; i++ {
		if _, err := svc.Recommend(entrySpecs, "Cyberpunk 2077", catalog.BudgetTier(fmt.Sprintf("junk-%d", i))); err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
	}

	if n := testutil.CollectAndCount(metrics.UpgradeRecommendationsTotal); n > 3 {
		t.Errorf("Expected at most one series per budget tier, got %d", n)
	}
}

func generationCount(operation, outcome string) float64 {
	return testutil.ToFloat64(metrics.TextGenerationTotal.WithLabelValues(operation, outcome))
}

func TestGenerationRecordsOneOutcome(t *testing.T) {
	tests := []struct {
		name        string
		reply       string
		operation   string
		call        func(svc *Service) error
		wantSuccess float64
		wantInvalid float64
	}{
		{
			name:      "plan accepted",
			reply:     generatedPlan,
			operation: "plan",
			call: func(svc *Service) error {
				_, err := svc.SmartUpgrade(context.Background(), "gamer@example.com", "Cyberpunk 2077", 500, 60)
				return err
			},
			wantSuccess: 1,
		},
		{
			name:      "plan rejected",
			reply:     "not json",
			operation: "plan",
			call: func(svc *Service) error {
				_, err := svc.SmartUpgrade(context.Background(), "gamer@example.com", "Cyberpunk 2077", 500, 60)
				return err
			},
			wantInvalid: 1,
		},
		{
			name:      "games rejected",
			reply:     `{"games":[{"title":"Half-Life 3"}]}`,
			operation: "games",
			call: func(svc *Service) error {
				_, err := svc.RecommendGames(context.Background(), "gamer@example.com", "")
				return err
			},
			wantInvalid: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t, &fakeGenerator{reply: tt.reply})
			success := generationCount(tt.operation, metrics.OutcomeSuccess)
			invalid := generationCount(tt.operation, metrics.OutcomeInvalid)

			if err := tt.call(svc); err != nil {
				t.Fatalf("call failed: %v", err)
			}

			if got := generationCount(tt.operation, metrics.OutcomeSuccess) - success; got != tt.wantSuccess {
				t.Errorf("success delta = %v, want %v", got, tt.wantSuccess)
			}
			if got := generationCount(tt.operation, metrics.OutcomeInvalid) - invalid; got != tt.wantInvalid {
				t.Errorf("invalid delta = %v, want %v", got, tt.wantInvalid)
			}
		})
	}
}
