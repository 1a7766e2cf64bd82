// Package rest provides REST API handlers
package rest

import (
	"context"

	"github.com/gamepulse/gamepulse-api/internal/advisor"
	"github.com/gamepulse/gamepulse-api/internal/catalog"
	"github.com/gamepulse/gamepulse-api/internal/performance"
	"github.com/gamepulse/gamepulse-api/internal/planner"
	"github.com/gamepulse/gamepulse-api/internal/storage"
)

// Advisor defines the operations the handlers delegate to
type Advisor interface {
	AccountService
	PerformanceService
	GenerationService

	Games() []string
	Health(ctx context.Context) error
}

// AccountService handles user accounts and recorded PCs
type AccountService interface {
	Register(ctx context.Context, username, email, password string) (*storage.User, error)
	Login(ctx context.Context, email, password string) (*storage.User, error)
	GetUser(ctx context.Context, email string) (*storage.User, error)
	UpdatePC(ctx context.Context, email string, specs performance.Specs) error
	ResetPassword(ctx context.Context, email string) (string, error)
}

// PerformanceService handles compatibility, upgrades and plans
type PerformanceService interface {
	CheckCompatibility(ctx context.Context, email, title string) (*advisor.CompatibilityReport, error)
	RecommendUpgrades(ctx context.Context, email, title string, budget catalog.BudgetTier) (*advisor.UpgradeReport, error)
	PerformanceGraph(ctx context.Context, email string) (*advisor.GraphReport, error)
	SmartUpgrade(ctx context.Context, email, title string, budget float64, targetFPS int) (planner.Plan, error)
}

// GenerationService handles generated prose with fallbacks
type GenerationService interface {
	ExplainUpgrade(ctx context.Context, req advisor.ExplainRequest) (advisor.Explanation, error)
	RecommendGames(ctx context.Context, email, preferences string) (*advisor.GameSuggestions, error)
	GenerateCharacter(ctx context.Context, email, game, characterType string) (advisor.Character, error)
}

// svc is the global advisor instance
var svc Advisor

// SetAdvisor sets the global advisor instance
func SetAdvisor(a Advisor) {
	svc = a
}

// GetAdvisor returns the global advisor instance
func GetAdvisor() Advisor {
	return svc
}
