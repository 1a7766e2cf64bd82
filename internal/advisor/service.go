// Package advisor orchestrates the performance core for callers: it looks up
// users, maps caller errors and consults the text generator with
// deterministic fallbacks.
package advisor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gamepulse/gamepulse-api/internal/catalog"
	"github.com/gamepulse/gamepulse-api/internal/compat"
	"github.com/gamepulse/gamepulse-api/internal/llm"
	"github.com/gamepulse/gamepulse-api/internal/metrics"
	"github.com/gamepulse/gamepulse-api/internal/performance"
	"github.com/gamepulse/gamepulse-api/internal/planner"
	"github.com/gamepulse/gamepulse-api/internal/storage"
	"github.com/gamepulse/gamepulse-api/internal/upgrade"
)

// MinPasswordLength is the shortest password accepted at registration
const MinPasswordLength = 8

// UserStore persists users and their PC specs
type UserStore interface {
	CreateUser(ctx context.Context, user *storage.User) error
	GetUserByEmail(ctx context.Context, email string) (*storage.User, error)
	UpdatePCSpecs(ctx context.Context, email string, specs performance.Specs) error
	UpdatePasswordHash(ctx context.Context, email, hash string) error
	Health(ctx context.Context) error
}

// Config holds advisor settings
type Config struct {
	// GenerationTimeout bounds a single text generation call
	GenerationTimeout time.Duration
	// MaxPlanBytes bounds the generated plan text that will be parsed
	MaxPlanBytes int
}

// DefaultConfig returns the default advisor settings
func DefaultConfig() Config {
	return Config{
		GenerationTimeout: 20 * time.Second,
		MaxPlanBytes:      64 << 10,
	}
}

// Service answers compatibility, upgrade and suggestion requests
type Service struct {
	catalog    *catalog.Catalog
	model      *performance.Model
	classifier *compat.Classifier
	selector   *upgrade.Selector
	planner    *planner.Planner
	users      UserStore
	generator  llm.Provider
	cfg        Config
}

// NewService creates an advisor. generator may be nil, in which case every
// generated answer uses its fallback.
func NewService(cat *catalog.Catalog, users UserStore, generator llm.Provider, cfg Config) *Service {
	model := performance.NewModel(cat)
	return &Service{
		catalog:    model.Catalog(),
		model:      model,
		classifier: compat.NewClassifier(model),
		selector:   upgrade.NewSelector(model),
		planner:    planner.NewPlanner(model),
		users:      users,
		generator:  generator,
		cfg:        cfg,
	}
}

// Catalog returns the catalog the service estimates against
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Games lists catalog titles in catalog order
func (s *Service) Games() []string {
	return s.catalog.Titles()
}

// Health checks the user store
func (s *Service) Health(ctx context.Context) error {
	return s.users.Health(ctx)
}

// Estimate returns the estimated frame rate. Unknown titles use a
// multiplier of 1.0.
func (s *Service) Estimate(specs performance.Specs, title string) int {
	return s.model.EstimateFPS(specs, title)
}

// Classify classifies specs against a catalog game
func (s *Service) Classify(specs performance.Specs, title string) (compat.Result, error) {
	game, err := s.game(title)
	if err != nil {
		return compat.Result{}, err
	}
	result := s.classifier.Classify(specs, game, title)
	metrics.RecordClassification(string(result.Status))
	return result, nil
}

// Recommend selects budget-tier upgrades for specs. The budget is
// normalized with catalog.ParseBudgetTier.
func (s *Service) Recommend(specs performance.Specs, title string, budget catalog.BudgetTier) (upgrade.Result, error) {
	game, err := s.game(title)
	if err != nil {
		return upgrade.Result{}, err
	}
	budget = catalog.ParseBudgetTier(string(budget))
	result := s.selector.Recommend(specs, game, budget)
	metrics.RecordUpgradeRecommendation(string(budget))
	return result, nil
}

// Graph classifies specs against every catalog game
func (s *Service) Graph(specs performance.Specs) []compat.GamePerformance {
	return s.classifier.Graph(specs, s.catalog.Games())
}

// Plan builds a smart upgrade plan for specs. The text generator is
// consulted at most once; any failure yields the deterministic plan.
func (s *Service) Plan(ctx context.Context, specs performance.Specs, title string, budget float64, targetFPS int) (planner.Plan, error) {
	game, err := s.game(title)
	if err != nil {
		return planner.Plan{}, err
	}

	req := planner.Request{Specs: specs, Game: game, Budget: budget, TargetFPS: targetFPS}.Normalize()
	base := s.planner.Base(req)

	plan, err := s.externalPlan(ctx, req, base.CurrentFPS)
	if err != nil {
		if !errors.Is(err, errGenerationDisabled) {
			slog.Warn("Using fallback upgrade plan", "game", title, "error", err)
		}
		plan = s.planner.Fallback(req)
	}

	metrics.RecordUpgradePlan(string(plan.Source))
	return plan, nil
}

func (s *Service) externalPlan(ctx context.Context, req planner.Request, currentFPS int) (planner.Plan, error) {
	var plan planner.Plan
	_, err := s.generate(ctx, "plan", []llm.Message{
		{Role: llm.RoleSystem, Content: planSystemPrompt},
		{Role: llm.RoleUser, Content: planPrompt(req, currentFPS)},
	}, func(text string) error {
		var err error
		plan, err = s.planner.FromExternal(req, text, s.cfg.MaxPlanBytes)
		return err
	}, llm.WithMaxTokens(1000))
	if err != nil {
		return planner.Plan{}, err
	}
	return plan, nil
}

// CheckCompatibility classifies a user's PC against a game
func (s *Service) CheckCompatibility(ctx context.Context, email, title string) (*CompatibilityReport, error) {
	specs, err := s.specsFor(ctx, email)
	if err != nil {
		return nil, err
	}
	result, err := s.Classify(specs, title)
	if err != nil {
		return nil, err
	}

	game, _ := s.catalog.Game(title)
	return &CompatibilityReport{
		Compatibility: result,
		UserPC:        specs,
		Requirements: Requirements{
			Minimum:     game.Minimum,
			Recommended: game.Recommended,
		},
	}, nil
}

// RecommendUpgrades selects budget-tier upgrades for a user's PC
func (s *Service) RecommendUpgrades(ctx context.Context, email, title string, budget catalog.BudgetTier) (*UpgradeReport, error) {
	specs, err := s.specsFor(ctx, email)
	if err != nil {
		return nil, err
	}
	result, err := s.Recommend(specs, title, budget)
	if err != nil {
		return nil, err
	}
	return &UpgradeReport{Result: result, UserPC: specs}, nil
}

// PerformanceGraph classifies a user's PC against every catalog game
func (s *Service) PerformanceGraph(ctx context.Context, email string) (*GraphReport, error) {
	specs, err := s.specsFor(ctx, email)
	if err != nil {
		return nil, err
	}
	return &GraphReport{PerformanceData: s.Graph(specs), UserPC: specs}, nil
}

// SmartUpgrade builds a smart upgrade plan for a user's PC
func (s *Service) SmartUpgrade(ctx context.Context, email, title string, budget float64, targetFPS int) (planner.Plan, error) {
	specs, err := s.specsFor(ctx, email)
	if err != nil {
		return planner.Plan{}, err
	}
	return s.Plan(ctx, specs, title, budget, targetFPS)
}

// specsFor returns the recorded PC of a user, which must include a CPU
func (s *Service) specsFor(ctx context.Context, email string) (performance.Specs, error) {
	user, err := s.user(ctx, email)
	if err != nil {
		return performance.Specs{}, err
	}
	if strings.TrimSpace(user.PCSpecs.CPU) == "" {
		return performance.Specs{}, ErrSpecsRequired
	}
	return user.PCSpecs, nil
}

func (s *Service) user(ctx context.Context, email string) (*storage.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmailRequired
	}
	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

func (s *Service) game(title string) (catalog.Game, error) {
	game, ok := s.catalog.Game(title)
	if !ok {
		return catalog.Game{}, fmt.Errorf("%w: %q", ErrGameNotFound, title)
	}
	return game, nil
}

// generate runs one text generation call under the configured timeout.
// When accept is non-nil it must approve the text for the call to count as
// a success; each call records exactly one outcome.
func (s *Service) generate(ctx context.Context, operation string, messages []llm.Message, accept func(text string) error, opts ...llm.CallOption) (string, error) {
	if s.generator == nil {
		metrics.RecordTextGeneration(operation, metrics.OutcomeDisabled, 0)
		return "", errGenerationDisabled
	}

	if s.cfg.GenerationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.GenerationTimeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := s.generator.Chat(ctx, messages, opts...)
	if err != nil {
		metrics.RecordTextGeneration(operation, metrics.OutcomeError, time.Since(start))
		slog.Warn("Text generation failed",
			"operation", operation,
			"code", llm.ErrorCode(err),
			"error", err,
		)
		return "", err
	}

	text := strings.TrimSpace(resp.Content)
	if text == "" {
		metrics.RecordTextGeneration(operation, metrics.OutcomeInvalid, time.Since(start))
		return "", fmt.Errorf("empty %s response", operation)
	}
	if accept != nil {
		if err := accept(text); err != nil {
			metrics.RecordTextGeneration(operation, metrics.OutcomeInvalid, time.Since(start))
			return "", err
		}
	}

	metrics.RecordTextGeneration(operation, metrics.OutcomeSuccess, time.Since(start))
	return text, nil
}
