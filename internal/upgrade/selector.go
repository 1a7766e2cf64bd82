// Package upgrade selects budget-filtered component upgrades for a game
package upgrade

import (
	"fmt"
	"slices"

	"github.com/gamepulse/gamepulse-api/internal/catalog"
	"github.com/gamepulse/gamepulse-api/internal/performance"
)

// Priority ranks a recommendation
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// FallbackRAM is offered on a low budget when the required size is a
// high-budget part
const FallbackRAM = "16 GB"

// allowedTiers maps a requested budget to the catalog budget tiers it may pick from
var allowedTiers = map[catalog.BudgetTier][]catalog.BudgetTier{
	catalog.BudgetLow:    {catalog.BudgetLow, catalog.BudgetMedium},
	catalog.BudgetMedium: {catalog.BudgetMedium},
	catalog.BudgetHigh:   {catalog.BudgetMedium, catalog.BudgetHigh},
}

var summaries = map[catalog.BudgetTier]string{
	catalog.BudgetLow:    "Budget recommendations",
	catalog.BudgetMedium: "Optimal recommendations",
	catalog.BudgetHigh:   "Premium recommendations",
}

// Recommendation proposes replacing one component
type Recommendation struct {
	Category    catalog.Category   `json:"component"`
	Current     string             `json:"current"`
	Recommended string             `json:"recommended"`
	Price       float64            `json:"price"`
	Link        string             `json:"link"`
	Priority    Priority           `json:"priority"`
	Budget      catalog.BudgetTier `json:"budgetCategory"`
}

// Result is the outcome of an upgrade selection
type Result struct {
	Recommendations []Recommendation   `json:"recommendations"`
	TotalCost       float64            `json:"totalCost"`
	Budget          catalog.BudgetTier `json:"budget"`
	Summary         string             `json:"budgetMessage"`
	Message         string             `json:"message"`
}

// Selector proposes upgrades against a game's high tier
type Selector struct {
	model   *performance.Model
	catalog *catalog.Catalog
}

// NewSelector creates an upgrade selector backed by a performance model
func NewSelector(model *performance.Model) *Selector {
	return &Selector{model: model, catalog: model.Catalog()}
}

// AllowedTiers returns the catalog budget tiers permitted under budget.
// Unknown budgets filter like medium.
func AllowedTiers(budget catalog.BudgetTier) []catalog.BudgetTier {
	if tiers, ok := allowedTiers[budget]; ok {
		return tiers
	}
	return allowedTiers[catalog.BudgetMedium]
}

// Recommend proposes CPU, GPU and RAM upgrades that move specs towards the
// game's high tier without leaving the requested budget tier. Unknown
// budgets are treated as medium.
func (s *Selector) Recommend(specs performance.Specs, game catalog.Game, budget catalog.BudgetTier) Result {
	if !budget.Valid() {
		budget = catalog.BudgetMedium
	}
	result := Result{
		Recommendations: []Recommendation{},
		Budget:          budget,
		Summary:         summaries[budget],
	}

	if rec, ok := s.pick(catalog.CategoryCPU, specs.CPU, game.High.CPU, budget); ok {
		result.add(rec)
	}
	if rec, ok := s.pick(catalog.CategoryGPU, specs.GPU, game.High.GPU, budget); ok {
		result.add(rec)
	}
	if rec, ok := s.pickRAM(specs.RAM, game.High.RAM, budget); ok {
		result.add(rec)
	}

	if len(result.Recommendations) == 0 {
		result.Message = "Your PC is already ideal for this game!"
	} else {
		result.Message = fmt.Sprintf("We recommend upgrading %d component(s)", len(result.Recommendations))
	}

	return result
}

func (r *Result) add(rec Recommendation) {
	r.Recommendations = append(r.Recommendations, rec)
	r.TotalCost += rec.Price
}

// pick chooses the best-performing candidate from the high tier that beats
// the current part and fits the budget. Ties keep the earlier candidate.
func (s *Selector) pick(category catalog.Category, current string, candidates []string, budget catalog.BudgetTier) (Recommendation, bool) {
	if slices.Contains(candidates, current) {
		return Recommendation{}, false
	}

	allowed := AllowedTiers(budget)
	bestPerf := s.model.Score(current, category)
	best := ""
	var bestEntry catalog.Entry

	for _, id := range candidates {
		e, ok := s.catalog.Lookup(category, id)
		if !ok || !slices.Contains(allowed, e.Budget) {
			continue
		}
		if e.Performance > bestPerf {
			bestPerf = e.Performance
			best = id
			bestEntry = e
		}
	}

	if best == "" || best == current {
		return Recommendation{}, false
	}

	return Recommendation{
		Category:    category,
		Current:     current,
		Recommended: best,
		Price:       bestEntry.Price,
		Link:        bestEntry.Link,
		Priority:    PriorityHigh,
		Budget:      bestEntry.Budget,
	}, true
}

func (s *Selector) pickRAM(current, required string, budget catalog.BudgetTier) (Recommendation, bool) {
	currentGB := catalog.ParseSizeGB(current)
	if currentGB >= catalog.ParseSizeGB(required) {
		return Recommendation{}, false
	}

	size := required
	entry, _ := s.catalog.Lookup(catalog.CategoryRAM, required)
	if budget == catalog.BudgetLow && entry.Budget == catalog.BudgetHigh {
		size = FallbackRAM
		entry, _ = s.catalog.Lookup(catalog.CategoryRAM, size)
		// The fallback must still be an upgrade
		if catalog.ParseSizeGB(size) <= currentGB {
			return Recommendation{}, false
		}
	}

	return Recommendation{
		Category:    catalog.CategoryRAM,
		Current:     current,
		Recommended: size,
		Price:       entry.Price,
		Link:        entry.Link,
		Priority:    PriorityMedium,
		Budget:      entry.Budget,
	}, true
}
