package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/gamepulse/gamepulse-api/internal/upgrade"
)

var (
	ErrNoPlanJSON      = errors.New("no JSON object in generated text")
	ErrPlanTooLarge    = errors.New("generated plan exceeds size limit")
	ErrIncompletePlan  = errors.New("generated plan is missing analysis or recommendations")
	ErrInvalidPlanItem = errors.New("generated plan has an invalid recommendation")
	ErrImplausibleFPS  = errors.New("generated plan has an implausible expected frame rate")
)

// MaxExpectedFPS is the largest expected frame rate a generated plan may claim
const MaxExpectedFPS = 1000

// jsonObject spans the first opening brace to the last closing brace
var jsonObject = regexp.MustCompile(`\{[\s\S]*\}`)

type externalPlan struct {
	Analysis        *Analysis        `json:"analysis"`
	Recommendations []Recommendation `json:"recommendations"`
	ExpectedFPS     float64          `json:"expectedFPS"`
	TotalCost       float64          `json:"totalCost"`
}

// ExtractJSON returns the outermost JSON object embedded in text
func ExtractJSON(text string) (string, error) {
	match := jsonObject.FindString(text)
	if match == "" {
		return "", ErrNoPlanJSON
	}
	return match, nil
}

// FromExternal validates a generated plan and merges it into the plan
// skeleton for req. Any error means the caller should use Fallback.
// maxBytes <= 0 disables the size check.
func (p *Planner) FromExternal(req Request, text string, maxBytes int) (Plan, error) {
	if maxBytes > 0 && len(text) > maxBytes {
		return Plan{}, fmt.Errorf("%w: %d bytes", ErrPlanTooLarge, len(text))
	}

	raw, err := ExtractJSON(text)
	if err != nil {
		return Plan{}, err
	}

	var ext externalPlan
	if err := json.Unmarshal([]byte(raw), &ext); err != nil {
		return Plan{}, fmt.Errorf("failed to decode generated plan: %w", err)
	}
	if ext.Analysis == nil || strings.TrimSpace(ext.Analysis.Bottleneck) == "" || len(ext.Recommendations) == 0 {
		return Plan{}, ErrIncompletePlan
	}

	plan := p.Base(req)
	plan.Source = SourceExternal
	plan.Analysis = *ext.Analysis

	for i, rec := range ext.Recommendations {
		if strings.TrimSpace(rec.Name) == "" || rec.Price < 0 || math.IsNaN(rec.Price) || math.IsInf(rec.Price, 0) {
			return Plan{}, fmt.Errorf("%w: item %d", ErrInvalidPlanItem, i)
		}
		switch rec.Priority {
		case upgrade.PriorityHigh, upgrade.PriorityMedium, upgrade.PriorityLow:
		default:
			rec.Priority = upgrade.PriorityMedium
		}
		plan.Recommendations = append(plan.Recommendations, rec)
		// The reported total is ignored; cost is always the sum of items
		plan.TotalCost += rec.Price
	}

	switch {
	case math.IsNaN(ext.ExpectedFPS) || ext.ExpectedFPS > MaxExpectedFPS:
		return Plan{}, fmt.Errorf("%w: %v", ErrImplausibleFPS, ext.ExpectedFPS)
	case ext.ExpectedFPS > 0:
		plan.ExpectedFPS = int(math.Floor(ext.ExpectedFPS + 0.5))
	default:
		plan.ExpectedFPS = plan.CurrentFPS + FlatImprovementFPS
	}

	return plan, nil
}
