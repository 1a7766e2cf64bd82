package planner

import (
	"errors"
	"strings"
	"testing"

	"github.com/gamepulse/gamepulse-api/internal/catalog"
	"github.com/gamepulse/gamepulse-api/internal/compat"
	"github.com/gamepulse/gamepulse-api/internal/performance"
	"github.com/gamepulse/gamepulse-api/internal/upgrade"
)

var entrySpecs = performance.Specs{CPU: "Intel i3-12100", GPU: "NVIDIA GTX 1650", RAM: "8 GB"}

func newPlanner(t *testing.T) *Planner {
	t.Helper()
	return NewPlanner(performance.NewModel(catalog.Default()))
}

func game(t *testing.T, title string) catalog.Game {
	t.Helper()
	g, ok := catalog.Default().Game(title)
	if !ok {
		t.Fatalf("Missing game %q", title)
	}
	return g
}

func TestBottleneck(t *testing.T) {
	tests := []struct {
		name    string
		cpuPerf float64
		gpuPerf float64
		ramGB   int
		want    Component
	}{
		{"low ram wins over weak cpu", 50, 300, 8, ComponentRAM},
		{"unparsed ram counts as zero", 300, 100, 0, ComponentRAM},
		{"cpu far behind gpu", 150, 250, 16, ComponentCPU},
		{"cpu just behind gpu", 174, 250, 32, ComponentCPU},
		{"balanced system defaults to gpu", 180, 250, 32, ComponentGPU},
		{"cpu ahead of gpu", 320, 100, 64, ComponentGPU},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Bottleneck(tt.cpuPerf, tt.gpuPerf, tt.ramGB); got != tt.want {
				t.Errorf("Bottleneck() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFallback(t *testing.T) {
	p := newPlanner(t)

	tests := []struct {
		name           string
		specs          performance.Specs
		title          string
		budget         float64
		wantBottleneck Component
		wantItems      []string
		wantPriorities []upgrade.Priority
		wantCost       float64
	}{
		{
			"entry level pc",
			entrySpecs, "Cyberpunk 2077", 500, ComponentRAM,
			[]string{"GPU", "CPU", "RAM"},
			[]upgrade.Priority{upgrade.PriorityMedium, upgrade.PriorityMedium, upgrade.PriorityHigh},
			915,
		},
		{
			"cpu bound pc on a small budget",
			performance.Specs{CPU: "Intel i5-12400", GPU: "NVIDIA RTX 4060", RAM: "16 GB"}, "Elden Ring", 300, ComponentCPU,
			[]string{"CPU", "RAM"},
			[]upgrade.Priority{upgrade.PriorityHigh, upgrade.PriorityLow},
			465,
		},
		{
			"gpu bound pc",
			performance.Specs{CPU: "Intel i9-14900k", GPU: "NVIDIA RTX 3060", RAM: "32 GB"}, "Starfield", 1000, ComponentGPU,
			[]string{"GPU"},
			[]upgrade.Priority{upgrade.PriorityHigh},
			450,
		},
		{
			"budget too small for anything",
			entrySpecs, "Minecraft", 50, ComponentRAM,
			nil, nil, 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := p.Fallback(Request{Specs: tt.specs, Game: game(t, tt.title), Budget: tt.budget, TargetFPS: 90})

			if plan.Source != SourceFallback {
				t.Errorf("Source = %s, want %s", plan.Source, SourceFallback)
			}
			if plan.Analysis.Bottleneck != string(tt.wantBottleneck) {
				t.Errorf("Bottleneck = %s, want %s", plan.Analysis.Bottleneck, tt.wantBottleneck)
			}
			if len(plan.Recommendations) != len(tt.wantItems) {
				t.Fatalf("Got %d recommendations, want %d", len(plan.Recommendations), len(tt.wantItems))
			}

			var sum float64
			for i, rec := range plan.Recommendations {
				if rec.Component != tt.wantItems[i] {
					t.Errorf("Item %d component = %s, want %s", i, rec.Component, tt.wantItems[i])
				}
				if rec.Priority != tt.wantPriorities[i] {
					t.Errorf("Item %d priority = %s, want %s", i, rec.Priority, tt.wantPriorities[i])
				}
				if rec.CurrentComponent == "" || rec.Link == "" || rec.Reason == "" {
					t.Errorf("Item %d is missing details: %+v", i, rec)
				}
				sum += rec.Price
			}
			if plan.TotalCost != tt.wantCost || plan.TotalCost != sum {
				t.Errorf("TotalCost = %v, want %v (sum %v)", plan.TotalCost, tt.wantCost, sum)
			}
			if plan.ExpectedFPS != plan.CurrentFPS+FlatImprovementFPS {
				t.Errorf("ExpectedFPS = %d, want %d", plan.ExpectedFPS, plan.CurrentFPS+FlatImprovementFPS)
			}
			if plan.Analysis.BottleneckReason == "" || plan.Analysis.OverallAssessment == "" {
				t.Error("Expected analysis narrative")
			}
			if !strings.Contains(plan.Analysis.OverallAssessment, "90+ FPS") {
				t.Errorf("Assessment does not mention the target: %q", plan.Analysis.OverallAssessment)
			}
		})
	}
}

func TestFallbackDefaults(t *testing.T) {
	p := newPlanner(t)
	plan := p.Fallback(Request{Specs: entrySpecs, Game: game(t, "Cyberpunk 2077")})

	if plan.Budget != DefaultBudget {
		t.Errorf("Budget = %v, want %v", plan.Budget, DefaultBudget)
	}
	if plan.TargetFPS != DefaultTargetFPS {
		t.Errorf("TargetFPS = %d, want %d", plan.TargetFPS, DefaultTargetFPS)
	}
	if plan.CurrentFPS != 60 {
		t.Errorf("CurrentFPS = %d, want 60", plan.CurrentFPS)
	}
	if plan.ExpectedFPS != 110 {
		t.Errorf("ExpectedFPS = %d, want 110", plan.ExpectedFPS)
	}
	if plan.Compatibility.Status != compat.StatusGood {
		t.Errorf("Compatibility status = %s, want %s", plan.Compatibility.Status, compat.StatusGood)
	}
}

func TestNormalizeTreatsNonPositiveAsOmitted(t *testing.T) {
	tests := []struct {
		name       string
		req        Request
		wantBudget float64
		wantTarget int
	}{
		{"omitted", Request{}, DefaultBudget, DefaultTargetFPS},
		{"explicit zero", Request{Budget: 0, TargetFPS: 0}, DefaultBudget, DefaultTargetFPS},
		{"negative", Request{Budget: -50, TargetFPS: -1}, DefaultBudget, DefaultTargetFPS},
		{"positive kept", Request{Budget: 80, TargetFPS: 144}, 80, 144},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.req.Normalize()
			if got.Budget != tt.wantBudget || got.TargetFPS != tt.wantTarget {
				t.Errorf("Normalize() = %v/%d, want %v/%d", got.Budget, got.TargetFPS, tt.wantBudget, tt.wantTarget)
			}
		})
	}
}

const validPlan = `Here is your plan:
{
  "analysis": {
    "bottleneck": "GPU",
    "bottleneckReason": "The GPU is old.",
    "cpuImpact": "Minor.",
    "gpuImpact": "Major.",
    "ramImpact": "None.",
    "overallAssessment": "Upgrade the GPU."
  },
  "recommendations": [
    {"component": "GPU", "name": "AMD Radeon RX 7700 XT", "currentComponent": "NVIDIA GTX 1650", "price": 420, "reason": "Faster.", "fpsGain": "+35-45 FPS", "priority": "high", "link": "https://www.amazon.com/s?k=RX+7700+XT"},
    {"component": "RAM", "name": "32GB DDR5", "currentComponent": "8 GB", "price": 99.5, "reason": "More.", "fpsGain": "+10 FPS", "priority": "urgent", "link": ""}
  ],
  "expectedFPS": 104.6,
  "totalCost": 1
}
Good luck!`

func TestFromExternal(t *testing.T) {
	p := newPlanner(t)
	req := Request{Specs: entrySpecs, Game: game(t, "Cyberpunk 2077"), Budget: 800, TargetFPS: 90}

	plan, err := p.FromExternal(req, validPlan, 0)
	if err != nil {
		t.Fatalf("FromExternal() error = %v", err)
	}

	if plan.Source != SourceExternal {
		t.Errorf("Source = %s, want %s", plan.Source, SourceExternal)
	}
	if plan.Analysis.Bottleneck != "GPU" {
		t.Errorf("Bottleneck = %s, want GPU", plan.Analysis.Bottleneck)
	}
	if len(plan.Recommendations) != 2 {
		t.Fatalf("Expected 2 recommendations, got %d", len(plan.Recommendations))
	}
	if plan.Recommendations[1].Priority != upgrade.PriorityMedium {
		t.Errorf("Unknown priority should become medium, got %s", plan.Recommendations[1].Priority)
	}
	if plan.TotalCost != 519.5 {
		t.Errorf("TotalCost = %v, want 519.5", plan.TotalCost)
	}
	if plan.ExpectedFPS != 105 {
		t.Errorf("ExpectedFPS = %d, want 105", plan.ExpectedFPS)
	}
	if plan.CurrentFPS != 60 || plan.TargetFPS != 90 || plan.Budget != 800 {
		t.Errorf("Unexpected echoed inputs: %+v", plan)
	}
}

func TestFromExternalRejects(t *testing.T) {
	p := newPlanner(t)
	req := Request{Specs: entrySpecs, Game: game(t, "Cyberpunk 2077")}

	tests := []struct {
		name     string
		text     string
		maxBytes int
		wantErr  error
	}{
		{"plain prose", "I cannot help with that.", 0, ErrNoPlanJSON},
		{"empty", "", 0, ErrNoPlanJSON},
		{"missing analysis", `{"recommendations": [{"name": "x", "price": 1}]}`, 0, ErrIncompletePlan},
		{"empty bottleneck", `{"analysis": {"bottleneck": " "}, "recommendations": [{"name": "x", "price": 1}]}`, 0, ErrIncompletePlan},
		{"empty recommendations", `{"analysis": {"bottleneck": "GPU"}, "recommendations": []}`, 0, ErrIncompletePlan},
		{"unnamed item", `{"analysis": {"bottleneck": "GPU"}, "recommendations": [{"name": "", "price": 1}]}`, 0, ErrInvalidPlanItem},
		{"negative price", `{"analysis": {"bottleneck": "GPU"}, "recommendations": [{"name": "x", "price": -5}]}`, 0, ErrInvalidPlanItem},
		{"too large", validPlan, 64, ErrPlanTooLarge},
		{"huge expected fps", `{"analysis": {"bottleneck": "GPU"}, "recommendations": [{"name": "x", "price": 10, "priority": "high"}], "expectedFPS": 1e30}`, 0, ErrImplausibleFPS},
		{"expected fps above cap", `{"analysis": {"bottleneck": "GPU"}, "recommendations": [{"name": "x", "price": 10}], "expectedFPS": 1001}`, 0, ErrImplausibleFPS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.FromExternal(req, tt.text, tt.maxBytes)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("FromExternal() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := p.FromExternal(req, `{"analysis": "GPU", "recommendations": "none"}`, 0); err == nil {
		t.Error("Expected a decode error for mistyped fields")
	}
}
