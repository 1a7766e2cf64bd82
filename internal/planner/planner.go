// Package planner builds dollar-budgeted upgrade plans around a single
// bottleneck component. The deterministic plan is always available; an
// externally generated plan is accepted only after shape validation.
package planner

import (
	"fmt"

	"github.com/gamepulse/gamepulse-api/internal/catalog"
	"github.com/gamepulse/gamepulse-api/internal/compat"
	"github.com/gamepulse/gamepulse-api/internal/performance"
	"github.com/gamepulse/gamepulse-api/internal/upgrade"
)

// Component names a bottleneck candidate
type Component string

const (
	ComponentCPU Component = "CPU"
	ComponentGPU Component = "GPU"
	ComponentRAM Component = "RAM"
)

// Source records where a plan came from
type Source string

const (
	SourceFallback Source = "fallback"
	SourceExternal Source = "external"
)

const (
	DefaultBudget    = 500.0
	DefaultTargetFPS = 60

	// FlatImprovementFPS is added to the current estimate for expectedFPS
	FlatImprovementFPS = 50

	// RAM below this size in GB is always the bottleneck
	RAMBottleneckGB = 16
	// CPU is the bottleneck when its score is below this share of the GPU score
	CPUBottleneckRatio = 0.7
)

// Request holds the inputs of a plan
type Request struct {
	Specs     performance.Specs
	Game      catalog.Game
	Budget    float64
	TargetFPS int
}

// Analysis explains the bottleneck and each component's influence
type Analysis struct {
	Bottleneck        string `json:"bottleneck"`
	BottleneckReason  string `json:"bottleneckReason"`
	CPUImpact         string `json:"cpuImpact"`
	GPUImpact         string `json:"gpuImpact"`
	RAMImpact         string `json:"ramImpact"`
	OverallAssessment string `json:"overallAssessment"`
}

// Recommendation is one purchase in a plan
type Recommendation struct {
	Component        string           `json:"component"`
	Name             string           `json:"name"`
	CurrentComponent string           `json:"currentComponent"`
	Price            float64          `json:"price"`
	Reason           string           `json:"reason"`
	FPSGain          string           `json:"fpsGain"`
	Priority         upgrade.Priority `json:"priority"`
	Link             string           `json:"link"`
}

// Plan is a prioritized, cost-bounded upgrade plan
type Plan struct {
	Source          Source           `json:"source"`
	CurrentFPS      int              `json:"currentFPS"`
	TargetFPS       int              `json:"targetFPS"`
	Budget          float64          `json:"budget"`
	Compatibility   compat.Result    `json:"compatibility"`
	Analysis        Analysis         `json:"analysis"`
	Recommendations []Recommendation `json:"recommendations"`
	ExpectedFPS     int              `json:"expectedFPS"`
	TotalCost       float64          `json:"totalCost"`
}

// Planner builds upgrade plans from the performance model
type Planner struct {
	model      *performance.Model
	classifier *compat.Classifier
}

// NewPlanner creates a planner backed by a performance model
func NewPlanner(model *performance.Model) *Planner {
	return &Planner{
		model:      model,
		classifier: compat.NewClassifier(model),
	}
}

// Bottleneck applies the fixed decision rule: low RAM first, then a CPU
// well behind the GPU, otherwise the GPU.
func Bottleneck(cpuPerf, gpuPerf float64, ramGB int) Component {
	switch {
	case ramGB < RAMBottleneckGB:
		return ComponentRAM
	case cpuPerf < gpuPerf*CPUBottleneckRatio:
		return ComponentCPU
	default:
		return ComponentGPU
	}
}

// Normalize fills in default budget and target frame rate. Zero and
// negative values count as omitted.
func (r Request) Normalize() Request {
	if r.Budget <= 0 {
		r.Budget = DefaultBudget
	}
	if r.TargetFPS <= 0 {
		r.TargetFPS = DefaultTargetFPS
	}
	return r
}

// Base returns the plan skeleton shared by deterministic and external plans:
// the current estimate, the compatibility snapshot and the echoed inputs.
func (p *Planner) Base(req Request) Plan {
	req = req.Normalize()
	snapshot := p.classifier.Classify(req.Specs, req.Game, req.Game.Title)

	return Plan{
		CurrentFPS:      snapshot.EstimatedFPS,
		TargetFPS:       req.TargetFPS,
		Budget:          req.Budget,
		Compatibility:   snapshot,
		Recommendations: []Recommendation{},
	}
}

// Fallback builds the deterministic plan. It never fails.
func (p *Planner) Fallback(req Request) Plan {
	req = req.Normalize()
	plan := p.Base(req)
	plan.Source = SourceFallback

	in := inputs{
		specs:   req.Specs,
		title:   req.Game.Title,
		target:  req.TargetFPS,
		budget:  req.Budget,
		cpuPerf: p.model.Score(req.Specs.CPU, catalog.CategoryCPU),
		gpuPerf: p.model.Score(req.Specs.GPU, catalog.CategoryGPU),
		ramGB:   catalog.ParseSizeGB(req.Specs.RAM),
	}
	in.bottleneck = Bottleneck(in.cpuPerf, in.gpuPerf, in.ramGB)

	for _, opt := range options {
		if !opt.offered(in) {
			continue
		}
		plan.Recommendations = append(plan.Recommendations, opt.recommend(in))
		plan.TotalCost += opt.price
	}

	plan.Analysis = analyze(in)
	plan.ExpectedFPS = plan.CurrentFPS + FlatImprovementFPS
	return plan
}

func analyze(in inputs) Analysis {
	a := Analysis{
		Bottleneck: string(in.bottleneck),
		CPUImpact: fmt.Sprintf("In %s the CPU handles game logic, physics and AI. "+
			"A weak processor causes FPS drops in busy scenes.", in.title),
		GPUImpact: fmt.Sprintf("The GPU renders the graphics in %s. "+
			"A stronger card allows higher settings and steadier FPS.", in.title),
		RAMImpact: "RAM holds loaded textures and game data. " +
			"Running short causes stuttering while assets stream in and lowers FPS.",
		OverallAssessment: fmt.Sprintf("Your system can run %s, but a comfortable %d+ FPS needs an upgrade. "+
			"The main bottleneck is the %s.", in.title, in.target, in.bottleneck),
	}

	switch in.bottleneck {
	case ComponentGPU:
		a.BottleneckReason = fmt.Sprintf("Your graphics card %s is the main limit. In %s the GPU renders the scene "+
			"and the current card cannot keep up with modern settings.", in.specs.GPU, in.title)
	case ComponentCPU:
		a.BottleneckReason = fmt.Sprintf("Your processor %s holds performance back. "+
			"%s needs a strong CPU for physics, AI and game logic.", in.specs.CPU, in.title)
	default:
		a.BottleneckReason = fmt.Sprintf("%s of RAM is not enough. "+
			"Modern games rely on memory to cache textures and data.", in.specs.RAM)
	}
	return a
}
