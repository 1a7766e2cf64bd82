// Package compat classifies estimated frame rates into compatibility tiers
package compat

import (
	"sort"

	"github.com/gamepulse/gamepulse-api/internal/catalog"
	"github.com/gamepulse/gamepulse-api/internal/performance"
)

// Status is the compatibility verdict for a PC and a game
type Status string

const (
	StatusExcellent    Status = "excellent"
	StatusGood         Status = "good"
	StatusPlayable     Status = "playable"
	StatusInsufficient Status = "insufficient"
	StatusUnknown      Status = "unknown"
)

// Tier is the requirement level the PC reaches
type Tier string

const (
	TierHigh         Tier = "high"
	TierRecommended  Tier = "recommended"
	TierMinimum      Tier = "minimum"
	TierBelowMinimum Tier = "below_minimum"
)

// Frame rate thresholds, evaluated from the top
const (
	ExcellentFPS = 120
	GoodFPS      = 60
	PlayableFPS  = 30
)

// Result is the outcome of a compatibility check
type Result struct {
	Status         Status  `json:"status"`
	Tier           Tier    `json:"level"`
	Message        string  `json:"message"`
	EstimatedFPS   int     `json:"estimatedFPS"`
	CPUPerformance float64 `json:"cpuPerformance"`
	GPUPerformance float64 `json:"gpuPerformance"`
	// RAMPerformance is the parsed RAM size in GB, not a catalog score
	RAMPerformance int `json:"ramPerformance"`

	HighTierCPU bool `json:"highTierCpu"`
	HighTierGPU bool `json:"highTierGpu"`
	HighTierRAM bool `json:"highTierRam"`
}

// GamePerformance is one row of the performance graph
type GamePerformance struct {
	Game   string `json:"game"`
	FPS    int    `json:"fps"`
	Status Status `json:"status"`
	Tier   Tier   `json:"level"`
}

// Classifier turns estimated frame rates into compatibility results
type Classifier struct {
	model *performance.Model
}

// NewClassifier creates a classifier backed by a performance model
func NewClassifier(model *performance.Model) *Classifier {
	return &Classifier{model: model}
}

// Classify estimates the frame rate of specs for a title and maps it to a
// status and tier. It has no failure path.
func (c *Classifier) Classify(specs performance.Specs, requirements catalog.Game, title string) Result {
	fps := c.model.EstimateFPS(specs, title)
	status, tier, message := ClassifyFPS(fps)
	ramGB := catalog.ParseSizeGB(specs.RAM)

	return Result{
		Status:         status,
		Tier:           tier,
		Message:        message,
		EstimatedFPS:   fps,
		CPUPerformance: c.model.Score(specs.CPU, catalog.CategoryCPU),
		GPUPerformance: c.model.Score(specs.GPU, catalog.CategoryGPU),
		RAMPerformance: ramGB,
		HighTierCPU:    requirements.High.HasCPU(specs.CPU),
		HighTierGPU:    requirements.High.HasGPU(specs.GPU),
		HighTierRAM:    ramGB >= requirements.High.RAMGB(),
	}
}

// ClassifyFPS maps a frame rate onto the threshold ladder
func ClassifyFPS(fps int) (Status, Tier, string) {
	switch {
	case fps >= ExcellentFPS:
		return StatusExcellent, TierHigh, "Excellent! 120+ FPS"
	case fps >= GoodFPS:
		return StatusGood, TierRecommended, "Good! 60+ FPS"
	case fps >= PlayableFPS:
		return StatusPlayable, TierMinimum, "Playable, 30-60 FPS"
	default:
		return StatusInsufficient, TierBelowMinimum, "Below 30 FPS"
	}
}

// Graph classifies specs against every game and orders the rows by
// estimated frame rate, highest first. Ties keep catalog order.
func (c *Classifier) Graph(specs performance.Specs, games []catalog.Game) []GamePerformance {
	rows := make([]GamePerformance, 0, len(games))
	for _, g := range games {
		r := c.Classify(specs, g, g.Title)
		rows = append(rows, GamePerformance{
			Game:   g.Title,
			FPS:    r.EstimatedFPS,
			Status: r.Status,
			Tier:   r.Tier,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].FPS > rows[j].FPS
	})
	return rows
}
