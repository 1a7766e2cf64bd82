// Package performance estimates frame rates from component identifiers
package performance

import (
	"math"

	"github.com/gamepulse/gamepulse-api/internal/catalog"
)

// Weights and the fallback values below are calibration placeholders
// carried over unchanged; they are not derived from benchmark data.
const (
	// DefaultScore is the performance of any component missing from the catalog
	DefaultScore = 100.0

	// DefaultMultiplier applies to titles without a game profile
	DefaultMultiplier = 1.0

	GPUWeight = 0.5
	CPUWeight = 0.3
	RAMWeight = 0.2
)

// Specs describes a user's PC. Identifiers are free-form and may be
// absent from the catalog.
type Specs struct {
	CPU     string `json:"cpu"`
	GPU     string `json:"gpu"`
	RAM     string `json:"ram"`
	Storage string `json:"storage"`
	OS      string `json:"os"`
}

// Scores holds the resolved per-component performance scores
type Scores struct {
	CPU float64 `json:"cpu"`
	GPU float64 `json:"gpu"`
	RAM float64 `json:"ram"`
}

// Model resolves component scores and estimates frame rates
type Model struct {
	catalog *catalog.Catalog
}

// NewModel creates a performance model over a catalog
func NewModel(c *catalog.Catalog) *Model {
	if c == nil {
		c = catalog.Default()
	}
	return &Model{catalog: c}
}

// Catalog returns the catalog backing the model
func (m *Model) Catalog() *catalog.Catalog {
	return m.catalog
}

// Score returns the performance score of id in category, or DefaultScore
// when the catalog has no such entry.
func (m *Model) Score(id string, category catalog.Category) float64 {
	if e, ok := m.catalog.Lookup(category, id); ok && e.Performance > 0 {
		return e.Performance
	}
	return DefaultScore
}

// Scores resolves CPU, GPU and RAM scores for specs. RAM is resolved
// through the catalog using the size string as the identifier.
func (m *Model) Scores(specs Specs) Scores {
	return Scores{
		CPU: m.Score(specs.CPU, catalog.CategoryCPU),
		GPU: m.Score(specs.GPU, catalog.CategoryGPU),
		RAM: m.Score(specs.RAM, catalog.CategoryRAM),
	}
}

// Multiplier returns the frame rate multiplier for a title
func (m *Model) Multiplier(title string) float64 {
	if g, ok := m.catalog.Game(title); ok && g.FPSMultiplier > 0 {
		return g.FPSMultiplier
	}
	return DefaultMultiplier
}

// EstimateFPS estimates the frame rate of specs in the given title.
// Unknown titles use DefaultMultiplier.
func (m *Model) EstimateFPS(specs Specs, title string) int {
	return Estimate(m.Scores(specs), m.Multiplier(title))
}

// Estimate combines scores and a multiplier into a frame rate
func Estimate(s Scores, multiplier float64) int {
	base := GPUWeight*s.GPU + CPUWeight*s.CPU + RAMWeight*s.RAM
	fps := math.Floor(base*multiplier + 0.5)
	if fps < 0 || math.IsNaN(fps) {
		return 0
	}
	return int(fps)
}
