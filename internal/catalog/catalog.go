// Package catalog provides the hardware reference catalog and game requirement profiles
package catalog

import (
	_ "embed"
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Category is a hardware component category
type Category string

const (
	CategoryCPU Category = "cpu"
	CategoryGPU Category = "gpu"
	CategoryRAM Category = "ram"
)

// Categories lists every category in catalog order
var Categories = []Category{CategoryCPU, CategoryGPU, CategoryRAM}

// BudgetTier is both a property of a catalog entry and a caller-supplied upgrade filter
type BudgetTier string

const (
	BudgetLow    BudgetTier = "low"
	BudgetMedium BudgetTier = "medium"
	BudgetHigh   BudgetTier = "high"
)

// Valid reports whether b is one of the known budget tiers
func (b BudgetTier) Valid() bool {
	switch b {
	case BudgetLow, BudgetMedium, BudgetHigh:
		return true
	}
	return false
}

// ParseBudgetTier normalizes a caller-supplied budget. Case and surrounding
// space are ignored; empty and unknown values select BudgetMedium.
func ParseBudgetTier(s string) BudgetTier {
	b := BudgetTier(strings.ToLower(strings.TrimSpace(s)))
	if !b.Valid() {
		return BudgetMedium
	}
	return b
}

// Entry holds price and performance metadata for a single component
type Entry struct {
	Price       float64    `yaml:"price" json:"price"`
	Link        string     `yaml:"link" json:"link"`
	Performance float64    `yaml:"performance" json:"performance"`
	Budget      BudgetTier `yaml:"budget" json:"budget"`
}

// Tier lists the acceptable components for one requirement level of a game
type Tier struct {
	CPU []string `yaml:"cpu" json:"cpu"`
	GPU []string `yaml:"gpu" json:"gpu"`
	RAM string   `yaml:"ram" json:"ram"`
}

// HasCPU reports whether id is an acceptable CPU for this tier
func (t Tier) HasCPU(id string) bool {
	return contains(t.CPU, id)
}

// HasGPU reports whether id is an acceptable GPU for this tier
func (t Tier) HasGPU(id string) bool {
	return contains(t.GPU, id)
}

// RAMGB returns the minimum RAM size of the tier in GB
func (t Tier) RAMGB() int {
	return ParseSizeGB(t.RAM)
}

// Game is the requirement profile of a single title
type Game struct {
	Title         string  `yaml:"title" json:"title"`
	FPSMultiplier float64 `yaml:"fps_multiplier" json:"fps_multiplier"`
	Minimum       Tier    `yaml:"minimum" json:"minimum"`
	Recommended   Tier    `yaml:"recommended" json:"recommended"`
	High          Tier    `yaml:"high" json:"high"`
}

type document struct {
	Version    string                      `yaml:"version"`
	Components map[string]map[string]Entry `yaml:"components"`
	Games      []Game                      `yaml:"games"`
}

type entryKey struct {
	category Category
	id       string
}

// Catalog is an immutable, keyed view of the reference data.
// It is safe for concurrent use since nothing mutates it after Parse.
type Catalog struct {
	version string
	entries map[entryKey]Entry
	ids     map[Category][]string
	games   map[string]Game
	titles  []string
}

//go:embed catalog.yaml
var embeddedCatalog []byte

var (
	defaultCatalog *Catalog
	defaultOnce    sync.Once
)

// Default returns the catalog compiled into the binary
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(embeddedCatalog)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded catalog is invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Embedded returns the raw embedded catalog document
func Embedded() []byte {
	out := make([]byte, len(embeddedCatalog))
	copy(out, embeddedCatalog)
	return out
}

// Parse decodes and validates a YAML (or JSON) catalog document
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	if err := doc.validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	c := &Catalog{
		version: doc.Version,
		entries: make(map[entryKey]Entry),
		ids:     make(map[Category][]string),
		games:   make(map[string]Game, len(doc.Games)),
		titles:  make([]string, 0, len(doc.Games)),
	}

	for _, cat := range Categories {
		for id, entry := range doc.Components[string(cat)] {
			c.entries[entryKey{cat, id}] = entry
			c.ids[cat] = append(c.ids[cat], id)
		}
	}

	for _, g := range doc.Games {
		c.games[g.Title] = g
		c.titles = append(c.titles, g.Title)
	}

	return c, nil
}

// LoadFromFile loads a catalog document from the local filesystem
func LoadFromFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Version returns the version label of the catalog document
func (c *Catalog) Version() string {
	return c.version
}

// Lookup returns the entry for (category, id)
func (c *Catalog) Lookup(category Category, id string) (Entry, bool) {
	e, ok := c.entries[entryKey{category, id}]
	return e, ok
}

// Count returns the number of components in a category
func (c *Catalog) Count(category Category) int {
	return len(c.ids[category])
}

// Game returns the requirement profile for a title
func (c *Catalog) Game(title string) (Game, bool) {
	g, ok := c.games[title]
	return g, ok
}

// Games returns every game profile in document order
func (c *Catalog) Games() []Game {
	out := make([]Game, 0, len(c.titles))
	for _, t := range c.titles {
		out = append(out, c.games[t])
	}
	return out
}

// Titles returns every game title in document order
func (c *Catalog) Titles() []string {
	out := make([]string, len(c.titles))
	copy(out, c.titles)
	return out
}

func (d *document) validate() error {
	if strings.TrimSpace(d.Version) == "" {
		return fmt.Errorf("version must be specified")
	}

	for name, entries := range d.Components {
		switch Category(name) {
		case CategoryCPU, CategoryGPU, CategoryRAM:
		default:
			return fmt.Errorf("unknown component category %q", name)
		}

		for id, e := range entries {
			if e.Price < 0 {
				return fmt.Errorf("%s %q: price cannot be negative", name, id)
			}
			if e.Performance <= 0 {
				return fmt.Errorf("%s %q: performance must be positive", name, id)
			}
			if !e.Budget.Valid() {
				return fmt.Errorf("%s %q: unknown budget tier %q", name, id, e.Budget)
			}
			if e.Link != "" {
				if u, err := url.Parse(e.Link); err != nil || u.Scheme == "" {
					return fmt.Errorf("%s %q: link must be an absolute URI", name, id)
				}
			}
		}
	}

	seen := make(map[string]bool, len(d.Games))
	for _, g := range d.Games {
		if strings.TrimSpace(g.Title) == "" {
			return fmt.Errorf("game title must be specified")
		}
		if seen[g.Title] {
			return fmt.Errorf("duplicate game %q", g.Title)
		}
		seen[g.Title] = true

		if g.FPSMultiplier <= 0 {
			return fmt.Errorf("game %q: fps multiplier must be positive", g.Title)
		}
		for level, t := range map[string]Tier{"minimum": g.Minimum, "recommended": g.Recommended, "high": g.High} {
			if t.RAMGB() <= 0 {
				return fmt.Errorf("game %q: %s tier has no RAM size", g.Title, level)
			}
		}
	}

	return nil
}

// ParseSizeGB parses the leading integer of a size string such as "16 GB".
// Input without a leading number yields 0.
func ParseSizeGB(s string) int {
	s = strings.TrimSpace(s)
	n := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			break
		}
		if n > (1<<31-1)/10 {
			return n
		}
		n = n*10 + int(ch-'0')
	}
	return n
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
