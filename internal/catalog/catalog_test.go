package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	if c.Version() == "" {
		t.Error("Expected non-empty catalog version")
	}
	if got := len(c.Games()); got != 15 {
		t.Errorf("Expected 15 games, got %d", got)
	}
	if got := c.Count(CategoryCPU); got != 8 {
		t.Errorf("Expected 8 CPUs, got %d", got)
	}
	if got := c.Count(CategoryGPU); got != 6 {
		t.Errorf("Expected 6 GPUs, got %d", got)
	}
	if got := c.Count(CategoryRAM); got != 4 {
		t.Errorf("Expected 4 RAM sizes, got %d", got)
	}

	titles := c.Titles()
	if titles[0] != "Counter-Strike 2" || titles[len(titles)-1] != "Starfield" {
		t.Errorf("Expected document order, got first=%q last=%q", titles[0], titles[len(titles)-1])
	}
}

func TestLookup(t *testing.T) {
	c := Default()

	tests := []struct {
		name     string
		category Category
		id       string
		wantOK   bool
		wantPerf float64
		wantCost float64
		wantTier BudgetTier
	}{
		{"known cpu", CategoryCPU, "Intel i5-12400", true, 150, 180, BudgetMedium},
		{"known gpu", CategoryGPU, "AMD RX 7800 XT", true, 280, 550, BudgetHigh},
		{"known ram", CategoryRAM, "32 GB", true, 200, 100, BudgetMedium},
		{"wrong category", CategoryGPU, "Intel i5-12400", false, 0, 0, ""},
		{"unknown id", CategoryCPU, "Pentium 4", false, 0, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := c.Lookup(tt.category, tt.id)
			if ok != tt.wantOK {
				t.Fatalf("Lookup ok = %v, want %v", ok, tt.wantOK)
			}
			if e.Performance != tt.wantPerf {
				t.Errorf("Performance = %v, want %v", e.Performance, tt.wantPerf)
			}
			if e.Price != tt.wantCost {
				t.Errorf("Price = %v, want %v", e.Price, tt.wantCost)
			}
			if e.Budget != tt.wantTier {
				t.Errorf("Budget = %v, want %v", e.Budget, tt.wantTier)
			}
		})
	}
}

func TestGameProfile(t *testing.T) {
	c := Default()

	g, ok := c.Game("Cyberpunk 2077")
	if !ok {
		t.Fatal("Expected Cyberpunk 2077 in catalog")
	}
	if g.FPSMultiplier != 0.6 {
		t.Errorf("FPSMultiplier = %v, want 0.6", g.FPSMultiplier)
	}
	if g.High.RAMGB() != 32 {
		t.Errorf("High RAM = %d, want 32", g.High.RAMGB())
	}
	if !g.High.HasCPU("Intel i9-14900k") {
		t.Error("Expected i9-14900k in high tier")
	}
	if g.High.HasGPU("NVIDIA GTX 1650") {
		t.Error("GTX 1650 should not be in high tier")
	}

	if _, ok := c.Game("Half-Life 3"); ok {
		t.Error("Expected unknown title to be absent")
	}
}

func TestParseSizeGB(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"8 GB", 8},
		{"16GB", 16},
		{"  32 GB ", 32},
		{"64", 64},
		{"", 0},
		{"lots", 0},
		{"GB 16", 0},
		{"-8 GB", 0},
	}

	for _, tt := range tests {
		if got := ParseSizeGB(tt.in); got != tt.want {
			t.Errorf("ParseSizeGB(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	valid := `version: "t1"
components:
  cpu:
    "A":
      price: 10
      link: "https://example.com/a"
      performance: 100
      budget: low
games:
  - title: "G"
    fps_multiplier: 1.0
    minimum: {cpu: ["A"], gpu: [], ram: "8 GB"}
    recommended: {cpu: ["A"], gpu: [], ram: "8 GB"}
    high: {cpu: ["A"], gpu: [], ram: "16 GB"}
`
	if _, err := Parse([]byte(valid)); err != nil {
		t.Fatalf("Expected valid document, got %v", err)
	}

	tests := []struct {
		name    string
		old     string
		new     string
		wantErr string
	}{
		{"missing version", `version: "t1"`, `version: ""`, "version"},
		{"negative price", "price: 10", "price: -1", "price"},
		{"zero performance", "performance: 100", "performance: 0", "performance"},
		{"bad budget", "budget: low", "budget: cheap", "budget"},
		{"relative link", "https://example.com/a", "/a", "link"},
		{"bad category", "  cpu:\n    \"A\"", "  psu:\n    \"A\"", "category"},
		{"zero multiplier", "fps_multiplier: 1.0", "fps_multiplier: 0", "multiplier"},
		{"missing ram", `ram: "16 GB"`, `ram: "lots"`, "RAM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := strings.Replace(valid, tt.old, tt.new, 1)
			_, err := Parse([]byte(doc))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseRejectsDuplicateGames(t *testing.T) {
	doc := `version: "t1"
games:
  - title: "G"
    fps_multiplier: 1.0
    minimum: {ram: "8 GB"}
    recommended: {ram: "8 GB"}
    high: {ram: "8 GB"}
  - title: "G"
    fps_multiplier: 1.0
    minimum: {ram: "8 GB"}
    recommended: {ram: "8 GB"}
    high: {ram: "8 GB"}
`
	if _, err := Parse([]byte(doc)); err == nil {
		t.Error("Expected duplicate game error")
	}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	c, err := Load(ctx, nil)
	if err != nil {
		t.Fatalf("Load embedded failed: %v", err)
	}
	if c != Default() {
		t.Error("Expected embedded load to return the default catalog")
	}

	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "catalog.yaml")
	if err := os.WriteFile(path, Embedded(), 0644); err != nil {
		t.Fatalf("Failed to write catalog: %v", err)
	}

	local, err := Load(ctx, &SourceConfig{Backend: SourceLocal, Path: path})
	if err != nil {
		t.Fatalf("Load local failed: %v", err)
	}
	if local.Version() != Default().Version() {
		t.Errorf("Version = %q, want %q", local.Version(), Default().Version())
	}

	if _, err := Load(ctx, &SourceConfig{Backend: SourceLocal, Path: filepath.Join(tempDir, "missing.yaml")}); err == nil {
		t.Error("Expected error for missing file")
	}

	if _, err := Load(ctx, &SourceConfig{Backend: "ftp"}); err == nil {
		t.Error("Expected error for unsupported backend")
	}
}

func TestBudgetTierValid(t *testing.T) {
	for _, b := range []BudgetTier{BudgetLow, BudgetMedium, BudgetHigh} {
		if !b.Valid() {
			t.Errorf("Expected %q to be valid", b)
		}
	}
	if BudgetTier("ultra").Valid() {
		t.Error("Expected ultra to be invalid")
	}
}

func TestParseBudgetTier(t *testing.T) {
	tests := []struct {
		in   string
		want BudgetTier
	}{
		{"low", BudgetLow},
		{" HIGH ", BudgetHigh},
		{"Medium", BudgetMedium},
		{"", BudgetMedium},
		{"junk-7", BudgetMedium},
	}

	for _, tt := range tests {
		if got := ParseBudgetTier(tt.in); got != tt.want {
			t.Errorf("ParseBudgetTier(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
