package advisor

import (
	"github.com/gamepulse/gamepulse-api/internal/catalog"
	"github.com/gamepulse/gamepulse-api/internal/compat"
	"github.com/gamepulse/gamepulse-api/internal/performance"
	"github.com/gamepulse/gamepulse-api/internal/upgrade"
)

// CompatibilityReport is a classification together with the inputs it used
type CompatibilityReport struct {
	Compatibility compat.Result     `json:"compatibility"`
	UserPC        performance.Specs `json:"userPC"`
	Requirements  Requirements      `json:"gameRequirements"`
}

// Requirements are the published tiers of a game
type Requirements struct {
	Minimum     catalog.Tier `json:"minimum"`
	Recommended catalog.Tier `json:"recommended"`
}

// UpgradeReport is a budget-tier upgrade selection for a user's PC
type UpgradeReport struct {
	upgrade.Result
	UserPC performance.Specs `json:"userPC"`
}

// GraphReport is the performance of a user's PC across the catalog
type GraphReport struct {
	PerformanceData []compat.GamePerformance `json:"performanceData"`
	UserPC          performance.Specs        `json:"userPC"`
}

// ChatTurn is one earlier message of an explanation conversation
type ChatTurn struct {
	Text   string `json:"text"`
	IsUser bool   `json:"isUser"`
}

// RecommendationRef identifies the recommendation being explained
type RecommendationRef struct {
	Component   string  `json:"component"`
	Current     string  `json:"current"`
	Recommended string  `json:"recommended"`
	Price       float64 `json:"price"`
}

// ExplainRequest asks for a conversational explanation of an upgrade
type ExplainRequest struct {
	Email          string
	Game           string
	Recommendation RecommendationRef
	Question       string
	History        []ChatTurn
}

// Explanation is generated or fallback prose
type Explanation struct {
	Text     string `json:"explanation"`
	Fallback bool   `json:"fallback,omitempty"`
}

// GameSuggestion is one suggested game from the catalog
type GameSuggestion struct {
	Title       string `json:"title"`
	Genre       string `json:"genre"`
	Reason      string `json:"reason"`
	Performance string `json:"performance"`
}

// GameSuggestions is a list of suggested games for a user's PC
type GameSuggestions struct {
	Games    []GameSuggestion  `json:"recommendations"`
	UserPC   performance.Specs `json:"userPC"`
	Fallback bool              `json:"fallback,omitempty"`
}

// Character is a generated game character
type Character struct {
	Game        string `json:"game"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Fallback    bool   `json:"-"`
}
