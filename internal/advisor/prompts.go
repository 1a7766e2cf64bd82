package advisor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gamepulse/gamepulse-api/internal/performance"
	"github.com/gamepulse/gamepulse-api/internal/planner"
)

const (
	planSystemPrompt = "You are a PC hardware expert. Reply ONLY with JSON. Be precise and specific."

	gamesSystemPrompt = "You are an expert in video games and PC hardware. Reply only with JSON."

	characterSystemPrompt = "You are a creative game designer. Create interesting game characters."
)

func planPrompt(req planner.Request, currentFPS int) string {
	s := req.Specs
	return fmt.Sprintf(`You are a PC hardware expert with deep knowledge of component performance and compatibility.

CURRENT SYSTEM:
- CPU: %s
- GPU: %s
- RAM: %s
- Storage: %s
- OS: %s

GAME: %s
CURRENT FPS: %d
TARGET FPS: %d
BUDGET: $%s

TASKS:
1. Analyse the current system in detail
2. Identify the bottleneck component
3. Explain how each component affects FPS in this game
4. Suggest current components for the upgrade
5. Stay within the budget and reach the target FPS

Reply with JSON:
{
  "analysis": {
    "bottleneck": "the most limiting component",
    "bottleneckReason": "why it limits performance (2-3 sentences)",
    "cpuImpact": "how the CPU affects FPS in this game (1-2 sentences)",
    "gpuImpact": "how the GPU affects FPS in this game (1-2 sentences)",
    "ramImpact": "how RAM affects FPS in this game (1-2 sentences)",
    "overallAssessment": "overall assessment (2-3 sentences)"
  },
  "recommendations": [
    {
      "component": "CPU/GPU/RAM",
      "name": "exact model name",
      "currentComponent": "current component",
      "price": number in USD,
      "reason": "why this part and how it improves FPS (2-3 sentences)",
      "fpsGain": "approximate gain, e.g. +30-40 FPS",
      "priority": "high/medium/low",
      "link": "https://www.amazon.com/s?k=model+name"
    }
  ],
  "expectedFPS": number,
  "totalCost": number
}`,
		s.CPU, s.GPU, s.RAM, s.Storage, s.OS,
		req.Game.Title, currentFPS, req.TargetFPS, formatPrice(req.Budget))
}

func explainSystemPrompt(game string, rec RecommendationRef) string {
	return fmt.Sprintf(`You are an expert in PC hardware and games.

IMPORTANT:
- Never repeat your previous answers
- If the user asks something similar, give new information or another angle
- Take the whole conversation into account
- Answer clearly and kindly, without jargon

Context:
- Game: %s
- Current component: %s
- Recommended: %s
- Price: $%s`,
		game,
		orDefault(rec.Current, "not specified"),
		orDefault(rec.Recommended, "not specified"),
		formatPrice(rec.Price))
}

func gamesPrompt(specs performance.Specs, titles []string, preferences string) string {
	return fmt.Sprintf(`You are a video game expert.

User PC:
- CPU: %s
- GPU: %s
- RAM: %s

Available games: %s

User preferences: %s

Recommend 5 games FROM THE AVAILABLE LIST that:
1. Will run on this PC
2. Match the user's preferences
3. Are popular right now

Reply with JSON:
{
  "games": [
    {
      "title": "game title FROM THE LIST",
      "genre": "genre",
      "reason": "why it fits (1 sentence)",
      "performance": "high/medium/low"
    }
  ]
}`,
		specs.CPU, specs.GPU, specs.RAM,
		strings.Join(titles, ", "),
		orDefault(preferences, "any genre"))
}

func characterPrompt(game, characterType string) string {
	return fmt.Sprintf(`Create a unique character for the game %s.

Character type: %s

Describe the character (3-4 sentences):
- Appearance and style
- Abilities and skills
- Backstory
- Role in the game

Be creative and interesting!`, game, characterType)
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
