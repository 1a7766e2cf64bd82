package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gamepulse/gamepulse-api/internal/llm"
	"github.com/gamepulse/gamepulse-api/internal/planner"
)

const (
	defaultQuestion      = "Tell me about this component"
	defaultCharacterType = "hero"

	// maxSuggestions caps the number of suggested games returned
	maxSuggestions = 5
)

var errInvalidSuggestions = errors.New("no usable game suggestions")

// invalidSuggestions is served when generated suggestions cannot be used
var invalidSuggestions = []GameSuggestion{
	{Title: "Counter-Strike 2", Genre: "Shooter", Reason: "A classic tactical shooter", Performance: "high"},
	{Title: "Minecraft", Genre: "Sandbox", Reason: "Perfect for creativity", Performance: "high"},
	{Title: "Valorant", Genre: "Shooter", Reason: "A modern team shooter", Performance: "medium"},
}

// unavailableSuggestions is served when the generator could not be reached
var unavailableSuggestions = []GameSuggestion{
	{Title: "Counter-Strike 2", Genre: "Shooter", Reason: "Excellent optimization", Performance: "high"},
	{Title: "Fortnite", Genre: "Battle Royale", Reason: "A popular battle royale", Performance: "medium"},
	{Title: "Minecraft", Genre: "Sandbox", Reason: "Runs on almost any PC", Performance: "high"},
	{Title: "Valorant", Genre: "Shooter", Reason: "A tactical team shooter", Performance: "medium"},
}

// ExplainUpgrade answers a question about a recommendation, continuing the
// given conversation
func (s *Service) ExplainUpgrade(ctx context.Context, req ExplainRequest) (Explanation, error) {
	if _, err := s.user(ctx, req.Email); err != nil {
		return Explanation{}, err
	}

	messages := []llm.Message{{Role: llm.RoleSystem, Content: explainSystemPrompt(req.Game, req.Recommendation)}}
	for _, turn := range req.History {
		if strings.TrimSpace(turn.Text) == "" {
			continue
		}
		role := llm.RoleAssistant
		if turn.IsUser {
			role = llm.RoleUser
		}
		messages = append(messages, llm.Message{Role: role, Content: turn.Text})
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: orDefault(req.Question, defaultQuestion)})

	text, err := s.generate(ctx, "explanation", messages, nil, llm.WithMaxTokens(300))
	if err != nil {
		return Explanation{Text: fallbackExplanation(req), Fallback: true}, nil
	}
	return Explanation{Text: text}, nil
}

func fallbackExplanation(req ExplainRequest) string {
	rec := req.Recommendation
	return fmt.Sprintf("Upgrading the %s from %s to %s will noticeably improve performance in %s. "+
		"You will be able to play on higher graphics settings with better FPS. "+
		"At $%s it is a great investment in your gaming experience!",
		orDefault(rec.Component, "component"),
		orDefault(rec.Current, "the current part"),
		orDefault(rec.Recommended, "the recommended part"),
		req.Game,
		formatPrice(rec.Price))
}

// RecommendGames suggests catalog games that suit a user's PC and
// preferences. Suggestions outside the catalog are dropped.
func (s *Service) RecommendGames(ctx context.Context, email, preferences string) (*GameSuggestions, error) {
	specs, err := s.specsFor(ctx, email)
	if err != nil {
		return nil, err
	}

	var games []GameSuggestion
	_, err = s.generate(ctx, "games", []llm.Message{
		{Role: llm.RoleSystem, Content: gamesSystemPrompt},
		{Role: llm.RoleUser, Content: gamesPrompt(specs, s.catalog.Titles(), preferences)},
	}, func(text string) error {
		var ok bool
		if games, ok = s.parseSuggestions(text); !ok {
			return errInvalidSuggestions
		}
		return nil
	}, llm.WithMaxTokens(500))

	switch {
	case errors.Is(err, errInvalidSuggestions):
		return &GameSuggestions{Games: invalidSuggestions, UserPC: specs, Fallback: true}, nil
	case err != nil:
		return &GameSuggestions{Games: unavailableSuggestions, UserPC: specs, Fallback: true}, nil
	}
	return &GameSuggestions{Games: games, UserPC: specs}, nil
}

func (s *Service) parseSuggestions(text string) ([]GameSuggestion, bool) {
	raw, err := planner.ExtractJSON(text)
	if err != nil {
		return nil, false
	}

	var out struct {
		Games []GameSuggestion `json:"games"`
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, false
	}

	seen := make(map[string]bool)
	games := make([]GameSuggestion, 0, len(out.Games))
	for _, g := range out.Games {
		if _, ok := s.catalog.Game(g.Title); !ok || seen[g.Title] {
			continue
		}
		seen[g.Title] = true
		games = append(games, g)
		if len(games) == maxSuggestions {
			break
		}
	}
	return games, len(games) > 0
}

// GenerateCharacter writes a short character description for a game
func (s *Service) GenerateCharacter(ctx context.Context, email, game, characterType string) (Character, error) {
	if _, err := s.user(ctx, email); err != nil {
		return Character{}, err
	}
	characterType = orDefault(characterType, defaultCharacterType)

	text, err := s.generate(ctx, "character", []llm.Message{
		{Role: llm.RoleSystem, Content: characterSystemPrompt},
		{Role: llm.RoleUser, Content: characterPrompt(game, characterType)},
	}, nil, llm.WithMaxTokens(300))
	if err != nil {
		return Character{
			Game: game,
			Type: characterType,
			Description: fmt.Sprintf("Picture a strong warrior with unique abilities for %s. "+
				"This hero has incredible strength and can help the team to victory!", game),
			Fallback: true,
		}, nil
	}

	return Character{Game: game, Type: characterType, Description: text}, nil
}
