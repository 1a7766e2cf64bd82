package advisor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gamepulse/gamepulse-api/internal/llm"
)

func TestExplainUpgrade(t *testing.T) {
	gen := &fakeGenerator{reply: "  The RTX 3060 doubles your frame rate.  "}
	svc, _ := newTestService(t, gen)

	req := ExplainRequest{
		Email:          "gamer@example.com",
		Game:           "Cyberpunk 2077",
		Recommendation: RecommendationRef{Component: "GPU", Current: "NVIDIA GTX 1650", Recommended: "NVIDIA RTX 3060", Price: 400},
		Question:       "Is it worth it?",
		History: []ChatTurn{
			{Text: "Why a new GPU?", IsUser: true},
			{Text: "", IsUser: false},
			{Text: "Because the GPU renders the frames.", IsUser: false},
		},
	}

	exp, err := svc.ExplainUpgrade(context.Background(), req)
	if err != nil {
		t.Fatalf("ExplainUpgrade() error = %v", err)
	}
	if exp.Text != "The RTX 3060 doubles your frame rate." || exp.Fallback {
		t.Errorf("Unexpected explanation: %+v", exp)
	}

	msgs := gen.messages[0]
	wantRoles := []string{llm.RoleSystem, llm.RoleUser, llm.RoleAssistant, llm.RoleUser}
	if len(msgs) != len(wantRoles) {
		t.Fatalf("Expected %d messages, got %d", len(wantRoles), len(msgs))
	}
	for i, role := range wantRoles {
		if msgs[i].Role != role {
			t.Errorf("Message %d role = %s, want %s", i, msgs[i].Role, role)
		}
	}
	if !strings.Contains(msgs[0].Content, "NVIDIA RTX 3060") || !strings.Contains(msgs[0].Content, "$400") {
		t.Errorf("System prompt lacks context: %q", msgs[0].Content)
	}
	if msgs[3].Content != "Is it worth it?" {
		t.Errorf("Last message = %q", msgs[3].Content)
	}
}

func TestExplainUpgradeFallback(t *testing.T) {
	svc, _ := newTestService(t, &fakeGenerator{err: errors.New("boom")})

	exp, err := svc.ExplainUpgrade(context.Background(), ExplainRequest{
		Email:          "newbie@example.com",
		Game:           "Minecraft",
		Recommendation: RecommendationRef{Component: "RAM", Current: "8 GB", Recommended: "16 GB", Price: 50},
	})
	if err != nil {
		t.Fatalf("ExplainUpgrade() error = %v", err)
	}
	if !exp.Fallback {
		t.Error("Expected fallback explanation")
	}
	for _, want := range []string{"RAM", "8 GB", "16 GB", "Minecraft", "$50"} {
		if !strings.Contains(exp.Text, want) {
			t.Errorf("Fallback explanation lacks %q: %q", want, exp.Text)
		}
	}

	if _, err := svc.ExplainUpgrade(context.Background(), ExplainRequest{Email: "ghost@example.com"}); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Expected ErrUserNotFound, got %v", err)
	}
}

func TestRecommendGames(t *testing.T) {
	tests := []struct {
		name         string
		gen          *fakeGenerator
		wantTitles   []string
		wantFallback bool
	}{
		{
			"catalog titles kept",
			&fakeGenerator{reply: `{"games":[
				{"title":"Dota 2","genre":"MOBA","reason":"Light","performance":"high"},
				{"title":"Half-Life 3","genre":"Shooter","reason":"Hype","performance":"low"},
				{"title":"Dota 2","genre":"MOBA","reason":"Again","performance":"high"},
				{"title":"Elden Ring","genre":"RPG","reason":"Great","performance":"medium"}]}`},
			[]string{"Dota 2", "Elden Ring"},
			false,
		},
		{
			"no catalog titles",
			&fakeGenerator{reply: `{"games":[{"title":"Half-Life 3"}]}`},
			[]string{"Counter-Strike 2", "Minecraft", "Valorant"},
			true,
		},
		{
			"not json",
			&fakeGenerator{reply: "Play Minecraft!"},
			[]string{"Counter-Strike 2", "Minecraft", "Valorant"},
			true,
		},
		{
			"generator down",
			&fakeGenerator{err: llm.NewProviderError(llm.ErrCodeUnavailable, "open", nil)},
			[]string{"Counter-Strike 2", "Fortnite", "Minecraft", "Valorant"},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t, tt.gen)

			got, err := svc.RecommendGames(context.Background(), "gamer@example.com", "strategy")
			if err != nil {
				t.Fatalf("RecommendGames() error = %v", err)
			}
			if got.Fallback != tt.wantFallback {
				t.Errorf("Fallback = %v, want %v", got.Fallback, tt.wantFallback)
			}
			if len(got.Games) != len(tt.wantTitles) {
				t.Fatalf("Got %d games, want %d", len(got.Games), len(tt.wantTitles))
			}
			for i, title := range tt.wantTitles {
				if got.Games[i].Title != title {
					t.Errorf("Game %d = %s, want %s", i, got.Games[i].Title, title)
				}
			}
		})
	}
}

func TestRecommendGamesRequiresSpecs(t *testing.T) {
	svc, _ := newTestService(t, &fakeGenerator{})
	if _, err := svc.RecommendGames(context.Background(), "newbie@example.com", ""); !errors.Is(err, ErrSpecsRequired) {
		t.Errorf("Expected ErrSpecsRequired, got %v", err)
	}
}

func TestGenerateCharacter(t *testing.T) {
	gen := &fakeGenerator{reply: "A rogue medic with a jetpack."}
	svc, _ := newTestService(t, gen)

	c, err := svc.GenerateCharacter(context.Background(), "gamer@example.com", "Overwatch 2", "")
	if err != nil {
		t.Fatalf("GenerateCharacter() error = %v", err)
	}
	if c.Type != "hero" || c.Description != "A rogue medic with a jetpack." || c.Fallback {
		t.Errorf("Unexpected character: %+v", c)
	}
	if !strings.Contains(gen.messages[0][1].Content, "Overwatch 2") {
		t.Error("Prompt does not mention the game")
	}

	svc, _ = newTestService(t, nil)
	c, err = svc.GenerateCharacter(context.Background(), "gamer@example.com", "Fortnite", "villain")
	if err != nil {
		t.Fatalf("GenerateCharacter() error = %v", err)
	}
	if !c.Fallback || c.Type != "villain" || !strings.Contains(c.Description, "Fortnite") {
		t.Errorf("Unexpected fallback character: %+v", c)
	}
}
