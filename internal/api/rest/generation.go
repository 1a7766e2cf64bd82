// Package rest provides REST API handlers
package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gamepulse/gamepulse-api/internal/advisor"
)

// upgradeExplanationHandler answers a question about a recommendation
func upgradeExplanationHandler(c *gin.Context) {
	var req ExplanationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	exp, err := svc.ExplainUpgrade(c.Request.Context(), advisor.ExplainRequest{
		Email:          req.Email,
		Game:           req.GameTitle,
		Recommendation: req.Recommendation,
		Question:       req.UserQuestion,
		History:        req.Messages,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ExplanationResponse{Success: true, Explanation: exp})
}

// gameRecommendationsHandler suggests catalog games for the user's PC
func gameRecommendationsHandler(c *gin.Context) {
	var req GameRecommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	suggestions, err := svc.RecommendGames(c.Request.Context(), req.Email, req.Preferences)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, GameRecommendationsResponse{Success: true, GameSuggestions: suggestions})
}

// gameCharacterHandler writes a character description for a game
func gameCharacterHandler(c *gin.Context) {
	var req CharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	character, err := svc.GenerateCharacter(c.Request.Context(), req.Email, req.GameTitle, req.CharacterType)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, CharacterResponse{
		Success:   true,
		Character: character,
		Fallback:  character.Fallback,
	})
}
