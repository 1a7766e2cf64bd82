// Package rest provides REST API handlers
package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gamepulse/gamepulse-api/internal/catalog"
)

// listGamesHandler returns catalog titles in catalog order
func listGamesHandler(c *gin.Context) {
	games := svc.Games()
	c.JSON(http.StatusOK, GamesResponse{
		Success: true,
		Games:   games,
		Total:   len(games),
	})
}

// checkCompatibilityHandler classifies the user's PC against a game
func checkCompatibilityHandler(c *gin.Context) {
	var req CompatibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	report, err := svc.CheckCompatibility(c.Request.Context(), req.Email, req.GameTitle)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, CompatibilityResponse{Success: true, CompatibilityReport: report})
}

// upgradeRecommendationsHandler selects budget-tier upgrades
func upgradeRecommendationsHandler(c *gin.Context) {
	var req UpgradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	budget := catalog.ParseBudgetTier(req.Budget)
	report, err := svc.RecommendUpgrades(c.Request.Context(), req.Email, req.GameTitle, budget)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, UpgradeResponse{Success: true, UpgradeReport: report})
}

// performanceGraphHandler classifies the user's PC against every game
func performanceGraphHandler(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	report, err := svc.PerformanceGraph(c.Request.Context(), req.Email)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, GraphResponse{Success: true, GraphReport: report})
}

// smartUpgradeHandler builds a dollar-budgeted upgrade plan
func smartUpgradeHandler(c *gin.Context) {
	var req SmartUpgradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	plan, err := svc.SmartUpgrade(c.Request.Context(), req.Email, req.GameTitle, req.Budget, req.TargetFPS)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, SmartUpgradeResponse{Success: true, Plan: plan})
}
