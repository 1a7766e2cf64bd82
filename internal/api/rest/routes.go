// Package rest provides REST API handlers
package rest

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all REST API routes
func RegisterRoutes(r *gin.Engine) {
	// Health endpoints
	r.GET("/healthz", healthzHandler)
	r.GET("/readyz", readyzHandler)

	api := r.Group("/", requireAdvisor)
	{
		api.GET("/games", listGamesHandler)

		// Accounts
		api.POST("/register", registerHandler)
		api.POST("/login", loginHandler)
		api.POST("/add-pc", addPCHandler)
		api.GET("/user/:email", getUserHandler)
		api.POST("/forgot-password", forgotPasswordHandler)

		// Performance
		api.POST("/check-game-compatibility", checkCompatibilityHandler)
		api.POST("/upgrade-recommendations", upgradeRecommendationsHandler)
		api.POST("/performance-graph", performanceGraphHandler)
		api.POST("/ai-smart-upgrade-recommendations", smartUpgradeHandler)

		// Generated prose
		api.POST("/ai-upgrade-explanation", upgradeExplanationHandler)
		api.POST("/ai-game-recommendations", gameRecommendationsHandler)
		api.POST("/ai-generate-game-character", gameCharacterHandler)
	}
}
