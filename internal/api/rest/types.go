// Package rest provides REST API handlers
package rest

import (
	"github.com/gamepulse/gamepulse-api/internal/advisor"
	"github.com/gamepulse/gamepulse-api/internal/planner"
	"github.com/gamepulse/gamepulse-api/internal/storage"
)

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// MessageResponse acknowledges a request that returns no data
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RegisterRequest is the request body for registration
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the request body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse carries a user profile
type UserResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	User    *storage.User `json:"user"`
}

// AddPCRequest is the request body for recording a user's PC
type AddPCRequest struct {
	Email   string `json:"email"`
	CPU     string `json:"cpu"`
	GPU     string `json:"gpu"`
	RAM     string `json:"ram"`
	Storage string `json:"storage"`
	OS      string `json:"os"`
}

// EmailRequest is a request body identifying a user only
type EmailRequest struct {
	Email string `json:"email"`
}

// ForgotPasswordResponse carries a temporary password
type ForgotPasswordResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	NewPassword string `json:"newPassword"`
}

// GamesResponse lists catalog titles
type GamesResponse struct {
	Success bool     `json:"success"`
	Games   []string `json:"games"`
	Total   int      `json:"total"`
}

// CompatibilityRequest is the request body for a compatibility check
type CompatibilityRequest struct {
	Email     string `json:"email"`
	GameTitle string `json:"gameTitle"`
}

// CompatibilityResponse is the response for a compatibility check
type CompatibilityResponse struct {
	Success bool `json:"success"`
	*advisor.CompatibilityReport
}

// UpgradeRequest is the request body for budget-tier upgrades
type UpgradeRequest struct {
	Email     string `json:"email"`
	GameTitle string `json:"gameTitle"`
	Budget    string `json:"budget"`
}

// UpgradeResponse is the response for budget-tier upgrades
type UpgradeResponse struct {
	Success bool `json:"success"`
	*advisor.UpgradeReport
}

// GraphResponse is the response for the performance graph
type GraphResponse struct {
	Success bool `json:"success"`
	*advisor.GraphReport
}

// SmartUpgradeRequest is the request body for a smart upgrade plan
type SmartUpgradeRequest struct {
	Email     string  `json:"email"`
	GameTitle string  `json:"gameTitle"`
	Budget    float64 `json:"budget"`
	TargetFPS int     `json:"targetFPS"`
}

// SmartUpgradeResponse is the response for a smart upgrade plan
type SmartUpgradeResponse struct {
	Success bool `json:"success"`
	planner.Plan
}

// ExplanationRequest is the request body for an upgrade explanation
type ExplanationRequest struct {
	Email          string                    `json:"email"`
	GameTitle      string                    `json:"gameTitle"`
	Recommendation advisor.RecommendationRef `json:"recommendation"`
	UserQuestion   string                    `json:"userQuestion"`
	Messages       []advisor.ChatTurn        `json:"messages"`
}

// ExplanationResponse is the response for an upgrade explanation
type ExplanationResponse struct {
	Success bool `json:"success"`
	advisor.Explanation
}

// GameRecommendationsRequest is the request body for game suggestions
type GameRecommendationsRequest struct {
	Email       string `json:"email"`
	Preferences string `json:"preferences"`
}

// GameRecommendationsResponse is the response for game suggestions
type GameRecommendationsResponse struct {
	Success bool `json:"success"`
	*advisor.GameSuggestions
}

// CharacterRequest is the request body for character generation
type CharacterRequest struct {
	Email         string `json:"email"`
	GameTitle     string `json:"gameTitle"`
	CharacterType string `json:"characterType"`
}

// CharacterResponse is the response for character generation
type CharacterResponse struct {
	Success   bool              `json:"success"`
	Character advisor.Character `json:"character"`
	Fallback  bool              `json:"fallback,omitempty"`
}
