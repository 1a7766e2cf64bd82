package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gamepulse/gamepulse-api/internal/advisor"
)

// errorMapping maps caller-facing advisor errors to HTTP responses
var errorMapping = []struct {
	err     error
	status  int
	code    string
	message string
}{
	{advisor.ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND", "User not found"},
	{advisor.ErrGameNotFound, http.StatusNotFound, "GAME_NOT_FOUND", "Game not found"},
	{advisor.ErrSpecsRequired, http.StatusBadRequest, "SPECS_REQUIRED", "Add your PC specs first"},
	{advisor.ErrEmailRequired, http.StatusBadRequest, "EMAIL_REQUIRED", "Email is required"},
	{advisor.ErrWeakPassword, http.StatusBadRequest, "WEAK_PASSWORD", "Password must be at least 8 characters"},
	{advisor.ErrEmailTaken, http.StatusConflict, "EMAIL_TAKEN", "Email is already registered"},
	{advisor.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password"},
}

// writeError responds with the mapped status for err. Unmapped errors are
// logged and reported as internal errors.
func writeError(c *gin.Context, err error) {
	for _, m := range errorMapping {
		if errors.Is(err, m.err) {
			c.JSON(m.status, ErrorResponse{Error: m.message, Code: m.code})
			return
		}
	}

	slog.Error("Request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: "Internal server error",
		Code:  "INTERNAL_ERROR",
	})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "Invalid request body",
		Code:    "BAD_REQUEST",
		Details: err.Error(),
	})
}

// requireAdvisor aborts with 503 when no advisor has been configured
func requireAdvisor(c *gin.Context) {
	if svc == nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, ErrorResponse{
			Error: "Service not configured",
			Code:  "SERVICE_UNAVAILABLE",
		})
		return
	}
	c.Next()
}
