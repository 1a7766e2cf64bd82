// Package rest provides REST API handlers
package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gamepulse/gamepulse-api/internal/performance"
)

// registerHandler creates an account
func registerHandler(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if _, err := svc.Register(c.Request.Context(), req.Username, req.Email, req.Password); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MessageResponse{
		Success: true,
		Message: "Registration successful",
	})
}

// loginHandler verifies credentials and returns the user profile
func loginHandler(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{
		Success: true,
		Message: "Login successful",
		User:    user,
	})
}

// addPCHandler records the PC of a user
func addPCHandler(c *gin.Context) {
	var req AddPCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	specs := performance.Specs{
		CPU:     req.CPU,
		GPU:     req.GPU,
		RAM:     req.RAM,
		Storage: req.Storage,
		OS:      req.OS,
	}
	if err := svc.UpdatePC(c.Request.Context(), req.Email, specs); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{
		Success: true,
		Message: "PC specs updated",
	})
}

// getUserHandler returns a user profile
func getUserHandler(c *gin.Context) {
	user, err := svc.GetUser(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{
		Success: true,
		User:    user,
	})
}

// forgotPasswordHandler replaces a password with a temporary one
func forgotPasswordHandler(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	password, err := svc.ResetPassword(c.Request.Context(), req.Email)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ForgotPasswordResponse{
		Success:     true,
		Message:     "New password created",
		NewPassword: password,
	})
}
