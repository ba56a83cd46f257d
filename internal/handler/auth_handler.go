package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workshop-portal-api/internal/dto"
	"workshop-portal-api/internal/middleware"
	"workshop-portal-api/internal/response"
	"workshop-portal-api/internal/service"
)

// AuthHandler serves signup, login, logout and the dashboard
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup creates a new account
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse{
		Message: "Account created! Please log in.",
		Data:    user,
	})
}

// Login verifies credentials and returns a signed token
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// Logout acknowledges the token discard. Tokens are stateless; the client
// drops its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	response.SendMessage(c, http.StatusOK, "Logged out successfully!")
}

// Dashboard returns the role-shaped landing summary
func (h *AuthHandler) Dashboard(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	result, err := h.authService.Dashboard(c.Request.Context(), principal.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}
