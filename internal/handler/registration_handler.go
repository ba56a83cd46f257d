package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"workshop-portal-api/internal/middleware"
	"workshop-portal-api/internal/response"
	"workshop-portal-api/internal/service"
)

// RegistrationHandler serves the registration ledger
type RegistrationHandler struct {
	registrationService service.RegistrationService
}

// NewRegistrationHandler creates a new RegistrationHandler
func NewRegistrationHandler(registrationService service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService}
}

// Register claims a seat on a workshop for the calling participant
func (h *RegistrationHandler) Register(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	workshopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid workshop ID")
		return
	}

	reg, err := h.registrationService.Register(c.Request.Context(), workshopID, principal.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse{
		Message: "Registered successfully!",
		Data:    reg,
	})
}

// ListForOrganizer returns registrations across the organizer's workshops
func (h *RegistrationHandler) ListForOrganizer(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	regs, err := h.registrationService.ListForOrganizer(c.Request.Context(), principal.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, regs)
}
