package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workshop-portal-api/internal/dto"
	"workshop-portal-api/internal/middleware"
	"workshop-portal-api/internal/response"
	"workshop-portal-api/internal/service"
)

// WorkshopHandler serves the workshop catalog
type WorkshopHandler struct {
	workshopService service.WorkshopService
}

// NewWorkshopHandler creates a new WorkshopHandler
func NewWorkshopHandler(workshopService service.WorkshopService) *WorkshopHandler {
	return &WorkshopHandler{workshopService: workshopService}
}

// Create records a new workshop owned by the calling organizer
func (h *WorkshopHandler) Create(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	var req dto.CreateWorkshopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	workshop, err := h.workshopService.Create(c.Request.Context(), principal.UserID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse{
		Message: "Workshop created successfully!",
		Data:    workshop,
	})
}

// List returns all workshops sorted by date ascending
func (h *WorkshopHandler) List(c *gin.Context) {
	workshops, err := h.workshopService.ListAll(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, workshops)
}
