package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"workshop-portal-api/internal/middleware"
	"workshop-portal-api/internal/response"
	"workshop-portal-api/internal/service"
)

// CertificateHandler serves the certificate issuer
type CertificateHandler struct {
	certificateService service.CertificateService
}

// NewCertificateHandler creates a new CertificateHandler
func NewCertificateHandler(certificateService service.CertificateService) *CertificateHandler {
	return &CertificateHandler{certificateService: certificateService}
}

// List returns the workshops the calling participant can download a
// certificate for
func (h *CertificateHandler) List(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	records, err := h.certificateService.ListEligible(c.Request.Context(), principal.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, records)
}

// Download streams the certificate PDF for a workshop. The :id parameter
// names the workshop.
func (h *CertificateHandler) Download(c *gin.Context) {
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

	pdf, fileName, err := h.certificateService.Download(c.Request.Context(), workshopID, principal.UserID, principal.Username)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
