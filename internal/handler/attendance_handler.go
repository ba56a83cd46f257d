package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"workshop-portal-api/internal/dto"
	"workshop-portal-api/internal/middleware"
	"workshop-portal-api/internal/response"
	"workshop-portal-api/internal/service"
)

// AttendanceHandler serves the attendance ledger: organizer bulk marking,
// QR provisioning and participant self-scan
type AttendanceHandler struct {
	attendanceService service.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler
func NewAttendanceHandler(attendanceService service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// Roster returns the marking sheet for a workshop session
func (h *AttendanceHandler) Roster(c *gin.Context) {
	principal, workshopID, ok := principalAndWorkshopID(c)
	if !ok {
		return
	}

	roster, err := h.attendanceService.Roster(c.Request.Context(), workshopID, principal.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, roster)
}

// BulkMark runs the full upsert sweep over the workshop's registrations
func (h *AttendanceHandler) BulkMark(c *gin.Context) {
	principal, workshopID, ok := principalAndWorkshopID(c)
	if !ok {
		return
	}

	var req dto.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.attendanceService.BulkMark(c.Request.Context(), workshopID, principal.UserID, req.Present)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessResponse{
		Message: "Attendance updated successfully!",
		Data:    result,
	})
}

// QRCode issues the signed scan URL and its QR image for a workshop session
func (h *AttendanceHandler) QRCode(c *gin.Context) {
	principal, workshopID, ok := principalAndWorkshopID(c)
	if !ok {
		return
	}

	result, err := h.attendanceService.IssueScanToken(c.Request.Context(), workshopID, principal.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// Scan records the calling participant as present for the session named in
// the scanned URL
func (h *AttendanceHandler) Scan(c *gin.Context) {
	principal, workshopID, ok := principalAndWorkshopID(c)
	if !ok {
		return
	}

	sessionDate := c.Param("date")
	token := c.Query("token")

	record, err := h.attendanceService.SelfScan(c.Request.Context(), workshopID, principal.UserID, sessionDate, token)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.SuccessResponse{
		Message: "Attendance marked successfully!",
		Data:    record,
	})
}

// ListForOrganizer returns attendance across the organizer's workshops
func (h *AttendanceHandler) ListForOrganizer(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	records, err := h.attendanceService.ListForOrganizer(c.Request.Context(), principal.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, records)
}

// ListForParticipant returns the calling participant's attendance
func (h *AttendanceHandler) ListForParticipant(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return
	}

	records, err := h.attendanceService.ListForParticipant(c.Request.Context(), principal.UserID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, records)
}

// principalAndWorkshopID pulls the authenticated principal and the :id
// path parameter, writing the error response itself on failure
func principalAndWorkshopID(c *gin.Context) (middleware.Principal, uuid.UUID, bool) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return middleware.Principal{}, uuid.Nil, false
	}

	workshopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid workshop ID")
		return middleware.Principal{}, uuid.Nil, false
	}

	return principal, workshopID, true
}
