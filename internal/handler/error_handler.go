package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"workshop-portal-api/internal/response"
)

// handleServiceError maps service layer errors to appropriate HTTP responses.
// ALREADY_REGISTERED and ALREADY_MARKED are idempotent no-ops from the
// caller's perspective, so they come back as an informational 200 notice
// rather than an error body.
func handleServiceError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Resource not found")
		return
	}

	var appErr *response.AppError
	if errors.As(err, &appErr) {
		if appErr.Code == response.ErrCodeAlreadyRegistered || appErr.Code == response.ErrCodeAlreadyMarked {
			response.SendMessage(c, http.StatusOK, appErr.Message)
			return
		}
		response.SendError(c, mapErrorCodeToHTTPStatus(appErr.Code), appErr.Code, appErr.Message)
		return
	}

	response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Internal server error")
}

// mapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(code string) int {
	switch code {
	case response.ErrCodeValidation:
		return http.StatusBadRequest
	case response.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case response.ErrCodeForbidden, response.ErrCodeNotRegistered:
		return http.StatusForbidden
	case response.ErrCodeNotFound:
		return http.StatusNotFound
	case response.ErrCodeAlreadyExists:
		return http.StatusConflict
	case response.ErrCodeCapacityExceeded:
		return http.StatusConflict
	case response.ErrCodeNotEligible:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
