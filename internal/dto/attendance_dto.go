package dto

import (
	"time"

	"github.com/google/uuid"

	"workshop-portal-api/internal/domain"
)

// MarkAttendanceRequest is the organizer's bulk-mark payload.
// Present holds the registration IDs of participants who attended;
// everyone else registered for the workshop is marked absent.
type MarkAttendanceRequest struct {
	Present []uuid.UUID `json:"present"`
}

// MarkAttendanceResponse summarises a bulk-mark sweep
type MarkAttendanceResponse struct {
	SessionDate  string `json:"session_date"`
	TotalMarked  int    `json:"total_marked"`
	TotalPresent int    `json:"total_present"`
	TotalAbsent  int    `json:"total_absent"`
}

// RosterEntry is one row of the organizer's marking sheet: a registration
// with the participant and the current attendance status, if any
type RosterEntry struct {
	RegistrationID uuid.UUID                `json:"registration_id"`
	Participant    UserResponse             `json:"participant"`
	Status         *domain.AttendanceStatus `json:"status,omitempty"`
}

// RosterResponse is the marking sheet for one workshop session
type RosterResponse struct {
	Workshop    WorkshopResponse `json:"workshop"`
	SessionDate string           `json:"session_date"`
	Entries     []RosterEntry    `json:"entries"`
}

// AttendanceResponse is an attendance record joined with its participant
// and workshop
type AttendanceResponse struct {
	ID          uuid.UUID               `json:"id"`
	SessionDate string                  `json:"session_date"`
	Status      domain.AttendanceStatus `json:"status"`
	MarkedAt    *time.Time              `json:"marked_at,omitempty"`
	Workshop    *WorkshopResponse       `json:"workshop,omitempty"`
	Participant *UserResponse           `json:"participant,omitempty"`
}

// NewAttendanceResponse converts a domain attendance record, including any
// preloaded associations
func NewAttendanceResponse(a *domain.Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:          a.ID,
		SessionDate: a.SessionDate,
		Status:      a.Status,
		MarkedAt:    a.MarkedAt,
	}
	if a.Workshop.ID != uuid.Nil {
		w := NewWorkshopResponse(&a.Workshop)
		resp.Workshop = &w
	}
	if a.Participant.ID != uuid.Nil {
		p := NewUserResponse(&a.Participant)
		resp.Participant = &p
	}
	return resp
}

// NewAttendanceResponses converts a slice of attendance records
func NewAttendanceResponses(records []*domain.Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		out = append(out, NewAttendanceResponse(a))
	}
	return out
}

// QRCodeResponse carries the signed scan URL and its PNG rendering
type QRCodeResponse struct {
	ScanURL      string    `json:"scan_url"`
	QRCodeBase64 string    `json:"qr_code_base64"`
	ExpiresAt    time.Time `json:"expires_at"`
}
