package dto

import (
	"time"

	"github.com/google/uuid"

	"workshop-portal-api/internal/domain"
)

// CreateWorkshopRequest is the payload for workshop creation.
// Date is a YYYY-MM-DD string; the service validates the format.
type CreateWorkshopRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"`
	Capacity    int    `json:"capacity" binding:"required,gt=0"`
}

// WorkshopResponse is the public view of a workshop
type WorkshopResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Capacity    int       `json:"capacity"`
	OrganizerID uuid.UUID `json:"organizer_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewWorkshopResponse converts a domain workshop to its public view
func NewWorkshopResponse(w *domain.Workshop) WorkshopResponse {
	return WorkshopResponse{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		Date:        w.SessionDate(),
		Capacity:    w.Capacity,
		OrganizerID: w.OrganizerID,
		CreatedAt:   w.CreatedAt,
	}
}

// NewWorkshopResponses converts a slice of workshops
func NewWorkshopResponses(workshops []*domain.Workshop) []WorkshopResponse {
	out := make([]WorkshopResponse, 0, len(workshops))
	for _, w := range workshops {
		out = append(out, NewWorkshopResponse(w))
	}
	return out
}

// DashboardResponse is the role-shaped landing summary
type DashboardResponse struct {
	Username          string             `json:"username"`
	Role              domain.Role        `json:"role"`
	Workshops         []WorkshopResponse `json:"workshops,omitempty"`
	RegistrationCount int                `json:"registration_count,omitempty"`
}
