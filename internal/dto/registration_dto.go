package dto

import (
	"time"

	"github.com/google/uuid"

	"workshop-portal-api/internal/domain"
)

// RegistrationResponse is a registration joined with its participant
// and workshop, as shown on the organizer's registrations page
type RegistrationResponse struct {
	ID           uuid.UUID                 `json:"id"`
	RegisteredAt time.Time                 `json:"registered_at"`
	Status       domain.RegistrationStatus `json:"status"`
	Workshop     *WorkshopResponse         `json:"workshop,omitempty"`
	Participant  *UserResponse             `json:"participant,omitempty"`
}

// NewRegistrationResponse converts a domain registration, including any
// preloaded workshop and participant associations
func NewRegistrationResponse(r *domain.Registration) RegistrationResponse {
	resp := RegistrationResponse{
		ID:           r.ID,
		RegisteredAt: r.RegisteredAt,
		Status:       r.Status,
	}
	if r.Workshop.ID != uuid.Nil {
		w := NewWorkshopResponse(&r.Workshop)
		resp.Workshop = &w
	}
	if r.Participant.ID != uuid.Nil {
		p := NewUserResponse(&r.Participant)
		resp.Participant = &p
	}
	return resp
}

// NewRegistrationResponses converts a slice of registrations
func NewRegistrationResponses(regs []*domain.Registration) []RegistrationResponse {
	out := make([]RegistrationResponse, 0, len(regs))
	for _, r := range regs {
		out = append(out, NewRegistrationResponse(r))
	}
	return out
}
