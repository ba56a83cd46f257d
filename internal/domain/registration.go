package domain

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationStatus reflects the lifecycle of a seat claim
type RegistrationStatus string

const (
	RegistrationStatusRegistered RegistrationStatus = "registered"
)

// Registration is a participant's claim on a workshop seat.
// The (workshop, participant) pair is unique; the count per workshop is
// bounded by the workshop capacity, enforced inside a locking transaction.
type Registration struct {
	BaseModel
	WorkshopID    uuid.UUID          `gorm:"type:uuid;not null;index:idx_registrations_workshop_id;uniqueIndex:uq_registrations_workshop_participant" json:"workshop_id"`
	ParticipantID uuid.UUID          `gorm:"type:uuid;not null;index:idx_registrations_participant_id;uniqueIndex:uq_registrations_workshop_participant" json:"participant_id"`
	RegisteredAt  time.Time          `gorm:"type:timestamp;not null" json:"registered_at"`
	Status        RegistrationStatus `gorm:"type:varchar(16);not null" json:"status"`
	Workshop      Workshop           `gorm:"foreignKey:WorkshopID;constraint:OnDelete:CASCADE" json:"workshop,omitempty"`
	Participant   User               `gorm:"foreignKey:ParticipantID;constraint:OnDelete:CASCADE" json:"participant,omitempty"`
}

// TableName specifies the table name for Registration
func (Registration) TableName() string {
	return "registrations"
}
