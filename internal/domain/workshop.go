package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionDateLayout is the canonical wire and storage format for a
// workshop session date. Bulk marking and QR self-scan both persist
// attendance under this representation so the natural key stays uniform.
const SessionDateLayout = "2006-01-02"

// Workshop is an organizer-owned event with a fixed seat capacity
type Workshop struct {
	BaseModel
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Date        time.Time `gorm:"type:timestamp;not null;index:idx_workshops_date" json:"date"`
	Capacity    int       `gorm:"not null" json:"capacity"`
	OrganizerID uuid.UUID `gorm:"type:uuid;not null;index:idx_workshops_organizer_id" json:"organizer_id"`
	Organizer   User      `gorm:"foreignKey:OrganizerID" json:"organizer,omitempty"`
}

// TableName specifies the table name for Workshop
func (Workshop) TableName() string {
	return "workshops"
}

// SessionDate returns the workshop date in the canonical session format
func (w *Workshop) SessionDate() string {
	return w.Date.Format(SessionDateLayout)
}
