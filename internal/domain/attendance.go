package domain

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceStatus is the presence state for one session
type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
)

// Attendance is a dated presence record for a participant at a workshop.
// SessionDate holds the canonical YYYY-MM-DD token; together with the
// workshop and participant it forms the natural key, so concurrent writers
// converge on a single row via conflict-target upserts.
type Attendance struct {
	BaseModel
	WorkshopID    uuid.UUID        `gorm:"type:uuid;not null;index:idx_attendance_workshop_id;uniqueIndex:uq_attendance_workshop_participant_date" json:"workshop_id"`
	ParticipantID uuid.UUID        `gorm:"type:uuid;not null;index:idx_attendance_participant_id;uniqueIndex:uq_attendance_workshop_participant_date" json:"participant_id"`
	SessionDate   string           `gorm:"type:varchar(10);not null;uniqueIndex:uq_attendance_workshop_participant_date" json:"session_date"`
	Status        AttendanceStatus `gorm:"type:varchar(16);not null" json:"status"`
	MarkedAt      *time.Time       `gorm:"type:timestamp" json:"marked_at,omitempty"`
	Workshop      Workshop         `gorm:"foreignKey:WorkshopID;constraint:OnDelete:CASCADE" json:"workshop,omitempty"`
	Participant   User             `gorm:"foreignKey:ParticipantID;constraint:OnDelete:CASCADE" json:"participant,omitempty"`
}

// TableName specifies the table name for Attendance
func (Attendance) TableName() string {
	return "attendance"
}
