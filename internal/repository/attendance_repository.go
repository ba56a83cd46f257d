package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"workshop-portal-api/internal/domain"
)

// AttendanceRepository defines the interface for attendance data access
type AttendanceRepository interface {
	Upsert(ctx context.Context, record *domain.Attendance) error
	CreateIfAbsent(ctx context.Context, record *domain.Attendance) (created bool, err error)
	FindByNaturalKey(ctx context.Context, workshopID, participantID uuid.UUID, sessionDate string) (*domain.Attendance, error)
	FindPresent(ctx context.Context, workshopID, participantID uuid.UUID) (*domain.Attendance, error)
	ListByWorkshopIDs(ctx context.Context, workshopIDs []uuid.UUID) ([]*domain.Attendance, error)
	ListByParticipant(ctx context.Context, participantID uuid.UUID) ([]*domain.Attendance, error)
	ListPresentByParticipant(ctx context.Context, participantID uuid.UUID) ([]*domain.Attendance, error)
}

// attendanceRepositoryImpl is the GORM implementation of AttendanceRepository
type attendanceRepositoryImpl struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new instance of AttendanceRepository
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Upsert writes an attendance record keyed by its natural key. A concurrent
// writer on the same (workshop, participant, date) converges on one row;
// the later status and marked_at win.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, record *domain.Attendance) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "workshop_id"},
			{Name: "participant_id"},
			{Name: "session_date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"status", "marked_at", "updated_at"}),
	}).Create(record).Error
}

// CreateIfAbsent inserts an attendance record unless the natural key already
// exists. Returns false without touching the existing row on conflict.
func (r *attendanceRepositoryImpl) CreateIfAbsent(ctx context.Context, record *domain.Attendance) (bool, error) {
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "workshop_id"},
			{Name: "participant_id"},
			{Name: "session_date"},
		},
		DoNothing: true,
	}).Create(record)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// FindByNaturalKey finds the attendance record for a (workshop, participant, date) triple
func (r *attendanceRepositoryImpl) FindByNaturalKey(ctx context.Context, workshopID, participantID uuid.UUID, sessionDate string) (*domain.Attendance, error) {
	var record domain.Attendance
	if err := r.db.WithContext(ctx).
		First(&record, "workshop_id = ? AND participant_id = ? AND session_date = ?",
			workshopID, participantID, sessionDate).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// FindPresent finds a "present" attendance record for a (workshop, participant) pair
func (r *attendanceRepositoryImpl) FindPresent(ctx context.Context, workshopID, participantID uuid.UUID) (*domain.Attendance, error) {
	var record domain.Attendance
	if err := r.db.WithContext(ctx).
		First(&record, "workshop_id = ? AND participant_id = ? AND status = ?",
			workshopID, participantID, domain.AttendanceStatusPresent).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByWorkshopIDs returns attendance across workshops, joined and sorted by session date
func (r *attendanceRepositoryImpl) ListByWorkshopIDs(ctx context.Context, workshopIDs []uuid.UUID) ([]*domain.Attendance, error) {
	if len(workshopIDs) == 0 {
		return []*domain.Attendance{}, nil
	}

	var records []*domain.Attendance
	if err := r.db.WithContext(ctx).
		Preload("Participant").
		Preload("Workshop").
		Where("workshop_id IN ?", workshopIDs).
		Order("session_date ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListByParticipant returns a participant's attendance sorted by session date
func (r *attendanceRepositoryImpl) ListByParticipant(ctx context.Context, participantID uuid.UUID) ([]*domain.Attendance, error) {
	var records []*domain.Attendance
	if err := r.db.WithContext(ctx).
		Preload("Workshop").
		Where("participant_id = ?", participantID).
		Order("session_date ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListPresentByParticipant returns the participant's "present" records, the
// set a certificate can be issued against
func (r *attendanceRepositoryImpl) ListPresentByParticipant(ctx context.Context, participantID uuid.UUID) ([]*domain.Attendance, error) {
	var records []*domain.Attendance
	if err := r.db.WithContext(ctx).
		Preload("Workshop").
		Where("participant_id = ? AND status = ?", participantID, domain.AttendanceStatusPresent).
		Order("session_date ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
