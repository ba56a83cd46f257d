package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"workshop-portal-api/internal/domain"
)

// ErrWorkshopFull is returned when a workshop has no remaining capacity.
var ErrWorkshopFull = errors.New("workshop is fully booked")

// ErrAlreadyRegistered is returned when the same participant registers twice.
var ErrAlreadyRegistered = errors.New("participant already registered for this workshop")

// RegistrationRepository defines the interface for registration data access
type RegistrationRepository interface {
	Register(ctx context.Context, workshopID, participantID uuid.UUID) (*domain.Registration, error)
	FindByWorkshopAndParticipant(ctx context.Context, workshopID, participantID uuid.UUID) (*domain.Registration, error)
	ListByWorkshop(ctx context.Context, workshopID uuid.UUID) ([]*domain.Registration, error)
	ListByWorkshopIDs(ctx context.Context, workshopIDs []uuid.UUID) ([]*domain.Registration, error)
	CountByWorkshop(ctx context.Context, workshopID uuid.UUID) (int64, error)
	CountByParticipant(ctx context.Context, participantID uuid.UUID) (int64, error)
}

// registrationRepositoryImpl is the GORM implementation of RegistrationRepository
type registrationRepositoryImpl struct {
	db *gorm.DB
}

// NewRegistrationRepository creates a new instance of RegistrationRepository
func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepositoryImpl{db: db}
}

// Register claims a seat inside a single transaction.
//
// A naive count-then-insert lets two concurrent requests both observe free
// capacity and both insert, overbooking the workshop. The workshop row is
// therefore locked with SELECT ... FOR UPDATE so concurrent claims on the
// same workshop serialise: only one transaction at a time can read the
// count and insert. The unique (workshop_id, participant_id) index backs
// the duplicate check as a second line of defence.
func (r *registrationRepositoryImpl) Register(ctx context.Context, workshopID, participantID uuid.UUID) (*domain.Registration, error) {
	var reg *domain.Registration

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the workshop row. sqlite has no FOR UPDATE and serialises
		// writers on its own, so the clause is applied on postgres only.
		q := tx.Model(&domain.Workshop{})
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var workshop domain.Workshop
		if err := q.First(&workshop, "id = ?", workshopID).Error; err != nil {
			return err
		}

		var existing int64
		if err := tx.Model(&domain.Registration{}).
			Where("workshop_id = ? AND participant_id = ?", workshopID, participantID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyRegistered
		}

		var count int64
		if err := tx.Model(&domain.Registration{}).
			Where("workshop_id = ?", workshopID).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(workshop.Capacity) {
			return ErrWorkshopFull
		}

		reg = &domain.Registration{
			WorkshopID:    workshopID,
			ParticipantID: participantID,
			RegisteredAt:  time.Now().UTC(),
			Status:        domain.RegistrationStatusRegistered,
		}
		return tx.Create(reg).Error
	})
	if err != nil {
		return nil, err
	}
	return reg, nil
}

// FindByWorkshopAndParticipant finds the registration for a pair
func (r *registrationRepositoryImpl) FindByWorkshopAndParticipant(ctx context.Context, workshopID, participantID uuid.UUID) (*domain.Registration, error) {
	var reg domain.Registration
	if err := r.db.WithContext(ctx).
		First(&reg, "workshop_id = ? AND participant_id = ?", workshopID, participantID).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

// ListByWorkshop returns all registrations for a workshop with participants preloaded
func (r *registrationRepositoryImpl) ListByWorkshop(ctx context.Context, workshopID uuid.UUID) ([]*domain.Registration, error) {
	var regs []*domain.Registration
	if err := r.db.WithContext(ctx).
		Preload("Participant").
		Where("workshop_id = ?", workshopID).
		Order("registered_at ASC").
		Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

// ListByWorkshopIDs returns registrations across workshops with both sides of the join preloaded
func (r *registrationRepositoryImpl) ListByWorkshopIDs(ctx context.Context, workshopIDs []uuid.UUID) ([]*domain.Registration, error) {
	if len(workshopIDs) == 0 {
		return []*domain.Registration{}, nil
	}

	var regs []*domain.Registration
	if err := r.db.WithContext(ctx).
		Preload("Participant").
		Preload("Workshop").
		Where("workshop_id IN ?", workshopIDs).
		Order("registered_at ASC").
		Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

// CountByWorkshop returns the number of registrations for a workshop
func (r *registrationRepositoryImpl) CountByWorkshop(ctx context.Context, workshopID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Registration{}).
		Where("workshop_id = ?", workshopID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByParticipant returns the number of registrations held by a participant
func (r *registrationRepositoryImpl) CountByParticipant(ctx context.Context, participantID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Registration{}).
		Where("participant_id = ?", participantID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
