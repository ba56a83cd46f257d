package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"workshop-portal-api/internal/domain"
)

// WorkshopRepository defines the interface for workshop data access
type WorkshopRepository interface {
	Create(ctx context.Context, workshop *domain.Workshop) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Workshop, error)
	FindByIDAndOrganizer(ctx context.Context, id, organizerID uuid.UUID) (*domain.Workshop, error)
	ListAll(ctx context.Context) ([]*domain.Workshop, error)
	ListByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]*domain.Workshop, error)
}

// workshopRepositoryImpl is the GORM implementation of WorkshopRepository
type workshopRepositoryImpl struct {
	db *gorm.DB
}

// NewWorkshopRepository creates a new instance of WorkshopRepository
func NewWorkshopRepository(db *gorm.DB) WorkshopRepository {
	return &workshopRepositoryImpl{db: db}
}

// Create creates a new workshop
func (r *workshopRepositoryImpl) Create(ctx context.Context, workshop *domain.Workshop) error {
	if err := r.db.WithContext(ctx).Create(workshop).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a workshop by its ID
func (r *workshopRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Workshop, error) {
	var workshop domain.Workshop
	if err := r.db.WithContext(ctx).First(&workshop, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &workshop, nil
}

// FindByIDAndOrganizer finds a workshop only if it is owned by the organizer
func (r *workshopRepositoryImpl) FindByIDAndOrganizer(ctx context.Context, id, organizerID uuid.UUID) (*domain.Workshop, error) {
	var workshop domain.Workshop
	if err := r.db.WithContext(ctx).
		First(&workshop, "id = ? AND organizer_id = ?", id, organizerID).Error; err != nil {
		return nil, err
	}
	return &workshop, nil
}

// ListAll returns all workshops sorted by date ascending
func (r *workshopRepositoryImpl) ListAll(ctx context.Context) ([]*domain.Workshop, error) {
	var workshops []*domain.Workshop
	if err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&workshops).Error; err != nil {
		return nil, err
	}
	return workshops, nil
}

// ListByOrganizer returns the organizer's workshops sorted by date ascending
func (r *workshopRepositoryImpl) ListByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]*domain.Workshop, error) {
	var workshops []*domain.Workshop
	if err := r.db.WithContext(ctx).
		Where("organizer_id = ?", organizerID).
		Order("date ASC").
		Find(&workshops).Error; err != nil {
		return nil, err
	}
	return workshops, nil
}
