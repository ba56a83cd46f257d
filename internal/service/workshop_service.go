package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"workshop-portal-api/internal/domain"
	"workshop-portal-api/internal/dto"
	"workshop-portal-api/internal/metrics"
	"workshop-portal-api/internal/repository"
	"workshop-portal-api/internal/response"
)

// WorkshopService defines the interface for workshop catalog business logic
type WorkshopService interface {
	Create(ctx context.Context, organizerID uuid.UUID, req *dto.CreateWorkshopRequest) (*dto.WorkshopResponse, error)
	ListAll(ctx context.Context) ([]dto.WorkshopResponse, error)
}

// workshopServiceImpl is the implementation of WorkshopService
type workshopServiceImpl struct {
	workshopRepo repository.WorkshopRepository
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewWorkshopService creates a new instance of WorkshopService
func NewWorkshopService(workshopRepo repository.WorkshopRepository, m *metrics.Metrics, logger *zap.Logger) WorkshopService {
	return &workshopServiceImpl{workshopRepo: workshopRepo, metrics: m, logger: logger}
}

// Create validates the request and records a new organizer-owned workshop
func (s *workshopServiceImpl) Create(ctx context.Context, organizerID uuid.UUID, req *dto.CreateWorkshopRequest) (*dto.WorkshopResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Title is required", "")
	}
	if req.Capacity <= 0 {
		return nil, response.NewAppError(response.ErrCodeValidation, "Capacity must be a positive integer", "")
	}

	date, err := time.Parse(domain.SessionDateLayout, req.Date)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeValidation, "Invalid date format. Use YYYY-MM-DD.", "")
	}

	workshop := &domain.Workshop{
		Title:       title,
		Description: req.Description,
		Date:        date,
		Capacity:    req.Capacity,
		OrganizerID: organizerID,
	}
	if err := s.workshopRepo.Create(ctx, workshop); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create workshop", err.Error())
	}

	s.metrics.WorkshopsCreatedTotal.Inc()
	s.logger.Info("workshop created",
		zap.String("workshop_id", workshop.ID.String()),
		zap.String("organizer_id", organizerID.String()),
		zap.Int("capacity", workshop.Capacity),
	)

	resp := dto.NewWorkshopResponse(workshop)
	return &resp, nil
}

// ListAll returns all workshops sorted by date ascending
func (s *workshopServiceImpl) ListAll(ctx context.Context) ([]dto.WorkshopResponse, error) {
	workshops, err := s.workshopRepo.ListAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list workshops", err.Error())
	}
	return dto.NewWorkshopResponses(workshops), nil
}
