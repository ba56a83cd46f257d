package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"workshop-portal-api/internal/dto"
	"workshop-portal-api/internal/metrics"
	"workshop-portal-api/internal/repository"
	"workshop-portal-api/internal/response"
)

// RegistrationService defines the interface for the registration ledger
type RegistrationService interface {
	Register(ctx context.Context, workshopID, participantID uuid.UUID) (*dto.RegistrationResponse, error)
	ListForOrganizer(ctx context.Context, organizerID uuid.UUID) ([]dto.RegistrationResponse, error)
}

// registrationServiceImpl is the implementation of RegistrationService
type registrationServiceImpl struct {
	registrationRepo repository.RegistrationRepository
	workshopRepo     repository.WorkshopRepository
	metrics          *metrics.Metrics
	logger           *zap.Logger
}

// NewRegistrationService creates a new instance of RegistrationService
func NewRegistrationService(
	registrationRepo repository.RegistrationRepository,
	workshopRepo repository.WorkshopRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) RegistrationService {
	return &registrationServiceImpl{
		registrationRepo: registrationRepo,
		workshopRepo:     workshopRepo,
		metrics:          m,
		logger:           logger,
	}
}

// Register claims a seat for the participant. Capacity is enforced inside
// the repository's locking transaction, so the ledger invariant
// count(registrations) <= capacity holds under concurrent requests.
func (s *registrationServiceImpl) Register(ctx context.Context, workshopID, participantID uuid.UUID) (*dto.RegistrationResponse, error) {
	reg, err := s.registrationRepo.Register(ctx, workshopID, participantID)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, response.NewNotFoundError("Workshop not found")
		case errors.Is(err, repository.ErrAlreadyRegistered):
			return nil, response.NewAppError(response.ErrCodeAlreadyRegistered, "You are already registered for this workshop", "")
		case errors.Is(err, repository.ErrWorkshopFull):
			return nil, response.NewAppError(response.ErrCodeCapacityExceeded, "Sorry, this workshop is full", "")
		default:
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to register", err.Error())
		}
	}

	s.metrics.RegistrationsTotal.Inc()
	s.logger.Info("registration created",
		zap.String("workshop_id", workshopID.String()),
		zap.String("participant_id", participantID.String()),
	)

	resp := dto.NewRegistrationResponse(reg)
	return &resp, nil
}

// ListForOrganizer returns registrations for the organizer's workshops,
// joined with participant and workshop
func (s *registrationServiceImpl) ListForOrganizer(ctx context.Context, organizerID uuid.UUID) ([]dto.RegistrationResponse, error) {
	workshops, err := s.workshopRepo.ListByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load workshops", err.Error())
	}

	ids := make([]uuid.UUID, 0, len(workshops))
	for _, w := range workshops {
		ids = append(ids, w.ID)
	}

	regs, err := s.registrationRepo.ListByWorkshopIDs(ctx, ids)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load registrations", err.Error())
	}
	return dto.NewRegistrationResponses(regs), nil
}
