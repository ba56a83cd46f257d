package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"workshop-portal-api/internal/certificate"
	"workshop-portal-api/internal/dto"
	"workshop-portal-api/internal/metrics"
	"workshop-portal-api/internal/repository"
	"workshop-portal-api/internal/response"
)

// CertificateService defines the interface for the certificate issuer
type CertificateService interface {
	ListEligible(ctx context.Context, participantID uuid.UUID) ([]dto.AttendanceResponse, error)
	Download(ctx context.Context, workshopID, participantID uuid.UUID, participantName string) (pdf []byte, fileName string, err error)
}

// certificateServiceImpl is the implementation of CertificateService
type certificateServiceImpl struct {
	attendanceRepo repository.AttendanceRepository
	workshopRepo   repository.WorkshopRepository
	metrics        *metrics.Metrics
	logger         *zap.Logger
}

// NewCertificateService creates a new instance of CertificateService
func NewCertificateService(
	attendanceRepo repository.AttendanceRepository,
	workshopRepo repository.WorkshopRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) CertificateService {
	return &certificateServiceImpl{
		attendanceRepo: attendanceRepo,
		workshopRepo:   workshopRepo,
		metrics:        m,
		logger:         logger,
	}
}

// ListEligible returns the participant's "present" attendance records, the
// workshops a certificate can be downloaded for
func (s *certificateServiceImpl) ListEligible(ctx context.Context, participantID uuid.UUID) ([]dto.AttendanceResponse, error) {
	records, err := s.attendanceRepo.ListPresentByParticipant(ctx, participantID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load attendance", err.Error())
	}
	return dto.NewAttendanceResponses(records), nil
}

// Download renders the certificate PDF for a workshop the participant
// attended. Nothing is persisted; the document is generated per request
// and its fields are deterministic for the same inputs.
func (s *certificateServiceImpl) Download(ctx context.Context, workshopID, participantID uuid.UUID, participantName string) ([]byte, string, error) {
	if _, err := s.attendanceRepo.FindPresent(ctx, workshopID, participantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", response.NewAppError(response.ErrCodeNotEligible, "Certificate unavailable: attendance not marked as present", "")
		}
		return nil, "", response.NewAppError(response.ErrCodeInternal, "Failed to load attendance", err.Error())
	}

	workshop, err := s.workshopRepo.FindByID(ctx, workshopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", response.NewNotFoundError("Workshop not found")
		}
		return nil, "", response.NewAppError(response.ErrCodeInternal, "Failed to load workshop", err.Error())
	}

	pdf, err := certificate.Render(certificate.Data{
		ParticipantName: participantName,
		WorkshopTitle:   workshop.Title,
		WorkshopDate:    workshop.Date,
	})
	if err != nil {
		return nil, "", response.NewAppError(response.ErrCodeInternal, "Failed to render certificate", err.Error())
	}

	s.metrics.CertificatesIssuedTotal.Inc()
	s.logger.Info("certificate issued",
		zap.String("workshop_id", workshopID.String()),
		zap.String("participant_id", participantID.String()),
	)

	return pdf, certificate.FileName(workshop.Title), nil
}
