package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"workshop-portal-api/internal/domain"
	"workshop-portal-api/internal/dto"
	"workshop-portal-api/internal/metrics"
	"workshop-portal-api/internal/qr"
	"workshop-portal-api/internal/repository"
	"workshop-portal-api/internal/response"
)

// AttendanceService defines the interface for the attendance ledger
type AttendanceService interface {
	Roster(ctx context.Context, workshopID, organizerID uuid.UUID) (*dto.RosterResponse, error)
	BulkMark(ctx context.Context, workshopID, organizerID uuid.UUID, present []uuid.UUID) (*dto.MarkAttendanceResponse, error)
	IssueScanToken(ctx context.Context, workshopID, organizerID uuid.UUID) (*dto.QRCodeResponse, error)
	SelfScan(ctx context.Context, workshopID, participantID uuid.UUID, sessionDate, token string) (*dto.AttendanceResponse, error)
	ListForOrganizer(ctx context.Context, organizerID uuid.UUID) ([]dto.AttendanceResponse, error)
	ListForParticipant(ctx context.Context, participantID uuid.UUID) ([]dto.AttendanceResponse, error)
}

// attendanceServiceImpl is the implementation of AttendanceService
type attendanceServiceImpl struct {
	attendanceRepo   repository.AttendanceRepository
	registrationRepo repository.RegistrationRepository
	workshopRepo     repository.WorkshopRepository
	signer           *qr.ScanTokenSigner
	baseURL          string
	metrics          *metrics.Metrics
	logger           *zap.Logger
}

// NewAttendanceService creates a new instance of AttendanceService
func NewAttendanceService(
	attendanceRepo repository.AttendanceRepository,
	registrationRepo repository.RegistrationRepository,
	workshopRepo repository.WorkshopRepository,
	signer *qr.ScanTokenSigner,
	baseURL string,
	m *metrics.Metrics,
	logger *zap.Logger,
) AttendanceService {
	return &attendanceServiceImpl{
		attendanceRepo:   attendanceRepo,
		registrationRepo: registrationRepo,
		workshopRepo:     workshopRepo,
		signer:           signer,
		baseURL:          baseURL,
		metrics:          m,
		logger:           logger,
	}
}

// ownedWorkshop resolves a workshop only when the organizer owns it.
// A missing workshop and a foreign workshop get the same answer so the
// response does not leak which workshops exist.
func (s *attendanceServiceImpl) ownedWorkshop(ctx context.Context, workshopID, organizerID uuid.UUID) (*domain.Workshop, error) {
	workshop, err := s.workshopRepo.FindByIDAndOrganizer(ctx, workshopID, organizerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeForbidden, "Workshop not found or access denied", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load workshop", err.Error())
	}
	return workshop, nil
}

// Roster returns the organizer's marking sheet: every registration for the
// workshop with the participant and the current status for the session date
func (s *attendanceServiceImpl) Roster(ctx context.Context, workshopID, organizerID uuid.UUID) (*dto.RosterResponse, error) {
	workshop, err := s.ownedWorkshop(ctx, workshopID, organizerID)
	if err != nil {
		return nil, err
	}

	regs, err := s.registrationRepo.ListByWorkshop(ctx, workshopID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load registrations", err.Error())
	}

	sessionDate := workshop.SessionDate()
	entries := make([]dto.RosterEntry, 0, len(regs))
	for _, reg := range regs {
		entry := dto.RosterEntry{
			RegistrationID: reg.ID,
			Participant:    dto.NewUserResponse(&reg.Participant),
		}
		record, err := s.attendanceRepo.FindByNaturalKey(ctx, workshopID, reg.ParticipantID, sessionDate)
		if err == nil {
			status := record.Status
			entry.Status = &status
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load attendance", err.Error())
		}
		entries = append(entries, entry)
	}

	return &dto.RosterResponse{
		Workshop:    dto.NewWorkshopResponse(workshop),
		SessionDate: sessionDate,
		Entries:     entries,
	}, nil
}

// BulkMark runs the full upsert sweep: every registered participant gets
// exactly one attendance row for the workshop's session date, present when
// the registration ID is in the present set and absent otherwise. Prior
// statuses for that date are overwritten, which makes the sweep idempotent.
func (s *attendanceServiceImpl) BulkMark(ctx context.Context, workshopID, organizerID uuid.UUID, present []uuid.UUID) (*dto.MarkAttendanceResponse, error) {
	workshop, err := s.ownedWorkshop(ctx, workshopID, organizerID)
	if err != nil {
		return nil, err
	}

	regs, err := s.registrationRepo.ListByWorkshop(ctx, workshopID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load registrations", err.Error())
	}

	presentSet := make(map[uuid.UUID]struct{}, len(present))
	for _, id := range present {
		presentSet[id] = struct{}{}
	}

	sessionDate := workshop.SessionDate()
	now := time.Now().UTC()
	resp := &dto.MarkAttendanceResponse{SessionDate: sessionDate}

	for _, reg := range regs {
		status := domain.AttendanceStatusAbsent
		if _, ok := presentSet[reg.ID]; ok {
			status = domain.AttendanceStatusPresent
		}

		record := &domain.Attendance{
			WorkshopID:    workshopID,
			ParticipantID: reg.ParticipantID,
			SessionDate:   sessionDate,
			Status:        status,
			MarkedAt:      &now,
		}
		if err := s.attendanceRepo.Upsert(ctx, record); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to write attendance", err.Error())
		}

		resp.TotalMarked++
		if status == domain.AttendanceStatusPresent {
			resp.TotalPresent++
		} else {
			resp.TotalAbsent++
		}
	}

	s.metrics.AttendanceMarkedTotal.WithLabelValues("bulk").Add(float64(resp.TotalMarked))
	s.logger.Info("attendance bulk-marked",
		zap.String("workshop_id", workshopID.String()),
		zap.String("session_date", sessionDate),
		zap.Int("present", resp.TotalPresent),
		zap.Int("absent", resp.TotalAbsent),
	)

	return resp, nil
}

// IssueScanToken produces the signed scan URL for a workshop session and
// its QR rendering. The token binds the workshop and date and expires; it
// does not identify a participant.
func (s *attendanceServiceImpl) IssueScanToken(ctx context.Context, workshopID, organizerID uuid.UUID) (*dto.QRCodeResponse, error) {
	workshop, err := s.ownedWorkshop(ctx, workshopID, organizerID)
	if err != nil {
		return nil, err
	}

	sessionDate := workshop.SessionDate()
	token, expiresAt, err := s.signer.Sign(workshopID, sessionDate)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to sign scan token", err.Error())
	}

	scanURL := fmt.Sprintf("%s/workshops/%s/attendance/scan/%s?token=%s",
		s.baseURL, workshopID, sessionDate, token)

	png, err := qr.EncodePNG(scanURL)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to render QR code", err.Error())
	}

	return &dto.QRCodeResponse{
		ScanURL:      scanURL,
		QRCodeBase64: base64.StdEncoding.EncodeToString(png),
		ExpiresAt:    expiresAt,
	}, nil
}

// SelfScan records the scanning participant as present for the session.
// A second scan for the same session is a no-op reported as ALREADY_MARKED.
func (s *attendanceServiceImpl) SelfScan(ctx context.Context, workshopID, participantID uuid.UUID, sessionDate, token string) (*dto.AttendanceResponse, error) {
	if _, err := time.Parse(domain.SessionDateLayout, sessionDate); err != nil {
		return nil, response.NewAppError(response.ErrCodeValidation, "Invalid date format. Use YYYY-MM-DD.", "")
	}
	if err := s.signer.Verify(token, workshopID, sessionDate); err != nil {
		return nil, response.NewAppError(response.ErrCodeForbidden, "Invalid or expired scan token", "")
	}

	if _, err := s.workshopRepo.FindByID(ctx, workshopID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Workshop not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load workshop", err.Error())
	}

	if _, err := s.registrationRepo.FindByWorkshopAndParticipant(ctx, workshopID, participantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotRegistered, "You are not registered for this workshop", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load registration", err.Error())
	}

	now := time.Now().UTC()
	record := &domain.Attendance{
		WorkshopID:    workshopID,
		ParticipantID: participantID,
		SessionDate:   sessionDate,
		Status:        domain.AttendanceStatusPresent,
		MarkedAt:      &now,
	}

	created, err := s.attendanceRepo.CreateIfAbsent(ctx, record)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to write attendance", err.Error())
	}
	if !created {
		return nil, response.NewAppError(response.ErrCodeAlreadyMarked, "Attendance already marked for this session", "")
	}

	s.metrics.AttendanceMarkedTotal.WithLabelValues("scan").Inc()
	s.logger.Info("attendance self-scanned",
		zap.String("workshop_id", workshopID.String()),
		zap.String("participant_id", participantID.String()),
		zap.String("session_date", sessionDate),
	)

	resp := dto.NewAttendanceResponse(record)
	return &resp, nil
}

// ListForOrganizer returns attendance across the organizer's workshops,
// joined and sorted by session date
func (s *attendanceServiceImpl) ListForOrganizer(ctx context.Context, organizerID uuid.UUID) ([]dto.AttendanceResponse, error) {
	workshops, err := s.workshopRepo.ListByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load workshops", err.Error())
	}

	ids := make([]uuid.UUID, 0, len(workshops))
	for _, w := range workshops {
		ids = append(ids, w.ID)
	}

	records, err := s.attendanceRepo.ListByWorkshopIDs(ctx, ids)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load attendance", err.Error())
	}
	return dto.NewAttendanceResponses(records), nil
}

// ListForParticipant returns the participant's own attendance records
func (s *attendanceServiceImpl) ListForParticipant(ctx context.Context, participantID uuid.UUID) ([]dto.AttendanceResponse, error) {
	records, err := s.attendanceRepo.ListByParticipant(ctx, participantID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load attendance", err.Error())
	}
	return dto.NewAttendanceResponses(records), nil
}
