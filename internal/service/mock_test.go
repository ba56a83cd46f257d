package service

import (
	"context"

	"github.com/google/uuid"

	"workshop-portal-api/internal/domain"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc         func(ctx context.Context, user *domain.User) error
	FindByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, nil
}

// MockWorkshopRepository is a mock implementation of WorkshopRepository
type MockWorkshopRepository struct {
	CreateFunc               func(ctx context.Context, workshop *domain.Workshop) error
	FindByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.Workshop, error)
	FindByIDAndOrganizerFunc func(ctx context.Context, id, organizerID uuid.UUID) (*domain.Workshop, error)
	ListAllFunc              func(ctx context.Context) ([]*domain.Workshop, error)
	ListByOrganizerFunc      func(ctx context.Context, organizerID uuid.UUID) ([]*domain.Workshop, error)
}

func (m *MockWorkshopRepository) Create(ctx context.Context, workshop *domain.Workshop) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, workshop)
	}
	return nil
}

func (m *MockWorkshopRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Workshop, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockWorkshopRepository) FindByIDAndOrganizer(ctx context.Context, id, organizerID uuid.UUID) (*domain.Workshop, error) {
	if m.FindByIDAndOrganizerFunc != nil {
		return m.FindByIDAndOrganizerFunc(ctx, id, organizerID)
	}
	return nil, nil
}

func (m *MockWorkshopRepository) ListAll(ctx context.Context) ([]*domain.Workshop, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockWorkshopRepository) ListByOrganizer(ctx context.Context, organizerID uuid.UUID) ([]*domain.Workshop, error) {
	if m.ListByOrganizerFunc != nil {
		return m.ListByOrganizerFunc(ctx, organizerID)
	}
	return nil, nil
}

// MockRegistrationRepository is a mock implementation of RegistrationRepository
type MockRegistrationRepository struct {
	RegisterFunc                     func(ctx context.Context, workshopID, participantID uuid.UUID) (*domain.Registration, error)
	FindByWorkshopAndParticipantFunc func(ctx context.Context, workshopID, participantID uuid.UUID) (*domain.Registration, error)
	ListByWorkshopFunc               func(ctx context.Context, workshopID uuid.UUID) ([]*domain.Registration, error)
	ListByWorkshopIDsFunc            func(ctx context.Context, workshopIDs []uuid.UUID) ([]*domain.Registration, error)
	CountByWorkshopFunc              func(ctx context.Context, workshopID uuid.UUID) (int64, error)
	CountByParticipantFunc           func(ctx context.Context, participantID uuid.UUID) (int64, error)
}

func (m *MockRegistrationRepository) Register(ctx context.Context, workshopID, participantID uuid.UUID) (*domain.Registration, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, workshopID, participantID)
	}
	return nil, nil
}

func (m *MockRegistrationRepository) FindByWorkshopAndParticipant(ctx context.Context, workshopID, participantID uuid.UUID) (*domain.Registration, error) {
	if m.FindByWorkshopAndParticipantFunc != nil {
		return m.FindByWorkshopAndParticipantFunc(ctx, workshopID, participantID)
	}
	return nil, nil
}

func (m *MockRegistrationRepository) ListByWorkshop(ctx context.Context, workshopID uuid.UUID) ([]*domain.Registration, error) {
	if m.ListByWorkshopFunc != nil {
		return m.ListByWorkshopFunc(ctx, workshopID)
	}
	return nil, nil
}

func (m *MockRegistrationRepository) ListByWorkshopIDs(ctx context.Context, workshopIDs []uuid.UUID) ([]*domain.Registration, error) {
	if m.ListByWorkshopIDsFunc != nil {
		return m.ListByWorkshopIDsFunc(ctx, workshopIDs)
	}
	return nil, nil
}

func (m *MockRegistrationRepository) CountByWorkshop(ctx context.Context, workshopID uuid.UUID) (int64, error) {
	if m.CountByWorkshopFunc != nil {
		return m.CountByWorkshopFunc(ctx, workshopID)
	}
	return 0, nil
}

func (m *MockRegistrationRepository) CountByParticipant(ctx context.Context, participantID uuid.UUID) (int64, error) {
	if m.CountByParticipantFunc != nil {
		return m.CountByParticipantFunc(ctx, participantID)
	}
	return 0, nil
}

// MockAttendanceRepository is a mock implementation of AttendanceRepository
type MockAttendanceRepository struct {
	UpsertFunc                   func(ctx context.Context, record *domain.Attendance) error
	CreateIfAbsentFunc           func(ctx context.Context, record *domain.Attendance) (bool, error)
	FindByNaturalKeyFunc         func(ctx context.Context, workshopID, participantID uuid.UUID, sessionDate string) (*domain.Attendance, error)
	FindPresentFunc              func(ctx context.Context, workshopID, participantID uuid.UUID) (*domain.Attendance, error)
	ListByWorkshopIDsFunc        func(ctx context.Context, workshopIDs []uuid.UUID) ([]*domain.Attendance, error)
	ListByParticipantFunc        func(ctx context.Context, participantID uuid.UUID) ([]*domain.Attendance, error)
	ListPresentByParticipantFunc func(ctx context.Context, participantID uuid.UUID) ([]*domain.Attendance, error)
}

func (m *MockAttendanceRepository) Upsert(ctx context.Context, record *domain.Attendance) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, record)
	}
	return nil
}

func (m *MockAttendanceRepository) CreateIfAbsent(ctx context.Context, record *domain.Attendance) (bool, error) {
	if m.CreateIfAbsentFunc != nil {
		return m.CreateIfAbsentFunc(ctx, record)
	}
	return true, nil
}

func (m *MockAttendanceRepository) FindByNaturalKey(ctx context.Context, workshopID, participantID uuid.UUID, sessionDate string) (*domain.Attendance, error) {
	if m.FindByNaturalKeyFunc != nil {
		return m.FindByNaturalKeyFunc(ctx, workshopID, participantID, sessionDate)
	}
	return nil, nil
}

func (m *MockAttendanceRepository) FindPresent(ctx context.Context, workshopID, participantID uuid.UUID) (*domain.Attendance, error) {
	if m.FindPresentFunc != nil {
		return m.FindPresentFunc(ctx, workshopID, participantID)
	}
	return nil, nil
}

func (m *MockAttendanceRepository) ListByWorkshopIDs(ctx context.Context, workshopIDs []uuid.UUID) ([]*domain.Attendance, error) {
	if m.ListByWorkshopIDsFunc != nil {
		return m.ListByWorkshopIDsFunc(ctx, workshopIDs)
	}
	return nil, nil
}

func (m *MockAttendanceRepository) ListByParticipant(ctx context.Context, participantID uuid.UUID) ([]*domain.Attendance, error) {
	if m.ListByParticipantFunc != nil {
		return m.ListByParticipantFunc(ctx, participantID)
	}
	return nil, nil
}

func (m *MockAttendanceRepository) ListPresentByParticipant(ctx context.Context, participantID uuid.UUID) ([]*domain.Attendance, error) {
	if m.ListPresentByParticipantFunc != nil {
		return m.ListPresentByParticipantFunc(ctx, participantID)
	}
	return nil, nil
}
