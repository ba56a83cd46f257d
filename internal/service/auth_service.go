package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"workshop-portal-api/internal/domain"
	"workshop-portal-api/internal/dto"
	"workshop-portal-api/internal/metrics"
	"workshop-portal-api/internal/repository"
	"workshop-portal-api/internal/response"
)

// AuthService defines the interface for identity business logic
type AuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Dashboard(ctx context.Context, userID uuid.UUID) (*dto.DashboardResponse, error)
}

// authServiceImpl is the implementation of AuthService
type authServiceImpl struct {
	userRepo         repository.UserRepository
	workshopRepo     repository.WorkshopRepository
	registrationRepo repository.RegistrationRepository
	jwtSecret        string
	tokenTTL         time.Duration
	metrics          *metrics.Metrics
	logger           *zap.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(
	userRepo repository.UserRepository,
	workshopRepo repository.WorkshopRepository,
	registrationRepo repository.RegistrationRepository,
	jwtSecret string,
	tokenTTL time.Duration,
	m *metrics.Metrics,
	logger *zap.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:         userRepo,
		workshopRepo:     workshopRepo,
		registrationRepo: registrationRepo,
		jwtSecret:        jwtSecret,
		tokenTTL:         tokenTTL,
		metrics:          m,
		logger:           logger,
	}
}

// Signup creates a new account. The role is fixed at creation.
func (s *authServiceImpl) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error) {
	role := domain.Role(req.Role)
	if !role.Valid() {
		return nil, response.NewAppError(response.ErrCodeValidation, "Role must be organizer or participant", "")
	}

	if _, err := s.userRepo.FindByUsername(ctx, req.Username); err == nil {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Username already exists", "")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check username", err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to hash password", err.Error())
	}

	user := &domain.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique index closes the find-then-create window
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Username already exists", "")
	}

	s.metrics.SignupsTotal.WithLabelValues(string(role)).Inc()
	s.logger.Info("account created",
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)),
	)

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// Login verifies credentials and issues a signed token carrying the
// principal's identity and role
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeUnauthorized, "Invalid username or password", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to look up user", err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, response.NewAppError(response.ErrCodeUnauthorized, "Invalid username or password", "")
	}

	claims := jwt.MapClaims{
		"user_id":  user.ID.String(),
		"username": user.Username,
		"role":     string(user.Role),
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to sign token", err.Error())
	}

	return &dto.LoginResponse{
		Token: signed,
		User:  dto.NewUserResponse(user),
	}, nil
}

// Dashboard returns the role-shaped landing summary: organizers see their
// workshops, participants see their registration count
func (s *authServiceImpl) Dashboard(ctx context.Context, userID uuid.UUID) (*dto.DashboardResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("User not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load user", err.Error())
	}

	resp := &dto.DashboardResponse{
		Username: user.Username,
		Role:     user.Role,
	}

	switch user.Role {
	case domain.RoleOrganizer:
		workshops, err := s.workshopRepo.ListByOrganizer(ctx, userID)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load workshops", err.Error())
		}
		resp.Workshops = dto.NewWorkshopResponses(workshops)
	case domain.RoleParticipant:
		count, err := s.registrationRepo.CountByParticipant(ctx, userID)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load registrations", err.Error())
		}
		resp.RegistrationCount = int(count)
	}

	return resp, nil
}
