package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"workshop-portal-api/internal/domain"
	"workshop-portal-api/internal/dto"
	"workshop-portal-api/internal/response"
)

// MockAuthService is a mock implementation of AuthService
type MockAuthService struct {
	SignupFunc    func(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error)
	LoginFunc     func(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	DashboardFunc func(ctx context.Context, userID uuid.UUID) (*dto.DashboardResponse, error)
}

func (m *MockAuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error) {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, req)
	}
	return &dto.UserResponse{}, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return &dto.LoginResponse{}, nil
}

func (m *MockAuthService) Dashboard(ctx context.Context, userID uuid.UUID) (*dto.DashboardResponse, error) {
	if m.DashboardFunc != nil {
		return m.DashboardFunc(ctx, userID)
	}
	return &dto.DashboardResponse{}, nil
}

func TestAuthHandler_Signup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    interface{}
		mockService    func(*MockAuthService)
		expectedStatus int
	}{
		{
			name: "success: account created",
			requestBody: dto.SignupRequest{
				Username: "dana", Email: "dana@example.com", Password: "correct horse", Role: "participant",
			},
			mockService: func(m *MockAuthService) {
				m.SignupFunc = func(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error) {
					return &dto.UserResponse{ID: uuid.New(), Username: req.Username, Role: domain.RoleParticipant}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "failure: username taken",
			requestBody: dto.SignupRequest{
				Username: "dana", Email: "dana@example.com", Password: "correct horse", Role: "participant",
			},
			mockService: func(m *MockAuthService) {
				m.SignupFunc = func(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error) {
					return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Username already exists", "")
				}
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "failure: missing required fields",
			requestBody:    map[string]string{"username": "dana"},
			mockService:    func(m *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: malformed body",
			requestBody:    "not json",
			mockService:    func(m *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			mockService := &MockAuthService{}
			tt.mockService(mockService)
			h := NewAuthHandler(mockService)

			router := gin.New()
			router.POST("/signup", h.Signup)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/signup", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			// When
			router.ServeHTTP(w, req)

			// Then
			if w.Code != tt.expectedStatus {
				t.Errorf("Signup() status = %d, want %d, body = %s", w.Code, tt.expectedStatus, w.Body.String())
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    interface{}
		mockService    func(*MockAuthService)
		expectedStatus int
	}{
		{
			name:        "success: token issued",
			requestBody: dto.LoginRequest{Username: "dana", Password: "correct horse"},
			mockService: func(m *MockAuthService) {
				m.LoginFunc = func(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
					return &dto.LoginResponse{
						Token: "signed-token",
						User:  dto.UserResponse{ID: uuid.New(), Username: "dana", Role: domain.RoleParticipant},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "failure: bad credentials",
			requestBody: dto.LoginRequest{Username: "dana", Password: "wrong"},
			mockService: func(m *MockAuthService) {
				m.LoginFunc = func(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
					return nil, response.NewAppError(response.ErrCodeUnauthorized, "Invalid username or password", "")
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			mockService := &MockAuthService{}
			tt.mockService(mockService)
			h := NewAuthHandler(mockService)

			router := gin.New()
			router.POST("/login", h.Login)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			// When
			router.ServeHTTP(w, req)

			// Then
			if w.Code != tt.expectedStatus {
				t.Errorf("Login() status = %d, want %d, body = %s", w.Code, tt.expectedStatus, w.Body.String())
			}
			if tt.expectedStatus == http.StatusOK {
				var resp struct {
					Data dto.LoginResponse `json:"data"`
				}
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to unmarshal response: %v", err)
				}
				if resp.Data.Token == "" {
					t.Error("Login() returned an empty token")
				}
			}
		})
	}
}

func TestAuthHandler_Dashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()

	mockService := &MockAuthService{
		DashboardFunc: func(ctx context.Context, id uuid.UUID) (*dto.DashboardResponse, error) {
			if id != userID {
				t.Errorf("Dashboard() user = %v, want %v", id, userID)
			}
			return &dto.DashboardResponse{Username: "dana", Role: domain.RoleParticipant, RegistrationCount: 2}, nil
		},
	}
	h := NewAuthHandler(mockService)

	router := gin.New()
	router.GET("/dashboard", setPrincipal(userID, domain.RoleParticipant), h.Dashboard)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Dashboard() status = %d, want %d", w.Code, http.StatusOK)
	}
}
