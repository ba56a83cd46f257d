package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"workshop-portal-api/internal/domain"
	"workshop-portal-api/internal/dto"
	"workshop-portal-api/internal/response"
)

// MockCertificateService is a mock implementation of CertificateService
type MockCertificateService struct {
	ListEligibleFunc func(ctx context.Context, participantID uuid.UUID) ([]dto.AttendanceResponse, error)
	DownloadFunc     func(ctx context.Context, workshopID, participantID uuid.UUID, participantName string) ([]byte, string, error)
}

func (m *MockCertificateService) ListEligible(ctx context.Context, participantID uuid.UUID) ([]dto.AttendanceResponse, error) {
	if m.ListEligibleFunc != nil {
		return m.ListEligibleFunc(ctx, participantID)
	}
	return nil, nil
}

func (m *MockCertificateService) Download(ctx context.Context, workshopID, participantID uuid.UUID, participantName string) ([]byte, string, error) {
	if m.DownloadFunc != nil {
		return m.DownloadFunc(ctx, workshopID, participantID, participantName)
	}
	return nil, "", nil
}

func TestCertificateHandler_Download(t *testing.T) {
	gin.SetMode(gin.TestMode)
	workshopID := uuid.New()
	participantID := uuid.New()

	tests := []struct {
		name           string
		path           string
		mockService    func(*MockCertificateService)
		expectedStatus int
		wantPDF        bool
	}{
		{
			name: "success: PDF streamed as attachment",
			path: "/participant/certificate/download/" + workshopID.String(),
			mockService: func(m *MockCertificateService) {
				m.DownloadFunc = func(ctx context.Context, wID, pID uuid.UUID, name string) ([]byte, string, error) {
					if name != "tester" {
						t.Errorf("Download() participant name = %q, want %q", name, "tester")
					}
					return []byte("%PDF-1.4 fake"), "Certificate_Intro to Go.pdf", nil
				}
			},
			expectedStatus: http.StatusOK,
			wantPDF:        true,
		},
		{
			name: "failure: not eligible",
			path: "/participant/certificate/download/" + workshopID.String(),
			mockService: func(m *MockCertificateService) {
				m.DownloadFunc = func(ctx context.Context, wID, pID uuid.UUID, name string) ([]byte, string, error) {
					return nil, "", response.NewAppError(response.ErrCodeNotEligible, "Certificate unavailable: attendance not marked as present", "")
				}
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "failure: malformed workshop ID",
			path:           "/participant/certificate/download/not-a-uuid",
			mockService:    func(m *MockCertificateService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given
			mockService := &MockCertificateService{}
			tt.mockService(mockService)
			h := NewCertificateHandler(mockService)

			router := gin.New()
			router.GET("/participant/certificate/download/:id", setPrincipal(participantID, domain.RoleParticipant), h.Download)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			// When
			router.ServeHTTP(w, req)

			// Then
			if w.Code != tt.expectedStatus {
				t.Errorf("Download() status = %d, want %d, body = %s", w.Code, tt.expectedStatus, w.Body.String())
			}
			if tt.wantPDF {
				if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
					t.Errorf("Download() Content-Type = %q, want %q", ct, "application/pdf")
				}
				cd := w.Header().Get("Content-Disposition")
				if !strings.Contains(cd, "attachment") || !strings.Contains(cd, "Certificate_Intro to Go.pdf") {
					t.Errorf("Download() Content-Disposition = %q, want an attachment with the certificate name", cd)
				}
			}
		})
	}
}

func TestCertificateHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	participantID := uuid.New()

	mockService := &MockCertificateService{
		ListEligibleFunc: func(ctx context.Context, pID uuid.UUID) ([]dto.AttendanceResponse, error) {
			if pID != participantID {
				t.Errorf("ListEligible() participant = %v, want %v", pID, participantID)
			}
			return []dto.AttendanceResponse{
				{ID: uuid.New(), SessionDate: "2026-09-12", Status: domain.AttendanceStatusPresent},
			}, nil
		},
	}
	h := NewCertificateHandler(mockService)

	router := gin.New()
	router.GET("/participant/certificates", setPrincipal(participantID, domain.RoleParticipant), h.List)

	req := httptest.NewRequest(http.MethodGet, "/participant/certificates", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("List() status = %d, want %d", w.Code, http.StatusOK)
	}
}
