package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"workshop-portal-api/internal/domain"
	"workshop-portal-api/internal/handler"
	"workshop-portal-api/internal/metrics"
	"workshop-portal-api/internal/middleware"
	"workshop-portal-api/internal/qr"
	"workshop-portal-api/internal/repository"
	"workshop-portal-api/internal/service"
)

// Config holds router configuration
type Config struct {
	DB           *gorm.DB
	Logger       *zap.Logger
	JWTSecret    string
	TokenTTL     time.Duration
	ScanTokenTTL time.Duration
	BaseURL      string
	Metrics      *metrics.Metrics
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logger(cfg.Logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics(cfg.Metrics))

	// Prometheus metrics endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "workshop-portal"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if cfg.DB == nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "workshop-portal"})
			return
		}
		sqlDB, err := cfg.DB.DB()
		if err != nil || sqlDB.Ping() != nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "workshop-portal"})
			return
		}
		c.JSON(200, gin.H{"status": "ready", "service": "workshop-portal"})
	})

	// Initialize repositories
	userRepo := repository.NewUserRepository(cfg.DB)
	workshopRepo := repository.NewWorkshopRepository(cfg.DB)
	registrationRepo := repository.NewRegistrationRepository(cfg.DB)
	attendanceRepo := repository.NewAttendanceRepository(cfg.DB)

	// Initialize services
	signer := qr.NewScanTokenSigner(cfg.JWTSecret, cfg.ScanTokenTTL)
	authService := service.NewAuthService(userRepo, workshopRepo, registrationRepo, cfg.JWTSecret, cfg.TokenTTL, cfg.Metrics, cfg.Logger)
	workshopService := service.NewWorkshopService(workshopRepo, cfg.Metrics, cfg.Logger)
	registrationService := service.NewRegistrationService(registrationRepo, workshopRepo, cfg.Metrics, cfg.Logger)
	attendanceService := service.NewAttendanceService(attendanceRepo, registrationRepo, workshopRepo, signer, cfg.BaseURL, cfg.Metrics, cfg.Logger)
	certificateService := service.NewCertificateService(attendanceRepo, workshopRepo, cfg.Metrics, cfg.Logger)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	workshopHandler := handler.NewWorkshopHandler(workshopService)
	registrationHandler := handler.NewRegistrationHandler(registrationService)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService)
	certificateHandler := handler.NewCertificateHandler(certificateService)

	// Guards
	authenticated := middleware.Auth(cfg.JWTSecret)
	organizerOnly := middleware.RequireRole(domain.RoleOrganizer)
	participantOnly := middleware.RequireRole(domain.RoleParticipant)

	// ============================================================
	// Public routes
	// ============================================================
	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)

	// ============================================================
	// Authenticated routes
	// ============================================================
	r.GET("/logout", authenticated, authHandler.Logout)
	r.POST("/logout", authenticated, authHandler.Logout)
	r.GET("/dashboard", authenticated, authHandler.Dashboard)

	workshops := r.Group("/workshops", authenticated)
	{
		workshops.GET("", workshopHandler.List)
		workshops.POST("/create", organizerOnly, workshopHandler.Create)

		// Registration via a shared link stays reachable with GET
		workshops.GET("/register/:id", participantOnly, registrationHandler.Register)
		workshops.POST("/register/:id", participantOnly, registrationHandler.Register)

		workshops.GET("/registrations", organizerOnly, registrationHandler.ListForOrganizer)
		workshops.GET("/attendance", organizerOnly, attendanceHandler.ListForOrganizer)

		workshops.GET("/:id/attendance/mark", organizerOnly, attendanceHandler.Roster)
		workshops.POST("/:id/attendance/mark", organizerOnly, attendanceHandler.BulkMark)
		workshops.GET("/:id/attendance/qrcode", organizerOnly, attendanceHandler.QRCode)
		workshops.GET("/:id/attendance/scan/:date", participantOnly, attendanceHandler.Scan)
	}

	participant := r.Group("/participant", authenticated, participantOnly)
	{
		participant.GET("/workshops", workshopHandler.List)
		participant.GET("/attendance", attendanceHandler.ListForParticipant)
		participant.GET("/certificates", certificateHandler.List)
		participant.GET("/certificate/download/:id", certificateHandler.Download)
	}

	return r
}
