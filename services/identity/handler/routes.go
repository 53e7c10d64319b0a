package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sewago/sewago/internal/pkg/database"
	"github.com/sewago/sewago/internal/pkg/middleware"
	"github.com/sewago/sewago/internal/pkg/models"
	"github.com/sewago/sewago/services/identity/handler/http"
)

// Handler coordinates the HTTP handlers for the identity service
type Handler struct {
	authHandler *http.AuthHandler
	userHandler *http.UserHandler
	revocations middleware.RevocationChecker
	redisClient *database.RedisClient
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	userHandler *http.UserHandler,
	revocations middleware.RevocationChecker,
	redisClient *database.RedisClient,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler: authHandler,
		userHandler: userHandler,
		revocations: revocations,
		redisClient: redisClient,
		cfg:         cfg,
	}
}

// RegisterRoutes registers all routes. Public credential endpoints sit
// behind a per-IP rate limiter; everything else requires a valid,
// unrevoked session token.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	window := time.Duration(h.cfg.Limits.WindowSeconds) * time.Second

	authGroup := e.Group("/auth", middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: h.redisClient.GetClient(),
		Key:         "ratelimit:auth",
		Limit:       h.cfg.Limits.SignInAttempts,
		Period:      window,
	}))
	authGroup.POST("/exchange", h.authHandler.Exchange)
	authGroup.POST("/otp/send", h.authHandler.SendOTP)
	authGroup.POST("/otp/verify", h.authHandler.VerifyOTP)

	protected := e.Group("", middleware.SessionAuthMiddleware(h.cfg.JWT, h.revocations))
	protected.POST("/auth/logout", h.authHandler.Logout)
	protected.GET("/users/me", h.userHandler.GetMe)
	protected.POST("/profile/complete", h.userHandler.CompleteProfile)
}
