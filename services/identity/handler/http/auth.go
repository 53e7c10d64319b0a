package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sewago/sewago/internal/pkg/logger"
	"github.com/sewago/sewago/internal/pkg/models"
	"github.com/sewago/sewago/internal/utils"
	"github.com/sewago/sewago/services/identity"
)

// AuthHandler handles HTTP requests for the credential flows
type AuthHandler struct {
	identityUC identity.IdentityUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(identityUC identity.IdentityUC) *AuthHandler {
	return &AuthHandler{
		identityUC: identityUC,
	}
}

// Exchange trades an external identity token for an application session
func (h *AuthHandler) Exchange(c echo.Context) error {
	var req models.ExchangeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.IdentityToken == "" {
		return utils.BadRequestResponse(c, "identity_token is required")
	}

	auth, err := h.identityUC.Exchange(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrIdentityTokenInvalid):
			return utils.UnauthorizedResponse(c, "Identity token could not be verified")
		case errors.Is(err, identity.ErrUserInactive):
			return utils.UnauthorizedResponse(c, "Account is deactivated")
		case errors.Is(err, identity.ErrRateLimited):
			return utils.TooManyRequestsResponse(c, "")
		default:
			logger.Error("Exchange failed", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Session created", auth)
}

// SendOTP issues a phone verification challenge
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Phone == "" {
		return utils.BadRequestResponse(c, "phone is required")
	}

	err := h.identityUC.SendOTP(c.Request().Context(), req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrInvalidPhone):
			return utils.BadRequestResponse(c, "Invalid phone number format")
		case errors.Is(err, identity.ErrResendTooSoon):
			return utils.TooManyRequestsResponse(c, "Please wait before requesting another code")
		case errors.Is(err, identity.ErrRateLimited):
			return utils.TooManyRequestsResponse(c, "")
		default:
			logger.Error("Failed to send OTP", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Verification code sent", nil)
}

// VerifyOTP checks a submitted code and signs the phone's user in
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Phone == "" || req.Code == "" {
		return utils.BadRequestResponse(c, "phone and code are required")
	}

	auth, err := h.identityUC.VerifyOTP(c.Request().Context(), req.Phone, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrInvalidPhone):
			return utils.BadRequestResponse(c, "Invalid phone number format")
		case errors.Is(err, identity.ErrChallengeNotFound):
			return utils.BadRequestResponse(c, "No verification in progress for this number")
		case errors.Is(err, identity.ErrChallengeExpired):
			return utils.UnauthorizedResponse(c, "Verification code expired")
		case errors.Is(err, identity.ErrCodeInvalid):
			return utils.UnauthorizedResponse(c, "Verification code invalid")
		case errors.Is(err, identity.ErrTooManyAttempts):
			return utils.TooManyRequestsResponse(c, "Too many attempts, request a new code")
		case errors.Is(err, identity.ErrUserInactive):
			return utils.UnauthorizedResponse(c, "Account is deactivated")
		default:
			logger.Error("Failed to verify OTP", logger.Err(err))
			return utils.InternalServerErrorResponse(c, "")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Phone verified", auth)
}

// Logout revokes the calling session
func (h *AuthHandler) Logout(c echo.Context) error {
	sessionID, _ := c.Get("session_id").(string)
	userID, _ := c.Get("user_id").(uuid.UUID)

	if err := h.identityUC.Logout(c.Request().Context(), sessionID, userID); err != nil {
		logger.Error("Failed to revoke session", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Signed out", nil)
}
