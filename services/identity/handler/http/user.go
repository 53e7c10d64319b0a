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

// UserHandler handles HTTP requests for session-bearing profile operations
type UserHandler struct {
	identityUC identity.IdentityUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(identityUC identity.IdentityUC) *UserHandler {
	return &UserHandler{
		identityUC: identityUC,
	}
}

// GetMe returns the profile behind the calling session. A deactivated
// account produces 401 so the client tears its session down.
func (h *UserHandler) GetMe(c echo.Context) error {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.identityUC.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, identity.ErrUserInactive) {
			return utils.UnauthorizedResponse(c, "Account is deactivated")
		}
		logger.Error("Failed to retrieve user",
			logger.Err(err),
			logger.String("user_id", userID.String()))
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", user)
}

// CompleteProfile applies the final registration step
func (h *UserHandler) CompleteProfile(c echo.Context) error {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CompleteProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.identityUC.CompleteProfile(c.Request().Context(), userID, &req)
	if err != nil {
		var verr *identity.ValidationError
		switch {
		case errors.As(err, &verr):
			return utils.ValidationErrorResponse(c, verr.Fields)
		case errors.Is(err, identity.ErrUserInactive):
			return utils.UnauthorizedResponse(c, "Account is deactivated")
		default:
			logger.Error("Failed to complete profile",
				logger.Err(err),
				logger.String("user_id", userID.String()))
			return utils.InternalServerErrorResponse(c, "")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile completed", user)
}
