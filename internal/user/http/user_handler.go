// Package http provides HTTP handlers for user account operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/accounts/internal/auth/domain"
	authHTTP "github.com/allisson/accounts/internal/auth/http"
	"github.com/allisson/accounts/internal/httputil"
	"github.com/allisson/accounts/internal/user/http/dto"
	userUseCase "github.com/allisson/accounts/internal/user/usecase"
)

// UserHandler handles HTTP requests for user account operations.
// Profile endpoints operate on the authenticated user resolved by the
// authentication middleware; there is no admin-style access to other accounts.
type UserHandler struct {
	userUseCase userUseCase.UserUseCase
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler with required dependencies.
func NewUserHandler(userUseCase userUseCase.UserUseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// RegisterHandler creates a new user account.
// POST /v1/register - Public endpoint.
// Returns 201 Created with the new user, 409 if the email is already registered.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req dto.RegisterUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	user, err := h.userUseCase.Register(c.Request.Context(), dto.ToCreateUserInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("user registered",
		slog.String("user_id", user.ID.String()))

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// GetProfileHandler returns the authenticated user's profile.
// GET /v1/users - Requires authentication.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	user, ok := authHTTP.GetUser(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, authDomain.ErrMissingToken, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// UpdateProfileHandler updates the authenticated user's profile fields.
// PUT /v1/users - Requires authentication.
// Email, password, and active status cannot be changed here.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	user, ok := authHTTP.GetUser(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, authDomain.ErrMissingToken, h.logger)
		return
	}

	var req dto.UpdateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	updated, err := h.userUseCase.UpdateProfile(c.Request.Context(), user.ID, dto.ToUpdateUserInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(updated))
}

// DeleteHandler permanently deletes the authenticated user's account.
// DELETE /v1/users/delete - Requires authentication.
// Returns 204 No Content on success. Outstanding tokens keep working until
// they expire since deletion does not touch the blacklist; the authentication
// middleware rejects them anyway once the user row is gone.
func (h *UserHandler) DeleteHandler(c *gin.Context) {
	user, ok := authHTTP.GetUser(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, authDomain.ErrMissingToken, h.logger)
		return
	}

	if err := h.userUseCase.Delete(c.Request.Context(), user.ID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.logger.Info("user deleted",
		slog.String("user_id", user.ID.String()))

	c.Status(http.StatusNoContent)
}
