package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/accounts/internal/auth/http/dto"
	authUseCase "github.com/allisson/accounts/internal/auth/usecase"
	"github.com/allisson/accounts/internal/httputil"
	customValidation "github.com/allisson/accounts/internal/validation"
)

// SessionHandler handles HTTP requests for session operations.
// It coordinates login, refresh, and logout with the SessionUseCase and
// writes the resulting token pair as HttpOnly cookies.
type SessionHandler struct {
	sessionUseCase authUseCase.SessionUseCase
	cookiePolicy   *CookiePolicy
	logger         *slog.Logger
}

// NewSessionHandler creates a new session handler with required dependencies.
func NewSessionHandler(
	sessionUseCase authUseCase.SessionUseCase,
	cookiePolicy *CookiePolicy,
	logger *slog.Logger,
) *SessionHandler {
	return &SessionHandler{
		sessionUseCase: sessionUseCase,
		cookiePolicy:   cookiePolicy,
		logger:         logger,
	}
}

// LoginHandler verifies credentials and starts a session.
// POST /v1/login - No authentication required.
// Returns 200 OK with the token pair set as cookies, 401 on bad credentials.
func (h *SessionHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Call use case
	pair, err := h.sessionUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	// Set the token pair as HttpOnly cookies
	h.cookiePolicy.SetPair(c, pair)

	c.JSON(http.StatusOK, dto.SessionResponse{Detail: "login successful"})
}

// RefreshHandler rotates the session token pair.
// POST /v1/refresh - Requires the refresh token cookie.
// Returns 200 OK with fresh cookies, 400 if the cookie is missing, 401 if the
// token is invalid, expired, or already consumed. No cookies are written on failure.
func (h *SessionHandler) RefreshHandler(c *gin.Context) {
	refreshToken, err := c.Cookie(RefreshTokenCookie)
	if err != nil || refreshToken == "" {
		httputil.HandleBadRequestGin(c, errors.New("refresh token cookie is required"), h.logger)
		return
	}

	pair, err := h.sessionUseCase.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	h.cookiePolicy.SetPair(c, pair)

	c.JSON(http.StatusOK, dto.SessionResponse{Detail: "token refreshed"})
}

// LogoutHandler ends the session by expiring both cookies.
// POST /v1/logout - No authentication required; logging out twice is harmless.
//
// The refresh token is NOT blacklisted here: a copy of the cookie taken before
// logout stays redeemable until it expires or is consumed by a refresh.
func (h *SessionHandler) LogoutHandler(c *gin.Context) {
	h.cookiePolicy.Clear(c)

	c.JSON(http.StatusOK, dto.SessionResponse{Detail: "logout successful"})
}
