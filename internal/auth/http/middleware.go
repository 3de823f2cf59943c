package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/accounts/internal/auth/domain"
	authUseCase "github.com/allisson/accounts/internal/auth/usecase"
	"github.com/allisson/accounts/internal/httputil"
)

// AuthenticationMiddleware provides authentication via the access token cookie.
//
// The middleware:
// 1. Reads the access_token cookie
// 2. Validates the token using sessionUseCase.Authenticate()
// 3. Stores the authenticated user in the request context
// 4. Allows downstream handlers to access the user via GetUser()
//
// Error handling:
//   - Missing cookie → 401 Unauthorized
//   - Invalid/expired token or inactive user → 401 Unauthorized
//   - Repository failures → 500 Internal Server Error
//
// Usage:
//
//	router.GET("/protected", AuthenticationMiddleware(sessionUseCase, logger), func(c *gin.Context) {
//	    user, ok := GetUser(c.Request.Context())
//	    ...
//	})
func AuthenticationMiddleware(
	sessionUseCase authUseCase.SessionUseCase,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken, err := c.Cookie(AccessTokenCookie)
		if err != nil || accessToken == "" {
			logger.Debug("authentication failed: missing access token cookie")
			httputil.HandleErrorGin(c, authDomain.ErrMissingToken, logger)
			c.Abort()
			return
		}

		user, err := sessionUseCase.Authenticate(c.Request.Context(), accessToken)
		if err != nil {
			logger.Debug("authentication failed",
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		// Store authenticated user in context
		ctx := WithUser(c.Request.Context(), user)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.String("user_id", user.ID.String()))

		// Continue to next handler
		c.Next()
	}
}
