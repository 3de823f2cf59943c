package app

import (
	"fmt"
	"sync"

	authHTTP "github.com/allisson/accounts/internal/auth/http"
	authRepository "github.com/allisson/accounts/internal/auth/repository"
	authService "github.com/allisson/accounts/internal/auth/service"
	authUseCase "github.com/allisson/accounts/internal/auth/usecase"
)

// authComponents holds the authentication dependency graph.
// Embedded in Container to keep di.go focused on infrastructure and user wiring.
type authComponents struct {
	tokenCodec     authService.TokenCodec
	blacklistRepo  authUseCase.BlacklistRepository
	sessionUseCase authUseCase.SessionUseCase
	cookiePolicy   *authHTTP.CookiePolicy
	sessionHandler *authHTTP.SessionHandler

	tokenCodecInit     sync.Once
	blacklistRepoInit  sync.Once
	sessionUseCaseInit sync.Once
	cookiePolicyInit   sync.Once
	sessionHandlerInit sync.Once
}

// TokenCodec returns the JWT token codec.
func (c *Container) TokenCodec() (authService.TokenCodec, error) {
	c.tokenCodecInit.Do(func() {
		if c.config.JWTSigningKey == "" {
			c.initErrors["tokenCodec"] = fmt.Errorf("JWT_SIGNING_KEY is required")
			return
		}
		c.tokenCodec = authService.NewTokenCodec(
			c.config.JWTSigningKey,
			c.config.AccessTokenExpiration,
			c.config.RefreshTokenExpiration,
		)
	})
	if storedErr, exists := c.initErrors["tokenCodec"]; exists {
		return nil, storedErr
	}
	return c.tokenCodec, nil
}

// BlacklistRepository returns the token blacklist repository based on the database driver.
func (c *Container) BlacklistRepository() (authUseCase.BlacklistRepository, error) {
	c.blacklistRepoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["blacklistRepo"] = fmt.Errorf("failed to get database for blacklist repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.blacklistRepo = authRepository.NewMySQLBlacklistRepository(db)
		case "postgres":
			c.blacklistRepo = authRepository.NewPostgreSQLBlacklistRepository(db)
		default:
			c.initErrors["blacklistRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["blacklistRepo"]; exists {
		return nil, storedErr
	}
	return c.blacklistRepo, nil
}

// SessionUseCase returns the session use case instance.
func (c *Container) SessionUseCase() (authUseCase.SessionUseCase, error) {
	c.sessionUseCaseInit.Do(func() {
		useCase, err := c.initSessionUseCase()
		if err != nil {
			c.initErrors["sessionUseCase"] = err
			return
		}
		c.sessionUseCase = useCase
	})
	if storedErr, exists := c.initErrors["sessionUseCase"]; exists {
		return nil, storedErr
	}
	return c.sessionUseCase, nil
}

// CookiePolicy returns the cookie transport policy.
// Cookie max-ages mirror the token lifetimes from configuration.
func (c *Container) CookiePolicy() *authHTTP.CookiePolicy {
	c.cookiePolicyInit.Do(func() {
		c.cookiePolicy = authHTTP.NewCookiePolicy(
			c.config.Debug,
			c.config.AccessTokenExpiration,
			c.config.RefreshTokenExpiration,
		)
	})
	return c.cookiePolicy
}

// SessionHandler returns the session HTTP handler.
func (c *Container) SessionHandler() (*authHTTP.SessionHandler, error) {
	c.sessionHandlerInit.Do(func() {
		sessionUseCase, err := c.SessionUseCase()
		if err != nil {
			c.initErrors["sessionHandler"] = fmt.Errorf("failed to get session use case for session handler: %w", err)
			return
		}
		c.sessionHandler = authHTTP.NewSessionHandler(sessionUseCase, c.CookiePolicy(), c.Logger())
	})
	if storedErr, exists := c.initErrors["sessionHandler"]; exists {
		return nil, storedErr
	}
	return c.sessionHandler, nil
}

// initSessionUseCase creates the session use case with all its dependencies.
func (c *Container) initSessionUseCase() (authUseCase.SessionUseCase, error) {
	tokenCodec, err := c.TokenCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to get token codec for session use case: %w", err)
	}

	blacklistRepo, err := c.BlacklistRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get blacklist repository for session use case: %w", err)
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for session use case: %w", err)
	}

	passwordAuthenticator := authUseCase.NewPasswordAuthenticator(userRepo, c.PasswordService())

	useCase := authUseCase.NewSessionUseCase(
		tokenCodec,
		blacklistRepo,
		userRepo,
		passwordAuthenticator,
	)

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for session use case: %w", err)
	}

	return authUseCase.NewSessionUseCaseWithMetrics(useCase, businessMetrics), nil
}
