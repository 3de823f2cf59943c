package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/accounts/internal/auth/domain"
)

// Cookie names for the session token pair.
const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

// CookiePolicy controls the attributes of session cookies.
//
// Both cookies are always HttpOnly. In production (Debug=false) cookies are
// Secure with SameSite=None to support cross-site frontends over TLS; in debug
// mode they are plain with SameSite=Lax so local HTTP development works.
// Cookie max-ages must match the token TTLs so a cookie never outlives its
// token or vice versa.
type CookiePolicy struct {
	Debug         bool
	AccessMaxAge  time.Duration
	RefreshMaxAge time.Duration
}

// SetPair writes the access and refresh token cookies for a freshly issued pair.
func (p *CookiePolicy) SetPair(c *gin.Context, pair *authDomain.TokenPair) {
	c.SetSameSite(p.sameSite())
	c.SetCookie(AccessTokenCookie, pair.AccessToken, int(p.AccessMaxAge.Seconds()), "/", "", !p.Debug, true)
	c.SetCookie(RefreshTokenCookie, pair.RefreshToken, int(p.RefreshMaxAge.Seconds()), "/", "", !p.Debug, true)
}

// Clear expires both session cookies.
func (p *CookiePolicy) Clear(c *gin.Context) {
	c.SetSameSite(p.sameSite())
	c.SetCookie(AccessTokenCookie, "", -1, "/", "", !p.Debug, true)
	c.SetCookie(RefreshTokenCookie, "", -1, "/", "", !p.Debug, true)
}

func (p *CookiePolicy) sameSite() http.SameSite {
	if p.Debug {
		return http.SameSiteLaxMode
	}
	return http.SameSiteNoneMode
}

// NewCookiePolicy creates a CookiePolicy from server settings.
func NewCookiePolicy(debug bool, accessMaxAge, refreshMaxAge time.Duration) *CookiePolicy {
	return &CookiePolicy{
		Debug:         debug,
		AccessMaxAge:  accessMaxAge,
		RefreshMaxAge: refreshMaxAge,
	}
}
