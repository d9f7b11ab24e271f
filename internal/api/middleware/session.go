package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tradeco/board/internal/core/domain"
	"github.com/tradeco/board/internal/core/ports"
)

const (
	// SessionCookieName is the cookie that carries the signed session token.
	SessionCookieName = "tradeco_session"

	principalKey = "principal"
	tokenKey     = "session_token"
)

// Session resolves the session cookie, if any, and stores the principal on the context.
// A cookie that no longer maps to a live session is cleared and the request continues
// anonymously. When the lookup itself fails the request is also anonymous, but the cookie
// is kept so the session works again once the store is back.
func Session(sessions ports.SessionService, secure bool, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			principal, err := sessions.Resolve(c.Request().Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, domain.ErrSessionNotFound) {
					ClearSessionCookie(c, secure)
				} else {
					log.Error().Err(err).Str("path", c.Path()).Msg("session lookup failed")
				}
				return next(c)
			}

			SetPrincipal(c, principal, cookie.Value)
			return next(c)
		}
	}
}

// Principal returns the authenticated session for the request, or nil when anonymous.
func Principal(c echo.Context) *domain.Session {
	p, _ := c.Get(principalKey).(*domain.Session)
	return p
}

// SetPrincipal marks the request as made by p, holding token.
func SetPrincipal(c echo.Context, p *domain.Session, token string) {
	c.Set(principalKey, p)
	c.Set(tokenKey, token)
}

// SessionToken returns the raw cookie token of an authenticated request.
func SessionToken(c echo.Context) string {
	t, _ := c.Get(tokenKey).(string)
	return t
}

// SetSessionCookie writes the cookie for a freshly issued session. It expires together
// with the session, so the remember-me choice decides how long the browser keeps it.
func SetSessionCookie(c echo.Context, issued *ports.IssuedSession, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    issued.Token,
		Path:     "/",
		Expires:  issued.Session.ExpiresAt,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	SetPrincipal(c, issued.Session, issued.Token)
}

// ClearSessionCookie expires the cookie in the browser and drops the principal.
func ClearSessionCookie(c echo.Context, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	SetPrincipal(c, nil, "")
}
