package controller

import (
	"net/http"
	"time"

	ctx "github.com/PriyeshRaj231/online-voting-system/internal/context"
	"github.com/PriyeshRaj231/online-voting-system/internal/service"
	"github.com/labstack/echo/v4"
)

const (
	voterCookieName = "session"
	adminCookieName = "admin_session"
)

type sessionMiddleware struct {
	authService service.AuthService
}

func newSessionMiddleware(authService service.AuthService) *sessionMiddleware {
	return &sessionMiddleware{authService: authService}
}

func (m *sessionMiddleware) RequireVoter(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(voterCookieName)
		if err != nil {
			return respondUnauthenticated(c)
		}

		voter, sessionID, err := m.authService.ValidateVoterToken(cookie.Value)
		if err != nil {
			return respondError(c, err)
		}

		ctx.SetVoter(c, voter, sessionID)
		return next(c)
	}
}

func (m *sessionMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(adminCookieName)
		if err != nil {
			return respondUnauthenticated(c)
		}

		admin, err := m.authService.ValidateAdminToken(cookie.Value)
		if err != nil {
			return respondError(c, err)
		}

		ctx.SetAdmin(c, admin)
		return next(c)
	}
}

func respondUnauthenticated(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, errorBody("not_authorized", "Please log in."))
}

func setSessionCookie(c echo.Context, name, token string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}
