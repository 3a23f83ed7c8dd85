// Package middleware loads the console session and guards protected screens.
package middleware

import (
	"time"

	"chargili/internal/logger"
	"chargili/internal/session"

	"github.com/gofiber/fiber/v2"
)

const (
	SessionCookie = "chargili_sid"
	localsSession = "session"
)

// Session restores the session named by the cookie and attaches it to the
// request. A store or API failure leaves the request anonymous.
func Session(m *session.Manager, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(SessionCookie)

		state, err := m.Restore(c.UserContext(), sid)
		if err != nil {
			log.Warnw("restore session", "path", c.Path(), "error", err)
			state = session.NewState(sid)
		}

		c.Locals(localsSession, state)
		c.SetUserContext(session.WithState(c.UserContext(), state))
		return c.Next()
	}
}

// State returns the session loaded for c, never nil.
func State(c *fiber.Ctx) *session.State {
	if state, ok := c.Locals(localsSession).(*session.State); ok {
		return state
	}
	return session.NewState("")
}

// SetSessionCookie issues the session id cookie.
func SetSessionCookie(c *fiber.Ctx, sid string, secure bool) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    sid,
		Path:     "/",
		HTTPOnly: true,
		Secure:   secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Expires:  time.Unix(0, 0),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
