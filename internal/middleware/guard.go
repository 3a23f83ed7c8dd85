package middleware

import (
	"chargili/internal/session"

	"github.com/gofiber/fiber/v2"
)

const MsgAccountInactive = "Votre compte est inactif"

type GuardConfig struct {
	RequireAdmin bool
}

// Guard lets a request through only for an authenticated, active operator
// (and an administrator when RequireAdmin is set). It never calls the API.
func Guard(cfg GuardConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		state := State(c)
		if redirect := Check(state, cfg, c.Path()); redirect != "" {
			return c.Redirect(redirect, fiber.StatusFound)
		}
		return c.Next()
	}
}

// Check returns where the guard sends the session, or "" to let it through.
func Check(state *session.State, cfg GuardConfig, from string) string {
	switch {
	case !state.IsAuthenticated():
		return LoginURL(from, "")
	case state.User != nil && !state.User.IsActive():
		return LoginURL(from, MsgAccountInactive)
	case cfg.RequireAdmin && !state.IsAdmin():
		return withQuery("/unauthorized", "from", from)
	}
	return ""
}

// LoginURL builds the login redirect carrying the attempted path.
func LoginURL(from, message string) string {
	args := fiber.AcquireArgs()
	defer fiber.ReleaseArgs(args)
	if from != "" {
		args.Set("from", from)
	}
	if message != "" {
		args.Set("message", message)
	}
	if args.Len() == 0 {
		return "/login"
	}
	return "/login?" + args.String()
}

func withQuery(path, key, value string) string {
	args := fiber.AcquireArgs()
	defer fiber.ReleaseArgs(args)
	args.Set(key, value)
	return path + "?" + args.String()
}
