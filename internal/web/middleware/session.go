package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/tair/property-browser/internal/config"
	"github.com/tair/property-browser/internal/session"
	"github.com/tair/property-browser/pkg/logger"
)

const localsSession = "session"

// SessionMiddleware resolves the session cookie into an explicit session context.
// A missing cookie starts a new anonymous session. A store failure is logged and
// the request continues anonymous.
func SessionMiddleware(store session.Store, cfg config.SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Cookie values point into the reused request buffer
		id := utils.CopyString(c.Cookies(cfg.CookieName))
		if id == "" {
			id = session.NewID()
		}

		// refresh the cookie on every request so the TTL slides
		c.Cookie(&fiber.Cookie{
			Name:     cfg.CookieName,
			Value:    id,
			Path:     "/",
			Expires:  time.Now().Add(cfg.TTL),
			Secure:   cfg.Secure,
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})

		ctx := logger.ContextWithSession(c.UserContext(), id)
		c.SetUserContext(ctx)

		sess, err := session.Load(ctx, store, id)
		if err != nil {
			logger.Warn(ctx).Err(err).Msg("Failed to load session, continuing anonymous")
			sess = session.Session{ID: id}
		}

		c.Locals(localsSession, sess)
		return c.Next()
	}
}

// CurrentSession returns the session resolved by SessionMiddleware
func CurrentSession(c *fiber.Ctx) session.Session {
	sess, _ := c.Locals(localsSession).(session.Session)
	return sess
}
