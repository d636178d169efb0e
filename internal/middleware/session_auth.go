package middleware

import (
	"net/http"

	"github.com/blogloom/backend/internal/sessions"
	"github.com/labstack/echo/v4"
)

// userIDKey is the context key handlers read the acting user from.
const userIDKey = "userID"

// LoadSession resolves the session cookie when present and stores the acting
// user in the request context. It never rejects the request; public pages
// use it to vary their projection for logged-in viewers.
func LoadSession(m *sessions.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if userID, ok := m.CurrentUserID(c); ok {
				c.Set(userIDKey, userID)
			}
			return next(c)
		}
	}
}

// RequireSession rejects requests without a valid session by redirecting to
// the login page, the behavior browser-facing routes expect.
func RequireSession(m *sessions.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := m.CurrentUserID(c)
			if !ok {
				return c.Redirect(http.StatusFound, "/accounts/login")
			}
			c.Set(userIDKey, userID)
			return next(c)
		}
	}
}

// RequireSessionJSON rejects requests without a valid session with 401, for
// endpoints consumed as JSON rather than navigated to.
func RequireSessionJSON(m *sessions.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := m.CurrentUserID(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}
			c.Set(userIDKey, userID)
			return next(c)
		}
	}
}
