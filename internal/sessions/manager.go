// Package sessions implements cookie-backed login sessions. The cookie only
// carries an opaque session ID; the authoritative state lives in the
// sessions table.
package sessions

import (
	"net/http"
	"time"

	"github.com/blogloom/backend/internal/models"
	"github.com/blogloom/backend/internal/repositories"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const cookieName = "blogloom_session"

// Manager creates, resolves and destroys login sessions.
type Manager struct {
	sessions repositories.SessionRepository
	maxAge   time.Duration
}

// NewManager creates a session manager with the given session lifetime.
func NewManager(sessions repositories.SessionRepository, maxAge time.Duration) *Manager {
	return &Manager{sessions: sessions, maxAge: maxAge}
}

// Create starts a session for the user and sets the cookie on the response.
func (m *Manager) Create(c echo.Context, userID uint) error {
	session := &models.Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(m.maxAge),
	}
	if err := m.sessions.CreateSession(session); err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    session.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  session.ExpiresAt,
	})
	return nil
}

// Destroy deletes the session row, if any, and expires the cookie.
func (m *Manager) Destroy(c echo.Context) {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie.Value != "" {
		_ = m.sessions.DeleteSession(cookie.Value)
	}
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
	})
}

// CurrentUserID resolves the acting user from the request cookie.
func (m *Manager) CurrentUserID(c echo.Context) (uint, bool) {
	cookie, err := c.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return 0, false
	}
	session, err := m.sessions.GetSession(cookie.Value)
	if err != nil {
		return 0, false
	}
	return session.UserID, true
}
