package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blogloom/backend/internal/models"
	"github.com/blogloom/backend/internal/repositories/mock"
	"github.com/blogloom/backend/internal/services"
	"github.com/blogloom/backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validators.NewValidator()
	return e
}

// jsonRequest builds an echo context carrying a JSON body and, when userID
// is non-zero, a logged-in acting user.
func jsonRequest(e *echo.Echo, method, target, body string, userID uint) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != 0 {
		c.Set("userID", userID)
	}
	return c, rec
}

func seedUser(t *testing.T, store *mock.Store, username, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{Username: username, Email: username + "@example.com", Password: string(hash)}
	require.NoError(t, store.UserRepository().CreateWithProfile(user))
	return user
}

func seedPost(t *testing.T, store *mock.Store, author *models.User, title string) *models.Post {
	t.Helper()
	post := &models.Post{Title: title, Content: "content", AuthorID: author.ID}
	require.NoError(t, store.PostRepository().CreatePost(post))
	return post
}

func newInteractions(store *mock.Store) *services.InteractionService {
	return services.NewInteractionService(
		store.PostRepository(),
		store.LikeRepository(),
		store.CommentRepository(),
		store.NotificationRepository(),
		store.UserRepository(),
	)
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %v", err)
	return he.Code
}
