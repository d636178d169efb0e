package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/blogloom/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// SearchHandler resolves the search box: usernames first, then post titles
type SearchHandler struct {
	userRepository repositories.UserRepository
	postRepository repositories.PostRepository
}

// NewSearchHandler creates a new SearchHandler
func NewSearchHandler(userRepo repositories.UserRepository, postRepo repositories.PostRepository) *SearchHandler {
	return &SearchHandler{
		userRepository: userRepo,
		postRepository: postRepo,
	}
}

// Search redirects to a profile on an exact (case-insensitive) username
// match, otherwise returns posts whose title contains the query.
func (h *SearchHandler) Search(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))

	user, err := h.userRepository.GetUserByUsername(query)
	if err == nil {
		return c.Redirect(http.StatusFound, "/profile/"+url.PathEscape(user.Username))
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	posts, err := h.postRepository.SearchByTitle(query)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"query": query,
		"posts": posts,
	})
}
