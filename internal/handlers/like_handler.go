package handlers

import (
	"errors"
	"net/http"

	"github.com/blogloom/backend/internal/models"
	"github.com/blogloom/backend/internal/repositories"
	"github.com/blogloom/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles the like toggle endpoint
type LikeHandler struct {
	interactions *services.InteractionService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(interactions *services.InteractionService) *LikeHandler {
	return &LikeHandler{interactions: interactions}
}

// ToggleLike flips the acting user's like on a post and returns the
// resulting state as JSON.
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req models.ToggleLikeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.interactions.ToggleLike(req.PostID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}
