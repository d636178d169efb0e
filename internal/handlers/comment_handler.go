package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/blogloom/backend/internal/models"
	"github.com/blogloom/backend/internal/repositories"
	"github.com/blogloom/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	interactions      *services.InteractionService
	commentRepository repositories.CommentRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(interactions *services.InteractionService, commentRepo repositories.CommentRepository) *CommentHandler {
	return &CommentHandler{
		interactions:      interactions,
		commentRepository: commentRepo,
	}
}

// AddComment creates a comment (or reply) on a post
func (h *CommentHandler) AddComment(c echo.Context) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	userID := getUserIDFromContext(c)

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	req.Content = strings.TrimSpace(req.Content)
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.interactions.AddComment(postID, userID, req.Content, req.ParentID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyContent):
			return echo.NewHTTPError(http.StatusBadRequest, "Comment cannot be empty")
		case errors.Is(err, services.ErrInvalidParent):
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid parent comment")
		case errors.Is(err, repositories.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, comment)
}

// DeleteComment deletes a comment and its replies. Only the author may
// delete; anyone else is sent back to the post unchanged.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	comment, err := h.commentRepository.GetCommentByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	postURL := fmt.Sprintf("/post/%d", comment.PostID)
	if comment.UserID != getUserIDFromContext(c) {
		return c.Redirect(http.StatusFound, postURL)
	}

	if err := h.commentRepository.DeleteComment(id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Redirect(http.StatusFound, postURL)
}
