package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/blogloom/backend/internal/models"
	"github.com/blogloom/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

const relatedPostsLimit = 5

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository     repositories.PostRepository
	commentRepository  repositories.CommentRepository
	likeRepository     repositories.LikeRepository
	categoryRepository repositories.CategoryRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository, likeRepo repositories.LikeRepository, categoryRepo repositories.CategoryRepository) *PostHandler {
	return &PostHandler{
		postRepository:     postRepo,
		commentRepository:  commentRepo,
		likeRepository:     likeRepo,
		categoryRepository: categoryRepo,
	}
}

func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}
	return uint(id), nil
}

// GetCreateForm returns the data the post creation form needs
func (h *PostHandler) GetCreateForm(c echo.Context) error {
	categories, err := h.categoryRepository.ListCategories()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"categories": categories})
}

// CreatePost creates a new post owned by the acting user
func (h *PostHandler) CreatePost(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post := &models.Post{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		AuthorID: userID,
	}
	if err := h.postRepository.CreatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, post)
}

// GetPostDetail returns the post with its comment thread and related posts.
// Every successful detail read increments the view counter by exactly one.
func (h *PostHandler) GetPostDetail(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.postRepository.IncrementViews(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	post, err := h.postRepository.GetPostByID(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	comments, err := h.commentRepository.ListByPost(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	related, err := h.postRepository.ListRelated(id, relatedPostsLimit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	likesCount, err := h.likeRepository.CountByPost(id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	liked := false
	if viewerID := getUserIDFromContext(c); viewerID != 0 {
		liked, err = h.likeRepository.HasUserLikedPost(id, viewerID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"post":          post,
		"author":        post.Author.ToCompact(),
		"comments":      comments,
		"related_posts": related,
		"likes_count":   likesCount,
		"liked":         liked,
	})
}

// GetEditForm returns the post for editing; only the author may load it
func (h *PostHandler) GetEditForm(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if post.AuthorID != getUserIDFromContext(c) {
		return c.Redirect(http.StatusFound, "/")
	}

	return c.JSON(http.StatusOK, echo.Map{"post": post})
}

// EditPost updates title/content/image; a non-author request changes nothing
func (h *PostHandler) EditPost(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if post.AuthorID != getUserIDFromContext(c) {
		return c.Redirect(http.StatusFound, "/")
	}

	if req.Title != "" {
		post.Title = req.Title
	}
	if req.Content != "" {
		post.Content = req.Content
	}
	if req.ImageURL != "" {
		post.ImageURL = req.ImageURL
	}

	if err := h.postRepository.UpdatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, post)
}

// DeletePost deletes the post and cascades to its comments and likes.
// A non-author request is a silent no-op.
func (h *PostHandler) DeletePost(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if post.AuthorID != getUserIDFromContext(c) {
		return c.Redirect(http.StatusFound, "/my-posts")
	}

	if err := h.postRepository.DeletePost(id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.Redirect(http.StatusFound, "/my-posts")
}

// GetMyPosts lists the acting user's posts, newest first
func (h *PostHandler) GetMyPosts(c echo.Context) error {
	userID := getUserIDFromContext(c)

	posts, err := h.postRepository.ListPostsByAuthor(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"posts": posts})
}

// GetDashboard returns the acting user's posts with their view total
func (h *PostHandler) GetDashboard(c echo.Context) error {
	userID := getUserIDFromContext(c)

	posts, err := h.postRepository.ListPostsByAuthor(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	totalViews, err := h.postRepository.TotalViewsByAuthor(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"posts":       posts,
		"total_views": totalViews,
	})
}
