package handlers

import (
	"net/http"

	"github.com/blogloom/backend/internal/models"
	"github.com/blogloom/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FeedHandler serves the reverse-chronological listing of all posts
type FeedHandler struct {
	postRepository    repositories.PostRepository
	likeRepository    repositories.LikeRepository
	commentRepository repositories.CommentRepository
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(postRepo repositories.PostRepository, likeRepo repositories.LikeRepository, commentRepo repositories.CommentRepository) *FeedHandler {
	return &FeedHandler{
		postRepository:    postRepo,
		likeRepository:    likeRepo,
		commentRepository: commentRepo,
	}
}

// FeedPost is one feed entry: the post plus its interaction counters.
// Listing never touches the view counter.
type FeedPost struct {
	models.Post
	Author        models.UserCompact `json:"author"`
	LikesCount    int64              `json:"likes_count"`
	CommentsCount int64              `json:"comments_count"`
	Liked         bool               `json:"liked"`
}

func (h *FeedHandler) buildFeed(posts []models.Post, viewerID uint) ([]FeedPost, error) {
	feed := make([]FeedPost, len(posts))
	for i, post := range posts {
		entry := FeedPost{Post: post, Author: post.Author.ToCompact()}

		likes, err := h.likeRepository.CountByPost(post.ID)
		if err != nil {
			return nil, err
		}
		entry.LikesCount = likes

		comments, err := h.commentRepository.CountByPost(post.ID)
		if err != nil {
			return nil, err
		}
		entry.CommentsCount = comments

		if viewerID != 0 {
			liked, err := h.likeRepository.HasUserLikedPost(post.ID, viewerID)
			if err != nil {
				return nil, err
			}
			entry.Liked = liked
		}
		feed[i] = entry
	}
	return feed, nil
}

// GetFeed lists every post, newest first
func (h *FeedHandler) GetFeed(c echo.Context) error {
	posts, err := h.postRepository.ListPosts()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	feed, err := h.buildFeed(posts, getUserIDFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"posts": feed})
}
