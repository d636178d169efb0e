// Package services holds the interaction service, the single producer of
// notifications.
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/blogloom/backend/internal/models"
	"github.com/blogloom/backend/internal/repositories"
	"github.com/sirupsen/logrus"
)

// Errors surfaced by the interaction service on invalid input.
var (
	ErrEmptyContent  = errors.New("comment content is empty")
	ErrInvalidParent = errors.New("parent comment does not belong to this post")
)

// InteractionService orchestrates like toggles and comment creation,
// emitting notifications toward the affected post's author. Self-actions
// never notify: a notification whose recipient equals its actor is
// structurally refused here, for likes and comments alike.
type InteractionService struct {
	postRepository         repositories.PostRepository
	likeRepository         repositories.LikeRepository
	commentRepository      repositories.CommentRepository
	notificationRepository repositories.NotificationRepository
	userRepository         repositories.UserRepository
}

// NewInteractionService creates a new InteractionService
func NewInteractionService(
	postRepo repositories.PostRepository,
	likeRepo repositories.LikeRepository,
	commentRepo repositories.CommentRepository,
	notifRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
) *InteractionService {
	return &InteractionService{
		postRepository:         postRepo,
		likeRepository:         likeRepo,
		commentRepository:      commentRepo,
		notificationRepository: notifRepo,
		userRepository:         userRepo,
	}
}

// ToggleLike flips the user's membership in the post's like set. Toggling
// twice returns the set to its original state. Only the transition to liked
// notifies the post's author.
func (s *InteractionService) ToggleLike(postID, userID uint) (*models.ToggleLikeResponse, error) {
	post, err := s.postRepository.GetPostByID(postID)
	if err != nil {
		return nil, err
	}

	liked, count, err := s.likeRepository.Toggle(postID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to toggle like: %w", err)
	}

	if liked {
		s.notify(post, userID, models.NotificationLike)
	}

	return &models.ToggleLikeResponse{Liked: liked, LikesCount: count}, nil
}

// AddComment validates and stores a comment, then notifies the post's
// author. The parent, if given, must be an existing comment on the same
// post.
func (s *InteractionService) AddComment(postID, userID uint, content string, parentID *uint) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	post, err := s.postRepository.GetPostByID(postID)
	if err != nil {
		return nil, err
	}

	if parentID != nil {
		parent, err := s.commentRepository.GetCommentByID(*parentID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, ErrInvalidParent
			}
			return nil, err
		}
		if parent.PostID != postID {
			return nil, ErrInvalidParent
		}
	}

	comment := &models.Comment{
		PostID:   postID,
		UserID:   userID,
		Content:  content,
		ParentID: parentID,
	}
	if err := s.commentRepository.CreateComment(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.notify(post, userID, models.NotificationComment)

	return comment, nil
}

// notify records the event for the post's author. The comment or like has
// already committed, so a notification failure is logged, not propagated.
func (s *InteractionService) notify(post *models.Post, actorID uint, kind string) {
	if post.AuthorID == actorID {
		return
	}

	actor, err := s.userRepository.GetUserByID(actorID)
	if err != nil {
		logrus.WithError(err).WithField("actor_id", actorID).Warn("notification skipped: actor lookup failed")
		return
	}

	var message string
	switch kind {
	case models.NotificationLike:
		message = fmt.Sprintf("%s liked your post %q", actor.Username, post.Title)
	case models.NotificationComment:
		message = fmt.Sprintf("%s commented on your post %q", actor.Username, post.Title)
	}

	postID := post.ID
	notification := &models.Notification{
		Type:        kind,
		ActorID:     actorID,
		RecipientID: post.AuthorID,
		PostID:      &postID,
		Message:     message,
	}
	if err := s.notificationRepository.CreateNotification(notification); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"post_id": post.ID,
			"type":    kind,
		}).Warn("failed to create notification")
	}
}
