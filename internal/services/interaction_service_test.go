package services

import (
	"testing"

	"github.com/blogloom/backend/internal/models"
	"github.com/blogloom/backend/internal/repositories"
	"github.com/blogloom/backend/internal/repositories/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*InteractionService, *mock.Store) {
	t.Helper()
	store := mock.NewStore()
	svc := NewInteractionService(
		store.PostRepository(),
		store.LikeRepository(),
		store.CommentRepository(),
		store.NotificationRepository(),
		store.UserRepository(),
	)
	return svc, store
}

func seedUser(t *testing.T, store *mock.Store, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com", Password: "x"}
	require.NoError(t, store.UserRepository().CreateWithProfile(user))
	return user
}

func seedPost(t *testing.T, store *mock.Store, author *models.User, title string) *models.Post {
	t.Helper()
	post := &models.Post{Title: title, Content: "content", AuthorID: author.ID}
	require.NoError(t, store.PostRepository().CreatePost(post))
	return post
}

func TestToggleLike_TwiceRestoresOriginalState(t *testing.T) {
	svc, store := newService(t)
	author := seedUser(t, store, "author")
	liker := seedUser(t, store, "liker")
	post := seedPost(t, store, author, "hello")

	first, err := svc.ToggleLike(post.ID, liker.ID)
	require.NoError(t, err)
	assert.True(t, first.Liked)
	assert.EqualValues(t, 1, first.LikesCount)

	second, err := svc.ToggleLike(post.ID, liker.ID)
	require.NoError(t, err)
	assert.False(t, second.Liked)
	assert.EqualValues(t, 0, second.LikesCount)

	has, err := store.LikeRepository().HasUserLikedPost(post.ID, liker.ID)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestToggleLike_NotifiesAuthorOnLikeOnly(t *testing.T) {
	svc, store := newService(t)
	author := seedUser(t, store, "author")
	liker := seedUser(t, store, "liker")
	post := seedPost(t, store, author, "hello")

	_, err := svc.ToggleLike(post.ID, liker.ID)
	require.NoError(t, err)

	count, err := store.NotificationRepository().GetUnreadCount(author.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	notifications, err := store.NotificationRepository().ListAndMarkRead(author.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationLike, notifications[0].Type)
	assert.Equal(t, liker.ID, notifications[0].ActorID)
	assert.Equal(t, author.ID, notifications[0].RecipientID)
	require.NotNil(t, notifications[0].PostID)
	assert.Equal(t, post.ID, *notifications[0].PostID)

	// Unlike must not notify.
	_, err = svc.ToggleLike(post.ID, liker.ID)
	require.NoError(t, err)
	count, err = store.NotificationRepository().GetUnreadCount(author.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestToggleLike_SelfLikeFlipsButNeverNotifies(t *testing.T) {
	svc, store := newService(t)
	author := seedUser(t, store, "author")
	post := seedPost(t, store, author, "hello")

	result, err := svc.ToggleLike(post.ID, author.ID)
	require.NoError(t, err)
	assert.True(t, result.Liked)
	assert.EqualValues(t, 1, result.LikesCount)

	count, err := store.NotificationRepository().GetUnreadCount(author.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestToggleLike_UnknownPost(t *testing.T) {
	svc, store := newService(t)
	liker := seedUser(t, store, "liker")

	_, err := svc.ToggleLike(999, liker.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestAddComment_CreatesAndNotifies(t *testing.T) {
	svc, store := newService(t)
	author := seedUser(t, store, "author")
	commenter := seedUser(t, store, "commenter")
	post := seedPost(t, store, author, "hello")

	comment, err := svc.AddComment(post.ID, commenter.ID, "  nice post  ", nil)
	require.NoError(t, err)
	assert.Equal(t, "nice post", comment.Content)
	assert.Equal(t, post.ID, comment.PostID)
	assert.Nil(t, comment.ParentID)

	notifications, err := store.NotificationRepository().ListAndMarkRead(author.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationComment, notifications[0].Type)
}

func TestAddComment_SelfCommentNeverNotifies(t *testing.T) {
	svc, store := newService(t)
	author := seedUser(t, store, "author")
	post := seedPost(t, store, author, "hello")

	_, err := svc.AddComment(post.ID, author.ID, "first!", nil)
	require.NoError(t, err)

	count, err := store.NotificationRepository().GetUnreadCount(author.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAddComment_EmptyAfterTrim(t *testing.T) {
	svc, store := newService(t)
	author := seedUser(t, store, "author")
	post := seedPost(t, store, author, "hello")

	_, err := svc.AddComment(post.ID, author.ID, "   \t ", nil)
	assert.ErrorIs(t, err, ErrEmptyContent)

	count, err := store.CommentRepository().CountByPost(post.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAddComment_ReplyToCommentOnSamePost(t *testing.T) {
	svc, store := newService(t)
	author := seedUser(t, store, "author")
	commenter := seedUser(t, store, "commenter")
	post := seedPost(t, store, author, "hello")

	parent, err := svc.AddComment(post.ID, author.ID, "top level", nil)
	require.NoError(t, err)

	reply, err := svc.AddComment(post.ID, commenter.ID, "a reply", &parent.ID)
	require.NoError(t, err)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, parent.ID, *reply.ParentID)
	assert.Equal(t, parent.PostID, reply.PostID)
}

func TestAddComment_ParentOnDifferentPostRejected(t *testing.T) {
	svc, store := newService(t)
	author := seedUser(t, store, "author")
	postA := seedPost(t, store, author, "post a")
	postB := seedPost(t, store, author, "post b")

	parent, err := svc.AddComment(postA.ID, author.ID, "on post a", nil)
	require.NoError(t, err)

	_, err = svc.AddComment(postB.ID, author.ID, "crossed", &parent.ID)
	assert.ErrorIs(t, err, ErrInvalidParent)
}

func TestAddComment_MissingParentRejected(t *testing.T) {
	svc, store := newService(t)
	author := seedUser(t, store, "author")
	post := seedPost(t, store, author, "hello")

	missing := uint(4242)
	_, err := svc.AddComment(post.ID, author.ID, "orphan reply", &missing)
	assert.ErrorIs(t, err, ErrInvalidParent)
}

func TestDeleteParentCascadesToReplies(t *testing.T) {
	svc, store := newService(t)
	author := seedUser(t, store, "author")
	post := seedPost(t, store, author, "hello")

	parent, err := svc.AddComment(post.ID, author.ID, "top", nil)
	require.NoError(t, err)
	_, err = svc.AddComment(post.ID, author.ID, "reply", &parent.ID)
	require.NoError(t, err)

	require.NoError(t, store.CommentRepository().DeleteComment(parent.ID))

	count, err := store.CommentRepository().CountByPost(post.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}
