package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/blogloom/backend/internal/repositories/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostHandler(store *mock.Store) *PostHandler {
	return NewPostHandler(
		store.PostRepository(),
		store.CommentRepository(),
		store.LikeRepository(),
		store.CategoryRepository(),
	)
}

func TestGetPostDetail_IncrementsViewsExactlyOncePerRead(t *testing.T) {
	e := newEcho()
	store := mock.NewStore()
	h := newPostHandler(store)
	author := seedUser(t, store, "author", "pw")
	post := seedPost(t, store, author, "hello")

	const reads = 3
	for i := 0; i < reads; i++ {
		c, rec := jsonRequest(e, http.MethodGet, "/post/1", "", 0)
		c.SetParamNames("id")
		c.SetParamValues(fmt.Sprint(post.ID))
		require.NoError(t, h.GetPostDetail(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	got, err := store.PostRepository().GetPostByID(post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, reads, got.Views)
}

func TestFeedListingNeverTouchesViewCounter(t *testing.T) {
	e := newEcho()
	store := mock.NewStore()
	author := seedUser(t, store, "author", "pw")
	post := seedPost(t, store, author, "hello")

	feed := NewFeedHandler(store.PostRepository(), store.LikeRepository(), store.CommentRepository())
	c, rec := jsonRequest(e, http.MethodGet, "/", "", 0)
	require.NoError(t, feed.GetFeed(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	got, err := store.PostRepository().GetPostByID(post.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Views)
}

func TestGetPostDetail_UnknownPost(t *testing.T) {
	e := newEcho()
	store := mock.NewStore()
	h := newPostHandler(store)

	c, _ := jsonRequest(e, http.MethodGet, "/post/99", "", 0)
	c.SetParamNames("id")
	c.SetParamValues("99")
	err := h.GetPostDetail(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpStatus(t, err))
}

func TestCreatePost_StartsWithZeroViews(t *testing.T) {
	e := newEcho()
	store := mock.NewStore()
	h := newPostHandler(store)
	author := seedUser(t, store, "author", "pw")

	c, rec := jsonRequest(e, http.MethodPost, "/create",
		`{"title":"fresh","content":"body"}`, author.ID)
	require.NoError(t, h.CreatePost(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	posts, err := store.PostRepository().ListPostsByAuthor(author.ID)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Zero(t, posts[0].Views)

	likes, err := store.LikeRepository().CountByPost(posts[0].ID)
	require.NoError(t, err)
	assert.Zero(t, likes)
}

func TestCreatePost_RequiresTitleAndContent(t *testing.T) {
	e := newEcho()
	store := mock.NewStore()
	h := newPostHandler(store)
	author := seedUser(t, store, "author", "pw")

	c, _ := jsonRequest(e, http.MethodPost, "/create", `{"title":"no body"}`, author.ID)
	err := h.CreatePost(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
}

func TestEditPost_NonAuthorChangesNothing(t *testing.T) {
	e := newEcho()
	store := mock.NewStore()
	h := newPostHandler(store)
	author := seedUser(t, store, "author", "pw")
	intruder := seedUser(t, store, "intruder", "pw")
	post := seedPost(t, store, author, "original")

	c, rec := jsonRequest(e, http.MethodPost, "/post/1/edit",
		`{"title":"hijacked"}`, intruder.ID)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(post.ID))
	require.NoError(t, h.EditPost(c))
	assert.Equal(t, http.StatusFound, rec.Code)

	got, err := store.PostRepository().GetPostByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Title)
}

func TestEditPost_AuthorUpdatesFields(t *testing.T) {
	e := newEcho()
	store := mock.NewStore()
	h := newPostHandler(store)
	author := seedUser(t, store, "author", "pw")
	post := seedPost(t, store, author, "original")

	c, rec := jsonRequest(e, http.MethodPost, "/post/1/edit",
		`{"title":"updated","content":"new body"}`, author.ID)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(post.ID))
	require.NoError(t, h.EditPost(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	got, err := store.PostRepository().GetPostByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "updated", got.Title)
	assert.Equal(t, "new body", got.Content)
}

func TestDeletePost_NonAuthorIsNoOp(t *testing.T) {
	e := newEcho()
	store := mock.NewStore()
	h := newPostHandler(store)
	author := seedUser(t, store, "author", "pw")
	intruder := seedUser(t, store, "intruder", "pw")
	post := seedPost(t, store, author, "keep me")

	interactions := newInteractions(store)
	_, err := interactions.AddComment(post.ID, author.ID, "a comment", nil)
	require.NoError(t, err)

	c, rec := jsonRequest(e, http.MethodPost, "/delete-post/1", "", intruder.ID)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(post.ID))
	require.NoError(t, h.DeletePost(c))
	assert.Equal(t, http.StatusFound, rec.Code)

	// Post and its comments remain untouched.
	_, err = store.PostRepository().GetPostByID(post.ID)
	assert.NoError(t, err)
	count, err := store.CommentRepository().CountByPost(post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestDeletePost_CascadesToCommentsAndLikes(t *testing.T) {
	e := newEcho()
	store := mock.NewStore()
	h := newPostHandler(store)
	author := seedUser(t, store, "author", "pw")
	fan := seedUser(t, store, "fan", "pw")
	post := seedPost(t, store, author, "doomed")

	interactions := newInteractions(store)
	parent, err := interactions.AddComment(post.ID, fan.ID, "top", nil)
	require.NoError(t, err)
	_, err = interactions.AddComment(post.ID, author.ID, "reply", &parent.ID)
	require.NoError(t, err)
	_, err = interactions.ToggleLike(post.ID, fan.ID)
	require.NoError(t, err)

	c, _ := jsonRequest(e, http.MethodPost, "/delete-post/1", "", author.ID)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(post.ID))
	require.NoError(t, h.DeletePost(c))

	_, err = store.PostRepository().GetPostByID(post.ID)
	assert.Error(t, err)
	count, err := store.CommentRepository().CountByPost(post.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
	likes, err := store.LikeRepository().CountByPost(post.ID)
	require.NoError(t, err)
	assert.Zero(t, likes)
}

func TestGetDashboard_SumsViews(t *testing.T) {
	e := newEcho()
	store := mock.NewStore()
	h := newPostHandler(store)
	author := seedUser(t, store, "author", "pw")
	p1 := seedPost(t, store, author, "one")
	p2 := seedPost(t, store, author, "two")

	require.NoError(t, store.PostRepository().IncrementViews(p1.ID))
	require.NoError(t, store.PostRepository().IncrementViews(p1.ID))
	require.NoError(t, store.PostRepository().IncrementViews(p2.ID))

	c, rec := jsonRequest(e, http.MethodGet, "/dashboard", "", author.ID)
	require.NoError(t, h.GetDashboard(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		TotalViews int64 `json:"total_views"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 3, body.TotalViews)
}
