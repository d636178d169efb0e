package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/blogloom/backend/internal/repositories/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileHandler(store *mock.Store) *ProfileHandler {
	return NewProfileHandler(
		store.UserRepository(),
		store.ProfileRepository(),
		store.PostRepository(),
	)
}

func TestGetOwnProfile_IncludesContactFields(t *testing.T) {
	e := newEcho()
	store := mock.NewStore()
	h := newProfileHandler(store)
	user := seedUser(t, store, "alice", "pw")

	c, rec := jsonRequest(e, http.MethodGet, "/profile", "", user.ID)
	require.NoError(t, h.GetOwnProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["is_own_profile"])
	assert.Equal(t, "alice@example.com", body["email"])
}

func TestGetUserProfile_ReadOnlyForOthers(t *testing.T) {
	e := newEcho()
	store := mock.NewStore()
	h := newProfileHandler(store)
	seedUser(t, store, "alice", "pw")
	viewer := seedUser(t, store, "bob", "pw")

	c, rec := jsonRequest(e, http.MethodGet, "/profile/alice", "", viewer.ID)
	c.SetParamNames("username")
	c.SetParamValues("alice")
	require.NoError(t, h.GetUserProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["is_own_profile"])
	_, hasEmail := body["email"]
	assert.False(t, hasEmail)
	_, hasPhone := body["phone"]
	assert.False(t, hasPhone)
}

func TestGetUserProfile_Unknown(t *testing.T) {
	e := newEcho()
	store := mock.NewStore()
	h := newProfileHandler(store)

	c, _ := jsonRequest(e, http.MethodGet, "/profile/ghost", "", 0)
	c.SetParamNames("username")
	c.SetParamValues("ghost")
	err := h.GetUserProfile(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpStatus(t, err))
}

func TestUpdateProfile_BioAndAvatar(t *testing.T) {
	e := newEcho()
	store := mock.NewStore()
	h := newProfileHandler(store)
	user := seedUser(t, store, "alice", "pw")

	c, rec := jsonRequest(e, http.MethodPost, "/profile",
		`{"bio":"gardener and writer","avatar_url":"https://storage.blogloom.app/profile_pics/alice.png"}`,
		user.ID)
	require.NoError(t, h.UpdateProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	profile, err := store.ProfileRepository().GetByUserID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "gardener and writer", profile.Bio)
	assert.Equal(t, "https://storage.blogloom.app/profile_pics/alice.png", profile.AvatarURL)
}

func TestUpdateProfile_UsernameCollision(t *testing.T) {
	e := newEcho()
	store := mock.NewStore()
	h := newProfileHandler(store)
	seedUser(t, store, "alice", "pw")
	bob := seedUser(t, store, "bob", "pw")

	c, _ := jsonRequest(e, http.MethodPost, "/profile", `{"username":"alice"}`, bob.ID)
	err := h.UpdateProfile(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, httpStatus(t, err))

	// Bob keeps his original username.
	user, err := store.UserRepository().GetUserByID(bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)
}
