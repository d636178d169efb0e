package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/blogloom/backend/internal/models"
	"github.com/blogloom/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// ProfileHandler handles profile viewing and editing
type ProfileHandler struct {
	userRepository    repositories.UserRepository
	profileRepository repositories.ProfileRepository
	postRepository    repositories.PostRepository
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(userRepo repositories.UserRepository, profileRepo repositories.ProfileRepository, postRepo repositories.PostRepository) *ProfileHandler {
	return &ProfileHandler{
		userRepository:    userRepo,
		profileRepository: profileRepo,
		postRepository:    postRepo,
	}
}

func (h *ProfileHandler) renderProfile(c echo.Context, user *models.User, isOwn bool) error {
	posts, err := h.postRepository.ListPostsByAuthor(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := echo.Map{
		"user":           user.ToCompact(),
		"bio":            user.Profile.Bio,
		"posts":          posts,
		"is_own_profile": isOwn,
	}
	// Email and phone are part of the read-only projection only for the owner.
	if isOwn {
		resp["email"] = user.Email
		resp["phone"] = user.Profile.Phone
	}
	return c.JSON(http.StatusOK, resp)
}

// GetOwnProfile returns the acting user's profile with their posts
func (h *ProfileHandler) GetOwnProfile(c echo.Context) error {
	user, err := h.userRepository.GetUserByID(getUserIDFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Authenticated user not found in database")
	}
	return h.renderProfile(c, user, true)
}

// GetUserProfile returns another user's profile by username
func (h *ProfileHandler) GetUserProfile(c echo.Context) error {
	user, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return h.renderProfile(c, user, user.ID == getUserIDFromContext(c))
}

// UpdateProfile edits the acting user's username, email, avatar or phone.
// Only the owner ever reaches this handler; other viewers get the read-only
// projection from GetUserProfile.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByID(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Authenticated user not found in database")
	}

	if username := strings.TrimSpace(req.Username); username != "" && !strings.EqualFold(username, user.Username) {
		taken, err := h.userRepository.UsernameTaken(username)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		if taken {
			return echo.NewHTTPError(http.StatusConflict, "Username already exists")
		}
		user.Username = username
	}
	if email := strings.TrimSpace(req.Email); email != "" && email != user.Email {
		taken, err := h.userRepository.EmailTaken(email)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		if taken {
			return echo.NewHTTPError(http.StatusConflict, "This email is already registered")
		}
		user.Email = email
	}

	if err := h.userRepository.UpdateUser(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return echo.NewHTTPError(http.StatusConflict, "Username or email already registered")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if req.Bio != "" || req.AvatarURL != "" || req.Phone != "" {
		profile, err := h.profileRepository.GetByUserID(userID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		if req.Bio != "" {
			profile.Bio = strings.TrimSpace(req.Bio)
		}
		if req.AvatarURL != "" {
			profile.AvatarURL = req.AvatarURL
		}
		if req.Phone != "" {
			phone := req.Phone
			profile.Phone = &phone
		}
		if err := h.profileRepository.Update(profile); err != nil {
			if errors.Is(err, repositories.ErrDuplicatePhone) {
				return echo.NewHTTPError(http.StatusConflict, "Phone number already registered")
			}
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		user.Profile = *profile
	}

	return h.renderProfile(c, user, true)
}
