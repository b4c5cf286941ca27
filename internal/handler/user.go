package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users  UserService
	pins   PinService
	social SocialService
}

func NewUserHandler(users UserService, pins PinService, social SocialService) *UserHandler {
	return &UserHandler{
		users:  users,
		pins:   pins,
		social: social,
	}
}

// Profile - GET /api/user/:id
func (h *UserHandler) Profile(c *gin.Context) {
	profile, err := h.users.Profile(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Follow - POST /api/users/:id/follow
func (h *UserHandler) Follow(c *gin.Context) {
	var req actorRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.social.ToggleFollow(c.Request.Context(), c.Param("id"), req.UserID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"isFollowing":    res.State,
		"followersCount": res.Count,
	})
}

// Following - GET /api/users/:id/following
func (h *UserHandler) Following(c *gin.Context) {
	users, err := h.users.Following(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Followers - GET /api/users/:id/followers
func (h *UserHandler) Followers(c *gin.Context) {
	users, err := h.users.Followers(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// SavedPins - GET /api/user/:id/saved-pins
func (h *UserHandler) SavedPins(c *gin.Context) {
	pins, err := h.pins.SavedPins(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pins)
}

// LikedPins - GET /api/user/:id/liked-pins
func (h *UserHandler) LikedPins(c *gin.Context) {
	pins, err := h.pins.LikedPins(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pins)
}
