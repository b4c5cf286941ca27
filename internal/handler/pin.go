package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AndrivA89/pinboard/internal/domain"
)

type PinHandler struct {
	pins   PinService
	social SocialService
}

func NewPinHandler(pins PinService, social SocialService) *PinHandler {
	return &PinHandler{
		pins:   pins,
		social: social,
	}
}

// Feed - GET /api/pins?userId=
func (h *PinHandler) Feed(c *gin.Context) {
	pins, err := h.pins.Feed(c.Request.Context(), c.Query("userId"))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pins)
}

// Detail - GET /api/pin/:id?userId=
func (h *PinHandler) Detail(c *gin.Context) {
	detail, err := h.pins.PinDetail(c.Request.Context(), c.Param("id"), c.Query("userId"))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Like - POST /api/pins/:id/like
func (h *PinHandler) Like(c *gin.Context) {
	var req actorRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.social.ToggleLike(c.Request.Context(), c.Param("id"), req.UserID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"isLiked":    res.State,
		"likesCount": res.Count,
	})
}

// Comment - POST /api/pins/:id/comment
func (h *PinHandler) Comment(c *gin.Context) {
	var req domain.NewComment
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.pins.AddComment(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}

// Create - POST /api/pins
func (h *PinHandler) Create(c *gin.Context) {
	var req domain.NewPin
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.pins.CreatePin(c.Request.Context(), req)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}
