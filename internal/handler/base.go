package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/AndrivA89/pinboard/internal/domain"
)

type SocialService interface {
	ToggleLike(ctx context.Context, pinID, userID string) (*domain.ToggleResult, error)
	ToggleFollow(ctx context.Context, targetID, userID string) (*domain.ToggleResult, error)
}

type PinService interface {
	Feed(ctx context.Context, viewerID string) ([]domain.PinView, error)
	PinDetail(ctx context.Context, pinID, viewerID string) (*domain.PinDetail, error)
	CreatePin(ctx context.Context, pin domain.NewPin) (string, error)
	AddComment(ctx context.Context, pinID string, c domain.NewComment) (string, error)
	SavedPins(ctx context.Context, userID string) ([]domain.SavedPin, error)
	LikedPins(ctx context.Context, userID string) ([]domain.LikedPin, error)
}

type BoardService interface {
	Boards(ctx context.Context) ([]domain.BoardSummary, error)
	UserBoards(ctx context.Context, userID string) ([]domain.BoardPreview, error)
	Board(ctx context.Context, boardID string) (*domain.BoardView, error)
	CreateBoard(ctx context.Context, board domain.NewBoard) (string, error)
	AddPinToBoard(ctx context.Context, boardID, pinID string) (string, error)
}

type UserService interface {
	Profile(ctx context.Context, userID string) (*domain.UserProfile, error)
	Following(ctx context.Context, userID string) ([]domain.UserSummary, error)
	Followers(ctx context.Context, userID string) ([]domain.UserSummary, error)
}

type actorRequest struct {
	UserID string `json:"userId"`
}

// RespondError writes err as {"error": msg} with a status chosen by kind:
// validation 400, not found 404, anything else 500.
func RespondError(c *gin.Context, err error) {
	_ = c.Error(err)

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

// bindJSON decodes the request body, answering 400 on malformed input.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, &domain.ValidationError{Msg: "invalid request body: " + err.Error()})
		return false
	}
	return true
}
