package usecase

import (
	"context"

	"github.com/AndrivA89/pinboard/internal/domain"
)

type RelationshipRepository interface {
	Toggle(ctx context.Context, t domain.Toggle) (*domain.ToggleResult, error)
}

type PinRepository interface {
	Feed(ctx context.Context, viewerID string) ([]domain.PinView, error)
	PinDetail(ctx context.Context, pinID, viewerID string) (*domain.PinDetail, error)
	CreatePin(ctx context.Context, pin domain.NewPin) (string, error)
	AddComment(ctx context.Context, pinID string, c domain.NewComment) (string, error)
	SavedPins(ctx context.Context, userID string) ([]domain.SavedPin, error)
	LikedPins(ctx context.Context, userID string) ([]domain.LikedPin, error)
}

type BoardRepository interface {
	Boards(ctx context.Context) ([]domain.BoardSummary, error)
	UserBoards(ctx context.Context, userID string) ([]domain.BoardPreview, error)
	Board(ctx context.Context, boardID string) (*domain.BoardView, error)
	CreateBoard(ctx context.Context, board domain.NewBoard) (string, error)
	AddPinToBoard(ctx context.Context, boardID, pinID string) (string, error)
}

type UserRepository interface {
	UserProfile(ctx context.Context, userID string) (*domain.UserProfile, error)
	Following(ctx context.Context, userID string) ([]domain.UserSummary, error)
	Followers(ctx context.Context, userID string) ([]domain.UserSummary, error)
}
