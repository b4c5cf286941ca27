package usecase

import (
	"context"

	"github.com/AndrivA89/pinboard/internal/domain"
)

type PinUseCase struct {
	repo          PinRepository
	defaultViewer string
}

// NewPinUseCase builds the pin use case. defaultViewer stands in for the
// viewer when a read does not name one.
func NewPinUseCase(repo PinRepository, defaultViewer string) *PinUseCase {
	return &PinUseCase{
		repo:          repo,
		defaultViewer: defaultViewer,
	}
}

func (uc *PinUseCase) viewer(id string) string {
	if id == "" {
		return uc.defaultViewer
	}
	return id
}

func (uc *PinUseCase) Feed(ctx context.Context, viewerID string) ([]domain.PinView, error) {
	return uc.repo.Feed(ctx, uc.viewer(viewerID))
}

func (uc *PinUseCase) PinDetail(ctx context.Context, pinID, viewerID string) (*domain.PinDetail, error) {
	return uc.repo.PinDetail(ctx, pinID, uc.viewer(viewerID))
}

func (uc *PinUseCase) CreatePin(ctx context.Context, pin domain.NewPin) (string, error) {
	switch {
	case pin.UserID == "":
		return "", domain.ErrActorRequired
	case pin.Title == "":
		return "", domain.Required("title")
	case pin.BoardID == "":
		return "", domain.Required("boardId")
	}
	return uc.repo.CreatePin(ctx, pin)
}

func (uc *PinUseCase) AddComment(ctx context.Context, pinID string, c domain.NewComment) (string, error) {
	switch {
	case c.UserID == "":
		return "", domain.ErrActorRequired
	case c.Text == "":
		return "", domain.Required("text")
	}
	return uc.repo.AddComment(ctx, pinID, c)
}

func (uc *PinUseCase) SavedPins(ctx context.Context, userID string) ([]domain.SavedPin, error) {
	return uc.repo.SavedPins(ctx, userID)
}

func (uc *PinUseCase) LikedPins(ctx context.Context, userID string) ([]domain.LikedPin, error) {
	return uc.repo.LikedPins(ctx, userID)
}
