package usecase

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/AndrivA89/pinboard/internal/domain"
)

const allBoardsKey = "boards:all"

type BoardUseCase struct {
	repo  BoardRepository
	cache *ttlCache[[]domain.BoardSummary]
}

// NewBoardUseCase builds the board use case. The board list is cached for
// ttl; a ttl of zero disables caching.
func NewBoardUseCase(repo BoardRepository, ttl time.Duration) (*BoardUseCase, error) {
	uc := &BoardUseCase{repo: repo}
	if ttl > 0 {
		cache, err := newTTLCache[[]domain.BoardSummary](8, ttl)
		if err != nil {
			return nil, errors.Wrap(err, "create board cache")
		}
		uc.cache = cache
	}
	return uc, nil
}

func (uc *BoardUseCase) Boards(ctx context.Context) ([]domain.BoardSummary, error) {
	if uc.cache == nil {
		return uc.repo.Boards(ctx)
	}
	if boards, ok := uc.cache.Get(allBoardsKey); ok {
		return boards, nil
	}

	gen := uc.cache.Generation()
	boards, err := uc.repo.Boards(ctx)
	if err != nil {
		return nil, err
	}
	uc.cache.SetIfCurrent(allBoardsKey, boards, gen)
	return boards, nil
}

func (uc *BoardUseCase) UserBoards(ctx context.Context, userID string) ([]domain.BoardPreview, error) {
	return uc.repo.UserBoards(ctx, userID)
}

func (uc *BoardUseCase) Board(ctx context.Context, boardID string) (*domain.BoardView, error) {
	return uc.repo.Board(ctx, boardID)
}

func (uc *BoardUseCase) CreateBoard(ctx context.Context, board domain.NewBoard) (string, error) {
	switch {
	case board.UserID == "":
		return "", domain.ErrActorRequired
	case board.Title == "":
		return "", domain.Required("title")
	}

	id, err := uc.repo.CreateBoard(ctx, board)
	if err != nil {
		return "", err
	}
	if uc.cache != nil {
		uc.cache.Delete(allBoardsKey)
	}
	return id, nil
}

func (uc *BoardUseCase) AddPinToBoard(ctx context.Context, boardID, pinID string) (string, error) {
	if pinID == "" {
		return "", domain.Required("pinId")
	}
	return uc.repo.AddPinToBoard(ctx, boardID, pinID)
}
