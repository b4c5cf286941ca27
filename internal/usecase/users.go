package usecase

import (
	"context"

	"github.com/AndrivA89/pinboard/internal/domain"
)

type UserUseCase struct {
	repo UserRepository
}

func NewUserUseCase(repo UserRepository) *UserUseCase {
	return &UserUseCase{
		repo: repo,
	}
}

func (uc *UserUseCase) Profile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	return uc.repo.UserProfile(ctx, userID)
}

func (uc *UserUseCase) Following(ctx context.Context, userID string) ([]domain.UserSummary, error) {
	return uc.repo.Following(ctx, userID)
}

func (uc *UserUseCase) Followers(ctx context.Context, userID string) ([]domain.UserSummary, error) {
	return uc.repo.Followers(ctx, userID)
}
