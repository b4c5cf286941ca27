package usecase

import (
	"context"

	"github.com/pkg/errors"

	"github.com/AndrivA89/pinboard/internal/domain"
)

// SocialUseCase owns every mutation of LIKES and FOLLOWS edges.
type SocialUseCase struct {
	repo RelationshipRepository
}

func NewSocialUseCase(repo RelationshipRepository) *SocialUseCase {
	return &SocialUseCase{
		repo: repo,
	}
}

// ToggleLike likes the pin for userID, or removes the like if present.
func (uc *SocialUseCase) ToggleLike(ctx context.Context, pinID, userID string) (*domain.ToggleResult, error) {
	return uc.toggle(ctx, domain.Toggle{Kind: domain.Likes, ActorID: userID, TargetID: pinID})
}

// ToggleFollow makes userID follow targetID, or unfollow if already following.
func (uc *SocialUseCase) ToggleFollow(ctx context.Context, targetID, userID string) (*domain.ToggleResult, error) {
	return uc.toggle(ctx, domain.Toggle{Kind: domain.Follows, ActorID: userID, TargetID: targetID})
}

func (uc *SocialUseCase) toggle(ctx context.Context, t domain.Toggle) (*domain.ToggleResult, error) {
	rule, ok := t.Kind.Rule()
	if !ok {
		return nil, errors.Errorf("edge kind %s does not toggle", t.Kind)
	}
	if t.ActorID == "" {
		return nil, domain.ErrActorRequired
	}
	if !rule.SelfAllowed && t.ActorID == t.TargetID {
		return nil, domain.ErrSelfFollow
	}

	return uc.repo.Toggle(ctx, t)
}
