package repository

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/pkg/errors"

	"github.com/AndrivA89/pinboard/internal/domain"
	"github.com/AndrivA89/pinboard/internal/projection"
)

func (r *Repository) UserProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	session := r.session(ctx, neo4j.AccessModeRead)
	defer r.closeSession(ctx, session)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		query := `
			MATCH (u:User {id_user: $userId})
			OPTIONAL MATCH (u)-[:CREATES]->(b:Board)
			WITH u, count(DISTINCT b) AS boardsCount
			OPTIONAL MATCH (u)-[:CREATES]->(p:Pin)
			WITH u, boardsCount, count(DISTINCT p) AS pinsCount
			OPTIONAL MATCH (u)-[:LIKES]->(liked:Pin)
			RETURN u, boardsCount, pinsCount, count(DISTINCT liked) AS likesCount
		`
		records, err := collect(ctx, tx, query, map[string]interface{}{"userId": userID})
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, errors.Wrapf(domain.ErrNotFound, "User %q", userID)
		}

		record := records[0]
		props := projection.Props(record, "u")
		return &domain.UserProfile{
			ID:             userID,
			Name:           projection.StringProp(props, "name"),
			ProfilePicture: projection.StringProp(props, "profile_picture"),
			BoardsCount:    projection.Int(record, "boardsCount"),
			PinsCount:      projection.Int(record, "pinsCount"),
			LikesCount:     projection.Int(record, "likesCount"),
		}, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "load user profile")
	}

	return result.(*domain.UserProfile), nil
}

// Following lists the users userID follows, by name.
func (r *Repository) Following(ctx context.Context, userID string) ([]domain.UserSummary, error) {
	return r.follows(ctx, userID, `MATCH (u:User {id_user: $userId})-[:FOLLOWS]->(other:User)`)
}

// Followers lists the users following userID, by name.
func (r *Repository) Followers(ctx context.Context, userID string) ([]domain.UserSummary, error) {
	return r.follows(ctx, userID, `MATCH (u:User {id_user: $userId})<-[:FOLLOWS]-(other:User)`)
}

func (r *Repository) follows(ctx context.Context, userID, match string) ([]domain.UserSummary, error) {
	session := r.session(ctx, neo4j.AccessModeRead)
	defer r.closeSession(ctx, session)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		query := match + `
			RETURN DISTINCT other.id_user AS id, other.name AS name, other.profile_picture AS picture
			ORDER BY name
		`
		records, err := collect(ctx, tx, query, map[string]interface{}{"userId": userID})
		if err != nil {
			return nil, err
		}

		users := make([]domain.UserSummary, 0, len(records))
		for _, record := range records {
			users = append(users, domain.UserSummary{
				ID:             projection.String(record, "id"),
				Name:           projection.String(record, "name"),
				ProfilePicture: projection.String(record, "picture"),
			})
		}
		return users, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "list follows")
	}

	return result.([]domain.UserSummary), nil
}
