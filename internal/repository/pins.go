package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/pkg/errors"

	"github.com/AndrivA89/pinboard/internal/domain"
	"github.com/AndrivA89/pinboard/internal/projection"
)

// pinViewQuery joins a pin row p with everything a PinView needs. The caller
// supplies the leading MATCH binding p and the $viewerId parameter.
const pinViewQuery = `
	OPTIONAL MATCH (u:User)-[:CREATES]->(p)
	WITH p, head(collect(u)) AS u
	OPTIONAL MATCH (b:Board)-[:CONTAINS]->(p)
	WITH p, u, head(collect(b.title)) AS board
	OPTIONAL MATCH (me:User {id_user: $viewerId})
	RETURN p,
	       u.name AS creator,
	       u.id_user AS creatorId,
	       u.profile_picture AS creatorPic,
	       board,
	       size([(:User)-[l:LIKES]->(p) | l]) AS likesCount,
	       (me IS NOT NULL AND size([(me)-[ml:LIKES]->(p) | ml]) > 0) AS likedByMe,
	       (me IS NOT NULL AND u IS NOT NULL AND size([(me)-[f:FOLLOWS]->(u) | f]) > 0) AS isFollowing,
	       [(author:User)-[:WROTE]->(c:Comment)-[:ON]->(p) | {
	           id: c.id_comment,
	           text: c.body,
	           author: author.name,
	           authorPic: author.profile_picture,
	           date: c.created_at
	       }] AS comments
`

// Feed returns every pin newest first, each with its ten latest comments.
func (r *Repository) Feed(ctx context.Context, viewerID string) ([]domain.PinView, error) {
	session := r.session(ctx, neo4j.AccessModeRead)
	defer r.closeSession(ctx, session)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		records, err := collect(ctx, tx, `MATCH (p:Pin)`+pinViewQuery+`ORDER BY p.created_at DESC`, map[string]interface{}{
			"viewerId": viewerID,
		})
		if err != nil {
			return nil, err
		}

		pins := make([]domain.PinView, 0, len(records))
		for _, record := range records {
			view := projection.PinView(record)
			view.Comments = projection.LatestComments(view.Comments, projection.FeedCommentLimit)
			pins = append(pins, view)
		}
		return pins, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "load feed")
	}

	return result.([]domain.PinView), nil
}

// PinDetail loads one pin with all of its comments, then its suggestions, as
// two reads on the same session.
func (r *Repository) PinDetail(ctx context.Context, pinID, viewerID string) (*domain.PinDetail, error) {
	session := r.session(ctx, neo4j.AccessModeRead)
	defer r.closeSession(ctx, session)

	params := map[string]interface{}{
		"pinId":    pinID,
		"viewerId": viewerID,
	}

	mainPin, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		records, err := collect(ctx, tx, `MATCH (p:Pin {id_pin: $pinId})`+pinViewQuery, params)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, errors.Wrapf(domain.ErrNotFound, "Pin %q", pinID)
		}
		return projection.PinView(records[0]), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "load pin")
	}

	suggested, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		query := `
			MATCH (main:Pin {id_pin: $pinId})
			RETURN [(main)<-[:CONTAINS]-(:Board)-[:CONTAINS]->(x:Pin) WHERE x <> main |
			           x {.id_pin, .title, .url_image}] AS boardPins,
			       [(main)<-[:CREATES]-(:User)-[:CREATES]->(x:Pin) WHERE x <> main |
			           x {.id_pin, .title, .url_image}] AS creatorPins
		`
		records, err := collect(ctx, tx, query, params)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return []domain.PinSummary{}, nil
		}
		return projection.Suggestions(pinID,
			projection.PinSummaries(projection.Maps(records[0], "boardPins")),
			projection.PinSummaries(projection.Maps(records[0], "creatorPins")),
		), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "load suggestions")
	}

	return &domain.PinDetail{
		MainPin:              mainPin.(domain.PinView),
		SuggestedSimilarPins: suggested.([]domain.PinSummary),
	}, nil
}

// CreatePin stores a pin created by pin.UserID inside pin.BoardID.
func (r *Repository) CreatePin(ctx context.Context, pin domain.NewPin) (string, error) {
	session := r.session(ctx, neo4j.AccessModeWrite)
	defer r.closeSession(ctx, session)

	id := uuid.NewString()
	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		if err := requireNodes(ctx, tx, domain.UserNode.Ref(pin.UserID), domain.BoardNode.Ref(pin.BoardID)); err != nil {
			return nil, err
		}

		query := `
			MATCH (u:User {id_user: $userId})
			MATCH (b:Board {id_board: $boardId})
			CREATE (p:Pin {
				id_pin: $id,
				title: $title,
				description: $description,
				url_image: $url_image,
				created_at: datetime()
			})
			CREATE (u)-[:CREATES]->(p)
			CREATE (b)-[:CONTAINS]->(p)
		`
		params := map[string]interface{}{
			"id":          id,
			"userId":      pin.UserID,
			"boardId":     pin.BoardID,
			"title":       pin.Title,
			"description": pin.Description,
			"url_image":   pin.ImageURL,
		}
		result, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		return result.Consume(ctx)
	})
	if err != nil {
		return "", errors.Wrap(err, "create pin")
	}

	return id, nil
}

// AddComment attaches a comment written by c.UserID to a pin.
func (r *Repository) AddComment(ctx context.Context, pinID string, c domain.NewComment) (string, error) {
	session := r.session(ctx, neo4j.AccessModeWrite)
	defer r.closeSession(ctx, session)

	id := uuid.NewString()
	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		if err := requireNodes(ctx, tx, domain.UserNode.Ref(c.UserID), domain.PinNode.Ref(pinID)); err != nil {
			return nil, err
		}

		query := `
			MATCH (u:User {id_user: $userId})
			MATCH (p:Pin {id_pin: $pinId})
			CREATE (c:Comment {id_comment: $id, body: $text, created_at: datetime()})
			CREATE (u)-[:WROTE]->(c)-[:ON]->(p)
		`
		params := map[string]interface{}{
			"id":     id,
			"userId": c.UserID,
			"pinId":  pinID,
			"text":   c.Text,
		}
		result, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		return result.Consume(ctx)
	})
	if err != nil {
		return "", errors.Wrap(err, "add comment")
	}

	return id, nil
}

// SavedPins lists the distinct pins held by boards the user created.
func (r *Repository) SavedPins(ctx context.Context, userID string) ([]domain.SavedPin, error) {
	session := r.session(ctx, neo4j.AccessModeRead)
	defer r.closeSession(ctx, session)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		query := `
			MATCH (u:User {id_user: $userId})-[:CREATES]->(b:Board)-[:CONTAINS]->(p:Pin)
			WITH p, head(collect(b.title)) AS board
			OPTIONAL MATCH (creator:User)-[:CREATES]->(p)
			RETURN p, head(collect(creator.name)) AS creator, board
			ORDER BY p.created_at DESC
		`
		records, err := collect(ctx, tx, query, map[string]interface{}{"userId": userID})
		if err != nil {
			return nil, err
		}

		pins := make([]domain.SavedPin, 0, len(records))
		for _, record := range records {
			pins = append(pins, domain.SavedPin{
				Pin:     projection.PinFromProps(projection.Props(record, "p")),
				Creator: projection.Creator(record, "creator"),
				Board:   projection.String(record, "board"),
			})
		}
		return pins, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "load saved pins")
	}

	return result.([]domain.SavedPin), nil
}

// LikedPins lists the pins the user liked, most recent like first.
func (r *Repository) LikedPins(ctx context.Context, userID string) ([]domain.LikedPin, error) {
	session := r.session(ctx, neo4j.AccessModeRead)
	defer r.closeSession(ctx, session)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		query := `
			MATCH (u:User {id_user: $userId})-[l:LIKES]->(p:Pin)
			OPTIONAL MATCH (creator:User)-[:CREATES]->(p)
			RETURN p, head(collect(creator.name)) AS creator, l.date AS likedAt
			ORDER BY likedAt DESC
		`
		records, err := collect(ctx, tx, query, map[string]interface{}{"userId": userID})
		if err != nil {
			return nil, err
		}

		pins := make([]domain.LikedPin, 0, len(records))
		for _, record := range records {
			pins = append(pins, domain.LikedPin{
				Pin:     projection.PinFromProps(projection.Props(record, "p")),
				Creator: projection.Creator(record, "creator"),
				LikedAt: projection.Time(record, "likedAt"),
			})
		}
		return pins, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "load liked pins")
	}

	return result.([]domain.LikedPin), nil
}
