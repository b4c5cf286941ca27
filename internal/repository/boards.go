package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/pkg/errors"

	"github.com/AndrivA89/pinboard/internal/domain"
	"github.com/AndrivA89/pinboard/internal/projection"
)

func (r *Repository) Boards(ctx context.Context) ([]domain.BoardSummary, error) {
	session := r.session(ctx, neo4j.AccessModeRead)
	defer r.closeSession(ctx, session)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		query := `
			MATCH (b:Board)
			RETURN b.id_board AS id, b.title AS title
			ORDER BY b.created_at DESC
		`
		records, err := collect(ctx, tx, query, nil)
		if err != nil {
			return nil, err
		}

		boards := make([]domain.BoardSummary, 0, len(records))
		for _, record := range records {
			boards = append(boards, domain.BoardSummary{
				ID:    projection.String(record, "id"),
				Title: projection.String(record, "title"),
			})
		}
		return boards, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "list boards")
	}

	return result.([]domain.BoardSummary), nil
}

// UserBoards lists the boards a user created with up to three of the newest
// pin images of each.
func (r *Repository) UserBoards(ctx context.Context, userID string) ([]domain.BoardPreview, error) {
	session := r.session(ctx, neo4j.AccessModeRead)
	defer r.closeSession(ctx, session)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		query := `
			MATCH (u:User {id_user: $userId})-[:CREATES]->(b:Board)
			OPTIONAL MATCH (b)-[:CONTAINS]->(p:Pin)
			WITH b, p
			ORDER BY p.created_at DESC
			WITH b, collect(p.url_image)[0..3] AS images
			RETURN b.id_board AS id, b.title AS title, images
			ORDER BY b.created_at DESC
		`
		records, err := collect(ctx, tx, query, map[string]interface{}{"userId": userID})
		if err != nil {
			return nil, err
		}

		boards := make([]domain.BoardPreview, 0, len(records))
		for _, record := range records {
			boards = append(boards, domain.BoardPreview{
				ID:     projection.String(record, "id"),
				Title:  projection.String(record, "title"),
				Images: projection.Strings(record, "images"),
			})
		}
		return boards, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "list user boards")
	}

	return result.([]domain.BoardPreview), nil
}

func (r *Repository) Board(ctx context.Context, boardID string) (*domain.BoardView, error) {
	session := r.session(ctx, neo4j.AccessModeRead)
	defer r.closeSession(ctx, session)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		query := `
			MATCH (b:Board {id_board: $boardId})
			RETURN b.title AS title,
			       b.description AS description,
			       [(b)-[:CONTAINS]->(p:Pin) | p {.id_pin, .title, .url_image}] AS pins
		`
		records, err := collect(ctx, tx, query, map[string]interface{}{"boardId": boardID})
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, errors.Wrapf(domain.ErrNotFound, "Board %q", boardID)
		}

		record := records[0]
		return &domain.BoardView{
			Title:       projection.String(record, "title"),
			Description: projection.String(record, "description"),
			Pins:        projection.PinSummaries(projection.Maps(record, "pins")),
		}, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "load board")
	}

	return result.(*domain.BoardView), nil
}

func (r *Repository) CreateBoard(ctx context.Context, board domain.NewBoard) (string, error) {
	session := r.session(ctx, neo4j.AccessModeWrite)
	defer r.closeSession(ctx, session)

	id := uuid.NewString()
	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		if err := requireNode(ctx, tx, domain.UserNode.Ref(board.UserID)); err != nil {
			return nil, err
		}

		query := `
			MATCH (u:User {id_user: $userId})
			CREATE (b:Board {id_board: $id, title: $title, description: $description, created_at: datetime()})
			CREATE (u)-[:CREATES]->(b)
		`
		params := map[string]interface{}{
			"id":          id,
			"userId":      board.UserID,
			"title":       board.Title,
			"description": board.Description,
		}
		result, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		return result.Consume(ctx)
	})
	if err != nil {
		return "", errors.Wrap(err, "create board")
	}

	return id, nil
}

// AddPinToBoard links an existing pin into a board. Adding a pin twice leaves
// a single CONTAINS edge.
func (r *Repository) AddPinToBoard(ctx context.Context, boardID, pinID string) (string, error) {
	session := r.session(ctx, neo4j.AccessModeWrite)
	defer r.closeSession(ctx, session)

	result, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		if err := requireNodes(ctx, tx, domain.BoardNode.Ref(boardID), domain.PinNode.Ref(pinID)); err != nil {
			return nil, err
		}

		query := `
			MATCH (b:Board {id_board: $boardId})
			MATCH (p:Pin {id_pin: $pinId})
			MERGE (b)-[:CONTAINS]->(p)
			RETURN p.id_pin AS addedPin
		`
		res, err := tx.Run(ctx, query, map[string]interface{}{
			"boardId": boardID,
			"pinId":   pinID,
		})
		if err != nil {
			return nil, err
		}
		record, err := res.Single(ctx)
		if err != nil {
			return nil, err
		}
		return projection.String(record, "addedPin"), nil
	})
	if err != nil {
		return "", errors.Wrap(err, "add pin to board")
	}

	return result.(string), nil
}
