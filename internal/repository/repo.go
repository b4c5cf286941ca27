package repository

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/pkg/errors"
	"github.com/saulfrancisco-ruizacevedo/gocypher"
	"github.com/sirupsen/logrus"

	"github.com/AndrivA89/pinboard/internal/domain"
)

// Repository runs every pin board operation against Neo4j. Each method opens
// its own session and closes it before returning, on every path.
type Repository struct {
	driver   neo4j.DriverWithContext
	database string
	log      logrus.FieldLogger
}

func New(driver neo4j.DriverWithContext, database string, log logrus.FieldLogger) *Repository {
	return &Repository{
		driver:   driver,
		database: database,
		log:      log,
	}
}

func (r *Repository) session(ctx context.Context, mode neo4j.AccessMode) neo4j.SessionWithContext {
	return r.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   mode,
		DatabaseName: r.database,
	})
}

func (r *Repository) closeSession(ctx context.Context, session neo4j.SessionWithContext) {
	if err := session.Close(ctx); err != nil {
		r.log.WithError(err).Warn("failed to close neo4j session")
	}
}

// VerifyConnectivity reports whether the database is reachable.
func (r *Repository) VerifyConnectivity(ctx context.Context) error {
	return r.driver.VerifyConnectivity(ctx)
}

var constraints = []string{
	`CREATE CONSTRAINT user_id IF NOT EXISTS FOR (u:User) REQUIRE u.id_user IS UNIQUE`,
	`CREATE CONSTRAINT pin_id IF NOT EXISTS FOR (p:Pin) REQUIRE p.id_pin IS UNIQUE`,
	`CREATE CONSTRAINT board_id IF NOT EXISTS FOR (b:Board) REQUIRE b.id_board IS UNIQUE`,
	`CREATE CONSTRAINT comment_id IF NOT EXISTS FOR (c:Comment) REQUIRE c.id_comment IS UNIQUE`,
}

// EnsureSchema creates the id uniqueness constraints. Schema statements can't
// share a transaction with each other, so each runs on its own.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	session := r.session(ctx, neo4j.AccessModeWrite)
	defer r.closeSession(ctx, session)

	for _, stmt := range constraints {
		_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
			result, err := tx.Run(ctx, stmt, nil)
			if err != nil {
				return nil, err
			}
			return result.Consume(ctx)
		})
		if err != nil {
			return errors.Wrapf(err, "apply schema %q", stmt)
		}
	}
	return nil
}

// requireNode fails with domain.ErrNotFound unless the referenced node exists.
func requireNode(ctx context.Context, tx neo4j.ManagedTransaction, ref domain.NodeRef) error {
	query, params, err := gocypher.NewQueryBuilder().
		Match(gocypher.N("n", ref.Label).WithProperties(map[string]interface{}{ref.Key: ref.ID})).
		Return("n").
		Build()
	if err != nil {
		return errors.Wrap(err, "build existence query")
	}

	result, err := tx.Run(ctx, query, params)
	if err != nil {
		return err
	}
	found := result.Next(ctx)
	if err = result.Err(); err != nil {
		return err
	}
	if !found {
		return errors.Wrapf(domain.ErrNotFound, "%s %q", ref.Label, ref.ID)
	}
	_, err = result.Consume(ctx)
	return err
}

func requireNodes(ctx context.Context, tx neo4j.ManagedTransaction, refs ...domain.NodeRef) error {
	for _, ref := range refs {
		if err := requireNode(ctx, tx, ref); err != nil {
			return err
		}
	}
	return nil
}

// collect drains a result into records.
func collect(ctx context.Context, tx neo4j.ManagedTransaction, query string, params map[string]interface{}) ([]*neo4j.Record, error) {
	result, err := tx.Run(ctx, query, params)
	if err != nil {
		return nil, err
	}
	return result.Collect(ctx)
}
