package repository

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/pkg/errors"

	"github.com/AndrivA89/pinboard/internal/domain"
	"github.com/AndrivA89/pinboard/internal/projection"
)

// Toggle flips the presence of (actor)-[KIND]->(target) and recounts the
// incoming KIND edges of the target.
//
// Check, flip and recount run in one write transaction that first takes a
// write lock on the target, so concurrent toggles against the same target
// are serialized and the pair never ends up with more than one edge. Any
// duplicates left by earlier writers are removed on the next flip to absent.
func (r *Repository) Toggle(ctx context.Context, t domain.Toggle) (*domain.ToggleResult, error) {
	rule, ok := t.Kind.Rule()
	if !ok {
		return nil, errors.Errorf("edge kind %s does not toggle", t.Kind)
	}

	session := r.session(ctx, neo4j.AccessModeWrite)
	defer r.closeSession(ctx, session)

	params := map[string]interface{}{
		"actorId":  t.ActorID,
		"targetId": t.TargetID,
	}

	result, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (interface{}, error) {
		if err := requireNodes(ctx, tx, rule.Actor.Ref(t.ActorID), rule.Target.Ref(t.TargetID)); err != nil {
			return nil, err
		}

		lock := fmt.Sprintf(`
			MATCH (t:%s {%s: $targetId})
			SET t._lock = true
			REMOVE t._lock
		`, rule.Target.Label, rule.Target.Key)
		res, err := tx.Run(ctx, lock, params)
		if err != nil {
			return nil, err
		}
		if _, err = res.Consume(ctx); err != nil {
			return nil, err
		}

		flip := fmt.Sprintf(`
			MATCH (a:%[1]s {%[2]s: $actorId})
			MATCH (t:%[3]s {%[4]s: $targetId})
			OPTIONAL MATCH (a)-[r:%[5]s]->(t)
			WITH a, t, collect(r) AS existing
			FOREACH (e IN existing | DELETE e)
			FOREACH (x IN CASE WHEN size(existing) = 0 THEN [1] ELSE [] END |
				CREATE (a)-[:%[5]s {%[6]s: datetime()}]->(t)
			)
			RETURN size(existing) = 0 AS state
		`, rule.Actor.Label, rule.Actor.Key, rule.Target.Label, rule.Target.Key, rule.Kind, rule.StampProp)
		res, err = tx.Run(ctx, flip, params)
		if err != nil {
			return nil, err
		}
		record, err := res.Single(ctx)
		if err != nil {
			return nil, err
		}
		state := projection.Bool(record, "state")

		count := fmt.Sprintf(`
			MATCH (t:%s {%s: $targetId})
			OPTIONAL MATCH (:%s)-[r:%s]->(t)
			RETURN count(r) AS count
		`, rule.Target.Label, rule.Target.Key, rule.Actor.Label, rule.Kind)
		res, err = tx.Run(ctx, count, params)
		if err != nil {
			return nil, err
		}
		record, err = res.Single(ctx)
		if err != nil {
			return nil, err
		}

		return &domain.ToggleResult{
			State: state,
			Count: projection.Int(record, "count"),
		}, nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "toggle %s %s -> %s", t.Kind, t.ActorID, t.TargetID)
	}

	return result.(*domain.ToggleResult), nil
}
