package cache

import (
	"context"

	"github.com/traininglab/exlink/internal/model"
)

// LinkCache keeps per-exercise link lists close to the readers. It is
// advisory: every miss or failure falls back to the store, and writers
// invalidate both sides of a mutated edge.
type LinkCache interface {
	// GetLinks returns the cached outgoing links of an exercise, or ok=false
	// on a miss.
	GetLinks(ctx context.Context, exerciseID string) ([]*model.ExerciseLink, bool)
	// SetLinks caches the outgoing links of an exercise.
	SetLinks(ctx context.Context, exerciseID string, links []*model.ExerciseLink) error
	// Invalidate drops the cached links of the given exercises.
	Invalidate(ctx context.Context, exerciseIDs ...string) error
}
