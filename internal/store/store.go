package store

import (
	"context"

	"github.com/traininglab/exlink/internal/model"
)

type Store interface {
	LinkQueryStore
	LinkCommandStore
	TemplateStore
	Transaction(ctx context.Context, f func(tx Store) error) error
	Migrate() error
}

// LinkQueryStore is the read side of the link graph.
type LinkQueryStore interface {
	// GetLink retrieves a link by ID.
	GetLink(ctx context.Context, id string) (*model.ExerciseLink, error)
	// ListLinksBySource retrieves the outgoing links of an exercise.
	// With no types given it returns links of every type, which is what the
	// circular-reference search walks.
	ListLinksBySource(ctx context.Context, exerciseID string, types ...model.LinkType) ([]*model.ExerciseLink, error)
	// CountLinks returns the number of active links of one type on an exercise.
	CountLinks(ctx context.Context, exerciseID string, linkType model.LinkType) (int64, error)
	// LinkExists reports whether an active link for the exact triple exists.
	LinkExists(ctx context.Context, sourceID, targetID string, linkType model.LinkType) (bool, error)
}

// LinkCommandStore is the write side of the link graph.
type LinkCommandStore interface {
	// CreateBidirectionalLink persists a primary edge and its reverse as one
	// unit. The reverse may be nil (WORKOUT links have no derivable reverse);
	// the store owns atomicity and rollback of the pair.
	CreateBidirectionalLink(ctx context.Context, primary, reverse *model.ExerciseLink) error
	// DeleteLink removes a link by ID.
	DeleteLink(ctx context.Context, id string) error
}

// TemplateStore holds the exercises attached to workout templates.
type TemplateStore interface {
	// ListTemplateExercises retrieves every exercise entry of a template.
	ListTemplateExercises(ctx context.Context, templateID string) ([]*model.WorkoutTemplateExercise, error)
	// ListTemplateIDs retrieves the IDs of all templates that have entries.
	ListTemplateIDs(ctx context.Context) ([]string, error)
	// AddTemplateExercise attaches an exercise entry to a template.
	AddTemplateExercise(ctx context.Context, entry *model.WorkoutTemplateExercise) error
	// DeleteTemplateExercise removes an exercise entry by ID.
	DeleteTemplateExercise(ctx context.Context, id string) error
}
