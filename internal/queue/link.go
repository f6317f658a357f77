package queue

import (
	"context"

	"github.com/traininglab/exlink/internal/model"
)

var LinkEventTopic = "exlink.link.events"

const (
	EventLinkCreated = "link.created"
	EventLinkDeleted = "link.deleted"
)

// LinkEvent is the payload published after a link mutation commits.
type LinkEvent struct {
	Event            string         `json:"event"`
	LinkID           string         `json:"link_id"`
	SourceExerciseID string         `json:"source_exercise_id"`
	TargetExerciseID string         `json:"target_exercise_id"`
	LinkType         model.LinkType `json:"link_type"`
}

// LinkQueue fans link lifecycle events out to downstream consumers.
// Publishing is best-effort; failures are logged by callers, never
// propagated into the mutation result.
type LinkQueue interface {
	// PublishCreated appends a link-created event to the queue.
	PublishCreated(ctx context.Context, link *model.ExerciseLink) error
	// PublishDeleted appends a link-deleted event to the queue.
	PublishDeleted(ctx context.Context, link *model.ExerciseLink) error
}

// NopLinkQueue drops every event; used when no broker is configured.
type NopLinkQueue struct{}

func NewNopLinkQueue() NopLinkQueue { return NopLinkQueue{} }

func (NopLinkQueue) PublishCreated(ctx context.Context, link *model.ExerciseLink) error {
	return nil
}

func (NopLinkQueue) PublishDeleted(ctx context.Context, link *model.ExerciseLink) error {
	return nil
}
