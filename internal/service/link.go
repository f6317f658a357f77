package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/traininglab/exlink/internal/cache"
	"github.com/traininglab/exlink/internal/model"
	"github.com/traininglab/exlink/internal/queue"
	"github.com/traininglab/exlink/internal/store"
	"gorm.io/gorm"
)

// NewLinkService creates a new LinkService.
func NewLinkService(store store.Store, linkCache cache.LinkCache, linkQueue queue.LinkQueue) *LinkService {
	return &LinkService{
		store: store,
		cache: linkCache,
		queue: linkQueue,
	}
}

// LinkService owns the bidirectional create and delete of exercise links.
// It derives reverse edges and display orders and persists the pair as one
// store command; running the pre-create guard (LinkValidator.ValidateCreate)
// is the caller's responsibility.
type LinkService struct {
	store store.Store
	cache cache.LinkCache
	queue queue.LinkQueue
}

// CreateBidirectionalLink builds and persists the primary edge
// (sourceID -> targetID, linkType) together with its derived reverse edge
// (targetID -> sourceID, reverse(linkType)). A WORKOUT primary has no
// derivable reverse and persists alone.
//
// Display orders are read independently per side: the primary appends to the
// source's links of linkType, the reverse appends to the target's links of
// the reverse type. The two counts concern different exercises and are never
// assumed consistent with each other.
func (s *LinkService) CreateBidirectionalLink(ctx context.Context, sourceID, targetID string, linkType model.LinkType) (*model.ExerciseLink, *model.ExerciseLink, error) {
	primaryCount, err := s.store.CountLinks(ctx, sourceID, linkType)
	if err != nil {
		return nil, nil, err
	}

	primary := &model.ExerciseLink{
		ID:               uuid.New().String(),
		SourceExerciseID: sourceID,
		TargetExerciseID: targetID,
		LinkType:         linkType,
		DisplayOrder:     int(primaryCount) + 1,
		IsActive:         true,
	}

	var reverse *model.ExerciseLink
	if reverseType, ok := linkType.Reverse(); ok {
		reverseCount, err := s.store.CountLinks(ctx, targetID, reverseType)
		if err != nil {
			return nil, nil, err
		}

		reverse = &model.ExerciseLink{
			ID:               uuid.New().String(),
			SourceExerciseID: targetID,
			TargetExerciseID: sourceID,
			LinkType:         reverseType,
			DisplayOrder:     int(reverseCount) + 1,
			IsActive:         true,
		}
	}

	if err := s.store.CreateBidirectionalLink(ctx, primary, reverse); err != nil {
		return nil, nil, err
	}

	s.afterMutation(ctx, queue.EventLinkCreated, primary)

	return primary, reverse, nil
}

// DeleteBidirectionalLink removes a link by id. With deleteReverse=false only
// the primary edge is removed and exactly one delete command is issued. With
// deleteReverse=true the companion edge on the other exercise is searched per
// the link's own type and removed when found; a missing reverse is not an
// error, since edges may predate bidirectional semantics or already be
// cleaned up. The operation succeeds iff the primary delete succeeded.
func (s *LinkService) DeleteBidirectionalLink(ctx context.Context, linkID string, deleteReverse bool) error {
	link, err := s.store.GetLink(ctx, linkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", ErrLinkNotFound, linkID)
		}
		return err
	}

	if err := s.store.DeleteLink(ctx, link.ID); err != nil {
		return err
	}

	if deleteReverse {
		s.deleteReverseOf(ctx, link)
	}

	s.afterMutation(ctx, queue.EventLinkDeleted, link)

	return nil
}

// deleteReverseOf finds and removes the companion edge of a just-deleted
// link. Best-effort: lookup and delete failures are logged and absorbed, the
// primary delete already succeeded.
func (s *LinkService) deleteReverseOf(ctx context.Context, link *model.ExerciseLink) {
	actualType, ok := model.ParseLinkType(string(link.LinkType))
	if !ok {
		logrus.Warnf("link %s has unknown type %q, skipping reverse delete", link.ID, link.LinkType)
		return
	}

	candidates, err := s.store.ListLinksBySource(ctx, link.TargetExerciseID, actualType.ReverseCandidates()...)
	if err != nil {
		logrus.Warnf("reverse link lookup failed for %s: %v", link.ID, err)
		return
	}

	for _, candidate := range candidates {
		if candidate.PointsBackTo(link.SourceExerciseID) {
			if err := s.store.DeleteLink(ctx, candidate.ID); err != nil {
				logrus.Warnf("reverse link delete failed for %s: %v", candidate.ID, err)
			}
			return
		}
	}
}

// ListLinks returns the outgoing links of an exercise, read through the
// cache when no type filter is given.
func (s *LinkService) ListLinks(ctx context.Context, exerciseID string, types ...model.LinkType) ([]*model.ExerciseLink, error) {
	if len(types) == 0 {
		if links, ok := s.cache.GetLinks(ctx, exerciseID); ok {
			return links, nil
		}
	}

	links, err := s.store.ListLinksBySource(ctx, exerciseID, types...)
	if err != nil {
		return nil, err
	}

	if len(types) == 0 {
		if err := s.cache.SetLinks(ctx, exerciseID, links); err != nil {
			logrus.Warnf("link cache write failed for %s: %v", exerciseID, err)
		}
	}

	return links, nil
}

// afterMutation invalidates both sides of a mutated edge and publishes the
// lifecycle event. Both are advisory paths and never fail the mutation.
func (s *LinkService) afterMutation(ctx context.Context, event string, link *model.ExerciseLink) {
	if err := s.cache.Invalidate(ctx, link.SourceExerciseID, link.TargetExerciseID); err != nil {
		logrus.Warnf("link cache invalidation failed for %s: %v", link.ID, err)
	}

	var err error
	switch event {
	case queue.EventLinkCreated:
		err = s.queue.PublishCreated(ctx, link)
	case queue.EventLinkDeleted:
		err = s.queue.PublishDeleted(ctx, link)
	}
	if err != nil {
		logrus.Warnf("link event publish failed for %s: %v", link.ID, err)
	}
}
