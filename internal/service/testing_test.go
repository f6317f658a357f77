package service

import (
	"context"
	"errors"

	"github.com/traininglab/exlink/internal/cache"
	"github.com/traininglab/exlink/internal/model"
	"github.com/traininglab/exlink/internal/queue"
	"github.com/traininglab/exlink/internal/store"
	"github.com/traininglab/exlink/internal/tester"
)

// newTestStore resets the sqlite test DB and returns a fresh store.
func newTestStore() *store.GormStore {
	tester.RemoveDBFile()
	tester.Setup()
	return store.NewGormStore(tester.TestDB())
}

func newTestLinkService(st store.Store) *LinkService {
	return NewLinkService(st, cache.NewNopLinkCache(), queue.NewNopLinkQueue())
}

// countingStore counts DeleteLink commands on its way through to the real
// store, pinning the exactly-one-delete guarantees.
type countingStore struct {
	store.Store
	deletes int
}

func (c *countingStore) DeleteLink(ctx context.Context, id string) error {
	c.deletes++
	return c.Store.DeleteLink(ctx, id)
}

// adjacencyStore is an in-memory LinkQueryStore over a plain adjacency map,
// enough for traversal tests without a database.
type adjacencyStore struct {
	links map[string][]*model.ExerciseLink
}

func newAdjacencyStore() *adjacencyStore {
	return &adjacencyStore{links: make(map[string][]*model.ExerciseLink)}
}

func (a *adjacencyStore) addEdge(sourceID, targetID string, linkType model.LinkType) {
	a.links[sourceID] = append(a.links[sourceID], &model.ExerciseLink{
		SourceExerciseID: sourceID,
		TargetExerciseID: targetID,
		LinkType:         linkType,
		IsActive:         true,
	})
}

func (a *adjacencyStore) GetLink(ctx context.Context, id string) (*model.ExerciseLink, error) {
	return nil, errors.New("not implemented")
}

func (a *adjacencyStore) ListLinksBySource(ctx context.Context, exerciseID string, types ...model.LinkType) ([]*model.ExerciseLink, error) {
	if len(types) == 0 {
		return a.links[exerciseID], nil
	}

	var filtered []*model.ExerciseLink
	for _, link := range a.links[exerciseID] {
		for _, t := range types {
			if link.LinkType == t {
				filtered = append(filtered, link)
				break
			}
		}
	}
	return filtered, nil
}

func (a *adjacencyStore) CountLinks(ctx context.Context, exerciseID string, linkType model.LinkType) (int64, error) {
	var count int64
	for _, link := range a.links[exerciseID] {
		if link.LinkType == linkType {
			count++
		}
	}
	return count, nil
}

func (a *adjacencyStore) LinkExists(ctx context.Context, sourceID, targetID string, linkType model.LinkType) (bool, error) {
	for _, link := range a.links[sourceID] {
		if link.TargetExerciseID == targetID && link.LinkType == linkType {
			return true, nil
		}
	}
	return false, nil
}

// failingLinkStore fails every query, pinning the failure policies.
type failingLinkStore struct {
	err error
}

func (f *failingLinkStore) GetLink(ctx context.Context, id string) (*model.ExerciseLink, error) {
	return nil, f.err
}

func (f *failingLinkStore) ListLinksBySource(ctx context.Context, exerciseID string, types ...model.LinkType) ([]*model.ExerciseLink, error) {
	return nil, f.err
}

func (f *failingLinkStore) CountLinks(ctx context.Context, exerciseID string, linkType model.LinkType) (int64, error) {
	return 0, f.err
}

func (f *failingLinkStore) LinkExists(ctx context.Context, sourceID, targetID string, linkType model.LinkType) (bool, error) {
	return false, f.err
}
