package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/traininglab/exlink/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *GormStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "store.db")), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, model.Migrate(db))

	return NewGormStore(db)
}

func newLink(sourceID, targetID string, linkType model.LinkType, order int) *model.ExerciseLink {
	return &model.ExerciseLink{
		ID:               uuid.New().String(),
		SourceExerciseID: sourceID,
		TargetExerciseID: targetID,
		LinkType:         linkType,
		DisplayOrder:     order,
		IsActive:         true,
	}
}

func TestGormStore_UniqueTriple(t *testing.T) {
	st := newTestStore(t)

	source := uuid.New().String()
	target := uuid.New().String()

	ctx := context.TODO()
	err := st.CreateBidirectionalLink(ctx, newLink(source, target, model.LinkTypeWarmup, 1), nil)
	assert.NoError(t, err)

	// The store, not the service, is the final arbiter of uniqueness under
	// concurrency: a duplicate triple is rejected by the index.
	err = st.CreateBidirectionalLink(ctx, newLink(source, target, model.LinkTypeWarmup, 2), nil)
	assert.Error(t, err)

	// A different type for the same pair is a different edge.
	err = st.CreateBidirectionalLink(ctx, newLink(source, target, model.LinkTypeCooldown, 1), nil)
	assert.NoError(t, err)
}

func TestGormStore_BidirectionalCreateRollsBack(t *testing.T) {
	st := newTestStore(t)

	source := uuid.New().String()
	target := uuid.New().String()

	ctx := context.TODO()
	assert.NoError(t, st.CreateBidirectionalLink(ctx, newLink(target, source, model.LinkTypeWorkout, 1), nil))

	// The reverse collides with the existing WORKOUT edge, so the primary
	// must roll back with it.
	err := st.CreateBidirectionalLink(ctx,
		newLink(source, target, model.LinkTypeWarmup, 1),
		newLink(target, source, model.LinkTypeWorkout, 2))
	assert.Error(t, err)

	exists, err := st.LinkExists(ctx, source, target, model.LinkTypeWarmup)
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestGormStore_ListLinksBySource(t *testing.T) {
	st := newTestStore(t)

	source := uuid.New().String()
	a := uuid.New().String()
	b := uuid.New().String()

	ctx := context.TODO()
	assert.NoError(t, st.CreateBidirectionalLink(ctx, newLink(source, a, model.LinkTypeWarmup, 1), nil))
	assert.NoError(t, st.CreateBidirectionalLink(ctx, newLink(source, b, model.LinkTypeCooldown, 1), nil))

	all, err := st.ListLinksBySource(ctx, source)
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	warmups, err := st.ListLinksBySource(ctx, source, model.LinkTypeWarmup)
	assert.NoError(t, err)
	assert.Len(t, warmups, 1)
	assert.Equal(t, a, warmups[0].TargetExerciseID)

	count, err := st.CountLinks(ctx, source, model.LinkTypeCooldown)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGormStore_ListTemplateIDs(t *testing.T) {
	st := newTestStore(t)

	t1 := uuid.New().String()
	t2 := uuid.New().String()

	ctx := context.TODO()
	for i, templateID := range []string{t1, t1, t2} {
		err := st.AddTemplateExercise(ctx, &model.WorkoutTemplateExercise{
			ID:                uuid.New().String(),
			WorkoutTemplateID: templateID,
			ExerciseID:        uuid.New().String(),
			Zone:              model.ZoneMain,
			SequenceOrder:     i + 1,
		})
		assert.NoError(t, err)
	}

	ids, err := st.ListTemplateIDs(ctx)
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{t1, t2}, ids)
}
