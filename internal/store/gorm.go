package store

import (
	"context"

	"github.com/traininglab/exlink/internal/model"
	"gorm.io/gorm"
)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db: db,
	}
}

var _ Store = (*GormStore)(nil)

type GormStore struct {
	db *gorm.DB
}

func (g *GormStore) GetLink(ctx context.Context, id string) (*model.ExerciseLink, error) {
	var link model.ExerciseLink
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&link).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (g *GormStore) ListLinksBySource(ctx context.Context, exerciseID string, types ...model.LinkType) ([]*model.ExerciseLink, error) {
	links := make([]*model.ExerciseLink, 0)
	q := g.db.WithContext(ctx).Where("source_exercise_id = ? AND is_active = ?", exerciseID, true)
	if len(types) > 0 {
		q = q.Where("link_type IN (?)", types)
	}
	err := q.Order("link_type, display_order").Find(&links).Error
	return links, err
}

func (g *GormStore) CountLinks(ctx context.Context, exerciseID string, linkType model.LinkType) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&model.ExerciseLink{}).
		Where("source_exercise_id = ? AND link_type = ? AND is_active = ?", exerciseID, linkType, true).
		Count(&count).Error
	return count, err
}

func (g *GormStore) LinkExists(ctx context.Context, sourceID, targetID string, linkType model.LinkType) (bool, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&model.ExerciseLink{}).
		Where("source_exercise_id = ? AND target_exercise_id = ? AND link_type = ? AND is_active = ?",
			sourceID, targetID, linkType, true).
		Count(&count).Error
	return count > 0, err
}

// CreateBidirectionalLink writes the primary edge and its reverse in one
// transaction so a failed reverse rolls back the primary.
func (g *GormStore) CreateBidirectionalLink(ctx context.Context, primary, reverse *model.ExerciseLink) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(primary).Error; err != nil {
			return err
		}
		if reverse != nil {
			return tx.Create(reverse).Error
		}
		return nil
	})
}

func (g *GormStore) DeleteLink(ctx context.Context, id string) error {
	return g.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ExerciseLink{}).Error
}

func (g *GormStore) ListTemplateExercises(ctx context.Context, templateID string) ([]*model.WorkoutTemplateExercise, error) {
	entries := make([]*model.WorkoutTemplateExercise, 0)
	err := g.db.WithContext(ctx).
		Where("workout_template_id = ?", templateID).
		Order("zone, sequence_order").
		Find(&entries).Error
	return entries, err
}

func (g *GormStore) ListTemplateIDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0)
	err := g.db.WithContext(ctx).Model(&model.WorkoutTemplateExercise{}).
		Distinct().
		Pluck("workout_template_id", &ids).Error
	return ids, err
}

func (g *GormStore) AddTemplateExercise(ctx context.Context, entry *model.WorkoutTemplateExercise) error {
	return g.db.WithContext(ctx).Create(entry).Error
}

func (g *GormStore) DeleteTemplateExercise(ctx context.Context, id string) error {
	return g.db.WithContext(ctx).Where("id = ?", id).Delete(&model.WorkoutTemplateExercise{}).Error
}

func (g *GormStore) Migrate() error {
	return model.Migrate(g.db)
}

func (g *GormStore) Transaction(ctx context.Context, f func(tx Store) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return f(&GormStore{db: tx})
	})
}
