package jobs

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/sirupsen/logrus"
	"github.com/traininglab/exlink/internal/model"
	"github.com/traininglab/exlink/internal/store"
)

// OrphanSweepTask walks every workout template and deletes auto-linked
// warm-up/cooldown entries that no Main-zone exercise still implies. It is
// the periodic safety net behind the per-mutation orphan detection: entries
// can be stranded when a caller removes a Main-zone exercise without running
// the orphan check, or when link deletions race template edits.
type OrphanSweepTask struct {
	store    store.Store
	schedule string
}

func NewOrphanSweepTask(store store.Store, schedule string) *OrphanSweepTask {
	return &OrphanSweepTask{
		store:    store,
		schedule: schedule,
	}
}

func (t *OrphanSweepTask) Name() string {
	return "orphan_sweep"
}

func (t *OrphanSweepTask) Schedule() string {
	return t.schedule
}

func (t *OrphanSweepTask) Run() {
	ctx := context.Background()

	templateIDs, err := t.store.ListTemplateIDs(ctx)
	if err != nil {
		logrus.Errorf("orphan sweep: listing templates failed: %v", err)
		return
	}

	removed := 0
	for _, templateID := range templateIDs {
		removed += t.SweepTemplate(ctx, templateID)
	}

	if removed > 0 {
		logrus.Infof("orphan sweep removed %d entries across %d templates", removed, len(templateIDs))
	}
}

// SweepTemplate deletes the orphaned warm-up/cooldown entries of one
// template and returns how many it removed.
func (t *OrphanSweepTask) SweepTemplate(ctx context.Context, templateID string) int {
	entries, err := t.store.ListTemplateExercises(ctx, templateID)
	if err != nil {
		logrus.Warnf("orphan sweep: template %s lookup failed: %v", templateID, err)
		return 0
	}

	var mainExercises []string
	for _, entry := range entries {
		if entry.Zone == model.ZoneMain {
			mainExercises = append(mainExercises, entry.ExerciseID)
		}
	}

	// Every exercise some Main-zone exercise still links into each zone.
	implied := map[model.Zone]mapset.Set[string]{
		model.ZoneWarmup:   mapset.NewSet[string](),
		model.ZoneCooldown: mapset.NewSet[string](),
	}
	for _, exerciseID := range mainExercises {
		links, err := t.store.ListLinksBySource(ctx, exerciseID, model.LinkTypeWarmup, model.LinkTypeCooldown)
		if err != nil {
			logrus.Warnf("orphan sweep: link lookup failed for %s: %v", exerciseID, err)
			continue
		}
		for _, link := range links {
			if zone, ok := link.LinkType.TargetZone(); ok {
				implied[zone].Add(link.TargetExerciseID)
			}
		}
	}

	removed := 0
	for _, entry := range entries {
		if entry.Zone == model.ZoneMain || !entry.AutoLinked {
			continue
		}
		if implied[entry.Zone].Contains(entry.ExerciseID) {
			continue
		}
		if err := t.store.DeleteTemplateExercise(ctx, entry.ID); err != nil {
			logrus.Warnf("orphan sweep: delete failed for entry %s: %v", entry.ID, err)
			continue
		}
		removed++
	}

	return removed
}
