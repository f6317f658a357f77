package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/traininglab/exlink/internal/model"
	"github.com/traininglab/exlink/internal/store"
)

// NewAutoLinkService creates a new AutoLinkService.
func NewAutoLinkService(links store.LinkQueryStore, templates store.TemplateStore) *AutoLinkService {
	return &AutoLinkService{
		links:     links,
		templates: templates,
	}
}

// AutoLinkService maintains the warm-up and cooldown entries a workout
// template carries because of its Main-zone exercises. Auto-linking is an
// enhancement on top of the primary template mutation: every link lookup
// failure here is absorbed as "no links" so it can never block an add or
// remove.
type AutoLinkService struct {
	links     store.LinkQueryStore
	templates store.TemplateStore
}

// AddAutoLinkedExercises attaches the warm-up and cooldown exercises implied
// by a Main-zone exercise just added to the template. Each linked target not
// already present in its zone is appended at the next free sequence order
// with empty notes. Idempotent: re-adding the same exercise creates no
// duplicate entries. Returns the entries it created.
func (s *AutoLinkService) AddAutoLinkedExercises(ctx context.Context, templateID, exerciseID string) ([]*model.WorkoutTemplateExercise, error) {
	links := s.warmupCooldownLinks(ctx, exerciseID)
	if len(links) == 0 {
		return nil, nil
	}

	entries, err := s.templates.ListTemplateExercises(ctx, templateID)
	if err != nil {
		logrus.Warnf("template %s lookup failed, skipping auto-linking: %v", templateID, err)
		return nil, nil
	}

	present := make(map[model.Zone]map[string]bool)
	nextSeq := make(map[model.Zone]int)
	for _, entry := range entries {
		if present[entry.Zone] == nil {
			present[entry.Zone] = make(map[string]bool)
		}
		present[entry.Zone][entry.ExerciseID] = true
		if entry.SequenceOrder >= nextSeq[entry.Zone] {
			nextSeq[entry.Zone] = entry.SequenceOrder + 1
		}
	}
	for _, zone := range []model.Zone{model.ZoneWarmup, model.ZoneCooldown} {
		if nextSeq[zone] == 0 {
			nextSeq[zone] = 1
		}
	}

	var created []*model.WorkoutTemplateExercise
	for _, link := range links {
		zone, ok := link.LinkType.TargetZone()
		if !ok {
			continue
		}
		if present[zone][link.TargetExerciseID] {
			continue
		}

		entry := &model.WorkoutTemplateExercise{
			ID:                uuid.New().String(),
			WorkoutTemplateID: templateID,
			ExerciseID:        link.TargetExerciseID,
			Zone:              zone,
			SequenceOrder:     nextSeq[zone],
			AutoLinked:        true,
		}
		if err := s.templates.AddTemplateExercise(ctx, entry); err != nil {
			logrus.Warnf("auto-linked entry create failed for %s in template %s: %v", link.TargetExerciseID, templateID, err)
			continue
		}

		if present[zone] == nil {
			present[zone] = make(map[string]bool)
		}
		present[zone][link.TargetExerciseID] = true
		nextSeq[zone]++
		created = append(created, entry)
	}

	return created, nil
}

// FindOrphanedExercises returns the template entries that will be orphaned
// when the given Main-zone exercise is removed: targets of its WARMUP and
// COOLDOWN links that no other Main-zone exercise in the template still
// links to. Entries some other Main-zone exercise still implies are
// preserved. The caller owns deleting the returned entries.
func (s *AutoLinkService) FindOrphanedExercises(ctx context.Context, templateID, exerciseID string) ([]*model.WorkoutTemplateExercise, error) {
	links := s.warmupCooldownLinks(ctx, exerciseID)
	if len(links) == 0 {
		return nil, nil
	}

	entries, err := s.templates.ListTemplateExercises(ctx, templateID)
	if err != nil {
		logrus.Warnf("template %s lookup failed, skipping orphan detection: %v", templateID, err)
		return nil, nil
	}

	var mainExercises []string
	byZone := make(map[model.Zone]map[string]*model.WorkoutTemplateExercise)
	for _, entry := range entries {
		if entry.Zone == model.ZoneMain && entry.ExerciseID != exerciseID {
			mainExercises = append(mainExercises, entry.ExerciseID)
		}
		if byZone[entry.Zone] == nil {
			byZone[entry.Zone] = make(map[string]*model.WorkoutTemplateExercise)
		}
		byZone[entry.Zone][entry.ExerciseID] = entry
	}

	var orphaned []*model.WorkoutTemplateExercise
	for _, link := range links {
		zone, ok := link.LinkType.TargetZone()
		if !ok {
			continue
		}
		entry := byZone[zone][link.TargetExerciseID]
		if entry == nil {
			continue
		}
		if s.stillReferenced(ctx, mainExercises, link.TargetExerciseID, link.LinkType) {
			continue
		}
		orphaned = append(orphaned, entry)
	}

	return orphaned, nil
}

// stillReferenced reports whether any of the remaining Main-zone exercises
// links to target with the given type. A failed probe counts as no links,
// matching the auto-linking failure policy.
func (s *AutoLinkService) stillReferenced(ctx context.Context, mainExercises []string, targetID string, linkType model.LinkType) bool {
	for _, exerciseID := range mainExercises {
		exists, err := s.links.LinkExists(ctx, exerciseID, targetID, linkType)
		if err != nil {
			logrus.Warnf("reference probe failed for (%s, %s, %s): %v", exerciseID, targetID, linkType, err)
			continue
		}
		if exists {
			return true
		}
	}
	return false
}

// warmupCooldownLinks fetches the WARMUP and COOLDOWN links of an exercise,
// absorbing lookup failures to an empty list.
func (s *AutoLinkService) warmupCooldownLinks(ctx context.Context, exerciseID string) []*model.ExerciseLink {
	links, err := s.links.ListLinksBySource(ctx, exerciseID, model.LinkTypeWarmup, model.LinkTypeCooldown)
	if err != nil {
		logrus.Warnf("link lookup failed for %s, treating as no links: %v", exerciseID, err)
		return nil
	}
	return links
}
