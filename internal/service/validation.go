package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/traininglab/exlink/internal/model"
	"github.com/traininglab/exlink/internal/store"
)

// MaxLinksPerType caps the active links one exercise may hold per link type.
const MaxLinksPerType = 10

// NewLinkValidator creates a new LinkValidator.
func NewLinkValidator(store store.LinkQueryStore, circular *CircularReferenceValidator) *LinkValidator {
	return &LinkValidator{
		store:    store,
		circular: circular,
	}
}

// LinkValidator holds the stateless pre-mutation checks for link creation.
// Every check is independently callable and side-effect free; ValidateCreate
// composes them into the all-or-nothing guard callers run before a
// bidirectional create.
type LinkValidator struct {
	store    store.LinkQueryStore
	circular *CircularReferenceValidator
}

// IsValidLinkType reports whether token names one of the four link types.
// Matching is case-insensitive; empty or unknown tokens are rejected.
func (v *LinkValidator) IsValidLinkType(token string) bool {
	_, ok := model.ParseLinkType(token)
	return ok
}

// IsLinkUnique reports whether no active link exists for the exact
// (source, target, type) triple.
func (v *LinkValidator) IsLinkUnique(ctx context.Context, sourceID, targetID string, linkType model.LinkType) bool {
	exists, err := v.store.LinkExists(ctx, sourceID, targetID, linkType)
	if err != nil {
		logrus.Warnf("uniqueness probe failed for (%s, %s, %s): %v", sourceID, targetID, linkType, err)
		return false
	}
	return !exists
}

// IsUnderMaximumLinks reports whether the source exercise has strictly fewer
// than MaxLinksPerType active links of the given type. A count equal to the
// cap is already at the limit.
func (v *LinkValidator) IsUnderMaximumLinks(ctx context.Context, sourceID string, linkType model.LinkType) bool {
	count, err := v.store.CountLinks(ctx, sourceID, linkType)
	if err != nil {
		logrus.Warnf("link count probe failed for (%s, %s): %v", sourceID, linkType, err)
		return false
	}
	return count < MaxLinksPerType
}

// DoesLinkExist reports whether the store holds a link with the given id.
func (v *LinkValidator) DoesLinkExist(ctx context.Context, linkID string) bool {
	link, err := v.store.GetLink(ctx, linkID)
	if err != nil {
		return false
	}
	return link != nil
}

// DoesLinkBelongToExercise reports whether the link exists and its source is
// the given exercise. A missing link, a foreign link, and a failed lookup all
// report false; a failure is never conflated with ownership.
func (v *LinkValidator) DoesLinkBelongToExercise(ctx context.Context, exerciseID, linkID string) bool {
	link, err := v.store.GetLink(ctx, linkID)
	if err != nil || link == nil {
		return false
	}
	return link.SourceExerciseID == exerciseID
}

// ValidateCreate runs every pre-create invariant for a proposed link and
// returns the first violation. WORKOUT links are rejected here: they exist
// only as the derived reverse of a WARMUP or COOLDOWN creation.
func (v *LinkValidator) ValidateCreate(ctx context.Context, sourceID, targetID string, linkType model.LinkType) error {
	if !linkType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidLinkType, linkType)
	}
	if linkType == model.LinkTypeWorkout {
		return fmt.Errorf("%w: WORKOUT links are created only as the reverse of WARMUP or COOLDOWN", ErrInvalidLinkType)
	}
	if sourceID == targetID {
		return fmt.Errorf("%w: %s", ErrSelfReference, sourceID)
	}
	if !v.IsLinkUnique(ctx, sourceID, targetID, linkType) {
		return fmt.Errorf("%w: (%s, %s, %s)", ErrDuplicateLink, sourceID, targetID, linkType)
	}
	if !v.IsUnderMaximumLinks(ctx, sourceID, linkType) {
		return fmt.Errorf("%w: at capacity for %s", ErrLinkLimitReached, linkType)
	}
	if !v.circular.IsNoCircularReference(ctx, sourceID, targetID) {
		return fmt.Errorf("%w: %s is reachable from %s", ErrCircularReference, sourceID, targetID)
	}
	return nil
}
