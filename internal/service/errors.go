package service

import "errors"

var (
	// ErrLinkNotFound is returned when a link id cannot be resolved.
	ErrLinkNotFound = errors.New("exercise link not found")
	// ErrInvalidLinkType is returned when a link type token is not one of WARMUP, COOLDOWN, ALTERNATIVE, WORKOUT.
	ErrInvalidLinkType = errors.New("invalid link type")
	// ErrSelfReference is returned when a link would point an exercise at itself.
	ErrSelfReference = errors.New("an exercise cannot link to itself")
	// ErrDuplicateLink is returned when an active link for the same (source, target, type) already exists.
	ErrDuplicateLink = errors.New("link already exists")
	// ErrLinkLimitReached is returned when the source exercise already has the maximum links of the requested type.
	ErrLinkLimitReached = errors.New("maximum links of this type reached")
	// ErrCircularReference is returned when a link would make its source reachable from its target.
	ErrCircularReference = errors.New("link would create a circular reference")
)
