package model

import "strings"

// LinkType is the closed set of relationship types between two exercises.
// Raw strings are normalized through ParseLinkType at the edge; validators
// and stores only ever see one of the four enumerants.
type LinkType string

const (
	LinkTypeWarmup      LinkType = "WARMUP"
	LinkTypeCooldown    LinkType = "COOLDOWN"
	LinkTypeAlternative LinkType = "ALTERNATIVE"
	LinkTypeWorkout     LinkType = "WORKOUT"
)

// LinkTypes lists every defined link type.
var LinkTypes = []LinkType{LinkTypeWarmup, LinkTypeCooldown, LinkTypeAlternative, LinkTypeWorkout}

// ParseLinkType normalizes a free-form token into a LinkType.
// Matching is case-insensitive; empty or unknown tokens report false.
func ParseLinkType(token string) (LinkType, bool) {
	switch LinkType(strings.ToUpper(strings.TrimSpace(token))) {
	case LinkTypeWarmup:
		return LinkTypeWarmup, true
	case LinkTypeCooldown:
		return LinkTypeCooldown, true
	case LinkTypeAlternative:
		return LinkTypeAlternative, true
	case LinkTypeWorkout:
		return LinkTypeWorkout, true
	}
	return "", false
}

// Valid reports whether t is one of the four defined enumerants.
func (t LinkType) Valid() bool {
	switch t {
	case LinkTypeWarmup, LinkTypeCooldown, LinkTypeAlternative, LinkTypeWorkout:
		return true
	}
	return false
}

// Reverse returns the companion type persisted on the target exercise when a
// link of type t is created:
//
//	WARMUP      -> WORKOUT
//	COOLDOWN    -> WORKOUT
//	ALTERNATIVE -> ALTERNATIVE
//	WORKOUT     -> none
//
// WORKOUT links are only ever created as the reverse of WARMUP/COOLDOWN, so
// they have no derivable reverse of their own.
func (t LinkType) Reverse() (LinkType, bool) {
	switch t {
	case LinkTypeWarmup, LinkTypeCooldown:
		return LinkTypeWorkout, true
	case LinkTypeAlternative:
		return LinkTypeAlternative, true
	}
	return "", false
}

// ReverseCandidates returns the types a reverse link may carry on the other
// exercise. A WORKOUT edge may have been produced by either a WARMUP or a
// COOLDOWN creation, so both sides must be searched when deleting it.
func (t LinkType) ReverseCandidates() []LinkType {
	switch t {
	case LinkTypeWorkout:
		return []LinkType{LinkTypeWarmup, LinkTypeCooldown}
	case LinkTypeWarmup, LinkTypeCooldown:
		return []LinkType{LinkTypeWorkout}
	case LinkTypeAlternative:
		return []LinkType{LinkTypeAlternative}
	}
	return nil
}

func (t LinkType) String() string {
	return string(t)
}
