package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLinkType(t *testing.T) {
	tests := []struct {
		token string
		want  LinkType
		ok    bool
	}{
		{"WARMUP", LinkTypeWarmup, true},
		{"warmup", LinkTypeWarmup, true},
		{" Cooldown ", LinkTypeCooldown, true},
		{"ALTERNATIVE", LinkTypeAlternative, true},
		{"workout", LinkTypeWorkout, true},
		{"", "", false},
		{"stretch", "", false},
		{"WARM UP", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseLinkType(tt.token)
		assert.Equal(t, tt.ok, ok, "token %q", tt.token)
		assert.Equal(t, tt.want, got, "token %q", tt.token)
	}
}

func TestLinkTypeValid(t *testing.T) {
	for _, lt := range LinkTypes {
		assert.True(t, lt.Valid())
	}

	assert.False(t, LinkType("").Valid())
	assert.False(t, LinkType("STRETCH").Valid())
	assert.False(t, LinkType("warmup").Valid(), "the typed form is already normalized")
}

func TestLinkTypeReverse(t *testing.T) {
	tests := []struct {
		linkType LinkType
		want     LinkType
		ok       bool
	}{
		{LinkTypeWarmup, LinkTypeWorkout, true},
		{LinkTypeCooldown, LinkTypeWorkout, true},
		{LinkTypeAlternative, LinkTypeAlternative, true},
		{LinkTypeWorkout, "", false},
	}

	for _, tt := range tests {
		got, ok := tt.linkType.Reverse()
		assert.Equal(t, tt.ok, ok, "type %s", tt.linkType)
		assert.Equal(t, tt.want, got, "type %s", tt.linkType)
	}
}

func TestLinkTypeReverseCandidates(t *testing.T) {
	assert.Equal(t, []LinkType{LinkTypeWarmup, LinkTypeCooldown}, LinkTypeWorkout.ReverseCandidates())
	assert.Equal(t, []LinkType{LinkTypeWorkout}, LinkTypeWarmup.ReverseCandidates())
	assert.Equal(t, []LinkType{LinkTypeWorkout}, LinkTypeCooldown.ReverseCandidates())
	assert.Equal(t, []LinkType{LinkTypeAlternative}, LinkTypeAlternative.ReverseCandidates())
	assert.Nil(t, LinkType("STRETCH").ReverseCandidates())
}

func TestLinkTypeTargetZone(t *testing.T) {
	zone, ok := LinkTypeWarmup.TargetZone()
	assert.True(t, ok)
	assert.Equal(t, ZoneWarmup, zone)

	zone, ok = LinkTypeCooldown.TargetZone()
	assert.True(t, ok)
	assert.Equal(t, ZoneCooldown, zone)

	_, ok = LinkTypeAlternative.TargetZone()
	assert.False(t, ok)
	_, ok = LinkTypeWorkout.TargetZone()
	assert.False(t, ok)
}
