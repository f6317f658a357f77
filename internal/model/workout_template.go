package model

// Zone partitions a workout template's exercises into warmup, main work and
// cooldown sections.
type Zone string

const (
	ZoneWarmup   Zone = "Warmup"
	ZoneMain     Zone = "Main"
	ZoneCooldown Zone = "Cooldown"
)

// TargetZone maps a link type to the template zone its targets are
// auto-attached into. Only WARMUP and COOLDOWN links drive auto-linking.
func (t LinkType) TargetZone() (Zone, bool) {
	switch t {
	case LinkTypeWarmup:
		return ZoneWarmup, true
	case LinkTypeCooldown:
		return ZoneCooldown, true
	}
	return "", false
}

// WorkoutTemplateExercise is one exercise slot inside a workout template,
// tagged with its zone and an order unique within (template, zone).
// Auto-linked entries are created with empty notes at the next free sequence
// order and removed again when no Main-zone exercise still implies them.
type WorkoutTemplateExercise struct {
	ID                string `gorm:"primaryKey;uuid;not null"`
	WorkoutTemplateID string `gorm:"uuid;not null;index:idx_template_exercises_template"`
	ExerciseID        string `gorm:"uuid;not null"`
	Zone              Zone   `gorm:"not null"`
	SequenceOrder     int    `gorm:"not null"`
	Notes             string
	// AutoLinked marks entries attached by the auto-linker rather than a
	// template author; only these are eligible for the periodic orphan sweep.
	AutoLinked bool `gorm:"not null;default:false"`
}

func (e *WorkoutTemplateExercise) TableName() string {
	return "workout_template_exercises"
}
