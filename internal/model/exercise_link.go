package model

// ExerciseLink represents a directed, typed relationship between two
// exercises. Every accepted edge (S, T, type) has a companion edge
// (T, S, reverse(type)) stored as its own row; the pair is written through a
// single bidirectional create command.
//
// The composite unique index makes the database the final arbiter of the
// (source, target, type) uniqueness invariant under concurrent writers.
type ExerciseLink struct {
	ID               string   `gorm:"primaryKey;uuid;not null"`
	SourceExerciseID string   `gorm:"uuid;not null;index:idx_exercise_links_source;uniqueIndex:idx_exercise_links_triple"`
	TargetExerciseID string   `gorm:"uuid;not null;index:idx_exercise_links_target;uniqueIndex:idx_exercise_links_triple"`
	LinkType         LinkType `gorm:"not null;index:idx_exercise_links_source;uniqueIndex:idx_exercise_links_triple"`
	DisplayOrder     int      `gorm:"not null"`
	IsActive         bool     `gorm:"not null;default:true"`
}

func (l *ExerciseLink) TableName() string {
	return "exercise_links"
}

// PointsBackTo reports whether l is a reverse edge for a link from
// sourceID, i.e. it targets sourceID from the other exercise.
func (l *ExerciseLink) PointsBackTo(sourceID string) bool {
	return l.TargetExerciseID == sourceID
}
