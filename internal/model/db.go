package model

import "gorm.io/gorm"

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Exercise{}); err != nil {
		return err
	}

	if err := db.AutoMigrate(&ExerciseLink{}); err != nil {
		return err
	}

	return db.AutoMigrate(&WorkoutTemplateExercise{})
}
