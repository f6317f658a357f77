package model

// Exercise is the catalog record links point at. Catalog CRUD lives outside
// this service; the row exists so migrations and the CLI have a referent.
type Exercise struct {
	ID          string `gorm:"primaryKey;uuid;not null"`
	Name        string `gorm:"not null"`
	Description string
}

func (e *Exercise) TableName() string {
	return "exercises"
}
