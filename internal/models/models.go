package models

import (
	"time"
)

// Setting is a persisted named value. Values are JSON documents owned by
// the package that wrote them.
type Setting struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;not null;size:191"`
	Value     string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SettingRevision records every value a setting has held, newest last.
type SettingRevision struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"index;not null;size:191"`
	Value     string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// All returns every model for migration.
func All() []interface{} {
	return []interface{}{&Setting{}, &SettingRevision{}}
}
