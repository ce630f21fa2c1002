package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base contains common columns for all tables.
type Base struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// BeforeCreate generates a time-ordered UUIDv7 primary key for new records.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID != "" {
		return nil
	}
	id, err := uuid.NewV7()
	if err != nil {
		// crypto/rand failure; v4 still gives a usable key.
		b.ID = uuid.NewString()
		return nil
	}
	b.ID = id.String()
	return nil
}

// All lists every model for schema migration.
func All() []interface{} {
	return []interface{}{
		&Expense{},
		&Budget{},
		&SavingsGoal{},
		&Meal{},
		&WorkoutTemplate{},
		&WorkoutExercise{},
		&MailSettings{},
		&Suggestion{},
	}
}
