package models

import "time"

// MealType represents which meal of the day an entry belongs to.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// Meal is one logged meal with calorie and macro estimates.
type Meal struct {
	Base
	Name     string    `gorm:"not null" json:"name"`
	Type     MealType  `gorm:"not null" json:"type"`
	Calories int       `gorm:"not null" json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
	Date     time.Time `gorm:"not null;index" json:"date"`
}
