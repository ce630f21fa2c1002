package models

// WorkoutTemplate is a reusable workout plan made of ordered exercises.
type WorkoutTemplate struct {
	Base
	Name        string            `gorm:"not null" json:"name"`
	Description string            `json:"description"`
	Exercises   []WorkoutExercise `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE" json:"exercises"`
}

// WorkoutExercise is one exercise slot within a template.
type WorkoutExercise struct {
	Base
	TemplateID string  `gorm:"type:uuid;not null;index" json:"template_id"`
	Name       string  `gorm:"not null" json:"name"`
	Sets       int     `gorm:"not null" json:"sets"`
	Reps       int     `gorm:"not null" json:"reps"`
	WeightKg   float64 `json:"weight_kg"`
	Position   int     `gorm:"not null" json:"position"`
}
