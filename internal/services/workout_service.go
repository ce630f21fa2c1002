package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fitledger/internal/errors"
	"fitledger/internal/models"
	"fitledger/internal/pagination"
)

// workoutService handles workout template business logic.
type workoutService struct {
	db *gorm.DB
}

// NewWorkoutService creates a new WorkoutServicer.
func NewWorkoutService(db *gorm.DB) WorkoutServicer {
	return &workoutService{db: db}
}

// CreateTemplate creates a workout template with its exercises.
func (s *workoutService) CreateTemplate(name, description string, exercises []ExerciseInput) (*models.WorkoutTemplate, error) {
	template := &models.WorkoutTemplate{
		Name:        name,
		Description: description,
		Exercises:   buildExercises(exercises),
	}

	if err := s.db.Create(template).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return template, nil
}

// GetTemplates returns a paginated list of workout templates with their
// exercises preloaded.
func (s *workoutService) GetTemplates(page pagination.PageRequest) (*pagination.PageResponse[models.WorkoutTemplate], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.WorkoutTemplate{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var templates []models.WorkoutTemplate
	err := s.db.Preload("Exercises", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Scopes(pagination.Paginate(page)).Find(&templates).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(templates, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetTemplateByID returns a workout template with its exercises.
func (s *workoutService) GetTemplateByID(id string) (*models.WorkoutTemplate, error) {
	var template models.WorkoutTemplate
	err := s.db.Preload("Exercises", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Where("id = ?", id).First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWorkoutNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &template, nil
}

// UpdateTemplate updates a template's fields. A non-nil exercises slice
// replaces the exercise list wholesale.
func (s *workoutService) UpdateTemplate(id, name, description string, exercises []ExerciseInput) (*models.WorkoutTemplate, error) {
	template, err := s.GetTemplateByID(id)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		updates := make(map[string]interface{})
		if name != "" {
			updates["name"] = name
		}
		if description != "" {
			updates["description"] = description
		}
		if len(updates) > 0 {
			if err := tx.Model(template).Updates(updates).Error; err != nil {
				return err
			}
		}

		if exercises != nil {
			if err := tx.Unscoped().Where("template_id = ?", template.ID).Delete(&models.WorkoutExercise{}).Error; err != nil {
				return err
			}
			replacement := buildExercises(exercises)
			for i := range replacement {
				replacement[i].TemplateID = template.ID
			}
			if len(replacement) > 0 {
				if err := tx.Create(&replacement).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetTemplateByID(id)
}

// DeleteTemplate soft-deletes a template. Exercises cascade via the
// foreign key.
func (s *workoutService) DeleteTemplate(id string) error {
	template, err := s.GetTemplateByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Select("Exercises").Delete(template).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func buildExercises(inputs []ExerciseInput) []models.WorkoutExercise {
	exercises := make([]models.WorkoutExercise, 0, len(inputs))
	for i, in := range inputs {
		exercises = append(exercises, models.WorkoutExercise{
			Name:     in.Name,
			Sets:     in.Sets,
			Reps:     in.Reps,
			WeightKg: in.WeightKg,
			Position: i,
		})
	}
	return exercises
}
