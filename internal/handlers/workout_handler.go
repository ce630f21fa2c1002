package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "fitledger/internal/errors"
	"fitledger/internal/pagination"
	"fitledger/internal/services"
)

// WorkoutHandler handles workout template requests.
type WorkoutHandler struct {
	workoutService services.WorkoutServicer
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService services.WorkoutServicer) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// ExerciseRequest is one exercise slot in a template payload.
type ExerciseRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=255"`
	Sets     int     `json:"sets" binding:"required,gt=0"`
	Reps     int     `json:"reps" binding:"required,gt=0"`
	WeightKg float64 `json:"weight_kg" binding:"omitempty,gte=0"`
}

// CreateWorkoutTemplateRequest represents the request payload for creating
// a workout template.
type CreateWorkoutTemplateRequest struct {
	Name        string            `json:"name" binding:"required,min=1,max=100"`
	Description string            `json:"description" binding:"omitempty,max=500"`
	Exercises   []ExerciseRequest `json:"exercises" binding:"omitempty,dive"`
}

// UpdateWorkoutTemplateRequest represents the request payload for updating a
// workout template. A non-null exercises array replaces the list wholesale.
type UpdateWorkoutTemplateRequest struct {
	Name        string            `json:"name" binding:"omitempty,min=1,max=100"`
	Description string            `json:"description" binding:"omitempty,max=500"`
	Exercises   []ExerciseRequest `json:"exercises" binding:"omitempty,dive"`
}

func toExerciseInputs(reqs []ExerciseRequest) []services.ExerciseInput {
	if reqs == nil {
		return nil
	}
	inputs := make([]services.ExerciseInput, 0, len(reqs))
	for _, r := range reqs {
		inputs = append(inputs, services.ExerciseInput{
			Name:     r.Name,
			Sets:     r.Sets,
			Reps:     r.Reps,
			WeightKg: r.WeightKg,
		})
	}
	return inputs
}

// CreateTemplate creates a workout template with its exercises.
func (h *WorkoutHandler) CreateTemplate(c *gin.Context) {
	var req CreateWorkoutTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	template, err := h.workoutService.CreateTemplate(req.Name, req.Description, toExerciseInputs(req.Exercises))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"template": template})
}

// GetTemplates lists workout templates with pagination.
func (h *WorkoutHandler) GetTemplates(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	templates, err := h.workoutService.GetTemplates(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, templates)
}

// GetTemplate returns a single workout template by ID.
func (h *WorkoutHandler) GetTemplate(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	template, err := h.workoutService.GetTemplateByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"template": template})
}

// UpdateTemplate updates a workout template.
func (h *WorkoutHandler) UpdateTemplate(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateWorkoutTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	template, err := h.workoutService.UpdateTemplate(id, req.Name, req.Description, toExerciseInputs(req.Exercises))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"template": template})
}

// DeleteTemplate deletes a workout template.
func (h *WorkoutHandler) DeleteTemplate(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.workoutService.DeleteTemplate(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Workout template deleted"})
}
