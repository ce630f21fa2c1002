package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fitledger/internal/errors"
	"fitledger/internal/models"
	"fitledger/internal/pagination"
	"fitledger/internal/services"
)

// MealHandler handles meal tracking requests.
type MealHandler struct {
	mealService services.MealServicer
}

// NewMealHandler creates a new MealHandler.
func NewMealHandler(mealService services.MealServicer) *MealHandler {
	return &MealHandler{mealService: mealService}
}

// CreateMealRequest represents the request payload for logging a meal.
type CreateMealRequest struct {
	Name     string          `json:"name" binding:"required,min=1,max=255"`
	Type     models.MealType `json:"type" binding:"required,meal_type"`
	Calories int             `json:"calories" binding:"required,gt=0"`
	Protein  float64         `json:"protein" binding:"omitempty,gte=0"`
	Carbs    float64         `json:"carbs" binding:"omitempty,gte=0"`
	Fat      float64         `json:"fat" binding:"omitempty,gte=0"`
	Date     time.Time       `json:"date" binding:"required"`
}

// UpdateMealRequest represents the request payload for updating a meal.
type UpdateMealRequest struct {
	Name     string           `json:"name" binding:"omitempty,min=1,max=255"`
	Type     *models.MealType `json:"type" binding:"omitempty,meal_type"`
	Calories *int             `json:"calories" binding:"omitempty,gt=0"`
	Protein  *float64         `json:"protein" binding:"omitempty,gte=0"`
	Carbs    *float64         `json:"carbs" binding:"omitempty,gte=0"`
	Fat      *float64         `json:"fat" binding:"omitempty,gte=0"`
}

// CreateMeal logs a meal.
func (h *MealHandler) CreateMeal(c *gin.Context) {
	var req CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	meal, err := h.mealService.CreateMeal(req.Name, req.Type, req.Calories, req.Protein, req.Carbs, req.Fat, req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"meal": meal})
}

// GetMeals lists meals with pagination and optional filters.
func (h *MealHandler) GetMeals(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var filter services.MealFilter
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid from date"))
			return
		}
		filter.FromDate = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid to date"))
			return
		}
		filter.ToDate = &t
	}
	if v := c.Query("type"); v != "" {
		mealType := models.MealType(v)
		filter.Type = &mealType
	}

	meals, err := h.mealService.GetMeals(page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, meals)
}

// GetMeal returns a single meal by ID.
func (h *MealHandler) GetMeal(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	meal, err := h.mealService.GetMealByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

// UpdateMeal updates a meal's mutable fields.
func (h *MealHandler) UpdateMeal(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	meal, err := h.mealService.UpdateMeal(id, req.Name, req.Type, req.Calories, req.Protein, req.Carbs, req.Fat)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

// DeleteMeal deletes a meal.
func (h *MealHandler) DeleteMeal(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.mealService.DeleteMeal(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Meal deleted"})
}

// GetDailySummary totals calories and macros for one day.
// Defaults to today when no date is provided.
func (h *MealHandler) GetDailySummary(c *gin.Context) {
	date := time.Now()
	if v := c.Query("date"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid date, expected YYYY-MM-DD"))
			return
		}
		date = parsed
	}

	summary, err := h.mealService.GetDailySummary(date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
