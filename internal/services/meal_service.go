package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "fitledger/internal/errors"
	"fitledger/internal/models"
	"fitledger/internal/pagination"
)

// DailySummary aggregates calories and macros for one day.
type DailySummary struct {
	Date     time.Time `json:"date"`
	Calories int       `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
	Meals    int64     `json:"meals"`
}

// mealService handles meal tracking business logic.
type mealService struct {
	db *gorm.DB
}

// NewMealService creates a new MealServicer.
func NewMealService(db *gorm.DB) MealServicer {
	return &mealService{db: db}
}

// CreateMeal logs a meal.
func (s *mealService) CreateMeal(name string, mealType models.MealType, calories int, protein, carbs, fat float64, date time.Time) (*models.Meal, error) {
	meal := &models.Meal{
		Name:     name,
		Type:     mealType,
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
		Date:     date,
	}

	if err := s.db.Create(meal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return meal, nil
}

// GetMeals returns a paginated list of meals, newest first, with optional
// date and type filters.
func (s *mealService) GetMeals(page pagination.PageRequest, filter MealFilter) (*pagination.PageResponse[models.Meal], error) {
	page.Defaults()

	base := s.db.Model(&models.Meal{})
	if filter.FromDate != nil {
		base = base.Where("date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		base = base.Where("date <= ?", *filter.ToDate)
	}
	if filter.Type != nil {
		base = base.Where("type = ?", *filter.Type)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var meals []models.Meal
	if err := base.Scopes(pagination.NewestFirst, pagination.Paginate(page)).Find(&meals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(meals, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetMealByID returns a meal by ID.
func (s *mealService) GetMealByID(id string) (*models.Meal, error) {
	var meal models.Meal
	if err := s.db.Where("id = ?", id).First(&meal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMealNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &meal, nil
}

// UpdateMeal updates an existing meal's fields.
func (s *mealService) UpdateMeal(id, name string, mealType *models.MealType, calories *int, protein, carbs, fat *float64) (*models.Meal, error) {
	meal, err := s.GetMealByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != "" {
		updates["name"] = name
	}
	if mealType != nil {
		updates["type"] = *mealType
	}
	if calories != nil {
		updates["calories"] = *calories
	}
	if protein != nil {
		updates["protein"] = *protein
	}
	if carbs != nil {
		updates["carbs"] = *carbs
	}
	if fat != nil {
		updates["fat"] = *fat
	}

	if len(updates) > 0 {
		if err := s.db.Model(meal).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return meal, nil
}

// DeleteMeal soft-deletes a meal.
func (s *mealService) DeleteMeal(id string) error {
	meal, err := s.GetMealByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(meal).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetDailySummary totals calories and macros for the calendar day containing
// the given time.
func (s *mealService) GetDailySummary(date time.Time) (*DailySummary, error) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.AddDate(0, 0, 1)

	var row struct {
		Calories int
		Protein  float64
		Carbs    float64
		Fat      float64
		Meals    int64
	}
	err := s.db.Model(&models.Meal{}).
		Select("COALESCE(SUM(calories), 0) AS calories, COALESCE(SUM(protein), 0) AS protein, COALESCE(SUM(carbs), 0) AS carbs, COALESCE(SUM(fat), 0) AS fat, COUNT(*) AS meals").
		Where("date >= ? AND date < ?", start, end).
		Scan(&row).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &DailySummary{
		Date:     start,
		Calories: row.Calories,
		Protein:  row.Protein,
		Carbs:    row.Carbs,
		Fat:      row.Fat,
		Meals:    row.Meals,
	}, nil
}
