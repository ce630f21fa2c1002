package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fitledger/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestExpense creates a manual expense of the given amount and category.
func CreateTestExpense(t *testing.T, db *gorm.DB, category string, amount int64, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Amount:   amount,
		Currency: "VND",
		Merchant: fmt.Sprintf("Test Merchant %d", nextID()),
		Category: category,
		Date:     date,
		Source:   models.ExpenseSourceManual,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestBudget creates an active monthly budget for the given category.
func CreateTestBudget(t *testing.T, db *gorm.DB, category string, amount int64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		Category:  category,
		Name:      fmt.Sprintf("Test Budget %d", nextID()),
		Amount:    amount,
		Period:    models.BudgetPeriodMonthly,
		StartDate: time.Now().Truncate(24 * time.Hour),
		IsActive:  true,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestGoal creates an active savings goal with the given target.
func CreateTestGoal(t *testing.T, db *gorm.DB, targetAmount int64) *models.SavingsGoal {
	t.Helper()

	goal := &models.SavingsGoal{
		Name:         fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount: targetAmount,
		Status:       models.GoalStatusActive,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// CreateTestMeal creates a meal of the given type on the given date.
func CreateTestMeal(t *testing.T, db *gorm.DB, mealType models.MealType, calories int, date time.Time) *models.Meal {
	t.Helper()

	meal := &models.Meal{
		Name:     fmt.Sprintf("Test Meal %d", nextID()),
		Type:     mealType,
		Calories: calories,
		Protein:  20,
		Carbs:    50,
		Fat:      10,
		Date:     date,
	}
	if err := db.Create(meal).Error; err != nil {
		t.Fatalf("failed to create test meal: %v", err)
	}
	return meal
}

// CreateTestWorkoutTemplate creates a template with two exercises.
func CreateTestWorkoutTemplate(t *testing.T, db *gorm.DB) *models.WorkoutTemplate {
	t.Helper()

	template := &models.WorkoutTemplate{
		Name: fmt.Sprintf("Test Workout %d", nextID()),
		Exercises: []models.WorkoutExercise{
			{Name: "Squat", Sets: 3, Reps: 5, WeightKg: 60, Position: 0},
			{Name: "Bench Press", Sets: 3, Reps: 5, WeightKg: 40, Position: 1},
		},
	}
	if err := db.Create(template).Error; err != nil {
		t.Fatalf("failed to create test workout template: %v", err)
	}
	return template
}
