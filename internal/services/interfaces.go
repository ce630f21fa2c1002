package services

import (
	"context"
	"time"

	"fitledger/internal/mailparse"
	"fitledger/internal/models"
	"fitledger/internal/pagination"
)

// ExpenseFilter holds optional filter parameters for listing expenses.
type ExpenseFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Category *string
	Source   *models.ExpenseSource
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(amount int64, currency, merchant, description, category string, date time.Time) (*models.Expense, error)
	GetExpenses(page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error)
	GetExpenseByID(id string) (*models.Expense, error)
	UpdateExpense(id, merchant, description, category string, amount *int64, date *time.Time) (*models.Expense, error)
	DeleteExpense(id string) error
	GetMonthlySummary(year int, month time.Month) (*ExpenseSummary, error)
	ImportIfNew(tx *mailparse.Transaction, dedupeKey string) (bool, error)
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(category, name string, amount int64, period models.BudgetPeriod, startDate time.Time, endDate *time.Time) (*models.Budget, error)
	GetBudgets(page pagination.PageRequest, isActive *bool) (*pagination.PageResponse[models.Budget], error)
	GetBudgetByID(id string) (*models.Budget, error)
	UpdateBudget(id, name string, amount *int64, period *models.BudgetPeriod, endDate *time.Time, isActive *bool) (*models.Budget, error)
	DeleteBudget(id string) error
	GetBudgetProgress(id string) (*BudgetProgress, error)
}

// GoalServicer defines the contract for savings goal business logic.
type GoalServicer interface {
	CreateGoal(name string, targetAmount int64, deadline *time.Time) (*models.SavingsGoal, error)
	GetGoals(page pagination.PageRequest, status *models.GoalStatus) (*pagination.PageResponse[models.SavingsGoal], error)
	GetGoalByID(id string) (*models.SavingsGoal, error)
	UpdateGoal(id, name string, targetAmount *int64, deadline *time.Time, status *models.GoalStatus) (*models.SavingsGoal, error)
	DeleteGoal(id string) error
	Contribute(id string, amount int64) (*models.SavingsGoal, error)
}

// MealFilter holds optional filter parameters for listing meals.
type MealFilter struct {
	FromDate *time.Time
	ToDate   *time.Time
	Type     *models.MealType
}

// MealServicer defines the contract for meal tracking business logic.
type MealServicer interface {
	CreateMeal(name string, mealType models.MealType, calories int, protein, carbs, fat float64, date time.Time) (*models.Meal, error)
	GetMeals(page pagination.PageRequest, filter MealFilter) (*pagination.PageResponse[models.Meal], error)
	GetMealByID(id string) (*models.Meal, error)
	UpdateMeal(id, name string, mealType *models.MealType, calories *int, protein, carbs, fat *float64) (*models.Meal, error)
	DeleteMeal(id string) error
	GetDailySummary(date time.Time) (*DailySummary, error)
}

// ExerciseInput describes one exercise slot when creating or replacing a
// workout template.
type ExerciseInput struct {
	Name     string
	Sets     int
	Reps     int
	WeightKg float64
}

// WorkoutServicer defines the contract for workout template business logic.
type WorkoutServicer interface {
	CreateTemplate(name, description string, exercises []ExerciseInput) (*models.WorkoutTemplate, error)
	GetTemplates(page pagination.PageRequest) (*pagination.PageResponse[models.WorkoutTemplate], error)
	GetTemplateByID(id string) (*models.WorkoutTemplate, error)
	UpdateTemplate(id, name, description string, exercises []ExerciseInput) (*models.WorkoutTemplate, error)
	DeleteTemplate(id string) error
}

// MailSettingsServicer defines the contract for mail sync configuration.
type MailSettingsServicer interface {
	Save(address, password, imapHost string, imapPort int) (*models.MailSettings, error)
	Get() (*models.MailSettings, error)
	GetWithPassword() (*models.MailSettings, string, error)
	MarkSynced(t time.Time) error
	Delete() error
}

// SyncResult summarizes one mail sync pass.
type SyncResult struct {
	Fetched  int `json:"fetched"`
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// MailSyncServicer runs the import of transaction emails into expenses.
type MailSyncServicer interface {
	Sync(ctx context.Context) (*SyncResult, error)
}

// SuggestionServicer serves AI-generated advice, cached with a TTL.
type SuggestionServicer interface {
	GetSuggestion(ctx context.Context, kind string) (*models.Suggestion, error)
}
