// Package errors provides custom error types for the FitLedger API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Expense errors.
var (
	ErrExpenseNotFound  = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
	ErrDuplicateExpense = &AppError{Code: "DUPLICATE_EXPENSE", Message: "This transaction was already imported", StatusCode: http.StatusConflict}
	ErrInvalidCategory  = &AppError{Code: "INVALID_CATEGORY", Message: "Unknown expense category", StatusCode: http.StatusBadRequest}
)

// Budget errors.
var (
	ErrBudgetNotFound = &AppError{Code: "BUDGET_NOT_FOUND", Message: "Budget not found", StatusCode: http.StatusNotFound}
)

// Savings goal errors.
var (
	ErrGoalNotFound  = &AppError{Code: "GOAL_NOT_FOUND", Message: "Savings goal not found", StatusCode: http.StatusNotFound}
	ErrGoalNotActive = &AppError{Code: "GOAL_NOT_ACTIVE", Message: "Savings goal is not active", StatusCode: http.StatusBadRequest}
)

// Meal errors.
var (
	ErrMealNotFound = &AppError{Code: "MEAL_NOT_FOUND", Message: "Meal not found", StatusCode: http.StatusNotFound}
)

// Workout errors.
var (
	ErrWorkoutNotFound = &AppError{Code: "WORKOUT_NOT_FOUND", Message: "Workout template not found", StatusCode: http.StatusNotFound}
)

// Mail sync errors.
var (
	ErrMailSettingsNotFound = &AppError{Code: "MAIL_SETTINGS_NOT_FOUND", Message: "Mail sync is not configured", StatusCode: http.StatusNotFound}
	ErrMailFetchFailed      = &AppError{Code: "MAIL_FETCH_FAILED", Message: "Could not fetch messages from the mailbox", StatusCode: http.StatusBadGateway}
	ErrDecryptionFailed     = &AppError{Code: "DECRYPTION_FAILED", Message: "Stored mail credentials could not be decrypted", StatusCode: http.StatusInternalServerError}
)

// Suggestion errors.
var (
	ErrSuggestionUnavailable = &AppError{Code: "SUGGESTION_UNAVAILABLE", Message: "Suggestions are currently unavailable", StatusCode: http.StatusServiceUnavailable}
)
