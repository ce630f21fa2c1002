package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "fitledger/internal/errors"
	"fitledger/internal/mailparse"
	"fitledger/internal/models"
	"fitledger/internal/pagination"
)

// ExpenseSummary aggregates one month of spending.
type ExpenseSummary struct {
	Year       int              `json:"year"`
	Month      time.Month       `json:"month"`
	Total      int64            `json:"total"`
	Count      int64            `json:"count"`
	ByCategory map[string]int64 `json:"by_category"`
}

// expenseService handles expense-related business logic.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// CreateExpense records a manually entered expense.
func (s *expenseService) CreateExpense(amount int64, currency, merchant, description, category string, date time.Time) (*models.Expense, error) {
	expense := &models.Expense{
		Amount:      amount,
		Currency:    currency,
		Merchant:    merchant,
		Description: description,
		Category:    category,
		Date:        date,
		Source:      models.ExpenseSourceManual,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// GetExpenses returns a paginated list of expenses, newest first, with
// optional date/category/source filters.
func (s *expenseService) GetExpenses(page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	base := s.db.Model(&models.Expense{})
	if filter.FromDate != nil {
		base = base.Where("date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		base = base.Where("date <= ?", *filter.ToDate)
	}
	if filter.Category != nil {
		base = base.Where("category = ?", *filter.Category)
	}
	if filter.Source != nil {
		base = base.Where("source = ?", *filter.Source)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Scopes(pagination.NewestFirst, pagination.Paginate(page)).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetExpenseByID returns a single expense.
func (s *expenseService) GetExpenseByID(id string) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Where("id = ?", id).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// UpdateExpense updates the mutable fields of an expense.
func (s *expenseService) UpdateExpense(id, merchant, description, category string, amount *int64, date *time.Time) (*models.Expense, error) {
	expense, err := s.GetExpenseByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if merchant != "" {
		updates["merchant"] = merchant
	}
	if description != "" {
		updates["description"] = description
	}
	if category != "" {
		updates["category"] = category
	}
	if amount != nil {
		updates["amount"] = *amount
	}
	if date != nil {
		updates["date"] = *date
	}

	if len(updates) > 0 {
		if err := s.db.Model(expense).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return expense, nil
}

// DeleteExpense soft-deletes an expense.
func (s *expenseService) DeleteExpense(id string) error {
	expense, err := s.GetExpenseByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetMonthlySummary totals spending per category for one calendar month.
func (s *expenseService) GetMonthlySummary(year int, month time.Month) (*ExpenseSummary, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	var rows []struct {
		Category string
		Total    int64
		Count    int64
	}
	err := s.db.Model(&models.Expense{}).
		Select("category, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("date >= ? AND date < ?", start, end).
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary := &ExpenseSummary{
		Year:       year,
		Month:      month,
		ByCategory: make(map[string]int64),
	}
	for _, row := range rows {
		summary.ByCategory[row.Category] = row.Total
		summary.Total += row.Total
		summary.Count += row.Count
	}
	return summary, nil
}

// ImportIfNew persists a parsed transaction unless an expense with the same
// dedupe key was already imported. It reports whether a row was created.
func (s *expenseService) ImportIfNew(tx *mailparse.Transaction, dedupeKey string) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Expense{}).Where("dedupe_key = ?", dedupeKey).Count(&count).Error; err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return false, nil
	}

	expense := &models.Expense{
		Amount:    tx.Amount,
		Currency:  tx.Currency,
		Merchant:  tx.Merchant,
		Category:  string(tx.Category),
		Date:      tx.Date,
		Source:    models.ExpenseSource(tx.Source),
		DedupeKey: &dedupeKey,
	}
	if err := s.db.Create(expense).Error; err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return true, nil
}
