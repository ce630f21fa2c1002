package services

import (
	"testing"
	"time"

	"fitledger/internal/models"
	"fitledger/internal/pagination"
	"fitledger/internal/testutil"
)

func TestCreateBudget(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		budget, err := svc.CreateBudget("Food", "Monthly groceries", 3000000, models.BudgetPeriodMonthly, time.Now(), nil)
		testutil.AssertNoError(t, err)

		if budget.ID == "" {
			t.Fatal("expected non-empty budget ID")
		}
		if budget.Category != "Food" {
			t.Errorf("expected category Food, got %s", budget.Category)
		}
		if !budget.IsActive {
			t.Error("expected new budget to be active")
		}
	})
}

func TestGetBudgets(t *testing.T) {
	t.Run("active_filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		active := testutil.CreateTestBudget(t, db, "Food", 3000000)
		inactive := testutil.CreateTestBudget(t, db, "Transport", 1000000)
		if err := db.Model(inactive).Update("is_active", false).Error; err != nil {
			t.Fatalf("setup failed: %v", err)
		}

		isActive := true
		page, err := svc.GetBudgets(pagination.PageRequest{}, &isActive)
		testutil.AssertNoError(t, err)

		if page.TotalItems != 1 {
			t.Fatalf("expected 1 active budget, got %d", page.TotalItems)
		}
		if page.Data[0].ID != active.ID {
			t.Errorf("expected active budget, got %s", page.Data[0].ID)
		}
	})
}

func TestUpdateBudget(t *testing.T) {
	t.Run("deactivate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		budget := testutil.CreateTestBudget(t, db, "Food", 3000000)

		isActive := false
		_, err := svc.UpdateBudget(budget.ID, "", nil, nil, nil, &isActive)
		testutil.AssertNoError(t, err)

		fetched, err := svc.GetBudgetByID(budget.ID)
		testutil.AssertNoError(t, err)
		if fetched.IsActive {
			t.Error("expected budget to be inactive")
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		_, err := svc.UpdateBudget("00000000-0000-0000-0000-000000000000", "x", nil, nil, nil, nil)
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})
}

func TestDeleteBudget(t *testing.T) {
	t.Run("deleted_is_gone", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		budget := testutil.CreateTestBudget(t, db, "Food", 3000000)
		testutil.AssertNoError(t, svc.DeleteBudget(budget.ID))

		_, err := svc.GetBudgetByID(budget.ID)
		testutil.AssertAppError(t, err, "BUDGET_NOT_FOUND")
	})
}

func TestGetBudgetProgress(t *testing.T) {
	t.Run("monthly_window", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		budget := testutil.CreateTestBudget(t, db, "Food", 1000000)
		testutil.CreateTestExpense(t, db, "Food", 250000, time.Now())
		testutil.CreateTestExpense(t, db, "Food", 150000, time.Now())
		// Different category and different period; neither should count.
		testutil.CreateTestExpense(t, db, "Transport", 999000, time.Now())
		testutil.CreateTestExpense(t, db, "Food", 500000, time.Now().AddDate(0, -2, 0))

		progress, err := svc.GetBudgetProgress(budget.ID)
		testutil.AssertNoError(t, err)

		if progress.Spent != 400000 {
			t.Errorf("expected spent 400000, got %d", progress.Spent)
		}
		if progress.Remaining != 600000 {
			t.Errorf("expected remaining 600000, got %d", progress.Remaining)
		}
		if progress.Percentage != 40 {
			t.Errorf("expected 40%%, got %f", progress.Percentage)
		}
	})

	t.Run("no_spending", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewBudgetService(db)

		budget := testutil.CreateTestBudget(t, db, "Health", 500000)

		progress, err := svc.GetBudgetProgress(budget.ID)
		testutil.AssertNoError(t, err)
		if progress.Spent != 0 {
			t.Errorf("expected zero spent, got %d", progress.Spent)
		}
		if progress.Percentage != 0 {
			t.Errorf("expected 0%%, got %f", progress.Percentage)
		}
	})
}
