package services

import (
	"testing"
	"time"

	"fitledger/internal/mailparse"
	"fitledger/internal/models"
	"fitledger/internal/pagination"
	"fitledger/internal/testutil"
)

func TestCreateExpense(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		expense, err := svc.CreateExpense(45000, "VND", "Circle K", "snacks", "Shopping", time.Now())
		testutil.AssertNoError(t, err)

		if expense.ID == "" {
			t.Fatal("expected non-empty expense ID")
		}
		if expense.Amount != 45000 {
			t.Errorf("expected amount 45000, got %d", expense.Amount)
		}
		if expense.Source != models.ExpenseSourceManual {
			t.Errorf("expected manual source, got %s", expense.Source)
		}
		if expense.DedupeKey != nil {
			t.Error("manual expense should not carry a dedupe key")
		}
	})
}

func TestGetExpenses(t *testing.T) {
	t.Run("newest_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		old := testutil.CreateTestExpense(t, db, "Food", 50000, time.Now().AddDate(0, 0, -3))
		recent := testutil.CreateTestExpense(t, db, "Food", 80000, time.Now())

		page, err := svc.GetExpenses(pagination.PageRequest{}, ExpenseFilter{})
		testutil.AssertNoError(t, err)

		if page.TotalItems != 2 {
			t.Fatalf("expected 2 expenses, got %d", page.TotalItems)
		}
		if page.Data[0].ID != recent.ID {
			t.Errorf("expected most recent expense first, got %s", page.Data[0].ID)
		}
		if page.Data[1].ID != old.ID {
			t.Errorf("expected oldest expense last, got %s", page.Data[1].ID)
		}
	})

	t.Run("category_filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		testutil.CreateTestExpense(t, db, "Food", 50000, time.Now())
		testutil.CreateTestExpense(t, db, "Transport", 30000, time.Now())

		category := "Food"
		page, err := svc.GetExpenses(pagination.PageRequest{}, ExpenseFilter{Category: &category})
		testutil.AssertNoError(t, err)

		if page.TotalItems != 1 {
			t.Fatalf("expected 1 expense, got %d", page.TotalItems)
		}
		if page.Data[0].Category != "Food" {
			t.Errorf("expected Food expense, got %s", page.Data[0].Category)
		}
	})

	t.Run("date_range_filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		testutil.CreateTestExpense(t, db, "Food", 50000, time.Now().AddDate(0, -2, 0))
		inRange := testutil.CreateTestExpense(t, db, "Food", 60000, time.Now())

		from := time.Now().AddDate(0, -1, 0)
		page, err := svc.GetExpenses(pagination.PageRequest{}, ExpenseFilter{FromDate: &from})
		testutil.AssertNoError(t, err)

		if page.TotalItems != 1 {
			t.Fatalf("expected 1 expense, got %d", page.TotalItems)
		}
		if page.Data[0].ID != inRange.ID {
			t.Errorf("expected in-range expense, got %s", page.Data[0].ID)
		}
	})
}

func TestGetExpenseByID(t *testing.T) {
	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		_, err := svc.GetExpenseByID("00000000-0000-0000-0000-000000000000")
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})
}

func TestUpdateExpense(t *testing.T) {
	t.Run("partial_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		expense := testutil.CreateTestExpense(t, db, "Other", 20000, time.Now())

		amount := int64(25000)
		updated, err := svc.UpdateExpense(expense.ID, "", "", "Food", &amount, nil)
		testutil.AssertNoError(t, err)

		fetched, err := svc.GetExpenseByID(updated.ID)
		testutil.AssertNoError(t, err)
		if fetched.Category != "Food" {
			t.Errorf("expected category Food, got %s", fetched.Category)
		}
		if fetched.Amount != 25000 {
			t.Errorf("expected amount 25000, got %d", fetched.Amount)
		}
		if fetched.Merchant != expense.Merchant {
			t.Errorf("merchant should be unchanged, got %s", fetched.Merchant)
		}
	})
}

func TestDeleteExpense(t *testing.T) {
	t.Run("deleted_is_gone", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		expense := testutil.CreateTestExpense(t, db, "Food", 50000, time.Now())
		testutil.AssertNoError(t, svc.DeleteExpense(expense.ID))

		_, err := svc.GetExpenseByID(expense.ID)
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})
}

func TestGetMonthlySummary(t *testing.T) {
	t.Run("groups_by_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		inMonth := time.Date(2025, time.November, 10, 12, 0, 0, 0, time.Local)
		testutil.CreateTestExpense(t, db, "Food", 120000, inMonth)
		testutil.CreateTestExpense(t, db, "Food", 80000, inMonth.AddDate(0, 0, 5))
		testutil.CreateTestExpense(t, db, "Transport", 35000, inMonth)
		testutil.CreateTestExpense(t, db, "Food", 999999, inMonth.AddDate(0, 1, 0))

		summary, err := svc.GetMonthlySummary(2025, time.November)
		testutil.AssertNoError(t, err)

		if summary.Total != 235000 {
			t.Errorf("expected total 235000, got %d", summary.Total)
		}
		if summary.Count != 3 {
			t.Errorf("expected 3 expenses, got %d", summary.Count)
		}
		if summary.ByCategory["Food"] != 200000 {
			t.Errorf("expected Food total 200000, got %d", summary.ByCategory["Food"])
		}
		if summary.ByCategory["Transport"] != 35000 {
			t.Errorf("expected Transport total 35000, got %d", summary.ByCategory["Transport"])
		}
	})
}

func TestImportIfNew(t *testing.T) {
	tx := &mailparse.Transaction{
		Amount:   120000,
		Currency: "VND",
		Merchant: "Circle K Nguyen Hue",
		Date:     time.Date(2025, time.November, 8, 14, 30, 0, 0, time.Local),
		Type:     "Card Payment",
		Category: mailparse.CategoryShopping,
		Source:   mailparse.SourceVIB,
	}

	t.Run("creates_then_skips_duplicate", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		created, err := svc.ImportIfNew(tx, "2025-11-08|Circle K Nguyen Hue|120000")
		testutil.AssertNoError(t, err)
		if !created {
			t.Fatal("expected first import to create an expense")
		}

		created, err = svc.ImportIfNew(tx, "2025-11-08|Circle K Nguyen Hue|120000")
		testutil.AssertNoError(t, err)
		if created {
			t.Fatal("expected duplicate import to be skipped")
		}

		var count int64
		if err := db.Model(&models.Expense{}).Count(&count).Error; err != nil {
			t.Fatalf("count failed: %v", err)
		}
		if count != 1 {
			t.Errorf("expected exactly 1 expense, got %d", count)
		}
	})

	t.Run("sets_source_and_key", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)

		_, err := svc.ImportIfNew(tx, "key-1")
		testutil.AssertNoError(t, err)

		var expense models.Expense
		if err := db.First(&expense).Error; err != nil {
			t.Fatalf("fetch failed: %v", err)
		}
		if expense.Source != models.ExpenseSourceVIB {
			t.Errorf("expected vib_email source, got %s", expense.Source)
		}
		if expense.DedupeKey == nil || *expense.DedupeKey != "key-1" {
			t.Errorf("expected dedupe key key-1, got %v", expense.DedupeKey)
		}
		if expense.Category != "Shopping" {
			t.Errorf("expected Shopping category, got %s", expense.Category)
		}
	})
}
