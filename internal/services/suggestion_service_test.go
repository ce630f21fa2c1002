package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fitledger/internal/models"
	"fitledger/internal/testutil"
)

// fakeCompleter counts calls and returns a canned completion.
type fakeCompleter struct {
	response string
	err      error
	calls    int
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestGetSuggestion(t *testing.T) {
	t.Run("generates_and_caches", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		completer := &fakeCompleter{response: "Cook at home twice a week."}
		svc := NewSuggestionService(db, completer)

		first, err := svc.GetSuggestion(context.Background(), "budget_tip")
		testutil.AssertNoError(t, err)
		if first.Content != "Cook at home twice a week." {
			t.Errorf("unexpected content: %s", first.Content)
		}

		second, err := svc.GetSuggestion(context.Background(), "budget_tip")
		testutil.AssertNoError(t, err)
		if second.ID != first.ID {
			t.Error("expected cached suggestion to be returned")
		}
		if completer.calls != 1 {
			t.Errorf("expected 1 completion call, got %d", completer.calls)
		}
	})

	t.Run("regenerates_after_expiry", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		completer := &fakeCompleter{response: "Track every expense."}
		svc := NewSuggestionService(db, completer)

		stale := &models.Suggestion{
			Kind:      "budget_tip",
			Content:   "old advice",
			ExpiresAt: time.Now().Add(-time.Hour),
		}
		if err := db.Create(stale).Error; err != nil {
			t.Fatalf("setup failed: %v", err)
		}

		fresh, err := svc.GetSuggestion(context.Background(), "budget_tip")
		testutil.AssertNoError(t, err)
		if fresh.ID == stale.ID {
			t.Error("expected a fresh suggestion, got the expired one")
		}
		if completer.calls != 1 {
			t.Errorf("expected 1 completion call, got %d", completer.calls)
		}
	})

	t.Run("kinds_cached_independently", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		completer := &fakeCompleter{response: "advice"}
		svc := NewSuggestionService(db, completer)

		_, err := svc.GetSuggestion(context.Background(), "budget_tip")
		testutil.AssertNoError(t, err)
		_, err = svc.GetSuggestion(context.Background(), "meal_idea")
		testutil.AssertNoError(t, err)

		if completer.calls != 2 {
			t.Errorf("expected 2 completion calls, got %d", completer.calls)
		}
	})

	t.Run("unknown_kind", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSuggestionService(db, &fakeCompleter{})

		_, err := svc.GetSuggestion(context.Background(), "stock_tip")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("nil_completer", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSuggestionService(db, nil)

		_, err := svc.GetSuggestion(context.Background(), "workout_tip")
		testutil.AssertAppError(t, err, "SUGGESTION_UNAVAILABLE")
	})

	t.Run("completion_failure", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSuggestionService(db, &fakeCompleter{err: errors.New("quota exceeded")})

		_, err := svc.GetSuggestion(context.Background(), "meal_idea")
		testutil.AssertAppError(t, err, "SUGGESTION_UNAVAILABLE")
	})
}
