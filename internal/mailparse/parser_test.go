package mailparse

import (
	"strings"
	"testing"
	"time"
)

const vibBody = "Giá trị: 120,000 VND\nVào lúc: 14:30 08/11/2025\nTại Circle K Nguyen Hue"

func TestParseVIB(t *testing.T) {
	t.Run("complete_body", func(t *testing.T) {
		tx := Parse("VIB", "VIB thong bao giao dich", vibBody)
		if tx == nil {
			t.Fatal("expected a transaction, got nil")
		}
		if tx.Amount != 120000 {
			t.Errorf("expected amount 120000, got %d", tx.Amount)
		}
		if tx.Currency != "VND" {
			t.Errorf("expected currency VND, got %s", tx.Currency)
		}
		if !strings.Contains(tx.Merchant, "Circle K") {
			t.Errorf("expected merchant to contain Circle K, got %q", tx.Merchant)
		}
		want := time.Date(2025, time.November, 8, 14, 30, 0, 0, time.Local)
		if !tx.Date.Equal(want) {
			t.Errorf("expected date %v, got %v", want, tx.Date)
		}
		if tx.Type != "Card Payment" {
			t.Errorf("expected type Card Payment, got %s", tx.Type)
		}
		if tx.Source != SourceVIB {
			t.Errorf("expected source %s, got %s", SourceVIB, tx.Source)
		}
	})

	t.Run("short_date_layout_resolves_2000s", func(t *testing.T) {
		body := "Giá trị: 98,000 VND\nVào lúc: 09:15 08 Nov 25\nTại Pho 24"
		tx := Parse("VIB", "", body)
		if tx == nil {
			t.Fatal("expected a transaction, got nil")
		}
		if tx.Date.Year() != 2025 {
			t.Errorf("expected year 2025, got %d", tx.Date.Year())
		}
		if tx.Date.Month() != time.November || tx.Date.Day() != 8 {
			t.Errorf("expected Nov 8, got %v", tx.Date)
		}
	})

	t.Run("grouping_separators_stripped", func(t *testing.T) {
		body := "Giá trị: 1.250.000 VND\nVào lúc: 10:00 01/12/2025\nTại The Coffee House"
		tx := Parse("VIB", "", body)
		if tx == nil {
			t.Fatal("expected a transaction, got nil")
		}
		if tx.Amount != 1250000 {
			t.Errorf("expected amount 1250000, got %d", tx.Amount)
		}
		if tx.Category != CategoryFood {
			t.Errorf("expected Food for a coffee merchant, got %s", tx.Category)
		}
	})

	t.Run("merchant_trailing_punctuation_trimmed", func(t *testing.T) {
		body := "Giá trị: 50,000 VND\nVào lúc: 08:00 02/01/2026\nTại WinMart Thao Dien.\n"
		tx := Parse("VIB", "", body)
		if tx == nil {
			t.Fatal("expected a transaction, got nil")
		}
		if tx.Merchant != "WinMart Thao Dien" {
			t.Errorf("expected trimmed merchant, got %q", tx.Merchant)
		}
	})

	t.Run("missing_amount_declines", func(t *testing.T) {
		body := "Vào lúc: 14:30 08/11/2025\nTại Circle K Nguyen Hue"
		if tx := Parse("VIB", "", body); tx != nil {
			t.Errorf("expected nil for body without amount, got %+v", tx)
		}
	})

	t.Run("missing_merchant_declines", func(t *testing.T) {
		body := "Giá trị: 120,000 VND\nVào lúc: 14:30 08/11/2025"
		if tx := Parse("VIB", "", body); tx != nil {
			t.Errorf("expected nil for body without merchant, got %+v", tx)
		}
	})

	t.Run("missing_date_declines", func(t *testing.T) {
		body := "Giá trị: 120,000 VND\nTại Circle K Nguyen Hue"
		if tx := Parse("VIB", "", body); tx != nil {
			t.Errorf("expected nil for body without timestamp, got %+v", tx)
		}
	})

	t.Run("zero_amount_declines", func(t *testing.T) {
		body := "Giá trị: 0 VND\nVào lúc: 14:30 08/11/2025\nTại Circle K"
		if tx := Parse("VIB", "", body); tx != nil {
			t.Errorf("expected nil for zero amount, got %+v", tx)
		}
	})
}

func TestParseGrab(t *testing.T) {
	t.Run("grabfood_receipt", func(t *testing.T) {
		body := "Cảm ơn bạn!\nTổng cộng: ₫85.000\nĐặt từ Bun Cha Ha Noi\n12:05 08 Nov 25"
		tx := Parse("Grab", "Your GrabFood order receipt", body)
		if tx == nil {
			t.Fatal("expected a transaction, got nil")
		}
		if tx.Amount != 85000 {
			t.Errorf("expected amount 85000, got %d", tx.Amount)
		}
		if tx.Merchant != "Bun Cha Ha Noi" {
			t.Errorf("expected merchant Bun Cha Ha Noi, got %q", tx.Merchant)
		}
		if tx.Type != "GrabFood" {
			t.Errorf("expected type GrabFood, got %s", tx.Type)
		}
		if tx.Category != CategoryFood {
			t.Errorf("expected Food, got %s", tx.Category)
		}
		want := time.Date(2025, time.November, 8, 12, 5, 0, 0, time.Local)
		if !tx.Date.Equal(want) {
			t.Errorf("expected date %v, got %v", want, tx.Date)
		}
		if tx.Source != SourceGrab {
			t.Errorf("expected source %s, got %s", SourceGrab, tx.Source)
		}
	})

	t.Run("grabcar_receipt", func(t *testing.T) {
		body := "Total: đ45,000\nfrom Nguyen Hue, District 1\n18:45 08/11/2025"
		tx := Parse("Grab", "Your GrabCar ride receipt", body)
		if tx == nil {
			t.Fatal("expected a transaction, got nil")
		}
		if tx.Amount != 45000 {
			t.Errorf("expected amount 45000, got %d", tx.Amount)
		}
		if tx.Type != "GrabCar" {
			t.Errorf("expected type GrabCar, got %s", tx.Type)
		}
		if tx.Category != CategoryTransport {
			t.Errorf("expected Transport, got %s", tx.Category)
		}
	})

	t.Run("pending_order_declines", func(t *testing.T) {
		body := "Your order is scheduled for later.\nTổng cộng: ₫85.000\nĐặt từ Bun Cha Ha Noi\n12:05 08 Nov 25"
		if tx := Parse("Grab", "Your GrabFood order", body); tx != nil {
			t.Errorf("expected nil for a scheduled order, got %+v", tx)
		}
	})

	t.Run("pending_marker_in_subject_declines", func(t *testing.T) {
		body := "Tổng cộng: ₫85.000\nĐặt từ Bun Cha Ha Noi\n12:05 08 Nov 25"
		if tx := Parse("Grab", "Pending GrabFood order", body); tx != nil {
			t.Errorf("expected nil for a pending order, got %+v", tx)
		}
	})

	t.Run("no_amount_declines", func(t *testing.T) {
		body := "Đặt từ Bun Cha Ha Noi\n12:05 08 Nov 25"
		if tx := Parse("Grab", "Your GrabFood order receipt", body); tx != nil {
			t.Errorf("expected nil for body without amount, got %+v", tx)
		}
	})

	t.Run("currency_adjacent_amount_fallback", func(t *testing.T) {
		body := "Fare: 32,000 VND\nfrom Ben Thanh Market\n07:20 03/12/2025"
		tx := Parse("Grab", "Your GrabBike ride receipt", body)
		if tx == nil {
			t.Fatal("expected a transaction, got nil")
		}
		if tx.Amount != 32000 {
			t.Errorf("expected amount 32000, got %d", tx.Amount)
		}
		if tx.Type != "GrabBike" {
			t.Errorf("expected type GrabBike, got %s", tx.Type)
		}
	})
}

func TestParseDispatch(t *testing.T) {
	t.Run("unknown_template_declines", func(t *testing.T) {
		if tx := Parse("ACB", "subject", vibBody); tx != nil {
			t.Errorf("expected nil for unregistered template, got %+v", tx)
		}
	})

	t.Run("empty_input_declines", func(t *testing.T) {
		for _, id := range TemplateIDs() {
			if tx := Parse(id, "", ""); tx != nil {
				t.Errorf("template %s: expected nil for empty input, got %+v", id, tx)
			}
		}
	})

	t.Run("registry_contains_both_templates", func(t *testing.T) {
		ids := TemplateIDs()
		if len(ids) != 2 {
			t.Fatalf("expected 2 registered templates, got %d", len(ids))
		}
	})
}
