package models

import "time"

// ExpenseSource identifies where an expense record came from.
type ExpenseSource string

const (
	ExpenseSourceManual ExpenseSource = "manual"
	ExpenseSourceVIB    ExpenseSource = "vib_email"
	ExpenseSourceGrab   ExpenseSource = "grab_email"
)

// Expense represents a single spending record, entered manually or imported
// from a transaction email. Amounts are whole Vietnamese Dong.
type Expense struct {
	Base
	Amount      int64         `gorm:"type:bigint;not null" json:"amount"`
	Currency    string        `gorm:"size:3;not null;default:VND" json:"currency"`
	Merchant    string        `gorm:"not null" json:"merchant"`
	Description string        `json:"description"`
	Category    string        `gorm:"not null" json:"category"`
	Date        time.Time     `gorm:"not null;index" json:"date"`
	Source      ExpenseSource `gorm:"not null;default:manual" json:"source"`

	// DedupeKey guards imported expenses against re-import; manual entries
	// leave it null.
	DedupeKey *string `gorm:"uniqueIndex" json:"-"`
}
