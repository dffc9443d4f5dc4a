package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	FinanceIncome  = "income"
	FinanceExpense = "expense"
)

type FinanceRecord struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"`
	Type     string    `gorm:"size:16;not null"` // income | expense
	Category string    `gorm:"not null"`
	Amount   float64   `gorm:"not null"`
	Date     time.Time `gorm:"type:date;index;not null"`
	Comment  string
}

// Budget is a per-category monthly limit. Rows for the same month are summed
// into a single monthly total for scoring purposes.
type Budget struct {
	gorm.Model
	UserID   uint    `gorm:"uniqueIndex:idx_budget_user_month_cat;not null"`
	Month    string  `gorm:"size:7;uniqueIndex:idx_budget_user_month_cat;not null"` // "YYYY-MM"
	Category string  `gorm:"uniqueIndex:idx_budget_user_month_cat;not null"`
	Amount   float64 `gorm:"not null"`
}
