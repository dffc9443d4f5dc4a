package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	LoanActive  = "active"
	LoanClosed  = "closed"
	LoanDeleted = "deleted"
)

// Loan is an annuity-style obligation: a fixed monthly payment and a number
// of payments left. Remaining debt is always monthly_payment * months_left.
type Loan struct {
	gorm.Model
	UserID         uint   `gorm:"index;not null"`
	Title          string `gorm:"not null"`
	Bank           string
	MonthlyPayment float64 `gorm:"not null"`
	MonthsLeft     int     `gorm:"not null"`
	Status         string  `gorm:"size:16;default:active"`
}

type LoanPayment struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	LoanID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"type:date;not null"`
	Amount float64   `gorm:"not null"`
	Note   string
}
