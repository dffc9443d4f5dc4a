package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Count174/k-board-sub000/config"
	"github.com/Count174/k-board-sub000/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const loanExpenseCategory = "loans"

// remainingDebt is the fixed-point product monthly_payment * months_left.
func remainingDebt(monthlyPayment float64, monthsLeft int) decimal.Decimal {
	return decimal.NewFromFloat(monthlyPayment).Mul(decimal.NewFromInt(int64(monthsLeft)))
}

type LoanView struct {
	models.Loan
	RemainingDebt float64 `json:"remaining_debt"`
	PaidCount     int64   `json:"paid_count"`
	PaidSum       float64 `json:"paid_sum"`
}

// ListLoans returns active and closed loans with the remaining debt and the
// payment history totals. Soft-deleted loans are hidden.
func ListLoans(userID uint) ([]LoanView, error) {
	var loans []models.Loan
	err := config.DB.
		Where("user_id = ? AND status <> ?", userID, models.LoanDeleted).
		Order("status ASC, id DESC").
		Find(&loans).Error
	if err != nil {
		return nil, err
	}

	out := make([]LoanView, 0, len(loans))
	for _, l := range loans {
		debt := remainingDebt(l.MonthlyPayment, l.MonthsLeft)

		var paidCount int64
		var paidSum float64
		if err := config.DB.Model(&models.LoanPayment{}).
			Where("user_id = ? AND loan_id = ?", userID, l.ID).
			Count(&paidCount).Error; err != nil {
			return nil, err
		}
		row := config.DB.Model(&models.LoanPayment{}).
			Select("COALESCE(SUM(amount), 0)").
			Where("user_id = ? AND loan_id = ?", userID, l.ID).
			Row()
		if err := row.Scan(&paidSum); err != nil {
			return nil, err
		}

		out = append(out, LoanView{
			Loan:          l,
			RemainingDebt: debt.InexactFloat64(),
			PaidCount:     paidCount,
			PaidSum:       paidSum,
		})
	}
	return out, nil
}

type LoanInput struct {
	ID             uint    `json:"id"` // 0 = create
	Title          string  `json:"title" binding:"required"`
	Bank           string  `json:"bank"`
	MonthlyPayment float64 `json:"monthly_payment" binding:"required"`
	MonthsLeft     int     `json:"months_left" binding:"required"`
}

func UpsertLoan(userID uint, input LoanInput) (*models.Loan, error) {
	if input.MonthlyPayment <= 0 {
		return nil, errors.New("monthly_payment must be positive")
	}
	if input.MonthsLeft <= 0 {
		return nil, errors.New("months_left must be positive")
	}

	if input.ID != 0 {
		var loan models.Loan
		if err := config.DB.
			Where("id = ? AND user_id = ? AND status <> ?", input.ID, userID, models.LoanDeleted).
			First(&loan).Error; err != nil {
			return nil, errors.New("loan not found")
		}
		loan.Title = input.Title
		loan.Bank = input.Bank
		loan.MonthlyPayment = input.MonthlyPayment
		loan.MonthsLeft = input.MonthsLeft
		loan.Status = models.LoanActive
		return &loan, config.DB.Save(&loan).Error
	}

	loan := models.Loan{
		UserID:         userID,
		Title:          input.Title,
		Bank:           input.Bank,
		MonthlyPayment: input.MonthlyPayment,
		MonthsLeft:     input.MonthsLeft,
		Status:         models.LoanActive,
	}
	return &loan, config.DB.Create(&loan).Error
}

// PayOneMonth records one monthly payment: a payment row, a matching expense
// record and one month off the counter. The loan closes when the counter hits
// zero.
func PayOneMonth(userID, loanID uint) (*models.Loan, error) {
	var loan models.Loan
	if err := config.DB.
		Where("id = ? AND user_id = ? AND status = ?", loanID, userID, models.LoanActive).
		First(&loan).Error; err != nil {
		return nil, errors.New("active loan not found")
	}

	today := time.Now()
	amount := decimal.NewFromFloat(loan.MonthlyPayment)

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		payment := models.LoanPayment{
			UserID: userID,
			LoanID: loan.ID,
			Date:   today,
			Amount: amount.InexactFloat64(),
			Note:   "monthly payment",
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		expense := models.FinanceRecord{
			UserID:   userID,
			Type:     models.FinanceExpense,
			Category: loanExpenseCategory,
			Amount:   amount.InexactFloat64(),
			Date:     today,
			Comment:  fmt.Sprintf("Loan payment: %s", loan.Title),
		}
		if err := tx.Create(&expense).Error; err != nil {
			return err
		}

		loan.MonthsLeft--
		if loan.MonthsLeft <= 0 {
			loan.MonthsLeft = 0
			loan.Status = models.LoanClosed
		}
		return tx.Save(&loan).Error
	})
	if err != nil {
		return nil, err
	}

	if loan.Status == models.LoanClosed {
		EmitAlert(userID, "info", fmt.Sprintf("Loan %q is fully paid off", loan.Title))
	}
	return &loan, nil
}

// PrepayFull settles the whole remaining debt in one payment and closes the
// loan.
func PrepayFull(userID, loanID uint) (*models.Loan, error) {
	var loan models.Loan
	if err := config.DB.
		Where("id = ? AND user_id = ? AND status = ?", loanID, userID, models.LoanActive).
		First(&loan).Error; err != nil {
		return nil, errors.New("active loan not found")
	}

	today := time.Now()
	debt := remainingDebt(loan.MonthlyPayment, loan.MonthsLeft)

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		payment := models.LoanPayment{
			UserID: userID,
			LoanID: loan.ID,
			Date:   today,
			Amount: debt.InexactFloat64(),
			Note:   "early repayment",
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		expense := models.FinanceRecord{
			UserID:   userID,
			Type:     models.FinanceExpense,
			Category: loanExpenseCategory,
			Amount:   debt.InexactFloat64(),
			Date:     today,
			Comment:  fmt.Sprintf("Loan early repayment: %s", loan.Title),
		}
		if err := tx.Create(&expense).Error; err != nil {
			return err
		}

		loan.MonthsLeft = 0
		loan.Status = models.LoanClosed
		return tx.Save(&loan).Error
	})
	if err != nil {
		return nil, err
	}

	EmitAlert(userID, "info", fmt.Sprintf("Loan %q is fully paid off", loan.Title))
	return &loan, nil
}

// DeleteLoan marks the loan deleted; payments stay for history.
func DeleteLoan(userID, loanID uint) error {
	res := config.DB.Model(&models.Loan{}).
		Where("id = ? AND user_id = ? AND status <> ?", loanID, userID, models.LoanDeleted).
		Update("status", models.LoanDeleted)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("loan not found")
	}
	return nil
}

// LoanPayments lists the payment history of one loan, newest first.
func LoanPayments(userID, loanID uint) ([]models.LoanPayment, error) {
	var payments []models.LoanPayment
	err := config.DB.
		Where("user_id = ? AND loan_id = ?", userID, loanID).
		Order("date DESC, id DESC").
		Find(&payments).Error
	return payments, err
}
