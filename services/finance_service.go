package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/Count174/k-board-sub000/config"
	"github.com/Count174/k-board-sub000/models"
	"github.com/Count174/k-board-sub000/utils"
)

type FinanceInput struct {
	Type     string  `json:"type" binding:"required"` // income | expense
	Category string  `json:"category" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
	Date     string  `json:"date"` // defaults to today
	Comment  string  `json:"comment"`
}

func CreateFinanceRecord(userID uint, input FinanceInput) (*models.FinanceRecord, error) {
	if input.Type != models.FinanceIncome && input.Type != models.FinanceExpense {
		return nil, errors.New("type must be income or expense")
	}

	dateStr := input.Date
	if dateStr == "" {
		dateStr = time.Now().Format(utils.ISODate)
	}
	date, err := time.Parse(utils.ISODate, dateStr)
	if err != nil {
		return nil, errors.New("invalid date, expected YYYY-MM-DD")
	}

	rec := models.FinanceRecord{
		UserID:   userID,
		Type:     input.Type,
		Category: input.Category,
		Amount:   math.Abs(input.Amount),
		Date:     date,
		Comment:  input.Comment,
	}
	if err := config.DB.Create(&rec).Error; err != nil {
		return nil, err
	}

	if rec.Type == models.FinanceExpense {
		checkBudgetAlert(userID, rec.Category, dateStr)
	}

	return &rec, nil
}

// checkBudgetAlert emits a warning when the category's monthly spend crosses
// its budget. Best-effort: failures only skip the alert.
func checkBudgetAlert(userID uint, category, date string) {
	month := utils.MonthOf(date)

	var budget models.Budget
	if err := config.DB.
		Where("user_id = ? AND month = ? AND category = ?", userID, month, category).
		First(&budget).Error; err != nil {
		return
	}

	var spent float64
	row := config.DB.Model(&models.FinanceRecord{}).
		Select("COALESCE(SUM(ABS(amount)), 0)").
		Where("user_id = ? AND type = ? AND category = ? AND to_char(date, 'YYYY-MM') = ?",
			userID, models.FinanceExpense, category, month).
		Row()
	if err := row.Scan(&spent); err != nil {
		return
	}

	if spent > budget.Amount {
		EmitAlert(userID, "warning",
			fmt.Sprintf("Budget exceeded for %q in %s: spent %.0f of %.0f", category, month, spent, budget.Amount))
	}
}

func ListFinances(userID uint, limit, offset int) ([]models.FinanceRecord, error) {
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var recs []models.FinanceRecord
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Limit(limit).Offset(offset).
		Find(&recs).Error
	return recs, err
}

func RangeFinances(userID uint, start, end string) ([]models.FinanceRecord, error) {
	var recs []models.FinanceRecord
	err := config.DB.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Order("date ASC, id ASC").
		Find(&recs).Error
	return recs, err
}

func DeleteFinanceRecord(userID, recID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", recID, userID).
		Delete(&models.FinanceRecord{}).Error
}

type MonthTotals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// MonthlyStats returns income/expense totals keyed by "YYYY-MM".
func MonthlyStats(userID uint) (map[string]MonthTotals, error) {
	type row struct {
		Month string
		Type  string
		Total float64
	}
	var rows []row
	err := config.DB.Model(&models.FinanceRecord{}).
		Select("to_char(date, 'YYYY-MM') AS month, type, SUM(ABS(amount)) AS total").
		Where("user_id = ?", userID).
		Group("month, type").
		Order("month DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]MonthTotals)
	for _, r := range rows {
		t := out[r.Month]
		switch r.Type {
		case models.FinanceIncome:
			t.Income = math.Round(r.Total)
		case models.FinanceExpense:
			t.Expense = math.Round(r.Total)
		}
		out[r.Month] = t
	}
	return out, nil
}

type MonthOverview struct {
	Expenses     float64  `json:"expenses"`
	Incomes      float64  `json:"incomes"`
	Forecast     float64  `json:"forecast"`
	BudgetUsePct *float64 `json:"budget_use_pct"` // nil when no budgets set
}

// GetMonthOverview sums the month, projects spend at the current run rate and
// reports how much of the budgeted limits is used (overspend per category is
// capped at its limit so one blown category cannot push the figure over 100%).
func GetMonthOverview(userID uint, month string) (*MonthOverview, error) {
	var out MonthOverview

	type sums struct {
		Expenses float64
		Incomes  float64
	}
	var s sums
	err := config.DB.Model(&models.FinanceRecord{}).
		Select(`COALESCE(SUM(CASE WHEN type = 'expense' THEN ABS(amount) END), 0) AS expenses,
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount END), 0) AS incomes`).
		Where("user_id = ? AND to_char(date, 'YYYY-MM') = ?", userID, month).
		Scan(&s).Error
	if err != nil {
		return nil, err
	}
	out.Expenses = math.Round(s.Expenses)
	out.Incomes = math.Round(s.Incomes)

	dim := utils.DaysInMonth(month)
	daysPassed := dim
	if time.Now().Format("2006-01") == month {
		daysPassed = time.Now().Day()
	}
	if daysPassed > 0 {
		out.Forecast = math.Round(s.Expenses / float64(daysPassed) * float64(dim))
	}

	var budgets []models.Budget
	if err := config.DB.Where("user_id = ? AND month = ?", userID, month).Find(&budgets).Error; err != nil {
		return nil, err
	}
	if len(budgets) > 0 {
		type catRow struct {
			Category string
			Total    float64
		}
		var spent []catRow
		err := config.DB.Model(&models.FinanceRecord{}).
			Select("LOWER(TRIM(category)) AS category, SUM(ABS(amount)) AS total").
			Where("user_id = ? AND type = ? AND to_char(date, 'YYYY-MM') = ?", userID, models.FinanceExpense, month).
			Group("LOWER(TRIM(category))").
			Scan(&spent).Error
		if err != nil {
			return nil, err
		}
		spentByCat := make(map[string]float64, len(spent))
		for _, r := range spent {
			spentByCat[r.Category] = r.Total
		}

		var planSum, spentSum float64
		for _, b := range budgets {
			if b.Amount <= 0 {
				continue
			}
			planSum += b.Amount
			spentSum += math.Min(spentByCat[normalizeCategory(b.Category)], b.Amount)
		}
		if planSum > 0 {
			pct := math.Round(spentSum/planSum*1000) / 10
			out.BudgetUsePct = &pct
		}
	}

	return &out, nil
}
