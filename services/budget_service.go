package services

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/Count174/k-board-sub000/config"
	"github.com/Count174/k-board-sub000/models"
	"github.com/Count174/k-board-sub000/utils"

	"gorm.io/gorm"
)

func normalizeCategory(c string) string {
	return strings.ToLower(strings.TrimSpace(c))
}

func ListBudgets(userID uint, month string) ([]models.Budget, error) {
	q := config.DB.Where("user_id = ?", userID)
	if month != "" {
		q = q.Where("month = ?", month)
	}

	var budgets []models.Budget
	err := q.Order("month DESC, category ASC").Find(&budgets).Error
	return budgets, err
}

type BudgetInput struct {
	Category string  `json:"category" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
	Month    string  `json:"month" binding:"required"` // YYYY-MM
}

// UpsertBudget updates the limit when a row for (category, month) exists.
func UpsertBudget(userID uint, input BudgetInput) (*models.Budget, error) {
	if utils.DaysInMonth(input.Month) == 0 {
		return nil, errors.New("invalid month, expected YYYY-MM")
	}

	var budget models.Budget
	err := config.DB.
		Where("user_id = ? AND month = ? AND category = ?", userID, input.Month, input.Category).
		First(&budget).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		budget = models.Budget{
			UserID:   userID,
			Month:    input.Month,
			Category: input.Category,
			Amount:   input.Amount,
		}
		return &budget, config.DB.Create(&budget).Error
	}
	if err != nil {
		return nil, err
	}

	budget.Amount = input.Amount
	return &budget, config.DB.Save(&budget).Error
}

func DeleteBudget(userID, budgetID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", budgetID, userID).
		Delete(&models.Budget{}).Error
}

type BudgetStat struct {
	Category     string  `json:"category"`
	Budget       float64 `json:"budget"`
	Spent        float64 `json:"spent"`
	Remaining    float64 `json:"remaining"`
	Forecast     float64 `json:"forecast"`
	IsOverBudget bool    `json:"is_over_budget"`
}

// BudgetStats compares each budgeted category with the month's spend and
// projects the month-end total at the current daily rate. For past months the
// forecast equals the actual spend.
func BudgetStats(userID uint, month string) ([]BudgetStat, error) {
	dim := utils.DaysInMonth(month)
	if dim == 0 {
		return nil, errors.New("invalid month, expected YYYY-MM")
	}

	budgets, err := ListBudgets(userID, month)
	if err != nil {
		return nil, err
	}

	type catRow struct {
		Category string
		Total    float64
	}
	var rows []catRow
	err = config.DB.Model(&models.FinanceRecord{}).
		Select("LOWER(TRIM(category)) AS category, SUM(ABS(amount)) AS total").
		Where("user_id = ? AND type = ? AND to_char(date, 'YYYY-MM') = ?", userID, models.FinanceExpense, month).
		Group("LOWER(TRIM(category))").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	spentByCat := make(map[string]float64, len(rows))
	for _, r := range rows {
		spentByCat[r.Category] = r.Total
	}

	currentDay := dim
	if time.Now().Format("2006-01") == month {
		currentDay = time.Now().Day()
	}

	stats := make([]BudgetStat, 0, len(budgets))
	for _, b := range budgets {
		spent := spentByCat[normalizeCategory(b.Category)]
		var forecast float64
		if currentDay > 0 {
			forecast = math.Round(spent/float64(currentDay)*float64(dim)*100) / 100
		}
		stats = append(stats, BudgetStat{
			Category:     b.Category,
			Budget:       b.Amount,
			Spent:        spent,
			Remaining:    math.Round((b.Amount-spent)*100) / 100,
			Forecast:     forecast,
			IsOverBudget: forecast > b.Amount,
		})
	}
	return stats, nil
}
