package services

import (
	"context"
	"time"

	"github.com/Count174/k-board-sub000/models"
	"github.com/Count174/k-board-sub000/utils"

	"gorm.io/gorm"
)

// DailyCheckRow is the scoring engine's view of a daily check: the date as an
// ISO string and only the fields scoring reads. Mapping happens here at the
// storage boundary so the scorers never touch raw rows.
type DailyCheckRow struct {
	Date        string
	SleepHours  *float64
	WorkoutDone bool
}

// ScoreStore is the read-only capability set the scoring engine needs.
// Every method is parameterized by user and an inclusive [start, end] ISO
// date range; months are "YYYY-MM".
type ScoreStore interface {
	DailyChecks(ctx context.Context, userID uint, start, end string) ([]DailyCheckRow, error)
	// TrainingDates returns the distinct dates with a training health event.
	// completedOnly narrows to events marked completed (the workout scorer's
	// signal); the consistency scorer counts any training event.
	TrainingDates(ctx context.Context, userID uint, start, end string, completedOnly bool) ([]string, error)
	ActiveMedications(ctx context.Context, userID uint, start, end string) ([]models.Medication, error)
	TakenIntakeCount(ctx context.Context, userID uint, start, end string) (int, error)
	BudgetTotalsByMonth(ctx context.Context, userID uint, startMonth, endMonth string) (map[string]float64, error)
	ExpenseTotalsByDay(ctx context.Context, userID uint, start, end string) (map[string]float64, error)
}

type gormScoreStore struct{ db *gorm.DB }

func NewScoreStore(db *gorm.DB) ScoreStore { return &gormScoreStore{db: db} }

func (s *gormScoreStore) DailyChecks(ctx context.Context, userID uint, start, end string) ([]DailyCheckRow, error) {
	var rows []models.DailyCheck
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]DailyCheckRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, DailyCheckRow{
			Date:        r.Date.Format(utils.ISODate),
			SleepHours:  r.SleepHours,
			WorkoutDone: r.WorkoutDone,
		})
	}
	return out, nil
}

func (s *gormScoreStore) TrainingDates(ctx context.Context, userID uint, start, end string, completedOnly bool) ([]string, error) {
	q := s.db.WithContext(ctx).
		Model(&models.HealthEvent{}).
		Where("user_id = ? AND type = ? AND date BETWEEN ? AND ?", userID, models.HealthEventTraining, start, end)
	if completedOnly {
		q = q.Where("completed = ?", true)
	}

	var dates []time.Time
	if err := q.Distinct("date").Order("date ASC").Pluck("date", &dates).Error; err != nil {
		return nil, err
	}

	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format(utils.ISODate))
	}
	return out, nil
}

func (s *gormScoreStore) ActiveMedications(ctx context.Context, userID uint, start, end string) ([]models.Medication, error) {
	var meds []models.Medication
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND active = ?", userID, true).
		Where("start_date <= ?", end).
		Where("end_date IS NULL OR end_date >= ?", start).
		Find(&meds).Error
	return meds, err
}

func (s *gormScoreStore) TakenIntakeCount(ctx context.Context, userID uint, start, end string) (int, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&models.MedicationIntake{}).
		Where("user_id = ? AND status = ? AND intake_date BETWEEN ? AND ?", userID, models.IntakeTaken, start, end).
		Count(&n).Error
	return int(n), err
}

func (s *gormScoreStore) BudgetTotalsByMonth(ctx context.Context, userID uint, startMonth, endMonth string) (map[string]float64, error) {
	type row struct {
		Month string
		Total float64
	}
	var rows []row
	if err := s.db.WithContext(ctx).
		Model(&models.Budget{}).
		Select("month, SUM(amount) AS total").
		Where("user_id = ? AND month BETWEEN ? AND ?", userID, startMonth, endMonth).
		Group("month").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[string]float64, len(rows))
	for _, r := range rows {
		out[r.Month] = r.Total
	}
	return out, nil
}

func (s *gormScoreStore) ExpenseTotalsByDay(ctx context.Context, userID uint, start, end string) (map[string]float64, error) {
	type row struct {
		Date  time.Time
		Spent float64
	}
	var rows []row
	if err := s.db.WithContext(ctx).
		Model(&models.FinanceRecord{}).
		Select("date, SUM(ABS(amount)) AS spent").
		Where("user_id = ? AND type = ? AND date BETWEEN ? AND ?", userID, models.FinanceExpense, start, end).
		Group("date").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[string]float64, len(rows))
	for _, r := range rows {
		out[r.Date.Format(utils.ISODate)] = r.Spent
	}
	return out, nil
}
