package services

import (
	"errors"
	"time"

	"github.com/Count174/k-board-sub000/config"
	"github.com/Count174/k-board-sub000/models"
	"github.com/Count174/k-board-sub000/utils"

	"gorm.io/gorm"
)

type DailyCheckInput struct {
	Date        string   `json:"date" binding:"required"` // YYYY-MM-DD
	SleepHours  *float64 `json:"sleep_hours"`
	Mood        *int     `json:"mood"`
	Energy      *int     `json:"energy"`
	WorkoutDone bool     `json:"workout_done"`
}

// UpsertDailyCheck keeps the one-row-per-day invariant the scoring engine
// relies on: a second submit for the same date overwrites the first.
func UpsertDailyCheck(userID uint, input DailyCheckInput) (*models.DailyCheck, error) {
	date, err := time.Parse(utils.ISODate, input.Date)
	if err != nil {
		return nil, errors.New("invalid date, expected YYYY-MM-DD")
	}

	check := models.DailyCheck{
		UserID:      userID,
		Date:        date,
		SleepHours:  input.SleepHours,
		Mood:        input.Mood,
		Energy:      input.Energy,
		WorkoutDone: input.WorkoutDone,
	}

	var existing models.DailyCheck
	err = config.DB.Where("user_id = ? AND date = ?", userID, date).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &check, config.DB.Create(&check).Error
	}
	if err != nil {
		return nil, err
	}

	existing.SleepHours = input.SleepHours
	existing.Mood = input.Mood
	existing.Energy = input.Energy
	existing.WorkoutDone = input.WorkoutDone
	return &existing, config.DB.Save(&existing).Error
}

func GetDailyChecks(userID uint, start, end string) ([]models.DailyCheck, error) {
	var checks []models.DailyCheck
	err := config.DB.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Order("date ASC").
		Find(&checks).Error
	return checks, err
}

type HealthEventInput struct {
	Type     string `json:"type" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time"`
	Place    string `json:"place"`
	Activity string `json:"activity"`
	Notes    string `json:"notes"`
}

func CreateHealthEvent(userID uint, input HealthEventInput) (*models.HealthEvent, error) {
	date, err := time.Parse(utils.ISODate, input.Date)
	if err != nil {
		return nil, errors.New("invalid date, expected YYYY-MM-DD")
	}

	ev := models.HealthEvent{
		UserID:   userID,
		Type:     input.Type,
		Date:     date,
		Time:     input.Time,
		Place:    input.Place,
		Activity: input.Activity,
		Notes:    input.Notes,
	}
	return &ev, config.DB.Create(&ev).Error
}

func ListHealthEvents(userID uint, start, end string) ([]models.HealthEvent, error) {
	var events []models.HealthEvent
	q := config.DB.Where("user_id = ?", userID)
	if start != "" && end != "" {
		q = q.Where("date BETWEEN ? AND ?", start, end)
	}
	err := q.Order("date DESC, time DESC").Find(&events).Error
	return events, err
}

func CompleteHealthEvent(userID, eventID uint, completed bool) error {
	res := config.DB.Model(&models.HealthEvent{}).
		Where("id = ? AND user_id = ?", eventID, userID).
		Update("completed", completed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("event not found")
	}
	return nil
}

func DeleteHealthEvent(userID, eventID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", eventID, userID).
		Delete(&models.HealthEvent{}).Error
}
