package services

import (
	"errors"
	"time"

	"github.com/Count174/k-board-sub000/config"
	"github.com/Count174/k-board-sub000/models"
	"github.com/Count174/k-board-sub000/utils"
)

type GoalView struct {
	models.Goal
	LastValue *float64 `json:"last_value"`
	LastDate  *string  `json:"last_date"`
	PrevValue *float64 `json:"prev_value"`
	DeltaAbs  *float64 `json:"delta_abs"`
}

// ListGoals returns active goals with their latest check-in and the delta to
// the one before it.
func ListGoals(userID uint) ([]GoalView, error) {
	var goals []models.Goal
	err := config.DB.
		Where("user_id = ? AND archived = ?", userID, false).
		Order("id DESC").
		Find(&goals).Error
	if err != nil {
		return nil, err
	}

	out := make([]GoalView, 0, len(goals))
	for _, g := range goals {
		view := GoalView{Goal: g}

		var checkins []models.GoalCheckin
		if err := config.DB.
			Where("user_id = ? AND goal_id = ?", userID, g.ID).
			Order("date DESC, id DESC").
			Limit(2).
			Find(&checkins).Error; err != nil {
			return nil, err
		}

		if len(checkins) > 0 {
			v := checkins[0].Value
			d := checkins[0].Date.Format(utils.ISODate)
			view.LastValue = &v
			view.LastDate = &d
		}
		if len(checkins) > 1 {
			p := checkins[1].Value
			delta := checkins[0].Value - p
			view.PrevValue = &p
			view.DeltaAbs = &delta
		}

		out = append(out, view)
	}
	return out, nil
}

type GoalInput struct {
	ID          uint    `json:"id"` // 0 = create
	Title       string  `json:"title" binding:"required"`
	Target      float64 `json:"target" binding:"required"`
	Unit        string  `json:"unit"`
	Direction   string  `json:"direction"`
	CheckinFreq string  `json:"checkin_freq"`
}

func UpsertGoal(userID uint, input GoalInput) (*models.Goal, error) {
	direction := input.Direction
	if direction == "" {
		direction = "increase"
	}
	freq := input.CheckinFreq
	if freq == "" {
		freq = "weekly"
	}

	if input.ID != 0 {
		var goal models.Goal
		if err := config.DB.Where("id = ? AND user_id = ?", input.ID, userID).First(&goal).Error; err != nil {
			return nil, errors.New("goal not found")
		}
		goal.Title = input.Title
		goal.Target = input.Target
		goal.Unit = input.Unit
		goal.Direction = direction
		goal.CheckinFreq = freq
		return &goal, config.DB.Save(&goal).Error
	}

	goal := models.Goal{
		UserID:      userID,
		Title:       input.Title,
		Target:      input.Target,
		Unit:        input.Unit,
		Direction:   direction,
		CheckinFreq: freq,
	}
	return &goal, config.DB.Create(&goal).Error
}

func AddGoalCheckin(userID, goalID uint, date string, value float64) (*models.GoalCheckin, error) {
	d, err := time.Parse(utils.ISODate, date)
	if err != nil {
		return nil, errors.New("invalid date, expected YYYY-MM-DD")
	}

	var goal models.Goal
	if err := config.DB.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
		return nil, errors.New("goal not found")
	}

	checkin := models.GoalCheckin{
		UserID: userID,
		GoalID: goalID,
		Date:   d,
		Value:  value,
	}
	return &checkin, config.DB.Create(&checkin).Error
}

func ArchiveGoal(userID, goalID uint) error {
	res := config.DB.Model(&models.Goal{}).
		Where("id = ? AND user_id = ?", goalID, userID).
		Update("archived", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("goal not found")
	}
	return nil
}
