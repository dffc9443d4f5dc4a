package services

import (
	"errors"
	"math"

	"github.com/Count174/k-board-sub000/config"
	"github.com/Count174/k-board-sub000/models"

	"gorm.io/gorm"
)

type SavingView struct {
	models.Saving
	Progress float64 `json:"progress"` // percent, 1 decimal
}

func ListSavings(userID uint) ([]SavingView, error) {
	var savings []models.Saving
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&savings).Error
	if err != nil {
		return nil, err
	}

	out := make([]SavingView, 0, len(savings))
	for _, s := range savings {
		var progress float64
		if s.TargetAmount > 0 {
			progress = math.Round(s.CurrentAmount/s.TargetAmount*1000) / 10
		}
		out = append(out, SavingView{Saving: s, Progress: progress})
	}
	return out, nil
}

type SavingInput struct {
	ID            uint    `json:"id"` // 0 = create
	Name          string  `json:"name" binding:"required"`
	TargetAmount  float64 `json:"target_amount" binding:"required"`
	CurrentAmount float64 `json:"current_amount"`
	Category      string  `json:"category"`
}

func UpsertSaving(userID uint, input SavingInput) (*models.Saving, error) {
	if input.ID != 0 {
		var saving models.Saving
		if err := config.DB.Where("id = ? AND user_id = ?", input.ID, userID).First(&saving).Error; err != nil {
			return nil, errors.New("saving not found")
		}
		saving.Name = input.Name
		saving.TargetAmount = input.TargetAmount
		saving.CurrentAmount = input.CurrentAmount
		saving.Category = input.Category
		return &saving, config.DB.Save(&saving).Error
	}

	saving := models.Saving{
		UserID:        userID,
		Name:          input.Name,
		TargetAmount:  input.TargetAmount,
		CurrentAmount: input.CurrentAmount,
		Category:      input.Category,
	}
	return &saving, config.DB.Create(&saving).Error
}

// AddToSaving tops up a saving and returns the updated row.
func AddToSaving(userID, savingID uint, amount float64) (*models.Saving, error) {
	if amount <= 0 {
		return nil, errors.New("amount must be positive")
	}

	var saving models.Saving
	if err := config.DB.Where("id = ? AND user_id = ?", savingID, userID).First(&saving).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("saving not found")
		}
		return nil, err
	}

	saving.CurrentAmount += amount
	return &saving, config.DB.Save(&saving).Error
}

func DeleteSaving(userID, savingID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", savingID, userID).
		Delete(&models.Saving{}).Error
}
