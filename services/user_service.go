package services

import (
	"errors"
	"fmt"

	"github.com/Count174/k-board-sub000/config"
	"github.com/Count174/k-board-sub000/models"
	"github.com/Count174/k-board-sub000/utils"
)

type ProfileInput struct {
	FullName string `json:"full_name"`
	Avatar   string `json:"avatar"` // base64 data URL, uploaded to S3 when set
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	return map[string]interface{}{
		"id":              user.ID,
		"email":           user.Email,
		"full_name":       user.FullName,
		"avatar_url":      user.AvatarURL,
		"telegram_linked": user.TelegramChatID != 0,
		"mfa_enabled":     user.MFAEnabled,
	}, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return errors.New("user not found")
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Avatar != "" {
		url, err := utils.UploadAvatar(input.Avatar, user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload avatar: %v", err)
		}
		user.AvatarURL = url
	}

	return config.DB.Save(&user).Error
}

// LinkTelegram associates a Telegram chat with the user so the bot and the
// daily digest can reach them.
func LinkTelegram(userID uint, chatID int64) error {
	return config.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("telegram_chat_id", chatID).Error
}

func FindUserByChatID(chatID int64) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, "telegram_chat_id = ?", chatID).Error; err != nil {
		return nil, errors.New("chat not linked")
	}
	return &user, nil
}
