package services

import (
	"errors"
	"time"

	"github.com/Count174/k-board-sub000/config"
	"github.com/Count174/k-board-sub000/models"
	"github.com/Count174/k-board-sub000/utils"
)

func RegisterUser(email, password, fullName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		FullName: fullName,
	}

	return config.DB.Create(&user).Error
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return "", errors.New("user not found")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, "email = ?", email).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

// StartPasswordReset issues a reset token valid for one hour and mails it.
// Always returns nil for unknown emails so the endpoint does not leak which
// addresses are registered.
func StartPasswordReset(email string) error {
	user, err := FindUserByEmail(email)
	if err != nil {
		return nil
	}

	user.ResetToken = utils.GenerateResetToken()
	user.ResetExpiresAt = time.Now().Add(time.Hour)
	if err := config.DB.Save(user).Error; err != nil {
		return err
	}

	return utils.SendResetEmail(user.Email, user.ResetToken)
}

func ResetPassword(email, token, newPassword string) error {
	user, err := FindUserByEmail(email)
	if err != nil {
		return err
	}
	if user.ResetToken == "" || user.ResetToken != token {
		return errors.New("invalid reset token")
	}
	if time.Now().After(user.ResetExpiresAt) {
		return errors.New("reset token expired")
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.ResetToken = ""
	return config.DB.Save(user).Error
}
