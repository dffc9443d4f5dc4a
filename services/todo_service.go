package services

import (
	"errors"

	"github.com/Count174/k-board-sub000/config"
	"github.com/Count174/k-board-sub000/models"
)

func ListTodos(userID uint) ([]models.Todo, error) {
	var todos []models.Todo
	err := config.DB.
		Where("user_id = ?", userID).
		Order("completed ASC, id DESC").
		Find(&todos).Error
	return todos, err
}

func CreateTodo(userID uint, text string) (*models.Todo, error) {
	if text == "" {
		return nil, errors.New("text is required")
	}
	todo := models.Todo{UserID: userID, Text: text}
	return &todo, config.DB.Create(&todo).Error
}

func ToggleTodo(userID, todoID uint, completed bool) error {
	res := config.DB.Model(&models.Todo{}).
		Where("id = ? AND user_id = ?", todoID, userID).
		Update("completed", completed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("todo not found")
	}
	return nil
}

func DeleteTodo(userID, todoID uint) error {
	return config.DB.
		Where("id = ? AND user_id = ?", todoID, userID).
		Delete(&models.Todo{}).Error
}
