package models

import "gorm.io/gorm"

type Todo struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null"`
	Text      string `gorm:"not null"`
	Completed bool   `gorm:"default:false"`
}
