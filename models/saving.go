package models

import "gorm.io/gorm"

type Saving struct {
	gorm.Model
	UserID        uint    `gorm:"index;not null"`
	Name          string  `gorm:"not null"`
	TargetAmount  float64 `gorm:"not null"`
	CurrentAmount float64 `gorm:"default:0"`
	Category      string
}
