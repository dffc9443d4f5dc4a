package models

import (
	"time"

	"gorm.io/gorm"
)

type Goal struct {
	gorm.Model
	UserID      uint    `gorm:"index;not null"`
	Title       string  `gorm:"not null"`
	Target      float64 `gorm:"not null"`
	Unit        string  `gorm:"size:16"`
	Direction   string  `gorm:"size:16;default:increase"` // increase | decrease
	CheckinFreq string  `gorm:"size:16;default:weekly"`
	Archived    bool    `gorm:"default:false"`
}

type GoalCheckin struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	GoalID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"type:date;not null"`
	Value  float64   `gorm:"not null"`
}
