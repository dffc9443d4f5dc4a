package models

import (
	"time"

	"gorm.io/gorm"
)

// Health event types. The scoring engine only cares about "training";
// the rest exist for the calendar widget.
const (
	HealthEventTraining   = "training"
	HealthEventDoctor     = "doctor"
	HealthEventAnalysis   = "analysis"
	HealthEventMedication = "medication"
)

type HealthEvent struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null"`
	Type      string    `gorm:"size:32;not null"`
	Date      time.Time `gorm:"type:date;index;not null"`
	Time      string    `gorm:"size:5"` // "HH:MM"
	Place     string
	Activity  string
	Notes     string
	Completed bool
}
