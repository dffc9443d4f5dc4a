package models

import (
	"time"

	"gorm.io/gorm"
)

// Medication is a recurring dose schedule. Frequency is either "daily" or
// "dow:<comma-separated 1-7>" with 1=Monday..7=Sunday. Times holds the
// times-of-day as a JSON array of "HH:MM" strings, same encoding the web
// client sends; an unparseable value is treated as an empty list.
type Medication struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null"`
	Name      string `gorm:"not null"`
	Dosage    string
	Frequency string     `gorm:"size:32;default:daily"`
	Times     string     `gorm:"type:text"` // JSON: ["09:00","21:00"]
	StartDate time.Time  `gorm:"type:date;not null"`
	EndDate   *time.Time `gorm:"type:date"` // nil = open-ended course
	Active    bool       `gorm:"default:true"`
}

const (
	IntakeTaken   = "taken"
	IntakeSkipped = "skipped"
)

type MedicationIntake struct {
	gorm.Model
	UserID       uint      `gorm:"index;not null"`
	MedicationID uint      `gorm:"index;not null"`
	IntakeDate   time.Time `gorm:"type:date;index;not null"`
	IntakeTime   string    `gorm:"size:5"` // scheduled slot, "HH:MM"
	Status       string    `gorm:"size:16;not null"`
}
