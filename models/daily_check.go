package models

import (
	"time"

	"gorm.io/gorm"
)

// DailyCheck is the one-row-per-day self-report: sleep, mood, energy and
// whether a workout happened. Callers upsert by (user_id, date); the scoring
// engine assumes at most one row per day.
type DailyCheck struct {
	gorm.Model
	UserID      uint      `gorm:"index;not null"`
	Date        time.Time `gorm:"type:date;index;not null"`
	SleepHours  *float64
	Mood        *int // 1..5
	Energy      *int // 1..5
	WorkoutDone bool
}
