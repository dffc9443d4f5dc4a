package models

import (
    "time"

    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    Email          string `gorm:"uniqueIndex;not null"`
    Password       string `gorm:"not null"`
    FullName       string
    AvatarURL      string
    TelegramChatID int64  `gorm:"index"` // 0 = not linked
    MFAEnabled     bool
    MFACode        string
    ResetToken     string
    ResetExpiresAt time.Time
}
