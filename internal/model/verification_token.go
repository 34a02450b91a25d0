package model

import "time"

type VerificationToken struct {
	ID     int    `gorm:"primaryKey;autoincrement"`
	UserID string `gorm:"index"`
	Token  string `gorm:"uniqueIndex"`
	// Active tokens are the only ones consulted during verification.
	// Consumption flips this to false exactly once
	Active    bool `gorm:"default:true"`
	CreatedAt time.Time
	UsedAt    *time.Time
}
