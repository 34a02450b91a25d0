// Package model defines database models
package model

import "time"

type User struct {
	ID           string  `gorm:"primaryKey" json:"id"`
	Username     *string `gorm:"uniqueIndex" json:"username,omitempty"`
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string  `gorm:"not null" json:"-"`
	Active       bool    `gorm:"default:false" json:"active"`
	Verified     bool    `gorm:"default:false" json:"verified"`
	CreatedAt    time.Time

	VerificationTokens []VerificationToken `gorm:"foreignKey:UserID" json:"-"`
	Storages           []Storage           `gorm:"foreignKey:UserID" json:"-"`
}
