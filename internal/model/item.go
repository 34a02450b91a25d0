package model

import "time"

type Item struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	StorageID   uint      `gorm:"index;not null" json:"storage_id"`
	UserID      string    `gorm:"index;not null" json:"-"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Amount      int       `gorm:"not null" json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}
