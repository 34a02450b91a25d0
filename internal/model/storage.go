package model

import "time"

type Storage struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      string    `gorm:"index;not null" json:"-"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Location    string    `gorm:"not null" json:"location"`
	CreatedAt   time.Time `json:"created_at"`

	Items []Item `gorm:"foreignKey:StorageID" json:"-"`
}
