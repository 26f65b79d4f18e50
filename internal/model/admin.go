package model

import "time"

type Admin struct {
	ID           uint `gorm:"primarykey"`
	CreatedAt    time.Time
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}
