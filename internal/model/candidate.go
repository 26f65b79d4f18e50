package model

import "time"

type Candidate struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	Name      string `gorm:"not null"`
	PhotoPath string
}
