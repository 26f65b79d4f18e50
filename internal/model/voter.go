package model

import "time"

type Voter struct {
	ID           uint `gorm:"primarykey"`
	CreatedAt    time.Time
	Name         string `gorm:"not null"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`

	// FaceEmbedding holds the binary encoding of the voter's enrolled
	// face vector. It is written once at registration and never
	// updated; a nil value means enrollment data is missing and
	// verification cannot proceed.
	FaceEmbedding []byte

	HasVoted bool `gorm:"not null;default:false"`
}
