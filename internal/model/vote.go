package model

import "time"

type Vote struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time

	// The unique index is the ledger's one-vote-per-voter guard: a
	// concurrent duplicate submission fails at the database rather
	// than corrupting the tally.
	VoterID     uint `gorm:"uniqueIndex;not null"`
	CandidateID uint `gorm:"index;not null"`
}
