package dto

import "time"

// CandidateTally is one row of the results query: a candidate and the
// number of votes referencing it. Candidates without votes appear with
// a zero count.
type CandidateTally struct {
	CandidateID uint   `json:"candidate_id"`
	Name        string `json:"name"`
	PhotoPath   string `json:"photo_path"`
	Votes       int64  `json:"votes"`
}

type Results struct {
	Tallies    []CandidateTally `json:"tallies"`
	TotalVotes int64            `json:"total_votes"`
}

type Dashboard struct {
	Tallies     []CandidateTally `json:"tallies"`
	TotalVotes  int64            `json:"total_votes"`
	TotalVoters int64            `json:"total_voters"`
}

// VoteEvent is published to the message broker after a ledger change.
type VoteEvent struct {
	Type        string    `json:"type"` // "vote_recorded" or "ledger_cleared"
	VoterID     uint      `json:"voter_id,omitempty"`
	CandidateID uint      `json:"candidate_id,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}
