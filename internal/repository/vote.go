package repository

import (
	"errors"
	"fmt"

	"github.com/PriyeshRaj231/online-voting-system/internal/dto"
	"github.com/PriyeshRaj231/online-voting-system/internal/model"
	"gorm.io/gorm"
)

// VoteRepository is the voting ledger: it enforces one vote per voter
// and answers tally queries.
type VoteRepository interface {
	HasVoted(voterID uint) (bool, error)
	Record(vote model.Vote) (model.Vote, error)
	TallyByCandidate() ([]dto.CandidateTally, error)
	Total() (int64, error)
	Clear() error
}

type vote struct {
	db *gorm.DB
}

func newVoteRepository(db *gorm.DB) VoteRepository {
	return &vote{
		db: db,
	}
}

func (v *vote) HasVoted(voterID uint) (bool, error) {
	var voter model.Voter
	result := v.db.Select("has_voted").First(&voter, voterID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, fmt.Errorf("%w: voter %d", dto.ErrNotFound, voterID)
		}
		return false, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}
	return voter.HasVoted, nil
}

// Record inserts the vote and flips the voter's has-voted flag in one
// transaction. The unique index on voter_id makes the losing side of a
// concurrent duplicate fail with ErrAlreadyVoted instead of committing
// a second row.
func (v *vote) Record(voteRow model.Vote) (model.Vote, error) {
	err := v.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&voteRow).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: voter %d", dto.ErrAlreadyVoted, voteRow.VoterID)
			}
			return fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
		}
		result := tx.Model(&model.Voter{}).Where("id = ?", voteRow.VoterID).Update("has_voted", true)
		if result.Error != nil {
			return fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: voter %d", dto.ErrNotFound, voteRow.VoterID)
		}
		return nil
	})
	if err != nil {
		return model.Vote{}, err
	}

	return voteRow, nil
}

func (v *vote) TallyByCandidate() ([]dto.CandidateTally, error) {
	tallyQuery := `
		SELECT c.id AS candidate_id, c.name, c.photo_path, COUNT(v.id) AS votes
		FROM candidates c
		LEFT JOIN votes v ON v.candidate_id = c.id
		GROUP BY c.id, c.name, c.photo_path
		ORDER BY votes DESC, c.id
	`

	var tallies []dto.CandidateTally
	result := v.db.Raw(tallyQuery).Scan(&tallies)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return tallies, nil
}

func (v *vote) Total() (int64, error) {
	var count int64
	result := v.db.Model(&model.Vote{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}
	return count, nil
}

// Clear deletes every vote and resets every voter's has-voted flag in
// a single transaction, so the ledger invariant holds at all times.
func (v *vote) Clear() error {
	return v.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.Vote{}).Error; err != nil {
			return fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
		}
		if err := tx.Model(&model.Voter{}).Where("has_voted = ?", true).Update("has_voted", false).Error; err != nil {
			return fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
		}
		return nil
	})
}
