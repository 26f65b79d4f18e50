package repository

import (
	"errors"
	"fmt"

	"github.com/PriyeshRaj231/online-voting-system/internal/dto"
	"github.com/PriyeshRaj231/online-voting-system/internal/model"
	"gorm.io/gorm"
)

type CandidateRepository interface {
	Create(candidate model.Candidate) (model.Candidate, error)
	GetAll() ([]model.Candidate, error)
	GetByID(id uint) (model.Candidate, error)
	Delete(id uint) error
}

type candidate struct {
	db *gorm.DB
}

func newCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidate{
		db: db,
	}
}

func (c *candidate) Create(candidateRow model.Candidate) (model.Candidate, error) {
	result := c.db.Create(&candidateRow)
	if result.Error != nil {
		return model.Candidate{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return candidateRow, nil
}

func (c *candidate) GetAll() ([]model.Candidate, error) {
	var candidates []model.Candidate
	result := c.db.Order("id").Find(&candidates)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return candidates, nil
}

func (c *candidate) GetByID(id uint) (model.Candidate, error) {
	var candidateRow model.Candidate
	result := c.db.First(&candidateRow, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Candidate{}, fmt.Errorf("%w: candidate %d", dto.ErrNotFound, id)
		}
		return model.Candidate{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return candidateRow, nil
}

// Delete removes the candidate row only. Votes referencing it are kept;
// the tally simply stops listing the candidate.
func (c *candidate) Delete(id uint) error {
	result := c.db.Delete(&model.Candidate{}, id)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: candidate %d", dto.ErrNotFound, id)
	}
	return nil
}
