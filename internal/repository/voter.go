package repository

import (
	"errors"
	"fmt"

	"github.com/PriyeshRaj231/online-voting-system/internal/dto"
	"github.com/PriyeshRaj231/online-voting-system/internal/model"
	"gorm.io/gorm"
)

type VoterRepository interface {
	Create(voter model.Voter) (model.Voter, error)
	GetByID(id uint) (model.Voter, error)
	GetByUsername(username string) (model.Voter, error)
	Count() (int64, error)
}

type voter struct {
	db *gorm.DB
}

func newVoterRepository(db *gorm.DB) VoterRepository {
	return &voter{
		db: db,
	}
}

func (v *voter) Create(voterRow model.Voter) (model.Voter, error) {
	result := v.db.Create(&voterRow)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.Voter{}, fmt.Errorf("%w: %q", dto.ErrUsernameTaken, voterRow.Username)
		}
		return model.Voter{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return voterRow, nil
}

func (v *voter) GetByID(id uint) (model.Voter, error) {
	var voterRow model.Voter
	result := v.db.First(&voterRow, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Voter{}, fmt.Errorf("%w: voter %d", dto.ErrNotFound, id)
		}
		return model.Voter{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return voterRow, nil
}

func (v *voter) GetByUsername(username string) (model.Voter, error) {
	var voterRow model.Voter
	result := v.db.Where("username = ?", username).First(&voterRow)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Voter{}, fmt.Errorf("%w: voter %q", dto.ErrNotFound, username)
		}
		return model.Voter{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return voterRow, nil
}

func (v *voter) Count() (int64, error) {
	var count int64
	result := v.db.Model(&model.Voter{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}
	return count, nil
}
