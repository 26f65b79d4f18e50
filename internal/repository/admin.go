package repository

import (
	"errors"
	"fmt"

	"github.com/PriyeshRaj231/online-voting-system/internal/dto"
	"github.com/PriyeshRaj231/online-voting-system/internal/model"
	"gorm.io/gorm"
)

type AdminRepository interface {
	GetByID(id uint) (model.Admin, error)
	GetByUsername(username string) (model.Admin, error)
}

type admin struct {
	db *gorm.DB
}

func newAdminRepository(db *gorm.DB) AdminRepository {
	return &admin{
		db: db,
	}
}

func (a *admin) GetByID(id uint) (model.Admin, error) {
	var adminRow model.Admin
	result := a.db.First(&adminRow, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Admin{}, fmt.Errorf("%w: admin %d", dto.ErrNotFound, id)
		}
		return model.Admin{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return adminRow, nil
}

func (a *admin) GetByUsername(username string) (model.Admin, error) {
	var adminRow model.Admin
	result := a.db.Where("username = ?", username).First(&adminRow)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Admin{}, fmt.Errorf("%w: admin %q", dto.ErrNotFound, username)
		}
		return model.Admin{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return adminRow, nil
}
