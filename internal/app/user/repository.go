package user

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	// GetByUsername returns (nil, nil) when no account matches.
	GetByUsername(tx *gorm.DB, username string) (*Account, error)
	Create(tx *gorm.DB, account *Account) error
}

type repository struct{}

func NewRepository() Repository {
	return &repository{}
}

func (r *repository) GetByUsername(tx *gorm.DB, username string) (*Account, error) {
	var account Account
	err := tx.Where("username = ?", username).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *repository) Create(tx *gorm.DB, account *Account) error {
	return tx.Create(account).Error
}
