package board

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository queries always carry the owner in the predicate; there is no
// unscoped lookup by id.
type Repository interface {
	Create(tx *gorm.DB, board *Board) error
	ListByOwner(tx *gorm.DB, ownerID uint64) ([]*Board, error)
	GetOwned(tx *gorm.DB, boardID, ownerID uint64) (*Board, error)
	LockOwned(tx *gorm.DB, boardID, ownerID uint64) (bool, error)
	DeleteOwned(tx *gorm.DB, boardID, ownerID uint64) (bool, error)
}

type repository struct{}

func NewRepository() Repository {
	return &repository{}
}

func (r *repository) Create(tx *gorm.DB, board *Board) error {
	return tx.Omit(clause.Associations).Create(board).Error
}

func (r *repository) ListByOwner(tx *gorm.DB, ownerID uint64) ([]*Board, error) {
	boards := make([]*Board, 0)
	err := tx.
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&boards).Error
	return boards, err
}

func (r *repository) GetOwned(tx *gorm.DB, boardID, ownerID uint64) (*Board, error) {
	var board Board
	err := tx.Where("id = ? AND owner_id = ?", boardID, ownerID).Take(&board).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &board, nil
}

// LockOwned takes a share lock on the board row so it cannot be deleted
// before the surrounding transaction ends.
func (r *repository) LockOwned(tx *gorm.DB, boardID, ownerID uint64) (bool, error) {
	var board Board
	err := tx.
		Clauses(clause.Locking{Strength: "SHARE"}).
		Select("id").
		Where("id = ? AND owner_id = ?", boardID, ownerID).
		Take(&board).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// DeleteOwned removes the board in a single statement; tasks on the board go
// with it through the ON DELETE CASCADE foreign key.
func (r *repository) DeleteOwned(tx *gorm.DB, boardID, ownerID uint64) (bool, error) {
	res := tx.Where("id = ? AND owner_id = ?", boardID, ownerID).Delete(&Board{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
