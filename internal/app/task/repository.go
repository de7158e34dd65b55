package task

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Create(tx *gorm.DB, task *Task) error
	ListByBoard(tx *gorm.DB, ownerID, boardID uint64) ([]*Task, error)
	UpdateOwned(tx *gorm.DB, taskID, ownerID uint64, in Input) (*Task, error)
	DeleteOwned(tx *gorm.DB, taskID, ownerID uint64) (bool, error)
}

type repository struct{}

func NewRepository() Repository {
	return &repository{}
}

func (r *repository) Create(tx *gorm.DB, task *Task) error {
	return tx.Omit(clause.Associations).Create(task).Error
}

func (r *repository) ListByBoard(tx *gorm.DB, ownerID, boardID uint64) ([]*Task, error) {
	tasks := make([]*Task, 0)
	err := tx.
		Where("owner_id = ? AND board_id = ?", ownerID, boardID).
		Order("position ASC").
		Order("id ASC").
		Find(&tasks).Error
	return tasks, err
}

// UpdateOwned matches and mutates in one statement, so ownership cannot
// change between the check and the write. It returns (nil, nil) when no
// owned task has that id.
func (r *repository) UpdateOwned(tx *gorm.DB, taskID, ownerID uint64, in Input) (*Task, error) {
	var updated []Task
	res := tx.Model(&updated).
		Clauses(clause.Returning{}).
		Where("id = ? AND owner_id = ?", taskID, ownerID).
		Updates(map[string]any{
			"content":  in.Content,
			"column":   in.Column,
			"position": in.Position,
			"board_id": in.BoardID,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 || len(updated) == 0 {
		return nil, nil
	}
	return &updated[0], nil
}

func (r *repository) DeleteOwned(tx *gorm.DB, taskID, ownerID uint64) (bool, error) {
	res := tx.Where("id = ? AND owner_id = ?", taskID, ownerID).Delete(&Task{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

