package task

import (
	"context"
	"strings"
	"unicode/utf8"

	"taskboard/internal/app/board"
	"taskboard/internal/apperr"
	"taskboard/internal/db"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrTaskNotFound = apperr.New(apperr.ErrNotFound, "Task not found")

// BoardLocker is the slice of board.Repository that task writes need.
type BoardLocker interface {
	LockOwned(tx *gorm.DB, boardID, ownerID uint64) (bool, error)
}

type Service interface {
	Create(ctx context.Context, ownerID uint64, in Input) (*Task, error)
	List(ctx context.Context, ownerID, boardID uint64) ([]*Task, error)
	Update(ctx context.Context, ownerID, taskID uint64, in Input) (*Task, error)
	Delete(ctx context.Context, ownerID, taskID uint64) error
}

type service struct {
	repo   Repository
	boards BoardLocker
	tx     db.TxRunner
	logger *zap.SugaredLogger
}

func NewService(repo Repository, boards BoardLocker, tx db.TxRunner, logger *zap.Logger) Service {
	return &service{repo: repo, boards: boards, tx: tx, logger: logger.Sugar()}
}

func normalize(in Input) (Input, error) {
	if err := apperr.CheckText("content", in.Content); err != nil {
		return in, err
	}
	if err := apperr.CheckText("column", in.Column); err != nil {
		return in, err
	}
	in.Column = strings.TrimSpace(in.Column)
	if in.Column == "" {
		in.Column = DefaultColumn
	}
	if utf8.RuneCountInString(in.Column) > MaxColumnLength {
		return in, apperr.New(apperr.ErrValidation, "column must be at most 64 characters")
	}
	if in.BoardID == 0 {
		return in, apperr.New(apperr.ErrValidation, "board_id is required")
	}
	return in, nil
}

// requireBoard holds a share lock on the target board for the rest of the
// transaction, so a concurrent delete cannot orphan the task.
func (s *service) requireBoard(tx *gorm.DB, ownerID, boardID uint64) error {
	owned, err := s.boards.LockOwned(tx, boardID, ownerID)
	if err != nil {
		return err
	}
	if !owned {
		return board.ErrBoardNotFound
	}
	return nil
}

func (s *service) Create(ctx context.Context, ownerID uint64, in Input) (*Task, error) {
	in, err := normalize(in)
	if err != nil {
		return nil, err
	}

	t := &Task{
		Content:  in.Content,
		Column:   in.Column,
		Position: in.Position,
		OwnerID:  ownerID,
		BoardID:  in.BoardID,
	}
	err = s.tx.InTx(ctx, func(tx *gorm.DB) error {
		if err := s.requireBoard(tx, ownerID, in.BoardID); err != nil {
			return err
		}
		return s.repo.Create(tx, t)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("Task created", "task_id", t.ID, "board_id", t.BoardID, "owner_id", ownerID)
	return t, nil
}

// List returns the caller's tasks on boardID ordered by position. A board the
// caller does not own simply yields no tasks.
func (s *service) List(ctx context.Context, ownerID, boardID uint64) ([]*Task, error) {
	var tasks []*Task
	err := s.tx.InTx(ctx, func(tx *gorm.DB) error {
		var err error
		tasks, err = s.repo.ListByBoard(tx, ownerID, boardID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []*Task{}
	}
	return tasks, nil
}

func (s *service) Update(ctx context.Context, ownerID, taskID uint64, in Input) (*Task, error) {
	in, err := normalize(in)
	if err != nil {
		return nil, err
	}

	var updated *Task
	err = s.tx.InTx(ctx, func(tx *gorm.DB) error {
		if err := s.requireBoard(tx, ownerID, in.BoardID); err != nil {
			return err
		}
		var err error
		updated, err = s.repo.UpdateOwned(tx, taskID, ownerID, in)
		if err != nil {
			return err
		}
		if updated == nil {
			return ErrTaskNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("Task updated", "task_id", taskID, "board_id", updated.BoardID, "owner_id", ownerID)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, ownerID, taskID uint64) error {
	err := s.tx.InTx(ctx, func(tx *gorm.DB) error {
		deleted, err := s.repo.DeleteOwned(tx, taskID, ownerID)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrTaskNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Infow("Task deleted", "task_id", taskID, "owner_id", ownerID)
	return nil
}
