package board

import (
	"context"

	"taskboard/internal/apperr"
	"taskboard/internal/db"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrBoardNotFound is returned both for missing boards and for boards owned
// by someone else.
var ErrBoardNotFound = apperr.New(apperr.ErrNotFound, "Board not found")

type Service interface {
	Create(ctx context.Context, ownerID uint64, title string) (*Board, error)
	List(ctx context.Context, ownerID uint64) ([]*Board, error)
	Get(ctx context.Context, ownerID, boardID uint64) (*Board, error)
	Delete(ctx context.Context, ownerID, boardID uint64) error
}

type service struct {
	repo   Repository
	tx     db.TxRunner
	logger *zap.SugaredLogger
}

func NewService(repo Repository, tx db.TxRunner, logger *zap.Logger) Service {
	return &service{repo: repo, tx: tx, logger: logger.Sugar()}
}

func (s *service) Create(ctx context.Context, ownerID uint64, title string) (*Board, error) {
	if err := apperr.CheckText("title", title); err != nil {
		return nil, err
	}
	board := &Board{Title: title, OwnerID: ownerID}
	if err := s.tx.InTx(ctx, func(tx *gorm.DB) error {
		return s.repo.Create(tx, board)
	}); err != nil {
		return nil, err
	}
	s.logger.Infow("Board created", "board_id", board.ID, "owner_id", ownerID)
	return board, nil
}

func (s *service) List(ctx context.Context, ownerID uint64) ([]*Board, error) {
	var boards []*Board
	err := s.tx.InTx(ctx, func(tx *gorm.DB) error {
		var err error
		boards, err = s.repo.ListByOwner(tx, ownerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if boards == nil {
		boards = []*Board{}
	}
	return boards, nil
}

func (s *service) Get(ctx context.Context, ownerID, boardID uint64) (*Board, error) {
	var board *Board
	err := s.tx.InTx(ctx, func(tx *gorm.DB) error {
		var err error
		board, err = s.repo.GetOwned(tx, boardID, ownerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, ErrBoardNotFound
	}
	return board, nil
}

func (s *service) Delete(ctx context.Context, ownerID, boardID uint64) error {
	err := s.tx.InTx(ctx, func(tx *gorm.DB) error {
		deleted, err := s.repo.DeleteOwned(tx, boardID, ownerID)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrBoardNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Infow("Board deleted", "board_id", boardID, "owner_id", ownerID)
	return nil
}
