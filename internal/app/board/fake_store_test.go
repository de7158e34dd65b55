package board

import (
	"context"
	"sort"
	"sync"

	"gorm.io/gorm"
)

type inlineTx struct{}

func (inlineTx) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type fakeRepo struct {
	mu     sync.Mutex
	boards map[uint64]Board
	nextID uint64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{boards: map[uint64]Board{}}
}

func (f *fakeRepo) Create(_ *gorm.DB, board *Board) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	board.ID = f.nextID
	f.boards[board.ID] = *board
	return nil
}

func (f *fakeRepo) ListByOwner(_ *gorm.DB, ownerID uint64) ([]*Board, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*Board, 0)
	for _, b := range f.boards {
		if b.OwnerID == ownerID {
			b := b
			out = append(out, &b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRepo) GetOwned(_ *gorm.DB, boardID, ownerID uint64) (*Board, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.boards[boardID]
	if !ok || b.OwnerID != ownerID {
		return nil, nil
	}
	return &b, nil
}

func (f *fakeRepo) LockOwned(tx *gorm.DB, boardID, ownerID uint64) (bool, error) {
	b, err := f.GetOwned(tx, boardID, ownerID)
	return b != nil, err
}

func (f *fakeRepo) DeleteOwned(_ *gorm.DB, boardID, ownerID uint64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.boards[boardID]
	if !ok || b.OwnerID != ownerID {
		return false, nil
	}
	delete(f.boards, boardID)
	return true, nil
}
