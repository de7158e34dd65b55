package task

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

// fakeBoards maps board id to owner id.
type fakeBoards map[uint64]uint64

func (f fakeBoards) LockOwned(_ *gorm.DB, boardID, ownerID uint64) (bool, error) {
	owner, ok := f[boardID]
	return ok && owner == ownerID, nil
}

type fakeRepo struct {
	mu     sync.Mutex
	tasks  map[uint64]Task
	nextID uint64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{tasks: map[uint64]Task{}}
}

func (f *fakeRepo) Create(_ *gorm.DB, t *Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	t.ID = f.nextID
	f.tasks[t.ID] = *t
	return nil
}

func (f *fakeRepo) ListByBoard(_ *gorm.DB, ownerID, boardID uint64) ([]*Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*Task, 0)
	for _, t := range f.tasks {
		if t.OwnerID == ownerID && t.BoardID == boardID {
			t := t
			out = append(out, &t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f *fakeRepo) UpdateOwned(_ *gorm.DB, taskID, ownerID uint64, in Input) (*Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tasks[taskID]
	if !ok || t.OwnerID != ownerID {
		return nil, nil
	}
	t.Content, t.Column, t.Position, t.BoardID = in.Content, in.Column, in.Position, in.BoardID
	f.tasks[taskID] = t
	return &t, nil
}

func (f *fakeRepo) DeleteOwned(_ *gorm.DB, taskID, ownerID uint64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tasks[taskID]
	if !ok || t.OwnerID != ownerID {
		return false, nil
	}
	delete(f.tasks, taskID)
	return true, nil
}
