package user

import (
	"context"
	"sync"

	"gorm.io/gorm"
)

type inlineTx struct{}

func (inlineTx) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type fakeRepo struct {
	mu        sync.Mutex
	accounts  map[string]*Account
	nextID    uint64
	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{accounts: map[string]*Account{}}
}

func (f *fakeRepo) GetByUsername(_ *gorm.DB, username string) (*Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	acc, ok := f.accounts[username]
	if !ok {
		return nil, nil
	}
	cp := *acc
	return &cp, nil
}

func (f *fakeRepo) Create(_ *gorm.DB, account *Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	account.ID = f.nextID
	cp := *account
	f.accounts[account.Username] = &cp
	return nil
}

type fakeLimiter struct {
	blocked  map[string]bool
	failures map[string]int
	resets   map[string]int
}

func newFakeLimiter() *fakeLimiter {
	return &fakeLimiter{blocked: map[string]bool{}, failures: map[string]int{}, resets: map[string]int{}}
}

func (f *fakeLimiter) Allow(_ context.Context, username string) error {
	if f.blocked[username] {
		return ErrTooManyLogins
	}
	return nil
}

func (f *fakeLimiter) RecordFailure(_ context.Context, username string) {
	f.failures[username]++
}

func (f *fakeLimiter) Reset(_ context.Context, username string) {
	f.resets[username]++
}
