package user

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher is the credential store: salted bcrypt hashes with a tunable cost.
type Hasher struct {
	cost      int
	dummyHash []byte
}

func NewHasher(cost int) (*Hasher, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte("taskboard-dummy-password"), cost)
	if err != nil {
		return nil, fmt.Errorf("init hasher: %w", err)
	}
	return &Hasher{cost: cost, dummyHash: dummy}, nil
}

func (h *Hasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches hash. A malformed hash is a
// mismatch.
func (h *Hasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// DummyVerify burns the same bcrypt work as Verify for logins against
// unknown usernames.
func (h *Hasher) DummyVerify(password string) {
	_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(password))
}
