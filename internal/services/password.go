package services

import "golang.org/x/crypto/bcrypt"

// PasswordHasher abstracts the credential hashing scheme so nothing
// outside this file touches bcrypt directly.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}

type BcryptHasher struct {
	Cost int // zero means the default cost
}

func (h BcryptHasher) cost() int {
	if h.Cost == 0 {
		return 12
	}
	return h.Cost
}

func (h BcryptHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost())
	return string(b), err
}

// Verify reports whether plain matches digest. A malformed digest
// verifies as false rather than erroring.
func (h BcryptHasher) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
