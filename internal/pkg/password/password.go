// Package password hashes staff passwords with bcrypt.
package password

import (
	"errors"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrPasswordTooShort = errors.New("password too short")
)

const (
	DefaultCost = bcrypt.DefaultCost
	// MinLength matches the login form rule.
	MinLength = 8
	// bcrypt ignores input past 72 bytes
	maxLength = 72
)

var (
	dummyOnce sync.Once
	dummyHash []byte
)

func HashPassword(plain string) (string, error) {
	switch {
	case plain == "":
		return "", ErrInvalidPassword
	case len(plain) < MinLength:
		return "", ErrPasswordTooShort
	case len(plain) > maxLength:
		return "", ErrInvalidPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), DefaultCost)
	if err != nil {
		return "", errors.Join(ErrHashingFailed, err)
	}
	return string(hashed), nil
}

func ComparePassword(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrComparisonFailed
	}
	return err
}

// CompareDummy burns the same bcrypt work as a real comparison. Call it
// when the account does not exist so response timing does not reveal
// which emails are registered.
func CompareDummy(plain string) {
	dummyOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(plain))
}
