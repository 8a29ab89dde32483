// hasher.go - Salted password hashing for stored credentials

package hasher

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt" // Password hashing
)

// MaxPasswordBytes is the longest password bcrypt hashes without truncation.
const MaxPasswordBytes = 72

// ErrPasswordTooLong is returned for passwords bcrypt cannot represent without truncation.
var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// Hasher hashes and verifies passwords.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hashed string) bool
}

// Bcrypt is a Hasher with a fixed work factor. Each Hash call draws a fresh salt.
type Bcrypt struct {
	cost int
}

// NewBcrypt returns a Bcrypt hasher for the given cost.
func NewBcrypt(cost int) (*Bcrypt, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &Bcrypt{cost: cost}, nil
}

// Hash returns the encoded hash (algorithm, cost, salt and digest).
func (b *Bcrypt) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches hashed. Malformed hashes never match,
// and neither do passwords longer than MaxPasswordBytes.
func (b *Bcrypt) Verify(plaintext, hashed string) bool {
	if len(plaintext) > MaxPasswordBytes { // bcrypt would only compare the prefix
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}

// Cost returns the configured work factor.
func (b *Bcrypt) Cost() int { return b.cost }
