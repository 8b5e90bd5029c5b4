package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher defines the password hashing contract. Signup hashes, login compares.
type Hasher interface {
	// Hash returns a hashed representation of the password. A fresh random
	// salt parameterized by the work factor is generated per call and
	// embedded in the output.
	Hash(password string) (string, error)

	// Compare checks a plaintext password against a stored hash. A normal
	// mismatch returns (false, nil); a non-nil error means the underlying
	// library failed (e.g. malformed hash) and must be treated as internal.
	Compare(password, hash string) (bool, error)
}

// BcryptHasher implements Hasher using bcrypt.
type BcryptHasher struct {
	cost int
}

// BcryptOption configures the bcrypt hasher.
type BcryptOption func(*BcryptHasher)

// WithCost sets the bcrypt cost parameter (default: 12, range: 4-31).
func WithCost(cost int) BcryptOption {
	return func(h *BcryptHasher) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			h.cost = cost
		}
	}
}

// NewBcryptHasher creates a bcrypt-based password hasher.
func NewBcryptHasher(opts ...BcryptOption) *BcryptHasher {
	h := &BcryptHasher{cost: 12}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Hash implements Hasher.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("password: hash: %w", err)
	}
	return string(hash), nil
}

// Compare implements Hasher. bcrypt performs the constant-time comparison.
func (h *BcryptHasher) Compare(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("password: compare: %w", err)
}
