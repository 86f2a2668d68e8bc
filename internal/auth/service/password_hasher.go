package service

import (
	"errors"

	autherror "github.com/linkhoard/bookmark-service/internal/errors"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implements domain.PasswordHasher on top of bcrypt. The cost
// is fixed at construction; bcrypt salts every hash, so hashing the same
// password twice yields different strings.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *BcryptHasher) Verify(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		// Anything else means the stored hash is not a bcrypt hash.
		return false, autherror.ErrMalformedHash
	}
}
