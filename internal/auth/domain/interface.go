package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/linkhoard/bookmark-service/internal/auth/domain UserRepository,PasswordHasher

import "context"

// UserRepository is the credential store. Lookups return (nil, nil) when no
// row matches so callers can tell "absent" from a transport failure.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
}

// PasswordHasher is a one-way salted hash with constant-time verification.
// Verify reports a mismatch as (false, nil); an error means the stored hash
// itself is unusable.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) (bool, error)
}
