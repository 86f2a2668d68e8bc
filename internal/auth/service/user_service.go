package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/linkhoard/bookmark-service/internal/auth/domain"
	"github.com/linkhoard/bookmark-service/internal/auth/dto"
	autherror "github.com/linkhoard/bookmark-service/internal/errors"
)

type UserService struct {
	repo   domain.UserRepository
	hasher domain.PasswordHasher
	tokens TokenGenerator
}

func NewUserService(repo domain.UserRepository, hasher domain.PasswordHasher, tokens TokenGenerator) *UserService {
	return &UserService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register creates a credential record. Validation happens before any store
// access, and hashing before the insert, so a failure can never leave a
// partial write behind. The users table's unique constraint is the real
// uniqueness guard; the lookup beforehand only gives the common case a
// friendly answer without burning a bcrypt round.
func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, autherror.ErrEmailAndPasswordRequired
	}

	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        input.Email,
		PasswordHash: hashed,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the password against the stored hash and mints a session
// token. An unknown email is reported as ErrUserNotFound rather than folded
// into ErrInvalidCredentials; the 404/401 split is part of the public
// contract.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (string, *domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return "", nil, autherror.ErrEmailAndPasswordRequired
	}

	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, autherror.ErrUserNotFound
	}

	ok, err := s.hasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return "", nil, autherror.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Authenticate resolves a bearer token to the user it was issued for. A
// subject that no longer maps to a user is unauthenticated, not a server
// error.
func (s *UserService) Authenticate(ctx context.Context, tokenString string) (*domain.User, error) {
	userID, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrInvalidToken
	}

	return user, nil
}
