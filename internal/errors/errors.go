package errors

import (
	"errors"
)

var (
	ErrEmailAndPasswordRequired = errors.New("email and password are required")
	ErrEmailAlreadyInUse        = errors.New("user already exists")
	ErrUserNotFound             = errors.New("user not found")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrInvalidToken             = errors.New("invalid token")
	ErrTokenExpired             = errors.New("token expired")
	ErrMalformedHash            = errors.New("malformed password hash")
	ErrBookmarkNotFound         = errors.New("bookmark not found")
	ErrTitleAndURLRequired      = errors.New("title and url are required")
)
