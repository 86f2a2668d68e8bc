package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/linkhoard/bookmark-service/internal/auth/service TokenGenerator

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	autherror "github.com/linkhoard/bookmark-service/internal/errors"
)

// TokenTTL is the fixed session lifetime. Expiry is a hard cliff: a token is
// rejected the instant it is reached, with no grace window.
const TokenTTL = 7 * 24 * time.Hour

type TokenGenerator interface {
	Issue(userID string) (string, error)
	Verify(tokenString string) (string, error)
}

// TokenService mints and validates HS256-signed session tokens. The signing
// secret is injected once at construction and never re-read.
type TokenService struct {
	secret []byte
}

type sessionClaims struct {
	jwt.RegisteredClaims
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs a token whose subject is the given user id, expiring TokenTTL
// from now. Purely local; never touches I/O.
func (ts *TokenService) Issue(userID string) (string, error) {
	now := time.Now()

	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
}

// Verify checks signature and expiry in a single parse and returns the
// subject user id. Expired tokens surface as ErrTokenExpired; every other
// failure (bad structure, bad signature, missing subject) as ErrInvalidToken.
func (ts *TokenService) Verify(tokenString string) (string, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ts.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", autherror.ErrTokenExpired
		}
		return "", autherror.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", autherror.ErrInvalidToken
	}

	return claims.Subject, nil
}
