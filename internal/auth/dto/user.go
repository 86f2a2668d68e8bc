package dto

import (
	"time"

	"github.com/linkhoard/bookmark-service/internal/auth/domain"
)

// UserOutput is the only user shape that crosses the HTTP boundary; the
// password hash never leaves the service layer.
type UserOutput struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserOutput(u *domain.User) UserOutput {
	return UserOutput{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
