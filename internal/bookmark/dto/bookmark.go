package dto

import (
	"time"

	"github.com/linkhoard/bookmark-service/internal/bookmark/domain"
)

type CreateBookmarkInput struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	IsFavorite  bool   `json:"is_favorite"`
}

type SetFavoriteInput struct {
	BookmarkID string `json:"bookmark_id"`
	IsFavorite bool   `json:"is_favorite"`
}

type BookmarkOutput struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	IsFavorite  bool      `json:"is_favorite"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewBookmarkOutput(b *domain.Bookmark) BookmarkOutput {
	return BookmarkOutput{
		ID:          b.ID,
		UserID:      b.UserID,
		Title:       b.Title,
		URL:         b.URL,
		Description: b.Description,
		IsFavorite:  b.IsFavorite,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
