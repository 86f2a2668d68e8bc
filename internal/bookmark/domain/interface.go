package domain

//go:generate mockgen -destination=../../mocks/mock_bookmark_repository.go -package=mocks github.com/linkhoard/bookmark-service/internal/bookmark/domain BookmarkRepository

import "context"

// BookmarkRepository persists bookmarks. Every read and write is keyed by
// the owning user id; a bookmark id belonging to someone else behaves as if
// it did not exist.
type BookmarkRepository interface {
	Create(ctx context.Context, b *Bookmark) error
	ListByUser(ctx context.Context, userID string, limit int) ([]Bookmark, error)
	GetByID(ctx context.Context, userID, id string) (*Bookmark, error)
	Delete(ctx context.Context, userID, id string) (*Bookmark, error)
	SetFavorite(ctx context.Context, userID, id string, favorite bool) (*Bookmark, error)
}
