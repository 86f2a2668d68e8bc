package domain

import "time"

type Bookmark struct {
	ID          string
	UserID      string
	Title       string
	URL         string
	Description string
	IsFavorite  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
