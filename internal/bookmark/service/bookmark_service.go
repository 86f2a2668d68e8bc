package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/linkhoard/bookmark-service/internal/bookmark/domain"
	"github.com/linkhoard/bookmark-service/internal/bookmark/dto"
	apperror "github.com/linkhoard/bookmark-service/internal/errors"
)

// defaultListLimit caps how many bookmarks a single list call returns.
const defaultListLimit = 10

type BookmarkService struct {
	repo domain.BookmarkRepository
}

func NewBookmarkService(repo domain.BookmarkRepository) *BookmarkService {
	return &BookmarkService{repo: repo}
}

func (s *BookmarkService) Create(ctx context.Context, userID string, input dto.CreateBookmarkInput) (*domain.Bookmark, error) {
	if input.Title == "" || input.URL == "" {
		return nil, apperror.ErrTitleAndURLRequired
	}

	now := time.Now()

	bookmark := &domain.Bookmark{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       input.Title,
		URL:         input.URL,
		Description: input.Description,
		IsFavorite:  input.IsFavorite,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, bookmark); err != nil {
		return nil, err
	}

	return bookmark, nil
}

func (s *BookmarkService) List(ctx context.Context, userID string) ([]domain.Bookmark, error) {
	return s.repo.ListByUser(ctx, userID, defaultListLimit)
}

func (s *BookmarkService) Get(ctx context.Context, userID, id string) (*domain.Bookmark, error) {
	bookmark, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if bookmark == nil {
		return nil, apperror.ErrBookmarkNotFound
	}
	return bookmark, nil
}

func (s *BookmarkService) Delete(ctx context.Context, userID, id string) (*domain.Bookmark, error) {
	bookmark, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if bookmark == nil {
		return nil, apperror.ErrBookmarkNotFound
	}
	return bookmark, nil
}

func (s *BookmarkService) SetFavorite(ctx context.Context, userID string, input dto.SetFavoriteInput) (*domain.Bookmark, error) {
	bookmark, err := s.repo.SetFavorite(ctx, userID, input.BookmarkID, input.IsFavorite)
	if err != nil {
		return nil, err
	}
	if bookmark == nil {
		return nil, apperror.ErrBookmarkNotFound
	}
	return bookmark, nil
}
