package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/linkhoard/bookmark-service/internal/bookmark/domain"
)

// Querier is the slice of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db Querier
}

func NewPostgresRepository(db Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const bookmarkColumns = "id, user_id, title, url, description, is_favorite, created_at, updated_at"

func (r *PostgresRepository) Create(ctx context.Context, b *domain.Bookmark) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO bookmarks (id, user_id, title, url, description, is_favorite, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, b.ID, b.UserID, b.Title, b.URL, b.Description, b.IsFavorite, b.CreatedAt, b.UpdatedAt)

	return err
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Bookmark, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM bookmarks
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2;
	`, bookmarkColumns)

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	defer rows.Close()

	var bookmarks []domain.Bookmark
	for rows.Next() {
		var b domain.Bookmark
		if err := scanBookmark(rows, &b); err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, b)
	}

	return bookmarks, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID, id string) (*domain.Bookmark, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM bookmarks
		WHERE id = $1 AND user_id = $2
		LIMIT 1;
	`, bookmarkColumns)

	var b domain.Bookmark
	err := scanBookmark(r.db.QueryRow(ctx, query, id, userID), &b)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bookmark: %w", err)
	}

	return &b, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) (*domain.Bookmark, error) {
	query := fmt.Sprintf(`
		DELETE FROM bookmarks
		WHERE id = $1 AND user_id = $2
		RETURNING %s;
	`, bookmarkColumns)

	var b domain.Bookmark
	err := scanBookmark(r.db.QueryRow(ctx, query, id, userID), &b)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to delete bookmark: %w", err)
	}

	return &b, nil
}

func (r *PostgresRepository) SetFavorite(ctx context.Context, userID, id string, favorite bool) (*domain.Bookmark, error) {
	query := fmt.Sprintf(`
		UPDATE bookmarks
		SET is_favorite = $3, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING %s;
	`, bookmarkColumns)

	var b domain.Bookmark
	err := scanBookmark(r.db.QueryRow(ctx, query, id, userID, favorite), &b)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update bookmark: %w", err)
	}

	return &b, nil
}

func scanBookmark(row pgx.Row, b *domain.Bookmark) error {
	return row.Scan(&b.ID, &b.UserID, &b.Title, &b.URL, &b.Description,
		&b.IsFavorite, &b.CreatedAt, &b.UpdatedAt)
}
