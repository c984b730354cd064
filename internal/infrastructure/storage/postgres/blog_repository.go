package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"blogkeeper/internal/domain/blog"
)

type BlogRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewBlogRepository(db *Storage, log *slog.Logger) *BlogRepository {
	return &BlogRepository{
		db:  db,
		log: log,
	}
}

func (r *BlogRepository) Create(ctx context.Context, b blog.Blog) error {
	_, err := r.db.Pool().Exec(ctx,
		`INSERT INTO blogs (id, title, content, author, created_at) VALUES ($1, $2, $3, $4, $5)`,
		b.ID, b.Title, b.Content, b.Author, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert blog: %w", err)
	}
	return nil
}

func (r *BlogRepository) List(ctx context.Context) ([]blog.Blog, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, title, content, author, created_at FROM blogs ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("select blogs: %w", err)
	}

	blogs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (blog.Blog, error) {
		var b blog.Blog
		err := row.Scan(&b.ID, &b.Title, &b.Content, &b.Author, &b.CreatedAt)
		return b, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan blogs: %w", err)
	}
	return blogs, nil
}
