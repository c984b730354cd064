package sqlite

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"blogkeeper/internal/domain/blog"
)

type BlogRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewBlogRepository(db *Storage, log *slog.Logger) *BlogRepository {
	return &BlogRepository{db: db, log: log}
}

func (r *BlogRepository) Create(ctx context.Context, b blog.Blog) error {
	_, err := r.db.DB().ExecContext(ctx,
		`INSERT INTO blogs (id, title, content, author, created_at) VALUES (?, ?, ?, ?, ?)`,
		b.ID.String(), b.Title, b.Content, b.Author, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert blog: %w", err)
	}
	return nil
}

func (r *BlogRepository) List(ctx context.Context) ([]blog.Blog, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT id, title, content, author, created_at FROM blogs ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("select blogs: %w", err)
	}
	defer rows.Close()

	blogs := make([]blog.Blog, 0)
	for rows.Next() {
		var b blog.Blog
		if err := rows.Scan(&b.ID, &b.Title, &b.Content, &b.Author, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan blog: %w", err)
		}
		blogs = append(blogs, b)
	}
	return blogs, rows.Err()
}
