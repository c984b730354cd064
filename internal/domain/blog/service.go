package blog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Sealer protects content at rest.
type Sealer interface {
	Encrypt(plaintext []byte) (string, error)
	Decrypt(token string) ([]byte, error)
}

type Servicer interface {
	Create(ctx context.Context, author string, entry Entry) (Blog, error)
	List(ctx context.Context) ([]Entry, error)
	ListRaw(ctx context.Context) ([]Blog, error)
}

type Service struct {
	repo   Repository
	sealer Sealer
	log    *slog.Logger
	now    func() time.Time
}

// NewService stores content as given when sealer is nil.
func NewService(repo Repository, sealer Sealer, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		sealer: sealer,
		log:    log,
		now:    time.Now,
	}
}

func (s *Service) Encrypted() bool {
	return s.sealer != nil
}

func (s *Service) Create(ctx context.Context, author string, entry Entry) (Blog, error) {
	content := entry.Content
	if s.sealer != nil {
		sealed, err := s.sealer.Encrypt([]byte(entry.Content))
		if err != nil {
			return Blog{}, fmt.Errorf("encrypt content: %w", err)
		}
		content = sealed
	}

	b := Blog{
		ID:        uuid.New(),
		Title:     entry.Title,
		Content:   content,
		Author:    author,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return Blog{}, fmt.Errorf("save blog: %w", err)
	}

	s.log.Debug("blog created", "blog_id", b.ID.String(), "encrypted", s.sealer != nil)
	return b, nil
}

// List returns entries in insertion order with content decrypted. Content
// written under a key from a previous process fails with ErrUnreadable.
func (s *Service) List(ctx context.Context) ([]Entry, error) {
	blogs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}

	entries := make([]Entry, 0, len(blogs))
	for _, b := range blogs {
		content := b.Content
		if s.sealer != nil {
			plain, err := s.sealer.Decrypt(b.Content)
			if err != nil {
				s.log.Error("decrypt blog", "blog_id", b.ID.String(), "error", err)
				return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
			}
			content = string(plain)
		}
		entries = append(entries, Entry{Title: b.Title, Content: content})
	}
	return entries, nil
}

// ListRaw returns blogs exactly as stored.
func (s *Service) ListRaw(ctx context.Context) ([]Blog, error) {
	blogs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	return blogs, nil
}
