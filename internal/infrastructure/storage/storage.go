package storage

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"blogkeeper/internal/app/server/config"
	"blogkeeper/internal/domain/blog"
	"blogkeeper/internal/domain/user"
	"blogkeeper/internal/infrastructure/storage/memory"
	"blogkeeper/internal/infrastructure/storage/postgres"
	"blogkeeper/internal/infrastructure/storage/sqlite"
)

// Backend is the connection behind a set of repositories.
type Backend interface {
	Ping(ctx context.Context) error
	Close() error
}

// Repositories is the credential store handed to the domain services.
type Repositories struct {
	Users user.Repository
	Blogs blog.Repository
	// Kind names the backend, one of config.Storage*.
	Kind string
	Backend
}

type memoryBackend struct{}

func (memoryBackend) Ping(context.Context) error { return nil }

func (memoryBackend) Close() error { return nil }

// Open selects the backend named by cfg.Storage.
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Repositories, error) {
	log = log.With(slog.String("storage", cfg.Storage))

	switch cfg.Storage {
	case config.StorageMemory:
		log.Warn("in-memory storage: users and blogs are lost on restart")
		return &Repositories{
			Users:   memory.NewUserRepository(),
			Blogs:   memory.NewBlogRepository(),
			Kind:    config.StorageMemory,
			Backend: memoryBackend{},
		}, nil

	case config.StoragePostgres:
		db, err := postgres.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &Repositories{
			Users:   postgres.NewUserRepository(db, log),
			Blogs:   postgres.NewBlogRepository(db, log),
			Kind:    config.StoragePostgres,
			Backend: db,
		}, nil

	case config.StorageSQLite:
		db, err := sqlite.New(ctx, cfg.DB.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Repositories{
			Users:   sqlite.NewUserRepository(db, log),
			Blogs:   sqlite.NewBlogRepository(db, log),
			Kind:    config.StorageSQLite,
			Backend: db,
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
}
