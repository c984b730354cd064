package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/exp/slog"

	"blogkeeper/internal/app/server/api"
	"blogkeeper/internal/app/server/config"
	"blogkeeper/internal/app/server/crypto"
	"blogkeeper/internal/domain/access"
	"blogkeeper/internal/domain/blog"
	"blogkeeper/internal/domain/token"
	"blogkeeper/internal/domain/user"
	"blogkeeper/internal/infrastructure/storage"
)

// App is a fully wired server ready to listen.
type App struct {
	Handler http.Handler
	cfg     *config.Config
	log     *slog.Logger
	closer  io.Closer
}

// Build opens storage and wires the domain services into the HTTP API.
func Build(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	mode, err := access.ParseMode(cfg.Auth.Mode)
	if err != nil {
		return nil, err
	}

	repos, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	sealer, err := newSealer(cfg, log)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	if cfg.EphemeralSecret() {
		log.Warn("TOKEN_SECRET not set; using a per-process secret, tokens expire on restart")
	}
	tokens, err := token.NewService([]byte(cfg.Auth.Secret), cfg.Auth.TokenTTL)
	if err != nil {
		_ = repos.Close()
		return nil, fmt.Errorf("token service: %w", err)
	}

	users := user.NewService(repos.Users, user.NewBcryptHasher(cfg.Auth.BcryptCost), user.NewCredentialValidator(), log)
	blogs := blog.NewService(repos.Blogs, sealer, log)

	gate, err := access.ForMode(mode, users, tokens, log)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	log.Info("access gate configured",
		slog.String("mode", string(mode)),
		slog.Bool("encrypt_blogs", blogs.Encrypted()),
		slog.Duration("token_ttl", tokens.TTL()),
	)

	mux := api.New(api.Services{
		Users:   users,
		Blogs:   blogs,
		Tokens:  tokens,
		Gate:    gate,
		Storage: repos,
	}, api.Options{
		ExposeRaw:   cfg.Server.ExposeRaw,
		StorageKind: repos.Kind,
	}, log)

	return &App{
		Handler: mux,
		cfg:     cfg,
		log:     log,
		closer:  repos,
	}, nil
}

// newSealer returns nil when blog encryption is off.
func newSealer(cfg *config.Config, log *slog.Logger) (blog.Sealer, error) {
	if !cfg.Crypto.EncryptBlogs {
		log.Warn("blog encryption disabled; content is stored as plain text")
		return nil, nil
	}

	var key []byte
	var err error
	if cfg.Crypto.Key != "" {
		key, err = crypto.ParseKey(cfg.Crypto.Key)
	} else {
		key, err = crypto.GenerateKey()
		log.Warn("ENCRYPTION_KEY not set; blogs encrypted now are unreadable after restart")
	}
	if err != nil {
		return nil, fmt.Errorf("encryption key: %w", err)
	}

	c, err := crypto.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("cipher: %w", err)
	}
	return c, nil
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.closer.Close(); err != nil {
			a.log.Error("close storage", slog.Any("error", err))
		}
	}()

	srv := &http.Server{
		Addr:         a.cfg.Server.RunAddress,
		Handler:      a.Handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("server started", slog.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
