package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"blogkeeper/internal/app/server/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{
		Env:     config.EnvLocal,
		Storage: config.StorageMemory,
	}
	cfg.Server.RunAddress = "127.0.0.1:0"
	cfg.Server.ShutdownTimeout = time.Second
	cfg.Auth.Mode = "bearer"
	cfg.Auth.Secret = "test-secret"
	cfg.Auth.TokenTTL = time.Minute
	cfg.Auth.BcryptCost = 4
	cfg.Crypto.EncryptBlogs = true
	return cfg
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{name: "defaults"},
		{name: "fixed key", mutate: func(c *config.Config) {
			c.Crypto.Key = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
		}},
		{name: "plain text blogs", mutate: func(c *config.Config) { c.Crypto.EncryptBlogs = false }},
		{name: "bad key", mutate: func(c *config.Config) { c.Crypto.Key = "abcd" }, wantErr: true},
		{name: "bad mode", mutate: func(c *config.Config) { c.Auth.Mode = "digest" }, wantErr: true},
		{name: "empty secret", mutate: func(c *config.Config) { c.Auth.Secret = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			if tt.mutate != nil {
				tt.mutate(cfg)
			}

			app, err := Build(context.Background(), cfg, discard())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			rec := httptest.NewRecorder()
			app.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestNewSealer_Disabled(t *testing.T) {
	cfg := testConfig()
	cfg.Crypto.EncryptBlogs = false

	sealer, err := newSealer(cfg, discard())

	require.NoError(t, err)
	assert.Nil(t, sealer)
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	app, err := Build(context.Background(), testConfig(), discard())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
