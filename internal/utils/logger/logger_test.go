package logger

import (
	"bytes"
	"context"
	"testing"

	"golang.org/x/exp/slog"

	"blogkeeper/internal/app/server/config"
	"blogkeeper/internal/utils/logger/handlers/slogpretty"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		env           string
		expectedLevel slog.Level
	}{
		{
			name:          "local environment",
			env:           config.EnvLocal,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "dev environment",
			env:           config.EnvDev,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "prod environment",
			env:           config.EnvProd,
			expectedLevel: slog.LevelInfo,
		},
		{
			name:          "unknown environment",
			env:           "staging",
			expectedLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.env)
			require.NotNil(t, logger)
			ctx := context.Background()
			assert.Equal(t, tt.expectedLevel <= slog.LevelDebug, logger.Enabled(ctx, slog.LevelDebug))
			assert.True(t, logger.Enabled(ctx, slog.LevelInfo))
		})
	}
}

func TestSetupPrettySlog(t *testing.T) {
	logger := setupPrettySlog()
	require.NotNil(t, logger)

	ctx := context.Background()
	assert.True(t, logger.Enabled(ctx, slog.LevelDebug))
}

func TestWithLevel(t *testing.T) {
	ctx := context.Background()

	warnOnly := WithLevel(config.EnvProd, "warn")
	assert.False(t, warnOnly.Enabled(ctx, slog.LevelInfo))
	assert.True(t, warnOnly.Enabled(ctx, slog.LevelWarn))

	prettyError := WithLevel(config.EnvLocal, "error")
	assert.False(t, prettyError.Enabled(ctx, slog.LevelWarn))

	fallback := WithLevel(config.EnvDev, "loud")
	assert.True(t, fallback.Enabled(ctx, slog.LevelDebug))

	unset := WithLevel(config.EnvLocal, "")
	assert.True(t, unset.Enabled(ctx, slog.LevelDebug))

	prodUnset := WithLevel(config.EnvProd, "")
	assert.False(t, prodUnset.Enabled(ctx, slog.LevelDebug))
}

func TestPrettyHandler_Output(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug},
	}.NewPrettyHandler(&buf))

	log.With("component", "test").Info("user registered", "user_id", "42")

	out := buf.String()
	assert.Contains(t, out, "user registered")
	assert.Contains(t, out, `"component": "test"`)
	assert.Contains(t, out, `"user_id": "42"`)
}
