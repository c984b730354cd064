package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/exp/slog"

	"blogkeeper/internal/app/server"
	"blogkeeper/internal/app/server/config"
	"blogkeeper/internal/utils/logger"
)

func main() {
	conf := config.MustLoad()
	log := logger.WithLevel(conf.Env, conf.Logger.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := server.Build(ctx, conf, log)
	if err != nil {
		log.Error("failed to start", slog.Any("error", err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		log.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
	log.Info("server stopped")
}
