package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/chess-backend/internal/config"
	"github.com/rocketscienceinc/chess-backend/internal/repository"
	"github.com/rocketscienceinc/chess-backend/internal/repository/storage"
	"github.com/rocketscienceinc/chess-backend/internal/service"
	"github.com/rocketscienceinc/chess-backend/transport/rest"
	"github.com/rocketscienceinc/chess-backend/transport/websocket"
)

const shutdownTimeout = 5 * time.Second

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gameRepo, closeStorage, err := newGameRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if err := closeStorage(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	gameService := service.NewGameService(logger, gameRepo)

	if conf.DefaultGameID != "" {
		if _, err = gameService.EnsureGame(ctx, conf.DefaultGameID); err != nil {
			return fmt.Errorf("could not prepare default game: %w", err)
		}
	}

	httpServer := rest.New(logger, conf, gameService)
	websocket.New(logger, gameService).Register(ctx, httpServer.Router())

	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort, "storage", conf.Storage)
		httpErrCh <- httpServer.Start(conf.HTTPPort)
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err = httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return nil
}

func newGameRepository(ctx context.Context, conf *config.Config) (repository.GameRepository, func() error, error) {
	if conf.Storage == config.StorageMemory {
		return repository.NewMemoryGameRepository(), func() error { return nil }, nil
	}

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewGameRepository(redisStorage, conf.GameTTL), redisStorage.Close, nil
}
