package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/rocketscienceinc/chess-backend/internal/chess"
	"github.com/rocketscienceinc/chess-backend/internal/config"
	"github.com/rocketscienceinc/chess-backend/internal/entity"
)

type gameService interface {
	CreateGame(ctx context.Context) (*entity.Game, error)
	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteGame(ctx context.Context, id string) error

	AttemptMove(ctx context.Context, gameID string, start, end entity.Coordinate) (chess.Outcome, error)
}

type Server struct {
	logger *slog.Logger
	app    *fiber.App

	games         gameService
	defaultGameID string
}

func New(logger *slog.Logger, conf *config.Config, games gameService) *Server {
	server := &Server{
		logger:        logger.With("component", "rest"),
		games:         games,
		defaultGameID: conf.DefaultGameID,
	}

	server.app = fiber.New(fiber.Config{
		AppName:               "chess-backend",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		IdleTimeout:           30 * time.Second,
	})

	server.app.Use(cors.New(cors.Config{
		AllowOrigins: conf.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))
	server.app.Use(server.requestLogger())

	server.app.Get("/ping", server.handlePing)
	server.app.Post("/move", server.handleDefaultMove)

	api := server.app.Group("/api/games")
	api.Post("/", server.handleCreateGame)
	api.Get("/:gameId", server.handleGetGame)
	api.Delete("/:gameId", server.handleDeleteGame)
	api.Post("/:gameId/moves", server.handleMove)

	return server
}

// Router - exposes the app so other transports can mount their routes.
func (that *Server) Router() fiber.Router {
	return that.app
}

// Start - blocks serving HTTP on port until Shutdown is called.
func (that *Server) Start(port string) error {
	if err := that.app.Listen(":" + port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	if err := that.app.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

func (that *Server) requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		started := time.Now()
		err := c.Next()

		that.logger.Debug("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", responseStatus(c, err),
			"duration", time.Since(started),
		)

		return err
	}
}

// responseStatus - the error handler runs after middleware, so a returned error decides the status.
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}

	return fiber.StatusInternalServerError
}
