package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/chess-backend/internal/apperror"
	"github.com/rocketscienceinc/chess-backend/internal/chess"
	"github.com/rocketscienceinc/chess-backend/internal/entity"
)

type GameService interface {
	CreateGame(ctx context.Context) (*entity.Game, error)
	EnsureGame(ctx context.Context, id string) (*entity.Game, error)
	GetGameByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteGame(ctx context.Context, id string) error

	AttemptMove(ctx context.Context, gameID string, start, end entity.Coordinate) (chess.Outcome, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type gameService struct {
	logger *slog.Logger

	gameRepo gameRepo
	locker   *gameLocker
}

func NewGameService(logger *slog.Logger, gameRepo gameRepo) GameService {
	return &gameService{
		logger:   logger.With("component", "game_service"),
		gameRepo: gameRepo,
		locker:   newGameLocker(),
	}
}

func (that *gameService) CreateGame(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame(uuid.NewString())

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game in storage: %w", err)
	}

	that.logger.Info("game created", "game_id", game.ID)

	return game, nil
}

// EnsureGame - returns the game with id, creating it with the initial layout if it does not exist.
func (that *gameService) EnsureGame(ctx context.Context, id string) (*entity.Game, error) {
	unlock := that.locker.Lock(id)
	defer unlock()

	game, err := that.gameRepo.GetByID(ctx, id)
	if err == nil {
		return game, nil
	}

	if !errors.Is(err, apperror.ErrGameNotFound) {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	game = entity.NewGame(id)
	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game in storage: %w", err)
	}

	that.logger.Info("game created", "game_id", id)

	return game, nil
}

func (that *gameService) GetGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}

	return game, nil
}

func (that *gameService) DeleteGame(ctx context.Context, id string) error {
	unlock := that.locker.Lock(id)
	defer unlock()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// AttemptMove - loads the game, tries the move and stores the board if it changed.
// Moves on the same game are applied one at a time.
func (that *gameService) AttemptMove(ctx context.Context, gameID string, start, end entity.Coordinate) (chess.Outcome, error) {
	log := that.logger.With("method", "AttemptMove", "game_id", gameID, "from", start.String(), "to", end.String())

	unlock := that.locker.Lock(gameID)
	defer unlock()

	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return chess.Invalid, fmt.Errorf("failed to get game by id: %w", err)
	}

	if game.Board == nil {
		return chess.Invalid, fmt.Errorf("%w: game %s has no board", apperror.ErrMalformedBoard, gameID)
	}

	state := chess.Restore(game.Board)

	outcome, err := state.AttemptMove(start, end)
	if err != nil {
		log.Debug("move rejected", "error", err)
		return chess.Invalid, err
	}

	if outcome != chess.Success {
		log.Debug("invalid move")
		return outcome, nil
	}

	game.Board = state.Snapshot()
	game.UpdatedAt = time.Now().UTC()

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return chess.Invalid, fmt.Errorf("failed to update game: %w", err)
	}

	log.Info("move applied")

	return outcome, nil
}
