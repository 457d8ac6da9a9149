package rest

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/rocketscienceinc/chess-backend/internal/apperror"
	"github.com/rocketscienceinc/chess-backend/internal/dto"
)

func (that *Server) handleCreateGame(c *fiber.Ctx) error {
	game, err := that.games.CreateGame(c.UserContext())
	if err != nil {
		return that.sendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.GameResponse{GameID: game.ID})
}

func (that *Server) handleGetGame(c *fiber.Ctx) error {
	game, err := that.games.GetGameByID(c.UserContext(), c.Params("gameId"))
	if err != nil {
		return that.sendError(c, err)
	}

	return c.JSON(dto.NewGameResponse(game))
}

func (that *Server) handleDeleteGame(c *fiber.Ctx) error {
	if err := that.games.DeleteGame(c.UserContext(), c.Params("gameId")); err != nil {
		return that.sendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (that *Server) handleMove(c *fiber.Ctx) error {
	return that.move(c, c.Params("gameId"))
}

// handleDefaultMove - plays on the game created at startup, for clients that know no game id.
func (that *Server) handleDefaultMove(c *fiber.Ctx) error {
	return that.move(c, that.defaultGameID)
}

func (that *Server) move(c *fiber.Ctx, gameID string) error {
	var req dto.MoveRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "malformed request body"})
	}

	start, end, err := req.Coordinates()
	if err != nil {
		return that.sendError(c, err)
	}

	outcome, err := that.games.AttemptMove(c.UserContext(), gameID, start, end)
	if err != nil {
		return that.sendError(c, err)
	}

	return c.JSON(dto.MoveResponse{Message: outcome.String()})
}

// sendError - maps service errors to a status code. Internal details stay in the log.
func (that *Server) sendError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperror.ErrMissingCoordinate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperror.ErrOutOfRange):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: apperror.ErrOutOfRange.Error()})
	case errors.Is(err, apperror.ErrGameNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: apperror.ErrGameNotFound.Error()})
	default:
		that.logger.Error("request failed", "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Internal Server Error"})
	}
}
