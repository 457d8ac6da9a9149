package dto

import (
	"fmt"

	"github.com/rocketscienceinc/chess-backend/internal/apperror"
	"github.com/rocketscienceinc/chess-backend/internal/entity"
)

// MoveRequest is the body of a move. Keys are pointers so that a missing key is not read as 0.
type MoveRequest struct {
	StartX *int `json:"startX"`
	StartY *int `json:"startY"`
	EndX   *int `json:"endX"`
	EndY   *int `json:"endY"`
}

type MoveResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type GameResponse struct {
	GameID string   `json:"game_id"`
	Board  []string `json:"board,omitempty"`
}

// Coordinates - returns the start and end squares. Range is checked by the board, not here.
func (that *MoveRequest) Coordinates() (entity.Coordinate, entity.Coordinate, error) {
	fields := []struct {
		name  string
		value *int
	}{
		{"startX", that.StartX},
		{"startY", that.StartY},
		{"endX", that.EndX},
		{"endY", that.EndY},
	}

	for _, field := range fields {
		if field.value == nil {
			return entity.Coordinate{}, entity.Coordinate{}, fmt.Errorf("%w: %s", apperror.ErrMissingCoordinate, field.name)
		}
	}

	start := entity.Coordinate{File: *that.StartX, Rank: *that.StartY}
	end := entity.Coordinate{File: *that.EndX, Rank: *that.EndY}

	return start, end, nil
}

func NewGameResponse(game *entity.Game) GameResponse {
	return GameResponse{
		GameID: game.ID,
		Board:  game.Board.Rows(),
	}
}
