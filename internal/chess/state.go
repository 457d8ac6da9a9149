package chess

import (
	"fmt"

	"github.com/rocketscienceinc/chess-backend/internal/entity"
)

type Outcome int

const (
	Invalid Outcome = iota
	Success
)

func (that Outcome) String() string {
	if that == Success {
		return "Move successful"
	}
	return "Invalid move"
}

// GameState owns the live board of a single game. It is not safe for concurrent use.
type GameState struct {
	board    *entity.Board
	executor *MoveExecutor
}

// NewGameState - starts a game from the initial layout.
func NewGameState() *GameState {
	return Restore(entity.NewBoard())
}

// Restore - resumes a game from a stored board. The board is owned by the state afterwards.
func Restore(board *entity.Board) *GameState {
	return &GameState{
		board:    board,
		executor: NewMoveExecutor(board),
	}
}

// AttemptMove - tries to move the piece on start to end.
// Empty sources and rejected deltas are Invalid; only out of range coordinates return an error.
func (that *GameState) AttemptMove(start, end entity.Coordinate) (Outcome, error) {
	moved, err := that.executor.Execute(start, end)
	if err != nil {
		return Invalid, fmt.Errorf("failed to execute move %s-%s: %w", start, end, err)
	}

	if !moved {
		return Invalid, nil
	}

	return Success, nil
}

// Snapshot - returns a copy of the board.
func (that *GameState) Snapshot() *entity.Board {
	return that.board.Clone()
}
