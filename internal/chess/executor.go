package chess

import "github.com/rocketscienceinc/chess-backend/internal/entity"

// MoveExecutor applies moves to a board. Turn order or check detection belong here once they exist.
type MoveExecutor struct {
	board *entity.Board
}

func NewMoveExecutor(board *entity.Board) *MoveExecutor {
	return &MoveExecutor{board: board}
}

func (that *MoveExecutor) Execute(start, end entity.Coordinate) (bool, error) {
	return that.board.Move(start, end)
}
