package entity

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/chess-backend/internal/apperror"
)

const (
	whitePawnRank = 1
	blackPawnRank = 6
)

// Board is an 8x8 grid indexed [rank][file]. A nil cell is empty.
type Board struct {
	grid [Size][Size]*Piece
}

// NewBoard - returns the starting layout: white pawns on rank 1, black pawns on rank 6.
func NewBoard() *Board {
	board := &Board{}

	for file := range Size {
		board.grid[whitePawnRank][file] = NewPiece(Pawn, White)
		board.grid[blackPawnRank][file] = NewPiece(Pawn, Black)
	}

	return board
}

// emptyBoard - returns a board without pieces.
func emptyBoard() *Board {
	return &Board{}
}

func (that *Board) PieceAt(at Coordinate) (*Piece, error) {
	if !at.Valid() {
		return nil, fmt.Errorf("%w: %s", apperror.ErrOutOfRange, at)
	}

	return that.grid[at.Rank][at.File], nil
}

// place - puts piece on the cell, replacing any occupant. A nil piece clears the cell.
func (that *Board) place(at Coordinate, piece *Piece) error {
	if !at.Valid() {
		return fmt.Errorf("%w: %s", apperror.ErrOutOfRange, at)
	}

	that.grid[at.Rank][at.File] = piece

	return nil
}

// Move - relocates the piece on start to end if its rule allows it.
// The destination occupant is overwritten without any capture bookkeeping.
func (that *Board) Move(start, end Coordinate) (bool, error) {
	if !start.Valid() {
		return false, fmt.Errorf("%w: start %s", apperror.ErrOutOfRange, start)
	}

	if !end.Valid() {
		return false, fmt.Errorf("%w: end %s", apperror.ErrOutOfRange, end)
	}

	piece := that.grid[start.Rank][start.File]
	if piece == nil {
		return false, nil
	}

	if !piece.CanMove(start, end) {
		return false, nil
	}

	that.grid[end.Rank][end.File] = piece
	that.grid[start.Rank][start.File] = nil

	return true, nil
}

// Clone - returns an independent copy. Pieces are immutable and shared.
func (that *Board) Clone() *Board {
	clone := *that
	return &clone
}

// Rows - renders the board from rank 7 down to rank 0, one character per file.
func (that *Board) Rows() []string {
	rows := make([]string, 0, Size)

	for rank := Size - 1; rank >= 0; rank-- {
		row := make([]byte, Size)
		for file := range Size {
			row[file] = emptyNotation
			if piece := that.grid[rank][file]; piece != nil {
				row[file] = piece.Notation()
			}
		}
		rows = append(rows, string(row))
	}

	return rows
}

// BoardFromRows - parses the output of Rows.
func BoardFromRows(rows []string) (*Board, error) {
	if len(rows) != Size {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", apperror.ErrMalformedBoard, Size, len(rows))
	}

	board := emptyBoard()
	for i, row := range rows {
		if len(row) != Size {
			return nil, fmt.Errorf("%w: row %d has %d cells", apperror.ErrMalformedBoard, i, len(row))
		}

		rank := Size - 1 - i
		for file := range Size {
			piece, err := pieceFromNotation(row[file])
			if err != nil {
				return nil, err
			}
			board.grid[rank][file] = piece
		}
	}

	return board, nil
}

func (that *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.Rows())
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var rows []string
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrMalformedBoard, err)
	}

	board, err := BoardFromRows(rows)
	if err != nil {
		return err
	}

	that.grid = board.grid

	return nil
}
