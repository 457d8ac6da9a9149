package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/chess-backend/internal/apperror"
)

func at(file, rank int) Coordinate {
	return Coordinate{File: file, Rank: rank}
}

func TestNewBoard(t *testing.T) {
	// Given: a new board
	board := NewBoard()

	// Then: only the two pawn ranks are occupied
	for rank := range Size {
		for file := range Size {
			piece, err := board.PieceAt(at(file, rank))
			require.NoError(t, err)

			switch rank {
			case 1:
				assert.Equal(t, NewPiece(Pawn, White), piece)
			case 6:
				assert.Equal(t, NewPiece(Pawn, Black), piece)
			default:
				assert.Nil(t, piece, "cell %s", at(file, rank))
			}
		}
	}
}

func TestBoard_PieceAt_OutOfRange(t *testing.T) {
	board := NewBoard()

	for _, c := range []Coordinate{at(-1, 0), at(0, -1), at(8, 0), at(0, 8)} {
		// When: reading outside the grid
		piece, err := board.PieceAt(c)

		// Then: ErrOutOfRange is returned
		require.ErrorIs(t, err, apperror.ErrOutOfRange)
		assert.Nil(t, piece)
	}
}

func TestBoard_Move(t *testing.T) {
	t.Run("Empty source is rejected without mutation", func(t *testing.T) {
		// Given: a new board and its copy
		board := NewBoard()
		before := board.Clone()

		for rank := range Size {
			for file := range Size {
				if rank == 1 || rank == 6 {
					continue
				}

				// When: moving from an empty cell
				ok, err := board.Move(at(file, rank), at(file, (rank+1)%Size))

				// Then: the move fails and the board is unchanged
				require.NoError(t, err)
				assert.False(t, ok)
			}
		}

		assert.Equal(t, before, board)
	})

	t.Run("White pawn steps forward", func(t *testing.T) {
		// Given: a white pawn on a new board
		board := NewBoard()

		// When: it moves one rank up
		ok, err := board.Move(at(4, 1), at(4, 2))

		// Then: it lands on the destination and the source is empty
		require.NoError(t, err)
		assert.True(t, ok)

		piece, _ := board.PieceAt(at(4, 2))
		assert.Equal(t, NewPiece(Pawn, White), piece)
		piece, _ = board.PieceAt(at(4, 1))
		assert.Nil(t, piece)
	})

	t.Run("Illegal deltas leave the board unchanged", func(t *testing.T) {
		board := NewBoard()
		before := board.Clone()

		for _, end := range []Coordinate{at(2, 3), at(2, 0), at(3, 1), at(3, 3), at(2, 1)} {
			// When: the white pawn on c2 tries a non forward-one move
			ok, err := board.Move(at(2, 1), end)

			// Then: the move fails
			require.NoError(t, err)
			assert.False(t, ok, "move to %s", end)
		}

		assert.Equal(t, before, board)
	})

	t.Run("Black pawn mirrors white", func(t *testing.T) {
		board := NewBoard()

		ok, err := board.Move(at(6, 6), at(6, 7))
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = board.Move(at(6, 6), at(6, 5))
		require.NoError(t, err)
		assert.True(t, ok)

		piece, _ := board.PieceAt(at(6, 5))
		assert.Equal(t, NewPiece(Pawn, Black), piece)
	})

	t.Run("Occupied destination is overwritten", func(t *testing.T) {
		// Given: a white pawn directly behind a black pawn
		board := emptyBoard()
		require.NoError(t, board.place(at(3, 4), NewPiece(Pawn, White)))
		require.NoError(t, board.place(at(3, 5), NewPiece(Pawn, Black)))

		// When: the white pawn steps onto the black one
		ok, err := board.Move(at(3, 4), at(3, 5))

		// Then: the black pawn is gone
		require.NoError(t, err)
		assert.True(t, ok)

		piece, _ := board.PieceAt(at(3, 5))
		assert.Equal(t, NewPiece(Pawn, White), piece)
		piece, _ = board.PieceAt(at(3, 4))
		assert.Nil(t, piece)
	})

	t.Run("Out of range coordinates are errors", func(t *testing.T) {
		board := NewBoard()
		before := board.Clone()

		ok, err := board.Move(at(0, 1), at(0, 8))
		require.ErrorIs(t, err, apperror.ErrOutOfRange)
		assert.False(t, ok)

		ok, err = board.Move(at(-1, 1), at(0, 2))
		require.ErrorIs(t, err, apperror.ErrOutOfRange)
		assert.False(t, ok)

		assert.Equal(t, before, board)
	})

	t.Run("Pieces without a rule stay put", func(t *testing.T) {
		board := emptyBoard()
		require.NoError(t, board.place(at(0, 0), NewPiece(Rook, White)))

		ok, err := board.Move(at(0, 0), at(0, 1))
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestBoard_Clone(t *testing.T) {
	board := NewBoard()
	clone := board.Clone()

	_, err := clone.Move(at(0, 1), at(0, 2))
	require.NoError(t, err)

	piece, _ := board.PieceAt(at(0, 1))
	assert.NotNil(t, piece)
}

func TestBoard_Rows(t *testing.T) {
	board := NewBoard()
	require.NoError(t, board.place(at(4, 0), NewPiece(King, White)))

	expected := []string{
		"........",
		"pppppppp",
		"........",
		"........",
		"........",
		"........",
		"PPPPPPPP",
		"....K...",
	}

	assert.Equal(t, expected, board.Rows())
}

func TestBoard_JSON(t *testing.T) {
	t.Run("Board survives encoding", func(t *testing.T) {
		// Given: a board after one move
		board := NewBoard()
		_, err := board.Move(at(0, 1), at(0, 2))
		require.NoError(t, err)

		// When: it is encoded and decoded
		data, err := json.Marshal(board)
		require.NoError(t, err)

		var decoded Board
		require.NoError(t, json.Unmarshal(data, &decoded))

		// Then: the grids are equal
		assert.Equal(t, board, &decoded)
	})

	t.Run("Malformed rows are rejected", func(t *testing.T) {
		inputs := []string{
			`"PPPPPPPP"`,
			`["........"]`,
			`["........","........","........","........","........","........","........","......."]`,
			`["........","........","........","........","........","........","........","...x...."]`,
		}

		for _, input := range inputs {
			var board Board
			err := json.Unmarshal([]byte(input), &board)
			require.ErrorIs(t, err, apperror.ErrMalformedBoard, input)
		}
	})
}
