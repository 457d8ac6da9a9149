package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/chess-backend/internal/apperror"
)

type Kind string

const (
	Pawn   Kind = "pawn"
	Rook   Kind = "rook"
	Knight Kind = "knight"
	Bishop Kind = "bishop"
	Queen  Kind = "queen"
	King   Kind = "king"
)

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

// Forward - returns the rank delta of a single step towards the opponent.
func (that Color) Forward() int {
	if that == Black {
		return -1
	}
	return 1
}

const emptyNotation = '.'

var kindNotation = map[Kind]byte{
	Pawn:   'P',
	Rook:   'R',
	Knight: 'N',
	Bishop: 'B',
	Queen:  'Q',
	King:   'K',
}

type Piece struct {
	Kind  Kind
	Color Color
}

func NewPiece(kind Kind, color Color) *Piece {
	return &Piece{Kind: kind, Color: color}
}

// CanMove - reports whether the piece may go from start to end according to the rule of its kind.
// Kinds without a rule never move.
func (that *Piece) CanMove(start, end Coordinate) bool {
	rule, ok := rules[that.Kind]
	if !ok {
		return false
	}

	return rule(that.Color, start, end)
}

// Notation - uppercase letter for white, lowercase for black.
func (that *Piece) Notation() byte {
	letter, ok := kindNotation[that.Kind]
	if !ok {
		return '?'
	}

	if that.Color == Black {
		return letter + ('a' - 'A')
	}
	return letter
}

func (that *Piece) String() string {
	return fmt.Sprintf("%s %s", that.Color, that.Kind)
}

func pieceFromNotation(letter byte) (*Piece, error) {
	if letter == emptyNotation {
		return nil, nil
	}

	color := White
	upper := strings.ToUpper(string(letter))
	if upper != string(letter) {
		color = Black
	}

	for kind, notation := range kindNotation {
		if string(notation) == upper {
			return NewPiece(kind, color), nil
		}
	}

	return nil, fmt.Errorf("%w: unknown piece %q", apperror.ErrMalformedBoard, letter)
}
