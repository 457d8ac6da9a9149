package entity

import "fmt"

// Size is the number of files and ranks on the board.
const Size = 8

// Coordinate addresses one board cell. File and Rank are 0-based, rank 0 is white's back rank.
type Coordinate struct {
	File int
	Rank int
}

func (that Coordinate) Valid() bool {
	return that.File >= 0 && that.File < Size && that.Rank >= 0 && that.Rank < Size
}

// String - returns the square in algebraic notation, e.g. "a2".
func (that Coordinate) String() string {
	if !that.Valid() {
		return fmt.Sprintf("(%d,%d)", that.File, that.Rank)
	}

	return fmt.Sprintf("%c%d", 'a'+that.File, that.Rank+1)
}
