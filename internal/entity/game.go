package entity

import "time"

type Game struct {
	ID        string    `json:"id"`
	Board     *Board    `json:"board"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewGame(id string) *Game {
	now := time.Now().UTC()

	return &Game{
		ID:        id,
		Board:     NewBoard(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone - returns a copy that shares no mutable state with the original.
func (that *Game) Clone() *Game {
	clone := *that
	if that.Board != nil {
		clone.Board = that.Board.Clone()
	}
	return &clone
}
