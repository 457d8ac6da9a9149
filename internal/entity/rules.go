package entity

// Rule decides whether a piece of the given color may go from start to end.
type Rule func(color Color, start, end Coordinate) bool

var rules = map[Kind]Rule{
	Pawn: pawnRule,
}

// hasRule - reports whether pieces of kind have a movement rule.
func hasRule(kind Kind) bool {
	_, ok := rules[kind]
	return ok
}

// pawnRule only checks a single step forward; file, occupancy and captures are not considered.
func pawnRule(color Color, start, end Coordinate) bool {
	return end.Rank == start.Rank+color.Forward()
}
