package entity

// Cell - the owner of a single board cell. The two non-empty values double
// as the player identities, so a Cell also says whose turn it is.
type Cell uint8

const (
	Empty Cell = iota
	Human
	Automaton
)

// Opponent - returns the other player. Empty has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case Human:
		return Automaton
	case Automaton:
		return Human
	default:
		return Empty
	}
}

func (that Cell) IsPlayer() bool {
	return that == Human || that == Automaton
}

func (that Cell) String() string {
	switch that {
	case Human:
		return "human"
	case Automaton:
		return "automaton"
	default:
		return "empty"
	}
}
