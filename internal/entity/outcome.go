package entity

// Outcome - the state of a game as read off a board position. It is always
// derived from the cells on demand and never stored next to them.
type Outcome uint8

const (
	InProgress Outcome = iota
	HumanWon
	AutomatonWon
	Draw
)

// IsTerminal - reports whether the game is over.
func (that Outcome) IsTerminal() bool {
	return that != InProgress
}

func (that Outcome) String() string {
	switch that {
	case HumanWon:
		return "human won"
	case AutomatonWon:
		return "automaton won"
	case Draw:
		return "draw"
	default:
		return "in progress"
	}
}
