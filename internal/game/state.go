package game

// State is the lifecycle state of a Session.
type State int

const (
	InProgress State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "In Progress"
	case Won:
		return "Won"
	case Lost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether no further guesses are accepted.
func (s State) IsTerminal() bool {
	return s == Won || s == Lost
}
