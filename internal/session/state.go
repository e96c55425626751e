package session

// State is the game state of a session.
type State int

const (
	// NotStarted: the countdown waits for the first command.
	NotStarted State = iota
	// Running: the countdown is ticking.
	Running
	// Won: the malicious file was removed in time.
	Won
	// Lost: the countdown reached zero.
	Lost
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// Over reports whether s is terminal. Only Reset leaves a terminal state.
func (s State) Over() bool {
	return s == Won || s == Lost
}
