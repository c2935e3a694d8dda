package sieve

// State tracks the pipe of a single generation.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_CREATED        = State(0) // CREATED
	STATE_FILTER_RUNNING = State(1) // FILTER_RUNNING
	STATE_FILTER_DONE    = State(2) // FILTER_DONE
	STATE_DRAINED        = State(3) // DRAINED
	STATE_CLOSED         = State(4) // CLOSED
)
