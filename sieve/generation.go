package sieve

import (
	"github.com/google/uuid"
)

// Generation is one round of the sieve: the candidates handed to a filter,
// the prime it reported, and the candidates it forwarded.
type Generation struct {
	ID     uuid.UUID   // Unique id, for log correlation.
	Number int         // 1 based sequence number.
	Prime  int         // Head of Input.
	Input  *Candidates // Candidates handed to the filter.
	Output *Candidates // Candidates drained from the pipe, nil on the final generation.
	State  State       // Pipe lifecycle.
}

// Final reports if the generation ended the pipeline by reaching the bound.
func (g *Generation) Final() bool {
	return g.Output == nil
}

// advance moves the pipe lifecycle forward. States never go backwards.
func (g *Generation) advance(state State) {
	if state > g.State {
		g.State = state
	}
}
