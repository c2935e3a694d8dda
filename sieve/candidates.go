package sieve

import (
	"iter"
	"slices"
)

const (
	FIRST_CANDIDATE          = 2  // Smallest candidate enumerated.
	CANDIDATES_DEFAULT_LIMIT = 34 // Default capacity, values 2..35.
)

// Candidates is an ordered set of values not yet proven composite,
// bounded by Capacity.
type Candidates struct {
	Capacity int
	Data     []int
}

// NewCandidates creates an empty set holding at most capacity values.
func NewCandidates(capacity int) *Candidates {
	return &Candidates{
		Capacity: capacity,
		Data:     make([]int, 0, capacity),
	}
}

// Enumerate returns the candidates FIRST_CANDIDATE..bound, inclusive.
func Enumerate(bound int, capacity int) (cs *Candidates, err error) {
	if bound < FIRST_CANDIDATE {
		err = ErrBoundInvalid
		return
	}

	if bound-FIRST_CANDIDATE+1 > capacity {
		err = ErrCapacityExceeded
		return
	}

	cs = NewCandidates(capacity)
	for value := FIRST_CANDIDATE; value <= bound; value++ {
		cs.Data = append(cs.Data, value)
	}

	return
}

// Push appends a value, failing when the set is full.
func (cs *Candidates) Push(value int) (err error) {
	if cs.Full() {
		err = ErrCandidatesFull
		return
	}

	cs.Data = append(cs.Data, value)
	return
}

// Head returns the first, and smallest, candidate.
func (cs *Candidates) Head() (value int, ok bool) {
	if cs.Empty() {
		return
	}

	return cs.Data[0], true
}

func (cs *Candidates) Len() int {
	return len(cs.Data)
}

func (cs *Candidates) Empty() bool {
	return len(cs.Data) == 0
}

func (cs *Candidates) Full() bool {
	return len(cs.Data) >= cs.Capacity
}

// All iterates over the candidates in order.
func (cs *Candidates) All() iter.Seq[int] {
	return slices.Values(cs.Data)
}

// Contains reports if value is a candidate.
func (cs *Candidates) Contains(value int) bool {
	_, found := slices.BinarySearch(cs.Data, value)
	return found
}

// Clone returns an independent copy.
func (cs *Candidates) Clone() *Candidates {
	return &Candidates{
		Capacity: cs.Capacity,
		Data:     slices.Clone(cs.Data),
	}
}
