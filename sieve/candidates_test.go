package sieve

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumerate(t *testing.T) {
	assert := assert.New(t)

	cs, err := Enumerate(35, CANDIDATES_DEFAULT_LIMIT)
	assert.NoError(err)
	assert.Equal(34, cs.Len())
	assert.True(cs.Full())

	head, ok := cs.Head()
	assert.True(ok)
	assert.Equal(2, head)
	assert.Equal(35, cs.Data[cs.Len()-1])

	cs, err = Enumerate(2, 1)
	assert.NoError(err)
	assert.Equal([]int{2}, cs.Data)
}

func TestEnumerate_Invalid(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Bound    int
		Capacity int
		Err      error
	}){
		{Bound: 1, Capacity: 34, Err: ErrBoundInvalid},
		{Bound: -7, Capacity: 34, Err: ErrBoundInvalid},
		{Bound: 36, Capacity: 34, Err: ErrCapacityExceeded},
		{Bound: 2, Capacity: 0, Err: ErrCapacityExceeded},
	}

	for _, testcase := range table {
		cs, err := Enumerate(testcase.Bound, testcase.Capacity)
		assert.Equal(testcase.Err, err, "%+v", testcase)
		assert.Nil(cs)
	}
}

func TestCandidates_Push(t *testing.T) {
	assert := assert.New(t)

	cs := NewCandidates(2)
	assert.True(cs.Empty())

	_, ok := cs.Head()
	assert.False(ok)

	assert.NoError(cs.Push(3))
	assert.NoError(cs.Push(5))
	assert.Equal(ErrCandidatesFull, cs.Push(7))
	assert.Equal([]int{3, 5}, slices.Collect(cs.All()))
}

func TestCandidates_Clone(t *testing.T) {
	assert := assert.New(t)

	cs, err := Enumerate(7, 10)
	assert.NoError(err)

	clone := cs.Clone()
	clone.Data[0] = 99
	assert.Equal(2, cs.Data[0])
	assert.Equal(cs.Capacity, clone.Capacity)

	assert.True(cs.Contains(5))
	assert.False(cs.Contains(8))
}

func TestState_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("CREATED", STATE_CREATED.String())
	assert.Equal("FILTER_RUNNING", STATE_FILTER_RUNNING.String())
	assert.Equal("FILTER_DONE", STATE_FILTER_DONE.String())
	assert.Equal("DRAINED", STATE_DRAINED.String())
	assert.Equal("State(9)", State(9).String())

	g := &Generation{}
	g.advance(STATE_DRAINED)
	g.advance(STATE_FILTER_RUNNING)
	assert.Equal(STATE_DRAINED, g.State)
}
