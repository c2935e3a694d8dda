package sieve

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/primes/pipe"
)

func runFilter(t *testing.T, fl *Filter, input []int) (prime int, forwarded []int, err error) {
	assert := assert.New(t)

	wr, rd := pipe.New(0)
	prime, err = fl.Run(context.Background(), &Candidates{Capacity: len(input), Data: input}, wr)
	assert.True(wr.Closed())

	for value, rerr := range rd.Values() {
		assert.NoError(rerr)
		forwarded = append(forwarded, value)
	}

	return
}

func TestFilter_Run(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Bound     int
		Strict    bool
		Input     []int
		Prime     int
		Forwarded []int
	}){
		{Bound: 10, Input: []int{2, 3, 4, 5, 6, 7, 8, 9, 10}, Prime: 2, Forwarded: []int{3, 5, 7, 9, 10}},
		{Bound: 10, Strict: true, Input: []int{2, 3, 4, 5, 6, 7, 8, 9, 10}, Prime: 2, Forwarded: []int{3, 5, 7, 9}},
		{Bound: 35, Input: []int{5, 7, 11, 25, 35}, Prime: 5, Forwarded: []int{7, 11, 35}},
		{Bound: 35, Strict: true, Input: []int{5, 7, 11, 25, 35}, Prime: 5, Forwarded: []int{7, 11}},
		{Bound: 4, Input: []int{2, 3, 4, 5, 6}, Prime: 2, Forwarded: []int{3, 4}},
		{Bound: 4, Strict: true, Input: []int{2, 3, 4, 5}, Prime: 2, Forwarded: []int{3}},
		{Bound: 31, Input: []int{31}, Prime: 31},
	}

	for _, testcase := range table {
		output := &bytes.Buffer{}
		fl := &Filter{Bound: testcase.Bound, Strict: testcase.Strict, Output: output}

		prime, forwarded, err := runFilter(t, fl, testcase.Input)
		assert.NoError(err, "%+v", testcase)
		assert.Equal(testcase.Prime, prime, "%+v", testcase)
		assert.Equal(testcase.Forwarded, forwarded, "%+v", testcase)
		assert.Equal("prime "+strconv.Itoa(testcase.Prime)+"\n", output.String())
	}
}

func TestFilter_Empty(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	fl := &Filter{Bound: 35, Output: output}

	_, forwarded, err := runFilter(t, fl, nil)
	assert.Equal(ErrCandidatesEmpty, err)
	assert.Empty(forwarded)
	assert.Empty(output.String())
}

func TestFilter_ChannelFull(t *testing.T) {
	assert := assert.New(t)

	wr, _ := pipe.New(pipe.WORD_SIZE)
	fl := &Filter{Bound: 35, Output: &bytes.Buffer{}}

	cs, err := Enumerate(35, CANDIDATES_DEFAULT_LIMIT)
	assert.NoError(err)

	_, err = fl.Run(context.Background(), cs, wr)
	assert.True(errors.Is(err, ErrChannel))
	assert.True(errors.Is(err, pipe.ErrChannelFull))
	assert.True(wr.Closed())
}

func TestFilter_Cancel(t *testing.T) {
	assert := assert.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	wr, _ := pipe.New(0)
	output := &bytes.Buffer{}
	fl := &Filter{Bound: 35, Output: output, Delay: 1}

	_, err := fl.Run(ctx, &Candidates{Capacity: 3, Data: []int{2, 3, 4}}, wr)
	assert.Equal(context.Canceled, err)
	assert.Equal("prime 2\n", output.String())
	assert.True(wr.Closed())
}

type errWriter struct{}

var errWrite = errors.New("write refused")

func (errWriter) Write(data []byte) (int, error) {
	return 0, errWrite
}

func TestFilter_ReportFailure(t *testing.T) {
	assert := assert.New(t)

	wr, rd := pipe.New(0)
	fl := &Filter{Bound: 35, Output: errWriter{}}

	_, err := fl.Run(context.Background(), &Candidates{Capacity: 2, Data: []int{2, 3}}, wr)
	assert.Equal(errWrite, err)
	assert.True(wr.Closed())
	assert.Equal(0, rd.Buffered())
}
