package sieve

import (
	"errors"

	"github.com/ezrec/primes/translate"
)

var f = translate.From

var (
	// Configuration errors
	ErrBoundInvalid     = errors.New(f("range bound invalid"))
	ErrCapacityExceeded = errors.New(f("range exceeds candidate capacity"))

	// Candidate errors
	ErrCandidatesFull      = errors.New(f("candidates full"))
	ErrCandidatesEmpty     = errors.New(f("candidates empty"))
	ErrCandidatesExhausted = errors.New(f("candidates exhausted before range bound"))

	// Pipeline errors
	ErrSpawn         = errors.New(f("stage spawn failed"))
	ErrChannel       = errors.New(f("channel failure"))
	ErrStageAbnormal = errors.New(f("stage exited abnormally"))
)

// ErrBoundExpression is returned when a bound expression does not evaluate
// to an integer.
type ErrBoundExpression string

func (err ErrBoundExpression) Error() string {
	return f("'%v' is not a valid bound expression", string(err))
}

// ErrGeneration records the generation a pipeline failure occurred in.
type ErrGeneration struct {
	Number int
	Prime  int
	Err    error
}

func (err *ErrGeneration) Error() string {
	return f("generation %v (prime %v): %v", err.Number, err.Prime, err.Err)
}

func (err *ErrGeneration) Unwrap() error {
	return err.Err
}

// errJoin attaches a sentinel to the underlying cause.
type errJoin struct {
	Kind error
	Err  error
}

func (err *errJoin) Error() string {
	return f("%v: %v", err.Kind, err.Err)
}

func (err *errJoin) Unwrap() []error {
	return []error{err.Kind, err.Err}
}
