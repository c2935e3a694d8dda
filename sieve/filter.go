package sieve

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ezrec/primes/pipe"
)

// Report writes a single discovered prime.
func Report(w io.Writer, prime int) (err error) {
	_, err = fmt.Fprintf(w, "prime %d\n", prime)
	return
}

// Filter is the stage run for a single generation.
type Filter struct {
	Bound  int           // Range bound. Scanning stops after it.
	Strict bool          // If set, the bound is filtered like any other value.
	Output io.Writer     // Destination of the prime report.
	Delay  time.Duration // Pause before examining each candidate.
}

// Run reports the head of input as a prime, and forwards every remaining
// candidate not divisible by it to wr. The write end is always closed on
// return.
func (fl *Filter) Run(ctx context.Context, input *Candidates, wr *pipe.Writer) (prime int, err error) {
	defer func() {
		cerr := wr.Close()
		if err == nil && cerr != nil {
			err = &errJoin{Kind: ErrChannel, Err: cerr}
		}
	}()

	prime, ok := input.Head()
	if !ok {
		err = ErrCandidatesEmpty
		return
	}

	err = Report(fl.Output, prime)
	if err != nil {
		return
	}

	for _, value := range input.Data[1:] {
		err = fl.pause(ctx)
		if err != nil {
			return
		}

		keep := value%prime != 0
		if value == fl.Bound && !fl.Strict {
			keep = true
		}

		if keep {
			err = wr.WriteValue(value)
			if err != nil {
				err = &errJoin{Kind: ErrChannel, Err: err}
				return
			}
		}

		if value == fl.Bound {
			break
		}
	}

	return
}

func (fl *Filter) pause(ctx context.Context) (err error) {
	err = ctx.Err()
	if err != nil || fl.Delay <= 0 {
		return
	}

	timer := time.NewTimer(fl.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		err = ctx.Err()
	case <-timer.C:
	}

	return
}
