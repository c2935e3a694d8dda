// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package sieve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"math"
	"time"

	"github.com/google/uuid"
	"gopkg.in/tomb.v2"

	"github.com/ezrec/primes/internal"
	"github.com/ezrec/primes/pipe"
	"github.com/ezrec/primes/translate"
)

const (
	BOUND_DEFAULT_EXPR = "FIRST + CAPACITY - 1" // Default bound, 35.
)

// Generator drives the sieve, one generation at a time.
type Generator struct {
	Verbose bool // If set, enables verbose logging.
	Strict  bool // If set, a composite bound is not reported.

	Bound     int    // Range bound. Overwritten by BoundExpr on Reset.
	BoundExpr string // Expression for the range bound, see Defines.
	Capacity  int    // Maximum number of candidates.

	Output io.Writer // Destination of the prime reports.

	// Delay, if set, returns the pause a generation's filter takes before
	// each candidate.
	Delay func(generation int) time.Duration

	// OnGeneration, if set, is called after every completed generation.
	OnGeneration func(g *Generation)

	Candidates  *Candidates // Candidates of the next generation.
	Generations int         // Completed generations since Reset.
	Primes      []int       // Primes reported since Reset.

	done bool
}

// NewGenerator creates a generator over the default range, 2..35.
func NewGenerator() (gen *Generator) {
	gen = &Generator{
		BoundExpr: BOUND_DEFAULT_EXPR,
		Capacity:  CANDIDATES_DEFAULT_LIMIT,
		Output:    io.Discard,
	}

	return
}

// Defines returns an iterator over the values visible to BoundExpr.
func (gen *Generator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(map[string]string{
		"FIRST":    fmt.Sprintf("%v", FIRST_CANDIDATE),
		"CAPACITY": fmt.Sprintf("%v", gen.Capacity),
	}),
		pipe.Defines(),
	)
}

// Reset evaluates the bound and enumerates the initial candidates.
func (gen *Generator) Reset() (err error) {
	gen.Candidates = nil
	gen.Generations = 0
	gen.Primes = nil
	gen.done = false

	if gen.Capacity <= 0 {
		gen.Capacity = CANDIDATES_DEFAULT_LIMIT
	}

	if gen.Capacity > math.MaxInt32/pipe.WORD_SIZE {
		err = ErrCapacityExceeded
		return
	}

	if len(gen.BoundExpr) != 0 {
		gen.Bound, err = Eval(gen.BoundExpr, gen.Defines())
		if err != nil {
			return
		}
	}

	gen.Candidates, err = Enumerate(gen.Bound, gen.Capacity)
	if err != nil {
		return
	}

	if gen.Verbose {
		log.Printf("sieve: reset, bound %v, capacity %v, language %v",
			gen.Bound, gen.Capacity, translate.Language())
	}

	return
}

// Done reports if the pipeline has finished.
func (gen *Generator) Done() bool {
	return gen.done
}

func (gen *Generator) output() io.Writer {
	if gen.Output == nil {
		return io.Discard
	}
	return gen.Output
}

// Step runs a single generation. It returns done once the bound has been
// reported, or, in Strict mode, once the candidates have run out.
func (gen *Generator) Step(ctx context.Context) (done bool, err error) {
	if gen.done {
		done = true
		return
	}

	if gen.Candidates == nil {
		err = gen.Reset()
		if err != nil {
			return
		}
	}

	head, ok := gen.Candidates.Head()
	if !ok {
		if !gen.Strict {
			err = &ErrGeneration{Number: gen.Generations + 1, Err: ErrCandidatesExhausted}
			return
		}
		if gen.Verbose {
			log.Printf("sieve: candidates exhausted after %v generations", gen.Generations)
		}
		gen.done = true
		done = true
		return
	}

	g := &Generation{
		ID:     uuid.New(),
		Number: gen.Generations + 1,
		Prime:  head,
		Input:  gen.Candidates,
		State:  STATE_CREATED,
	}

	wr, rd := pipe.New(gen.Capacity * pipe.WORD_SIZE)
	defer func() {
		if g.State != STATE_CLOSED {
			rd.Close()
			g.advance(STATE_CLOSED)
		}

		if err != nil {
			err = &ErrGeneration{Number: g.Number, Prime: g.Prime, Err: err}
			return
		}

		gen.Generations = g.Number
		gen.Primes = append(gen.Primes, g.Prime)

		if gen.Verbose {
			if g.Final() {
				log.Printf("sieve: generation %v %v: prime %v, final", g.Number, g.ID, g.Prime)
			} else {
				log.Printf("sieve: generation %v %v: prime %v, %v -> %v candidates",
					g.Number, g.ID, g.Prime, g.Input.Len(), g.Output.Len())
			}
		}

		if gen.OnGeneration != nil {
			gen.OnGeneration(g)
		}
	}()

	if head == gen.Bound {
		wr.Close()
		err = Report(gen.output(), head)
		if err != nil {
			return
		}
		gen.done = true
		done = true
		return
	}

	err = gen.spawn(ctx, g, wr)
	if err != nil {
		return
	}

	g.advance(STATE_FILTER_DONE)

	next := NewCandidates(gen.Capacity)
	for value, rerr := range rd.Values() {
		if rerr != nil {
			err = &errJoin{Kind: ErrChannel, Err: rerr}
			return
		}
		if next.Full() {
			break
		}
		next.Push(value)
	}

	g.advance(STATE_DRAINED)

	err = rd.Close()
	if err != nil {
		err = &errJoin{Kind: ErrChannel, Err: err}
		return
	}
	g.advance(STATE_CLOSED)

	g.Output = next
	gen.Candidates = next

	return
}

// spawn runs the generation's filter in its own goroutine, and waits for
// it to exit.
func (gen *Generator) spawn(ctx context.Context, g *Generation, wr *pipe.Writer) (err error) {
	if cerr := ctx.Err(); cerr != nil {
		wr.Close()
		err = &errJoin{Kind: ErrSpawn, Err: cerr}
		return
	}

	filter := &Filter{
		Bound:  gen.Bound,
		Strict: gen.Strict,
		Output: gen.output(),
	}
	if gen.Delay != nil {
		filter.Delay = gen.Delay(g.Number)
	}

	input := g.Input.Clone()

	t, tctx := tomb.WithContext(ctx)
	g.advance(STATE_FILTER_RUNNING)
	t.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = &errJoin{Kind: ErrStageAbnormal, Err: fmt.Errorf("%v", r)}
			}
		}()

		_, err = filter.Run(tctx, input, wr)
		return
	})

	err = t.Wait()
	if err != nil {
		return
	}

	if !wr.Closed() {
		err = ErrStageAbnormal
		return
	}

	return
}

// Run resets the generator, then steps until done.
func (gen *Generator) Run(ctx context.Context) (err error) {
	err = gen.Reset()
	if err != nil {
		return
	}

	for done := false; !done; {
		done, err = gen.Step(ctx)
		if err != nil {
			return
		}
	}

	return
}

// IsCancellation reports if err was caused by a cancelled or expired context.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
