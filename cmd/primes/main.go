// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/ezrec/primes/sieve"
	"github.com/ezrec/primes/translate"
)

var f = translate.From

var (
	ErrUsage       = errors.New(f("do not need parameters"))
	ErrInterrupted = errors.New(f("interrupted"))
)

// run sieves the default range, reporting to stdout.
func run(ctx context.Context, args []string, stdout io.Writer) (err error) {
	if len(args) != 0 {
		err = ErrUsage
		return
	}

	gen := sieve.NewGenerator()
	gen.Output = stdout

	err = gen.Run(ctx)
	if sieve.IsCancellation(err) {
		err = ErrInterrupted
	}

	return
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("primes: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}
