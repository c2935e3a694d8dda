// Package sieve implements a generational concurrent prime sieve.
//
// A Generator holds the candidates 2..Bound. Every generation it creates a
// fresh pipe, spawns a Filter goroutine on the write end, joins it, and then
// drains the read end into the next generation's Candidates. The Filter
// reports the head of its input as a prime and forwards every candidate not
// divisible by it. Generations never overlap: the join always precedes the
// drain, so the pipe needs no coordination beyond its own lock.
//
// The loop ends when the Range Bound reaches the head of the Candidates, at
// which point the bound itself is reported. By default the bound is carried
// through every filter as a terminator, so a composite bound is reported as
// the final "prime". Setting Generator.Strict filters the bound like any
// other candidate, and the pipeline then ends when the Candidates run dry.
package sieve
