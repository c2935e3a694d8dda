package pipe

import (
	"errors"

	"github.com/ezrec/primes/translate"
)

var f = translate.From

var (
	// Pipe errors
	ErrChannelFull = errors.New(f("channel full"))
	ErrPipeClosed  = errors.New(f("pipe closed"))
	ErrPipeBroken  = errors.New(f("pipe broken, reader closed"))
	ErrPipeOpen    = errors.New(f("pipe empty, writer still open"))
	ErrPipePartial = errors.New(f("partial word read"))
)

// ErrValueRange is returned when a value does not fit in a pipe word.
type ErrValueRange int

func (err ErrValueRange) Error() string {
	return f("value %v does not fit in %v bytes", int(err), WORD_SIZE)
}
