// Package pipe provides a bounded, ordered, one-shot byte conduit with a
// single write end and a single read end.
//
// A pipe never blocks. The writer fails with ErrChannelFull once Capacity
// bytes are buffered, and the reader reports io.EOF only after the writer
// has closed and every buffered byte has been consumed. Reading an empty
// pipe whose writer is still open returns ErrPipeOpen, as the consumer is
// expected to read only after the producer has finished.
//
// Integers travel as fixed width little-endian words of WORD_SIZE bytes.
package pipe

import (
	"encoding/binary"
	"fmt"
	"io"
	"iter"
	"maps"
	"math"
	"sync"
)

const (
	WORD_SIZE             = 4   // Bytes per encoded value.
	PIPE_DEFAULT_CAPACITY = 512 // Default capacity in bytes.
)

// Defines returns an iter of the pipe constants.
func Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"WORD_SIZE":             fmt.Sprintf("%v", WORD_SIZE),
		"PIPE_DEFAULT_CAPACITY": fmt.Sprintf("%v", PIPE_DEFAULT_CAPACITY),
	})
}

// pipe is the shared buffer behind a Writer and Reader pair.
type pipe struct {
	mutex sync.Mutex

	capacity  int
	data      []byte
	readIndex int

	writeClosed bool
	readClosed  bool
}

// Writer is the write end of a pipe.
type Writer struct {
	p *pipe
}

// Reader is the read end of a pipe.
type Reader struct {
	p *pipe
}

var (
	_ io.WriteCloser = (*Writer)(nil)
	_ io.ReadCloser  = (*Reader)(nil)
)

// New creates a pipe holding at most capacity bytes. A capacity of zero or
// less selects PIPE_DEFAULT_CAPACITY.
func New(capacity int) (wr *Writer, rd *Reader) {
	if capacity <= 0 {
		capacity = PIPE_DEFAULT_CAPACITY
	}

	p := &pipe{
		capacity: capacity,
		data:     make([]byte, 0, capacity),
	}

	wr = &Writer{p: p}
	rd = &Reader{p: p}

	return
}

// Write appends all of data to the pipe, or nothing at all.
func (wr *Writer) Write(data []byte) (n int, err error) {
	p := wr.p

	p.mutex.Lock()
	defer p.mutex.Unlock()

	switch {
	case p.writeClosed:
		err = ErrPipeClosed
	case p.readClosed:
		err = ErrPipeBroken
	case len(p.data)+len(data) > p.capacity:
		err = ErrChannelFull
	default:
		p.data = append(p.data, data...)
		n = len(data)
	}

	return
}

// WriteValue encodes value as a single word.
func (wr *Writer) WriteValue(value int) (err error) {
	if value < math.MinInt32 || value > math.MaxInt32 {
		err = ErrValueRange(value)
		return
	}

	var word [WORD_SIZE]byte
	binary.LittleEndian.PutUint32(word[:], uint32(int32(value)))

	_, err = wr.Write(word[:])
	return
}

// Close the write end. Buffered data remains readable.
func (wr *Writer) Close() (err error) {
	p := wr.p

	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.writeClosed {
		err = ErrPipeClosed
		return
	}

	p.writeClosed = true
	return
}

// Closed reports if the write end has been closed.
func (wr *Writer) Closed() bool {
	p := wr.p

	p.mutex.Lock()
	defer p.mutex.Unlock()

	return p.writeClosed
}

// Read consumes up to len(data) buffered bytes.
func (rd *Reader) Read(data []byte) (n int, err error) {
	p := rd.p

	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.readClosed {
		err = ErrPipeClosed
		return
	}

	if p.readIndex == len(p.data) {
		if p.writeClosed {
			err = io.EOF
		} else if len(data) > 0 {
			err = ErrPipeOpen
		}
		return
	}

	n = copy(data, p.data[p.readIndex:])
	p.readIndex += n

	return
}

// ReadValue decodes the next word. It returns io.EOF at a clean end of
// stream, and ErrPipePartial if the stream ends inside a word.
func (rd *Reader) ReadValue() (value int, err error) {
	var word [WORD_SIZE]byte

	_, err = io.ReadFull(rd, word[:])
	if err == io.ErrUnexpectedEOF {
		err = ErrPipePartial
	}
	if err != nil {
		return
	}

	value = int(int32(binary.LittleEndian.Uint32(word[:])))
	return
}

// Values returns an iterator over the decoded words. Iteration stops at
// end of stream, or at the first error, which is yielded.
func (rd *Reader) Values() iter.Seq2[int, error] {
	return func(yield func(value int, err error) bool) {
		for {
			value, err := rd.ReadValue()
			if err == io.EOF {
				return
			}
			if !yield(value, err) || err != nil {
				return
			}
		}
	}
}

// Buffered returns the number of unread bytes.
func (rd *Reader) Buffered() int {
	p := rd.p

	p.mutex.Lock()
	defer p.mutex.Unlock()

	return len(p.data) - p.readIndex
}

// Close the read end, discarding any unread data.
func (rd *Reader) Close() (err error) {
	p := rd.p

	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.readClosed {
		err = ErrPipeClosed
		return
	}

	p.readClosed = true
	p.data = nil
	p.readIndex = 0

	return
}
