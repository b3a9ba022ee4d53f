package cursorkit

import (
	"math"

	"github.com/ccoveille/go-safecast/v2"
)

// Take truncates a cursor to at most n values.
//
// The returned cursor has the same capabilities as the source cursor,
// and it always implements Sized.
// A negative n is treated as zero.
func Take[T any](c Cursor[T], n int64) Cursor[T] {
	var base = &take[T]{cursor: c, n: max(n, 0)}
	switch c.(type) {
	case RandomAccessCursor[T]:
		return takeRandomAccess[T]{takeBidirectional[T]{takeForward[T]{base}}}
	case BidirectionalCursor[T]:
		return takeBidirectional[T]{takeForward[T]{base}}
	case ForwardCursor[T]:
		return takeForward[T]{base}
	default:
		return base
	}
}

type take[T any] struct {
	cursor Cursor[T]
	n      int64
}

func (c *take[T]) state() *take[T] { return c }

// Unwrap returns the source cursor.
func (c *take[T]) Unwrap() Cursor[T] { return c.cursor }

func (c *take[T]) Current() T { return c.cursor.Current() }

func (c *take[T]) Next() {
	c.cursor.Next()
	c.n--
}

func (c *take[T]) Done() bool {
	return c.n <= 0 || c.cursor.Done()
}

// Len returns the number of values left.
// When the source cursor is not Sized, it assumes that the source doesn't finish earlier.
func (c *take[T]) Len() int {
	n, err := safecast.Convert[int](max(c.n, 0))
	if err != nil {
		n = math.MaxInt
	}
	if sized, ok := c.cursor.(Sized); ok {
		return min(n, sized.Len())
	}
	return n
}

type takeState[T any] interface {
	state() *take[T]
}

type takeForward[T any] struct{ *take[T] }

func (c takeForward[T]) Equal(o Cursor[T]) bool {
	oth, ok := o.(takeState[T])
	if !ok {
		return false
	}
	return c.n == oth.state().n &&
		c.cursor.(ForwardCursor[T]).Equal(oth.state().cursor)
}

func (c takeForward[T]) Clone() Cursor[T] {
	return Take(c.cursor.(ForwardCursor[T]).Clone(), c.n)
}

type takeBidirectional[T any] struct{ takeForward[T] }

func (c takeBidirectional[T]) Prev() {
	c.cursor.(BidirectionalCursor[T]).Prev()
	c.n++
}

type takeRandomAccess[T any] struct{ takeBidirectional[T] }

func (c takeRandomAccess[T]) Advance(delta int64) {
	if c.n < delta {
		panic(ErrAdvancePastEnd.F("advance by %d with %d values left", delta, c.n))
	}
	c.cursor.(RandomAccessCursor[T]).Advance(delta)
	c.n -= delta
}

func (c takeRandomAccess[T]) Distance(o Cursor[T]) int64 {
	oth, ok := o.(takeState[T])
	if !ok {
		panic(ErrForeignCursor.F("%T is not a truncated cursor", o))
	}
	return c.n - oth.state().n
}
