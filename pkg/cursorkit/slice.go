package cursorkit

import "unsafe"

// Slice returns a random access cursor over the values of a slice.
func Slice[T any](vs []T) Cursor[T] {
	return sliceCursor[T]{&sliceState[T]{values: vs}}
}

type sliceState[T any] struct {
	values []T
	index  int
}

func (c *sliceState[T]) Current() T { return c.values[c.index] }

func (c *sliceState[T]) Next() { c.index++ }

func (c *sliceState[T]) Done() bool { return len(c.values) <= c.index }

func (c *sliceState[T]) Len() int { return max(len(c.values)-c.index, 0) }

type sliceCursor[T any] struct{ *sliceState[T] }

func (c sliceCursor[T]) sameSlice(o Cursor[T]) (*sliceState[T], bool) {
	oth, ok := o.(sliceCursor[T])
	if !ok {
		return nil, false
	}
	return oth.sliceState, unsafe.SliceData(c.values) == unsafe.SliceData(oth.values) &&
		len(c.values) == len(oth.values)
}

func (c sliceCursor[T]) Equal(o Cursor[T]) bool {
	oth, ok := c.sameSlice(o)
	return ok && c.index == oth.index
}

func (c sliceCursor[T]) Clone() Cursor[T] {
	var state = *c.sliceState
	return sliceCursor[T]{&state}
}

func (c sliceCursor[T]) Prev() { c.index-- }

func (c sliceCursor[T]) Advance(n int64) {
	if int64(c.Len()) < n {
		panic(ErrAdvancePastEnd.F("advance by %d with %d values left", n, c.Len()))
	}
	c.index += int(n)
}

func (c sliceCursor[T]) Distance(o Cursor[T]) int64 {
	oth, ok := c.sameSlice(o)
	if !ok {
		panic(ErrForeignCursor.F("%T is not a cursor of the same slice", o))
	}
	return int64(oth.index - c.index)
}
