// Package cursorkit defines the cursor protocol that lazy views are composed from,
// and the adaptors that work with any cursor.
//
// # Summary
//
// A Cursor is a stateful position inside a lazy sequence.
// The consumer pulls values explicitly with Current, Next and Done.
// Richer cursors expose more operations through the ForwardCursor, BidirectionalCursor and RandomAccessCursor interfaces.
// A cursor implementation picks its capability set once at construction,
// so a type assertion to one of these interfaces tells what the cursor can do.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
// https://ericniebler.github.io/range-v3/
package cursorkit

import (
	"iter"

	"go.llib.dev/frameless/pkg/errorkit"
)

const (
	ErrAdvancePastEnd errorkit.Error = "cursorkit: advance past the end of the cursor"
	ErrForeignCursor  errorkit.Error = "cursorkit: cursors don't belong to the same sequence"
)

// Cursor is the minimal, single pass cursor protocol.
type Cursor[T any] interface {
	// Current returns the value at the cursor's position.
	// The action should be repeatable without side effects.
	Current() T
	// Next moves the cursor to the following position.
	Next()
	// Done reports whether the cursor has no more values.
	Done() bool
}

// ForwardCursor is a multi pass cursor.
type ForwardCursor[T any] interface {
	Cursor[T]
	// Equal reports whether the other cursor is at the same position.
	// Cursors from unrelated sequences are never equal.
	Equal(Cursor[T]) bool
	// Clone returns an independent cursor at the same position.
	// The clone has the same capabilities as the original.
	Clone() Cursor[T]
}

type BidirectionalCursor[T any] interface {
	ForwardCursor[T]
	// Prev moves the cursor to the preceding position.
	Prev()
}

type RandomAccessCursor[T any] interface {
	BidirectionalCursor[T]
	// Advance moves the cursor by n positions in a single step.
	Advance(n int64)
	// Distance returns the signed number of positions from this cursor to the other one.
	Distance(Cursor[T]) int64
}

// Sized is implemented by cursors that know how many values they have left.
type Sized interface {
	Len() int
}

// Endless is implemented by random access cursors that never run out of values.
type Endless interface {
	// MaxAdvance returns the largest n that Advance accepts in a single call.
	MaxAdvance() int64
}

// Collect consumes the cursor and returns every remaining value.
func Collect[T any](c Cursor[T]) []T {
	var vs = make([]T, 0, capHint(c))
	for ; !c.Done(); c.Next() {
		vs = append(vs, c.Current())
	}
	return vs
}

const maxCapHint = 1 << 16

func capHint(c any) int {
	if sized, ok := c.(Sized); ok {
		return min(sized.Len(), maxCapHint)
	}
	return 0
}

// Count consumes the cursor and returns the number of values it had left.
func Count[T any](c Cursor[T]) int {
	var n int
	for ; !c.Done(); c.Next() {
		n++
	}
	return n
}

// Skip moves the cursor n positions forward, or until it is done.
// Sized random access cursors jump in a single step,
// and Endless ones in as few steps as their MaxAdvance allows.
func Skip[T any](c Cursor[T], n int64) {
	if n <= 0 {
		return
	}
	if ra, ok := c.(RandomAccessCursor[T]); ok {
		switch c := c.(type) {
		case Sized:
			ra.Advance(min(n, int64(c.Len())))
			return
		case Endless:
			for step := max(c.MaxAdvance(), 1); 0 < n; n -= min(n, step) {
				ra.Advance(min(n, step))
			}
			return
		}
	}
	for ; 0 < n && !c.Done(); n-- {
		c.Next()
	}
}

// Seq turns a cursor into an iter.Seq.
//
// Forward cursors are cloned at the start of every iteration,
// thus the returned sequence can be ranged over multiple times.
// Other cursors are consumed, and the returned sequence is single use.
func Seq[T any](c Cursor[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var cur = c
		if fc, ok := c.(ForwardCursor[T]); ok {
			cur = fc.Clone()
		}
		for ; !cur.Done(); cur.Next() {
			if !yield(cur.Current()) {
				return
			}
		}
	}
}
