package iotakit

import (
	"go.llib.dev/iota/pkg/cursorkit"
)

// cursor is the shared behaviour of the sequence cursors.
// The tier gated methods are only called when Tier permits it.
type cursor[T any] interface {
	cursorkit.Cursor[T]
	Tier() Tier
	describe() Description

	base() cursor[T]
	clone() cursor[T]
	equal(oth cursor[T]) bool
	retreat()
	advance(n int64)
	distance(oth cursor[T]) int64
}

// variant exposes exactly the cursorkit capabilities that the cursor's tier supports.
func variant[T any](c cursor[T]) cursorkit.Cursor[T] {
	switch c.Tier() {
	case RandomAccessTier:
		ra := randomAccessCursor[T]{bidirectionalCursor[T]{forwardCursor[T]{c}}}
		if _, ok := c.(*unbounded[T]); ok {
			return endlessCursor[T]{ra}
		}
		return ra
	case BidirectionalTier:
		return bidirectionalCursor[T]{forwardCursor[T]{c}}
	case ForwardTier:
		return forwardCursor[T]{c}
	default:
		return inputCursor[T]{c}
	}
}

type inputCursor[T any] struct{ cursor[T] }

type forwardCursor[T any] struct{ cursor[T] }

func (c forwardCursor[T]) Equal(o cursorkit.Cursor[T]) bool {
	oth, ok := o.(cursor[T])
	return ok && c.equal(oth.base())
}

func (c forwardCursor[T]) Clone() cursorkit.Cursor[T] {
	return variant(c.clone())
}

type bidirectionalCursor[T any] struct{ forwardCursor[T] }

func (c bidirectionalCursor[T]) Prev() { c.retreat() }

type randomAccessCursor[T any] struct{ bidirectionalCursor[T] }

func (c randomAccessCursor[T]) Advance(n int64) { c.advance(n) }

func (c randomAccessCursor[T]) Distance(o cursorkit.Cursor[T]) int64 {
	oth, ok := o.(cursor[T])
	if !ok {
		panic(ErrForeignCursor.F("%T is not a sequence cursor", o))
	}
	return c.distance(oth.base())
}

// endlessCursor is the random access cursor of an unbounded sequence.
type endlessCursor[T any] struct{ randomAccessCursor[T] }

func (c endlessCursor[T]) MaxAdvance() int64 { return c.describe().Difference.Max() }

// Path tells how a sequence cursor terminates.
type Path int

const (
	_ Path = iota
	// Unbounded cursors never terminate.
	Unbounded
	// Truncated cursors are unbounded cursors limited to a precomputed number of values.
	Truncated
	// Bounded cursors terminate after they yield a value equal to their bound.
	Bounded
	// Delimited cursors are unbounded cursors that terminate right before a value equal to their bound.
	Delimited
)

func (p Path) String() string {
	switch p {
	case Unbounded:
		return "unbounded"
	case Truncated:
		return "truncated"
	case Bounded:
		return "bounded"
	case Delimited:
		return "delimited"
	default:
		return "invalid"
	}
}

// Description is how a sequence cursor got resolved at construction.
type Description struct {
	Tier       Tier
	Difference DifferenceType
	Path       Path
}

// Describe returns the Description of a cursor made by this package.
// The second return value is false for any other cursor.
func Describe[T any](c cursorkit.Cursor[T]) (Description, bool) {
	switch c := c.(type) {
	case cursor[T]:
		return c.describe(), true
	case interface{ Unwrap() cursorkit.Cursor[T] }:
		d, ok := Describe(c.Unwrap())
		if !ok || d.Path != Unbounded {
			return Description{}, false
		}
		if _, ok := c.(cursorkit.Sized); ok {
			d.Path = Truncated
			return d, true
		}
		d.Path = Delimited
		d.Tier = min(d.Tier, ForwardTier)
		if d.Tier < RandomAccessTier {
			d.Difference = diffInt
		}
		return d, true
	default:
		return Description{}, false
	}
}
