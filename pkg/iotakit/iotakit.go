// Package iotakit implements lazy arithmetic sequences over any value type that has a successor.
//
// # Summary
//
// From makes an infinite sequence, FromTo makes the closed sequence [from, to],
// and FromUntil makes the half-open sequence [from, until).
// Values are computed on demand, one successor step at a time.
//
// A value type is classified into a Tier by its capabilities:
// builtin integers are RandomAccessTier, floats are BidirectionalTier,
// and other types earn their tier with the Successor, Equaler, Predecessor and Offsetter methods.
// The returned cursor implements the cursorkit interface of its tier,
// so a type assertion tells whether it can be cloned, moved backwards, or advanced in a single step.
//
// FromTo picks the cheapest correct implementation:
// when the bound has the same random access type as the start,
// the distance is computed up front and an unbounded sequence is truncated to it,
// otherwise the sequence stops after it yielded a value equal to the bound.
// A bound that is never reached makes the sequence infinite.
package iotakit

import (
	"iter"
	"reflect"

	"go.llib.dev/iota/pkg/cursorkit"
	"go.llib.dev/iota/pkg/mathkit"
)

// From returns an infinite sequence that starts with value.
// It panics with ErrUnsupportedType when T has no successor.
func From[T any](value T) cursorkit.Cursor[T] {
	return variant[T](&unbounded[T]{value: value, ops: mustOps[T]()})
}

// FromTo returns the closed sequence [from, to].
//
// It panics with ErrUnsupportedType when T has no successor,
// and with ErrNotEqualityComparable when values of T can't be compared with the bound.
// When to precedes from in a random access type, the sequence is empty.
// A range wider than math.MaxInt64 values is not truncated, and compares each value with the bound instead.
func FromTo[T, T2 any](from T, to T2) cursorkit.Cursor[T] {
	ops := mustOps[T]()
	if ops.tier == RandomAccessTier && reflect.TypeFor[T]() == reflect.TypeFor[T2]() {
		n, ok := ops.span(from, any(to).(T))
		if !ok {
			return Closed(from, to)
		}
		return cursorkit.Take(From(from), mathkit.SaturatingSumInt(n, 1))
	}
	return Closed(from, to)
}

// FromUntil returns the half-open sequence [from, until).
//
// It resolves like FromTo, except that the bound is not yielded.
// The sequence stops right before the first value equal to until,
// thus an until that is never reached makes it infinite.
func FromUntil[T, T2 any](from T, until T2) cursorkit.Cursor[T] {
	ops := mustOps[T]()
	if ops.tier == RandomAccessTier && reflect.TypeFor[T]() == reflect.TypeFor[T2]() {
		if n, ok := ops.span(from, any(until).(T)); ok {
			return cursorkit.Take(From(from), n)
		}
	}
	reached, err := boundEquality[T, T2](ops)
	if err != nil {
		panic(err)
	}
	return cursorkit.DelimitFunc(From(from), func(v T) bool { return reached(v, until) })
}

// Closed returns the closed sequence [from, to] that always compares the values with the bound,
// even when the distance could be computed up front.
func Closed[T, T2 any](from T, to T2) cursorkit.Cursor[T] {
	return variant[T](newClosed(from, to))
}

// Ints returns the infinite sequence of int values starting from zero.
func Ints() cursorkit.Cursor[int] {
	return From(0)
}

func IntsFrom[I mathkit.Int](from I) cursorkit.Cursor[I] {
	return From(from)
}

// IntsFromTo returns the integers of [from, to].
func IntsFromTo[I mathkit.Int](from, to I) cursorkit.Cursor[I] {
	return FromTo(from, to)
}

// Seq returns From as an iter.Seq.
// Every iteration starts over from value.
func Seq[T any](value T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := From(value); ; c.Next() {
			if !yield(c.Current()) {
				return
			}
		}
	}
}

// Range returns FromTo as an iter.Seq.
// Every iteration starts over from `from`.
func Range[T, T2 any](from T, to T2) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := FromTo(from, to); !c.Done(); c.Next() {
			if !yield(c.Current()) {
				return
			}
		}
	}
}
