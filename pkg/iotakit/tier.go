package iotakit

import (
	"golang.org/x/exp/constraints"
)

// Tier is the capability level of a value type.
// Each tier refines the previous one, thus a RandomAccessTier type is also a BidirectionalTier type.
type Tier int

const (
	_ Tier = iota
	// InputTier types can only step to their successor.
	InputTier
	// ForwardTier types can also be compared for equality.
	ForwardTier
	// BidirectionalTier types can also step back to their predecessor.
	BidirectionalTier
	// RandomAccessTier types can also compute a signed distance between two values,
	// and offset a value by a distance.
	RandomAccessTier
)

func (t Tier) String() string {
	switch t {
	case InputTier:
		return "input"
	case ForwardTier:
		return "forward"
	case BidirectionalTier:
		return "bidirectional"
	case RandomAccessTier:
		return "random-access"
	default:
		return "invalid"
	}
}

// Refines reports whether t has every capability of o.
func (t Tier) Refines(o Tier) bool {
	return t.valid() && o.valid() && o <= t
}

func (t Tier) valid() bool {
	return InputTier <= t && t <= RandomAccessTier
}

// Successor is implemented by value types that know their next value.
type Successor[T any] interface {
	Succ() T
}

// Predecessor is implemented by value types that know their previous value.
type Predecessor[T any] interface {
	Pred() T
}

// Equaler is implemented by value types with a custom equality.
// Comparable types without an Equal method are compared with ==,
// and comparing two values panics with ErrNotEqualityComparable
// when one of their interface fields holds an incomparable value, such as a slice.
type Equaler[T any] interface {
	Equal(T) bool
}

// Offsetter is implemented by value types that support random access.
//
// Sub returns the signed distance from the other value to the receiver,
// and Add returns the value that is n steps away from the receiver.
// D must be one of int, int8, int16, int32 or int64.
type Offsetter[T any, D constraints.Signed] interface {
	Sub(T) D
	Add(D) T
}

// Classify returns the most refined Tier that T supports.
// ErrUnsupportedType is returned when T can't form a sequence.
func Classify[T any]() (Tier, error) {
	ops, err := opsOf[T]()
	if err != nil {
		return 0, err
	}
	return ops.tier, nil
}
