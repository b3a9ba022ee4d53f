package mathkit

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

type (
	Int    constraints.Integer
	SInt   constraints.Signed
	UInt   constraints.Unsigned
	Float  constraints.Float
	Number interface{ Int | Float }
)

// BitSize returns the width of the integer type in bits.
func BitSize[T Int]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// IsSigned reports whether T can hold negative values.
func IsSigned[T Int]() bool {
	var zero T
	return zero-1 < zero
}

func MaxInt[T Int]() T {
	if !IsSigned[T]() {
		var zero T
		return ^zero
	}
	// all bits set except the sign bit
	return signBit[T]() - 1
}

func MinInt[T Int]() T {
	if !IsSigned[T]() {
		return 0
	}
	return signBit[T]()
}

func signBit[T Int]() T {
	var one T = 1
	return one << (BitSize[T]() - 1)
}

// SumInt adds a and b, and reports false when the result would overflow.
func SumInt[T Int](a, b T) (T, bool) {
	if CanIntSumOverflow(a, b) {
		var zero T
		return zero, false
	}
	return a + b, true
}

// SaturatingSumInt adds a and b, and clamps the result to the range of T instead of wrapping around.
func SaturatingSumInt[T Int](a, b T) T {
	if sum, ok := SumInt(a, b); ok {
		return sum
	}
	if IsSigned[T]() && a < 0 {
		return MinInt[T]()
	}
	return MaxInt[T]()
}

func CanIntSumOverflow[T Int](a, b T) bool {
	if !IsSigned[T]() {
		return MaxInt[T]()-a < b
	}
	less, more := a, b
	if more < less {
		less, more = more, less
	}
	switch {
	case 0 < less && 0 < more:
		return MaxInt[T]()-more < less // positive overflow
	case less < 0 && more < 0:
		return more < MinInt[T]()-less // negative overflow
	}
	// mixed signs can't leave the range: even MinInt plus MaxInt stays in it.
	return false
}
