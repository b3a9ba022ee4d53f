package iotakit

import (
	"math"
	"reflect"
	"strconv"
)

// DifferenceType describes the signed integer type that holds the distance between two values of a value type.
//
// Distances themselves are carried as int64,
// and for every type narrower than 64 bits they always fit into the described type.
// 64 bit integer types fall back to int64, thus their distance wraps around near the extremes.
type DifferenceType struct {
	kind reflect.Kind
}

var (
	diffInt   = DifferenceType{kind: reflect.Int}
	diffInt8  = DifferenceType{kind: reflect.Int8}
	diffInt16 = DifferenceType{kind: reflect.Int16}
	diffInt32 = DifferenceType{kind: reflect.Int32}
	diffInt64 = DifferenceType{kind: reflect.Int64}
)

// Kind returns the reflect.Kind of the described type.
func (d DifferenceType) Kind() reflect.Kind { return d.kind }

func (d DifferenceType) Bits() int {
	switch d.kind {
	case reflect.Int8:
		return 8
	case reflect.Int16:
		return 16
	case reflect.Int32:
		return 32
	case reflect.Int64:
		return 64
	default:
		return strconv.IntSize
	}
}

func (d DifferenceType) Min() int64 {
	switch d.kind {
	case reflect.Int8:
		return math.MinInt8
	case reflect.Int16:
		return math.MinInt16
	case reflect.Int32:
		return math.MinInt32
	case reflect.Int64:
		return math.MinInt64
	default:
		return math.MinInt
	}
}

func (d DifferenceType) Max() int64 {
	switch d.kind {
	case reflect.Int8:
		return math.MaxInt8
	case reflect.Int16:
		return math.MaxInt16
	case reflect.Int32:
		return math.MaxInt32
	case reflect.Int64:
		return math.MaxInt64
	default:
		return math.MaxInt
	}
}

// Contains reports whether n can be represented by the described type.
func (d DifferenceType) Contains(n int64) bool {
	return d.Min() <= n && n <= d.Max()
}

func (d DifferenceType) String() string {
	if d.kind == reflect.Invalid {
		return diffInt.String()
	}
	return d.kind.String()
}

// DifferenceTypeOf returns the DifferenceType of T.
//
// Types below RandomAccessTier get int for bookkeeping.
// Integer types get the narrowest signed integer type that is wider than them,
// and random access types with methods get the result type of their Sub method.
func DifferenceTypeOf[T any]() (DifferenceType, error) {
	ops, err := opsOf[T]()
	if err != nil {
		return DifferenceType{}, err
	}
	return ops.diff, nil
}

// Distance returns the signed number of successor steps from `from` to `to`.
// ErrNotRandomAccess is returned when T is not a RandomAccessTier type.
func Distance[T any](from, to T) (int64, error) {
	ops, err := opsOf[T]()
	if err != nil {
		return 0, err
	}
	if ops.tier < RandomAccessTier {
		return 0, ErrNotRandomAccess.F("%s is a %s type", reflect.TypeFor[T](), ops.tier)
	}
	return ops.minus(to, from), nil
}

// integerDifference resolves the difference type of an integer type with the given width:
// the narrowest signed integer type that is wider, or int64.
func integerDifference(bits int) DifferenceType {
	for _, d := range []DifferenceType{diffInt8, diffInt16, diffInt32, diffInt64} {
		if bits < d.Bits() {
			return d
		}
	}
	return diffInt64
}

func (d DifferenceType) check(n int64) {
	if !d.Contains(n) {
		panic(ErrDifferenceOverflow.F("%d doesn't fit into %s", n, d))
	}
}
