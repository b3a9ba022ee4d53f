package mathkit

import (
	"math"
	"math/big"
	"reflect"
	"unsafe"
)

type numberClass int

const (
	signedClass numberClass = iota + 1
	unsignedClass
	floatClass
)

// Value is a kind-independent snapshot of a builtin numeric value.
// It allows comparing values of different numeric types by their mathematical value,
// so int8(-1) is not equal to uint8(255), even though one converts into the other.
type Value struct {
	class numberClass
	i     int64
	u     uint64
	f     float64
}

func SignedValue(n int64) Value    { return Value{class: signedClass, i: n} }
func UnsignedValue(n uint64) Value { return Value{class: unsignedClass, u: n} }
func FloatValue(n float64) Value   { return Value{class: floatClass, f: n} }

func (v Value) IsFloat() bool { return v.class == floatClass }

func (v Value) isNegative() bool {
	switch v.class {
	case signedClass:
		return v.i < 0
	case floatClass:
		return v.f < 0
	default:
		return false
	}
}

// equalFloat compares an integer value with f.
func (v Value) equalFloat(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return false
	}
	n, _ := v.BigInt()
	return big.NewFloat(f).Cmp(new(big.Float).SetInt(n)) == 0
}

// Equal reports whether the two values are mathematically equal.
// Integers are compared with floats exactly, without rounding the integer to a float64.
func (v Value) Equal(oth Value) bool {
	switch {
	case v.class == floatClass && oth.class == floatClass:
		return v.f == oth.f
	case v.class == floatClass:
		return oth.equalFloat(v.f)
	case oth.class == floatClass:
		return v.equalFloat(oth.f)
	}
	if v.isNegative() || oth.isNegative() {
		return v.class == signedClass && oth.class == signedClass && v.i == oth.i
	}
	return v.magnitude() == oth.magnitude()
}

func (v Value) magnitude() uint64 {
	if v.class == signedClass {
		return uint64(v.i)
	}
	return v.u
}

// BigInt returns the exact integer value.
// The second return value is false for floating point values.
func (v Value) BigInt() (*big.Int, bool) {
	switch v.class {
	case signedClass:
		return big.NewInt(v.i), true
	case unsignedClass:
		return new(big.Int).SetUint64(v.u), true
	default:
		return nil, false
	}
}

// ValueFunc returns a function that snapshots values of T,
// when T's underlying type is a builtin integer or float kind.
// Named types such as `type Port uint16` are supported.
func ValueFunc[T any]() (func(T) Value, bool) {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int:
		return signedValueFunc[T, int](), true
	case reflect.Int8:
		return signedValueFunc[T, int8](), true
	case reflect.Int16:
		return signedValueFunc[T, int16](), true
	case reflect.Int32:
		return signedValueFunc[T, int32](), true
	case reflect.Int64:
		return signedValueFunc[T, int64](), true
	case reflect.Uint:
		return unsignedValueFunc[T, uint](), true
	case reflect.Uint8:
		return unsignedValueFunc[T, uint8](), true
	case reflect.Uint16:
		return unsignedValueFunc[T, uint16](), true
	case reflect.Uint32:
		return unsignedValueFunc[T, uint32](), true
	case reflect.Uint64:
		return unsignedValueFunc[T, uint64](), true
	case reflect.Uintptr:
		return unsignedValueFunc[T, uintptr](), true
	case reflect.Float32:
		return floatValueFunc[T, float32](), true
	case reflect.Float64:
		return floatValueFunc[T, float64](), true
	default:
		return nil, false
	}
}

// As reinterprets v as N.
// The caller must ensure that T's underlying type is N.
func As[N, T any](v T) N {
	return *(*N)(unsafe.Pointer(&v))
}

func signedValueFunc[T any, N SInt]() func(T) Value {
	return func(v T) Value { return SignedValue(int64(As[N](v))) }
}

func unsignedValueFunc[T any, N UInt]() func(T) Value {
	return func(v T) Value { return UnsignedValue(uint64(As[N](v))) }
}

func floatValueFunc[T any, N Float]() func(T) Value {
	return func(v T) Value { return FloatValue(float64(As[N](v))) }
}
