package iotakit

import (
	"math"
	"reflect"
	"sync"

	"go.llib.dev/iota/pkg/mathkit"
	"golang.org/x/exp/constraints"
)

// valueOps is the resolved capability set of a value type.
// Operations above the type's tier are nil.
type valueOps[T any] struct {
	tier Tier
	diff DifferenceType

	succ   func(T) T
	equal  func(a, b T) bool
	pred   func(T) T
	minus  func(a, b T) int64
	offset func(v T, n int64) T
	// less is only set for builtin integer kinds.
	less func(a, b T) bool

	// integer is set for builtin integer kinds, including named ones.
	integer bool
	signed  bool
}

// span returns the number of steps from a to b.
// ok is false when b follows a by more than math.MaxInt64 steps.
// For signed integers, a b that precedes a by more than that yields math.MinInt64.
func (ops *valueOps[T]) span(a, b T) (n int64, ok bool) {
	n = ops.minus(b, a)
	if ops.less == nil {
		return n, true
	}
	before := ops.less(b, a)
	switch {
	case n < 0 && !before:
		return 0, false
	case 0 <= n && before && ops.signed:
		return math.MinInt64, true
	default:
		return n, true
	}
}

type classification[T any] struct {
	ops *valueOps[T]
	err error
}

// classifications caches the classification of every type that was used with the package.
var classifications sync.Map // map[reflect.Type]classification[T]

func opsOf[T any]() (*valueOps[T], error) {
	typ := reflect.TypeFor[T]()
	if c, ok := classifications.Load(typ); ok {
		return c.(classification[T]).ops, c.(classification[T]).err
	}
	ops, err := classify[T](typ)
	c, _ := classifications.LoadOrStore(typ, classification[T]{ops: ops, err: err})
	return c.(classification[T]).ops, c.(classification[T]).err
}

func mustOps[T any]() *valueOps[T] {
	ops, err := opsOf[T]()
	if err != nil {
		panic(err)
	}
	return ops
}

func classify[T any](typ reflect.Type) (*valueOps[T], error) {
	switch typ.Kind() {
	case reflect.Func, reflect.Chan, reflect.Map, reflect.UnsafePointer, reflect.Interface:
		return nil, ErrUnsupportedType.F("%s is a %s kind", typ, typ.Kind())
	case reflect.Int:
		return intOps[T, int](typ), nil
	case reflect.Int8:
		return intOps[T, int8](typ), nil
	case reflect.Int16:
		return intOps[T, int16](typ), nil
	case reflect.Int32:
		return intOps[T, int32](typ), nil
	case reflect.Int64:
		return intOps[T, int64](typ), nil
	case reflect.Uint:
		return intOps[T, uint](typ), nil
	case reflect.Uint8:
		return intOps[T, uint8](typ), nil
	case reflect.Uint16:
		return intOps[T, uint16](typ), nil
	case reflect.Uint32:
		return intOps[T, uint32](typ), nil
	case reflect.Uint64:
		return intOps[T, uint64](typ), nil
	case reflect.Uintptr:
		return intOps[T, uintptr](typ), nil
	case reflect.Float32:
		return floatOps[T, float32](), nil
	case reflect.Float64:
		return floatOps[T, float64](), nil
	default:
		return methodOps[T](typ)
	}
}

// intOps works with T through its underlying integer type I.
// Methods of named integer types are not consulted.
func intOps[T any, I mathkit.Int](typ reflect.Type) *valueOps[T] {
	var (
		in  = mathkit.As[I, T]
		out = mathkit.As[T, I]
	)
	ops := &valueOps[T]{
		tier:    RandomAccessTier,
		diff:    integerDifference(mathkit.BitSize[I]()),
		integer: true,
		succ:    func(v T) T { return out(in(v) + 1) },
		pred:    func(v T) T { return out(in(v) - 1) },
		equal:   func(a, b T) bool { return in(a) == in(b) },
		less:    func(a, b T) bool { return in(a) < in(b) },
		offset:  func(v T, n int64) T { return out(in(v) + I(n)) },
	}
	if mathkit.IsSigned[I]() {
		ops.signed = true
		ops.minus = func(a, b T) int64 { return int64(in(a)) - int64(in(b)) }
	} else {
		ops.minus = func(a, b T) int64 { return int64(in(a) - in(b)) }
	}
	return ops
}

func floatOps[T any, F mathkit.Float]() *valueOps[T] {
	var (
		in  = mathkit.As[F, T]
		out = mathkit.As[T, F]
	)
	return &valueOps[T]{
		tier:  BidirectionalTier,
		diff:  diffInt,
		succ:  func(v T) T { return out(in(v) + 1) },
		pred:  func(v T) T { return out(in(v) - 1) },
		equal: func(a, b T) bool { return in(a) == in(b) },
	}
}

func methodOps[T any](typ reflect.Type) (*valueOps[T], error) {
	if !implements[T, Successor[T]]() {
		return nil, ErrUnsupportedType.F("%s has no Succ() %s method", typ, typ)
	}
	ops := &valueOps[T]{
		tier: InputTier,
		diff: diffInt,
		succ: func(v T) T { return any(v).(Successor[T]).Succ() },
	}

	switch {
	case implements[T, Equaler[T]]():
		ops.equal = func(a, b T) bool { return any(a).(Equaler[T]).Equal(b) }
	case typ.Comparable():
		ops.equal = comparableEqual[T](typ)
	default:
		return ops, nil
	}
	ops.tier = ForwardTier

	if !implements[T, Predecessor[T]]() {
		return ops, nil
	}
	ops.tier = BidirectionalTier
	ops.pred = func(v T) T { return any(v).(Predecessor[T]).Pred() }

	for _, withOffset := range []func(*valueOps[T]) bool{
		offsetOps[T, int],
		offsetOps[T, int8],
		offsetOps[T, int16],
		offsetOps[T, int32],
		offsetOps[T, int64],
	} {
		if withOffset(ops) {
			break
		}
	}
	return ops, nil
}

// comparableEqual compares the values with ==.
// An interface field that holds an incomparable value makes it panic with ErrNotEqualityComparable.
func comparableEqual[T any](typ reflect.Type) func(a, b T) bool {
	return func(a, b T) bool {
		defer func() {
			if r := recover(); r != nil {
				panic(ErrNotEqualityComparable.F("%s holds an incomparable value: %v", typ, r))
			}
		}()
		return any(a) == any(b)
	}
}

func offsetOps[T any, D constraints.Signed](ops *valueOps[T]) bool {
	if !implements[T, Offsetter[T, D]]() {
		return false
	}
	ops.tier = RandomAccessTier
	ops.diff = DifferenceType{kind: reflect.TypeFor[D]().Kind()}
	ops.minus = func(a, b T) int64 { return int64(any(a).(Offsetter[T, D]).Sub(b)) }
	ops.offset = func(v T, n int64) T { return any(v).(Offsetter[T, D]).Add(D(n)) }
	return true
}

func implements[T, I any]() bool {
	return reflect.TypeFor[T]().Implements(reflect.TypeFor[I]())
}
