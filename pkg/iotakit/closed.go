package iotakit

import (
	"reflect"

	fmathkit "go.llib.dev/frameless/pkg/mathkit"

	"go.llib.dev/iota/pkg/mathkit"
)

// closed steps from a value through its successors, until it yields a value that equals to the bound.
// A bound that is never reached makes the cursor run forever.
type closed[T, T2 any] struct {
	from T
	to   T2
	done bool

	ops  *valueOps[T]
	tier Tier
	// reached reports whether the value equals to the bound.
	reached func(T, T2) bool
	// reachable reports whether the bound is at least n steps away from the value.
	reachable func(v T, bound T2, n int64) bool
}

func newClosed[T, T2 any](from T, to T2) *closed[T, T2] {
	ops := mustOps[T]()
	reached, err := boundEquality[T, T2](ops)
	if err != nil {
		panic(err)
	}
	c := &closed[T, T2]{
		from:    from,
		to:      to,
		ops:     ops,
		tier:    ops.tier,
		reached: reached,
	}
	if ops.tier == RandomAccessTier {
		c.reachable = boundReachability[T, T2](ops)
		if c.reachable == nil {
			c.tier = BidirectionalTier
		}
	}
	return c
}

func (c *closed[T, T2]) Current() T { return c.from }

func (c *closed[T, T2]) Next() {
	if c.done {
		return
	}
	if c.reached(c.from, c.to) {
		c.done = true
		return
	}
	c.from = c.ops.succ(c.from)
}

func (c *closed[T, T2]) Done() bool { return c.done }

func (c *closed[T, T2]) Tier() Tier { return c.tier }

func (c *closed[T, T2]) describe() Description {
	var diff = c.ops.diff
	if c.tier < RandomAccessTier {
		diff = diffInt
	}
	return Description{Tier: c.tier, Difference: diff, Path: Bounded}
}

func (c *closed[T, T2]) base() cursor[T] { return c }

func (c *closed[T, T2]) clone() cursor[T] {
	var cp = *c
	return &cp
}

func (c *closed[T, T2]) equal(o cursor[T]) bool {
	oth, ok := o.(*closed[T, T2])
	return ok && c.done == oth.done && c.ops.equal(c.from, oth.from)
}

// retreat steps back to the bound itself when the cursor is done.
func (c *closed[T, T2]) retreat() {
	if c.done {
		c.done = false
		return
	}
	c.from = c.ops.pred(c.from)
}

func (c *closed[T, T2]) advance(n int64) {
	c.ops.diff.check(n)
	if c.done && n < 0 {
		c.done = false
		n++
	}
	if n == 0 {
		return
	}
	if c.done || !c.reachable(c.from, c.to, n) {
		panic(ErrAdvancePastBound.F("%v is not %d steps away from %v", c.to, n, c.from))
	}
	c.from = c.ops.offset(c.from, n)
}

func (c *closed[T, T2]) distance(o cursor[T]) int64 {
	oth, ok := o.(*closed[T, T2])
	if !ok {
		panic(ErrForeignCursor.F("%T is not a bounded sequence cursor", o))
	}
	return c.ops.minus(oth.from, c.from) + b2i(oth.done) - b2i(c.done)
}

func b2i(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// boundEquality resolves how values of T are compared with the bound of type T2.
func boundEquality[T, T2 any](ops *valueOps[T]) (func(T, T2) bool, error) {
	var (
		typ   = reflect.TypeFor[T]()
		bound = reflect.TypeFor[T2]()
	)
	if typ == bound {
		if ops.equal == nil {
			return nil, ErrNotEqualityComparable.F("%s values can't be compared", typ)
		}
		return func(v T, b T2) bool { return ops.equal(v, any(b).(T)) }, nil
	}
	if vn, ok := mathkit.ValueFunc[T](); ok {
		if bn, ok := mathkit.ValueFunc[T2](); ok {
			return func(v T, b T2) bool { return vn(v).Equal(bn(b)) }, nil
		}
	}
	if implements[T, Equaler[T2]]() {
		return func(v T, b T2) bool { return any(v).(Equaler[T2]).Equal(b) }, nil
	}
	if implements[T2, Equaler[T]]() {
		return func(v T, b T2) bool { return any(b).(Equaler[T]).Equal(v) }, nil
	}
	return nil, ErrNotEqualityComparable.F("%s can't be compared with %s", typ, bound)
}

// boundReachability resolves how the remaining distance to the bound is checked.
// It returns nil when the distance can't be computed.
func boundReachability[T, T2 any](ops *valueOps[T]) func(T, T2, int64) bool {
	if reflect.TypeFor[T]() == reflect.TypeFor[T2]() {
		return func(v T, b T2, n int64) bool {
			d, ok := ops.span(v, any(b).(T))
			return !ok || n <= d
		}
	}
	if !ops.integer {
		return nil
	}
	switch reflect.TypeFor[T2]().Kind() {
	case reflect.Float32, reflect.Float64:
		return nil
	}
	vn, _ := mathkit.ValueFunc[T]()
	bn, ok := mathkit.ValueFunc[T2]()
	if !ok {
		return nil
	}
	return func(v T, b T2, n int64) bool {
		from, _ := vn(v).BigInt()
		to, _ := bn(b).BigInt()
		remaining := bigInt{}.FromBigInt(to).Add(bigInt{}.FromBigInt(from.Neg(from)))
		return 0 <= remaining.Compare(bigInt{}.Of(n))
	}
}

// bigInt holds distances between integers of different kinds, which may not fit into an int64.
type bigInt = fmathkit.BigInt[int64]
