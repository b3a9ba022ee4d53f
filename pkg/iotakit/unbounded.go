package iotakit

// unbounded steps from a value through its successors, and never terminates.
type unbounded[T any] struct {
	value T
	ops   *valueOps[T]
}

func (c *unbounded[T]) Current() T { return c.value }

func (c *unbounded[T]) Next() { c.value = c.ops.succ(c.value) }

func (c *unbounded[T]) Done() bool { return false }

func (c *unbounded[T]) Tier() Tier { return c.ops.tier }

func (c *unbounded[T]) describe() Description {
	return Description{Tier: c.ops.tier, Difference: c.ops.diff, Path: Unbounded}
}

func (c *unbounded[T]) base() cursor[T] { return c }

func (c *unbounded[T]) clone() cursor[T] {
	return &unbounded[T]{value: c.value, ops: c.ops}
}

func (c *unbounded[T]) equal(o cursor[T]) bool {
	oth, ok := o.(*unbounded[T])
	return ok && c.ops.equal(c.value, oth.value)
}

func (c *unbounded[T]) retreat() { c.value = c.ops.pred(c.value) }

func (c *unbounded[T]) advance(n int64) {
	c.ops.diff.check(n)
	c.value = c.ops.offset(c.value, n)
}

func (c *unbounded[T]) distance(o cursor[T]) int64 {
	oth, ok := o.(*unbounded[T])
	if !ok {
		panic(ErrForeignCursor.F("%T is not an unbounded sequence cursor", o))
	}
	return c.ops.minus(oth.value, c.value)
}
