package cursorkit

// Delimit ends the cursor right before the first value equal to the sentinel.
// The sentinel itself is not yielded.
//
// When the source is a ForwardCursor, the delimited cursor is one too.
func Delimit[T comparable](c Cursor[T], sentinel T) Cursor[T] {
	return DelimitFunc(c, func(v T) bool { return v == sentinel })
}

// DelimitFunc ends the cursor right before the first value that isSentinel reports true for.
func DelimitFunc[T any](c Cursor[T], isSentinel func(T) bool) Cursor[T] {
	var base = &delimit[T]{cursor: c, isSentinel: isSentinel}
	if _, ok := c.(ForwardCursor[T]); ok {
		return delimitForward[T]{base}
	}
	return base
}

type delimit[T any] struct {
	cursor     Cursor[T]
	isSentinel func(T) bool
}

func (c *delimit[T]) Current() T { return c.cursor.Current() }

func (c *delimit[T]) Next() { c.cursor.Next() }

func (c *delimit[T]) Done() bool {
	return c.cursor.Done() || c.isSentinel(c.cursor.Current())
}

// Unwrap returns the source cursor.
func (c *delimit[T]) Unwrap() Cursor[T] { return c.cursor }

func (c *delimit[T]) source() *delimit[T] { return c }

type delimitForward[T any] struct{ *delimit[T] }

func (c delimitForward[T]) Equal(o Cursor[T]) bool {
	oth, ok := o.(interface{ source() *delimit[T] })
	if !ok {
		return false
	}
	return c.cursor.(ForwardCursor[T]).Equal(oth.source().cursor)
}

func (c delimitForward[T]) Clone() Cursor[T] {
	return DelimitFunc(c.cursor.(ForwardCursor[T]).Clone(), c.isSentinel)
}
