// Package cursorkitcontract holds the behavioural contract every cursorkit.Cursor implementation must fulfil.
package cursorkitcontract

import (
	"testing"

	"go.llib.dev/iota/pkg/cursorkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

// Cursor tests the protocol methods the subject's capabilities promise.
//
// MakeSubject must return a fresh cursor with at least three values left.
// The capability specific cases only run when the subject implements the related interface.
type Cursor[T any] struct {
	MakeSubject func(testing.TB) cursorkit.Cursor[T]
}

func (c Cursor[T]) Test(t *testing.T) {
	c.Spec(testcase.NewSpec(t))
}

func (c Cursor[T]) Spec(s *testcase.Spec) {
	subject := testcase.Let(s, func(t *testcase.T) cursorkit.Cursor[T] {
		return c.MakeSubject(t)
	})

	s.Test("a fresh cursor is not done", func(t *testcase.T) {
		assert.False(t, subject.Get(t).Done())
	})

	s.Test("Current is repeatable without side effects", func(t *testcase.T) {
		cur := subject.Get(t)
		assert.Equal(t, cur.Current(), cur.Current())
		assert.False(t, cur.Done())
	})

	s.Test("Next moves to a following value", func(t *testcase.T) {
		cur := subject.Get(t)
		cur.Next()
		assert.False(t, cur.Done())
		cur.Next()
		assert.False(t, cur.Done())
	})

	s.Describe("ForwardCursor", func(s *testcase.Spec) {
		forward := func(t *testcase.T) cursorkit.ForwardCursor[T] {
			fc, ok := subject.Get(t).(cursorkit.ForwardCursor[T])
			if !ok {
				t.Skip("the subject is not a forward cursor")
			}
			return fc
		}

		s.Test("a clone is equal to its original", func(t *testcase.T) {
			cur := forward(t)
			clone := cur.Clone()
			assert.True(t, cur.Equal(clone))
			assert.Equal(t, cur.Current(), clone.Current())
		})

		s.Test("advancing a clone leaves the original in place", func(t *testcase.T) {
			cur := forward(t)
			before := cur.Current()
			clone := cur.Clone()
			clone.Next()
			assert.False(t, cur.Equal(clone))
			assert.Equal(t, before, cur.Current())
		})

		s.Test("independently advanced cursors converge", func(t *testcase.T) {
			cur := forward(t)
			clone := cur.Clone()
			cur.Next()
			clone.Next()
			assert.True(t, cur.Equal(clone))
		})

		s.Test("a clone keeps the capabilities of the original", func(t *testcase.T) {
			cur := forward(t)
			_, isBidi := cursorkit.Cursor[T](cur).(cursorkit.BidirectionalCursor[T])
			_, isCloneBidi := cur.Clone().(cursorkit.BidirectionalCursor[T])
			assert.Equal(t, isBidi, isCloneBidi)
			_, isRA := cursorkit.Cursor[T](cur).(cursorkit.RandomAccessCursor[T])
			_, isCloneRA := cur.Clone().(cursorkit.RandomAccessCursor[T])
			assert.Equal(t, isRA, isCloneRA)
		})
	})

	s.Describe("BidirectionalCursor", func(s *testcase.Spec) {
		bidirectional := func(t *testcase.T) cursorkit.BidirectionalCursor[T] {
			bc, ok := subject.Get(t).(cursorkit.BidirectionalCursor[T])
			if !ok {
				t.Skip("the subject is not a bidirectional cursor")
			}
			return bc
		}

		s.Test("Prev undoes Next", func(t *testcase.T) {
			cur := bidirectional(t)
			origin := cur.Clone()
			cur.Next()
			cur.Prev()
			assert.True(t, cur.Equal(origin))
			assert.Equal(t, origin.Current(), cur.Current())
		})
	})

	s.Describe("RandomAccessCursor", func(s *testcase.Spec) {
		randomAccess := func(t *testcase.T) cursorkit.RandomAccessCursor[T] {
			rc, ok := subject.Get(t).(cursorkit.RandomAccessCursor[T])
			if !ok {
				t.Skip("the subject is not a random access cursor")
			}
			return rc
		}

		s.Test("Advance is equivalent to repeated Next calls", func(t *testcase.T) {
			cur := randomAccess(t)
			stepped := cur.Clone()
			stepped.Next()
			stepped.Next()
			cur.Advance(2)
			assert.True(t, cur.Equal(stepped))
			assert.Equal(t, stepped.Current(), cur.Current())
		})

		s.Test("Distance measures the steps between cursors", func(t *testcase.T) {
			cur := randomAccess(t)
			ahead := cur.Clone()
			ahead.Next()
			ahead.Next()
			assert.Equal(t, int64(2), cur.Distance(ahead))
			assert.Equal(t, int64(-2), ahead.(cursorkit.RandomAccessCursor[T]).Distance(cur))
			assert.Equal(t, int64(0), cur.Distance(cur.Clone()))
		})
	})
}
