package flow

import (
	"iter"

	"rebel/num"
)

// While yields the iteration count, starting at 0, for as long as cond
// holds. cond is tested before every iteration.
func While(cond func() bool) iter.Seq[int] {
	return func(yield func(int) bool) {
		for n := 0; cond(); n++ {
			if !yield(n) {
				return
			}
		}
	}
}

// Loop is While.
func Loop(cond func() bool) iter.Seq[int] {
	return While(cond)
}

// Until yields for as long as cond does not hold.
func Until(cond func() bool) iter.Seq[int] {
	return func(yield func(int) bool) {
		for n := 0; !cond(); n++ {
			if !yield(n) {
				return
			}
		}
	}
}

// Forever yields the iteration count without end. The loop body leaves
// with break or return.
func Forever() iter.Seq[int] {
	return func(yield func(int) bool) {
		for n := 0; ; n++ {
			if !yield(n) {
				return
			}
		}
	}
}

// For runs init once, then yields while cond holds, calling incr after each
// iteration. Nil clauses are skipped, and a nil cond always holds.
func For(init func(), cond func() bool, incr func()) iter.Seq[int] {
	return func(yield func(int) bool) {
		if init != nil {
			init()
		}
		for n := 0; cond == nil || cond(); n++ {
			if !yield(n) {
				return
			}
			if incr != nil {
				incr()
			}
		}
	}
}

// Range yields i = start, start+step, ... while i <= end. Both bounds are
// inclusive. A step that does not move i toward end never stops on its own,
// and neither does an end at the type's maximum value.
func Range[T num.Integer](start, end, step T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := start; i <= end; i += step {
			if !yield(i) {
				return
			}
		}
	}
}
