package flow

import "iter"

// ForEach yields a pointer to each element of s, first to last. The element
// count is fixed when the loop starts.
func ForEach[T any](s []T) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		n := len(s)
		for i := 0; i < n; i++ {
			if !yield(&s[i]) {
				return
			}
		}
	}
}

// ForIn is ForEach with the element type spelled out and the index
// alongside the pointer:
//
//	for i, p := range flow.ForIn[prim.Real](samples) { ... }
func ForIn[T any](s []T) iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		n := len(s)
		for i := 0; i < n; i++ {
			if !yield(i, &s[i]) {
				return
			}
		}
	}
}

// Map calls fn with every element of s in index order.
func Map[T any](fn func(T), s []T) {
	for p := range ForEach(s) {
		fn(*p)
	}
}
