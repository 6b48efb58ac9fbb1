package num

import "cmp"

// Max returns a if a > b, otherwise b. Ties return b.
func Max[T cmp.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min returns a if a < b, otherwise b. Ties return b.
func Min[T cmp.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Clamp is Min(Max(x, lo), hi). With lo > hi the result is hi.
func Clamp[T cmp.Ordered](x, lo, hi T) T {
	return Min(Max(x, lo), hi)
}

// InRange reports whether lo <= x <= hi.
func InRange[T cmp.Ordered](x, lo, hi T) bool {
	return x >= lo && x <= hi
}

// Abs returns -x for negative x, x otherwise.
// The most negative value of a signed integer type is returned unchanged.
func Abs[T SignedNumber](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1 for negative x and 1 otherwise, including zero.
func Sign[T SignedNumber](x T) T {
	if x < 0 {
		return -1
	}
	return 1
}
