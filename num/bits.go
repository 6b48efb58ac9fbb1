package num

// IsPowerOf2 reports whether x&(x-1) == 0. Zero passes this test.
func IsPowerOf2[T Integer](x T) bool {
	return x&(x-1) == 0
}

// IsAligned reports whether x is a multiple of the power of two a.
func IsAligned[T Integer](x, a T) bool {
	return x&(a-1) == 0
}

// Align rounds x up to the next multiple of the power of two a.
func Align[T Integer](x, a T) T {
	return (x + (a - 1)) &^ (a - 1)
}

// RoundUp is Align.
func RoundUp[T Integer](x, a T) T {
	return Align(x, a)
}

// RoundDown rounds x down to the previous multiple of the power of two a.
func RoundDown[T Integer](x, a T) T {
	return x &^ (a - 1)
}
