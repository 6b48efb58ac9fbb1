package num

// Sqr returns x*x.
func Sqr[T Number](x T) T {
	return x * x
}

// Cbd returns x*x*x.
func Cbd[T Number](x T) T {
	return x * x * x
}

// Round moves x half a unit away from zero. It does not truncate; see
// RoundInt.
func Round[F Float](x F) F {
	if x < 0 {
		return x - 0.5
	}
	return x + 0.5
}

// Floor returns x-1 for negative x and x otherwise. This matches a real
// floor only once the caller truncates, and is off by one for negative
// whole numbers.
func Floor[T SignedNumber](x T) T {
	if x < 0 {
		return x - 1
	}
	return x
}

// Ceil returns x for negative x and x+1 otherwise, the mirror image of
// Floor.
func Ceil[T SignedNumber](x T) T {
	if x < 0 {
		return x
	}
	return x + 1
}

// ArraySize returns the element count of s. Fixed-size arrays are passed
// as a full slice, arr[:].
func ArraySize[S ~[]E, E any](s S) int {
	return len(s)
}
