package num

import (
	"errors"
	"fmt"
	"math"

	"fortio.org/safecast"
)

var (
	// ErrNotFinite is returned when a NaN or infinite value is converted to
	// an integer.
	ErrNotFinite = errors.New("value is not finite")
	// ErrOutOfRange is returned when a value does not fit the target type.
	ErrOutOfRange = errors.New("value out of range")
)

// Cast converts v to T, with Go's conversion rules.
func Cast[T, U Number](v U) T {
	return T(v)
}

// SafeCast converts v to T, failing instead of wrapping when v does not fit.
func SafeCast[T, U Integer](v U) (T, error) {
	return safecast.Conv[T](v)
}

// RoundInt rounds x half away from zero and truncates the result into I.
func RoundInt[I Integer, F Float](x F) (I, error) {
	r := math.Trunc(float64(Round(x)))
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, fmt.Errorf("round %v: %w", x, ErrNotFinite)
	}
	if r < math.MinInt64 || r >= math.MaxInt64 {
		if r >= 0 && r < math.MaxUint64 {
			out, err := safecast.Conv[I](uint64(r))
			if err != nil {
				return 0, fmt.Errorf("round %v: %w: %w", x, ErrOutOfRange, err)
			}
			return out, nil
		}
		return 0, fmt.Errorf("round %v: %w", x, ErrOutOfRange)
	}
	out, err := safecast.Conv[I](int64(r))
	if err != nil {
		return 0, fmt.Errorf("round %v: %w: %w", x, ErrOutOfRange, err)
	}
	return out, nil
}
