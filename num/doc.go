// Package num provides the rebel numeric and bitwise utilities as generic,
// side-effect-free functions.
//
// Each function evaluates its arguments exactly once, so passing an
// expression with side effects is safe. The compatibility quirks of the
// textual forms are kept on purpose:
//
//	Sign(0) == 1
//	IsPowerOf2(0) == true
//	Round, Floor and Ceil only nudge the value; callers truncate afterwards
//	(RoundInt does both).
//
// The alignment helpers (IsAligned, Align, RoundUp, RoundDown) assume the
// alignment is a power of two; other values give results that do not
// correspond to modular arithmetic.
package num
