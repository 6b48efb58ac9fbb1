// Package eval applies the catalogue's numeric and bitwise utilities to
// scalar operands. Integers stay integers; any float operand promotes the
// whole call to float, as the host language's usual conversions would.
package eval

import (
	"errors"
	"fmt"

	"rebel/internal/catalog"
	"rebel/num"
)

var (
	ErrUnknownName = errors.New("unknown utility")
	ErrArity       = errors.New("wrong number of operands")
	ErrOperand     = errors.New("invalid operand")
)

// Error reports a failed evaluation. It matches its sentinel with errors.Is.
type Error struct {
	Name   string
	Err    error
	Detail string
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Name, e.Err)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Names lists the evaluable names in catalogue order.
func Names() []string {
	var out []string
	for _, e := range catalog.All() {
		if _, ok := utilities[e.Name]; ok {
			out = append(out, e.Name)
		}
	}
	return out
}

type utility func(name string, args []Operand) (Operand, error)

var utilities = map[string]utility{
	"MAX":           ordered2(num.Max[int64], num.Max[float64]),
	"MIN":           ordered2(num.Min[int64], num.Min[float64]),
	"ABS":           arith1(num.Abs[int64], num.Abs[float64]),
	"SIGN":          arith1(num.Sign[int64], num.Sign[float64]),
	"SQR":           arith1(num.Sqr[int64], num.Sqr[float64]),
	"CBD":           arith1(num.Cbd[int64], num.Cbd[float64]),
	"FLOOR":         arith1(num.Floor[int64], num.Floor[float64]),
	"CEIL":          arith1(num.Ceil[int64], num.Ceil[float64]),
	"CLAMP":         clamp,
	"IN_RANGE":      inRange,
	"ROUND":         round,
	"ARRAY_SIZE":    arraySize,
	"IS_POWER_OF_2": isPowerOf2,
	"IS_ALIGNED":    aligned(func(x, a int64) Operand { return Bool(num.IsAligned(x, a)) }),
	"ALIGN":         aligned(func(x, a int64) Operand { return Int(num.Align(x, a)) }),
	"ROUND_UP":      aligned(func(x, a int64) Operand { return Int(num.RoundUp(x, a)) }),
	"ROUND_DOWN":    aligned(func(x, a int64) Operand { return Int(num.RoundDown(x, a)) }),
}

// Eval applies the utility called name (any case) to args.
func Eval(name string, args ...Operand) (Operand, error) {
	e, ok := catalog.Lookup(name)
	if !ok {
		return Operand{}, &Error{Name: name, Err: ErrUnknownName}
	}
	fn, ok := utilities[e.Name]
	if !ok {
		return Operand{}, &Error{Name: e.Name, Err: ErrUnknownName, Detail: fmt.Sprintf("%s is a %s name", e.Name, e.Group)}
	}
	if e.Name != "ARRAY_SIZE" && len(args) != len(e.Params) {
		return Operand{}, &Error{Name: e.Name, Err: ErrArity, Detail: fmt.Sprintf("want %d, got %d", len(e.Params), len(args))}
	}
	for i, a := range args {
		if a.Kind == KindBool {
			return Operand{}, &Error{Name: e.Name, Err: ErrOperand, Detail: fmt.Sprintf("operand %d is a bool", i+1)}
		}
	}
	return fn(e.Name, args)
}

// Apply parses raw operands and evaluates name. CAST takes a primitive type
// name as its first operand.
func Apply(name string, raw ...string) (Operand, error) {
	e, ok := catalog.Lookup(name)
	if !ok {
		return Operand{}, &Error{Name: name, Err: ErrUnknownName}
	}
	if e.Name == "CAST" {
		if len(raw) != 2 {
			return Operand{}, &Error{Name: e.Name, Err: ErrArity, Detail: fmt.Sprintf("want 2, got %d", len(raw))}
		}
		v, err := ParseOperand(raw[1])
		if err != nil {
			return Operand{}, &Error{Name: e.Name, Err: err}
		}
		return Cast(raw[0], v)
	}
	if _, ok := utilities[e.Name]; !ok {
		return Eval(e.Name)
	}
	args := make([]Operand, len(raw))
	for i, r := range raw {
		v, err := ParseOperand(r)
		if err != nil {
			return Operand{}, &Error{Name: e.Name, Err: err}
		}
		args[i] = v
	}
	return Eval(e.Name, args...)
}

func anyFloat(args []Operand) bool {
	for _, a := range args {
		if a.Kind == KindFloat {
			return true
		}
	}
	return false
}

func ordered2(i func(a, b int64) int64, f func(a, b float64) float64) utility {
	return func(_ string, args []Operand) (Operand, error) {
		if anyFloat(args) {
			return Float(f(args[0].float(), args[1].float())), nil
		}
		return Int(i(args[0].I, args[1].I)), nil
	}
}

func arith1(i func(int64) int64, f func(float64) float64) utility {
	return func(_ string, args []Operand) (Operand, error) {
		if args[0].Kind == KindFloat {
			return Float(f(args[0].F)), nil
		}
		return Int(i(args[0].I)), nil
	}
}

func clamp(_ string, args []Operand) (Operand, error) {
	if anyFloat(args) {
		return Float(num.Clamp(args[0].float(), args[1].float(), args[2].float())), nil
	}
	return Int(num.Clamp(args[0].I, args[1].I, args[2].I)), nil
}

func inRange(_ string, args []Operand) (Operand, error) {
	if anyFloat(args) {
		return Bool(num.InRange(args[0].float(), args[1].float(), args[2].float())), nil
	}
	return Bool(num.InRange(args[0].I, args[1].I, args[2].I)), nil
}

// round never truncates, so the result is always a float.
func round(_ string, args []Operand) (Operand, error) {
	return Float(num.Round(args[0].float())), nil
}

// arraySize counts its operands as the elements of one sequence.
func arraySize(_ string, args []Operand) (Operand, error) {
	return Int(int64(num.ArraySize(args))), nil
}

func isPowerOf2(name string, args []Operand) (Operand, error) {
	if args[0].Kind != KindInt {
		return Operand{}, &Error{Name: name, Err: ErrOperand, Detail: "bitwise operand must be an integer"}
	}
	return Bool(num.IsPowerOf2(args[0].I)), nil
}

// aligned rejects float operands and alignments that are not a positive
// power of two.
func aligned(op func(x, a int64) Operand) utility {
	return func(name string, args []Operand) (Operand, error) {
		if anyFloat(args) {
			return Operand{}, &Error{Name: name, Err: ErrOperand, Detail: "bitwise operand must be an integer"}
		}
		if a := args[1].I; a <= 0 || !num.IsPowerOf2(a) {
			return Operand{}, &Error{Name: name, Err: ErrOperand, Detail: fmt.Sprintf("alignment %d is not a power of two", a)}
		}
		return op(args[0].I, args[1].I), nil
	}
}
