package eval

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the class of an operand.
type Kind uint8

const (
	KindInt Kind = iota
	KindFloat
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Operand is a scalar argument or result. Integers are carried as int64 and
// floats as float64.
type Operand struct {
	Kind Kind
	I    int64
	F    float64
	B    bool
}

func Int(v int64) Operand     { return Operand{Kind: KindInt, I: v} }
func Float(v float64) Operand { return Operand{Kind: KindFloat, F: v} }
func Bool(v bool) Operand     { return Operand{Kind: KindBool, B: v} }

func (o Operand) String() string {
	switch o.Kind {
	case KindInt:
		return strconv.FormatInt(o.I, 10)
	case KindFloat:
		return strconv.FormatFloat(o.F, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(o.B)
	default:
		return "?"
	}
}

// float widens an int operand.
func (o Operand) float() float64 {
	if o.Kind == KindInt {
		return float64(o.I)
	}
	return o.F
}

// ParseOperand reads an integer (any Go base prefix), a float (a trailing C
// "f" suffix is accepted), true/false, or the constants TRUE and FALSE.
func ParseOperand(s string) (Operand, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "true", "false":
		return Bool(s == "true"), nil
	case "TRUE":
		return Int(1), nil
	case "FALSE":
		return Int(0), nil
	case "":
		return Operand{}, fmt.Errorf("%w: empty operand", ErrOperand)
	}
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return Int(i), nil
	}
	lower := strings.ToLower(s)
	if strings.HasSuffix(lower, "f") && !strings.HasPrefix(strings.TrimLeft(lower, "+-"), "0x") {
		s = s[:len(s)-1]
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Operand{}, fmt.Errorf("%w: %q is not a number", ErrOperand, s)
	}
	return Float(f), nil
}
