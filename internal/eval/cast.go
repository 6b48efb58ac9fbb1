package eval

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"fortio.org/safecast"

	"rebel/num"
	"rebel/prim"
)

// Cast converts v into the primitive named typeName (e.g. "BYTE"). Floats
// are truncated toward zero; values that do not fit the target fail with
// num.ErrOutOfRange instead of wrapping.
func Cast(typeName string, v Operand) (Operand, error) {
	alias, ok := prim.Lookup(strings.ToUpper(strings.TrimSpace(typeName)))
	if !ok {
		return Operand{}, &Error{Name: "CAST", Err: ErrOperand, Detail: fmt.Sprintf("unknown type %q", typeName)}
	}
	if v.Kind == KindBool {
		v = Int(int64(prim.Truth(v.B)))
	}
	switch alias.Type.Kind() {
	case reflect.Float32:
		return Float(float64(num.Cast[float32](v.float()))), nil
	case reflect.Float64:
		return Float(v.float()), nil
	case reflect.Int8, reflect.Int32, reflect.Uint8:
	default:
		return Operand{}, &Error{Name: "CAST", Err: ErrOperand, Detail: fmt.Sprintf("cannot cast to %s", alias.Name)}
	}

	i := v.I
	if v.Kind == KindFloat {
		t := math.Trunc(v.F)
		if math.IsNaN(t) || t < math.MinInt64 || t >= math.MaxInt64 {
			return Operand{}, &Error{Name: "CAST", Err: num.ErrOutOfRange, Detail: fmt.Sprintf("%v to %s", v.F, alias.Name)}
		}
		i = int64(t)
	}
	out, ok := narrow(alias.Type.Kind(), i)
	if !ok {
		return Operand{}, &Error{Name: "CAST", Err: num.ErrOutOfRange, Detail: fmt.Sprintf("%d to %s", i, alias.Name)}
	}
	return Int(out), nil
}

func narrow(k reflect.Kind, i int64) (int64, bool) {
	var err error
	var v int64
	switch k {
	case reflect.Int8:
		var c prim.Char
		c, err = safecast.Conv[prim.Char](i)
		v = int64(c)
	case reflect.Uint8:
		var b prim.Byte
		b, err = safecast.Conv[prim.Byte](i)
		v = int64(b)
	default:
		var n prim.Int
		n, err = safecast.Conv[prim.Int](i)
		v = int64(n)
	}
	return v, err == nil
}
