package eval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"rebel/internal/eval"
	"rebel/num"
)

func TestApply(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want eval.Operand
	}{
		{"ALIGN", []string{"13", "8"}, eval.Int(16)},
		{"ROUND_UP", []string{"16", "8"}, eval.Int(16)},
		{"ROUND_DOWN", []string{"13", "8"}, eval.Int(8)},
		{"IS_ALIGNED", []string{"16", "8"}, eval.Bool(true)},
		{"IS_ALIGNED", []string{"13", "8"}, eval.Bool(false)},
		{"IS_POWER_OF_2", []string{"0"}, eval.Bool(true)},
		{"IS_POWER_OF_2", []string{"0x40"}, eval.Bool(true)},
		{"MAX", []string{"3", "7"}, eval.Int(7)},
		{"max", []string{"3", "7.5"}, eval.Float(7.5)},
		{"MIN", []string{"-2", "4"}, eval.Int(-2)},
		{"CLAMP", []string{"15", "0", "10"}, eval.Int(10)},
		{"CLAMP", []string{"-5", "0", "10"}, eval.Int(0)},
		{"IN_RANGE", []string{"10", "0", "10"}, eval.Bool(true)},
		{"IN_RANGE", []string{"0.5f", "1", "2"}, eval.Bool(false)},
		{"ABS", []string{"-3"}, eval.Int(3)},
		{"SIGN", []string{"0"}, eval.Int(1)},
		{"SIGN", []string{"-0.25"}, eval.Float(-1)},
		{"SQR", []string{"-4"}, eval.Int(16)},
		{"CBD", []string{"3"}, eval.Int(27)},
		{"ROUND", []string{"2.5"}, eval.Float(3)},
		{"ROUND", []string{"2"}, eval.Float(2.5)},
		{"FLOOR", []string{"-2.5"}, eval.Float(-3.5)},
		{"CEIL", []string{"2.5"}, eval.Float(3.5)},
		{"ARRAY_SIZE", []string{"1", "2", "3"}, eval.Int(3)},
		{"CAST", []string{"BYTE", "200"}, eval.Int(200)},
		{"CAST", []string{"INT", "-2.9"}, eval.Int(-2)},
		{"CAST", []string{"int", "TRUE"}, eval.Int(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := eval.Apply(tc.name, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestApplyErrors(t *testing.T) {
	_, err := eval.Apply("MAX", "1")
	require.ErrorIs(t, err, eval.ErrArity)

	_, err = eval.Apply("FOREACH", "a", "b")
	require.ErrorIs(t, err, eval.ErrUnknownName)

	_, err = eval.Apply("NOPE")
	require.ErrorIs(t, err, eval.ErrUnknownName)

	_, err = eval.Apply("ALIGN", "1.5", "8")
	require.ErrorIs(t, err, eval.ErrOperand)

	_, err = eval.Apply("ALIGN", "13", "6")
	require.ErrorIs(t, err, eval.ErrOperand)

	_, err = eval.Apply("SQR", "seven")
	require.ErrorIs(t, err, eval.ErrOperand)

	_, err = eval.Apply("SQR", "true")
	require.ErrorIs(t, err, eval.ErrOperand)

	_, err = eval.Apply("CAST", "BYTE", "256")
	require.ErrorIs(t, err, num.ErrOutOfRange)
	require.EqualError(t, err, "CAST: value out of range (256 to BYTE)")

	_, err = eval.Apply("CAST", "CHAR", "-129")
	require.ErrorIs(t, err, num.ErrOutOfRange)

	_, err = eval.Apply("CAST", "INT_PTR", "0")
	require.ErrorIs(t, err, eval.ErrOperand)

	var ee *eval.Error
	_, err = eval.Apply("CLAMP", "1", "2")
	require.ErrorAs(t, err, &ee)
	require.Equal(t, "CLAMP", ee.Name)
}

func TestCastFloat(t *testing.T) {
	got, err := eval.Cast("FLOAT", eval.Float(0.1))
	require.NoError(t, err)
	require.Equal(t, float64(float32(0.1)), got.F)

	_, err = eval.Cast("INT", eval.Float(math.Inf(1)))
	require.ErrorIs(t, err, num.ErrOutOfRange)
}

func TestParseOperand(t *testing.T) {
	v, err := eval.ParseOperand(" 0b101 ")
	require.NoError(t, err)
	require.Equal(t, eval.Int(5), v)

	v, err = eval.ParseOperand("1e3")
	require.NoError(t, err)
	require.Equal(t, eval.Float(1000), v)

	_, err = eval.ParseOperand("")
	require.ErrorIs(t, err, eval.ErrOperand)

	require.Equal(t, "2.5", eval.Float(2.5).String())
	require.Equal(t, "true", eval.Bool(true).String())
}

func TestNames(t *testing.T) {
	names := eval.Names()
	require.Len(t, names, 17)
	require.Equal(t, "MAX", names[0])
	require.Equal(t, "ROUND_DOWN", names[len(names)-1])
}
