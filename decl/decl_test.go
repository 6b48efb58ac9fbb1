package decl_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"rebel/decl"
	"rebel/internal/layout"
	"rebel/internal/testkit"
	"rebel/prim"
)

func TestStructMatchesNativeAggregate(t *testing.T) {
	sd, err := decl.Struct("Sample",
		decl.F[prim.Byte]("Tag"),
		decl.F[prim.Real]("Value"),
		decl.F[prim.Int]("count"),
	)
	require.NoError(t, err)
	require.Equal(t, "Sample", sd.Name())

	type native struct {
		Tag   prim.Byte
		Value prim.Real
		count prim.Int
	}
	nt := reflect.TypeFor[native]()
	require.Equal(t, nt.Size(), sd.Type().Size())
	require.Equal(t, nt.Align(), sd.Type().Align())
	for i := range nt.NumField() {
		require.Equal(t, nt.Field(i).Offset, sd.Type().Field(i).Offset, "field %d", i)
	}

	le := layout.New(layout.Host())
	l, err := sd.Layout(le)
	require.NoError(t, err)
	require.Equal(t, int(nt.Size()), l.Size)
}

func TestStructGetSet(t *testing.T) {
	sd, err := decl.Struct("Pair", decl.F[prim.Int]("left"), decl.F[string]("Right"))
	require.NoError(t, err)

	v := sd.New()
	require.NoError(t, sd.Set(v, "left", prim.Int(4)))
	require.NoError(t, sd.Set(v, "Right", "r"))

	got, err := sd.Get(v, "left")
	require.NoError(t, err)
	require.Equal(t, prim.Int(4), got)

	got, err = sd.Get(v, "Right")
	require.NoError(t, err)
	require.Equal(t, "r", got)

	err = sd.Set(v, "left", "not an int")
	require.ErrorIs(t, err, decl.ErrFieldType)

	_, err = sd.Get(v, "middle")
	require.ErrorIs(t, err, decl.ErrNoSuchField)

	_, err = sd.Get(reflect.ValueOf(3), "left")
	require.ErrorIs(t, err, decl.ErrFieldType)
}

func TestEmptyAndNestedDeclarations(t *testing.T) {
	empty, err := decl.Struct("Empty")
	require.NoError(t, err)
	require.Equal(t, uintptr(0), empty.Type().Size())
	require.Empty(t, empty.Fields())

	leaf, err := decl.Struct("Leaf", decl.F[prim.Int]("N"))
	require.NoError(t, err)
	node, err := decl.Struct("Node", decl.Ref("Left", leaf), decl.Ref("Right", leaf))
	require.NoError(t, err)
	require.Equal(t, reflect.PointerTo(leaf.Type()), node.Type().Field(0).Type)

	u, err := decl.Union("Empty")
	require.NoError(t, err)
	_, ok := u.New().Active()
	require.False(t, ok)
}

func TestRefToUnionHoldsValue(t *testing.T) {
	number, err := decl.Union("Num", decl.F[prim.Int]("I"), decl.F[prim.Real]("R"))
	require.NoError(t, err)
	cell, err := decl.Struct("Cell", decl.F[prim.Byte]("Tag"), decl.Ref("Payload", number))
	require.NoError(t, err)
	require.Equal(t, reflect.TypeFor[*decl.Value](), cell.Type().Field(1).Type)

	payload := number.New()
	require.NoError(t, payload.Set("R", prim.Real(2.5)))
	v := cell.New()
	require.NoError(t, cell.Set(v, "Payload", payload))

	got, err := cell.Get(v, "Payload")
	require.NoError(t, err)
	r, err := decl.As[prim.Real](got.(*decl.Value), "R")
	require.NoError(t, err)
	require.Equal(t, prim.Real(2.5), r)
}

func TestDeclarationErrors(t *testing.T) {
	_, err := decl.Struct("Dup", decl.F[prim.Int]("A"), decl.F[prim.Real]("A"))
	require.ErrorIs(t, err, decl.ErrDuplicateField)
	require.EqualError(t, err, "Dup.A: duplicate field")

	_, err = decl.Union("Dup", decl.F[prim.Int]("A"), decl.F[prim.Int]("A"))
	require.ErrorIs(t, err, decl.ErrDuplicateField)

	_, err = decl.Struct("Bad", decl.F[prim.Int]("1x"))
	require.ErrorIs(t, err, decl.ErrInvalidName)

	_, err = decl.Struct("not a name")
	require.ErrorIs(t, err, decl.ErrInvalidName)

	_, err = decl.Union("NoType", decl.Field{Name: "X"})
	require.ErrorIs(t, err, decl.ErrNilType)
}

func TestUnionTracksActiveField(t *testing.T) {
	number, err := decl.Union("Number",
		decl.F[prim.Int]("I"),
		decl.F[prim.Real]("R"),
		decl.F[prim.CharPtr]("S"),
	)
	require.NoError(t, err)

	v := number.New()
	require.Equal(t, -1, v.Tag())
	_, err = v.Get("I")
	require.ErrorIs(t, err, decl.ErrInactiveField)

	require.NoError(t, v.Set("R", prim.Real(2.5)))
	name, ok := v.Active()
	require.True(t, ok)
	require.Equal(t, "R", name)
	require.Equal(t, 1, v.Tag())

	r, err := decl.As[prim.Real](v, "R")
	require.NoError(t, err)
	require.Equal(t, prim.Real(2.5), r)

	_, err = v.Get("I")
	require.ErrorIs(t, err, decl.ErrInactiveField)
	require.Contains(t, err.Error(), "active field is R")

	require.NoError(t, v.Set("I", prim.Int(9)))
	_, err = v.Get("R")
	require.ErrorIs(t, err, decl.ErrInactiveField, "writing I deactivates R")

	_, err = decl.As[prim.Real](v, "I")
	require.ErrorIs(t, err, decl.ErrFieldType)

	require.ErrorIs(t, v.Set("R", "2.5"), decl.ErrFieldType)
	require.ErrorIs(t, v.Set("Q", 1), decl.ErrNoSuchField)

	require.NoError(t, v.Set("S", nil))
	s, err := decl.As[prim.CharPtr](v, "S")
	require.NoError(t, err)
	require.Nil(t, s)

	v.Reset()
	require.Equal(t, -1, v.Tag())
}

func TestUnionLayouts(t *testing.T) {
	u, err := decl.Union("Wide", decl.F[prim.Byte]("B"), decl.F[prim.Real]("R"))
	require.NoError(t, err)

	le := layout.New(layout.X86_64LinuxGNU())
	shared, err := u.StorageLayout(le)
	require.NoError(t, err)
	require.Equal(t, 8, shared.Size)

	tagged, err := u.Layout(le)
	require.NoError(t, err)
	require.Equal(t, 16, tagged.Size)
	require.Equal(t, 8, tagged.PayloadOffset)
}

func TestDeclaredStructInvariants(t *testing.T) {
	sd, err := decl.Struct("Packet",
		decl.F[prim.Char]("Kind"),
		decl.F[prim.Real]("Weight"),
		decl.F[prim.Float]("Ratio"),
		decl.F[prim.CharPtr]("Label"),
	)
	require.NoError(t, err)
	for _, target := range []layout.Target{layout.X86_64LinuxGNU(), layout.I386LinuxGNU()} {
		require.NoError(t, testkit.CheckStructInvariants(layout.New(target), sd.Type()), target.Triple)
	}
}
