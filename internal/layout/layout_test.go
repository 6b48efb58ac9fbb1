package layout_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"rebel/internal/layout"
	"rebel/internal/testkit"
	"rebel/prim"
)

type mixed struct {
	A prim.Byte
	B prim.Real
	C prim.Int
	D prim.CharPtr
	E [3]prim.Char
}

type trailing struct {
	N prim.Int
	V prim.Void
}

func TestHostLayoutMatchesReflect(t *testing.T) {
	le := layout.New(layout.Host())
	for _, typ := range []reflect.Type{
		reflect.TypeFor[mixed](),
		reflect.TypeFor[trailing](),
		reflect.TypeFor[[4]mixed](),
		reflect.TypeFor[string](),
		reflect.TypeFor[[]int](),
		reflect.TypeFor[any](),
		reflect.TypeFor[complex64](),
		reflect.TypeFor[map[string]int](),
		reflect.TypeFor[struct{}](),
	} {
		l, err := le.LayoutOf(typ)
		require.NoError(t, err, typ.String())
		require.Equal(t, int(typ.Size()), l.Size, "size of %v", typ)
		require.Equal(t, typ.Align(), l.Align, "align of %v", typ)
	}

	for _, a := range prim.Aliases() {
		size, err := le.SizeOf(a.Type)
		require.NoError(t, err, a.Name)
		require.Equal(t, int(a.Type.Size()), size, a.Name)
	}
}

func TestStructFieldOffsets(t *testing.T) {
	le := layout.New(layout.X86_64LinuxGNU())
	typ := reflect.TypeFor[mixed]()
	l, err := le.LayoutOf(typ)
	require.NoError(t, err)
	require.Equal(t, []int{0, 8, 16, 24, 32}, l.FieldOffsets)
	require.Equal(t, 40, l.Size)
	require.Equal(t, 8, l.Align)

	off, err := le.FieldOffset(typ, 3)
	require.NoError(t, err)
	require.Equal(t, 24, off)
}

func TestI386Alignment(t *testing.T) {
	le := layout.New(layout.I386LinuxGNU())
	l, err := le.LayoutOf(reflect.TypeFor[mixed]())
	require.NoError(t, err)
	require.Equal(t, []int{0, 4, 12, 16, 20}, l.FieldOffsets)
	require.Equal(t, 24, l.Size)
	require.Equal(t, 4, l.Align)
}

func TestUnionLayouts(t *testing.T) {
	le := layout.New(layout.X86_64LinuxGNU())
	members := []reflect.Type{
		reflect.TypeFor[prim.Byte](),
		reflect.TypeFor[prim.Real](),
		reflect.TypeFor[[3]prim.Int](),
	}

	shared, err := le.SharedLayout(members)
	require.NoError(t, err)
	require.Equal(t, 16, shared.Size)
	require.Equal(t, 8, shared.Align)
	require.Equal(t, []int{0, 0, 0}, shared.FieldOffsets)

	tagged, err := le.TagUnionLayout(members)
	require.NoError(t, err)
	require.Equal(t, 4, tagged.TagSize)
	require.Equal(t, 8, tagged.PayloadOffset)
	require.Equal(t, 24, tagged.Size)
	require.Equal(t, 8, tagged.Align)

	empty, err := le.TagUnionLayout(nil)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Size)
}

func TestUnsupportedKind(t *testing.T) {
	le := layout.New(layout.Host())
	_, err := le.LayoutOf(nil)
	var lerr *layout.LayoutError
	require.True(t, errors.As(err, &lerr))
	require.Equal(t, layout.LayoutErrNilType, lerr.Kind)
}

func TestTargetByName(t *testing.T) {
	tgt, ok := layout.TargetByName("386")
	require.True(t, ok)
	require.Equal(t, 4, tgt.PtrSize)

	_, ok = layout.TargetByName("pdp11")
	require.False(t, ok)
}

func TestStructInvariantsAcrossTargets(t *testing.T) {
	for _, target := range []layout.Target{layout.Host(), layout.X86_64LinuxGNU(), layout.I386LinuxGNU()} {
		le := layout.New(target)
		for _, typ := range []reflect.Type{
			reflect.TypeFor[mixed](),
			reflect.TypeFor[trailing](),
			reflect.TypeFor[struct{}](),
			reflect.TypeFor[struct {
				M mixed
				B prim.Bool
			}](),
		} {
			require.NoError(t, testkit.CheckStructInvariants(le, typ), "%s %v", target.Triple, typ)
		}
	}
}
