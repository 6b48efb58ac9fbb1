package prim_test

import (
	"reflect"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"rebel/prim"
)

func TestAliasesAreHostTypes(t *testing.T) {
	require.Equal(t, unsafe.Sizeof(int32(0)), unsafe.Sizeof(prim.Int(0)))
	require.Equal(t, unsafe.Alignof(float64(0)), unsafe.Alignof(prim.Real(0)))
	require.Equal(t, reflect.TypeFor[*int32](), reflect.TypeFor[prim.IntPtr]())
	require.Equal(t, uintptr(0), unsafe.Sizeof(prim.Void{}))

	var i prim.Int = 7
	var n int32 = i // assignable without conversion
	require.Equal(t, int32(7), n*2/2)

	var b prim.Byte = 255
	b++
	require.Equal(t, prim.Byte(0), b, "byte arithmetic wraps like uint8")
}

func TestBoolConstants(t *testing.T) {
	require.Equal(t, prim.Bool(1), prim.True)
	require.Equal(t, prim.Bool(0), prim.False)
	require.Equal(t, prim.True, prim.Truth(true))
	require.Equal(t, prim.False, prim.Truth(false))
	require.True(t, prim.IsTrue(prim.True))
	require.True(t, prim.IsTrue(-2))
	require.False(t, prim.IsTrue(prim.False))
	require.Nil(t, prim.Null)
}

func TestAliasTable(t *testing.T) {
	all := prim.Aliases()
	require.Len(t, all, 13)

	seen := make(map[string]bool, len(all))
	for _, a := range all {
		require.False(t, seen[a.Name], "duplicate alias %s", a.Name)
		seen[a.Name] = true
		require.NotNil(t, a.Type, a.Name)
		if a.Pointer {
			require.Contains(t, []reflect.Kind{reflect.Pointer, reflect.UnsafePointer}, a.Type.Kind(), a.Name)
		}
	}

	a, ok := prim.Lookup("REAL_PTR")
	require.True(t, ok)
	require.Equal(t, "RealPtr", a.GoName)
	require.Equal(t, reflect.Float64, a.Type.Elem().Kind())

	_, ok = prim.Lookup("real_ptr")
	require.False(t, ok, "lookup is exact")

	all[0].Name = "mutated"
	again, _ := prim.Lookup("BOOL")
	require.Equal(t, "BOOL", again.Name, "Aliases returns a copy")
}
