// Package prim holds the rebel primitive vocabulary as Go type aliases.
//
// Every name is an alias (not a defined type), so a Bool is an int32 in
// every respect: size, alignment, arithmetic and assignability.
package prim

import (
	"reflect"
	"unsafe"
)

type (
	Bool  = int32
	Char  = int8
	Byte  = uint8
	Int   = int32
	Float = float32
	Real  = float64
	Void  = struct{}

	CharPtr  = *Char
	BytePtr  = *Byte
	IntPtr   = *Int
	FloatPtr = *Float
	RealPtr  = *Real
	VoidPtr  = unsafe.Pointer
)

// The two boolean literals.
const (
	True  Bool = 1
	False Bool = 0
)

// Null is the nil VoidPtr.
var Null VoidPtr

// Truth converts a Go bool to True or False.
func Truth(b bool) Bool {
	if b {
		return True
	}
	return False
}

// IsTrue reports whether b is non-zero.
func IsTrue(b Bool) bool {
	return b != False
}

// Alias describes one primitive alias.
type Alias struct {
	Name    string // catalogue spelling, e.g. "INT_PTR"
	GoName  string // identifier in this package, e.g. "IntPtr"
	Host    string // the spelling it stands for in the host language
	Type    reflect.Type
	Pointer bool
}

var aliases = []Alias{
	{Name: "BOOL", GoName: "Bool", Host: "int", Type: reflect.TypeFor[Bool]()},
	{Name: "CHAR", GoName: "Char", Host: "char", Type: reflect.TypeFor[Char]()},
	{Name: "BYTE", GoName: "Byte", Host: "unsigned char", Type: reflect.TypeFor[Byte]()},
	{Name: "INT", GoName: "Int", Host: "int", Type: reflect.TypeFor[Int]()},
	{Name: "FLOAT", GoName: "Float", Host: "float", Type: reflect.TypeFor[Float]()},
	{Name: "REAL", GoName: "Real", Host: "double", Type: reflect.TypeFor[Real]()},
	{Name: "VOID", GoName: "Void", Host: "void", Type: reflect.TypeFor[Void]()},
	{Name: "CHAR_PTR", GoName: "CharPtr", Host: "char *", Type: reflect.TypeFor[CharPtr](), Pointer: true},
	{Name: "BYTE_PTR", GoName: "BytePtr", Host: "unsigned char *", Type: reflect.TypeFor[BytePtr](), Pointer: true},
	{Name: "INT_PTR", GoName: "IntPtr", Host: "int *", Type: reflect.TypeFor[IntPtr](), Pointer: true},
	{Name: "FLOAT_PTR", GoName: "FloatPtr", Host: "float *", Type: reflect.TypeFor[FloatPtr](), Pointer: true},
	{Name: "REAL_PTR", GoName: "RealPtr", Host: "double *", Type: reflect.TypeFor[RealPtr](), Pointer: true},
	{Name: "VOID_PTR", GoName: "VoidPtr", Host: "void *", Type: reflect.TypeFor[VoidPtr](), Pointer: true},
}

// Aliases returns the alias table in declaration order.
func Aliases() []Alias {
	out := make([]Alias, len(aliases))
	copy(out, aliases)
	return out
}

// Lookup finds an alias by its catalogue spelling.
func Lookup(name string) (Alias, bool) {
	for _, a := range aliases {
		if a.Name == name {
			return a, true
		}
	}
	return Alias{}, false
}
