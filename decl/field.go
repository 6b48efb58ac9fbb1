package decl

import (
	"go/token"
	"reflect"
)

// Field is one entry of a declaration's field list.
type Field struct {
	Name string
	Type reflect.Type
}

// F builds a field of type T.
func F[T any](name string) Field {
	return Field{Name: name, Type: reflect.TypeFor[T]()}
}

// Ref builds a field holding a pointer to a declared aggregate, which is how
// one declaration nests another. A union's values are already *Value, so a
// union reference is a *Value field.
func Ref(name string, target Declared) Field {
	if _, ok := target.(*UnionDecl); ok {
		return Field{Name: name, Type: target.Type()}
	}
	return Field{Name: name, Type: reflect.PointerTo(target.Type())}
}

// Declared is implemented by *StructDecl and *UnionDecl.
type Declared interface {
	Name() string
	Type() reflect.Type
	Fields() []Field
}

func checkFields(decl string, fields []Field) error {
	if !token.IsIdentifier(decl) {
		return &Error{Decl: decl, Err: ErrInvalidName}
	}
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if !token.IsIdentifier(f.Name) || f.Name == "_" {
			return &Error{Decl: decl, Field: f.Name, Err: ErrInvalidName}
		}
		if f.Type == nil {
			return &Error{Decl: decl, Field: f.Name, Err: ErrNilType}
		}
		if _, dup := seen[f.Name]; dup {
			return &Error{Decl: decl, Field: f.Name, Err: ErrDuplicateField}
		}
		seen[f.Name] = struct{}{}
	}
	return nil
}

func cloneFields(fields []Field) []Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

func fieldIndex(fields []Field, name string) int {
	for i := range fields {
		if fields[i].Name == name {
			return i
		}
	}
	return -1
}
