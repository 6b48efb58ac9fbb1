package decl

import (
	"fmt"
	"reflect"
	"unicode"
	"unicode/utf8"
	"unsafe"

	"rebel/internal/layout"
)

// pkgPath qualifies lower-case field names in generated struct types.
const pkgPath = "rebel/decl"

// StructDecl is a declared product type.
type StructDecl struct {
	name   string
	fields []Field
	typ    reflect.Type
}

// Struct declares a named product type whose fields appear in the given
// order. An empty field list declares an empty aggregate.
func Struct(name string, fields ...Field) (sd *StructDecl, err error) {
	if err := checkFields(name, fields); err != nil {
		return nil, err
	}
	sfs := make([]reflect.StructField, len(fields))
	for i, f := range fields {
		sfs[i] = reflect.StructField{Name: f.Name, Type: f.Type}
		if r, _ := utf8.DecodeRuneInString(f.Name); !unicode.IsUpper(r) {
			sfs[i].PkgPath = pkgPath
		}
	}
	defer func() {
		if r := recover(); r != nil {
			sd, err = nil, &Error{Decl: name, Err: ErrInvalidName, Detail: fmt.Sprint(r)}
		}
	}()
	return &StructDecl{
		name:   name,
		fields: cloneFields(fields),
		typ:    reflect.StructOf(sfs),
	}, nil
}

func (sd *StructDecl) Name() string       { return sd.name }
func (sd *StructDecl) Type() reflect.Type { return sd.typ }
func (sd *StructDecl) Fields() []Field    { return cloneFields(sd.fields) }

// New returns a pointer to a fresh zero value of the declared type.
func (sd *StructDecl) New() reflect.Value {
	return reflect.New(sd.typ)
}

// FieldIndex returns the position of the named field, or -1.
func (sd *StructDecl) FieldIndex(name string) int {
	return fieldIndex(sd.fields, name)
}

// Layout computes the declared type's layout for the engine's target.
func (sd *StructDecl) Layout(le *layout.LayoutEngine) (layout.TypeLayout, error) {
	return le.LayoutOf(sd.typ)
}

// Get reads the named field from v, which must come from New.
func (sd *StructDecl) Get(v reflect.Value, name string) (any, error) {
	f, err := sd.field(v, name)
	if err != nil {
		return nil, err
	}
	return f.Interface(), nil
}

// Set stores value into the named field of v, which must come from New.
func (sd *StructDecl) Set(v reflect.Value, name string, value any) error {
	f, err := sd.field(v, name)
	if err != nil {
		return err
	}
	rv, err := assignable(sd.name, name, f.Type(), value)
	if err != nil {
		return err
	}
	f.Set(rv)
	return nil
}

func (sd *StructDecl) field(v reflect.Value, name string) (reflect.Value, error) {
	i := sd.FieldIndex(name)
	if i < 0 {
		return reflect.Value{}, &Error{Decl: sd.name, Field: name, Err: ErrNoSuchField}
	}
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Type() != sd.typ {
		return reflect.Value{}, &Error{Decl: sd.name, Field: name, Err: ErrFieldType, Detail: "value was not created by New"}
	}
	f := v.Elem().Field(i)
	if !f.CanSet() {
		// Lower-case fields are unexported in the generated type.
		f = reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem()
	}
	return f, nil
}

func assignable(decl, field string, typ reflect.Type, value any) (reflect.Value, error) {
	if value == nil {
		switch typ.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
			return reflect.Zero(typ), nil
		}
		return reflect.Value{}, &Error{Decl: decl, Field: field, Err: ErrFieldType, Detail: "nil for " + typ.String()}
	}
	rv := reflect.ValueOf(value)
	if !rv.Type().AssignableTo(typ) {
		return reflect.Value{}, &Error{Decl: decl, Field: field, Err: ErrFieldType, Detail: rv.Type().String() + " into " + typ.String()}
	}
	return rv, nil
}
