package decl

import (
	"reflect"

	"rebel/internal/layout"
)

// UnionDecl is declared sum-type storage.
type UnionDecl struct {
	name   string
	fields []Field
	typ    reflect.Type
}

// Union declares named sum-type storage over the given fields. Exactly one
// field of a Value is active at a time.
func Union(name string, fields ...Field) (*UnionDecl, error) {
	if err := checkFields(name, fields); err != nil {
		return nil, err
	}
	return &UnionDecl{
		name:   name,
		fields: cloneFields(fields),
		typ:    reflect.TypeFor[*Value](),
	}, nil
}

func (ud *UnionDecl) Name() string { return ud.name }

// Type is the Go type holding values of the union, *Value.
func (ud *UnionDecl) Type() reflect.Type { return ud.typ }
func (ud *UnionDecl) Fields() []Field    { return cloneFields(ud.fields) }

// FieldIndex returns the tag of the named field, or -1.
func (ud *UnionDecl) FieldIndex(name string) int {
	return fieldIndex(ud.fields, name)
}

// New returns an empty value with no active field.
func (ud *UnionDecl) New() *Value {
	return &Value{decl: ud, tag: -1}
}

// Layout is the discriminated layout: a uint32 tag, then the payload.
func (ud *UnionDecl) Layout(le *layout.LayoutEngine) (layout.TypeLayout, error) {
	return le.TagUnionLayout(ud.memberTypes())
}

// StorageLayout is the untagged shared-storage layout the tag replaces.
func (ud *UnionDecl) StorageLayout(le *layout.LayoutEngine) (layout.TypeLayout, error) {
	return le.SharedLayout(ud.memberTypes())
}

func (ud *UnionDecl) memberTypes() []reflect.Type {
	out := make([]reflect.Type, len(ud.fields))
	for i, f := range ud.fields {
		out[i] = f.Type
	}
	return out
}

// Value is one instance of a declared union.
type Value struct {
	decl *UnionDecl
	tag  int
	val  reflect.Value
}

// Decl returns the union the value belongs to.
func (v *Value) Decl() *UnionDecl { return v.decl }

// Tag returns the index of the active field, or -1 when none is set.
func (v *Value) Tag() int { return v.tag }

// Active returns the name of the active field.
func (v *Value) Active() (string, bool) {
	if v.tag < 0 {
		return "", false
	}
	return v.decl.fields[v.tag].Name, true
}

// Set makes field active, holding value.
func (v *Value) Set(field string, value any) error {
	i := v.decl.FieldIndex(field)
	if i < 0 {
		return &Error{Decl: v.decl.name, Field: field, Err: ErrNoSuchField}
	}
	rv, err := assignable(v.decl.name, field, v.decl.fields[i].Type, value)
	if err != nil {
		return err
	}
	// Keep a private copy so the union owns its storage.
	cp := reflect.New(v.decl.fields[i].Type).Elem()
	cp.Set(rv)
	v.tag, v.val = i, cp
	return nil
}

// Get returns the value of field, which must be the active one.
func (v *Value) Get(field string) (any, error) {
	i := v.decl.FieldIndex(field)
	if i < 0 {
		return nil, &Error{Decl: v.decl.name, Field: field, Err: ErrNoSuchField}
	}
	if i != v.tag {
		detail := "no field set"
		if name, ok := v.Active(); ok {
			detail = "active field is " + name
		}
		return nil, &Error{Decl: v.decl.name, Field: field, Err: ErrInactiveField, Detail: detail}
	}
	return v.val.Interface(), nil
}

// Reset clears the active field.
func (v *Value) Reset() {
	v.tag, v.val = -1, reflect.Value{}
}

// As reads field from v as a T.
func As[T any](v *Value, field string) (T, error) {
	var zero T
	raw, err := v.Get(field)
	if err != nil {
		return zero, err
	}
	if raw == nil {
		return zero, nil
	}
	out, ok := raw.(T)
	if !ok {
		return zero, &Error{Decl: v.decl.name, Field: field, Err: ErrFieldType, Detail: "read as " + reflect.TypeFor[T]().String()}
	}
	return out, nil
}
