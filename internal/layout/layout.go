// Package layout computes sizes, alignments and field offsets for the rebel
// primitives and for types built by the declaration helpers.
package layout

import (
	"reflect"
	"sync"
)

// TypeLayout is the ABI layout of a type for a specific Target.
type TypeLayout struct {
	Size  int
	Align int

	// Struct-only:
	FieldOffsets []int
	FieldAligns  []int

	// Tag-union fields.
	TagSize       int
	TagAlign      int
	PayloadOffset int
}

// LayoutEngine computes memory layout for types. It is safe for concurrent
// use.
type LayoutEngine struct {
	Target Target

	once  sync.Once
	cache *cache
}

// New creates a new LayoutEngine for the specified target.
func New(target Target) *LayoutEngine {
	return &LayoutEngine{
		Target: target,
		cache:  newCache(),
	}
}

// LayoutOf computes and caches the layout of a type.
func (e *LayoutEngine) LayoutOf(t reflect.Type) (TypeLayout, error) {
	if e == nil {
		return TypeLayout{Size: 0, Align: 1}, nil
	}
	l, err := e.layoutOf(t)
	if err != nil {
		return l, err
	}
	return l, nil
}

func (e *LayoutEngine) layoutOf(t reflect.Type) (TypeLayout, *LayoutError) {
	if t == nil {
		return TypeLayout{Size: 0, Align: 1}, &LayoutError{Kind: LayoutErrNilType}
	}
	e.once.Do(func() {
		if e.cache == nil {
			e.cache = newCache()
		}
	})
	if cached, ok := e.cache.get(t); ok {
		return cached.Layout, cached.Err
	}
	layout, err := e.computeLayout(t)
	e.cache.put(t, cacheEntry{Layout: layout, Err: err})
	return layout, err
}

// SizeOf returns the size of a type in bytes.
func (e *LayoutEngine) SizeOf(t reflect.Type) (int, error) {
	l, err := e.LayoutOf(t)
	return l.Size, err
}

// AlignOf returns the alignment requirement of a type in bytes.
func (e *LayoutEngine) AlignOf(t reflect.Type) (int, error) {
	l, err := e.LayoutOf(t)
	return l.Align, err
}

// FieldOffset returns the byte offset of a struct field.
func (e *LayoutEngine) FieldOffset(structT reflect.Type, fieldIdx int) (int, error) {
	l, err := e.LayoutOf(structT)
	if err != nil {
		return 0, err
	}
	if fieldIdx < 0 || fieldIdx >= len(l.FieldOffsets) {
		return 0, nil
	}
	return l.FieldOffsets[fieldIdx], nil
}

// TagUnionLayout lays out a discriminated union over the given member
// types: a uint32 tag followed by the largest payload.
func (e *LayoutEngine) TagUnionLayout(members []reflect.Type) (TypeLayout, error) {
	payloadSize, payloadAlign, err := e.payload(members)
	if err != nil {
		return TypeLayout{Size: 0, Align: 1}, err
	}
	if len(members) == 0 {
		return TypeLayout{Size: 0, Align: 1}, nil
	}

	tagSize := 4
	tagAlign := 4
	payloadOffset := roundUp(tagSize, payloadAlign)
	overallAlign := max(tagAlign, payloadAlign)
	size := roundUp(payloadOffset+payloadSize, overallAlign)
	return TypeLayout{
		Size:          size,
		Align:         overallAlign,
		TagSize:       tagSize,
		TagAlign:      tagAlign,
		PayloadOffset: payloadOffset,
	}, nil
}

// SharedLayout lays out untagged shared storage: every member at offset 0,
// size rounded to the strictest alignment.
func (e *LayoutEngine) SharedLayout(members []reflect.Type) (TypeLayout, error) {
	size, align, err := e.payload(members)
	if err != nil {
		return TypeLayout{Size: 0, Align: 1}, err
	}
	offsets := make([]int, len(members))
	return TypeLayout{
		Size:         roundUp(size, align),
		Align:        align,
		FieldOffsets: offsets,
	}, nil
}

func (e *LayoutEngine) payload(members []reflect.Type) (size, align int, err error) {
	align = 1
	for _, m := range members {
		l, lerr := e.LayoutOf(m)
		if lerr != nil {
			return 0, 1, lerr
		}
		size = max(size, l.Size)
		align = max(align, l.Align)
	}
	return size, align, nil
}
