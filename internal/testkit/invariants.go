// Package testkit holds invariant checks shared by layout and declaration
// tests.
package testkit

import (
	"fmt"
	"reflect"

	"rebel/internal/layout"
)

// CheckStructInvariants verifies a struct layout computed by le:
// 1) every field offset is a multiple of the field's alignment
// 2) fields do not overlap and appear in declaration order
// 3) the size covers the last field and is a multiple of the alignment
// 4) the alignment is the largest field alignment (at least 1)
func CheckStructInvariants(le *layout.LayoutEngine, t reflect.Type) error {
	if t == nil || t.Kind() != reflect.Struct {
		return fmt.Errorf("not a struct type: %v", t)
	}
	l, err := le.LayoutOf(t)
	if err != nil {
		return err
	}
	if len(l.FieldOffsets) != t.NumField() {
		return fmt.Errorf("%v: %d offsets for %d fields", t, len(l.FieldOffsets), t.NumField())
	}

	wantAlign := 1
	end := 0
	for i := range t.NumField() {
		f := t.Field(i)
		fl, err := le.LayoutOf(f.Type)
		if err != nil {
			return err
		}
		off := l.FieldOffsets[i]
		// 1) alignment
		if fl.Align > 0 && off%fl.Align != 0 {
			return fmt.Errorf("%v.%s at %d is not aligned to %d", t, f.Name, off, fl.Align)
		}
		// 2) order and overlap
		if off < end {
			return fmt.Errorf("%v.%s at %d overlaps the previous field ending at %d", t, f.Name, off, end)
		}
		end = off + fl.Size
		wantAlign = max(wantAlign, fl.Align)
	}

	// 3) size
	if l.Size < end {
		return fmt.Errorf("%v: size %d does not cover fields ending at %d", t, l.Size, end)
	}
	if l.Size%l.Align != 0 {
		return fmt.Errorf("%v: size %d is not a multiple of align %d", t, l.Size, l.Align)
	}
	// 4) alignment
	if l.Align != wantAlign {
		return fmt.Errorf("%v: align %d, want %d", t, l.Align, wantAlign)
	}
	return nil
}
