package layout

import (
	"reflect"

	"fortio.org/safecast"
)

func (e *LayoutEngine) computeLayout(t reflect.Type) (TypeLayout, *LayoutError) {
	switch t.Kind() {
	case reflect.Bool, reflect.Int8, reflect.Uint8:
		return scalarLayoutBytes(1), nil

	case reflect.Int16, reflect.Uint16:
		return scalarLayoutBytes(2), nil

	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return scalarLayoutBytes(4), nil

	case reflect.Int64, reflect.Uint64, reflect.Float64:
		return e.wideLayout(8), nil

	case reflect.Complex64:
		return TypeLayout{Size: 8, Align: 4}, nil

	case reflect.Complex128:
		return e.wideLayout(16), nil

	case reflect.Int, reflect.Uint, reflect.Uintptr:
		return e.ptrLayout(), nil

	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func:
		return e.ptrLayout(), nil

	case reflect.String, reflect.Interface:
		return e.wordsLayout(2), nil

	case reflect.Slice:
		return e.wordsLayout(3), nil

	case reflect.Array:
		return e.arrayFixedLayout(t)

	case reflect.Struct:
		return e.structLayout(t)

	default:
		return TypeLayout{Size: 0, Align: 1}, &LayoutError{Kind: LayoutErrUnsupportedKind, Type: t}
	}
}

func (e *LayoutEngine) ptrLayout() TypeLayout {
	ptrSize := e.Target.PtrSize
	ptrAlign := e.Target.PtrAlign
	if ptrSize <= 0 {
		ptrSize = 8
	}
	if ptrAlign <= 0 {
		ptrAlign = ptrSize
	}
	return TypeLayout{Size: ptrSize, Align: ptrAlign}
}

func (e *LayoutEngine) wordsLayout(n int) TypeLayout {
	word := e.ptrLayout()
	return TypeLayout{Size: word.Size * n, Align: word.Align}
}

// wideLayout is for 8-byte scalars, whose alignment drops to the word on
// 32-bit targets.
func (e *LayoutEngine) wideLayout(size int) TypeLayout {
	align := e.Target.Int64Align
	if align <= 0 {
		align = 8
	}
	return TypeLayout{Size: size, Align: align}
}

func scalarLayoutBytes(size int) TypeLayout {
	if size <= 0 {
		return TypeLayout{Size: 0, Align: 1}
	}
	return TypeLayout{Size: size, Align: size}
}

func roundUp(n, align int) int {
	if align <= 1 {
		return n
	}
	r := n % align
	if r == 0 {
		return n
	}
	return n + (align - r)
}

func (e *LayoutEngine) arrayFixedLayout(t reflect.Type) (TypeLayout, *LayoutError) {
	elemLayout, err := e.layoutOf(t.Elem())
	if err != nil {
		return TypeLayout{Size: 0, Align: 1}, err
	}
	elemAlign := max(elemLayout.Align, 1)
	stride := roundUp(elemLayout.Size, elemAlign)
	n, cerr := safecast.Conv[int](t.Len())
	if cerr != nil || n < 0 {
		return TypeLayout{Size: 0, Align: 1}, &LayoutError{Kind: LayoutErrLengthConversion, Type: t, Err: cerr}
	}
	return TypeLayout{
		Size:  stride * n,
		Align: elemAlign,
	}, nil
}

func (e *LayoutEngine) structLayout(t reflect.Type) (TypeLayout, *LayoutError) {
	n := t.NumField()
	if n == 0 {
		return TypeLayout{Size: 0, Align: 1}, nil
	}
	offsets := make([]int, n)
	aligns := make([]int, n)

	size := 0
	align := 1
	lastZero := false
	for i := range n {
		fl, err := e.layoutOf(t.Field(i).Type)
		if err != nil {
			return TypeLayout{Size: 0, Align: 1}, err
		}
		fAlign := max(fl.Align, 1)
		size = roundUp(size, fAlign)
		offsets[i] = size
		aligns[i] = fAlign
		size += fl.Size
		align = max(align, fAlign)
		lastZero = fl.Size == 0
	}
	// A trailing zero-size field gets one byte so its address stays inside
	// the object.
	if lastZero && size > 0 {
		size++
	}
	size = roundUp(size, align)

	return TypeLayout{
		Size:         size,
		Align:        align,
		FieldOffsets: offsets,
		FieldAligns:  aligns,
	}, nil
}
