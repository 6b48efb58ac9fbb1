package layout

import (
	"fmt"
	"reflect"
)

// LayoutErrorKind enumerates types of layout calculation errors.
type LayoutErrorKind uint8

const (
	// LayoutErrUnsupportedKind indicates a type kind with no defined layout.
	LayoutErrUnsupportedKind LayoutErrorKind = iota + 1
	LayoutErrLengthConversion
	LayoutErrNilType
)

// LayoutError represents an error during memory layout calculation.
type LayoutError struct {
	Kind LayoutErrorKind
	Type reflect.Type
	Err  error // for LayoutErrLengthConversion
}

func (e *LayoutError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case LayoutErrUnsupportedKind:
		return fmt.Sprintf("no layout for %v (kind %v)", e.Type, e.Type.Kind())
	case LayoutErrLengthConversion:
		if e.Err != nil {
			return fmt.Sprintf("array length conversion error (%v): %v", e.Type, e.Err)
		}
		return fmt.Sprintf("array length conversion error (%v)", e.Type)
	case LayoutErrNilType:
		return "no layout for nil type"
	default:
		return fmt.Sprintf("layout error kind=%d type %v", e.Kind, e.Type)
	}
}

func (e *LayoutError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
