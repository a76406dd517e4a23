// Package bridge converts symbolic values to and from their integral
// representation across the supported widths without silent truncation.
package bridge

import (
	"fmt"

	"bitsym/internal/flagbits"
	"bitsym/internal/symbolic"
	"bitsym/internal/wide"
)

// ErrorKind enumerates bridge conversion failures.
type ErrorKind uint8

const (
	// ErrOverflow indicates a value that does not fit the descriptor's
	// declared underlying width.
	ErrOverflow ErrorKind = iota + 1
	// ErrUndeclared indicates a value that is neither a declared member nor
	// an exact union of atomic members (checked conversions only).
	ErrUndeclared
)

// Error reports a failed conversion.
type Error struct {
	Kind   ErrorKind
	TypeID string
	Value  wide.Int
	Width  symbolic.Width
	Signed bool
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case ErrOverflow:
		return fmt.Sprintf("value %s overflows %s underlying type of %q", e.Value, e.Width, e.TypeID)
	case ErrUndeclared:
		return fmt.Sprintf("value %s is not a declared member or flag union of %q", e.Value, e.TypeID)
	default:
		return fmt.Sprintf("bridge error kind=%d for %q", e.Kind, e.TypeID)
	}
}

// ToIntegral converts a symbolic value to its integral representation.
// The only failure mode is a value that does not fit the descriptor's
// declared width.
func ToIntegral(desc *symbolic.Descriptor, v wide.Int) (wide.Int, error) {
	if !v.Fits(desc.Width().Bits(), desc.Signed()) {
		return wide.Int{}, &Error{
			Kind: ErrOverflow, TypeID: desc.TypeID(),
			Value: v, Width: desc.Width(), Signed: desc.Signed(),
		}
	}
	return v, nil
}

// FromIntegral reinterprets an integral value as a value of the symbolic
// type. It never fails: bits above the declared width are discarded and no
// membership check is performed, so the result may not correspond to any
// declared member. Callers who need validation use FromIntegralChecked.
func FromIntegral(desc *symbolic.Descriptor, v wide.Int) wide.Int {
	return wide.FromBits(v.Bits(), desc.Width().Bits(), desc.Signed())
}

// FromIntegralChecked is the strict variant of FromIntegral: the value must
// fit the declared width and must be either a declared member value or an
// exact union of the descriptor's atomic members.
func FromIntegralChecked(desc *symbolic.Descriptor, v wide.Int) (wide.Int, error) {
	if !v.Fits(desc.Width().Bits(), desc.Signed()) {
		return wide.Int{}, &Error{
			Kind: ErrOverflow, TypeID: desc.TypeID(),
			Value: v, Width: desc.Width(), Signed: desc.Signed(),
		}
	}
	if _, ok := desc.NameByValue(v); ok {
		return v, nil
	}
	if flagbits.IsFlagShaped(desc) && flagbits.IsExactUnion(desc, v) {
		return v, nil
	}
	return wide.Int{}, &Error{
		Kind: ErrUndeclared, TypeID: desc.TypeID(),
		Value: v, Width: desc.Width(), Signed: desc.Signed(),
	}
}
