package symbolic

import "fmt"

// Width is the size in bits of a symbolic type's underlying integral type.
type Width uint8

const (
	// W8 is an 8-bit underlying type.
	W8 Width = 8
	// W16 is a 16-bit underlying type.
	W16 Width = 16
	// W32 is a 32-bit underlying type.
	W32 Width = 32
	// W64 is a 64-bit underlying type.
	W64 Width = 64
)

// Valid reports whether the width is one of the supported sizes.
func (w Width) Valid() bool {
	switch w {
	case W8, W16, W32, W64:
		return true
	}
	return false
}

// Bits returns the width as a bit count.
func (w Width) Bits() uint { return uint(w) }

func (w Width) String() string {
	if w.Valid() {
		return fmt.Sprintf("%d-bit", uint(w))
	}
	return fmt.Sprintf("invalid width (%d)", uint(w))
}
