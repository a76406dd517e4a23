// Package wide provides a sign/magnitude integer wide enough to hold any
// value of the supported integral widths (8..64 bits, signed or unsigned)
// without loss. It covers the union of the int64 and uint64 ranges, so any
// conversion between supported widths is exact.
package wide

import "strconv"

// Int represents a wide signed integer as a sign plus a uint64 magnitude.
//
// Canonical zero is represented as Neg=false and Mag=0.
type Int struct {
	Neg bool
	Mag uint64
}

// Zero returns a zero Int.
func Zero() Int { return Int{} }

// FromInt64 creates an Int from an int64.
func FromInt64(v int64) Int {
	if v >= 0 {
		return Int{Mag: uint64(v)}
	}
	// -(v+1) is non-negative and fits in uint64 even for MinInt64.
	u := uint64(-(v + 1))
	return Int{Neg: true, Mag: u + 1}
}

// FromUint64 creates an Int from a uint64.
func FromUint64(v uint64) Int {
	return Int{Mag: v}
}

// IsZero reports whether the integer is zero.
func (i Int) IsZero() bool { return i.Mag == 0 }

// IsNeg reports whether the integer is strictly negative.
func (i Int) IsNeg() bool { return i.Neg && i.Mag != 0 }

// Cmp compares two Int values: -1 if i < j, 0 if equal, 1 if i > j.
func (i Int) Cmp(j Int) int {
	in, jn := i.IsNeg(), j.IsNeg()
	switch {
	case i.Mag == 0 && j.Mag == 0:
		return 0
	case in != jn:
		if in {
			return -1
		}
		return 1
	case i.Mag == j.Mag:
		return 0
	case i.Mag < j.Mag:
		if in {
			return 1
		}
		return -1
	default:
		if in {
			return -1
		}
		return 1
	}
}

// Int64 converts to int64 if the value fits.
func (i Int) Int64() (int64, bool) {
	if !i.IsNeg() {
		if i.Mag > uint64(^uint64(0)>>1) {
			return 0, false
		}
		return int64(i.Mag), true
	}
	// Negative: allow magnitude up to 2^63.
	if i.Mag > uint64(^uint64(0)>>1)+1 {
		return 0, false
	}
	return -int64(i.Mag-1) - 1, true
}

// Uint64 converts to uint64 if the value fits.
func (i Int) Uint64() (uint64, bool) {
	if i.IsNeg() {
		return 0, false
	}
	return i.Mag, true
}

// Bits returns the value's two's-complement bit pattern in 64 bits.
// The pattern for a negative value is the usual sign-extended encoding.
func (i Int) Bits() uint64 {
	if i.IsNeg() {
		return ^(i.Mag - 1)
	}
	return i.Mag
}

// Mask returns the all-ones bit mask for a width of the given size in bits.
// Widths outside 1..64 yield a full 64-bit mask.
func Mask(bits uint) uint64 {
	if bits == 0 || bits >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << bits) - 1
}

// FromBits reinterprets the low `bits` of a two's-complement pattern as a
// value of the given width and signedness. Bits above the width are ignored.
func FromBits(pattern uint64, bits uint, signed bool) Int {
	m := Mask(bits)
	v := pattern & m
	if !signed || bits == 0 {
		return Int{Mag: v}
	}
	signBit := uint64(1) << (bits - 1)
	if bits < 64 && v&signBit != 0 {
		// Sign-extend and recover the magnitude.
		return Int{Neg: true, Mag: (m + 1) - v}
	}
	if bits == 64 && v&signBit != 0 {
		return Int{Neg: true, Mag: ^v + 1}
	}
	return Int{Mag: v}
}

// Fits reports whether the value is representable at the given width and
// signedness without truncation.
func (i Int) Fits(bits uint, signed bool) bool {
	if bits == 0 || bits > 64 {
		return false
	}
	if i.IsNeg() {
		if !signed {
			return false
		}
		// Minimum is -2^(bits-1).
		return i.Mag <= uint64(1)<<(bits-1)
	}
	if signed {
		if bits == 64 {
			return i.Mag <= uint64(^uint64(0)>>1)
		}
		return i.Mag < uint64(1)<<(bits-1)
	}
	if bits == 64 {
		return true
	}
	return i.Mag <= Mask(bits)
}

// String renders the value in decimal.
func (i Int) String() string {
	if i.IsNeg() {
		if v, ok := i.Int64(); ok {
			return strconv.FormatInt(v, 10)
		}
		// Magnitude 2^63 for the 64-bit minimum.
		return "-" + strconv.FormatUint(i.Mag, 10)
	}
	return strconv.FormatUint(i.Mag, 10)
}

// Parse reads a decimal or 0x-prefixed hexadecimal integer. Hexadecimal
// input is treated as a raw bit pattern and never negative.
func Parse(s string) (Int, error) {
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return Int{}, err
		}
		return FromUint64(v), nil
	}
	if len(s) > 0 && s[0] == '-' {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Int{}, err
		}
		return FromInt64(v), nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return Int{}, err
	}
	return FromUint64(v), nil
}
