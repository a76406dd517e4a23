// Package flagbits decomposes combined bitmask values into the declared
// single-bit members of a symbolic type.
package flagbits

import (
	"bitsym/internal/symbolic"
	"bitsym/internal/wide"
)

// Decomposition is the result of splitting a combined value into atomic
// members. Members appear in declaration order. Remainder carries the bits
// of the input that matched no declared atomic member; it is zero exactly
// when the value is an exact union.
type Decomposition struct {
	Members   []symbolic.Member
	Remainder uint64
}

// IsAtomic reports whether a bit pattern is a single set bit.
func IsAtomic(pattern uint64) bool {
	return pattern != 0 && pattern&(pattern-1) == 0
}

// IsFlagShaped reports whether the descriptor declares at least one atomic
// (power-of-two) member, i.e. whether it can meaningfully be treated as a
// flags type. The check runs over width-masked bit patterns so that, for
// example, the sign bit of a signed type still counts as atomic.
func IsFlagShaped(desc *symbolic.Descriptor) bool {
	mask := wide.Mask(desc.Width().Bits())
	for i := 0; i < desc.Len(); i++ {
		if IsAtomic(desc.MemberAt(i).Value.Bits() & mask) {
			return true
		}
	}
	return false
}

// Decompose splits a combined value into the declared atomic members whose
// bits it contains, in declaration order. Bits matching no atomic member are
// reported in Remainder rather than dropped; Decompose never fails.
func Decompose(desc *symbolic.Descriptor, raw wide.Int) Decomposition {
	mask := wide.Mask(desc.Width().Bits())
	target := raw.Bits() & mask
	working := target
	var members []symbolic.Member
	for i := 0; i < desc.Len(); i++ {
		m := desc.MemberAt(i)
		mv := m.Value.Bits() & mask
		if !IsAtomic(mv) {
			continue
		}
		if target&mv == mv {
			members = append(members, m)
			working &^= mv
		}
	}
	return Decomposition{Members: members, Remainder: working}
}

// IsExactUnion reports whether the value is expressible purely as a union of
// the descriptor's declared atomic members.
func IsExactUnion(desc *symbolic.Descriptor, raw wide.Int) bool {
	return Decompose(desc, raw).Remainder == 0
}

// CountSetAtomicBits counts how many of the value's set bits belong to
// declared atomic members. Bits outside the declared atomic set are ignored.
func CountSetAtomicBits(desc *symbolic.Descriptor, raw wide.Int) int {
	mask := wide.Mask(desc.Width().Bits())
	var atomic uint64
	for i := 0; i < desc.Len(); i++ {
		if mv := desc.MemberAt(i).Value.Bits() & mask; IsAtomic(mv) {
			atomic |= mv
		}
	}
	return popCount(raw.Bits() & mask & atomic)
}

// popCount counts set bits by repeatedly clearing the lowest one.
// O(popcount), no allocation.
func popCount(pattern uint64) int {
	n := 0
	for pattern != 0 {
		pattern &= pattern - 1
		n++
	}
	return n
}
