package flagbits

import (
	"testing"

	"bitsym/internal/symbolic"
	"bitsym/internal/wide"
)

func borderDesc(t *testing.T) *symbolic.Descriptor {
	t.Helper()
	desc, err := symbolic.Build("BorderSides", []symbolic.Member{
		{Name: "None", Value: wide.FromUint64(0)},
		{Name: "Left", Value: wide.FromUint64(1)},
		{Name: "Right", Value: wide.FromUint64(2)},
		{Name: "Top", Value: wide.FromUint64(4)},
		{Name: "Bottom", Value: wide.FromUint64(8)},
	}, symbolic.W8, false)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return desc
}

func names(dec Decomposition) []string {
	out := make([]string, len(dec.Members))
	for i, m := range dec.Members {
		out[i] = m.Name
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDecomposeExactUnion(t *testing.T) {
	desc := borderDesc(t)
	dec := Decompose(desc, wide.FromUint64(3))
	if !equalStrings(names(dec), []string{"Left", "Right"}) {
		t.Fatalf("Decompose(3) members = %v", names(dec))
	}
	if dec.Remainder != 0 {
		t.Fatalf("Decompose(3) remainder = %#x", dec.Remainder)
	}
}

func TestDecomposeReportsUnrecognizedBits(t *testing.T) {
	desc := borderDesc(t)
	dec := Decompose(desc, wide.FromUint64(255))
	if !equalStrings(names(dec), []string{"Left", "Right", "Top", "Bottom"}) {
		t.Fatalf("Decompose(255) members = %v", names(dec))
	}
	if dec.Remainder != 0xF0 {
		t.Fatalf("Decompose(255) remainder = %#x, want 0xF0", dec.Remainder)
	}
}

func TestDecomposeZero(t *testing.T) {
	desc := borderDesc(t)
	dec := Decompose(desc, wide.Zero())
	if len(dec.Members) != 0 || dec.Remainder != 0 {
		t.Fatalf("Decompose(0) = %v remainder %#x", names(dec), dec.Remainder)
	}
}

func TestDecomposeSkipsCompositeAliases(t *testing.T) {
	desc, err := symbolic.Build("Sides", []symbolic.Member{
		{Name: "LeftRight", Value: wide.FromUint64(3)}, // composite, not atomic
		{Name: "Left", Value: wide.FromUint64(1)},
		{Name: "Right", Value: wide.FromUint64(2)},
	}, symbolic.W8, false)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	dec := Decompose(desc, wide.FromUint64(3))
	if !equalStrings(names(dec), []string{"Left", "Right"}) {
		t.Fatalf("composite aliases must not appear in decomposition, got %v", names(dec))
	}
}

func TestDecomposeOrderFollowsDeclaration(t *testing.T) {
	// Bits declared high-to-low must come back in declaration order,
	// not bit-index order.
	desc, err := symbolic.Build("Rev", []symbolic.Member{
		{Name: "Bottom", Value: wide.FromUint64(8)},
		{Name: "Top", Value: wide.FromUint64(4)},
		{Name: "Left", Value: wide.FromUint64(1)},
	}, symbolic.W8, false)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	dec := Decompose(desc, wide.FromUint64(13))
	if !equalStrings(names(dec), []string{"Bottom", "Top", "Left"}) {
		t.Fatalf("Decompose(13) members = %v", names(dec))
	}
}

func TestDecomposeSignBitOfSignedType(t *testing.T) {
	desc, err := symbolic.Build("I8Flags", []symbolic.Member{
		{Name: "High", Value: wide.FromInt64(-128)}, // bit pattern 0x80
		{Name: "Low", Value: wide.FromInt64(1)},
	}, symbolic.W8, true)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	dec := Decompose(desc, wide.FromBits(0x81, 8, true))
	if !equalStrings(names(dec), []string{"High", "Low"}) {
		t.Fatalf("sign-bit member should decompose, got %v", names(dec))
	}
	if dec.Remainder != 0 {
		t.Fatalf("remainder = %#x", dec.Remainder)
	}
}

func TestDecompositionReconstructsInput(t *testing.T) {
	desc := borderDesc(t)
	mask := wide.Mask(desc.Width().Bits())
	for raw := uint64(0); raw < 256; raw++ {
		dec := Decompose(desc, wide.FromUint64(raw))
		rebuilt := dec.Remainder
		for _, m := range dec.Members {
			rebuilt |= m.Value.Bits() & mask
		}
		if rebuilt != raw {
			t.Fatalf("decomposition of %d rebuilds to %d", raw, rebuilt)
		}
	}
}

func TestIsExactUnion(t *testing.T) {
	desc := borderDesc(t)
	if !IsExactUnion(desc, wide.FromUint64(15)) {
		t.Fatalf("15 is a union of all four sides")
	}
	if IsExactUnion(desc, wide.FromUint64(16)) {
		t.Fatalf("16 matches no declared member")
	}
	if !IsExactUnion(desc, wide.Zero()) {
		t.Fatalf("zero is trivially exact")
	}
}

func TestIsFlagShaped(t *testing.T) {
	desc := borderDesc(t)
	if !IsFlagShaped(desc) {
		t.Fatalf("BorderSides declares atomic members")
	}
	seq, err := symbolic.Build("Season", []symbolic.Member{
		{Name: "Spring", Value: wide.FromUint64(0)},
		{Name: "Summer", Value: wide.FromUint64(7)},
	}, symbolic.W32, false)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if IsFlagShaped(seq) {
		t.Fatalf("no atomic members, must not be flag-shaped")
	}
}

func TestCountSetAtomicBits(t *testing.T) {
	desc := borderDesc(t)
	cases := []struct {
		in   uint64
		want int
	}{
		{0, 0},
		{1, 1},
		{3, 2},
		{15, 4},
		// Bits outside the declared atomic set do not count.
		{255, 4},
		{0xF0, 0},
	}
	for _, tc := range cases {
		if got := CountSetAtomicBits(desc, wide.FromUint64(tc.in)); got != tc.want {
			t.Fatalf("CountSetAtomicBits(%#x) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestPopCount(t *testing.T) {
	cases := []struct {
		in   uint64
		want int
	}{
		{0, 0},
		{255, 8},
		{^uint64(0), 64},
	}
	for _, tc := range cases {
		if got := popCount(tc.in); got != tc.want {
			t.Fatalf("popCount(%#x) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
