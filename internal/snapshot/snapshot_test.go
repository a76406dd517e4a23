package snapshot

import (
	"errors"
	"path/filepath"
	"testing"

	"bitsym/internal/registry"
	"bitsym/internal/symbolic"
	"bitsym/internal/wide"
)

func populated(t *testing.T) *registry.Registry {
	t.Helper()
	reg := registry.New()
	border, err := symbolic.Build("BorderSides", []symbolic.Member{
		{Name: "None", Value: wide.FromUint64(0)},
		{Name: "Left", Value: wide.FromUint64(1)},
		{Name: "Right", Value: wide.FromUint64(2)},
	}, symbolic.W8, false)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	signed, err := symbolic.Build("Offsets", []symbolic.Member{
		{Name: "Back", Value: wide.FromInt64(-1)},
		{Name: "Forward", Value: wide.FromInt64(1)},
	}, symbolic.W16, true)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for _, d := range []*symbolic.Descriptor{border, signed} {
		if err := reg.Register(d); err != nil {
			t.Fatalf("Register: %v", err)
		}
	}
	return reg
}

func TestSaveLoadRoundTrip(t *testing.T) {
	reg := populated(t)
	path := filepath.Join(t.TempDir(), "types.mp")
	if err := Save(path, reg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	restored := registry.New()
	if err := Load(path, restored); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if restored.Len() != reg.Len() {
		t.Fatalf("restored %d types, want %d", restored.Len(), reg.Len())
	}

	desc, ok := restored.Lookup("Offsets")
	if !ok {
		t.Fatalf("Offsets missing after restore")
	}
	if desc.Width() != symbolic.W16 || !desc.Signed() {
		t.Fatalf("Offsets underlying type lost: %s signed=%v", desc.Width(), desc.Signed())
	}
	m, ok := desc.MemberByName("Back")
	if !ok || m.Value.Cmp(wide.FromInt64(-1)) != 0 {
		t.Fatalf("negative member lost: %+v, %v", m, ok)
	}

	border, _ := restored.Lookup("BorderSides")
	want := []string{"None", "Left", "Right"}
	for i, name := range want {
		if border.MemberAt(i).Name != name {
			t.Fatalf("member order lost: %d = %q", i, border.MemberAt(i).Name)
		}
	}
}

func TestRestoreRejectsSchemaMismatch(t *testing.T) {
	p := Capture(populated(t))
	p.Schema = 99
	err := Restore(p, registry.New())
	if !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("want ErrSchemaMismatch, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	err := Load(filepath.Join(t.TempDir(), "absent.mp"), registry.New())
	if err == nil {
		t.Fatalf("missing file must fail")
	}
}
