package manifest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"bitsym/internal/registry"
	"bitsym/internal/wide"
)

const borderManifest = `
[[types]]
name = "BorderSides"
width = 8
signed = false
flags = true

  [[types.members]]
  name = "None"
  value = 0

  [[types.members]]
  name = "Left"
  value = 1

  [[types.members]]
  name = "Right"
  value = 2

  [[types.members]]
  name = "Top"
  value = 4

  [[types.members]]
  name = "Bottom"
  value = 8
`

func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadPreservesMemberOrder(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "border.toml", borderManifest)
	file, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(file.Types) != 1 {
		t.Fatalf("types = %d", len(file.Types))
	}
	decl := file.Types[0]
	want := []string{"None", "Left", "Right", "Top", "Bottom"}
	if len(decl.Members) != len(want) {
		t.Fatalf("members = %d", len(decl.Members))
	}
	for i, name := range want {
		if decl.Members[i].Name != name {
			t.Fatalf("member %d = %q, want %q", i, decl.Members[i].Name, name)
		}
	}
}

func TestLoadRejectsMissingTypes(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "empty.toml", "# nothing here\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("manifest without [[types]] must fail")
	}
}

func TestBuildDescriptorReportsRangeErrors(t *testing.T) {
	decl := TypeDecl{
		Name:    "Tiny",
		Width:   8,
		Members: []MemberDecl{{Name: "Huge", Value: 999}},
	}
	if _, err := BuildDescriptor(decl); err == nil {
		t.Fatalf("999 does not fit 8 bits, build must fail")
	}
}

func TestRegisterFile(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "border.toml", borderManifest)
	file, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	reg := registry.New()
	if err := RegisterFile(file, reg); err != nil {
		t.Fatalf("RegisterFile: %v", err)
	}
	desc, ok := reg.Lookup("BorderSides")
	if !ok {
		t.Fatalf("BorderSides not registered")
	}
	m, ok := desc.MemberByName("Bottom")
	if !ok || m.Value.Cmp(wide.FromUint64(8)) != 0 {
		t.Fatalf("Bottom = %+v, %v", m, ok)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "border.toml", borderManifest)
	writeManifest(t, dir, "season.toml", `
[[types]]
name = "Season"
width = 32

  [[types.members]]
  name = "Spring"
  value = 0

  [[types.members]]
  name = "Summer"
  value = 1
`)
	writeManifest(t, dir, "notes.txt", "ignored")

	reg := registry.New()
	n, err := LoadDir(context.Background(), dir, reg)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if n != 2 {
		t.Fatalf("LoadDir registered %d types, want 2", n)
	}
	for _, id := range []string{"BorderSides", "Season"} {
		if _, ok := reg.Lookup(id); !ok {
			t.Fatalf("%s not registered", id)
		}
	}
}

func TestLoadDirPropagatesManifestErrors(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "bad.toml", "not [valid toml\n")
	reg := registry.New()
	if _, err := LoadDir(context.Background(), dir, reg); err == nil {
		t.Fatalf("broken manifest must fail the load")
	}
}

func TestLoadDirEmpty(t *testing.T) {
	reg := registry.New()
	n, err := LoadDir(context.Background(), t.TempDir(), reg)
	if err != nil || n != 0 {
		t.Fatalf("empty dir: n=%d err=%v", n, err)
	}
}
