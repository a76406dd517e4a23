// Package snapshot persists a descriptor registry as a msgpack payload so a
// host can reload its symbolic types without re-parsing manifests. Payloads
// carry a schema version; loading an unknown schema fails rather than
// guessing at the layout.
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"bitsym/internal/registry"
	"bitsym/internal/symbolic"
	"bitsym/internal/wide"
)

// Current schema version - increment when Payload format changes.
const schemaVersion uint16 = 1

// MemberPayload is one serialized member. The value travels as its
// sign/magnitude parts so the full 64-bit unsigned range survives.
type MemberPayload struct {
	Name string
	Neg  bool
	Mag  uint64
}

// TypePayload is one serialized descriptor.
type TypePayload struct {
	TypeID  string
	Width   uint8
	Signed  bool
	Members []MemberPayload
}

// Payload is the serialized form of a whole registry.
type Payload struct {
	Schema uint16
	Types  []TypePayload
}

// ErrSchemaMismatch indicates a snapshot written by an incompatible version.
var ErrSchemaMismatch = errors.New("snapshot schema mismatch")

// Capture serializes every descriptor in the registry.
func Capture(reg *registry.Registry) *Payload {
	ids := reg.TypeIDs()
	p := &Payload{Schema: schemaVersion, Types: make([]TypePayload, 0, len(ids))}
	for _, id := range ids {
		desc, ok := reg.Lookup(id)
		if !ok {
			continue
		}
		tp := TypePayload{
			TypeID:  desc.TypeID(),
			Width:   uint8(desc.Width()),
			Signed:  desc.Signed(),
			Members: make([]MemberPayload, 0, desc.Len()),
		}
		for _, m := range desc.Members() {
			tp.Members = append(tp.Members, MemberPayload{Name: m.Name, Neg: m.Value.Neg, Mag: m.Value.Mag})
		}
		p.Types = append(p.Types, tp)
	}
	return p
}

// Restore rebuilds descriptors from a payload and registers them.
func Restore(p *Payload, reg *registry.Registry) error {
	if p.Schema != schemaVersion {
		return fmt.Errorf("%w: got %d, want %d", ErrSchemaMismatch, p.Schema, schemaVersion)
	}
	for _, tp := range p.Types {
		members := make([]symbolic.Member, 0, len(tp.Members))
		for _, mp := range tp.Members {
			members = append(members, symbolic.Member{Name: mp.Name, Value: wide.Int{Neg: mp.Neg, Mag: mp.Mag}})
		}
		desc, err := symbolic.Build(tp.TypeID, members, symbolic.Width(tp.Width), tp.Signed)
		if err != nil {
			return fmt.Errorf("snapshot type %q: %w", tp.TypeID, err)
		}
		if err := reg.Register(desc); err != nil {
			return err
		}
	}
	return nil
}

// Save writes the registry to path, replacing any existing file atomically.
func Save(path string, reg *registry.Registry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(Capture(reg)); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// Load reads a snapshot from path into the registry.
func Load(path string, reg *registry.Registry) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var p Payload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&p); err != nil {
		return fmt.Errorf("%s: failed to decode snapshot: %w", path, err)
	}
	return Restore(&p, reg)
}
