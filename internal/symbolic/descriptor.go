// Package symbolic defines immutable descriptors for symbolic types: named
// sets of (name, integral value) members over a fixed underlying width.
// A descriptor is built once from a type's declaration and shared read-only.
package symbolic

import (
	"bitsym/internal/wide"
)

// Member is a single declared (name, value) pair of a symbolic type.
type Member struct {
	Name  string
	Value wide.Int
}

// Descriptor stores the static metadata of one symbolic type: its member
// list in declaration order plus lookup indices built at construction.
// Descriptors are immutable after Build and safe for concurrent use.
type Descriptor struct {
	typeID  string
	width   Width
	signed  bool
	members []Member
	byName  map[string]int
	byValue map[wide.Int]int // value -> index of first member declaring it
}

// Build constructs a descriptor from an ordered member list.
//
// Member order is preserved exactly as supplied and is semantically
// significant for decomposition and formatting. Duplicate values (aliases)
// are allowed; duplicate names are not. Every value must fit the declared
// width without truncation.
func Build(typeID string, members []Member, width Width, signed bool) (*Descriptor, error) {
	if !width.Valid() {
		return nil, &BuildError{Kind: BuildErrBadWidth, TypeID: typeID, Width: width, Signed: signed}
	}
	if len(members) == 0 {
		return nil, &BuildError{Kind: BuildErrNoMembers, TypeID: typeID, Width: width, Signed: signed}
	}
	d := &Descriptor{
		typeID:  typeID,
		width:   width,
		signed:  signed,
		members: cloneMembers(members),
		byName:  make(map[string]int, len(members)),
		byValue: make(map[wide.Int]int, len(members)),
	}
	for i, m := range d.members {
		if m.Name == "" {
			return nil, &BuildError{Kind: BuildErrEmptyName, TypeID: typeID, Width: width, Signed: signed}
		}
		if _, dup := d.byName[m.Name]; dup {
			return nil, &BuildError{Kind: BuildErrDuplicateName, TypeID: typeID, Member: m.Name, Width: width, Signed: signed}
		}
		if !m.Value.Fits(width.Bits(), signed) {
			return nil, &BuildError{
				Kind: BuildErrValueOutOfRange, TypeID: typeID,
				Member: m.Name, Value: m.Value, Width: width, Signed: signed,
			}
		}
		d.byName[m.Name] = i
		if _, seen := d.byValue[m.Value]; !seen {
			d.byValue[m.Value] = i
		}
	}
	return d, nil
}

// TypeID returns the opaque identifier of the symbolic type.
func (d *Descriptor) TypeID() string { return d.typeID }

// Width returns the underlying integral width.
func (d *Descriptor) Width() Width { return d.width }

// Signed reports whether the underlying integral type is signed.
func (d *Descriptor) Signed() bool { return d.signed }

// Len returns the number of declared members.
func (d *Descriptor) Len() int { return len(d.members) }

// MemberAt returns the member at the given declaration index.
func (d *Descriptor) MemberAt(i int) Member { return d.members[i] }

// Members returns a copy of the member list in declaration order.
func (d *Descriptor) Members() []Member { return cloneMembers(d.members) }

// MemberByName looks up a member by exact name.
func (d *Descriptor) MemberByName(name string) (Member, bool) {
	i, ok := d.byName[name]
	if !ok {
		return Member{}, false
	}
	return d.members[i], true
}

// NameByValue returns the name of the first member declaring the value.
func (d *Descriptor) NameByValue(v wide.Int) (string, bool) {
	i, ok := d.byValue[v]
	if !ok {
		return "", false
	}
	return d.members[i].Name, true
}

func cloneMembers(members []Member) []Member {
	if len(members) == 0 {
		return nil
	}
	result := make([]Member, len(members))
	copy(result, members)
	return result
}
