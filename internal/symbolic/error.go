package symbolic

import (
	"fmt"

	"bitsym/internal/wide"
)

// BuildErrorKind enumerates descriptor construction failures.
type BuildErrorKind uint8

const (
	// BuildErrNoMembers indicates an empty member list.
	BuildErrNoMembers BuildErrorKind = iota + 1
	// BuildErrBadWidth indicates an unsupported underlying width.
	BuildErrBadWidth
	// BuildErrEmptyName indicates a member with an empty name.
	BuildErrEmptyName
	// BuildErrDuplicateName indicates two members sharing a name.
	BuildErrDuplicateName
	// BuildErrValueOutOfRange indicates a member value that does not fit the
	// declared underlying width.
	BuildErrValueOutOfRange
)

// BuildError reports why a descriptor could not be constructed.
type BuildError struct {
	Kind   BuildErrorKind
	TypeID string
	Member string   // offending member name, when applicable
	Value  wide.Int // offending value, for BuildErrValueOutOfRange
	Width  Width
	Signed bool
}

func (e *BuildError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case BuildErrNoMembers:
		return fmt.Sprintf("symbolic type %q has no members", e.TypeID)
	case BuildErrBadWidth:
		return fmt.Sprintf("symbolic type %q: %s", e.TypeID, e.Width)
	case BuildErrEmptyName:
		return fmt.Sprintf("symbolic type %q has a member with an empty name", e.TypeID)
	case BuildErrDuplicateName:
		return fmt.Sprintf("symbolic type %q declares member %q more than once", e.TypeID, e.Member)
	case BuildErrValueOutOfRange:
		return fmt.Sprintf("symbolic type %q: member %q value %s does not fit %s %s",
			e.TypeID, e.Member, e.Value, signedness(e.Signed), e.Width)
	default:
		return fmt.Sprintf("symbolic type %q: build error kind=%d", e.TypeID, e.Kind)
	}
}

func signedness(signed bool) string {
	if signed {
		return "signed"
	}
	return "unsigned"
}
