package codec

import "fmt"

// ParseErrorKind enumerates text parsing failures.
type ParseErrorKind uint8

const (
	// ParseErrEmptyInput indicates blank input text.
	ParseErrEmptyInput ParseErrorKind = iota + 1
	// ParseErrUnknownMember indicates a token matching no declared member.
	ParseErrUnknownMember
)

// ParseError reports why a member name list could not be parsed.
type ParseError struct {
	Kind   ParseErrorKind
	TypeID string
	Token  string // offending token, for ParseErrUnknownMember
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case ParseErrEmptyInput:
		return fmt.Sprintf("empty input for symbolic type %q", e.TypeID)
	case ParseErrUnknownMember:
		return fmt.Sprintf("unknown member %q of symbolic type %q", e.Token, e.TypeID)
	default:
		return fmt.Sprintf("parse error kind=%d for %q", e.Kind, e.TypeID)
	}
}
