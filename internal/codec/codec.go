// Package codec renders combined symbolic values as comma-separated member
// name lists and parses such lists back into raw values.
package codec

import (
	"strings"

	"golang.org/x/text/cases"

	"bitsym/internal/flagbits"
	"bitsym/internal/symbolic"
	"bitsym/internal/wide"
)

// Option configures a single Parse call.
type Option func(*options)

type options struct {
	matchCase bool
}

// MatchCase makes member name lookup case-sensitive. The default is
// case-insensitive matching applied uniformly to all tokens in one call.
func MatchCase() Option {
	return func(o *options) { o.matchCase = true }
}

// Format renders a combined value as text. For flag-shaped descriptors whose
// value is an exact union of atomic members, the matched names are joined in
// declaration order with ", ". A value matching exactly one declared member
// renders as that member's name. Anything else falls back to the decimal
// string of the value; Format never fails.
func Format(desc *symbolic.Descriptor, raw wide.Int) string {
	reinterpreted := wide.FromBits(raw.Bits(), desc.Width().Bits(), desc.Signed())
	if name, ok := desc.NameByValue(reinterpreted); ok && (reinterpreted.IsZero() || !flagbits.IsFlagShaped(desc)) {
		return name
	}
	if flagbits.IsFlagShaped(desc) && !reinterpreted.IsZero() {
		if dec := flagbits.Decompose(desc, raw); dec.Remainder == 0 {
			names := make([]string, len(dec.Members))
			for i, m := range dec.Members {
				names[i] = m.Name
			}
			return strings.Join(names, ", ")
		}
	}
	return raw.String()
}

// Parse reads a comma-separated list of member names and ORs the matching
// member values together. Tokens are trimmed of surrounding whitespace and
// matched case-insensitively unless MatchCase is supplied.
func Parse(desc *symbolic.Descriptor, text string, opts ...Option) (wide.Int, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if strings.TrimSpace(text) == "" {
		return wide.Int{}, &ParseError{Kind: ParseErrEmptyInput, TypeID: desc.TypeID()}
	}

	var byFold map[string]symbolic.Member
	if !o.matchCase {
		folder := cases.Fold()
		byFold = make(map[string]symbolic.Member, desc.Len())
		// First declaration wins when two names fold together.
		for i := desc.Len() - 1; i >= 0; i-- {
			m := desc.MemberAt(i)
			byFold[folder.String(m.Name)] = m
		}
	}

	var pattern uint64
	for _, token := range strings.Split(text, ",") {
		token = strings.TrimSpace(token)
		member, ok := lookup(desc, byFold, token, o.matchCase)
		if !ok {
			return wide.Int{}, &ParseError{Kind: ParseErrUnknownMember, TypeID: desc.TypeID(), Token: token}
		}
		pattern |= member.Value.Bits()
	}
	return wide.FromBits(pattern, desc.Width().Bits(), desc.Signed()), nil
}

func lookup(desc *symbolic.Descriptor, byFold map[string]symbolic.Member, token string, matchCase bool) (symbolic.Member, bool) {
	if token == "" {
		return symbolic.Member{}, false
	}
	if matchCase {
		return desc.MemberByName(token)
	}
	m, ok := byFold[cases.Fold().String(token)]
	return m, ok
}
