package search

import (
	"strings"

	"github.com/hupe1980/itemquery/match"
)

// Atom is the tokenized form of one search fragment: an optional tag,
// an optional relational operator, and the remaining text.
type Atom struct {
	Tag  string
	Op   match.Operator
	Text string
}

// ParseAtom tokenizes a single fragment. A tag is a leading
// alphanumeric run terminated by ':' or directly by an operator
// character, so both "q:rare" and "q>=3" carry the tag "q". Anything
// else leaves the whole fragment as text. Ordered prefix checks only.
func ParseAtom(s string) Atom {
	s = strings.TrimSpace(s)

	if tag, rest, ok := splitTag(s); ok {
		op, text := match.ParseOperator(strings.TrimSpace(rest))
		return Atom{Tag: tag, Op: op, Text: strings.TrimSpace(text)}
	}

	op, text := match.ParseOperator(s)
	return Atom{Op: op, Text: strings.TrimSpace(text)}
}

// splitTag peels a leading tag off s. The ':' separator is consumed; an
// operator character terminating the tag is left for ParseOperator.
func splitTag(s string) (tag, rest string, ok bool) {
	i := 0
	for i < len(s) && isWordByte(s[i]) {
		i++
	}
	if i == 0 || i == len(s) {
		return "", "", false
	}

	switch {
	case s[i] == ':':
		return s[:i], s[i+1:], true
	case match.IsOperatorByte(s[i]):
		return s[:i], s[i:], true
	default:
		return "", "", false
	}
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= '0' && c <= '9'
}
