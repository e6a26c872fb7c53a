// Package match provides the leaf utilities search predicates are built
// from: relational-operator parsing and evaluation, and case-insensitive
// text containment.
package match

import "strings"

// Operator identifies a relational operator peeled off a search atom.
type Operator uint8

const (
	// OpNone means no operator was present; comparisons default to equality.
	OpNone Operator = iota
	// OpLess is "<".
	OpLess
	// OpLessEq is "<=".
	OpLessEq
	// OpGreater is ">".
	OpGreater
	// OpGreaterEq is ">=".
	OpGreaterEq
	// OpEqual covers "=", "==", and ":".
	OpEqual
	// OpNotEqual covers "!=" and "~=".
	OpNotEqual
)

// String returns the canonical token for the operator.
func (op Operator) String() string {
	switch op {
	case OpLess:
		return "<"
	case OpLessEq:
		return "<="
	case OpGreater:
		return ">"
	case OpGreaterEq:
		return ">="
	case OpEqual:
		return "="
	case OpNotEqual:
		return "!="
	default:
		return ""
	}
}

// opTokens is checked in order; two-character tokens come first so "<="
// never parses as "<" followed by "=".
var opTokens = []struct {
	tok string
	op  Operator
}{
	{"<=", OpLessEq},
	{">=", OpGreaterEq},
	{"==", OpEqual},
	{"!=", OpNotEqual},
	{"~=", OpNotEqual},
	{"<", OpLess},
	{">", OpGreater},
	{"=", OpEqual},
	{":", OpEqual},
}

// ParseOperator peels a leading relational operator off s and returns it
// together with the trimmed remainder. OpNone and s unchanged when no
// operator is present. Ordered prefix checks only, no regex.
func ParseOperator(s string) (Operator, string) {
	for _, t := range opTokens {
		if strings.HasPrefix(s, t.tok) {
			return t.op, strings.TrimSpace(s[len(t.tok):])
		}
	}
	return OpNone, s
}

// IsOperatorByte reports whether c can start an operator token.
func IsOperatorByte(c byte) bool {
	switch c {
	case '<', '>', '=', '!', '~', ':':
		return true
	default:
		return false
	}
}

// Compare evaluates op against a and b. OpNone and any unrecognized
// operator fall back to equality; the permissive default keeps malformed
// atoms from ever turning into errors.
func Compare(op Operator, a, b float64) bool {
	switch op {
	case OpLess:
		return a < b
	case OpLessEq:
		return a <= b
	case OpGreater:
		return a > b
	case OpGreaterEq:
		return a >= b
	case OpNotEqual:
		return a != b
	default:
		return a == b
	}
}

// ContainsAny reports whether any candidate contains fragment,
// case-insensitively. fragment must already be lowercase (queries are
// normalized once, up front); candidates are lowered here. Empty
// candidates are skipped.
func ContainsAny(fragment string, candidates ...string) bool {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if strings.Contains(strings.ToLower(c), fragment) {
			return true
		}
	}
	return false
}
