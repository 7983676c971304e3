// Package normalize canonicalizes answer and option strings before equality
// comparison. Every comparison in the validation pipeline goes through this
// package so that "2.50", "2.5 " and "2.5" are one value, not three.
package normalize

import "strings"

// Answer canonicalizes an answer string: lowercase, runs of whitespace
// collapsed to a single space, trimmed, and numeric tokens stripped of
// trailing decimal zeros ("2.50" -> "2.5") and bare trailing decimal points
// ("3." -> "3"). Whitespace collapsing makes "1 5/35" and "1  5/35" equal.
func Answer(s string) string {
	s = strings.ToLower(s)
	fields := strings.Fields(s)
	for i, f := range fields {
		fields[i] = stripTrailingZeros(f)
	}
	return strings.Join(fields, " ")
}

// Equal reports whether two strings are the same answer under normalization.
func Equal(a, b string) bool {
	return Answer(a) == Answer(b)
}

// stripTrailingZeros trims redundant decimal digits from a numeric token.
// Non-numeric tokens, and tokens without a decimal point, pass through
// unchanged. A trailing non-digit suffix such as "%" is preserved.
func stripTrailingZeros(tok string) string {
	// Peel off a trailing unit-ish suffix (e.g. "%" in "2.50%").
	body, suffix := tok, ""
	for len(body) > 0 {
		c := body[len(body)-1]
		if c >= '0' && c <= '9' || c == '.' {
			break
		}
		suffix = string(c) + suffix
		body = body[:len(body)-1]
	}

	dot := strings.IndexByte(body, '.')
	if dot < 0 || !isNumeric(body) {
		return tok
	}

	body = strings.TrimRight(body, "0")
	body = strings.TrimSuffix(body, ".")
	if body == "" || body == "-" {
		body += "0"
	}
	return body + suffix
}

// isNumeric reports whether s is an optionally signed decimal literal with
// at most one decimal point.
func isNumeric(s string) bool {
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	dots := 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '.':
			dots++
			if dots > 1 {
				return false
			}
		case s[i] < '0' || s[i] > '9':
			return false
		}
	}
	return true
}
