package mathexpr

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// Answer format names, matching the answer_format field on question records.
const (
	FormatInteger     = "integer"
	FormatDecimal     = "decimal"
	FormatFraction    = "fraction"
	FormatMixedNumber = "mixed_number"
	FormatPercentage  = "percentage"
	FormatRatio       = "ratio"
)

var (
	fractionRe = regexp.MustCompile(`^(-?\d+)\s*/\s*(\d+)$`)
	mixedRe    = regexp.MustCompile(`^(-?\d+)\s+(\d+)\s*/\s*(\d+)$`)
	ratioRe    = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*:\s*(\d+(?:\.\d+)?)$`)
)

// ParseAnswer parses an answer string under its declared format into an
// exact rational value. Percentages parse to their numeric value ("50%" is
// 1/2) and ratios to the quotient of their parts ("3:4" is 3/4), so answers
// in different renderings of the same value compare equal.
func ParseAnswer(s, format string) (*big.Rat, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty answer")
	}

	switch format {
	case FormatInteger, FormatDecimal, "":
		return parseDecimal(s)
	case FormatFraction:
		if r := parseFraction(s); r != nil {
			return r, nil
		}
		// Some generators emit a whole number where the fraction reduced away.
		return parseDecimal(s)
	case FormatMixedNumber:
		if r := parseMixed(s); r != nil {
			return r, nil
		}
		if r := parseFraction(s); r != nil {
			return r, nil
		}
		return parseDecimal(s)
	case FormatPercentage:
		body := strings.TrimSpace(strings.TrimSuffix(s, "%"))
		r, err := parseDecimal(body)
		if err != nil {
			return nil, err
		}
		return r.Quo(r, big.NewRat(100, 1)), nil
	case FormatRatio:
		m := ratioRe.FindStringSubmatch(s)
		if m == nil {
			return nil, fmt.Errorf("invalid ratio %q", s)
		}
		a, err := parseDecimal(m[1])
		if err != nil {
			return nil, err
		}
		b, err := parseDecimal(m[2])
		if err != nil {
			return nil, err
		}
		if b.Sign() == 0 {
			return nil, ErrDivisionByZero
		}
		return a.Quo(a, b), nil
	default:
		// Unknown format: accept anything numeric rather than guessing wrong.
		if r := parseMixed(s); r != nil {
			return r, nil
		}
		if r := parseFraction(s); r != nil {
			return r, nil
		}
		return parseDecimal(s)
	}
}

func parseDecimal(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("invalid number %q", s)
	}
	return r, nil
}

func parseFraction(s string) *big.Rat {
	m := fractionRe.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	r, ok := new(big.Rat).SetString(m[1] + "/" + m[2])
	if !ok {
		return nil
	}
	return r
}

func parseMixed(s string) *big.Rat {
	m := mixedRe.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	whole, ok := new(big.Rat).SetString(m[1])
	if !ok {
		return nil
	}
	frac, ok := new(big.Rat).SetString(m[2] + "/" + m[3])
	if !ok {
		return nil
	}
	if whole.Sign() < 0 {
		return whole.Sub(whole, frac)
	}
	return whole.Add(whole, frac)
}

// FractionParts splits "a/b" into numerator and denominator. ok is false
// when s is not a plain fraction literal.
func FractionParts(s string) (num, den int64, ok bool) {
	m := fractionRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, false
	}
	var n, d big.Int
	if _, k := n.SetString(m[1], 10); !k {
		return 0, 0, false
	}
	if _, k := d.SetString(m[2], 10); !k {
		return 0, 0, false
	}
	if !n.IsInt64() || !d.IsInt64() {
		return 0, 0, false
	}
	return n.Int64(), d.Int64(), true
}

// MixedParts splits "w a/b" into whole, numerator and denominator.
func MixedParts(s string) (whole, num, den int64, ok bool) {
	m := mixedRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, 0, 0, false
	}
	var w, n, d big.Int
	if _, k := w.SetString(m[1], 10); !k {
		return 0, 0, 0, false
	}
	if _, k := n.SetString(m[2], 10); !k {
		return 0, 0, 0, false
	}
	if _, k := d.SetString(m[3], 10); !k {
		return 0, 0, 0, false
	}
	if !w.IsInt64() || !n.IsInt64() || !d.IsInt64() {
		return 0, 0, 0, false
	}
	return w.Int64(), n.Int64(), d.Int64(), true
}

// IsReduced reports whether num/den is in lowest terms.
func IsReduced(num, den int64) bool {
	if den == 0 {
		return false
	}
	return gcd(abs(num), abs(den)) == 1
}

// FormatMixed renders a rational as a mixed number ("1 2/5"), a plain
// fraction when there is no whole part, or a bare integer.
func FormatMixed(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	num := new(big.Int).Abs(r.Num())
	den := r.Denom()
	whole := new(big.Int).Quo(num, den)
	rem := new(big.Int).Mod(num, den)
	sign := ""
	if r.Sign() < 0 {
		sign = "-"
	}
	if whole.Sign() == 0 {
		return fmt.Sprintf("%s%s/%s", sign, rem, den)
	}
	return fmt.Sprintf("%s%s %s/%s", sign, whole, rem, den)
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(a int64) int64 {
	if a < 0 {
		return -a
	}
	return a
}
