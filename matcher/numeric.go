package matcher

import (
	"fmt"
	"strconv"
	"strings"
)

// Convention identifies the regional numeric format a vendor's documents use.
type Convention int

const (
	// PeriodDecimal: period as decimal separator, comma as optional
	// thousands grouping ("1,234.56").
	PeriodDecimal Convention = iota
	// CommaDecimal: comma as decimal separator, period as optional
	// thousands grouping ("1.234,56").
	CommaDecimal
)

func (c Convention) String() string {
	switch c {
	case CommaDecimal:
		return "comma-decimal"
	default:
		return "period-decimal"
	}
}

// ParseNumber converts a locale-formatted numeric token into a float64 under
// the given convention: grouping separators are stripped first, then the
// decimal separator is coerced to a period, then the remainder is parsed.
// A token that does not survive as a valid number returns an error; callers
// treat that as "no match" for the candidate row, never as a fatal condition.
func ParseNumber(token string, conv Convention) (float64, error) {
	s := strings.TrimSpace(token)
	if s == "" {
		return 0, fmt.Errorf("parsing number: empty token")
	}

	switch conv {
	case CommaDecimal:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	default:
		s = strings.ReplaceAll(s, ",", "")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing number %q (%s): %w", token, conv, err)
	}
	return v, nil
}

// parseFlexible handles tokens carrying at most one separator, which is
// always the decimal separator (the MMA and generic line shapes admit no
// grouping): a lone comma reads as comma-decimal, anything else as
// period-decimal.
func parseFlexible(token string) (float64, error) {
	if strings.Contains(token, ",") && !strings.Contains(token, ".") {
		return ParseNumber(token, CommaDecimal)
	}
	return ParseNumber(token, PeriodDecimal)
}
