package ledger

import (
	"fmt"
	"strings"

	"github.com/hance08/tally/internal/constants"
	"github.com/shopspring/decimal"
)

// RoundingMode selects how a value exactly halfway between two neighbours is
// rounded.
type RoundingMode int

const (
	// HalfAwayFromZero rounds halves away from zero: 0.5 -> 1, -0.5 -> -1.
	HalfAwayFromZero RoundingMode = iota
	// HalfEven rounds halves to the even neighbour (banker's rounding).
	HalfEven
)

func (m RoundingMode) String() string {
	switch m {
	case HalfAwayFromZero:
		return "half-away-from-zero"
	case HalfEven:
		return "half-even"
	default:
		return "unknown"
	}
}

// ParseRoundingMode parses a string into a RoundingMode.
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "half-away-from-zero", "half-up", "":
		return HalfAwayFromZero, nil
	case "half-even", "bankers":
		return HalfEven, nil
	default:
		return 0, fmt.Errorf("unknown rounding mode: %q", s)
	}
}

// Rule is the rounding applied to amounts and balances of one currency.
type Rule struct {
	Places int32
	Mode   RoundingMode
}

func (r Rule) Round(d decimal.Decimal) decimal.Decimal {
	if r.Mode == HalfEven {
		return d.RoundBank(r.Places)
	}
	return d.Round(r.Places)
}

// Format rounds d with the rule and renders it with exactly Places digits.
func (r Rule) Format(d decimal.Decimal) string {
	return r.Round(d).StringFixed(r.Places)
}

// Rules maps a currency label to its rounding rule. Currencies without an
// entry use the fallback rule.
type Rules struct {
	byCurrency map[string]Rule
	fallback   Rule
}

// DefaultRules rounds Cash to cents with banker's rounding and every other
// currency to 10 places, half away from zero.
func DefaultRules() Rules {
	return Rules{
		byCurrency: map[string]Rule{
			constants.CurrencyCash: {Places: 2, Mode: HalfEven},
		},
		fallback: Rule{Places: 10, Mode: HalfAwayFromZero},
	}
}

// With returns a copy of rs where currency uses rule.
func (rs Rules) With(currency string, rule Rule) Rules {
	m := make(map[string]Rule, len(rs.byCurrency)+1)
	for k, v := range rs.byCurrency {
		m[k] = v
	}
	m[currency] = rule
	return Rules{byCurrency: m, fallback: rs.fallback}
}

// For returns the rule used for currency.
func (rs Rules) For(currency string) Rule {
	if r, ok := rs.byCurrency[currency]; ok {
		return r
	}
	return rs.fallback
}
