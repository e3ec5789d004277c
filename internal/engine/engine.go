// Package engine derives the tip and per-person total from raw form text.
// Every function here is pure: the same FormState always yields the same amounts.
package engine

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/h0rv/tipcalc/internal/domain"
)

var (
	// Leading decimal number, e.g. "12.5" in "12.5%". Exponents are allowed like strconv does.
	floatPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	// Leading integer, e.g. "3" in "3.7".
	intPrefix = regexp.MustCompile(`^[+-]?\d+`)
)

// ParseFloat reads the leading decimal number of s, ignoring leading whitespace.
// It returns ok=false when s has no numeric prefix or the prefix is not a finite
// number, so "Infinity" and "1e400" both read as no input.
func ParseFloat(s string) (float64, bool) {
	m := floatPrefix.FindString(strings.TrimLeft(s, " \t\n"))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	// Underflow rounds to zero; overflow yields ±Inf and is rejected below.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// ParseInt reads the leading integer of s, ignoring leading whitespace.
// Values beyond int64 are clamped. It returns ok=false when s has no integer prefix.
func ParseInt(s string) (int64, bool) {
	m := intPrefix.FindString(strings.TrimLeft(s, " \t\n"))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(m, 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}

// ParseBill parses the bill text, defaulting to 0.
func ParseBill(text string) float64 {
	v, _ := ParseFloat(text)
	return v
}

// ParseTipPercent parses the tip percentage text, defaulting to 0.
func ParseTipPercent(text string) float64 {
	v, _ := ParseFloat(text)
	return v
}

// ParsePartyCount parses the party size text, defaulting to 1 when empty or unparsable.
func ParsePartyCount(text string) int64 {
	v, ok := ParseInt(text)
	if !ok {
		return 1
	}
	return v
}

// Derive computes the tip and per-person total for state.
// If bill <= 0, tip < 0 or party <= 0 both amounts are zero.
func Derive(state domain.FormState) domain.DerivedAmounts {
	bill := ParseBill(state.Bill)
	tipPercent := ParseTipPercent(state.TipPercentText())
	party := ParsePartyCount(state.PartyCount)

	if !(bill > 0 && tipPercent >= 0 && party > 0) {
		return domain.DerivedAmounts{}
	}

	tip := bill * tipPercent / 100
	return domain.DerivedAmounts{
		TipAmount:      tip,
		TotalPerPerson: (bill + tip) / float64(party),
	}
}

// PerPersonTip splits the total tip by the party size in partyText.
// The party size is coerced to at least 1.
func PerPersonTip(d domain.DerivedAmounts, partyText string) float64 {
	party := ParsePartyCount(partyText)
	if party < 1 {
		party = 1
	}
	return d.TipAmount / float64(party)
}
