// Package sanitize filters raw keystroke text before it reaches the form state.
// Malformed text is rejected silently and suspicious values produce advisory warnings.
package sanitize

import (
	"regexp"
	"strconv"

	"github.com/h0rv/tipcalc/internal/domain"
	"github.com/h0rv/tipcalc/internal/engine"
)

// Default warning thresholds.
const (
	DefaultMaxBill       = 1_000_000
	DefaultMaxPartyCount = 100
)

var (
	billPattern  = regexp.MustCompile(`^\d*\.?\d*$`)
	partyPattern = regexp.MustCompile(`^\d+$`)
)

// Limits holds the thresholds above which a value is flagged.
type Limits struct {
	MaxBill       float64
	MaxPartyCount int64
}

// DefaultLimits returns the standard warning thresholds.
func DefaultLimits() Limits {
	return Limits{MaxBill: DefaultMaxBill, MaxPartyCount: DefaultMaxPartyCount}
}

// Result is the outcome of filtering one keystroke.
// When Accepted is false, Value is the previous value unchanged.
type Result struct {
	Value    string
	Accepted bool
	Warning  *domain.Notification
}

// Bill accepts "" or a non-negative decimal number in progress ("12", "12.", ".5").
func Bill(prev, raw string, limits Limits) Result {
	if raw != "" && !billPattern.MatchString(raw) {
		return Result{Value: prev}
	}

	res := Result{Value: raw, Accepted: true}
	// The pattern already holds, so only overflow can fail here; it yields +Inf and still warns.
	if v, _ := strconv.ParseFloat(raw, 64); v > limits.MaxBill {
		res.Warning = &domain.Notification{Kind: domain.BillTooLarge, Message: domain.MsgBillTooLarge}
	}
	return res
}

// PartyCount accepts "" or a string of digits.
func PartyCount(prev, raw string, limits Limits) Result {
	if raw != "" && !partyPattern.MatchString(raw) {
		return Result{Value: prev}
	}

	res := Result{Value: raw, Accepted: true}
	if v, ok := engine.ParseInt(raw); ok && v > limits.MaxPartyCount {
		res.Warning = &domain.Notification{Kind: domain.TooManyPeople, Message: domain.MsgTooManyPeople}
	}
	return res
}

// CustomTip accepts any text unconditionally.
func CustomTip(raw string) Result {
	return Result{Value: raw, Accepted: true}
}
