// Package domain defines the form and result types shared by the tip calculator.
// These types carry raw user text and computed amounts independent of any UI.
package domain

// TipKind tags where the effective tip percentage came from.
type TipKind int

const (
	TipUnset  TipKind = iota // Nothing selected or typed yet
	TipPreset                // One of the preset buttons
	TipCustom                // Free-text custom percentage
)

// EffectiveTip is the tip percentage actually used in computation.
// A preset and a custom entry are two views of the same value, so only one can be set.
type EffectiveTip struct {
	kind TipKind
	text string
}

// PresetTip returns an effective tip selected from the preset list.
func PresetTip(percent string) EffectiveTip {
	return EffectiveTip{kind: TipPreset, text: percent}
}

// CustomTip returns an effective tip typed by the user.
func CustomTip(text string) EffectiveTip {
	return EffectiveTip{kind: TipCustom, text: text}
}

// Kind reports whether the tip is unset, a preset or custom.
func (t EffectiveTip) Kind() TipKind { return t.kind }

// Text returns the effective tip percentage text.
func (t EffectiveTip) Text() string { return t.text }

// IsPreset reports whether percent is the currently selected preset.
func (t EffectiveTip) IsPreset(percent string) bool {
	return t.kind == TipPreset && t.text == percent
}

// FormState holds the raw text of every form field. Empty string means unset.
type FormState struct {
	Bill       string       // Bill amount text (e.g. "100.50")
	Tip        EffectiveTip // Preset or custom tip percentage
	PartyCount string       // Number of people text (e.g. "4")
}

// TipPercentText returns the text used as the tip percentage.
func (s FormState) TipPercentText() string {
	return s.Tip.Text()
}

// CustomTipText returns the contents of the custom tip field, which is empty
// whenever a preset is selected.
func (s FormState) CustomTipText() string {
	if s.Tip.Kind() == TipCustom {
		return s.Tip.Text()
	}
	return ""
}

// IsEmpty reports whether every field is unset.
func (s FormState) IsEmpty() bool {
	return s == FormState{}
}

// DerivedAmounts are computed from FormState and never set by the user.
type DerivedAmounts struct {
	TipAmount      float64 // Total tip for the whole bill (not per person)
	TotalPerPerson float64 // (bill + tip) / party count
}

// NotificationKind identifies an advisory event emitted by the form.
type NotificationKind int

const (
	BillTooLarge NotificationKind = iota + 1
	TooManyPeople
	ResetSuccessful
)

// String returns a short identifier for logs.
func (k NotificationKind) String() string {
	switch k {
	case BillTooLarge:
		return "bill_too_large"
	case TooManyPeople:
		return "too_many_people"
	case ResetSuccessful:
		return "reset_successful"
	default:
		return "unknown"
	}
}

// IsWarning reports whether the notification flags a suspicious value.
func (k NotificationKind) IsWarning() bool {
	return k == BillTooLarge || k == TooManyPeople
}

// Notification is a transient advisory message for the host to display.
type Notification struct {
	Kind    NotificationKind
	Message string
}

// Notification messages.
const (
	MsgBillTooLarge    = "Bill amount too large"
	MsgTooManyPeople   = "Too many people"
	MsgResetSuccessful = "Calculator reset"
)
