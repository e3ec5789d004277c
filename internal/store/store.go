// Package store provides the in-memory form session for the tip calculator.
// It owns one FormState, filters every input through the sanitizer and recomputes
// the derived amounts synchronously after each accepted change.
package store

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/h0rv/tipcalc/internal/domain"
	"github.com/h0rv/tipcalc/internal/engine"
	"github.com/h0rv/tipcalc/internal/sanitize"
)

// Notifier receives advisory notifications emitted by a Session.
type Notifier interface {
	Notify(n domain.Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(n domain.Notification)

// Notify calls f(n).
func (f NotifierFunc) Notify(n domain.Notification) { f(n) }

// NotificationQueue buffers notifications until the host drains them.
type NotificationQueue struct {
	items []domain.Notification
}

// Notify appends n to the queue.
func (q *NotificationQueue) Notify(n domain.Notification) {
	q.items = append(q.items, n)
}

// Drain returns the queued notifications in emission order and empties the queue.
func (q *NotificationQueue) Drain() []domain.Notification {
	items := q.items
	q.items = nil
	return items
}

// Len returns the number of queued notifications.
func (q *NotificationQueue) Len() int {
	return len(q.items)
}

// Option configures a Session.
type Option func(*Session)

// WithLimits overrides the warning thresholds.
func WithLimits(limits sanitize.Limits) Option {
	return func(s *Session) { s.limits = limits }
}

// WithNotifier sets the receiver for advisory notifications.
func WithNotifier(n Notifier) Option {
	return func(s *Session) { s.notifier = n }
}

// WithLogger sets the logger. The session id is attached to every record.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// Session is a single form session. It is not safe for concurrent use;
// the host event loop owns it exclusively.
type Session struct {
	id       string
	state    domain.FormState
	derived  domain.DerivedAmounts
	limits   sanitize.Limits
	notifier Notifier
	logger   *slog.Logger
}

// New creates a session with every field empty and both amounts zero.
func New(opts ...Option) *Session {
	s := &Session{
		id:     uuid.NewString(),
		limits: sanitize.DefaultLimits(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session", s.id)
	s.logger.Debug("Session started", "max_bill", s.limits.MaxBill, "max_party_count", s.limits.MaxPartyCount)
	return s
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string {
	return s.id
}

// State returns a snapshot of the current form fields.
func (s *Session) State() domain.FormState {
	return s.state
}

// Derived returns the amounts computed after the last change.
func (s *Session) Derived() domain.DerivedAmounts {
	return s.derived
}

// PerPersonTip returns the total tip divided by the current party size.
func (s *Session) PerPersonTip() float64 {
	return engine.PerPersonTip(s.derived, s.state.PartyCount)
}

// Limits returns the warning thresholds in effect.
func (s *Session) Limits() sanitize.Limits {
	return s.limits
}

// SetBill updates the bill text. It returns false if the text was rejected,
// in which case the previous value is kept.
func (s *Session) SetBill(raw string) bool {
	res := sanitize.Bill(s.state.Bill, raw, s.limits)
	if !res.Accepted {
		s.logger.Debug("Bill input rejected", "input", raw)
		return false
	}
	s.state.Bill = res.Value
	s.warn(res.Warning)
	s.fieldChanged("bill")
	return true
}

// SetPartyCount updates the party size text. It returns false if the text was rejected.
func (s *Session) SetPartyCount(raw string) bool {
	res := sanitize.PartyCount(s.state.PartyCount, raw, s.limits)
	if !res.Accepted {
		s.logger.Debug("Party count input rejected", "input", raw)
		return false
	}
	s.state.PartyCount = res.Value
	s.warn(res.Warning)
	s.fieldChanged("party_count")
	return true
}

// SelectPresetTip makes percent the effective tip and clears any custom text.
func (s *Session) SelectPresetTip(percent string) {
	s.state.Tip = domain.PresetTip(percent)
	s.fieldChanged("tip_preset")
}

// SetCustomTip makes raw the effective tip, overriding any selected preset.
func (s *Session) SetCustomTip(raw string) {
	res := sanitize.CustomTip(raw)
	s.state.Tip = domain.CustomTip(res.Value)
	s.fieldChanged("tip_custom")
}

// Reset clears every field and both amounts in one step, then emits a
// ResetSuccessful notification.
func (s *Session) Reset() {
	s.state = domain.FormState{}
	s.derived = domain.DerivedAmounts{}
	s.logger.Info("Form reset")
	s.emit(domain.Notification{Kind: domain.ResetSuccessful, Message: domain.MsgResetSuccessful})
}

// fieldChanged recomputes the derived amounts from the current state.
func (s *Session) fieldChanged(field string) {
	s.derived = engine.Derive(s.state)
	s.logger.Debug("Field changed",
		"field", field,
		"bill", s.state.Bill,
		"tip_percent", s.state.TipPercentText(),
		"party_count", s.state.PartyCount,
		"tip_amount", s.derived.TipAmount,
		"total_per_person", s.derived.TotalPerPerson,
	)
}

func (s *Session) warn(n *domain.Notification) {
	if n == nil {
		return
	}
	s.logger.Warn("Input out of range", "kind", n.Kind.String())
	s.emit(*n)
}

func (s *Session) emit(n domain.Notification) {
	if s.notifier != nil {
		s.notifier.Notify(n)
	}
}
