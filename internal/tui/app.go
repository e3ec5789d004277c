package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/pkg/browser"

	"github.com/h0rv/tipcalc/internal/domain"
	"github.com/h0rv/tipcalc/internal/money"
	"github.com/h0rv/tipcalc/internal/store"
)

// Focus identifies the focused control. Tab order follows the constant order.
type Focus int

const (
	FocusBill Focus = iota
	FocusPresets
	FocusCustomTip
	FocusPeople
	FocusReset
	focusCount
)

// wideLayout is the terminal width above which the results sit beside the inputs.
const wideLayout = 90

// FormOptions carries presentation settings for the form.
type FormOptions struct {
	Presets       []string      // Preset tip percentages, in display order
	LinkURL       string        // Header link opened with ctrl+o
	ToastDuration time.Duration // How long a toast stays visible
	OpenURL       func(string) error
}

type toast struct {
	id   int
	note domain.Notification
	err  error
}

// FormModel is the root Bubble Tea model. It forwards keystrokes to the session
// and renders the session's state and derived amounts.
type FormModel struct {
	// Dependencies
	session *store.Session
	queue   *store.NotificationQueue
	money   *money.Formatter
	opts    FormOptions

	keys     KeyMap
	help     HelpModel
	showHelp bool

	billInput   textinput.Model
	customInput textinput.Model
	peopleInput textinput.Model

	focus     Focus
	presetIdx int

	toast    *toast
	toastSeq int
	width    int
}

// NewFormModel creates the form. queue must be the notifier the session was created with.
func NewFormModel(session *store.Session, queue *store.NotificationQueue, formatter *money.Formatter, opts FormOptions) FormModel {
	if opts.OpenURL == nil {
		opts.OpenURL = browser.OpenURL
	}
	if opts.ToastDuration <= 0 {
		opts.ToastDuration = 3 * time.Second
	}

	bill := textinput.New()
	bill.Prompt = formatter.Symbol() + " "
	bill.Placeholder = "0.00"

	custom := textinput.New()
	custom.Prompt = ""
	custom.Placeholder = "Custom %"
	custom.Width = 10

	people := textinput.New()
	people.Prompt = ""
	people.Placeholder = "1"

	keys := DefaultKeyMap()
	m := FormModel{
		session:     session,
		queue:       queue,
		money:       formatter,
		opts:        opts,
		keys:        keys,
		help:        NewHelpModel(keys),
		billInput:   bill,
		customInput: custom,
		peopleInput: people,
		width:       80,
	}
	m.syncInputs()
	m.setFocus(FocusBill)
	return m
}

// Init initializes the form.
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Session returns the underlying form session.
func (m FormModel) Session() *store.Session {
	return m.session
}

// Focused returns the focused control.
func (m FormModel) Focused() Focus {
	return m.focus
}

// Update handles messages and keeps the inputs in sync with the session.
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case NotificationMsg:
		cmd := m.showToast(&toast{note: msg.Notification})
		return m, cmd

	case ErrorMsg:
		slog.Error("Command failed", "error", msg.Err)
		cmd := m.showToast(&toast{err: msg.Err})
		return m, cmd

	case toastExpiredMsg:
		if m.toast != nil && m.toast.id == msg.id {
			m.toast = nil
		}
		return m, nil

	case QuitMsg:
		return m, tea.Quit
	}

	cmd := m.updateFocusedInput(msg)
	return m, cmd
}

func (m FormModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.setFocus((m.focus + 1) % focusCount)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Prev):
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Reset):
		cmd := m.reset()
		return m, cmd

	case key.Matches(msg, m.keys.OpenLink):
		return m, m.openLink()
	}

	// Custom tip accepts any text, so typed runes go to it before any shortcut.
	if m.focus != FocusCustomTip && key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		return m, nil
	}

	switch m.focus {
	case FocusPresets:
		switch {
		case key.Matches(msg, m.keys.Left):
			if m.presetIdx > 0 {
				m.presetIdx--
			}
		case key.Matches(msg, m.keys.Right):
			if m.presetIdx < len(m.opts.Presets)-1 {
				m.presetIdx++
			}
		case key.Matches(msg, m.keys.Select):
			if len(m.opts.Presets) > 0 {
				m.session.SelectPresetTip(m.opts.Presets[m.presetIdx])
				m.customInput.SetValue("")
			}
		}
		cmd := m.flushNotifications()
		return m, cmd

	case FocusReset:
		if key.Matches(msg, m.keys.Select) {
			cmd := m.reset()
			return m, cmd
		}
		return m, nil
	}

	inputCmd := m.updateFocusedInput(msg)
	toastCmd := m.flushNotifications()
	return m, tea.Batch(inputCmd, toastCmd)
}

// updateFocusedInput runs msg through the focused text input. A change in the
// text is offered to the session first; if the session rejects it the input
// keeps its previous value.
func (m *FormModel) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var input *textinput.Model
	var apply func(string) bool

	switch m.focus {
	case FocusBill:
		input, apply = &m.billInput, m.session.SetBill
	case FocusPeople:
		input, apply = &m.peopleInput, m.session.SetPartyCount
	case FocusCustomTip:
		input, apply = &m.customInput, func(v string) bool {
			m.session.SetCustomTip(v)
			return true
		}
	default:
		return nil
	}

	candidate, cmd := input.Update(msg)
	if candidate.Value() != input.Value() && !apply(candidate.Value()) {
		return nil
	}
	*input = candidate
	return cmd
}

// setFocus moves focus to f, focusing or blurring the text inputs to match.
func (m *FormModel) setFocus(f Focus) {
	m.focus = f
	m.billInput.Blur()
	m.customInput.Blur()
	m.peopleInput.Blur()

	switch f {
	case FocusBill:
		m.billInput.Focus()
	case FocusCustomTip:
		m.customInput.Focus()
	case FocusPeople:
		m.peopleInput.Focus()
	case FocusPresets:
		// Put the cursor on the selected preset, if any.
		for i, p := range m.opts.Presets {
			if m.session.State().Tip.IsPreset(p) {
				m.presetIdx = i
				break
			}
		}
	}
}

// syncInputs copies the session's field text into the inputs.
func (m *FormModel) syncInputs() {
	state := m.session.State()
	m.billInput.SetValue(state.Bill)
	m.customInput.SetValue(state.CustomTipText())
	m.peopleInput.SetValue(state.PartyCount)
}

func (m *FormModel) reset() tea.Cmd {
	m.session.Reset()
	m.syncInputs()
	m.presetIdx = 0
	return m.flushNotifications()
}

func (m FormModel) openLink() tea.Cmd {
	url, open := m.opts.LinkURL, m.opts.OpenURL
	if url == "" {
		return nil
	}
	return func() tea.Msg {
		if err := open(url); err != nil {
			return ErrorMsg{Err: fmt.Errorf("failed to open %s: %w", url, err)}
		}
		return nil
	}
}

// flushNotifications drains the session's queue and shows the newest one.
func (m *FormModel) flushNotifications() tea.Cmd {
	if m.queue == nil {
		return nil
	}
	notes := m.queue.Drain()
	if len(notes) == 0 {
		return nil
	}
	return m.showToast(&toast{note: notes[len(notes)-1]})
}

// showToast replaces the current toast and schedules its expiry.
func (m *FormModel) showToast(t *toast) tea.Cmd {
	m.toastSeq++
	t.id = m.toastSeq
	m.toast = t

	id := t.id
	return tea.Tick(m.opts.ToastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// View renders the form.
func (m FormModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Tip Calculator"))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("Tip and total per person"))
	if m.opts.LinkURL != "" {
		b.WriteString("\n")
		b.WriteString(LinkStyle.Render(m.opts.LinkURL))
	}
	b.WriteString("\n\n")

	inputs := m.renderInputs()
	results := m.renderResults()
	if m.width >= wideLayout {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, inputs, "    ", results))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, inputs, "", results))
	}
	b.WriteString("\n")

	if t := m.renderToast(); t != "" {
		b.WriteString("\n")
		b.WriteString(t)
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.width, m.showHelp))
	return b.String()
}

func (m FormModel) label(text string, f Focus) string {
	if m.focus == f {
		return FocusedLabelStyle.Render("> " + text)
	}
	return LabelStyle.Render("  " + text)
}

func (m FormModel) renderInputs() string {
	var b strings.Builder

	b.WriteString(m.label("Bill amount", FocusBill))
	b.WriteString("\n  ")
	b.WriteString(m.billInput.View())
	b.WriteString("\n\n")

	b.WriteString(m.label("Tip percentage", FocusPresets))
	b.WriteString("\n  ")
	tip := m.session.State().Tip
	buttons := make([]string, 0, len(m.opts.Presets))
	for i, p := range m.opts.Presets {
		style := ButtonStyle
		switch {
		case tip.IsPreset(p):
			style = SelectedButtonStyle
		case m.focus == FocusPresets && i == m.presetIdx:
			style = CursorButtonStyle
		}
		buttons = append(buttons, style.Render(p+"%"))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	b.WriteString("\n\n")

	b.WriteString(m.label("Custom tip %", FocusCustomTip))
	b.WriteString("\n  ")
	b.WriteString(m.customInput.View())
	b.WriteString("\n\n")

	b.WriteString(m.label("Number of people", FocusPeople))
	b.WriteString("\n  ")
	b.WriteString(m.peopleInput.View())

	return b.String()
}

func (m FormModel) renderResults() string {
	derived := m.session.Derived()

	row := func(label, sub, value string) string {
		left := ResultLabelStyle.Render(label) + "\n" + SubtitleStyle.UnsetMarginBottom().Render(sub)
		return lipgloss.JoinHorizontal(lipgloss.Center,
			lipgloss.NewStyle().Width(16).Render(left),
			ResultValueStyle.Render(value),
		)
	}

	resetStyle := ButtonStyle
	if m.focus == FocusReset {
		resetStyle = SelectedButtonStyle
	}

	panel := lipgloss.JoinVertical(lipgloss.Left,
		row("Tip", "per person", m.money.Format(m.session.PerPersonTip())),
		"",
		row("Total", "per person", m.money.Format(derived.TotalPerPerson)),
		"",
		resetStyle.Render("[ Reset ]"),
	)
	return ResultPanelStyle.Render(panel)
}

func (m FormModel) renderToast() string {
	if m.toast == nil {
		return ""
	}

	width := m.width - 4
	if width < 20 {
		width = 20
	}

	if m.toast.err != nil {
		return ErrorStyle.Render(wordwrap.String("Error: "+m.toast.err.Error(), width))
	}

	text := wordwrap.String(m.toast.note.Message, width)
	if m.toast.note.Kind.IsWarning() {
		return ErrorStyle.Render("! " + text)
	}
	return ToastStyle.Render("✓ " + text)
}
