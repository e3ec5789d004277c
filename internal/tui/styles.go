package tui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle is used for the form title.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("36")) // Mint

	// SubtitleStyle is used for the line under the title.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			MarginBottom(1)

	// LinkStyle is used for the header link.
	LinkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Underline(true)

	// LabelStyle is used for field labels.
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	// FocusedLabelStyle is used for the label of the focused field.
	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")).
				Bold(true)

	// ButtonStyle is used for preset and reset buttons.
	ButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	// SelectedButtonStyle is used for the active preset.
	SelectedButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("231")).
				Background(lipgloss.Color("36")).
				Bold(true).
				Padding(0, 1)

	// CursorButtonStyle marks the button under the cursor.
	CursorButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42")).
				Underline(true).
				Padding(0, 1)

	// ResultPanelStyle frames the computed amounts.
	ResultPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("36")).
				Padding(1, 2)

	// ResultLabelStyle is used for result captions.
	ResultLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("252"))

	// ResultValueStyle is used for the formatted amounts.
	ResultValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("231")).
				Bold(true)

	// ToastStyle is used for informational toasts.
	ToastStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	// ErrorStyle is used for warnings and errors.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	// HelpStyle is used for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")). // Dark gray
			MarginTop(1)
)
