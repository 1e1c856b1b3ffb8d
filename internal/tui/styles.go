package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Application branding constants
const (
	AppName = "STUDENT REGISTRATION"
)

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 60 // Minimum supported terminal width
	MaxContentWidth  = 90 // Maximum content width before capping
	FieldInputWidth  = 40 // Width of the text input widgets
)

// Color palette
var (
	// Primary colors
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	ErrorColor     = lipgloss.Color("#FF5555") // Red

	// Neutral colors
	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	HighlightColor = lipgloss.Color("#43BF6D") // Green (same as secondary)
)

// Common styles
var (
	// Title style
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Padding(1, 0)

	// Subtitle style
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Field label style (unfocused)
	LabelStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Field label style (focused)
	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// Inline field error message style
	FieldErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// Course option style (unselected)
	OptionStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// Course option style (selected)
	SelectedOptionStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true)

	// Submit button style (unfocused)
	ButtonStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Padding(0, 3)

	// Submit button style (focused)
	FocusedButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#1A1A1A")).
				Background(PrimaryColor).
				Bold(true).
				Padding(0, 3)

	// Submit button style (busy)
	BusyButtonStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Padding(0, 3)

	// Success notice box
	SuccessNoticeStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(SecondaryColor).
				Padding(0, 2)

	// Failure notice box
	FailureNoticeStyle = lipgloss.NewStyle().
				Foreground(ErrorColor).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ErrorColor).
				Padding(0, 2)

	// Notice description style
	NoticeDescStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	// Registry section header style
	RosterHeaderStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// Registry row style
	RosterRowStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			PaddingLeft(2)

	// Registry row detail (email, course) style
	RosterDetailStyle = lipgloss.NewStyle().
				Foreground(SubtleColor)

	// Help text style
	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Padding(1, 0)

	// Spinner style
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)
)
