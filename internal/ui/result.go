package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType indicates success or failure
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
)

// detail is one ordered key-value line in a result box.
type detail struct {
	key   string
	value string
}

// Result represents a result box for one-shot command output.
type Result struct {
	Type    ResultType
	Title   string
	Error   error    // Error (for failure results)
	Hints   []string // Guidance lines (for failure results)
	Width   int      // Terminal width
	details []detail // Ordered key-value details
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string) *Result {
	return &Result{
		Type:  ResultSuccess,
		Title: title,
		Width: GetTerminalWidth(),
	}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, err error, hints []string) *Result {
	return &Result{
		Type:  ResultFailure,
		Title: title,
		Error: err,
		Hints: hints,
		Width: GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail appends a detail key-value pair. Details render in the order
// they are added.
func (r *Result) AddDetail(key, value string) *Result {
	r.details = append(r.details, detail{key: key, value: value})
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	if r.Type == ResultFailure {
		return r.renderFailure()
	}
	return r.renderSuccess()
}

func (r *Result) renderSuccess() string {
	width := r.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	var lines []string

	titleLine := SuccessTitleStyle.Render(fmt.Sprintf("   %s  SUCCESS  ─  %s", SuccessMarker, r.Title))
	lines = append(lines, "", titleLine, "")

	for _, d := range r.details {
		keyStyled := ResultKeyStyle.Render(fmt.Sprintf("   %s:", d.key))
		valueStyled := ResultValueStyle.Render(d.value)
		lines = append(lines, keyStyled+" "+valueStyled)
	}
	lines = append(lines, "")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(SuccessColor).
		Width(width-2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

func (r *Result) renderFailure() string {
	width := r.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	var lines []string

	titleLine := ErrorTitleStyle.Render(fmt.Sprintf("   %s  FAILED  ─  %s", FailureMarker, r.Title))
	lines = append(lines, "", titleLine, "")

	if r.Error != nil {
		lines = append(lines, ErrorMessageStyle.Render("   "+r.Error.Error()), "")
	}

	for _, hint := range r.Hints {
		lines = append(lines, HintStyle.Render("   • "+hint))
	}
	if len(r.Hints) > 0 {
		lines = append(lines, "")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ErrorColor).
		Width(width-2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}
