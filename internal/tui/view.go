package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwhitfield/enroll/internal/notify"
	"github.com/mwhitfield/enroll/internal/registration"
)

// View renders the form screen
func (m FormModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(AppName))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("Register a student for a course"))
	b.WriteString("\n\n")

	b.WriteString(m.renderField(focusName, "Name", m.NameInput.View(), registration.FieldName))
	b.WriteString(m.renderField(focusAge, "Age", m.AgeInput.View(), registration.FieldAge))
	b.WriteString(m.renderField(focusEmail, "Email", m.EmailInput.View(), registration.FieldEmail))
	b.WriteString(m.renderField(focusCourse, "Course", m.renderCourseSelector(), registration.FieldCourse))

	b.WriteString("\n")
	b.WriteString(m.renderSubmitButton())
	b.WriteString("\n")

	if m.Notice != nil {
		b.WriteString("\n")
		b.WriteString(m.renderNotice())
		b.WriteString("\n")
	}

	// Registered-students section only exists once something registered
	if m.Registry.Len() > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderRoster())
	}

	b.WriteString("\n")
	b.WriteString(HelpStyle.Render(m.Help.View(m.Keys)))

	content := b.String()
	if m.Width > 0 {
		width := m.Width
		if width > MaxContentWidth {
			width = MaxContentWidth
		}
		content = lipgloss.NewStyle().Width(width).Render(content)
	}
	return content
}

// renderField renders one labeled field with its inline error, if any
func (m FormModel) renderField(focus int, label, widget, errField string) string {
	labelStyle := LabelStyle
	if m.Focus == focus {
		labelStyle = FocusedLabelStyle
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(label))
	b.WriteString("\n")
	b.WriteString(widget)
	b.WriteString("\n")

	if fieldErr, ok := m.Errors[errField]; ok {
		b.WriteString(FieldErrorStyle.Render("  " + fieldErr.Message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	return b.String()
}

// renderCourseSelector renders the inline course chooser
func (m FormModel) renderCourseSelector() string {
	if m.CourseCursor < 0 {
		hint := "  choose a course"
		if m.Focus == focusCourse {
			hint = "◂ choose a course ▸"
		}
		return OptionStyle.Foreground(SubtleColor).Render(hint)
	}

	course := registration.Courses()[m.CourseCursor]
	label := course.Label()
	if m.Focus == focusCourse {
		return SelectedOptionStyle.Render(fmt.Sprintf("◂ %s ▸", label))
	}
	return OptionStyle.Render("  " + label)
}

// renderSubmitButton renders the submit control, including busy state
func (m FormModel) renderSubmitButton() string {
	if m.Submitting {
		return BusyButtonStyle.Render(m.Spinner.View() + " Submitting...")
	}
	if m.Focus == focusSubmit {
		return FocusedButtonStyle.Render("Submit")
	}
	return ButtonStyle.Render("Submit")
}

// renderNotice renders the latest notification as an inline toast
func (m FormModel) renderNotice() string {
	boxStyle := SuccessNoticeStyle
	if m.Notice.Severity == notify.SeverityDestructive {
		boxStyle = FailureNoticeStyle
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(m.Notice.Title),
		NoticeDescStyle.Render(m.Notice.Description),
	)
	return boxStyle.Render(content)
}

// renderRoster renders the session registry in insertion order
func (m FormModel) renderRoster() string {
	records := m.Registry.Records()

	var b strings.Builder
	b.WriteString(RosterHeaderStyle.Render(fmt.Sprintf("Registered this session (%d)", len(records))))
	b.WriteString("\n")

	for i, rec := range records {
		row := fmt.Sprintf("%d. %s, %d", i+1, rec.Name, rec.Age)
		det := fmt.Sprintf("  %s · %s", rec.Email, rec.Course.Label())
		b.WriteString(RosterRowStyle.Render(row))
		b.WriteString(RosterDetailStyle.Render(det))
		b.WriteString("\n")
	}

	return b.String()
}
