package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwhitfield/enroll/internal/notify"
	"github.com/mwhitfield/enroll/internal/registration"
)

// Focus positions on the form. The first four match the schema's field
// names; the last is the submit control.
const (
	focusName = iota
	focusAge
	focusEmail
	focusCourse
	focusSubmit
	focusCount
)

// submitCompleteMsg is delivered when the async submission finishes,
// success or failure.
type submitCompleteMsg struct {
	record registration.Registration
	err    error
}

// formKeyMap defines key bindings for the form screen
type formKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Cycle  key.Binding
	Submit key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Cycle, k.Submit, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Cycle},
		{k.Submit, k.Quit},
	}
}

// FormModel is the registration form screen.
//
// It tracks per-field values, per-field errors, and a single submitting
// flag. The model owns the session registry for its lifetime and passes it
// nowhere; records live only until the program exits.
type FormModel struct {
	// Collaborators
	Submitter registration.Submitter
	Registry  *registration.Registry

	// Field state
	NameInput    textinput.Model
	AgeInput     textinput.Model
	EmailInput   textinput.Model
	CourseCursor int // Index into registration.Courses(); -1 = unselected

	// Validation state
	Errors registration.FieldErrors

	// Submission state. While true the submit control is a no-op.
	Submitting bool

	// Latest notification, replaced on each submission outcome
	Notice *notify.Notice

	// Navigation
	Focus int

	// UI state
	Width  int
	Height int

	Spinner spinner.Model
	Help    help.Model
	Keys    formKeyMap
}

// NewFormModel creates the registration form bound to a submitter and a
// session registry.
func NewFormModel(submitter registration.Submitter, registry *registration.Registry) FormModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "Jane Doe"
	nameInput.CharLimit = 100
	nameInput.Width = FieldInputWidth
	nameInput.Focus()

	ageInput := textinput.New()
	ageInput.Placeholder = "18"
	ageInput.CharLimit = 3
	ageInput.Width = FieldInputWidth

	emailInput := textinput.New()
	emailInput.Placeholder = "jane@example.com"
	emailInput.CharLimit = 254
	emailInput.Width = FieldInputWidth

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	keys := formKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "previous field"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("left", "right"),
			key.WithHelp("←/→", "choose course"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}

	return FormModel{
		Submitter:    submitter,
		Registry:     registry,
		NameInput:    nameInput,
		AgeInput:     ageInput,
		EmailInput:   emailInput,
		CourseCursor: -1,
		Errors:       registration.FieldErrors{},
		Focus:        focusName,
		Spinner:      s,
		Help:         help.New(),
		Keys:         keys,
	}
}

// Init initializes the form
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.Submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case submitCompleteMsg:
		return m.handleSubmitComplete(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleSubmitComplete processes the submission outcome. The submitting
// flag is cleared first, before any branch, so the form always returns to
// idle.
func (m FormModel) handleSubmitComplete(msg submitCompleteMsg) (tea.Model, tea.Cmd) {
	m.Submitting = false

	if msg.err != nil {
		// Keep all field values so the user does not re-enter them
		m.Notify("Registration failed", registration.ShortMessage(msg.err), notify.SeverityDestructive)
		return m, nil
	}

	m.Registry.Add(msg.record)
	m = m.resetFields()
	m.Notify(
		"Registration complete",
		fmt.Sprintf("%s is enrolled in %s", msg.record.Name, msg.record.Course.Label()),
		notify.SeverityNormal,
	)
	return m, nil
}

// handleKey routes keyboard input
func (m FormModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Next):
		return m.moveFocus(1), nil

	case key.Matches(msg, m.Keys.Prev):
		return m.moveFocus(-1), nil

	case key.Matches(msg, m.Keys.Submit):
		if m.Focus == focusSubmit {
			return m.submit()
		}
		// Enter on a field advances, keyboard-form style
		return m.moveFocus(1), nil
	}

	// Course selector: cycle options with left/right or space
	if m.Focus == focusCourse {
		switch msg.String() {
		case "left":
			m = m.cycleCourse(-1)
		case "right", " ":
			m = m.cycleCourse(1)
		}
		return m, nil
	}

	// Route remaining keys to the focused text input, then re-run only
	// that field's rule if the value changed
	return m.updateFocusedInput(msg)
}

// moveFocus advances focus by delta, wrapping around, and syncs the text
// input focus states.
func (m FormModel) moveFocus(delta int) FormModel {
	m.Focus = (m.Focus + delta + focusCount) % focusCount

	m.NameInput.Blur()
	m.AgeInput.Blur()
	m.EmailInput.Blur()

	switch m.Focus {
	case focusName:
		m.NameInput.Focus()
	case focusAge:
		m.AgeInput.Focus()
	case focusEmail:
		m.EmailInput.Focus()
	}

	return m
}

// updateFocusedInput feeds a key to the focused text input and applies
// edit-time validation for that field only.
func (m FormModel) updateFocusedInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.Focus {
	case focusName:
		before := m.NameInput.Value()
		m.NameInput, cmd = m.NameInput.Update(msg)
		if m.NameInput.Value() != before {
			m.revalidateField(registration.FieldName, m.NameInput.Value())
		}

	case focusAge:
		before := m.AgeInput.Value()
		m.AgeInput, cmd = m.AgeInput.Update(msg)
		if m.AgeInput.Value() != before {
			m.revalidateField(registration.FieldAge, m.AgeInput.Value())
		}

	case focusEmail:
		before := m.EmailInput.Value()
		m.EmailInput, cmd = m.EmailInput.Update(msg)
		if m.EmailInput.Value() != before {
			m.revalidateField(registration.FieldEmail, m.EmailInput.Value())
		}
	}

	return m, cmd
}

// revalidateField updates the error state for a single edited field.
// The Errors map is replaced rather than mutated so the model stays
// value-semantic.
func (m *FormModel) revalidateField(field, value string) {
	next := make(registration.FieldErrors, len(m.Errors))
	for k, v := range m.Errors {
		if k != field {
			next[k] = v
		}
	}
	if fieldErr := registration.ValidateField(field, value); fieldErr != nil {
		next[field] = *fieldErr
	}
	m.Errors = next
}

// cycleCourse moves the course selection by delta, wrapping around the
// six options. Clears any course error once a selection exists.
func (m FormModel) cycleCourse(delta int) FormModel {
	courses := registration.Courses()
	if m.CourseCursor < 0 {
		if delta > 0 {
			m.CourseCursor = 0
		} else {
			m.CourseCursor = len(courses) - 1
		}
	} else {
		m.CourseCursor = (m.CourseCursor + delta + len(courses)) % len(courses)
	}
	m.revalidateField(registration.FieldCourse, string(courses[m.CourseCursor]))
	return m
}

// candidate assembles the raw form input for validation
func (m FormModel) candidate() registration.Candidate {
	course := ""
	if m.CourseCursor >= 0 {
		course = string(registration.Courses()[m.CourseCursor])
	}
	return registration.Candidate{
		Name:   m.NameInput.Value(),
		Age:    m.AgeInput.Value(),
		Email:  m.EmailInput.Value(),
		Course: course,
	}
}

// submit runs full validation and, if it passes, dispatches the
// submission. Submission is not re-entrant: while a submission is in
// flight this is a no-op.
func (m FormModel) submit() (tea.Model, tea.Cmd) {
	if m.Submitting {
		return m, nil
	}

	rec, errs := registration.Validate(m.candidate())
	if len(errs) > 0 {
		// Show every failing field and stay idle; no network call
		m.Errors = errs
		return m, nil
	}

	m.Errors = registration.FieldErrors{}
	m.Notice = nil
	m.Submitting = true

	return m, tea.Batch(m.Spinner.Tick, submitCmd(m.Submitter, rec))
}

// submitCmd performs the outbound submission off the event loop.
//
// The submitting flag is only cleared by the completion handler, so a
// panicking submitter must still yield a completion message; otherwise
// the form would be stuck busy forever.
func submitCmd(submitter registration.Submitter, rec registration.Registration) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = submitCompleteMsg{
					record: rec,
					err: &registration.SubmitError{
						Cause:   registration.CauseNetwork,
						Message: fmt.Sprintf("submission panicked: %v", r),
					},
				}
			}
		}()
		return submitCompleteMsg{record: rec, err: submitter.Submit(rec)}
	}
}

// resetFields returns all fields to their initial defaults after a
// successful submission. The age sentinel is the empty input, which the
// schema coerces to 0.
func (m FormModel) resetFields() FormModel {
	m.NameInput.SetValue("")
	m.AgeInput.SetValue("")
	m.EmailInput.SetValue("")
	m.CourseCursor = -1
	m.Errors = registration.FieldErrors{}
	m.Focus = focusName
	m.NameInput.Focus()
	m.AgeInput.Blur()
	m.EmailInput.Blur()
	return m
}

// Notify implements notify.Notifier by storing the latest notice for the
// view to render. A new notice replaces the previous one.
func (m *FormModel) Notify(title, description string, severity notify.Severity) {
	m.Notice = &notify.Notice{
		Title:       title,
		Description: description,
		Severity:    severity,
	}
}

// Run launches the interactive registration form and blocks until the
// user quits.
func Run(submitter registration.Submitter, registry *registration.Registry) error {
	p := tea.NewProgram(NewFormModel(submitter, registry), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
