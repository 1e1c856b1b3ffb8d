// Package tui implements the interactive registration form.
//
// The form is a single Bubble Tea screen: four fields (name, age, email,
// course), a submit control with a busy state, an inline notification
// toast, and a session roster of successfully registered students.
//
// # State machine
//
// The screen is either idle or submitting. Submit from idle runs the full
// validation schema; on any field failure the messages are shown inline
// and the state stays idle with no network call. A passing submit
// dispatches one HTTP POST as a background command; its completion message
// always clears the submitting flag before branching on the outcome, so
// the form returns to idle on success, failure, and panic alike. Submit
// while submitting is a no-op.
//
// # Validation timing
//
// The full schema runs at submit time. Additionally, editing a field
// re-runs that field's rule only, giving immediate inline feedback
// without disturbing the other fields' error states.
package tui
