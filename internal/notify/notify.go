// Package notify defines the user-facing notification contract.
//
// The registration flow reports outcomes as transient titled messages with
// a description and a severity flag. How a notification is rendered,
// queued, or dismissed is up to the implementation: the terminal UI shows
// it as an inline toast, the one-shot CLI prints a styled box.
package notify

// Severity flags how a notification should be presented.
type Severity int

const (
	// SeverityNormal is an informational or success message.
	SeverityNormal Severity = iota
	// SeverityDestructive is a failure message.
	SeverityDestructive
)

// Notice is one notification payload.
type Notice struct {
	Title       string
	Description string
	Severity    Severity
}

// Notifier displays transient titled messages to the user.
type Notifier interface {
	Notify(title, description string, severity Severity)
}

// Func adapts a function to the Notifier interface.
type Func func(title, description string, severity Severity)

// Notify implements Notifier
func (f Func) Notify(title, description string, severity Severity) {
	f(title, description, severity)
}
