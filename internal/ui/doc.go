// Package ui provides styled run-once terminal output for the enroll CLI.
//
// Unlike the interactive form (internal/tui), these components follow a
// "render once and exit" pattern: the submit subcommand prints a single
// success or failure box and returns. Rendering uses Lipgloss with the
// terminal width detected via golang.org/x/term.
package ui
