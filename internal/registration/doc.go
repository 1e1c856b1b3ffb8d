// Package registration owns the student registration domain: the record
// model and course catalog, the validation schema, the submission client
// that posts accepted records to the form endpoint, and the session
// registry of successful registrations.
//
// The package has no UI dependencies. The terminal UI and the CLI commands
// both drive it through the same three entry points: Validate, Submit, and
// Registry.
package registration
