// Package logging provides structured logging for the enroll CLI.
//
// Logging is built on zap and is silent by default so that the terminal UI
// output stays clean. Set the ENROLL_LOG_LEVEL environment variable to
// "debug", "info", "warn", or "error" to enable console logging.
package logging
