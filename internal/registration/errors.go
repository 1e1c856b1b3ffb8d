package registration

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"syscall"
)

// FailureCause classifies why a submission failed. Every cause is surfaced
// to the user as the same single "submission failed" outcome; the cause
// only changes how the notification message is phrased.
type FailureCause int

const (
	// CauseNetwork is a transport-level failure with no more specific
	// classification.
	CauseNetwork FailureCause = iota
	// CauseTimeout indicates the request timed out.
	CauseTimeout
	// CauseConnectionRefused indicates the endpoint refused the connection.
	CauseConnectionRefused
	// CauseDNS indicates the endpoint hostname could not be resolved.
	CauseDNS
	// CauseHTTP indicates the endpoint responded with a non-2xx status.
	CauseHTTP
)

// String returns a human-readable name for the failure cause
func (c FailureCause) String() string {
	switch c {
	case CauseNetwork:
		return "Network Error"
	case CauseTimeout:
		return "Timeout"
	case CauseConnectionRefused:
		return "Connection Refused"
	case CauseDNS:
		return "DNS Error"
	case CauseHTTP:
		return "HTTP Error"
	default:
		return fmt.Sprintf("FailureCause(%d)", c)
	}
}

// SubmitError represents a failed registration submission. Both transport
// failures and non-2xx responses produce a SubmitError; callers that only
// care about the success/failure branch can treat every SubmitError alike.
type SubmitError struct {
	Cause      FailureCause
	Message    string
	StatusCode int   // HTTP status code (CauseHTTP only)
	Err        error // Underlying error (if any)
}

// Error implements the error interface
func (e *SubmitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Cause, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Cause, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *SubmitError) Unwrap() error {
	return e.Err
}

// classifySubmitError analyzes a transport error from the HTTP client and
// wraps it with a specific failure cause.
func classifySubmitError(err error) *SubmitError {
	if err == nil {
		return nil
	}

	if os.IsTimeout(err) {
		return &SubmitError{
			Cause:   CauseTimeout,
			Message: "request timed out",
			Err:     err,
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &SubmitError{
			Cause:   CauseDNS,
			Message: fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Err:     err,
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if errors.Is(opErr.Err, syscall.ECONNREFUSED) {
			return &SubmitError{
				Cause:   CauseConnectionRefused,
				Message: "endpoint refused connection",
				Err:     err,
			}
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		// Recursively classify the underlying error
		return classifySubmitError(urlErr.Err)
	}

	return &SubmitError{
		Cause:   CauseNetwork,
		Message: "network error occurred",
		Err:     err,
	}
}

// newHTTPError creates a SubmitError for a non-2xx response status
func newHTTPError(statusCode int) *SubmitError {
	return &SubmitError{
		Cause:      CauseHTTP,
		Message:    fmt.Sprintf("endpoint returned status %d", statusCode),
		StatusCode: statusCode,
	}
}

// IsSubmissionFailed checks if an error is a failed-submission error
func IsSubmissionFailed(err error) bool {
	var submitErr *SubmitError
	return errors.As(err, &submitErr)
}

// ShortMessage returns a concise, user-friendly message for a submission
// error, suitable for a notification body.
func ShortMessage(err error) string {
	var submitErr *SubmitError
	if !errors.As(err, &submitErr) {
		return err.Error()
	}

	switch submitErr.Cause {
	case CauseTimeout:
		return "The registration service did not respond in time. Please try again."
	case CauseConnectionRefused:
		return "Could not connect to the registration service. Please try again."
	case CauseDNS:
		return "Could not reach the registration service. Check your network connection and try again."
	case CauseHTTP:
		return fmt.Sprintf("The registration service rejected the request (HTTP %d). Please try again.", submitErr.StatusCode)
	default:
		return "Something went wrong sending your registration. Please try again."
	}
}
