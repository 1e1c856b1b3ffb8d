package registration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/mwhitfield/enroll/internal/logging"
)

// DefaultEndpoint is the form-submission endpoint registrations are posted
// to when no endpoint is configured.
const DefaultEndpoint = "https://formspree.example.com/f/student-registration"

// Submitter is the outbound submission contract the form screen depends
// on. The production implementation is Client; tests substitute a stub.
type Submitter interface {
	Submit(rec Registration) error
}

// Client posts validated registrations to the form endpoint.
//
// Each Submit call is a single best-effort HTTP POST: no retries, no
// backoff, no cancellation. By default there is no request timeout either;
// the call resolves or fails on the network stack's own terms. Use
// SetTimeout to opt into a bound.
type Client struct {
	// Endpoint is the URL registrations are posted to
	Endpoint string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client
}

// NewClient creates a submission client for the given endpoint.
// An empty endpoint selects DefaultEndpoint.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		Endpoint:   endpoint,
		HTTPClient: &http.Client{},
	}
}

// SetTimeout sets the HTTP request timeout. Zero means no timeout.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// Submit posts one registration as a JSON body with a
// Content-Type: application/json header.
//
// Any 2xx response status is success; the response body is not parsed.
// Any other status, or a transport failure, returns a *SubmitError.
func (c *Client) Submit(rec Registration) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return &SubmitError{
			Cause:   CauseNetwork,
			Message: "failed to encode registration",
			Err:     err,
		}
	}

	req, err := http.NewRequest(http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return &SubmitError{
			Cause:   CauseNetwork,
			Message: "failed to create request",
			Err:     err,
		}
	}
	req.Header.Set("Content-Type", "application/json")

	logging.LogSubmission(c.Endpoint, rec.Name, string(rec.Course))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		submitErr := classifySubmitError(err)
		logging.LogSubmissionResult(c.Endpoint, 0, submitErr)
		return submitErr
	}
	defer func() { _ = resp.Body.Close() }()

	// Body is not parsed; drain it so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		submitErr := newHTTPError(resp.StatusCode)
		logging.LogSubmissionResult(c.Endpoint, resp.StatusCode, submitErr)
		return submitErr
	}

	logging.LogSubmissionResult(c.Endpoint, resp.StatusCode, nil)
	return nil
}
