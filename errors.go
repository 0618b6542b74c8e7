package gigasheet

// errors.go defines common error types for the public API.

import "fmt"

// APIError is returned when the Gigasheet API responds with a non-2xx
// status. The response body is kept verbatim since the API reports
// failures as free-form text.
type APIError struct {
	Method     string
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gigasheet: %s %s: status %d: %s", e.Method, e.Endpoint, e.StatusCode, e.Body)
}

// JobFailedError is returned by WaitForFile when a polled handle reports a
// status that is neither in-progress nor successful.
type JobFailedError struct {
	Handle string
	Status Status
}

func (e *JobFailedError) Error() string {
	return fmt.Sprintf("gigasheet: bad status on handle %s: %s", e.Handle, e.Status)
}

// JobTimeoutError is returned by WaitForFile when the poll budget is
// exhausted before the handle reaches a terminal state.
type JobTimeoutError struct {
	Handle     string
	Tries      int
	LastStatus Status
}

func (e *JobTimeoutError) Error() string {
	return fmt.Sprintf("gigasheet: handle %s still not done after %d tries, last status was: %s", e.Handle, e.Tries, e.LastStatus)
}
