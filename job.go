package gigasheet

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Status is the processing state reported for a sheet or export handle.
type Status string

const (
	StatusUploading  Status = "uploading"
	StatusLoading    Status = "loading"
	StatusProcessing Status = "processing"
	StatusProcessed  Status = "processed"
)

// InProgress reports whether the status is a transient state worth
// polling again.
func (s Status) InProgress() bool {
	switch s {
	case StatusUploading, StatusLoading, StatusProcessing:
		return true
	}
	return false
}

// WaitOptions are options for polling an asynchronous job.
type WaitOptions struct {
	// DeletionIsSuccess treats deletion of the handle as completion.
	// Append jobs run on a transient sheet which the backend deletes
	// once the append lands, and the poll then gets a 400 Bad Request
	// saying the sheet was deleted. Set this when waiting on appends.
	DeletionIsSuccess bool

	// PollInterval is the pause between polls, default 1s.
	PollInterval time.Duration

	// MaxTries bounds the number of polls before the job is assumed to
	// have failed, default 1000.
	MaxTries int
}

// WaitForFile polls a handle until it reaches a successful state.
//
// Transient statuses (uploading, loading, processing) keep the poll
// going; "processed" is success; anything else fails with a
// *JobFailedError. Polls that error at the HTTP level consume a try and
// are otherwise ignored, except for the deletion case described on
// WaitOptions.DeletionIsSuccess. When the try budget runs out, a
// *JobTimeoutError reports the last status seen.
func (c *Client) WaitForFile(ctx context.Context, handle string, options *WaitOptions) error {
	if handle == "" {
		return fmt.Errorf("gigasheet: empty value for handle")
	}
	if options == nil {
		options = &WaitOptions{}
	}
	interval := options.PollInterval
	if interval == 0 {
		interval = time.Second
	}
	maxTries := options.MaxTries
	if maxTries == 0 {
		maxTries = 1000
	}

	var lastStatus Status
	for i := 0; i < maxTries; i++ {
		if i != 0 {
			if err := sleepCtx(ctx, interval); err != nil {
				return err
			}
		}
		info, err := c.Info(ctx, handle)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			var apiErr *APIError
			if options.DeletionIsSuccess && errors.As(err, &apiErr) &&
				apiErr.StatusCode == http.StatusBadRequest &&
				strings.Contains(apiErr.Body, "deleted") {
				return nil
			}
			continue
		}
		lastStatus = info.Status
		if info.Status == StatusProcessed {
			return nil
		}
		if !info.Status.InProgress() {
			return &JobFailedError{Handle: handle, Status: info.Status}
		}
	}
	return &JobTimeoutError{Handle: handle, Tries: maxTries, LastStatus: lastStatus}
}
