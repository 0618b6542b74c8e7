package gigasheet

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"os"
)

// UploadOptions are options for uploads into Gigasheet.
type UploadOptions struct {
	// AppendTo names an existing sheet handle to append records onto
	// instead of creating a new sheet. Append jobs run on a transient
	// sheet that the backend deletes on completion, so wait on them with
	// WaitOptions.DeletionIsSuccess set.
	AppendTo string

	// ParentDirectory is the handle of the Gigasheet folder to upload
	// into. Empty means the library root.
	ParentDirectory string
}

type uploadURLRequest struct {
	URL          string `json:"url"`
	Name         string `json:"name"`
	TargetHandle string `json:"targetHandle,omitempty"`
}

type uploadDirectRequest struct {
	Name            string `json:"name"`
	Contents        string `json:"contents"`
	ParentDirectory string `json:"parentDirectory"`
	TargetHandle    string `json:"targetHandle,omitempty"`
}

type uploadResponse struct {
	Handle string `json:"Handle"`
}

// UploadURL uploads into Gigasheet from a world-readable URL. The name is
// applied after the upload finishes; it must be non-empty but is ignored
// when the upload is an append. The returned handle identifies the upload
// job, poll it with WaitForFile.
func (c *Client) UploadURL(ctx context.Context, url, name string, options *UploadOptions) (string, error) {
	if options == nil {
		options = &UploadOptions{}
	}
	body := uploadURLRequest{
		URL:          url,
		Name:         name,
		TargetHandle: options.AppendTo,
	}
	var resp uploadResponse
	if err := c.post(ctx, "/upload/url", body, &resp); err != nil {
		return "", err
	}
	return resp.Handle, nil
}

// UploadFile uploads a local file into Gigasheet.
//
// The file contents ride base64-encoded inside a single request, so
// depending on your connection this tops out around tens of megabytes.
// For large files, put the data on cloud storage and pass a presigned
// link to UploadURL instead.
func (c *Client) UploadFile(ctx context.Context, path, name string, options *UploadOptions) (string, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("gigasheet: reading upload %s: %w", path, err)
	}
	return c.uploadDirect(ctx, contents, name, options)
}

// UploadReader uploads the contents of r into Gigasheet. Useful for stdin
// pipes. The same size caveat as UploadFile applies.
func (c *Client) UploadReader(ctx context.Context, r io.Reader, name string, options *UploadOptions) (string, error) {
	contents, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("gigasheet: reading upload stream: %w", err)
	}
	return c.uploadDirect(ctx, contents, name, options)
}

func (c *Client) uploadDirect(ctx context.Context, contents []byte, name string, options *UploadOptions) (string, error) {
	if options == nil {
		options = &UploadOptions{}
	}
	body := uploadDirectRequest{
		Name:            name,
		Contents:        base64.StdEncoding.EncodeToString(contents),
		ParentDirectory: options.ParentDirectory,
		TargetHandle:    options.AppendTo,
	}
	var resp uploadResponse
	if err := c.post(ctx, "/upload/direct", body, &resp); err != nil {
		return "", err
	}
	return resp.Handle, nil
}
