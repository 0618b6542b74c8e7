package gigasheet

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// SheetInfo is metadata about a sheet: its name, processing status, and
// the saved grid state (filters, sorts, hidden columns) as the web
// application left it.
type SheetInfo struct {
	Handle      string         `json:"Handle"`
	FileName    string         `json:"FileName"`
	Status      Status         `json:"Status"`
	ClientState map[string]any `json:"ClientState"`
}

// Info gets metadata about a sheet, including its processing status.
func (c *Client) Info(ctx context.Context, handle string) (*SheetInfo, error) {
	if handle == "" {
		return nil, fmt.Errorf("gigasheet: empty value for handle")
	}
	var info SheetInfo
	if err := c.get(ctx, "/dataset/"+handle, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

type renameRequest struct {
	UUID     string `json:"uuid"`
	Filename string `json:"filename"`
}

// Rename changes the display name of a sheet.
func (c *Client) Rename(ctx context.Context, handle, newName string) error {
	if handle == "" {
		return fmt.Errorf("gigasheet: empty value for handle")
	}
	body := renameRequest{UUID: handle, Filename: newName}
	return c.post(ctx, "/rename/"+handle, body, nil)
}

type noteRequest struct {
	Note string `json:"note"`
}

// SetDescription updates the free-text description shown on a sheet.
func (c *Client) SetDescription(ctx context.Context, handle, description string) error {
	if handle == "" {
		return fmt.Errorf("gigasheet: empty value for handle")
	}
	return c.put(ctx, "/dataset/"+handle+"/note", noteRequest{Note: description}, nil)
}

// SheetURL returns the URL to view a sheet in the Gigasheet web
// application. See HandleFromURL for converting the opposite direction.
func (c *Client) SheetURL(handle string) string {
	return c.profile.AppURL + "/spreadsheet/id/" + handle
}

// HandleFromURL extracts the handle of a sheet from its web application
// URL. See SheetURL for converting the opposite direction.
func (c *Client) HandleFromURL(sheetURL string) (string, error) {
	if !strings.HasPrefix(sheetURL, c.profile.AppURL+"/spreadsheet") {
		return "", fmt.Errorf("gigasheet: must be a complete URL of a sheet in the Gigasheet UI")
	}
	u, err := url.Parse(sheetURL)
	if err != nil {
		return "", fmt.Errorf("gigasheet: parsing sheet URL: %w", err)
	}
	parts := strings.Split(u.Path, "/")
	if len(parts) < 4 || parts[3] == "" {
		return "", fmt.Errorf("gigasheet: no handle found in URL")
	}
	return parts[3], nil
}
