package gigasheet

// filters.go covers saved filter templates, which are reusable filters
// created in the web application and resolved against a sheet's columns
// at query time.

import (
	"context"
	"fmt"
)

// SavedFilter is a filter template visible to the authenticated user.
type SavedFilter struct {
	Handle string `json:"Handle"`
	Name   string `json:"Name"`
}

// SavedFilters lists the saved filter templates for the current user.
func (c *Client) SavedFilters(ctx context.Context) ([]SavedFilter, error) {
	var filters []SavedFilter
	if err := c.get(ctx, "/filter-templates", nil, &filters); err != nil {
		return nil, err
	}
	return filters, nil
}

type savedFilterModelResponse struct {
	FilterModel FilterModel `json:"filterModel"`
}

// FilterModelForSavedFilter resolves a saved filter template against a
// sheet, returning a filter model usable with GetRows.
func (c *Client) FilterModelForSavedFilter(ctx context.Context, sheetHandle, savedFilterHandle string) (FilterModel, error) {
	if sheetHandle == "" {
		return nil, fmt.Errorf("gigasheet: empty value for sheet handle")
	}
	if savedFilterHandle == "" {
		return nil, fmt.Errorf("gigasheet: empty value for saved filter handle")
	}
	var resp savedFilterModelResponse
	if err := c.get(ctx, "/filter-templates/"+savedFilterHandle+"/on-sheet/"+sheetHandle, nil, &resp); err != nil {
		return nil, err
	}
	return resp.FilterModel, nil
}

// GetRowsWithSavedFilter queries a window of rows after applying a saved
// filter template to the sheet.
func (c *Client) GetRowsWithSavedFilter(ctx context.Context, sheetHandle, savedFilterHandle string, startRow, endRow int64) (*RowPage, error) {
	filter, err := c.FilterModelForSavedFilter(ctx, sheetHandle, savedFilterHandle)
	if err != nil {
		return nil, err
	}
	return c.GetRows(ctx, sheetHandle, startRow, endRow, filter)
}
