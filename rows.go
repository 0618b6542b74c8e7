package gigasheet

import (
	"context"
	"fmt"
)

// FilterModelKey is the only key the API accepts at the top level of a
// filter model: a conjunctive normal form expression over column
// predicates. Build filter models in the web application and copy them
// from ClientState, or from a saved filter template.
const FilterModelKey = "_cnf_"

// FilterModel is a row filter in the grid's wire format. A nil or empty
// model matches every row.
type FilterModel map[string]any

func (m FilterModel) validate() error {
	if len(m) == 0 {
		return nil
	}
	if len(m) == 1 {
		if _, ok := m[FilterModelKey]; ok {
			return nil
		}
	}
	return fmt.Errorf("gigasheet: invalid filter model, should be empty or have the single key %s", FilterModelKey)
}

type getRowsRequest struct {
	StartRow    int64       `json:"startRow"`
	EndRow      int64       `json:"endRow"`
	FilterModel FilterModel `json:"filterModel"`
}

// RowPage is one window of filtered rows. LastRow is the total number of
// rows matching the filter, not the index of the last row in this page.
type RowPage struct {
	Rows    []map[string]any `json:"rows"`
	LastRow int64            `json:"lastRow"`
}

// GetRows queries a window of rows from a sheet, optionally filtered.
func (c *Client) GetRows(ctx context.Context, handle string, startRow, endRow int64, filter FilterModel) (*RowPage, error) {
	if handle == "" {
		return nil, fmt.Errorf("gigasheet: empty value for handle")
	}
	if err := filter.validate(); err != nil {
		return nil, err
	}
	body := getRowsRequest{StartRow: startRow, EndRow: endRow, FilterModel: filter}
	var page RowPage
	if err := c.post(ctx, "/file/"+handle+"/filter", body, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CountRows returns the number of rows in a sheet, optionally after
// applying a filter. It queries a single row and reads the total.
func (c *Client) CountRows(ctx context.Context, handle string, filter FilterModel) (int64, error) {
	page, err := c.GetRows(ctx, handle, 0, 1, filter)
	if err != nil {
		return 0, err
	}
	return page.LastRow, nil
}

// Sort directions for SortEntry.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// SortEntry is one column of a sort model, in the grid's wire format.
type SortEntry struct {
	ColID string `json:"colId"`
	Sort  string `json:"sort"`
}

type deduplicateRequest struct {
	Columns   []string    `json:"columns"`
	SortModel []SortEntry `json:"sortModel"`
}

// DeduplicateRows removes duplicate rows from a sheet. Multiple column
// IDs are treated as a compound key. The sort model decides which of the
// duplicates survives: rows are sorted and the first one is kept, so
// sorting the builtin "#" column descending keeps the newest row.
func (c *Client) DeduplicateRows(ctx context.Context, handle string, columnIDs []string, sortModel []SortEntry) error {
	if handle == "" {
		return fmt.Errorf("gigasheet: empty value for handle")
	}
	body := deduplicateRequest{Columns: columnIDs, SortModel: sortModel}
	return c.del(ctx, "/dataset/"+handle+"/deduplicate-rows", body, nil)
}
