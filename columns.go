package gigasheet

import (
	"context"
	"fmt"
	"net/url"
)

// Column describes one column of a sheet. The ID is the stable identifier
// used by filter, sort, and deduplicate requests; the Name is what the
// web application displays and need not be unique.
type Column struct {
	ID        string `json:"Id"`
	Name      string `json:"Name"`
	FieldType string `json:"FieldType"`
	AtIndex   int    `json:"AtIndex"`
	Hidden    bool   `json:"Hidden"`
}

// Columns lists the columns of a sheet, hidden ones included.
func (c *Client) Columns(ctx context.Context, handle string) ([]Column, error) {
	if handle == "" {
		return nil, fmt.Errorf("gigasheet: empty value for handle")
	}
	query := url.Values{"showHidden": {"true"}}
	var cols []Column
	if err := c.get(ctx, "/dataset/"+handle+"/columns", query, &cols); err != nil {
		return nil, err
	}
	return cols, nil
}

// ColumnIDsForNames maps column names to column IDs, preserving order.
// Each input name must exist and be unique on the sheet or this returns
// an error.
func (c *Client) ColumnIDsForNames(ctx context.Context, handle string, names []string) ([]string, error) {
	cols, err := c.Columns(ctx, handle)
	if err != nil {
		return nil, err
	}
	byName := make(map[string][]string)
	for _, col := range cols {
		byName[col.Name] = append(byName[col.Name], col.ID)
	}
	out := make([]string, 0, len(names))
	for _, n := range names {
		ids := byName[n]
		if len(ids) == 0 {
			return nil, fmt.Errorf("gigasheet: no column found with name: %s", n)
		}
		if len(ids) > 1 {
			return nil, fmt.Errorf("gigasheet: multiple matches for column name: %s", n)
		}
		out = append(out, ids[0])
	}
	return out, nil
}
