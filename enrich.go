package gigasheet

// enrich.go covers server-side enrichments, which derive new columns from
// an existing one (e.g. validating email address formats).

import (
	"context"
	"fmt"
)

// EnrichmentEmailFormat checks that values in a column look like email
// addresses.
const EnrichmentEmailFormat = "email-format-check"

// enrichmentDataTypes maps the built-in enrichment providers to the data
// type they operate on.
var enrichmentDataTypes = map[string]string{
	EnrichmentEmailFormat: "EMAIL",
}

type enrichmentSpec struct {
	Provider string  `json:"provider"`
	Type     string  `json:"type"`
	Key      *string `json:"key"`
}

type enrichRequest struct {
	FilterModel FilterModel      `json:"filterModel"`
	Enrichments []enrichmentSpec `json:"enrichments"`
}

// EnrichBuiltin runs one of the built-in enrichment providers against a
// column, optionally restricted to rows matching a filter.
func (c *Client) EnrichBuiltin(ctx context.Context, handle, columnID, provider string, filter FilterModel) error {
	if handle == "" {
		return fmt.Errorf("gigasheet: empty value for sheet handle")
	}
	dataType, ok := enrichmentDataTypes[provider]
	if !ok {
		return fmt.Errorf("gigasheet: unknown enrichment service provider: %s", provider)
	}
	body := enrichRequest{
		FilterModel: filter,
		Enrichments: []enrichmentSpec{{Provider: provider, Type: dataType, Key: nil}},
	}
	return c.post(ctx, "/enrichments/"+handle+"/"+columnID, body, nil)
}

// EnrichEmailFormat flags malformed email addresses in a column.
func (c *Client) EnrichEmailFormat(ctx context.Context, handle, columnID string, filter FilterModel) error {
	return c.EnrichBuiltin(ctx, handle, columnID, EnrichmentEmailFormat, filter)
}
