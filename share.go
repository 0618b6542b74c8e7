package gigasheet

import (
	"context"
	"fmt"
)

// SharePermission is an access level granted when sharing a sheet.
type SharePermission int

const (
	PermissionRead  SharePermission = 0
	PermissionWrite SharePermission = 1
)

// ShareOptions are options for sharing a sheet.
type ShareOptions struct {
	// WithWrite grants write access in addition to read access.
	WithWrite bool

	// Message is an optional note sent with the share notification.
	Message string
}

type shareRequest struct {
	Emails      []string          `json:"emails"`
	Permissions []SharePermission `json:"permissions"`
	Message     string            `json:"message"`
}

// Share grants the recipients access to a sheet by email address. Sharing
// to no recipients is a no-op.
func (c *Client) Share(ctx context.Context, handle string, recipients []string, options *ShareOptions) error {
	if handle == "" {
		return fmt.Errorf("gigasheet: empty value for handle")
	}
	if len(recipients) == 0 {
		return nil
	}
	if options == nil {
		options = &ShareOptions{}
	}
	permissions := []SharePermission{PermissionRead}
	if options.WithWrite {
		permissions = append(permissions, PermissionWrite)
	}
	body := shareRequest{
		Emails:      recipients,
		Permissions: permissions,
		Message:     options.Message,
	}
	return c.put(ctx, "/file/"+handle+"/share/file", body, nil)
}

type sharePublicRequest struct {
	Public bool `json:"public"`
}

// Unshare disables the public link on a sheet.
func (c *Client) Unshare(ctx context.Context, handle string) error {
	return c.setPublic(ctx, handle, false)
}

func (c *Client) setPublic(ctx context.Context, handle string, public bool) error {
	if handle == "" {
		return fmt.Errorf("gigasheet: empty value for handle")
	}
	return c.put(ctx, "/file/"+handle+"/share/public", sharePublicRequest{Public: public}, nil)
}
