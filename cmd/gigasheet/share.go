package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gigasheet/gigasheet-go"
)

func shareCmd() *cobra.Command {
	var (
		to        []string
		withWrite bool
		message   string
	)

	cmd := &cobra.Command{
		Use:   "share <handle>",
		Short: "Share a sheet with collaborators by email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(to) == 0 {
				return fmt.Errorf("--to is required")
			}
			client, err := newClient()
			if err != nil {
				return err
			}
			err = client.Share(cmd.Context(), args[0], to, &gigasheet.ShareOptions{
				WithWrite: withWrite,
				Message:   message,
			})
			if err != nil {
				return err
			}
			fmt.Printf("shared to %d recipients\n", len(to))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&to, "to", nil, "email addresses to share with")
	cmd.Flags().BoolVar(&withWrite, "write", false, "grant write access in addition to read")
	cmd.Flags().StringVar(&message, "message", "", "message to send with the share")
	return cmd
}

func unshareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unshare <handle>",
		Short: "Disable the public link on a sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			return client.Unshare(cmd.Context(), args[0])
		},
	}
}
