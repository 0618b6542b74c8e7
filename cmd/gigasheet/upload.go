package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gigasheet/gigasheet-go"
)

func uploadCmd() *cobra.Command {
	var (
		fromURL      string
		fromFile     string
		fromStdin    bool
		name         string
		appendTo     string
		noWait       bool
		shareTo      []string
		shareWrite   bool
		shareMessage string
	)

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload a file, URL, or stdin pipe into a sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := 0
			for _, set := range []bool{fromURL != "", fromFile != "", fromStdin} {
				if set {
					inputs++
				}
			}
			if inputs != 1 {
				return fmt.Errorf("provide exactly one of --url, --file, --stdin")
			}

			client, err := newClient()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			options := &gigasheet.UploadOptions{AppendTo: appendTo}

			var handle string
			switch {
			case fromURL != "":
				if name == "" {
					name = "Upload from gigasheet CLI"
				}
				handle, err = client.UploadURL(ctx, fromURL, name, options)
			case fromFile != "":
				if name == "" {
					name = filepath.Base(fromFile)
				}
				handle, err = client.UploadFile(ctx, fromFile, name, options)
			case fromStdin:
				if name == "" {
					name = "Upload from gigasheet CLI"
				}
				handle, err = client.UploadReader(ctx, os.Stdin, name, options)
			}
			if err != nil {
				return err
			}
			fmt.Printf("upload job: %s\n", handle)

			if !noWait {
				// Appends run on a transient sheet that is deleted once
				// the rows land on the target.
				err = client.WaitForFile(ctx, handle, &gigasheet.WaitOptions{
					DeletionIsSuccess: appendTo != "",
				})
				if err != nil {
					return err
				}
				fmt.Println("sheet loaded")
			}

			sheet := handle
			if appendTo != "" {
				sheet = appendTo
			}
			if len(shareTo) > 0 {
				err := client.Share(ctx, sheet, shareTo, &gigasheet.ShareOptions{
					WithWrite: shareWrite,
					Message:   shareMessage,
				})
				if err != nil {
					return err
				}
				fmt.Printf("shared to %d recipients\n", len(shareTo))
			}
			fmt.Println(client.SheetURL(sheet))
			return nil
		},
	}

	cmd.Flags().StringVar(&fromURL, "url", "", "world-readable URL to upload from")
	cmd.Flags().StringVar(&fromFile, "file", "", "local file to upload")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read upload contents from stdin")
	cmd.Flags().StringVar(&name, "name", "", "name of the sheet after upload")
	cmd.Flags().StringVar(&appendTo, "append-to", "", "append onto an existing sheet handle instead of creating a new sheet")
	cmd.Flags().BoolVar(&noWait, "no-wait", false, "return after submitting instead of polling the job")
	cmd.Flags().StringSliceVar(&shareTo, "share-to", nil, "email addresses to share with")
	cmd.Flags().BoolVar(&shareWrite, "share-write", false, "share with write permission")
	cmd.Flags().StringVar(&shareMessage, "share-message", "", "message to send with the share")
	return cmd
}
