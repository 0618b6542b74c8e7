package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gigasheet/gigasheet-go"
)

func appendCmd() *cobra.Command {
	var (
		file        string
		dedupeBy    []string
		upsert      bool
		description string
	)

	cmd := &cobra.Command{
		Use:   "append <handle>",
		Short: "Append a local file onto a sheet, optionally deduplicating",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return fmt.Errorf("--file is required")
			}
			if upsert && len(dedupeBy) == 0 {
				return fmt.Errorf("must specify --dedupe-by to upsert")
			}
			handle := args[0]

			client, err := newClient()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			var dedupeColIDs []string
			var sortColID string
			if len(dedupeBy) > 0 {
				dedupeColIDs, err = client.ColumnIDsForNames(ctx, handle, dedupeBy)
				if err != nil {
					return err
				}
				ids, err := client.ColumnIDsForNames(ctx, handle, []string{"#"})
				if err != nil {
					return err
				}
				sortColID = ids[0]
			}

			nameIfFailed := fmt.Sprintf("failed append to %s", handle)
			jobHandle, err := client.UploadFile(ctx, file, nameIfFailed, &gigasheet.UploadOptions{AppendTo: handle})
			if err != nil {
				return err
			}
			fmt.Printf("append job: %s\n", jobHandle)
			err = client.WaitForFile(ctx, jobHandle, &gigasheet.WaitOptions{DeletionIsSuccess: true})
			if err != nil {
				return err
			}

			if len(dedupeColIDs) > 0 {
				sort := gigasheet.SortAsc
				if upsert {
					sort = gigasheet.SortDesc
				}
				sortModel := []gigasheet.SortEntry{{ColID: sortColID, Sort: sort}}
				if err := client.DeduplicateRows(ctx, handle, dedupeColIDs, sortModel); err != nil {
					return err
				}
			}
			if description != "" {
				if err := client.SetDescription(ctx, handle, description); err != nil {
					return err
				}
			}

			count, err := client.CountRows(ctx, handle, nil)
			if err != nil {
				return err
			}
			fmt.Printf("row count after append: %d\n", count)
			fmt.Println(client.SheetURL(handle))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "local file to append onto the sheet")
	cmd.Flags().StringSliceVar(&dedupeBy, "dedupe-by", nil, "column names that together uniquely identify a row")
	cmd.Flags().BoolVar(&upsert, "upsert", false, "keep the newly appended rows instead of the old ones when deduplicating")
	cmd.Flags().StringVar(&description, "description", "", "set this description on the updated sheet")
	return cmd
}
