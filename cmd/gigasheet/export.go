package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gigasheet/gigasheet-go"
)

func exportCmd() *cobra.Command {
	var (
		name   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export <handle>",
		Short: "Export a sheet in its current state and fetch the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			exportHandle, err := client.CreateExportCurrentState(ctx, args[0], &gigasheet.ExportOptions{Name: name})
			if err != nil {
				return err
			}
			fmt.Printf("export job: %s\n", exportHandle)
			if err := client.WaitForFile(ctx, exportHandle, nil); err != nil {
				return err
			}

			if output != "" {
				if err := client.DownloadExportToFile(ctx, exportHandle, output); err != nil {
					return err
				}
				fmt.Printf("saved to: %s\n", output)
				return nil
			}
			url, err := client.DownloadExport(ctx, exportHandle)
			if err != nil {
				return err
			}
			fmt.Println(url)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "filename of the export inside Gigasheet, default export.csv")
	cmd.Flags().StringVarP(&output, "output", "o", "", "save the export to this local path instead of printing the presigned URL")
	return cmd
}
