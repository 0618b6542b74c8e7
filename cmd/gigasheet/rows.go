package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gigasheet/gigasheet-go"
)

func rowsCmd() *cobra.Command {
	var (
		start       int64
		end         int64
		countOnly   bool
		savedFilter string
	)

	cmd := &cobra.Command{
		Use:   "rows <handle>",
		Short: "Query a window of rows, or count them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			handle := args[0]

			var filter gigasheet.FilterModel
			if savedFilter != "" {
				filter, err = client.FilterModelForSavedFilter(ctx, handle, savedFilter)
				if err != nil {
					return err
				}
			}

			if countOnly {
				n, err := client.CountRows(ctx, handle, filter)
				if err != nil {
					return err
				}
				fmt.Println(n)
				return nil
			}

			page, err := client.GetRows(ctx, handle, start, end, filter)
			if err != nil {
				return err
			}
			for _, row := range page.Rows {
				line, err := json.Marshal(row)
				if err != nil {
					return err
				}
				fmt.Println(string(line))
			}
			fmt.Printf("total rows: %d\n", page.LastRow)
			return nil
		},
	}

	cmd.Flags().Int64Var(&start, "start", 0, "first row of the window")
	cmd.Flags().Int64Var(&end, "end", 100, "row after the last row of the window")
	cmd.Flags().BoolVar(&countOnly, "count", false, "print only the row count")
	cmd.Flags().StringVar(&savedFilter, "saved-filter", "", "apply a saved filter template by handle")
	return cmd
}
