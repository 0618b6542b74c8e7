// Command gigasheet is a small CLI over the Gigasheet API: upload files
// or URLs into sheets, append and deduplicate, export, query rows, and
// share with collaborators.
package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gigasheet/gigasheet-go"
)

var (
	flagAPIKey  string
	flagProfile string
)

var rootCmd = &cobra.Command{
	Use:           "gigasheet",
	Short:         "Work with Gigasheet sheets from the command line",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A .env next to the working directory is a convenient place for
		// GIGASHEET_API_KEY; absence is fine.
		_ = godotenv.Load()
	},
}

func newClient() (*gigasheet.Client, error) {
	return gigasheet.NewClientWithOptions(gigasheet.ClientOptions{
		APIKey:  flagAPIKey,
		Profile: flagProfile,
	})
}

func main() {
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "API key to use, will use $GIGASHEET_API_KEY otherwise")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "named profile in ~/.gigasheet.toml")

	rootCmd.AddCommand(uploadCmd())
	rootCmd.AddCommand(infoCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(appendCmd())
	rootCmd.AddCommand(rowsCmd())
	rootCmd.AddCommand(shareCmd())
	rootCmd.AddCommand(unshareCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
