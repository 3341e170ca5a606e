package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dbpopulate",
	Short: "Load tasker assignment CSV exports into PostgreSQL",
	Long: `dbpopulate reads a CSV export of scheduled tasks and their assigned
taskers, normalizes its fields (timezone conversion, locale canonicalization,
address trimming), and bulk-loads two related tables: a tasks table and a
deduplicated tasker-profile table.

One file is processed to completion or the run fails outright. There is no
partial retry across stages.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or connection parameters
  11 - Database connection failed
  12 - CSV file missing, unparsable, or empty
  13 - Required canonical column missing
  14 - Bulk insert failed`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
