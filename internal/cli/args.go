package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireCSVPath validates that exactly one csv_path argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireCSVPath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <csv_path>

Usage: %s <csv_path>

Example:
  %s ./exports/assignments.csv -d mydb`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}
