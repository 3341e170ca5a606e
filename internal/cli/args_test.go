package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestRequireCSVPath(t *testing.T) {
	cmd := &cobra.Command{Use: "populate <csv_path>"}

	assert.NoError(t, RequireCSVPath(cmd, []string{"export.csv"}))

	err := RequireCSVPath(cmd, nil)
	assert.ErrorContains(t, err, "missing required argument")

	err = RequireCSVPath(cmd, []string{"a.csv", "b.csv"})
	assert.ErrorContains(t, err, "received 2")
}
