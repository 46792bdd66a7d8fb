package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const readingsCSV = `Time,Glucose Value
"Jan 5 2024, 8:00 AM",65
"Jan 5 2024, 8:05 AM",75
"Jan 6 2024, 8:00 AM",190
"Jan 7 2024, 8:00 AM",120
`

// resetFlags restores every flag of cmd and its subcommands to its default,
// rootCmd is package state shared by all tests.
func resetFlags(t *testing.T, cmd *cobra.Command) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(t, sub)
	}
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	resetFlags(t, rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestSummaryCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "readings.csv")
	require.NoError(t, os.WriteFile(path, []byte(readingsCSV), 0o644))

	out := execute(t, "summary", "--file", path)
	assert.Contains(t, out, "Minimum Glucose Level: 65 mg/dL")
	assert.Contains(t, out, "Maximum Glucose Level: 190 mg/dL")
	assert.Contains(t, out, "Average Glucose Level: 112.50 mg/dL")
	assert.Contains(t, out, "Hypoglycemia Count: 1")
	assert.Contains(t, out, "Hyperglycemia Count: 1")
	assert.NotContains(t, out, "Time in Range")

	out = execute(t, "summary", "--file", path, "--min", "70", "--end", "2024-01-06", "--distribution")
	assert.Contains(t, out, "Minimum Glucose Level: 75 mg/dL")
	assert.Contains(t, out, "Average Glucose Level: 132.50 mg/dL")
	assert.Contains(t, out, "Hypoglycemia Count: 0")
	assert.Contains(t, out, "Above 180 mg/dL: 50.0%")
	assert.Contains(t, out, "not enough readings")
}

func TestSummaryCommandMissingFile(t *testing.T) {
	out := execute(t, "summary", "--file", filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Contains(t, out, "Error loading data")
	assert.Contains(t, out, "Minimum Glucose Level: no data")
	assert.Contains(t, out, "Hyperglycemia Count: 0")
}

func TestSummaryCommandFlagsDoNotLeak(t *testing.T) {
	path := filepath.Join(t.TempDir(), "readings.csv")
	require.NoError(t, os.WriteFile(path, []byte(readingsCSV), 0o644))

	out := execute(t, "summary", "--file", path, "--min", "100", "--distribution")
	assert.Contains(t, out, "Minimum Glucose Level: 120 mg/dL")
	assert.Contains(t, out, "Time in Range")

	out = execute(t, "summary", "--file", path)
	assert.Contains(t, out, "Minimum Glucose Level: 65 mg/dL")
	assert.NotContains(t, out, "Time in Range")
	assert.Zero(t, valueMin)
	assert.False(t, distribution)
}
