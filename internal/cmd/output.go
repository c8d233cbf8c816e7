package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
)

// writeJSON prints v to stdout as indented JSON
func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return nil
}

// newTable returns a tab-aligned writer on stdout; callers Flush it
func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
}
