package main

import (
	"encoding/json"
	"math"

	"github.com/spf13/cobra"

	frames "fitframes/internal/table"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// frameRecords converts table rows to JSON objects. Null cells become JSON
// null, never zero.
func frameRecords(t *frames.Table, limit int, extra ...extraColumn) []map[string]any {
	n := t.NumRows()
	if limit > 0 && limit < n {
		n = limit
	}
	cols := t.Columns()
	records := make([]map[string]any, 0, n)
	for i := 0; i < n; i++ {
		rec := make(map[string]any, len(cols)+len(extra))
		for _, c := range cols {
			rec[c] = t.Value(i, c)
		}
		for _, e := range extra {
			if i < len(e.values) && !math.IsNaN(e.values[i]) {
				rec[e.name] = e.values[i]
			} else {
				rec[e.name] = nil
			}
		}
		records = append(records, rec)
	}
	return records
}
