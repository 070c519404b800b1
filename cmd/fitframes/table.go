package main

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	frames "fitframes/internal/table"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

const nullCell = "-"

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// extraColumn is a computed column rendered after the table's own columns.
type extraColumn struct {
	name   string
	values []float64
}

// frameGrid flattens the first limit rows of t (all rows when limit <= 0)
// into display cells.
func frameGrid(t *frames.Table, limit int, extra ...extraColumn) ([]string, [][]string, []columnAlignment) {
	cols := t.Columns()
	headers := make([]string, 0, len(cols)+len(extra))
	aligns := make([]columnAlignment, 0, len(cols)+len(extra))
	for _, c := range t.Schema().Columns {
		headers = append(headers, columnTitle(c.Name))
		if c.Type == frames.Timestamp || c.Type == frames.String {
			aligns = append(aligns, alignLeft)
		} else {
			aligns = append(aligns, alignRight)
		}
	}
	for _, e := range extra {
		headers = append(headers, columnTitle(e.name))
		aligns = append(aligns, alignRight)
	}

	n := t.NumRows()
	if limit > 0 && limit < n {
		n = limit
	}
	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		row := make([]string, 0, len(headers))
		for _, c := range cols {
			row = append(row, formatCell(t.Value(i, c)))
		}
		for _, e := range extra {
			if i < len(e.values) {
				row = append(row, formatCell(e.values[i]))
			} else {
				row = append(row, nullCell)
			}
		}
		rows = append(rows, row)
	}
	return headers, rows, aligns
}

func columnTitle(name string) string {
	return cases.Title(language.Und).String(strings.ReplaceAll(name, "_", " "))
}

func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return nullCell
	case float64:
		if math.IsNaN(val) {
			return nullCell
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(val, 10)
	case time.Time:
		return val.UTC().Format(time.RFC3339)
	case string:
		return val
	default:
		return nullCell
	}
}
