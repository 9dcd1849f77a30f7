package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Table holds tabular data for plain-text rendering.
type Table struct {
	Headers []string
	Rows    [][]string
}

// SetHeaders sets the table header row.
func (t *Table) SetHeaders(headers ...string) {
	t.Headers = headers
}

// AddRow appends a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render writes the table in aligned columns.
func (t *Table) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if len(t.Headers) > 0 {
		fmt.Fprintln(tw, strings.Join(t.Headers, "\t"))
	}
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// TableFormatter renders *Table values in aligned plain text. Callers
// build the table themselves; arbitrary structs are not reflected.
type TableFormatter struct{}

func (f *TableFormatter) Format(w io.Writer, data any) error {
	t, ok := data.(*Table)
	if !ok {
		return fmt.Errorf("output: table format requires *Table, got %T", data)
	}
	return t.Render(w)
}
