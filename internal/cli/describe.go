package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/jeffamaxey/framecheck/pkg/adapters/csv"
)

// Describe prints the schema of a CSV file as a terminal table.
func Describe(out io.Writer, path string) error {
	frame, err := csv.Open(path)
	if err != nil {
		return err
	}

	cols := frame.ColumnNames()
	if len(cols) == 0 {
		fmt.Fprintln(out, "(no columns)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Column", "Dtype"})
	for i, name := range cols {
		t.AppendRow(table.Row{i, name, frame.ColumnType(name)})
	}
	t.AppendFooter(table.Row{"", "rows", frame.Rows()})
	t.Render()
	return nil
}
