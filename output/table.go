package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// TableFormatter renders columns as a bordered text grid
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new grid formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format writes a header row of column names and one grid row per record
func (t *TableFormatter) Format(cs ColumnSet) error {
	names := cs.ColumnNames()
	if len(names) == 0 {
		return nil
	}

	tw := tablewriter.NewWriter(t.writer)
	tw.SetHeader(names)
	// Keep column names exactly as loaded
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)

	for i := 0; i < cs.NumRows(); i++ {
		tw.Append(row(cs, names, i))
	}
	tw.Render()
	return nil
}
