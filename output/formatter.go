package output

import (
	"errors"
	"fmt"
	"io"
)

// ErrUnsupportedFormat is returned by New for an unknown format name
var ErrUnsupportedFormat = errors.New("unsupported format")

// Formats lists the names accepted by New
var Formats = []string{"columns", "table", "csv", "json", "jsonl"}

// ColumnSet is a set of equally long named columns.
//
// *table.Table and *query.Result both satisfy it.
type ColumnSet interface {
	ColumnNames() []string
	Column(name string) []string
	NumRows() int
}

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to write a column set in the target
// format and SetOutput to change the output destination.
type Formatter interface {
	// Format writes the columns in the formatter's specific format
	Format(cs ColumnSet) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// New returns the formatter registered under format, writing to w
func New(format string, w io.Writer) (Formatter, error) {
	switch format {
	case "columns":
		return NewColumnsFormatter(w), nil
	case "table":
		return NewTableFormatter(w), nil
	case "csv":
		return NewCSVFormatter(w), nil
	case "json":
		return NewJSONFormatter(w), nil
	case "jsonl":
		return NewJSONLinesFormatter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// row returns the i-th value of every column, in column order
func row(cs ColumnSet, names []string, i int) []string {
	record := make([]string, len(names))
	for j, name := range names {
		values := cs.Column(name)
		if i < len(values) {
			record[j] = values[i]
		}
	}
	return record
}
