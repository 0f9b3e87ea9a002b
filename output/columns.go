package output

import (
	"bufio"
	"fmt"
	"io"
)

// ColumnsFormatter prints each column as a titled, numbered list:
//
//	-- name --
//	1-Ada
//	2-Alan
type ColumnsFormatter struct {
	writer io.Writer
}

// NewColumnsFormatter creates a new columns formatter
func NewColumnsFormatter(w io.Writer) *ColumnsFormatter {
	return &ColumnsFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *ColumnsFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes every column followed by a blank line
func (c *ColumnsFormatter) Format(cs ColumnSet) error {
	bw := bufio.NewWriter(c.writer)
	for _, name := range cs.ColumnNames() {
		if _, err := fmt.Fprintf(bw, "-- %s --\n", name); err != nil {
			return err
		}
		for i, value := range cs.Column(name) {
			if _, err := fmt.Fprintf(bw, "%d-%s\n", i+1, value); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return err
		}
	}
	return bw.Flush()
}
