package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVFormatter outputs columns as CSV format
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes a header row followed by one record per row
func (c *CSVFormatter) Format(cs ColumnSet) error {
	csvWriter := csv.NewWriter(c.writer)

	names := cs.ColumnNames()
	if len(names) == 0 {
		csvWriter.Flush()
		if err := csvWriter.Error(); err != nil {
			return fmt.Errorf("failed to flush CSV writer: %w", err)
		}
		return nil
	}

	header := make([]string, len(names))
	for i, name := range names {
		header[i] = sanitizeCell(name)
	}
	if err := csvWriter.Write(header); err != nil {
		return err
	}

	for i := 0; i < cs.NumRows(); i++ {
		record := row(cs, names, i)
		for j := range record {
			record[j] = sanitizeCell(record[j])
		}
		if err := csvWriter.Write(record); err != nil {
			return err
		}
	}

	// Flush and check for errors
	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}

// sanitizeCell guards against CSV injection by prefixing characters that
// could trigger formula execution in spreadsheet applications
func sanitizeCell(val string) string {
	if len(val) == 0 {
		return val
	}
	switch val[0] {
	case '=', '+', '-', '@', '\t', '\r', '\n', '|':
		return "'" + strings.ReplaceAll(val, "'", "''")
	}
	return val
}
