package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/dqs/table"
)

// ParquetReader reads a parquet file into a string table.
//
// It maintains both an OS file handle and a parquet file handle to enable
// proper resource cleanup.
type ParquetReader struct {
	file   *os.File
	pqFile *parquet.File
}

// NewParquetReader opens and validates the parquet file at path.
//
// Example:
//
//	r, err := reader.NewParquetReader("data.parquet")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//	t, err := r.ReadTable()
func NewParquetReader(path string) (*ParquetReader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file %s: %w", path, err)
	}

	return &ParquetReader{
		file:   file,
		pqFile: pqFile,
	}, nil
}

// ColumnNames returns the top-level field names in schema order.
func (r *ParquetReader) ColumnNames() []string {
	fields := r.pqFile.Schema().Fields()
	names := make([]string, len(fields))
	for i, field := range fields {
		names[i] = field.Name()
	}
	return names
}

// ReadTable reads every row into a table whose columns follow the schema
// order. Cells are rendered as text; null cells become empty strings.
//
// The entire file is loaded into memory.
func (r *ParquetReader) ReadTable() (*table.Table, error) {
	names := r.ColumnNames()
	if len(names) > MaxColumns {
		return nil, fmt.Errorf("%w: %d (max %d)", ErrTooManyColumns, len(names), MaxColumns)
	}

	b := table.NewBuilder()
	for _, name := range names {
		if err := b.AddColumn(name); err != nil {
			return nil, err
		}
	}

	pr := parquet.NewReader(r.pqFile)
	defer func() { _ = pr.Close() }()

	values := make([]string, len(names))
	for {
		row := make(map[string]interface{})
		err := pr.Read(&row)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		for i, name := range names {
			values[i] = formatCell(row[name])
		}
		if err := b.AppendRow(values); err != nil {
			return nil, err
		}
	}

	return b.Build(), nil
}

// Close closes the underlying file. It is safe to call Close multiple times.
func (r *ParquetReader) Close() error {
	if r.file != nil {
		err := r.file.Close()
		r.file = nil
		return err
	}
	return nil
}

func formatCell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	default:
		return fmt.Sprint(val)
	}
}
