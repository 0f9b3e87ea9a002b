package reader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vegasq/dqs/table"
)

// MaxFileSize is the largest file ReadFile will load into memory (256MB).
const MaxFileSize = 256 << 20

// ErrFileTooLarge is returned when a file exceeds MaxFileSize
var ErrFileTooLarge = errors.New("file too large")

// ReadFile loads the file at path into a table.
//
// Files with a .parquet extension are read through ParquetReader and the
// separator is ignored. Any other file is read as delimited text and parsed
// with Load.
//
// Every error names path exactly once.
func ReadFile(path, separator string) (*table.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return readParquet(path)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("failed to open file %s: is a directory", path)
	}
	if stat.Size() > MaxFileSize {
		return nil, fmt.Errorf("%w: %s is %d bytes (max %d)", ErrFileTooLarge, path, stat.Size(), MaxFileSize)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read content of file: %w", err)
	}

	t, err := Load(string(content), separator)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func readParquet(path string) (*table.Table, error) {
	r, err := NewParquetReader(path)
	if err != nil {
		return nil, err
	}

	t, readErr := r.ReadTable()
	closeErr := r.Close()

	// Preserve the first error encountered
	if readErr != nil {
		return nil, fmt.Errorf("failed to read rows from %s: %w", path, readErr)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("failed to close file: %w", closeErr)
	}
	return t, nil
}
