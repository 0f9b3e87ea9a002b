package reader

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vegasq/dqs/table"
)

// MaxColumns is the maximum number of header fields accepted by Load.
const MaxColumns = 4096

var (
	// ErrInvalidSeparator is returned when the separator is not exactly one character
	ErrInvalidSeparator = errors.New("separator must be exactly one character")

	// ErrDuplicateColumn is matched by every *table.DuplicateColumnError returned from Load
	ErrDuplicateColumn = table.ErrDuplicateColumn

	// ErrRowShape is matched by every *RowShapeError
	ErrRowShape = errors.New("invalid row shape")

	// ErrTooManyColumns is returned when the header exceeds MaxColumns
	ErrTooManyColumns = errors.New("too many columns")
)

// RowShapeError reports a data line whose field count differs from the header.
//
// Line counts the header as line 0, so the first data row is line 1.
type RowShapeError struct {
	Line int
	Got  int
	Want int
}

func (e *RowShapeError) Error() string {
	return fmt.Sprintf("invalid data at line %d: got %d fields, want %d", e.Line, e.Got, e.Want)
}

// Is lets errors.Is(err, ErrRowShape) match.
func (e *RowShapeError) Is(target error) bool {
	return target == ErrRowShape
}

// Load parses delimited text into a table.
//
// The first line is the header; each following line is one row. Fields are
// produced by a literal split on separator, with no quoting or escaping. An
// empty content yields an empty table.
func Load(content, separator string) (*table.Table, error) {
	if utf8.RuneCountInString(separator) != 1 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSeparator, separator)
	}

	lines := splitLines(content)
	if len(lines) == 0 {
		return table.New(), nil
	}

	b := table.NewBuilder()
	header := strings.Split(lines[0], separator)
	if len(header) > MaxColumns {
		return nil, fmt.Errorf("%w: %d (max %d)", ErrTooManyColumns, len(header), MaxColumns)
	}
	for _, name := range header {
		if err := b.AddColumn(name); err != nil {
			return nil, err
		}
	}

	for i, line := range lines[1:] {
		values := strings.Split(line, separator)
		if len(values) != len(header) {
			return nil, &RowShapeError{Line: i + 1, Got: len(values), Want: len(header)}
		}
		if err := b.AppendRow(values); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
	}

	return b.Build(), nil
}

// splitLines splits on '\n', drops one trailing '\r' per line and ignores
// the empty record after a final newline.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
