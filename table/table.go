// Package table holds the in-memory, column-oriented representation of a
// loaded delimited file.
//
// A Table is populated once through a Builder and is read-only afterwards.
// Column values are exposed as slices that borrow from the Table; callers
// must not modify them.
//
// Example usage:
//
//	b := table.NewBuilder()
//	_ = b.AddColumn("name")
//	_ = b.AppendRow([]string{"Ada"})
//	t := b.Build()
//	names, ok := t.Lookup("name")
package table

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrRowWidth is returned by Builder.AppendRow when a row does not have one
	// value per column.
	ErrRowWidth = errors.New("row width does not match column count")

	// ErrDuplicateColumn is matched by every *DuplicateColumnError.
	ErrDuplicateColumn = errors.New("duplicated column")
)

// DuplicateColumnError reports a column name that appears more than once in
// a header.
type DuplicateColumnError struct {
	Name string
}

func (e *DuplicateColumnError) Error() string {
	return fmt.Sprintf("duplicated column found in the dataset: %q", e.Name)
}

// Is lets errors.Is(err, ErrDuplicateColumn) match.
func (e *DuplicateColumnError) Is(target error) bool {
	return target == ErrDuplicateColumn
}

// Table is a set of equally long string columns with a fixed header order.
type Table struct {
	names   []string
	columns map[string][]string
	rows    int
}

// New returns a table with zero columns and zero rows.
func New() *Table {
	return &Table{columns: make(map[string][]string)}
}

// Lookup returns the values of the named column. The second result is false
// when the table has no such column.
func (t *Table) Lookup(name string) ([]string, bool) {
	values, ok := t.columns[name]
	return values, ok
}

// Column returns the values of the named column, or nil if it is absent.
func (t *Table) Column(name string) []string {
	return t.columns[name]
}

// Columns yields every (name, values) pair in header order.
func (t *Table) Columns() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for _, name := range t.names {
			if !yield(name, t.columns[name]) {
				return
			}
		}
	}
}

// Names returns a copy of the column names in header order.
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}

// ColumnNames is Names under the name the output package expects.
func (t *Table) ColumnNames() []string {
	return t.Names()
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	return len(t.names)
}

// NumRows returns the number of values held by every column.
func (t *Table) NumRows() int {
	return t.rows
}

// Builder accumulates a header and rows into a Table.
type Builder struct {
	t *Table
}

// NewBuilder returns a builder for an empty table.
func NewBuilder() *Builder {
	return &Builder{t: New()}
}

// AddColumn appends a column to the header. Columns can only be added while
// no row has been appended.
func (b *Builder) AddColumn(name string) error {
	if _, exists := b.t.columns[name]; exists {
		return &DuplicateColumnError{Name: name}
	}
	if b.t.rows > 0 {
		return fmt.Errorf("cannot add column %q after %d rows were appended", name, b.t.rows)
	}
	b.t.names = append(b.t.names, name)
	b.t.columns[name] = make([]string, 0)
	return nil
}

// AppendRow appends one value to every column, in header order.
func (b *Builder) AppendRow(values []string) error {
	if len(values) != len(b.t.names) {
		return fmt.Errorf("%w: got %d values, want %d", ErrRowWidth, len(values), len(b.t.names))
	}
	for i, name := range b.t.names {
		b.t.columns[name] = append(b.t.columns[name], values[i])
	}
	b.t.rows++
	return nil
}

// Build returns the populated table. The builder must not be used afterwards.
func (b *Builder) Build() *Table {
	t := b.t
	b.t = nil
	return t
}
