package table

import (
	"errors"
	"reflect"
	"testing"
)

func buildTable(t *testing.T, header []string, rows ...[]string) *Table {
	t.Helper()
	b := NewBuilder()
	for _, name := range header {
		if err := b.AddColumn(name); err != nil {
			t.Fatalf("AddColumn(%q) error = %v", name, err)
		}
	}
	for _, row := range rows {
		if err := b.AppendRow(row); err != nil {
			t.Fatalf("AppendRow(%v) error = %v", row, err)
		}
	}
	return b.Build()
}

func TestNew_Empty(t *testing.T) {
	tbl := New()
	if tbl.NumColumns() != 0 {
		t.Errorf("NumColumns() = %d, want 0", tbl.NumColumns())
	}
	if tbl.NumRows() != 0 {
		t.Errorf("NumRows() = %d, want 0", tbl.NumRows())
	}
	if _, ok := tbl.Lookup("anything"); ok {
		t.Errorf("Lookup() on empty table reported a column")
	}
	for name := range tbl.Columns() {
		t.Errorf("Columns() yielded %q on empty table", name)
	}
}

func TestTable_Lookup(t *testing.T) {
	tbl := buildTable(t, []string{"name", "age"},
		[]string{"Ada", "36"},
		[]string{"Alan", "41"},
	)

	tests := []struct {
		name   string
		column string
		want   []string
		wantOK bool
	}{
		{name: "first column", column: "name", want: []string{"Ada", "Alan"}, wantOK: true},
		{name: "second column", column: "age", want: []string{"36", "41"}, wantOK: true},
		{name: "missing column", column: "missing", want: nil, wantOK: false},
		{name: "case sensitive", column: "Name", want: nil, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tbl.Lookup(tt.column)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.column, ok, tt.wantOK)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lookup(%q) = %v, want %v", tt.column, got, tt.want)
			}
		})
	}
}

func TestTable_ColumnsHeaderOrder(t *testing.T) {
	header := []string{"z", "a", "m", "b"}
	tbl := buildTable(t, header, []string{"1", "2", "3", "4"})

	var got []string
	for name, values := range tbl.Columns() {
		got = append(got, name)
		if len(values) != 1 {
			t.Errorf("column %q has %d values, want 1", name, len(values))
		}
	}
	if !reflect.DeepEqual(got, header) {
		t.Errorf("Columns() order = %v, want %v", got, header)
	}
	if !reflect.DeepEqual(tbl.Names(), header) {
		t.Errorf("Names() = %v, want %v", tbl.Names(), header)
	}
}

func TestTable_ColumnsStopsEarly(t *testing.T) {
	tbl := buildTable(t, []string{"a", "b", "c"})

	count := 0
	for range tbl.Columns() {
		count++
		break
	}
	if count != 1 {
		t.Errorf("iteration ran %d times after break, want 1", count)
	}
}

func TestTable_NamesIsCopy(t *testing.T) {
	tbl := buildTable(t, []string{"a", "b"})
	names := tbl.Names()
	names[0] = "changed"
	if tbl.Names()[0] != "a" {
		t.Errorf("mutating Names() result changed the table header")
	}
}

func TestBuilder_DuplicateColumn(t *testing.T) {
	b := NewBuilder()
	if err := b.AddColumn("id"); err != nil {
		t.Fatalf("AddColumn() error = %v", err)
	}
	err := b.AddColumn("id")

	var dup *DuplicateColumnError
	if !errors.As(err, &dup) {
		t.Fatalf("AddColumn() error = %v, want *DuplicateColumnError", err)
	}
	if dup.Name != "id" {
		t.Errorf("DuplicateColumnError.Name = %q, want %q", dup.Name, "id")
	}
}

func TestBuilder_RowWidth(t *testing.T) {
	tests := []struct {
		name string
		row  []string
	}{
		{name: "too few", row: []string{"1"}},
		{name: "too many", row: []string{"1", "2", "3"}},
		{name: "empty", row: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			_ = b.AddColumn("a")
			_ = b.AddColumn("b")
			err := b.AppendRow(tt.row)
			if !errors.Is(err, ErrRowWidth) {
				t.Errorf("AppendRow(%v) error = %v, want ErrRowWidth", tt.row, err)
			}
		})
	}
}

func TestBuilder_AddColumnAfterRows(t *testing.T) {
	b := NewBuilder()
	_ = b.AddColumn("a")
	if err := b.AppendRow([]string{"1"}); err != nil {
		t.Fatalf("AppendRow() error = %v", err)
	}
	if err := b.AddColumn("b"); err == nil {
		t.Errorf("AddColumn() after rows expected error")
	}
}

func TestBuilder_HeaderOnly(t *testing.T) {
	tbl := buildTable(t, []string{"a", "b"})
	if tbl.NumRows() != 0 {
		t.Errorf("NumRows() = %d, want 0", tbl.NumRows())
	}
	values, ok := tbl.Lookup("a")
	if !ok {
		t.Fatalf("Lookup(a) missing on header-only table")
	}
	if values == nil || len(values) != 0 {
		t.Errorf("Lookup(a) = %#v, want empty non-nil slice", values)
	}
}
