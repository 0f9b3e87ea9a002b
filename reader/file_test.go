package reader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/parquet-go/parquet-go"
)

type testRow struct {
	ID     int64   `parquet:"id"`
	Name   string  `parquet:"name"`
	Active bool    `parquet:"active"`
	Score  float64 `parquet:"score"`
}

// createTestParquetFile writes rows to a temporary parquet file and returns its path
func createTestParquetFile(t *testing.T, rows []testRow) string {
	t.Helper()
	testFile := filepath.Join(t.TempDir(), "test.parquet")

	f, err := os.Create(testFile)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	writer := parquet.NewGenericWriter[testRow](f)
	if _, err := writer.Write(rows); err != nil {
		t.Fatalf("failed to write test data: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close file: %v", err)
	}

	return testFile
}

func writeTextFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestReadFile_Delimited(t *testing.T) {
	path := writeTextFile(t, "people.csv", "name;age\nAda;36\nAlan;41\n")

	tbl, err := ReadFile(path, ";")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got, _ := tbl.Lookup("age"); !reflect.DeepEqual(got, []string{"36", "41"}) {
		t.Errorf("Lookup(age) = %v, want [36 41]", got)
	}
}

func TestReadFile_Testdata(t *testing.T) {
	tbl, err := ReadFile(filepath.Join("..", "testdata", "people.csv"), ";")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if tbl.NumColumns() != 3 || tbl.NumRows() != 3 {
		t.Errorf("testdata table is %dx%d, want 3x3", tbl.NumColumns(), tbl.NumRows())
	}
	if got := tbl.Names(); !reflect.DeepEqual(got, []string{"name", "age", "city"}) {
		t.Errorf("Names() = %v, want [name age city]", got)
	}
	if got, _ := tbl.Lookup("city"); !reflect.DeepEqual(got, []string{"London", "Wilmslow", "Arlington"}) {
		t.Errorf("Lookup(city) = %v", got)
	}
}

func TestReadFile_NotFound(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.csv"), ";")
	if err == nil {
		t.Fatal("ReadFile() expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadFile() error = %v, want fs.ErrNotExist", err)
	}
}

func TestReadFile_Directory(t *testing.T) {
	if _, err := ReadFile(t.TempDir(), ";"); err == nil {
		t.Error("ReadFile() expected error for a directory")
	}
}

func TestReadFile_LoadErrorKeepsKind(t *testing.T) {
	path := writeTextFile(t, "bad.csv", "a;b\n1;2\n3\n")

	_, err := ReadFile(path, ";")
	var shape *RowShapeError
	if !errors.As(err, &shape) {
		t.Fatalf("ReadFile() error = %v, want *RowShapeError", err)
	}
	if shape.Line != 2 {
		t.Errorf("RowShapeError.Line = %d, want 2", shape.Line)
	}
}

func TestReadFile_ErrorsNamePathOnce(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{name: "missing", path: func(t *testing.T) string { return filepath.Join(dir, "none.csv") }},
		{name: "directory", path: func(t *testing.T) string { return dir }},
		{name: "row shape", path: func(t *testing.T) string { return writeTextFile(t, "bad.csv", "a;b\n1\n") }},
		{name: "duplicate", path: func(t *testing.T) string { return writeTextFile(t, "dup.csv", "a;a\n") }},
		{name: "invalid parquet", path: func(t *testing.T) string { return writeTextFile(t, "fake.parquet", "not a parquet file") }},
		{name: "missing parquet", path: func(t *testing.T) string { return filepath.Join(dir, "none.parquet") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.path(t)
			_, err := ReadFile(path, ";")
			if err == nil {
				t.Fatalf("ReadFile(%s) expected error", path)
			}
			if n := strings.Count(err.Error(), path); n != 1 {
				t.Errorf("error names the path %d times: %v", n, err)
			}
		})
	}
}

func TestReadFile_Parquet(t *testing.T) {
	path := createTestParquetFile(t, []testRow{
		{ID: 1, Name: "Alice", Active: true, Score: 95.5},
		{ID: 2, Name: "Bob", Active: false, Score: 82},
	})

	tbl, err := ReadFile(path, "ignored")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	names := tbl.Names()
	sort.Strings(names)
	if !reflect.DeepEqual(names, []string{"active", "id", "name", "score"}) {
		t.Errorf("Names() = %v, want active, id, name, score", names)
	}
	if tbl.NumRows() != 2 {
		t.Fatalf("NumRows() = %d, want 2", tbl.NumRows())
	}

	checks := map[string][]string{
		"id":     {"1", "2"},
		"name":   {"Alice", "Bob"},
		"active": {"true", "false"},
		"score":  {"95.5", "82"},
	}
	for col, want := range checks {
		if got, _ := tbl.Lookup(col); !reflect.DeepEqual(got, want) {
			t.Errorf("Lookup(%s) = %v, want %v", col, got, want)
		}
	}
}

func TestParquetReader_Empty(t *testing.T) {
	path := createTestParquetFile(t, []testRow{})

	r, err := NewParquetReader(path)
	if err != nil {
		t.Fatalf("NewParquetReader() error = %v", err)
	}
	defer func() { _ = r.Close() }()

	tbl, err := r.ReadTable()
	if err != nil {
		t.Fatalf("ReadTable() error = %v", err)
	}
	if tbl.NumColumns() != 4 {
		t.Errorf("NumColumns() = %d, want 4", tbl.NumColumns())
	}
	if tbl.NumRows() != 0 {
		t.Errorf("NumRows() = %d, want 0", tbl.NumRows())
	}

	if err := r.Close(); err != nil {
		t.Errorf("first Close() error = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestParquetReader_InvalidFile(t *testing.T) {
	path := writeTextFile(t, "fake.parquet", "not a parquet file")
	if _, err := NewParquetReader(path); err == nil {
		t.Error("NewParquetReader() expected error for invalid file")
	}
}
