// Package reader turns files into tables.
//
// Delimited text is parsed by Load: the first line is the header, every
// following line is a row, and fields are split literally on a
// single-character separator. Quoting and escaping are not interpreted.
//
// # Basic Usage
//
// Parsing text that is already in memory:
//
//	t, err := reader.Load("name;age\nAda;36\n", ";")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Reading a file from disk:
//
//	t, err := reader.ReadFile("people.csv", ";")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Errors
//
// A repeated header name fails with *table.DuplicateColumnError, and a row
// whose field count differs from the header fails with *RowShapeError:
//
//	var shape *reader.RowShapeError
//	if errors.As(err, &shape) {
//	    fmt.Printf("bad row at line %d\n", shape.Line)
//	}
//
// Both also match the ErrDuplicateColumn and ErrRowShape sentinels through
// errors.Is.
//
// # Parquet
//
// Files ending in .parquet are read with github.com/parquet-go/parquet-go.
// Every cell is rendered as text so the result is the same kind of table a
// delimited file produces.
package reader
