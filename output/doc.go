// Package output provides formatters for printing tables and query results.
//
// Every formatter works on a ColumnSet, which both *table.Table and
// *query.Result satisfy.
//
// # Supported Formats
//
//   - columns: each column as a "-- name --" title followed by numbered values
//   - table: a bordered text grid (github.com/olekukonko/tablewriter)
//   - csv: comma-separated values with a header row
//   - json: one object mapping each column name to its array of values
//   - jsonl: one JSON object per row
//
// # Basic Usage
//
//	formatter, err := output.New("table", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := formatter.Format(result); err != nil {
//	    log.Fatal(err)
//	}
//
// # Writing to Different Destinations
//
//	var buf bytes.Buffer
//	formatter := output.NewCSVFormatter(os.Stdout)
//	formatter.SetOutput(&buf)
//	if err := formatter.Format(result); err != nil {
//	    log.Fatal(err)
//	}
//
// # Ordering
//
// Columns are written in ColumnSet order. The jsonl formatter encodes each
// row as a JSON object, so its keys come out sorted.
package output
