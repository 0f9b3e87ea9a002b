package query

import "github.com/vegasq/dqs/table"

// Result is the outcome of a projection.
//
// Columns maps each selected name to a view of the table's values; the
// slices are borrowed from the table and must not be modified. Names lists
// the selected columns in a deterministic order: header order for a
// wildcard, first-request order otherwise. Missing lists requested names the
// table does not have, once each, in request order.
type Result struct {
	Names   []string
	Columns map[string][]string
	Missing []string
}

// ColumnNames returns the selected column names in result order.
func (r *Result) ColumnNames() []string {
	return r.Names
}

// Column returns the values of a selected column, or nil.
func (r *Result) Column(name string) []string {
	return r.Columns[name]
}

// Len returns the number of selected columns.
func (r *Result) Len() int {
	return len(r.Names)
}

// NumRows returns the number of values held by every selected column.
func (r *Result) NumRows() int {
	if len(r.Names) == 0 {
		return 0
	}
	return len(r.Columns[r.Names[0]])
}

// Project resolves req against t.
//
// A requested column that t does not have is skipped and reported in
// Result.Missing; it is never an error. Asking for a column twice yields one
// entry.
func Project(t *table.Table, req *ProjectionRequest) *Result {
	result := &Result{Columns: make(map[string][]string)}

	if req.All {
		for name, values := range t.Columns() {
			result.add(name, values)
		}
	} else {
		missing := make(map[string]bool)
		for _, name := range req.Columns {
			if _, seen := result.Columns[name]; seen {
				continue
			}
			values, ok := t.Lookup(name)
			if !ok {
				if !missing[name] {
					missing[name] = true
					result.Missing = append(result.Missing, name)
				}
				continue
			}
			result.add(name, values)
		}
	}

	if req.Limit != nil || req.Offset != nil {
		for name, values := range result.Columns {
			result.Columns[name] = window(values, req.Limit, req.Offset)
		}
	}

	return result
}

func (r *Result) add(name string, values []string) {
	r.Names = append(r.Names, name)
	r.Columns[name] = values
}

// window applies offset then limit to a column view without copying it.
func window(values []string, limit, offset *int64) []string {
	start := int64(0)
	if offset != nil && *offset > 0 {
		start = *offset
	}

	// If offset is beyond the end, return empty
	n := int64(len(values))
	if start >= n {
		return values[n:n:n]
	}

	end := n
	if limit != nil && *limit < end-start {
		end = start + *limit
	}

	// Cap the view so appending to it can never write into the table
	return values[start:end:end]
}
