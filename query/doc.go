// Package query parses and executes the DQS query language.
//
// DQS lines are free-form text holding one of two queries, or a control
// word such as h (help), q (quit) or schema.
//
// # Load
//
//	load(people.csv).separator(;)
//
// The path must contain a '.' and the separator must be exactly one
// character. Parse returns a Command of kind CommandLoad whose LoadSpec is
// handed to the reader package.
//
// # Select
//
//	select().cols(*)
//	select().cols(name,age)
//	select().cols(name).limit(10).offset(20)
//
// The select() marker is required. Column names are split on commas and used
// verbatim; surrounding whitespace is part of the name. A .cols() argument
// made only of '*' selects every column.
//
// # Execution
//
//	cmd, err := query.Parse("select().cols(name,missing)")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result := query.Project(t, cmd.Projection)
//	// result.Names == []string{"name"}, result.Missing == []string{"missing"}
//
// Unknown columns never fail a projection; they are reported in
// Result.Missing instead.
//
// # Errors
//
// Every malformed query matches ErrSyntax through errors.Is, and the
// specific kind (ErrUnbalancedParens, ErrMalformedLoad, ErrMissingSelect,
// ErrMissingCols, ErrInvalidLimit) matches as well. A line holding both a
// load and a select fails with ErrAmbiguousCommand; a line holding neither
// fails with ErrUnknownCommand.
package query
