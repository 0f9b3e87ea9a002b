package query

import (
	"errors"
	"fmt"
)

// ErrSyntax is matched by every error Parse returns for a malformed load or
// select query.
var ErrSyntax = errors.New("syntax error")

var (
	// ErrUnbalancedParens is returned when opening and closing parentheses do not pair up
	ErrUnbalancedParens = fmt.Errorf("%w: unbalanced parentheses", ErrSyntax)

	// ErrMalformedLoad is returned when a load query does not read load(<file.ext>).separator(<char>)
	ErrMalformedLoad = fmt.Errorf("%w: invalid load query, expected load(<file.ext>).separator(<char>)", ErrSyntax)

	// ErrMissingSelect is returned when a select query lacks the select() marker
	ErrMissingSelect = fmt.Errorf("%w: invalid select query, missing select()", ErrSyntax)

	// ErrMissingCols is returned when a select query lacks a .cols(...) clause
	ErrMissingCols = fmt.Errorf("%w: invalid select query, cols not found or invalid", ErrSyntax)

	// ErrInvalidLimit is returned when .limit() or .offset() is not a non-negative integer
	ErrInvalidLimit = fmt.Errorf("%w: limit and offset take a non-negative integer", ErrSyntax)
)

var (
	// ErrAmbiguousCommand is returned when a line holds both a load and a select query
	ErrAmbiguousCommand = errors.New("more than one query found, load and select cannot be mixed")

	// ErrUnknownCommand is returned when a line holds neither a load nor a select query
	ErrUnknownCommand = errors.New("unknown query")
)
