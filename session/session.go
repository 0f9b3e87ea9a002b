// Package session owns the table a DQS read-loop works against.
//
// A Session starts with an empty table. A successful load replaces the
// table wholesale; a failed load leaves the previous one untouched. Select
// queries are resolved against the current table. A Session is not safe for
// concurrent use.
package session

import (
	"fmt"

	"github.com/vegasq/dqs/query"
	"github.com/vegasq/dqs/reader"
	"github.com/vegasq/dqs/table"
)

// Opener loads the file at path into a table.
type Opener func(path, separator string) (*table.Table, error)

// Outcome describes what a line did.
//
// Result is set for select commands. Loaded is set after a successful load.
type Outcome struct {
	Command *query.Command
	Result  *query.Result
	Loaded  *table.Table
}

// Session holds the current table.
type Session struct {
	table  *table.Table
	source string
	open   Opener
}

// Option configures a Session.
type Option func(*Session)

// WithOpener replaces reader.ReadFile as the way load commands read files.
func WithOpener(open Opener) Option {
	return func(s *Session) {
		s.open = open
	}
}

// New returns a session with an empty table.
func New(opts ...Option) *Session {
	s := &Session{
		table: table.New(),
		open:  reader.ReadFile,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Table returns the current table.
func (s *Session) Table() *table.Table {
	return s.table
}

// Source returns the path of the last successful load, or "" if nothing was
// loaded yet.
func (s *Session) Source() string {
	return s.source
}

// Exec parses and runs one input line.
//
// Help, quit, schema and blank lines are only parsed; the caller decides
// what to do with them from Outcome.Command.
func (s *Session) Exec(line string) (*Outcome, error) {
	cmd, err := query.Parse(line)
	if err != nil {
		return nil, err
	}

	out := &Outcome{Command: cmd}
	switch cmd.Kind {
	case query.CommandLoad:
		t, err := s.Load(cmd.Load)
		if err != nil {
			return nil, err
		}
		out.Loaded = t
	case query.CommandSelect:
		out.Result = query.Project(s.table, cmd.Projection)
	}
	return out, nil
}

// Load reads the file named by a load command and makes it the current table.
func (s *Session) Load(spec *query.LoadSpec) (*table.Table, error) {
	t, err := s.open(spec.Path, spec.Separator)
	if err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}
	s.table = t
	s.source = spec.Path
	return t, nil
}
