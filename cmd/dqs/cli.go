package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/dqs/output"
	"github.com/vegasq/dqs/query"
	"github.com/vegasq/dqs/session"
	"github.com/vegasq/dqs/table"
)

// cli routes input lines to a session and prints what comes back.
// Data goes to out, messages and prompts to errOut.
type cli struct {
	out       io.Writer
	errOut    io.Writer
	session   *session.Session
	formatter output.Formatter
	prompt    string
}

func newCLI(out, errOut io.Writer, formatter output.Formatter, opts ...session.Option) *cli {
	return &cli{
		out:       out,
		errOut:    errOut,
		session:   session.New(opts...),
		formatter: formatter,
	}
}

// repl reads lines from r until EOF or a quit command. Errors from a
// line are reported and the loop keeps going.
func (c *cli) repl(r io.Reader) error {
	br := bufio.NewReader(r)

	showWelcome(c.errOut)
	for {
		fmt.Fprint(c.errOut, c.prompt)
		line, err := br.ReadString('\n')
		if line != "" {
			if quit, _ := c.handle(strings.TrimRight(line, "\r\n")); quit {
				return nil
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
	}
	showEnd(c.errOut)
	return nil
}

// runCommands executes lines in order and stops at the first error or quit
func (c *cli) runCommands(lines []string) error {
	for _, line := range lines {
		quit, err := c.handle(line)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	return nil
}

// handle executes one line. It reports whether the loop should stop.
func (c *cli) handle(line string) (bool, error) {
	out, err := c.session.Exec(line)
	if err != nil {
		showError(c.errOut, err)
		return false, err
	}

	switch out.Command.Kind {
	case query.CommandQuit:
		showEnd(c.errOut)
		return true, nil
	case query.CommandHelp:
		showHelp(c.out)
	case query.CommandSchema:
		if err := c.printSchema(); err != nil {
			showError(c.errOut, err)
			return false, err
		}
	case query.CommandLoad:
		showLoaded(c.errOut, c.session.Source(), out.Loaded.NumColumns(), out.Loaded.NumRows())
	case query.CommandSelect:
		showMissingColumns(c.errOut, out.Result.Missing)
		if err := c.formatter.Format(out.Result); err != nil {
			err = fmt.Errorf("failed to format output: %w", err)
			showError(c.errOut, err)
			return false, err
		}
	}
	return false, nil
}

// printSchema writes the loaded column names as a one-column set
func (c *cli) printSchema() error {
	t := c.session.Table()
	b := table.NewBuilder()
	if err := b.AddColumn("column"); err != nil {
		return err
	}
	for name := range t.Columns() {
		if err := b.AppendRow([]string{name}); err != nil {
			return err
		}
	}

	source := c.session.Source()
	if source == "" {
		source = "nothing loaded"
	}
	infoColor.Fprintf(c.errOut, "%s: %d columns, %d rows\n", source, t.NumColumns(), t.NumRows())
	return c.formatter.Format(b.Build())
}
