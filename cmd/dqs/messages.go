package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/vegasq/dqs/query"
)

var (
	successColor = color.New(color.FgGreen)
	infoColor    = color.New(color.FgBlue)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

// colorEnabled reports whether messages written to f should be colored
func colorEnabled(f *os.File) bool {
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func showWelcome(w io.Writer) {
	successColor.Fprintln(w, "Welcome to DQS (Data Query Syntax).")
	infoColor.Fprintln(w, ">Load your data file and enter queries to request it.")
	infoColor.Fprintln(w, ">Enter h for help or q to quit.")
}

func showHelp(w io.Writer) {
	fmt.Fprintln(w, "1-To load a file, enter: load(your_file.ext).separator(;)")
	fmt.Fprintln(w, "  Files ending in .parquet are read as parquet; the separator is then ignored.")
	fmt.Fprintln(w, "2-To request your data, enter: select().cols(name,age) or select().cols(*)")
	fmt.Fprintln(w, "  Column names are matched exactly, spaces included.")
	fmt.Fprintln(w, "  Add .limit(n) and .offset(n) to page through rows.")
	fmt.Fprintln(w, "3-To list the loaded columns, enter: schema")
	fmt.Fprintln(w, "4-To exit the program, enter: q")
}

func showLoaded(w io.Writer, path string, columns, rows int) {
	successColor.Fprintf(w, "Data loaded successfully from %s (%d columns, %d rows).\n", path, columns, rows)
}

func showMissingColumns(w io.Writer, names []string) {
	for _, name := range names {
		warningColor.Fprintf(w, "Column %q not found in the dataset.\n", name)
	}
}

func showEnd(w io.Writer) {
	successColor.Fprintln(w, "Program ended.")
}

// showError prints err with a hint for the kinds a user can act on
func showError(w io.Writer, err error) {
	switch {
	case errors.Is(err, query.ErrAmbiguousCommand):
		errorColor.Fprintln(w, "More than one query found. You cannot mix queries.")
	case errors.Is(err, query.ErrUnknownCommand):
		errorColor.Fprintln(w, "Unknown query. Enter h for help.")
	case errors.Is(err, fs.ErrNotExist):
		errorColor.Fprintf(w, "Error: %v\n", err)
		fmt.Fprintln(w, "Please check the file path and try again.")
	case errors.Is(err, query.ErrSyntax):
		errorColor.Fprintf(w, "Error parsing query: %v\n", err)
		fmt.Fprintln(w, "Enter h to see the query format.")
	default:
		errorColor.Fprintf(w, "Error: %v\n", err)
	}
}
