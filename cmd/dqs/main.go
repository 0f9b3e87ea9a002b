package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/vegasq/dqs/output"
)

// commandList collects repeated -e flags
type commandList []string

func (c *commandList) String() string {
	return strings.Join(*c, "\n")
}

func (c *commandList) Set(value string) error {
	*c = append(*c, value)
	return nil
}

var (
	formatFlag  = flag.String("f", "columns", "Output format: "+strings.Join(output.Formats, ", "))
	noColorFlag = flag.Bool("no-color", false, "Disable colored messages")
	promptFlag  = flag.String("prompt", "> ", "Prompt shown before each interactive query")
	execFlag    commandList
)

func init() {
	flag.Var(&execFlag, "e", "Query to run instead of reading from stdin (repeatable, runs in order)")
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "An interactive tool to load delimited files and query their columns.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -f table -e \"load(people.csv).separator(;)\" -e \"select().cols(name,age)\"\n", os.Args[0])
	}

	flag.Parse()

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected argument %q\n\n", flag.Arg(0))
		flag.Usage()
		os.Exit(1)
	}

	formatter, err := output.New(*formatFlag, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Supported formats: %s\n", strings.Join(output.Formats, ", "))
		os.Exit(1)
	}

	// Messages go to stderr, so its terminal decides coloring
	if *noColorFlag || !colorEnabled(os.Stderr) {
		color.NoColor = true
	}

	c := newCLI(os.Stdout, os.Stderr, formatter)

	if len(execFlag) > 0 {
		if err := c.runCommands(execFlag); err != nil {
			os.Exit(1)
		}
		return
	}

	c.prompt = *promptFlag
	if err := c.repl(os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}
