// Package main demonstrates the optparse API with a small CLI that parses
// its command line and reports what was bound where.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gookit/color"
	"github.com/pouriyajamshidi/optparse"
	"golang.org/x/term"
)

// Color functions used when reporting outcomes
var (
	colorCyan   = color.Cyan.Printf
	colorYellow = color.Yellow.Printf
)

// errorf reports a failure on stderr, in red when color is enabled.
func errorf(format string, a ...any) {
	fmt.Fprint(os.Stderr, color.Red.Sprintf(format, a...))
}

const description = "optparse-demo parses its command line and prints the result."

type programOptions struct {
	help        bool
	verbose     bool
	input       string
	output      string
	workers     int
	timeout     time.Duration
	showElapsed bool
}

func main() {
	os.Exit(run(os.Args))
}

func run(argv []string) int {
	start := time.Now()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.Disable()
	}

	opts := programOptions{
		workers: 1,
		timeout: 30 * time.Second,
	}

	parser := optparse.NewParser(description)
	if err := registerOptions(parser, &opts); err != nil {
		errorf("optparse-demo: %v\n", err)
		return 1
	}

	if len(argv) < 2 {
		fmt.Print(parser.Usage())
		return 0
	}

	if err := parser.Parse(argv); err != nil {
		errorf("optparse-demo: %v\n", err)
		if errors.Is(err, optparse.ErrUnrecognizedOption) {
			fmt.Print(parser.Usage())
			return 2
		}
		return 1
	}

	if opts.help {
		fmt.Print(parser.Usage())
		return 0
	}

	report(parser, &opts)

	if opts.showElapsed {
		colorYellow("elapsed: %s\n", time.Since(start))
	}

	return 0
}

func registerOptions(parser *optparse.Parser, opts *programOptions) error {
	register := []struct {
		name        string
		description string
		dst         any
	}{
		{"help", "Show this text and exit", &opts.help},
		{"verbose", "Print every bound option, not just the set ones", &opts.verbose},
		{"input", "Path to read from", &opts.input},
		{"output", "Path to write to", &opts.output},
		{"workers", "Number of concurrent workers", &opts.workers},
		{"timeout", "Give up on a worker after this long", &opts.timeout},
		{"report_elapsed_time", "Print how long the run took", &opts.showElapsed},
	}

	for _, r := range register {
		if err := parser.Add(r.name, r.description, r.dst); err != nil {
			return err
		}
	}

	return nil
}

// report prints the bound configuration and the leftover positional
// arguments. Without the verbose switch, zero-valued options stay quiet.
func report(parser *optparse.Parser, opts *programOptions) {
	colorCyan("options:\n")

	printString("input", opts.input, opts.verbose)
	printString("output", opts.output, opts.verbose)
	fmt.Printf("  %-8s %d\n", "workers", opts.workers)
	fmt.Printf("  %-8s %s\n", "timeout", opts.timeout)
	if opts.verbose {
		fmt.Printf("  %-8s %t\n", "verbose", opts.verbose)
	}

	args := parser.Args()
	if len(args) == 0 {
		return
	}

	colorCyan("arguments:\n")
	for _, arg := range args {
		fmt.Printf("  %s\n", arg)
	}
}

func printString(name, value string, verbose bool) {
	if value == "" && !verbose {
		return
	}
	fmt.Printf("  %-8s %q\n", name, value)
}
