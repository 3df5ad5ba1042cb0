// Package optparse parses command-line options into caller-supplied
// destinations. Options are registered with Add, matched against argv by
// name prefix in registration order, and coerced with a strict one-token
// scan; tokens that name no option accumulate as positional arguments.
// All diagnostics come back as wrapped sentinel errors, never printed.
package optparse

import (
	"fmt"
	"strings"
)

// Parser is one parse session: the registered options, in registration
// order, plus the positional arguments collected by the latest Parse.
// It is not safe for concurrent use.
type Parser struct {
	description string
	options     []option
	args        []string
	exactMatch  bool
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithExactMatch makes a candidate that equals a registered name bind to
// that option even when an earlier-registered name shares the prefix.
// Without it, resolution is strictly registration-order prefix matching,
// where the earlier, longer name intercepts the candidate.
func WithExactMatch() ParserOption {
	return func(p *Parser) {
		p.exactMatch = true
	}
}

// NewParser creates a parser session whose usage text leads with description.
func NewParser(description string, opts ...ParserOption) *Parser {
	p := Parser{description: description}

	for _, opt := range opts {
		opt(&p)
	}

	return &p
}

// Add registers one option. The destination's type selects the behavior:
// *bool registers a switch that takes no value; *int, *int64, *uint,
// *uint64, *float64, *string, and *time.Duration each consume one value
// token; a Value or encoding.TextUnmarshaler destination consumes one
// token and parses it itself. A typed nil pointer, such as (*int)(nil),
// still consumes and validates input but discards the result. Names need
// not be unique: the earlier registration wins.
func (p *Parser) Add(name, description string, dst any) error {
	o, err := newOption(name, description, dst)
	if err != nil {
		return fmt.Errorf("add option %q: %w", name, err)
	}

	p.options = append(p.options, o)

	return nil
}

// Parse walks argv, which is os.Args-shaped: element 0 names the program
// and is never inspected. A token with one or two leading dashes is an
// option reference and resolves against the registered names; any other
// non-empty token is a positional argument, retrievable with Args. The
// first failure aborts the walk, leaving destinations written by earlier
// tokens as they are.
func (p *Parser) Parse(argv []string) error {
	p.args = p.args[:0]

	for i := 1; i < len(argv); i++ {
		arg := argv[i]
		if arg == "" {
			continue
		}
		if arg[0] != '-' {
			p.args = append(p.args, arg)
			continue
		}

		candidate := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")

		var next string
		hasNext := i+1 < len(argv)
		if hasNext {
			next = argv[i+1]
		}

		consumed, err := p.bind(arg, candidate, next, hasNext)
		if err != nil {
			return err
		}
		if consumed {
			i++
		}
	}

	return nil
}

// bind routes one option reference to the registry. It reports whether the
// option consumed the next argv slot as its value.
//
// The scan visits options in registration order. The first match that
// takes a value binds it and ends the scan. A matching switch fires and
// the scan keeps going, so every later switch sharing the prefix fires on
// the same token too; WithExactMatch is the stricter alternative.
func (p *Parser) bind(arg, candidate, next string, hasNext bool) (bool, error) {
	if p.exactMatch {
		for i := range p.options {
			o := &p.options[i]
			if o.name != candidate {
				continue
			}
			if o.takesValue() && hasNext {
				return true, o.set(next, true)
			}
			return false, o.set("", false)
		}
	}

	matched := false

	for i := range p.options {
		o := &p.options[i]
		if !o.matches(candidate) {
			continue
		}
		matched = true

		if o.takesValue() && hasNext {
			return true, o.set(next, true)
		}
		if err := o.set("", false); err != nil {
			return false, err
		}
	}

	if !matched {
		return false, fmt.Errorf("%w: %s", ErrUnrecognizedOption, arg)
	}

	return false, nil
}

// Args returns the positional arguments collected by the most recent
// Parse, in command-line order.
func (p *Parser) Args() []string {
	return p.args
}
