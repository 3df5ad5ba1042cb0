package optparse

import "errors"

// Failures reported by Add and Parse. Parse wraps the parse-time kinds
// with the option name and the offending value; match them with errors.Is.
var (
	ErrMissingArgument    = errors.New("missing argument")
	ErrEmptyValue         = errors.New("empty value string")
	ErrTooManyArguments   = errors.New("too many arguments")
	ErrParseFailure       = errors.New("parsing parameter failed")
	ErrUnrecognizedOption = errors.New("unrecognized option")

	ErrEmptyName              = errors.New("option name is empty")
	ErrUnsupportedDestination = errors.New("unsupported destination")
)
