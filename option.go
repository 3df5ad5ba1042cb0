package optparse

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// kind tags the coercion an option performs on its value token.
type kind uint8

const (
	kindSwitch kind = iota
	kindInt
	kindInt64
	kindUint
	kindUint64
	kindFloat64
	kindString
	kindDuration
	kindValue
	kindText
)

// Value is implemented by destinations that parse their own value token.
// Implementations of the standard library's flag.Value satisfy it too.
type Value interface {
	Set(string) error
}

// option is one registry entry: a name, its help text, the coercion kind
// selected at registration time, and the destination the value lands in.
// A nil destination pointer keeps the kind's scan and validation but
// discards the result.
type option struct {
	name        string
	description string
	kind        kind
	dst         any
}

// newOption picks the coercion kind from the destination's dynamic type.
func newOption(name, description string, dst any) (option, error) {
	if name == "" {
		return option{}, ErrEmptyName
	}

	o := option{name: name, description: description, dst: dst}

	switch d := dst.(type) {
	case *bool:
		o.kind = kindSwitch
	case *int:
		o.kind = kindInt
	case *int64:
		o.kind = kindInt64
	case *uint:
		o.kind = kindUint
	case *uint64:
		o.kind = kindUint64
	case *float64:
		o.kind = kindFloat64
	case *string:
		o.kind = kindString
	case *time.Duration:
		o.kind = kindDuration
	case Value:
		// The destination's own Set is the parse, so a nil one can
		// neither store nor validate anything.
		if isNilReference(d) {
			return option{}, fmt.Errorf("%w: nil %T", ErrUnsupportedDestination, dst)
		}
		o.kind = kindValue
	case encoding.TextUnmarshaler:
		if isNilReference(d) {
			return option{}, fmt.Errorf("%w: nil %T", ErrUnsupportedDestination, dst)
		}
		o.kind = kindText
	case nil:
		return option{}, fmt.Errorf("%w: untyped nil (use a typed nil pointer to consume and discard)", ErrUnsupportedDestination)
	default:
		return option{}, fmt.Errorf("%w: %T", ErrUnsupportedDestination, dst)
	}

	return o, nil
}

// matches reports whether candidate selects this option. A candidate
// selects every option whose registered name it is a prefix of, so the
// empty candidate matches everything.
func (o *option) matches(candidate string) bool {
	return strings.HasPrefix(o.name, candidate)
}

// takesValue reports whether the option consumes the next argv slot.
func (o *option) takesValue() bool {
	return o.kind != kindSwitch
}

// set coerces raw into the destination. supplied is false when the parser
// reached the end of argv with no value left to hand over. Switches ignore
// both arguments: their presence on the command line is the value.
func (o *option) set(raw string, supplied bool) error {
	if o.kind == kindSwitch {
		if p := o.dst.(*bool); p != nil {
			*p = true
		}
		return nil
	}

	if !supplied {
		return fmt.Errorf("%w: option %q", ErrMissingArgument, o.name)
	}

	if o.kind == kindString {
		if strings.TrimSpace(raw) == "" {
			return fmt.Errorf("%w: option %q", ErrEmptyValue, o.name)
		}
		if p := o.dst.(*string); p != nil {
			*p = raw
		}
		return nil
	}

	fields := strings.Fields(raw)
	switch {
	case len(fields) == 0:
		return fmt.Errorf("%w: option %q", ErrEmptyValue, o.name)
	case len(fields) > 1:
		return fmt.Errorf("%w: option %q, value %q", ErrTooManyArguments, o.name, raw)
	}
	token := fields[0]

	switch o.kind {
	case kindInt:
		v, err := strconv.Atoi(token)
		if err != nil {
			return o.parseFailure(raw, err)
		}
		if p := o.dst.(*int); p != nil {
			*p = v
		}
	case kindInt64:
		v, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return o.parseFailure(raw, err)
		}
		if p := o.dst.(*int64); p != nil {
			*p = v
		}
	case kindUint:
		v, err := strconv.ParseUint(token, 10, strconv.IntSize)
		if err != nil {
			return o.parseFailure(raw, err)
		}
		if p := o.dst.(*uint); p != nil {
			*p = uint(v)
		}
	case kindUint64:
		v, err := strconv.ParseUint(token, 10, 64)
		if err != nil {
			return o.parseFailure(raw, err)
		}
		if p := o.dst.(*uint64); p != nil {
			*p = v
		}
	case kindFloat64:
		v, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return o.parseFailure(raw, err)
		}
		if p := o.dst.(*float64); p != nil {
			*p = v
		}
	case kindDuration:
		v, err := time.ParseDuration(token)
		if err != nil {
			return o.parseFailure(raw, err)
		}
		if p := o.dst.(*time.Duration); p != nil {
			*p = v
		}
	case kindValue:
		if err := o.dst.(Value).Set(token); err != nil {
			return o.parseFailure(raw, err)
		}
	case kindText:
		if err := o.dst.(encoding.TextUnmarshaler).UnmarshalText([]byte(token)); err != nil {
			return o.parseFailure(raw, err)
		}
	}

	return nil
}

func (o *option) parseFailure(raw string, err error) error {
	return fmt.Errorf("%w: option %q, value %q: %w", ErrParseFailure, o.name, raw, err)
}

// isNilReference reports whether v wraps a nil pointer (or other nilable
// reference), which would make a later Set or UnmarshalText call panic.
func isNilReference(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
