package typejson

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors for the decode side. Callers match them with
// errors.Is; wrapped variants carry the offending text.
var (
	// ErrMalformedInput signals a delimiter mismatch: object text not
	// brace-delimited, array text not bracket-delimited, or a string
	// or UUID missing its quotes.
	ErrMalformedInput = errors.New("malformed input")

	// ErrNotSupported signals a decode target the codec cannot fill,
	// such as a fixed-size array or an unrecognized scalar kind.
	ErrNotSupported = errors.New("not supported")

	// ErrConstruction signals a decode target that cannot be
	// instantiated: a nil or non-pointer destination.
	ErrConstruction = errors.New("target is not constructible")
)

// FormatError reports scalar text that does not parse as its kind.
type FormatError struct {
	kind scalarKind
	text string
	err  error
}

func (e *FormatError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("cannot decode %q as %s: %v", e.text, e.kind, e.err)
	}
	return fmt.Sprintf("cannot decode %q as %s", e.text, e.kind)
}

func (e *FormatError) Unwrap() error { return e.err }

// UnsupportedTypeError reports an attempt to encode or decode a type
// outside the scalar/sequence/record model (maps, channels, funcs,
// interfaces, complex and unsigned numerics).
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return "unsupported type " + e.Type.String()
}

// clip shortens text quoted into error messages.
func clip(s string) string {
	if len(s) > 32 {
		return s[:32] + "..."
	}
	return s
}
