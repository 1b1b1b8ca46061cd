package svg

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Match them with errors.Is.
var (
	ErrUnsupportedElement = errors.New("unsupported element")
	ErrMalformedElement   = errors.New("malformed element")
	ErrInvalidNumber      = errors.New("invalid number")
	ErrMalformedPath      = errors.New("malformed path")

	ErrUnsupportedCommand = fmt.Errorf("%w: unsupported command", ErrMalformedPath)
	ErrTruncatedCommand   = fmt.Errorf("%w: truncated command", ErrMalformedPath)
	ErrEmptyGeometry      = fmt.Errorf("%w: empty geometry", ErrMalformedElement)
)

// Error describes a failed conversion. Input is the offending token, tag or
// attribute; Offset is a byte position in path data or -1.
type Error struct {
	Kind   error
	Input  string
	Offset int
	Err    error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("svg: ")
	b.WriteString(e.Kind.Error())
	if e.Input != "" {
		fmt.Fprintf(&b, " %q", e.Input)
	}
	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func pathError(kind error, input string, off int) *Error {
	return &Error{Kind: kind, Input: input, Offset: off}
}

func elementError(kind error, input string, err error) *Error {
	return &Error{Kind: kind, Input: input, Offset: -1, Err: err}
}
