// Package itanium encodes symbol names following the Itanium C++ ABI
// mangling scheme, extended with address-space qualifiers and ABI tags.
package itanium

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrInvalidInput indicates a string that is not a mangled name.
	ErrInvalidInput = errors.New("itanium: invalid input")

	// ErrUnsupportedType indicates a descriptor the encoder cannot mangle.
	ErrUnsupportedType = errors.New("itanium: unsupported type")

	// ErrSyntax indicates malformed descriptor text.
	ErrSyntax = errors.New("itanium: syntax error")
)

// SyntaxError provides detailed information about descriptor text that
// failed to parse.
type SyntaxError struct {
	Input   string // Text being parsed
	Offset  int    // Byte offset of the failure
	Message string // Description of the error
	Err     error  // Underlying error, if any
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("itanium: syntax error in %q at offset %d: %s: %v",
			e.Input, e.Offset, e.Message, e.Err)
	}
	return fmt.Sprintf("itanium: syntax error in %q at offset %d: %s",
		e.Input, e.Offset, e.Message)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Is reports every SyntaxError as ErrSyntax.
func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

func unsupported(d any, reason string) error {
	return fmt.Errorf("%w: %T: %s", ErrUnsupportedType, d, reason)
}
