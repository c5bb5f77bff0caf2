// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jsonc

import (
	"errors"
	"fmt"

	"go4.org/mem"
)

// Sentinel errors reported by the parser. Every error returned by Parse and
// its variants is a [*SyntaxError] wrapping exactly one of these, so callers
// can use errors.Is to classify a failure.
var (
	// ErrScan means the span scanner was started on a byte that does not
	// begin a string, object, or array. It does not occur via Parse.
	ErrScan = errors.New("scan: not a string or container")

	// ErrMismatchedBracket means a closing bracket did not match the
	// innermost open bracket.
	ErrMismatchedBracket = errors.New("mismatched bracket")

	// ErrUnterminatedComment means a block comment "/*" was not closed by
	// "*/" before the end of input.
	ErrUnterminatedComment = errors.New("unterminated block comment")

	// ErrUnexpectedEOF means the input ended where more was required.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrInvalidNumber means a number token does not match the JSON grammar.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrInvalidKeyword means a bare token is not one of true, false, null.
	ErrInvalidKeyword = errors.New("invalid keyword")

	// ErrInvalidString means a string literal has an invalid escape, an
	// unescaped control character, or invalid UTF-8.
	ErrInvalidString = errors.New("invalid string")

	// ErrExpectedKey means an object member did not begin with a string key.
	ErrExpectedKey = errors.New("expected object key")

	// ErrExpectedColon means an object key was not followed by ":".
	ErrExpectedColon = errors.New(`expected ":"`)

	// ErrExpectedCommaOrClose means an element or member was not followed by
	// a comma or the closing bracket of its container.
	ErrExpectedCommaOrClose = errors.New("expected comma or closing bracket")

	// ErrTrailingContent means non-comment content follows the top-level
	// value.
	ErrTrailingContent = errors.New("unexpected trailing content")

	// ErrTooDeep means containers are nested more deeply than the parser
	// permits.
	ErrTooDeep = errors.New("nesting too deep")
)

// SyntaxError is the concrete type of errors reported by the parser.
type SyntaxError struct {
	Offset   int     // byte offset of the error in the input
	Location LineCol // line and column of Offset
	Text     string  // the offending token text, if any
	Message  string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Unwrap supports error wrapping. It reports the sentinel classifying s.
func (s *SyntaxError) Unwrap() error { return s.err }

// syntaxError constructs a *SyntaxError for the kind of error given by
// sentinel at offset pos of input. If msg is non-empty it is appended to the
// sentinel's text to form the message.
func syntaxError(input mem.RO, pos int, sentinel error, text, msg string, args ...any) *SyntaxError {
	m := sentinel.Error()
	if msg != "" {
		m += ": " + fmt.Sprintf(msg, args...)
	}
	return &SyntaxError{
		Offset:   pos,
		Location: lineColAt(input, pos),
		Text:     text,
		Message:  m,
		err:      sentinel,
	}
}
