// Package split provides error types for field splitting.
package split

import "errors"

// ErrUnexpectedExtraField is returned (through Scanner.Err) when a
// Terminator-mode scan with UnterminatedError configured reaches the
// end of the buffer with residual data not followed by a delimiter.
//
// It is a data-driven condition, reported exactly once and never
// retried: after it fires, Scan keeps returning false and Err keeps
// returning this error.
var ErrUnexpectedExtraField = errors.New("split: unexpected extra field after final delimiter")

// OptionsError represents an invalid option configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "split: invalid " + e.Field + ": " + e.Message
}
