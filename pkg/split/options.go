// Package split provides configurable options for field splitting.
package split

import "fmt"

// DelimitMode specifies how delimiters relate to the fields around them.
type DelimitMode int

const (
	// Separator treats each delimiter as sitting strictly between two
	// fields: N delimiters imply up to N+1 fields, and a buffer ending
	// with a delimiter yields a final empty field.
	Separator DelimitMode = iota

	// Terminator expects a delimiter after every field, including the
	// last. A buffer ending exactly on a delimiter yields no trailing
	// empty field; trailing data without a final delimiter is handled
	// according to UnterminatedMode.
	Terminator
)

// String returns the string representation of DelimitMode.
func (m DelimitMode) String() string {
	switch m {
	case Separator:
		return "separator"
	case Terminator:
		return "terminator"
	default:
		return fmt.Sprintf("DelimitMode(%d)", m)
	}
}

// UnterminatedMode specifies how Terminator-mode scanning handles
// trailing data that is not followed by a delimiter.
// It has no effect in Separator mode.
type UnterminatedMode int

const (
	// UnterminatedKeep returns the trailing fragment as a final field
	// (default).
	UnterminatedKeep UnterminatedMode = iota

	// UnterminatedSkip silently drops the trailing fragment and ends
	// the scan.
	UnterminatedSkip

	// UnterminatedError ends the scan and reports
	// ErrUnexpectedExtraField through Err.
	UnterminatedError
)

// String returns the string representation of UnterminatedMode.
func (m UnterminatedMode) String() string {
	switch m {
	case UnterminatedKeep:
		return "keep"
	case UnterminatedSkip:
		return "skip"
	case UnterminatedError:
		return "error"
	default:
		return fmt.Sprintf("UnterminatedMode(%d)", m)
	}
}

// Options configures Scanner behavior. Options are fixed for the
// lifetime of a Scanner; mutating an Options value after construction
// has no effect on scanners already built from it.
type Options[T comparable] struct {
	// Delims is the set of elements that act as field delimiters.
	// At least one delimiter is required.
	Delims []T

	// Collapse treats a run of adjacent delimiters as a single
	// boundary, so no empty fields are produced between them.
	// It does not change end-of-buffer semantics: under Separator
	// mode a trailing delimiter run still yields one final empty
	// field, and a leading delimiter still yields one leading empty
	// field.
	// Default: false
	Collapse bool

	// Mode selects Separator or Terminator delimiter semantics.
	// Default: Separator
	Mode DelimitMode

	// Unterminated governs trailing data without a final delimiter
	// when Mode is Terminator. Ignored under Separator mode.
	// Default: UnterminatedKeep
	Unterminated UnterminatedMode
}

// DefaultOptions returns Separator-mode options with the given
// delimiter set and all other fields at their defaults.
func DefaultOptions[T comparable](delims ...T) Options[T] {
	return Options[T]{
		Delims:       delims,
		Collapse:     false,
		Mode:         Separator,
		Unterminated: UnterminatedKeep,
	}
}

// Validate checks if the options are valid.
// Returns an error if the options are invalid.
func (o Options[T]) Validate() error {
	if len(o.Delims) == 0 {
		return &OptionsError{Field: "Delims", Message: "at least one delimiter required"}
	}
	for i := 0; i < len(o.Delims); i++ {
		for j := i + 1; j < len(o.Delims); j++ {
			if o.Delims[i] == o.Delims[j] {
				return &OptionsError{Field: "Delims", Message: "duplicate delimiter"}
			}
		}
	}
	if o.Mode != Separator && o.Mode != Terminator {
		return &OptionsError{Field: "Mode", Message: "unknown delimit mode"}
	}
	switch o.Unterminated {
	case UnterminatedKeep, UnterminatedSkip, UnterminatedError:
	default:
		return &OptionsError{Field: "Unterminated", Message: "unknown unterminated mode"}
	}
	return nil
}
