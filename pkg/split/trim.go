// Package split provides edge trimming for scanned fields.
package split

import "fmt"

// TrimMode specifies which edges of a field are trimmed.
type TrimMode int

const (
	// TrimBoth trims leading and trailing trim-set elements (default).
	TrimBoth TrimMode = iota
	// TrimLeft trims leading trim-set elements only.
	TrimLeft
	// TrimRight trims trailing trim-set elements only.
	TrimRight
)

// String returns the string representation of TrimMode.
func (m TrimMode) String() string {
	switch m {
	case TrimBoth:
		return "both"
	case TrimLeft:
		return "left"
	case TrimRight:
		return "right"
	default:
		return fmt.Sprintf("TrimMode(%d)", m)
	}
}

// TrimOptions configures TrimScanner behavior.
type TrimOptions[T comparable] struct {
	// TrimSet is the set of elements stripped from field edges.
	TrimSet []T

	// Mode selects which edges are trimmed.
	// Default: TrimBoth
	Mode TrimMode
}

// Validate checks if the trim options are valid.
func (o TrimOptions[T]) Validate() error {
	if len(o.TrimSet) == 0 {
		return &OptionsError{Field: "TrimSet", Message: "at least one trim element required"}
	}
	switch o.Mode {
	case TrimBoth, TrimLeft, TrimRight:
		return nil
	default:
		return &OptionsError{Field: "Mode", Message: "unknown trim mode"}
	}
}

// TrimScanner wraps a FieldScanner and strips trim-set elements from
// the edges of each field it forwards. Trimming is a pure per-field
// transform: it may shrink a field to empty, but it never suppresses
// one, and it forwards the inner scanner's end and error signals
// unchanged.
//
// TrimScanner itself implements FieldScanner, so trimming layers can be
// stacked:
//
//	inner := NewScanner(data, Options[byte]{Delims: []byte{','}})
//	sc := NewTrimScanner(inner, TrimOptions[byte]{TrimSet: []byte{' ', '\t'}})
//	for sc.Scan() {
//	    // sc.Field() has surrounding blanks removed
//	}
type TrimScanner[T comparable] struct {
	inner FieldScanner[T]
	opts  TrimOptions[T]
	field []T
}

// NewTrimScanner creates a TrimScanner around inner.
func NewTrimScanner[T comparable](inner FieldScanner[T], opts TrimOptions[T]) *TrimScanner[T] {
	return &TrimScanner[T]{
		inner: inner,
		opts:  opts,
	}
}

// Scan advances the inner scanner and trims the field it produced.
// Returns false exactly when the inner scanner does.
func (s *TrimScanner[T]) Scan() bool {
	if !s.inner.Scan() {
		return false
	}

	f := s.inner.Field()

	if s.opts.Mode == TrimBoth || s.opts.Mode == TrimLeft {
		for len(f) > 0 && s.inTrimSet(f[0]) {
			f = f[1:]
		}
	}
	if s.opts.Mode == TrimBoth || s.opts.Mode == TrimRight {
		for len(f) > 0 && s.inTrimSet(f[len(f)-1]) {
			f = f[:len(f)-1]
		}
	}

	s.field = f
	return true
}

// Field returns the trimmed field from the most recent successful Scan.
// Like the inner scanner's fields, it is a view into the original
// buffer.
func (s *TrimScanner[T]) Field() []T {
	return s.field
}

// Err returns the inner scanner's error, if any.
func (s *TrimScanner[T]) Err() error {
	return s.inner.Err()
}

// inTrimSet reports whether v is a member of the trim set.
func (s *TrimScanner[T]) inTrimSet(v T) bool {
	for _, e := range s.opts.TrimSet {
		if v == e {
			return true
		}
	}
	return false
}
