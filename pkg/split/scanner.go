package split

// A FieldScanner yields successive fields of a buffer, one per call to
// Scan. Both *Scanner and *TrimScanner implement it, so trimming layers
// can wrap any scanner, including another trimming layer.
//
// After Scan returns false, check Err to distinguish end of input from
// an error. Further calls to Scan must keep returning false.
type FieldScanner[T comparable] interface {
	Scan() bool
	Field() []T
	Err() error
}

// Scanner provides streaming delimiter-based field splitting over an
// in-memory buffer. It is similar to bufio.Scanner but generic over the
// element type and strictly zero-copy: every field returned by Field is
// a subslice of the input buffer.
//
// Example usage:
//
//	sc := NewScanner(data, Options[byte]{Delims: []byte{','}})
//	for sc.Scan() {
//	    field := sc.Field()
//	    // Process field...
//	}
//	if err := sc.Err(); err != nil {
//	    // Handle error
//	}
type Scanner[T comparable] struct {
	data []T
	opts Options[T]

	// Cursor state
	pos       int
	finalized bool

	// Current field
	field []T

	// Error state
	err error
}

// NewScanner creates a Scanner over data. The buffer is borrowed, never
// copied or modified; it must not be mutated while fields returned by
// the Scanner are in use.
func NewScanner[T comparable](data []T, opts Options[T]) *Scanner[T] {
	return &Scanner[T]{
		data: data,
		opts: opts,
	}
}

// Scan advances to the next field.
// Returns true if a field was produced, false on end of input or error.
// After Scan returns false, check Err to distinguish the two.
func (s *Scanner[T]) Scan() bool {
	if s.err != nil || s.finalized {
		return false
	}

	if s.pos >= len(s.data) {
		return s.scanEnd()
	}

	// Search for the nearest delimiter at or after the cursor.
	for i := s.pos; i < len(s.data); i++ {
		if !s.isDelim(s.data[i]) {
			continue
		}

		s.field = s.data[s.pos:i]
		s.pos = i + 1

		if s.opts.Collapse {
			// A run of adjacent delimiters is one boundary.
			for s.pos < len(s.data) && s.isDelim(s.data[s.pos]) {
				s.pos++
			}
		}

		return true
	}

	// No delimiter in the remainder: the cursor is exhausted either way.
	tail := s.data[s.pos:]
	s.pos = len(s.data)

	if s.opts.Mode == Terminator {
		// The tail is an unterminated trailing field.
		switch s.opts.Unterminated {
		case UnterminatedSkip:
			s.finalized = true
			return false
		case UnterminatedError:
			s.finalized = true
			s.err = ErrUnexpectedExtraField
			return false
		}
	}

	s.field = tail
	return true
}

// scanEnd handles the cursor reaching the end of the buffer. It fires
// at most once; afterwards the Scanner is finalized.
func (s *Scanner[T]) scanEnd() bool {
	s.finalized = true

	// Under Separator mode a buffer ending with a delimiter implies one
	// final empty field. The lookback inspects the literal last element,
	// so a collapsed trailing run still yields exactly one empty field.
	if s.opts.Mode == Separator && s.pos > 0 && s.isDelim(s.data[s.pos-1]) {
		s.field = s.data[s.pos:]
		return true
	}

	return false
}

// Field returns the field produced by the most recent successful Scan.
// The returned slice points into the input buffer and stays valid for
// the buffer's lifetime, independent of further Scan calls.
func (s *Scanner[T]) Field() []T {
	return s.field
}

// Err returns the first error encountered during scanning, if any.
func (s *Scanner[T]) Err() error {
	return s.err
}

// Offset returns the current cursor position: the index of the next
// unscanned element, between 0 and len(buffer) inclusive.
func (s *Scanner[T]) Offset() int {
	return s.pos
}

// isDelim reports whether v is a member of the delimiter set.
func (s *Scanner[T]) isDelim(v T) bool {
	for _, d := range s.opts.Delims {
		if v == d {
			return true
		}
	}
	return false
}
