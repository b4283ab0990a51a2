// Package split provides generic, zero-copy delimiter-based field
// splitting over in-memory buffers.
//
// A Scanner walks a caller-owned buffer of any comparable element type
// (typically bytes) and yields successive delimited subranges ("fields")
// as views into the original buffer. Nothing is copied and the buffer is
// never modified; every field's lifetime is bounded by the buffer's.
//
// Delimiter handling is configurable: delimiters can act as separators
// (N delimiters imply up to N+1 fields) or terminators (a delimiter is
// expected after every field, including the last), adjacent delimiters
// can be collapsed into a single boundary, and trailing unterminated
// data can be kept, skipped, or reported as an error.
//
// # Scanning
//
// The iteration contract follows bufio.Scanner:
//
//	sc := split.NewScanner([]byte("name\n\napple\nbanana\n"), split.Options[byte]{
//	    Delims: []byte{'\n'},
//	    Mode:   split.Terminator,
//	})
//	for sc.Scan() {
//	    field := sc.Field() // view into the input, valid for its lifetime
//	    // process field...
//	}
//	if err := sc.Err(); err != nil {
//	    // handle error
//	}
//
// A Scanner is single-pass: once it reports end of input it stays
// terminated. Re-scanning requires a new Scanner over the same buffer.
//
// # Trimming
//
// TrimScanner wraps any FieldScanner and strips configured elements from
// the edges of each field it forwards. Trimming only ever shrinks a
// field (possibly to empty); it never suppresses one. Because
// TrimScanner itself implements FieldScanner, trimming layers stack.
//
// # Thread Safety
//
// A Scanner holds a mutable cursor and is not safe for concurrent use.
// The input buffer is never written, so any number of independent
// Scanners may read the same buffer concurrently.
package split
