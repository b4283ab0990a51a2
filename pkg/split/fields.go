// Package split provides one-shot helpers over the scanning API.
package split

import "unsafe"

// Collect drains sc and returns every field it produced, in order.
// On a scan error the fields collected so far are returned alongside it.
//
// The returned slices are views into the scanned buffer; see Scanner
// for the aliasing rules.
func Collect[T comparable](sc FieldScanner[T]) ([][]T, error) {
	fields := make([][]T, 0, 8)
	for sc.Scan() {
		fields = append(fields, sc.Field())
	}
	return fields, sc.Err()
}

// Split scans data with opts and returns all fields at once.
// This is the most memory-efficient splitting mode: every returned
// slice points directly into data (zero copies).
//
// IMPORTANT: The returned slices share memory with the input buffer.
// Do not modify the input buffer while using the returned data.
//
// Example:
//
//	fields, err := split.Split([]byte("a,b,c"), split.DefaultOptions[byte](','))
//	// fields is [][]byte{[]byte("a"), []byte("b"), []byte("c")}
func Split[T comparable](data []T, opts Options[T]) ([][]T, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return Collect[T](NewScanner(data, opts))
}

// SplitString scans s with opts and returns all fields as strings.
// The returned strings share s's backing memory, so no field content is
// copied; since strings are immutable this is always safe.
//
// Example:
//
//	fields, err := split.SplitString("a,b,c", split.DefaultOptions[byte](','))
//	// fields is []string{"a", "b", "c"}
func SplitString(s string, opts Options[byte]) ([]string, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	sc := NewScanner(unsafeBytes(s), opts)
	fields := make([]string, 0, 8)
	for sc.Scan() {
		fields = append(fields, unsafeString(sc.Field()))
	}
	return fields, sc.Err()
}

// unsafeBytes converts a string to a []byte without allocation.
//
// The returned slice shares the string's backing array and MUST NOT be
// written to. The Scanner never writes to its buffer, so handing it
// this view is safe.
func unsafeBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// unsafeString converts a []byte to a string without allocation.
//
// This uses unsafe.String() which is available in Go 1.20+.
// The conversion creates a string that shares the underlying byte array,
// so the byte slice MUST NOT be modified after conversion.
//
// SplitString only applies this to subslices of an immutable string's
// backing array, so the result is safe.
func unsafeString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
