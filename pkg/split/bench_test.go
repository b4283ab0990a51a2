package split

import (
	"strings"
	"testing"
)

// Benchmark test data is built once and reused across all benchmarks.
var (
	benchLines  []byte
	benchFields []byte
)

// loadBenchmarkData builds synthetic delimited buffers once.
func loadBenchmarkData() {
	if benchLines != nil {
		return
	}

	var sb strings.Builder
	for i := 0; i < 10000; i++ {
		sb.WriteString("alpha,beta,gamma,delta,epsilon\n")
	}
	benchLines = []byte(sb.String())
	benchFields = []byte(strings.Repeat("field,", 100000) + "tail")
}

// BenchmarkScanner_Lines benchmarks newline splitting of a large buffer.
func BenchmarkScanner_Lines(b *testing.B) {
	loadBenchmarkData()

	opts := Options[byte]{Delims: []byte{'\n'}, Mode: Terminator}
	b.SetBytes(int64(len(benchLines)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sc := NewScanner(benchLines, opts)
		for sc.Scan() {
			_ = sc.Field()
		}
	}
}

// BenchmarkScanner_Fields benchmarks comma splitting of a wide buffer.
func BenchmarkScanner_Fields(b *testing.B) {
	loadBenchmarkData()

	opts := DefaultOptions[byte](',')
	b.SetBytes(int64(len(benchFields)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sc := NewScanner(benchFields, opts)
		for sc.Scan() {
			_ = sc.Field()
		}
	}
}

// BenchmarkTrimScanner benchmarks the trimming layer over the line
// buffer.
func BenchmarkTrimScanner(b *testing.B) {
	loadBenchmarkData()

	opts := Options[byte]{Delims: []byte{'\n'}, Mode: Terminator}
	trim := TrimOptions[byte]{TrimSet: []byte{' ', '\t'}}
	b.SetBytes(int64(len(benchLines)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sc := NewTrimScanner[byte](NewScanner(benchLines, opts), trim)
		for sc.Scan() {
			_ = sc.Field()
		}
	}
}

// BenchmarkSplitString benchmarks the zero-copy string helper against
// the stdlib baseline shape (strings.Split allocates every substring
// header into a fresh slice too, so the comparison is allocation
// parity).
func BenchmarkSplitString(b *testing.B) {
	loadBenchmarkData()

	input := string(benchLines)
	opts := DefaultOptions[byte]('\n')
	b.SetBytes(int64(len(input)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		fields, err := SplitString(input, opts)
		if err != nil {
			b.Fatal(err)
		}
		_ = fields
	}
}

// BenchmarkStringsSplit_Baseline is the stdlib reference point for
// BenchmarkSplitString.
func BenchmarkStringsSplit_Baseline(b *testing.B) {
	loadBenchmarkData()

	input := string(benchLines)
	b.SetBytes(int64(len(input)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = strings.Split(input, "\n")
	}
}
