// Package split provides delimiter detection for byte buffers.
package split

// Sniffer detects the most likely field delimiter in a sample buffer.
type Sniffer struct {
	sample     []byte
	candidates []byte
	delim      byte
	analyzed   bool
}

// defaultCandidates are the delimiters checked when none are supplied:
// comma, tab, semicolon, pipe.
var defaultCandidates = []byte{',', '\t', ';', '|'}

// NewSniffer creates a new Sniffer with a sample of delimited data.
// For best results, provide at least 2-3 lines of data.
func NewSniffer(sample []byte) *Sniffer {
	return &Sniffer{
		sample:     sample,
		candidates: defaultCandidates,
		analyzed:   false,
	}
}

// NewSnifferCandidates creates a Sniffer that only considers the given
// candidate delimiters, in preference order.
func NewSnifferCandidates(sample []byte, candidates ...byte) *Sniffer {
	s := NewSniffer(sample)
	if len(candidates) > 0 {
		s.candidates = candidates
	}
	return s
}

// DetectDelimiter returns the detected field delimiter. When the sample
// is empty or no candidate ever occurs, the first candidate is
// returned.
func (s *Sniffer) DetectDelimiter() byte {
	s.analyze()
	return s.delim
}

// analyze performs delimiter detection on the sample.
func (s *Sniffer) analyze() {
	if s.analyzed {
		return
	}
	s.delim = s.detectDelimiter()
	s.analyzed = true
}

// detectDelimiter performs the actual detection: each candidate is
// scored by how often it occurs per line, with a bonus when the count
// is consistent across all non-empty lines.
func (s *Sniffer) detectDelimiter() byte {
	fallback := s.candidates[0]
	if len(s.sample) == 0 {
		return fallback
	}

	lines, err := Split(s.sample, Options[byte]{
		Delims: []byte{'\n'},
		Mode:   Terminator,
	})
	if err != nil || len(lines) == 0 {
		return fallback
	}

	best := fallback
	bestScore := 0

	for _, delim := range s.candidates {
		counts := make([]int, 0, len(lines))
		for _, line := range lines {
			line = trimCR(line)
			if len(line) == 0 {
				continue
			}
			counts = append(counts, countDelimiter(line, delim))
		}

		if len(counts) == 0 || counts[0] == 0 {
			continue
		}

		// Score based on consistency across lines.
		consistent := true
		for i := 1; i < len(counts); i++ {
			if counts[i] != counts[0] {
				consistent = false
				break
			}
		}

		score := counts[0]
		if consistent {
			score *= 10 // Bonus for consistency
		}
		if score > bestScore {
			best = delim
			bestScore = score
		}
	}

	return best
}

// countDelimiter counts occurrences of delim in line.
func countDelimiter(line []byte, delim byte) int {
	count := 0
	for _, c := range line {
		if c == delim {
			count++
		}
	}
	return count
}

// trimCR drops a trailing carriage return so CRLF samples score like LF
// ones.
func trimCR(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\r' {
		return line[:n-1]
	}
	return line
}
