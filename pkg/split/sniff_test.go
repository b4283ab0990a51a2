package split

import "testing"

// TestSniffer_DetectDelimiter tests dialect detection over small
// samples.
func TestSniffer_DetectDelimiter(t *testing.T) {
	tests := []struct {
		name   string
		sample string
		want   byte
	}{
		{
			name:   "comma separated",
			sample: "name,age,city\nAlice,30,New York\nBob,25,Los Angeles",
			want:   ',',
		},
		{
			name:   "tab separated",
			sample: "name\tage\nAlice\t30\nBob\t25",
			want:   '\t',
		},
		{
			name:   "semicolon separated",
			sample: "a;b;c\nd;e;f",
			want:   ';',
		},
		{
			name:   "pipe separated",
			sample: "a|b|c\nd|e|f\ng|h|i",
			want:   '|',
		},
		{
			name:   "empty sample defaults to comma",
			sample: "",
			want:   ',',
		},
		{
			name:   "no candidate present defaults to comma",
			sample: "plain text\nmore text",
			want:   ',',
		},
		{
			name:   "consistency beats raw count",
			sample: "a;b;c\nd,e,f,g,h,i,j;k;l\nm;n;o",
			want:   ';',
		},
		{
			name:   "blank lines ignored",
			sample: "a,b\n\n\nc,d",
			want:   ',',
		},
		{
			name:   "crlf sample",
			sample: "a\tb\r\nc\td\r\n",
			want:   '\t',
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSniffer([]byte(tt.sample))
			if got := s.DetectDelimiter(); got != tt.want {
				t.Errorf("DetectDelimiter() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestSniffer_CustomCandidates tests restricting the candidate set.
func TestSniffer_CustomCandidates(t *testing.T) {
	sample := []byte("a:b:c\nd:e:f")

	s := NewSnifferCandidates(sample, ':', ',')
	if got := s.DetectDelimiter(); got != ':' {
		t.Errorf("DetectDelimiter() = %q, want ':'", got)
	}

	// Detection is memoized; a second call returns the same answer.
	if got := s.DetectDelimiter(); got != ':' {
		t.Errorf("second DetectDelimiter() = %q, want ':'", got)
	}
}

// TestSniffer_SingleLine tests that one line without a trailing newline
// is still scored.
func TestSniffer_SingleLine(t *testing.T) {
	s := NewSniffer([]byte("a;b;c"))
	if got := s.DetectDelimiter(); got != ';' {
		t.Errorf("DetectDelimiter() = %q, want ';'", got)
	}
}
