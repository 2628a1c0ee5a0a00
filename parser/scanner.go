package parser

import "regexp"

// scanner owns the input buffer and the cursor. It is the only component
// that moves the cursor: a successful match advances past the matched text,
// a failed match leaves the cursor untouched, and nothing ever searches
// ahead of the cursor.
type scanner struct {
	data string
	pos  int
}

// tryMatch attempts to match re at the cursor. On success it returns the
// full matched text plus any submatches and advances the cursor past the
// match; on failure it returns nil with no consumption. Every pattern given
// to tryMatch must be anchored with ^ so the match cannot begin past the
// cursor.
func (s *scanner) tryMatch(re *regexp.Regexp) []string {
	m := re.FindStringSubmatch(s.data[s.pos:])
	if m == nil {
		return nil
	}
	s.pos += len(m[0])
	return m
}

func (s *scanner) position() int { return s.pos }

func (s *scanner) setPosition(n int) {
	if n < 0 {
		n = 0
	}
	if n > len(s.data) {
		n = len(s.data)
	}
	s.pos = n
}

func (s *scanner) remaining() string { return s.data[s.pos:] }

func (s *scanner) atEnd() bool { return s.pos == len(s.data) }
