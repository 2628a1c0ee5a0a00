package parser

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerTryMatch(t *testing.T) {
	s := scanner{data: "abc def"}

	m := s.tryMatch(regexp.MustCompile(`^(a)(b)`))
	require.NotNil(t, m)
	assert.Equal(t, []string{"ab", "a", "b"}, m)
	assert.Equal(t, 2, s.position())

	// Failure leaves the cursor untouched, even partially.
	m = s.tryMatch(regexp.MustCompile(`^c `))
	assert.Nil(t, m)
	assert.Equal(t, 2, s.position())

	// Matching is anchored at the cursor; it never searches ahead.
	m = s.tryMatch(regexp.MustCompile(`^def`))
	assert.Nil(t, m)
	assert.Equal(t, 2, s.position())

	m = s.tryMatch(regexp.MustCompile(`^c\s*`))
	require.NotNil(t, m)
	assert.Equal(t, "def", s.remaining())
}

func TestScannerEmptyMatch(t *testing.T) {
	s := scanner{data: "xyz"}
	m := s.tryMatch(regexp.MustCompile(`^\s*`))
	require.NotNil(t, m)
	assert.Equal(t, "", m[0])
	assert.Equal(t, 0, s.position())
}

func TestScannerPositioning(t *testing.T) {
	s := scanner{data: "hello"}
	assert.False(t, s.atEnd())
	assert.Equal(t, "hello", s.remaining())

	s.setPosition(3)
	assert.Equal(t, 3, s.position())
	assert.Equal(t, "lo", s.remaining())

	s.setPosition(-2)
	assert.Equal(t, 0, s.position())
	s.setPosition(99)
	assert.Equal(t, 5, s.position())
	assert.True(t, s.atEnd())
	assert.Equal(t, "", s.remaining())
}
