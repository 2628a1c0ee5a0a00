package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeTableCoverage(t *testing.T) {
	// Every byte value must be reachable through its octal and hex
	// spellings, padded or not.
	for i := 0; i < 256; i++ {
		want := rune(i)
		for _, tok := range []string{
			fmt.Sprintf(`\%o`, i),
			fmt.Sprintf(`\%02o`, i),
			fmt.Sprintf(`\%03o`, i),
			fmt.Sprintf(`\x%x`, i),
			fmt.Sprintf(`\x%X`, i),
			fmt.Sprintf(`\x%02x`, i),
			fmt.Sprintf(`\x%02X`, i),
		} {
			got, ok := escapes[tok]
			require.True(t, ok, "token %q not registered", tok)
			assert.Equal(t, want, got, "token %q", tok)
		}
	}

	named := map[string]rune{
		`\t`: '\t', `\n`: '\n', `\r`: '\r', `\f`: '\f',
		`\\`: '\\', `\'`: '\'', `\"`: '"',
	}
	for tok, want := range named {
		got, ok := escapes[tok]
		require.True(t, ok, "token %q not registered", tok)
		assert.Equal(t, want, got, "token %q", tok)
	}
}

func TestEscapeTableIdempotent(t *testing.T) {
	// Lookup is pure: the same token always decodes to the same character,
	// and decoding already-decoded text with no backslashes is a no-op.
	assert.Equal(t, escapes[`\t`], escapes[`\t`])
	decoded := decodeEscapes(`a\tb`)
	assert.Equal(t, "a\tb", decoded)
	assert.Equal(t, decoded, decodeEscapes(decoded))
}

func TestDecodeEscapes(t *testing.T) {
	testCases := []struct {
		input, want string
	}{
		{``, ``},
		{`plain`, `plain`},
		{`\t`, "\t"},
		{`\x41\x42`, "AB"},
		{`\101\102`, "AB"},
		{`mixed \t and \x20 text`, "mixed \t and \x20 text"},
		// Unknown escape: the backslash drops, the character stays.
		{`\q`, `q`},
		// Octal above \377 is not a byte value; the text is kept.
		{`\777`, `777`},
		// High byte values decode to the corresponding rune so the result
		// stays valid UTF-8.
		{`\xe3`, "ã"},
		{`\343`, "ã"},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.want, decodeEscapes(tc.input))
		})
	}
}

func TestDecodeSingleQuoted(t *testing.T) {
	assert.Equal(t, `a'b`, decodeSingleQuoted(`a\'b`))
	assert.Equal(t, `a\b`, decodeSingleQuoted(`a\\b`))
	// Everything else stays verbatim.
	assert.Equal(t, `a\tb`, decodeSingleQuoted(`a\tb`))
	assert.Equal(t, `a\qb`, decodeSingleQuoted(`a\qb`))
}
