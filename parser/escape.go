package parser

import (
	"fmt"
	"regexp"
	"strings"
)

// escapeToken matches one escape sequence inside double-quoted text: 1-3
// octal digits, a hex escape with 1-2 digits, or any other single escaped
// character.
var escapeToken = regexp.MustCompile(`\\(?:[0-7]{1,3}|x[0-9a-fA-F]{1,2}|.)`)

// newEscapeTable enumerates all 256 byte values and registers every
// spelling the escape grammar can capture for each: the 1, 2, and 3 digit
// octal forms and the 1 and 2 digit hex forms in both letter cases, plus
// the named escapes. Values are runes so decoded output stays valid UTF-8.
//
// Octal spellings above \377 are the only capturable tokens outside this
// table; they fall through to decodeEscapes' keep-the-text behavior.
func newEscapeTable() map[string]rune {
	t := make(map[string]rune, 256*7)
	for i := 0; i < 256; i++ {
		r := rune(i)
		t[fmt.Sprintf(`\%o`, i)] = r
		t[fmt.Sprintf(`\%02o`, i)] = r
		t[fmt.Sprintf(`\%03o`, i)] = r
		t[fmt.Sprintf(`\x%x`, i)] = r
		t[fmt.Sprintf(`\x%X`, i)] = r
		t[fmt.Sprintf(`\x%02x`, i)] = r
		t[fmt.Sprintf(`\x%02X`, i)] = r
	}
	for spelling, r := range map[string]rune{
		`\t`: '\t', `\n`: '\n', `\r`: '\r', `\f`: '\f',
		`\\`: '\\', `\'`: '\'', `\"`: '"',
	} {
		t[spelling] = r
	}
	return t
}

// escapes is built once at package init and read-only afterwards, so it is
// safe to share across any number of concurrent parses.
var escapes = newEscapeTable()

// decodeEscapes rewrites every escape token in s through the table. A token
// missing from the table keeps its text without the backslash, so an
// unknown \X decodes to X. This mirrors the source notation's behavior and
// is a known simplification, not an error path.
func decodeEscapes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	return escapeToken.ReplaceAllStringFunc(s, func(tok string) string {
		if r, ok := escapes[tok]; ok {
			return string(r)
		}
		return tok[1:]
	})
}

// singleQuoted handles the restricted escape set of single-quoted strings
// and symbols: only \\ and \' are unescaped, anything else stays verbatim.
var singleQuoted = strings.NewReplacer(`\\`, `\`, `\'`, `'`)

func decodeSingleQuoted(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	return singleQuoted.Replace(s)
}
