package ast

import (
	"fmt"

	"github.com/rivo/uniseg"
)

// SourcePos identifies a position within the literal text being parsed.
// Line and Col are 1-indexed; Col counts grapheme clusters rather than bytes
// or runes, so positions in text containing multi-byte characters still
// point at what a reader would call the column. Offset is the byte offset.
type SourcePos struct {
	Line, Col int
	Offset    int
}

func (p SourcePos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// SourcePosAt computes the position of the given byte offset within text.
// Offsets outside [0, len(text)] are clamped.
func SourcePosAt(text string, offset int) SourcePos {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}
	line, lineStart := 1, 0
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	col := uniseg.GraphemeClusterCount(text[lineStart:offset]) + 1
	return SourcePos{Line: line, Col: col, Offset: offset}
}
