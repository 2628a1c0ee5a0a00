// Package litparse parses text fragments that encode single structured
// literal values - the inline notation used to write numbers, strings,
// symbols, dates, regular expressions, collections, and named constant
// references - and produces typed value trees.
//
// The grammar is an ordered list of anchored alternatives tried at the
// cursor, first match wins. The recognized forms, in priority order:
//
//	[a, b, c]              sequence (recursive)
//	{k => v, ...}          mapping (recursive; duplicate keys last-write-wins)
//	Foo::Bar               constant reference, resolved via Resolver
//	nil  true  false
//	2012-05-20T18:29:52    datetime (optional trailing timezone marker,
//	                       consumed but not interpreted)
//	2012-05-20             date
//	18:29:52               bare time, combined with the current date
//	1.5e3  1.5f            float64
//	12.37                  float64, or decimal in decimal mode
//	017  0xe3  0b1011  42  integers, arbitrary precision, _ separators
//	/regexp/imx            pattern (source kept verbatim, never compiled)
//	:sym  :'sym'  :"sym"   symbol
//	'text'  "text"         string; double quotes decode the full escape set,
//	                       single quotes only \\ and \'
//
// Every failure is a single flat error kind carrying the position where
// matching broke down; see the reporter package. The parser holds no state
// between calls and is safe for concurrent use.
//
// # Parsing
//
// The zero value of Parser works for self-contained literals:
//
//	v, err := litparse.Parse(`[1, 2.5, :three, "four"]`)
//
// Constant references additionally need a Resolver:
//
//	p := litparse.Parser{
//		Resolver: litparse.MapResolver{"Color::Red": red},
//	}
//	v, err := p.Parse("Color::Red")
//
// # Manual mode
//
// Parser.Scan returns a cursor-driven scanner for buffers holding several
// literals back to back; each ScanValue call consumes exactly one literal
// and the caller inspects or repositions the cursor between calls.
//
// # Known simplifications
//
// Bare time literals depend on the configured clock and are therefore not
// reproducible unless a fixed Now is injected. Timezone markers after times
// are consumed but ignored. Unknown backslash escapes in double-quoted text
// decode to the escaped character itself rather than reporting an error.
// These behaviors are inherited from the source notation and preserved
// deliberately.
package litparse
