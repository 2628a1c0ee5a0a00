package parser

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/jhump/litparse/ast"
	"github.com/jhump/litparse/reporter"
)

// ResolveFunc maps a dotted constant name, relative to an opaque namespace
// handle, to whatever object the embedding application associates with that
// name. The parser never interprets the name itself; it only forwards the
// matched text.
type ResolveFunc func(namespace any, name string) (any, error)

// Config carries the per-parse options.
type Config struct {
	// DecimalMode selects arbitrary-precision decimal construction over
	// float64 for fractional numbers written without an exponent.
	DecimalMode bool

	// Resolve handles dotted constant names. If nil, any constant literal
	// fails with a syntax error.
	Resolve ResolveFunc

	// Namespace is the base handle passed through to Resolve unchanged.
	Namespace any

	// Now supplies the date combined with bare time literals, which are the
	// only non-deterministic literal form. Defaults to time.Now; tests
	// should inject a fixed clock.
	Now func() time.Time
}

// Parser scans successive literal values out of one text buffer. A
// successful ScanValue leaves the cursor on the first unconsumed character;
// a failed one leaves it wherever matching broke down. The cursor never
// moves backward except through SetPosition.
//
// A Parser is single-use, single-goroutine state. Independent Parsers over
// independent buffers are fully concurrent-safe; the escape table is the
// only shared structure and is immutable.
type Parser struct {
	s   scanner
	cfg Config
}

// New returns a parser positioned at the start of text.
func New(text string, cfg Config) *Parser {
	return &Parser{s: scanner{data: text}, cfg: cfg}
}

// Position returns the current cursor byte offset.
func (p *Parser) Position() int { return p.s.position() }

// SetPosition moves the cursor, clamped to the buffer. It exists for
// callers scanning several back-to-back literals manually.
func (p *Parser) SetPosition(n int) { p.s.setPosition(n) }

// Remaining returns the unconsumed tail of the buffer.
func (p *Parser) Remaining() string { return p.s.remaining() }

// AtEnd reports whether the whole buffer has been consumed.
func (p *Parser) AtEnd() bool { return p.s.atEnd() }

// Grammar alternatives, in the priority order ScanValue tries them. Several
// forms share a prefix (a date and an integer both start with digits; hex,
// octal, and binary all start with 0), so this order is load-bearing: each
// pattern is anchored at the cursor and the first match wins.
var (
	reOpenBracket  = regexp.MustCompile(`^\[`)
	reOpenBrace    = regexp.MustCompile(`^\{`)
	reConstant     = regexp.MustCompile(`^[A-Z]\w*(?:::[A-Z]\w*)*`)
	reNil          = regexp.MustCompile(`^nil`)
	reTrue         = regexp.MustCompile(`^true`)
	reFalse        = regexp.MustCompile(`^false`)
	reDateTime     = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})T(\d{2}):(\d{2}):(\d{2})(?:Z|[A-Z]{3,4}|[-+]\d{4})?`)
	reDate         = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
	reTime         = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})(?:Z|[A-Z]{3,4}|[-+]\d{4})?`)
	reFloatExp     = regexp.MustCompile(`^[-+]?\d+(?:_\d+)*\.\d+(?:f|[eE][-+]?\d+)`)
	reFraction     = regexp.MustCompile(`^[-+]?\d+(?:_\d+)*\.\d+`)
	reOctal        = regexp.MustCompile(`^[-+]?0[0-7_,]+`)
	reHex          = regexp.MustCompile(`^[-+]?0x[0-9a-fA-F_]+`)
	reBinary       = regexp.MustCompile(`^[-+]?0b[01_]+`)
	reInteger      = regexp.MustCompile(`^[-+]?\d+(?:_\d+)*`)
	reRegexp       = regexp.MustCompile(`^/((?:\\.|[^\\/])*)/([imxnNeEsSuU]*)`)
	reSymbolBare   = regexp.MustCompile(`^:(\w+)`)
	reSymbolSingle = regexp.MustCompile(`^:'((?:\\.|[^'\\])*)'`)
	reSymbolDouble = regexp.MustCompile(`^:"((?:\\.|[^"\\])*)"`)
	reSingleQuote  = regexp.MustCompile(`^'((?:\\.|[^'\\])*)'`)
	reDoubleQuote  = regexp.MustCompile(`^"((?:\\.|[^"\\])*)"`)

	// Collection plumbing. Whitespace is never skipped implicitly anywhere
	// else; these separator patterns are the only place it is absorbed.
	reSpace        = regexp.MustCompile(`^\s*`)
	reComma        = regexp.MustCompile(`^\s*,\s*`)
	reArrow        = regexp.MustCompile(`^\s*=>\s*`)
	reCloseBracket = regexp.MustCompile(`^\]`)
	reCloseBrace   = regexp.MustCompile(`^\}`)
)

// ScanValue recognizes exactly one literal anchored at the cursor. Leading
// whitespace is the caller's responsibility.
func (p *Parser) ScanValue() (ast.Value, error) {
	start := p.s.position()

	if p.s.tryMatch(reOpenBracket) != nil {
		return p.scanSequence()
	}
	if p.s.tryMatch(reOpenBrace) != nil {
		return p.scanMapping()
	}
	if m := p.s.tryMatch(reConstant); m != nil {
		return p.resolveConstant(start, m[0])
	}
	if p.s.tryMatch(reNil) != nil {
		return ast.Null{}, nil
	}
	if p.s.tryMatch(reTrue) != nil {
		return ast.Bool(true), nil
	}
	if p.s.tryMatch(reFalse) != nil {
		return ast.Bool(false), nil
	}
	// Datetime before date before bare time before the numeric forms: all
	// of them begin with digits. A trailing timezone marker (Z, a 3-4
	// letter abbreviation, or a signed 4-digit offset) is consumed but
	// never interpreted; that is a known simplification.
	if m := p.s.tryMatch(reDateTime); m != nil {
		return p.buildDateTime(start, m)
	}
	if m := p.s.tryMatch(reDate); m != nil {
		return p.buildDate(start, m)
	}
	if m := p.s.tryMatch(reTime); m != nil {
		return p.buildTime(start, m)
	}
	if m := p.s.tryMatch(reFloatExp); m != nil {
		return p.buildFloat(start, m[0])
	}
	if m := p.s.tryMatch(reFraction); m != nil {
		if p.cfg.DecimalMode {
			return p.buildDecimal(start, m[0])
		}
		return p.buildFloat(start, m[0])
	}
	if m := p.s.tryMatch(reOctal); m != nil {
		return p.buildInt(start, m[0], "", 8)
	}
	if m := p.s.tryMatch(reHex); m != nil {
		return p.buildInt(start, m[0], "0x", 16)
	}
	if m := p.s.tryMatch(reBinary); m != nil {
		return p.buildInt(start, m[0], "0b", 2)
	}
	if m := p.s.tryMatch(reInteger); m != nil {
		return p.buildInt(start, m[0], "", 10)
	}
	if m := p.s.tryMatch(reRegexp); m != nil {
		return buildPattern(m[1], m[2]), nil
	}
	if m := p.s.tryMatch(reSymbolBare); m != nil {
		return ast.Symbol(m[1]), nil
	}
	if m := p.s.tryMatch(reSymbolSingle); m != nil {
		return ast.Symbol(decodeSingleQuoted(m[1])), nil
	}
	if m := p.s.tryMatch(reSymbolDouble); m != nil {
		return ast.Symbol(decodeEscapes(m[1])), nil
	}
	if m := p.s.tryMatch(reSingleQuote); m != nil {
		return ast.Text(decodeSingleQuoted(m[1])), nil
	}
	if m := p.s.tryMatch(reDoubleQuote); m != nil {
		return ast.Text(decodeEscapes(m[1])), nil
	}

	return nil, p.errorfAt(start, "unrecognized literal at %q", snippet(p.s.remaining()))
}

func (p *Parser) scanSequence() (ast.Value, error) {
	seq := ast.Sequence{}
	p.s.tryMatch(reSpace)
	if p.s.tryMatch(reCloseBracket) != nil {
		return seq, nil
	}
	for {
		v, err := p.ScanValue()
		if err != nil {
			return nil, err
		}
		seq = append(seq, v)
		if p.s.tryMatch(reComma) != nil {
			continue
		}
		p.s.tryMatch(reSpace)
		if p.s.tryMatch(reCloseBracket) != nil {
			return seq, nil
		}
		return nil, p.errorf("expected closing bracket in sequence literal, found %q", snippet(p.s.remaining()))
	}
}

func (p *Parser) scanMapping() (ast.Value, error) {
	mapping := ast.Mapping{}
	p.s.tryMatch(reSpace)
	if p.s.tryMatch(reCloseBrace) != nil {
		return mapping, nil
	}
	for {
		key, err := p.ScanValue()
		if err != nil {
			return nil, err
		}
		if p.s.tryMatch(reArrow) == nil {
			return nil, p.errorf("expected => after mapping key %s, found %q", key, snippet(p.s.remaining()))
		}
		val, err := p.ScanValue()
		if err != nil {
			return nil, err
		}
		mapping.Put(key, val)
		if p.s.tryMatch(reComma) != nil {
			continue
		}
		p.s.tryMatch(reSpace)
		if p.s.tryMatch(reCloseBrace) != nil {
			return mapping, nil
		}
		return nil, p.errorf("expected closing brace in mapping literal, found %q", snippet(p.s.remaining()))
	}
}

func (p *Parser) resolveConstant(start int, name string) (ast.Value, error) {
	if p.cfg.Resolve == nil {
		return nil, p.errorfAt(start, "cannot resolve constant %s: no resolver configured", name)
	}
	target, err := p.cfg.Resolve(p.cfg.Namespace, name)
	if err != nil {
		return nil, p.errorfAt(start, "cannot resolve constant %s: %v", name, err)
	}
	return ast.Reference{Name: name, Target: target}, nil
}

func (p *Parser) buildDateTime(start int, m []string) (ast.Value, error) {
	dt := ast.DateTime{
		Year: atoi(m[1]), Month: atoi(m[2]), Day: atoi(m[3]),
		Hour: atoi(m[4]), Minute: atoi(m[5]), Second: atoi(m[6]),
	}
	if !validDate(dt.Year, dt.Month, dt.Day) || !validClock(dt.Hour, dt.Minute, dt.Second) {
		return nil, p.errorfAt(start, "invalid datetime literal %q", m[0])
	}
	return dt, nil
}

func (p *Parser) buildDate(start int, m []string) (ast.Value, error) {
	d := ast.Date{Year: atoi(m[1]), Month: atoi(m[2]), Day: atoi(m[3])}
	if !validDate(d.Year, d.Month, d.Day) {
		return nil, p.errorfAt(start, "invalid date literal %q", m[0])
	}
	return d, nil
}

// buildTime combines a bare time literal with the current date. The result
// depends on the configured clock (wall time by default) and is therefore
// not reproducible; tests should either inject Now or assert only the
// time-of-day fields.
func (p *Parser) buildTime(start int, m []string) (ast.Value, error) {
	h, minute, sec := atoi(m[1]), atoi(m[2]), atoi(m[3])
	if !validClock(h, minute, sec) {
		return nil, p.errorfAt(start, "invalid time literal %q", m[0])
	}
	now := time.Now
	if p.cfg.Now != nil {
		now = p.cfg.Now
	}
	t := now()
	return ast.DateTime{
		Year: t.Year(), Month: int(t.Month()), Day: t.Day(),
		Hour: h, Minute: minute, Second: sec,
	}, nil
}

func (p *Parser) buildFloat(start int, tok string) (ast.Value, error) {
	text := strings.TrimSuffix(strings.ReplaceAll(tok, "_", ""), "f")
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, p.errorfAt(start, "invalid float literal %q: %v", tok, err)
	}
	return ast.Float(f), nil
}

func (p *Parser) buildDecimal(start int, tok string) (ast.Value, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(tok, "_", ""))
	if err != nil {
		return nil, p.errorfAt(start, "invalid decimal literal %q: %v", tok, err)
	}
	return ast.Decimal{Val: d}, nil
}

// buildInt converts a matched integer token: sign split off, base prefix and
// the _ and , digit separators stripped, then an arbitrary-precision parse
// in the given base.
func (p *Parser) buildInt(start int, tok, prefix string, base int) (ast.Value, error) {
	digits := tok
	neg := strings.HasPrefix(digits, "-")
	digits = strings.TrimLeft(digits, "+-")
	digits = strings.TrimPrefix(digits, prefix)
	digits = strings.Map(func(r rune) rune {
		if r == '_' || r == ',' {
			return -1
		}
		return r
	}, digits)
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		// The patterns prefilter digits, so this is nearly unreachable, but
		// a conversion failure must still surface as a syntax error.
		return nil, p.errorfAt(start, "invalid base-%d integer literal %q", base, tok)
	}
	if neg {
		n.Neg(n)
	}
	return ast.Int{Val: n}, nil
}

// buildPattern extracts a regexp literal's source and flags. The source is
// the raw text between the unescaped slashes; escapes inside it are left
// verbatim. The flag mapping (i, x, m plus one encoding-hint letter, last
// hint wins) is fixed and intentionally not the imx convention used by some
// other notations.
func buildPattern(source, flags string) ast.Pattern {
	pat := ast.Pattern{Source: source}
	for _, r := range flags {
		switch r {
		case 'i':
			pat.CaseInsensitive = true
		case 'x':
			pat.Extended = true
		case 'm':
			pat.Multiline = true
		default:
			pat.Encoding = r
		}
	}
	return pat
}

func (p *Parser) errorf(format string, args ...any) error {
	return p.errorfAt(p.s.position(), format, args...)
}

func (p *Parser) errorfAt(offset int, format string, args ...any) error {
	return reporter.Errorf(ast.SourcePosAt(p.s.data, offset), format, args...)
}

// atoi is only used on \d{n} captures, which cannot fail to convert.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func validDate(year, month, day int) bool {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

func validClock(hour, minute, second int) bool {
	return hour < 24 && minute < 60 && second < 60
}

// snippet truncates the remaining text for error messages without cutting
// into the middle of a rune.
func snippet(s string) string {
	const max = 24
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
