package litparse

import (
	"time"

	"github.com/jhump/litparse/ast"
	"github.com/jhump/litparse/parser"
	"github.com/jhump/litparse/reporter"
)

// Parser parses text fragments that each encode a single literal value. The
// zero value is ready to use; all fields are optional.
//
// Parsing is a synchronous in-memory computation with no instance state, so
// one Parser may be shared freely across goroutines.
type Parser struct {
	// DecimalMode makes plain fractional numbers (digits, a dot, and no
	// exponent) parse as arbitrary-precision decimals instead of float64.
	// Exponent and f-suffixed forms always produce float64.
	DecimalMode bool

	// Resolver handles dotted constant names such as Foo::Bar. If nil, any
	// constant literal fails to parse.
	Resolver Resolver

	// Namespace is the base handle given to Resolver with every name. Its
	// meaning is entirely up to the resolver; the parser passes it through
	// unchanged.
	Namespace any

	// Now supplies the date combined with bare time literals such as
	// "18:29:52". If nil, time.Now is used, which makes those literals
	// non-reproducible; inject a fixed clock for deterministic results.
	Now func() time.Time
}

// Parse parses text as exactly one literal value. After the value, only end
// of input may follow; trailing data is a syntax error naming the
// remainder. Leading whitespace is not skipped.
func (p *Parser) Parse(text string) (ast.Value, error) {
	sc := p.Scan(text)
	v, err := sc.ScanValue()
	if err != nil {
		return nil, err
	}
	if !sc.AtEnd() {
		return nil, reporter.Errorf(ast.SourcePosAt(text, sc.Position()),
			"unexpected trailing data %q after parsed value", sc.Remaining())
	}
	return v, nil
}

// Scan returns a manual-mode parser over text, for callers that want to
// consume a stream of back-to-back literals from one buffer. Each ScanValue
// call consumes exactly one literal and there is no end-of-input check; see
// the parser package for the cursor operations.
func (p *Parser) Scan(text string) *parser.Parser {
	cfg := parser.Config{
		DecimalMode: p.DecimalMode,
		Namespace:   p.Namespace,
		Now:         p.Now,
	}
	if p.Resolver != nil {
		cfg.Resolve = p.Resolver.ResolveName
	}
	return parser.New(text, cfg)
}

// Parse parses text with a default zero-value Parser: float64 fractional
// numbers, no resolver, wall-clock dates for bare times.
func Parse(text string) (ast.Value, error) {
	var p Parser
	return p.Parse(text)
}
