package ast

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind identifies the variant of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindDecimal
	KindText
	KindSymbol
	KindPattern
	KindDate
	KindDateTime
	KindSequence
	KindMapping
	KindReference
)

var kindNames = map[Kind]string{
	KindNull:      "null",
	KindBool:      "bool",
	KindInt:       "int",
	KindFloat:     "float",
	KindDecimal:   "decimal",
	KindText:      "text",
	KindSymbol:    "symbol",
	KindPattern:   "pattern",
	KindDate:      "date",
	KindDateTime:  "datetime",
	KindSequence:  "sequence",
	KindMapping:   "mapping",
	KindReference: "reference",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is one parsed literal. It is a closed union: the only
// implementations are the types in this package, one per literal form the
// parser recognizes.
type Value interface {
	Kind() Kind
	// Equal reports whether the receiver and other denote the same value.
	// Values of different kinds are never equal.
	Equal(other Value) bool
	// String renders the value roughly in its source notation. It is meant
	// for error messages and debugging, not for round-tripping.
	String() string
}

// Null is the nil literal.
type Null struct{}

func (Null) Kind() Kind { return KindNull }

func (Null) Equal(other Value) bool {
	_, ok := other.(Null)
	return ok
}

func (Null) String() string { return "nil" }

// Bool is a true or false literal.
type Bool bool

func (Bool) Kind() Kind { return KindBool }

func (b Bool) Equal(other Value) bool {
	o, ok := other.(Bool)
	return ok && b == o
}

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// Int is an arbitrary-precision integer, produced from decimal, binary,
// octal, or hexadecimal notation. The source base is not retained.
type Int struct {
	Val *big.Int
}

// NewInt returns an Int holding the given value. It is mostly a convenience
// for tests and callers constructing trees by hand.
func NewInt(v int64) Int {
	return Int{Val: big.NewInt(v)}
}

func (Int) Kind() Kind { return KindInt }

func (i Int) Equal(other Value) bool {
	o, ok := other.(Int)
	return ok && i.Val.Cmp(o.Val) == 0
}

func (i Int) String() string { return i.Val.String() }

// Int64 returns the value as an int64 if it fits.
func (i Int) Int64() (int64, bool) {
	if !i.Val.IsInt64() {
		return 0, false
	}
	return i.Val.Int64(), true
}

// Float is a 64-bit IEEE floating-point literal.
type Float float64

func (Float) Kind() Kind { return KindFloat }

func (f Float) Equal(other Value) bool {
	o, ok := other.(Float)
	return ok && f == o
}

func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

// Decimal is an arbitrary-precision base-10 number. The parser produces it
// instead of Float for plain fractional notation when decimal mode is on.
type Decimal struct {
	Val decimal.Decimal
}

func (Decimal) Kind() Kind { return KindDecimal }

func (d Decimal) Equal(other Value) bool {
	o, ok := other.(Decimal)
	return ok && d.Val.Equal(o.Val)
}

func (d Decimal) String() string { return d.Val.String() }

// Text is a string literal, already escape-decoded.
type Text string

func (Text) Kind() Kind { return KindText }

func (t Text) Equal(other Value) bool {
	o, ok := other.(Text)
	return ok && t == o
}

func (t Text) String() string { return strconv.Quote(string(t)) }

// Symbol is an interned-name-like value. All three source spellings (bare,
// single-quoted, double-quoted) decode to the same payload.
type Symbol string

func (Symbol) Kind() Kind { return KindSymbol }

func (s Symbol) Equal(other Value) bool {
	o, ok := other.(Symbol)
	return ok && s == o
}

func (s Symbol) String() string { return ":" + string(s) }

// Pattern is a regular-expression literal. The source is kept verbatim,
// escapes included; it is never compiled by the parser.
type Pattern struct {
	Source          string
	CaseInsensitive bool
	Extended        bool
	Multiline       bool
	// Encoding is the optional encoding-hint flag letter (one of nNeEsSuU),
	// or zero if absent.
	Encoding rune
}

func (Pattern) Kind() Kind { return KindPattern }

func (p Pattern) Equal(other Value) bool {
	o, ok := other.(Pattern)
	return ok && p == o
}

func (p Pattern) String() string {
	var flags strings.Builder
	if p.CaseInsensitive {
		flags.WriteByte('i')
	}
	if p.Extended {
		flags.WriteByte('x')
	}
	if p.Multiline {
		flags.WriteByte('m')
	}
	if p.Encoding != 0 {
		flags.WriteRune(p.Encoding)
	}
	return "/" + p.Source + "/" + flags.String()
}

// Date is a calendar date literal.
type Date struct {
	Year, Month, Day int
}

func (Date) Kind() Kind { return KindDate }

func (d Date) Equal(other Value) bool {
	o, ok := other.(Date)
	return ok && d == o
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// DateTime is a calendar date and time of day. A bare time literal also
// produces one of these, combined with the current date at parse time.
type DateTime struct {
	Year, Month, Day     int
	Hour, Minute, Second int
}

func (DateTime) Kind() Kind { return KindDateTime }

func (d DateTime) Equal(other Value) bool {
	o, ok := other.(DateTime)
	return ok && d == o
}

func (d DateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d",
		d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second)
}

// Sequence is an ordered collection of values.
type Sequence []Value

func (Sequence) Kind() Kind { return KindSequence }

func (s Sequence) Equal(other Value) bool {
	o, ok := other.(Sequence)
	if !ok || len(s) != len(o) {
		return false
	}
	for i := range s {
		if !s[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

func (s Sequence) String() string {
	elems := make([]string, len(s))
	for i, v := range s {
		elems[i] = v.String()
	}
	return "[" + strings.Join(elems, ", ") + "]"
}

// Pair is one mapping entry.
type Pair struct {
	Key, Value Value
}

// Mapping is an ordered list of key/value pairs. Keys are unrestricted in
// type and compared with Equal.
type Mapping []Pair

func (Mapping) Kind() Kind { return KindMapping }

// Put inserts or replaces the entry for key. An entry whose key is Equal to
// an existing one replaces that entry's value in place, keeping its original
// position; otherwise the pair is appended.
func (m *Mapping) Put(key, value Value) {
	for i, p := range *m {
		if p.Key.Equal(key) {
			(*m)[i].Value = value
			return
		}
	}
	*m = append(*m, Pair{Key: key, Value: value})
}

// Get returns the value for the first key Equal to key.
func (m Mapping) Get(key Value) (Value, bool) {
	for _, p := range m {
		if p.Key.Equal(key) {
			return p.Value, true
		}
	}
	return nil, false
}

func (m Mapping) Equal(other Value) bool {
	o, ok := other.(Mapping)
	if !ok || len(m) != len(o) {
		return false
	}
	for i := range m {
		if !m[i].Key.Equal(o[i].Key) || !m[i].Value.Equal(o[i].Value) {
			return false
		}
	}
	return true
}

func (m Mapping) String() string {
	elems := make([]string, len(m))
	for i, p := range m {
		elems[i] = p.Key.String() + " => " + p.Value.String()
	}
	return "{" + strings.Join(elems, ", ") + "}"
}

// Reference is the result of resolving a dotted constant name against the
// caller-supplied resolver. Target is whatever the resolver returned and is
// opaque to the parser.
type Reference struct {
	Name   string
	Target any
}

func (Reference) Kind() Kind { return KindReference }

func (r Reference) Equal(other Value) bool {
	o, ok := other.(Reference)
	return ok && r.Name == o.Name && reflect.DeepEqual(r.Target, o.Target)
}

func (r Reference) String() string { return r.Name }

// ToNative converts a value tree to plain Go values: nil, bool, int64 (or a
// decimal string for integers that overflow int64), float64, string, []any,
// and map[string]any. Mapping keys are rendered with String (Text and Symbol
// keys keep just their payload), so insertion order and non-string key
// structure are not preserved. Reference values yield their resolver target.
func ToNative(v Value) any {
	switch v := v.(type) {
	case Null:
		return nil
	case Bool:
		return bool(v)
	case Int:
		if i, ok := v.Int64(); ok {
			return i
		}
		return v.Val.String()
	case Float:
		return float64(v)
	case Decimal:
		return v.Val.String()
	case Text:
		return string(v)
	case Symbol:
		return string(v)
	case Pattern:
		return v.String()
	case Date:
		return v.String()
	case DateTime:
		return v.String()
	case Sequence:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = ToNative(e)
		}
		return out
	case Mapping:
		out := make(map[string]any, len(v))
		for _, p := range v {
			var key string
			switch k := p.Key.(type) {
			case Text:
				key = string(k)
			case Symbol:
				key = string(k)
			default:
				key = p.Key.String()
			}
			out[key] = ToNative(p.Value)
		}
		return out
	case Reference:
		return v.Target
	}
	return nil
}
