// Package reporter defines the error surface of the literal parser. There
// is exactly one kind of failure: a syntax error carrying the position at
// which matching broke down. Every error produced here matches ErrSyntax
// with errors.Is, keeping the taxonomy flat for callers.
package reporter

import (
	"errors"
	"fmt"

	"github.com/jhump/litparse/ast"
)

// ErrSyntax is the sentinel that all parse failures match. Callers that do
// not care about the position or message can test for it with errors.Is.
var ErrSyntax = errors.New("invalid literal syntax")

// ErrorWithPos is an error about literal text that includes the position
// that caused the error.
//
// The value of Error() contains both the position and the underlying
// message. The value of Unwrap() is only the underlying error.
type ErrorWithPos interface {
	error
	GetPosition() ast.SourcePos
	Unwrap() error
}

// Error wraps err with the given position.
func Error(pos ast.SourcePos, err error) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: err}
}

// Errorf is Error with fmt.Errorf applied to the arguments first.
func Errorf(pos ast.SourcePos, format string, args ...any) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: fmt.Errorf(format, args...)}
}

type errorWithSourcePos struct {
	underlying error
	pos        ast.SourcePos
}

func (e errorWithSourcePos) Error() string {
	return fmt.Sprintf("%s: %v", e.pos, e.underlying)
}

// GetPosition implements the ErrorWithPos interface, supplying the position
// in the literal text that caused the error.
func (e errorWithSourcePos) GetPosition() ast.SourcePos {
	return e.pos
}

// Unwrap implements the ErrorWithPos interface, supplying the underlying
// error without location information.
func (e errorWithSourcePos) Unwrap() error {
	return e.underlying
}

// Is reports every positioned error as an ErrSyntax match. The parser has a
// single flat error kind; resolution failures and numeric conversion
// failures are deliberately not distinguishable by type.
func (e errorWithSourcePos) Is(target error) bool {
	return target == ErrSyntax
}

var _ ErrorWithPos = errorWithSourcePos{}
