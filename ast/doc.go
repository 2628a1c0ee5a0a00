// Package ast defines the value model produced by parsing a literal: a
// closed tagged union with one variant per recognized literal form, plus the
// source-position type used by parse errors.
//
// Values are immutable once returned by the parser, with the usual Go
// caveats for the slice-backed Sequence and Mapping types and for the
// pointer inside Int. Nothing in this package retains parser state; values
// can be freely shared across goroutines as long as they are not mutated.
package ast
