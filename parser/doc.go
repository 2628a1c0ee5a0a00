// Package parser implements the recursive-descent scanner for literal
// values. There is no separate tokenizer stage: each grammar alternative is
// an anchored pattern tried at the cursor in a fixed priority order, and
// value construction happens as soon as a pattern matches, recursing for
// the elements of sequence and mapping literals.
//
// Most callers want the top-level entry point in the root package, which
// adds the end-of-input check. Package parser is exported for manual mode:
// driving successive ScanValue calls over one buffer that contains several
// back-to-back literals.
package parser
