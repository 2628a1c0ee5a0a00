package litparse

import "errors"

// ErrNotFound is returned by the resolver implementations in this package
// when a name has no binding. The parser folds it into the syntax error it
// reports for the unresolved constant.
var ErrNotFound = errors.New("name not found")

// Resolver maps dotted constant names to application objects. The parser
// never walks namespaces itself: it validates the identifier shape, then
// hands the full matched name (including any :: segments) and the
// configured base-namespace handle to the resolver and wraps whatever comes
// back.
type Resolver interface {
	ResolveName(namespace any, name string) (any, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(namespace any, name string) (any, error)

var _ Resolver = ResolverFunc(nil)

func (f ResolverFunc) ResolveName(namespace any, name string) (any, error) {
	return f(namespace, name)
}

// CompositeResolver tries each resolver in order and returns the first
// successful result. If none succeeds, the first error is returned.
type CompositeResolver []Resolver

var _ Resolver = CompositeResolver(nil)

func (c CompositeResolver) ResolveName(namespace any, name string) (any, error) {
	if len(c) == 0 {
		return nil, ErrNotFound
	}
	var firstErr error
	for _, r := range c {
		target, err := r.ResolveName(namespace, name)
		if err == nil {
			return target, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}

// MapResolver resolves names from a fixed table, ignoring the namespace
// handle. It is handy for tests and for applications with a closed set of
// referenceable objects.
type MapResolver map[string]any

var _ Resolver = MapResolver(nil)

func (m MapResolver) ResolveName(_ any, name string) (any, error) {
	target, ok := m[name]
	if !ok {
		return nil, ErrNotFound
	}
	return target, nil
}
