package litparse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapResolver(t *testing.T) {
	r := MapResolver{"A::B": 42}
	target, err := r.ResolveName(nil, "A::B")
	require.NoError(t, err)
	assert.Equal(t, 42, target)

	_, err = r.ResolveName(nil, "A::C")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolverFunc(t *testing.T) {
	r := ResolverFunc(func(namespace any, name string) (any, error) {
		return name + "!", nil
	})
	target, err := r.ResolveName(nil, "X")
	require.NoError(t, err)
	assert.Equal(t, "X!", target)
}

func TestCompositeResolver(t *testing.T) {
	boom := errors.New("boom")
	failing := ResolverFunc(func(any, string) (any, error) {
		return nil, boom
	})
	first := MapResolver{"A": 1, "Shared": "first"}
	second := MapResolver{"B": 2, "Shared": "second"}

	c := CompositeResolver{failing, first, second}

	// Falls through failures to the first success.
	target, err := c.ResolveName(nil, "A")
	require.NoError(t, err)
	assert.Equal(t, 1, target)

	target, err = c.ResolveName(nil, "B")
	require.NoError(t, err)
	assert.Equal(t, 2, target)

	// Earlier resolvers win when several have a binding.
	target, err = c.ResolveName(nil, "Shared")
	require.NoError(t, err)
	assert.Equal(t, "first", target)

	// When all fail, the first error is reported.
	_, err = c.ResolveName(nil, "Missing")
	assert.ErrorIs(t, err, boom)

	_, err = CompositeResolver{}.ResolveName(nil, "Anything")
	assert.ErrorIs(t, err, ErrNotFound)
}
