package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommandJSON(t *testing.T) {
	out, err := run(t, "", "--format", "json", `{:a => [1, true]}`)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": [\n    1,\n    true\n  ]\n}\n", out)
}

func TestCommandYAML(t *testing.T) {
	out, err := run(t, "", `[1, 2]`)
	require.NoError(t, err)
	assert.Equal(t, "- 1\n- 2\n", out)
}

func TestCommandStdin(t *testing.T) {
	out, err := run(t, "0x1f\n", "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, "31\n", out)
}

func TestCommandDecimalMode(t *testing.T) {
	out, err := run(t, "", "--decimal", "--format", "json", "12.370")
	require.NoError(t, err)
	assert.Equal(t, "\"12.370\"\n", out)
}

func TestCommandErrors(t *testing.T) {
	_, err := run(t, "", "@nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized literal")

	_, err = run(t, "", "--format", "toml", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}
