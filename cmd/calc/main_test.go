package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs calc with args and returns what it printed. The config file
// is absent unless args name one.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	cfg := []string{"--config", filepath.Join(t.TempDir(), "none.yaml")}
	root.SetArgs(append(cfg, args...))
	err := root.Execute()
	return out.String(), err
}

func TestPressArgs(t *testing.T) {
	out, err := execute(t, "", "press", "2+2=", "1/0=", "(2(", "12c", "3 x 4")
	require.NoError(t, err)
	assert.Equal(t, "4\nerror: 1÷0\n(2) = 2\n0\n3×4 = 12\n", out)
}

func TestPressStdinTrace(t *testing.T) {
	out, err := execute(t, "2×3=\n\n5!\n", "press", "--trace")
	require.NoError(t, err)
	want := strings.Join([]string{
		"\tInput(\"2\", \"2\")",
		"\tInput(\"2×\", \"\")",
		"\tInput(\"2×3\", \"6\")",
		"\tSuccess(\"6\")",
		"6",
		"\tInput(\"5\", \"5\")",
		"\tInput(\"5!\", \"120\")",
		"5! = 120",
		"",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestPressFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.txt")
	require.NoError(t, os.WriteFile(path, []byte("p=\n2^10=\n"), 0o644))
	out, err := execute(t, "", "press", "--in", path, "√16=")
	require.NoError(t, err)
	assert.Equal(t, "3,14159265358979\n1024\n4\n", out)

	_, err = execute(t, "", "press", "--in", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestPressUnknownKey(t *testing.T) {
	_, err := execute(t, "", "press", "1+1=", "2$")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input 2")
	assert.Contains(t, err.Error(), "unknown key '$'")
}

func TestPressFlags(t *testing.T) {
	out, err := execute(t, "", "--digits", "3", "press", "1/3=")
	require.NoError(t, err)
	assert.Equal(t, "0,333\n", out)

	_, err = execute(t, "", "--digits", "0", "press", "1/3=")
	assert.Error(t, err)
	_, err = execute(t, "", "--prec", "0", "press", "1/3=")
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.yaml")
	src := "digits: 4\nkeys:\n  quit: [\"ctrl+d\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	out, err := execute(t, "", "--config", path, "press", "2÷3=")
	require.NoError(t, err)
	assert.Equal(t, "0,6667\n", out)

	// Flags override the file.
	out, err = execute(t, "", "--config", path, "--digits", "2", "press", "2÷3=")
	require.NoError(t, err)
	assert.Equal(t, "0,67\n", out)

	out, err = execute(t, "", "--config", path, "keys", "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, "| `ctrl+d` | quit |")

	require.NoError(t, os.WriteFile(path, []byte("digits: many\n"), 0o644))
	_, err = execute(t, "", "--config", path, "press", "1")
	assert.Error(t, err)
}

func TestKeys(t *testing.T) {
	out, err := execute(t, "", "keys", "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, "| `enter/=` | evaluate |")
	assert.Contains(t, out, "| `esc/c` | clear |")
	assert.Contains(t, out, "| `π` `p` | Pi `π` |")
	assert.Contains(t, out, "| `*` `x` `×` | Multiply `×` |")

	out, err = execute(t, "", "keys")
	require.NoError(t, err)
	assert.Contains(t, out, "evaluate")
}

func TestRootRejectsArgs(t *testing.T) {
	_, err := execute(t, "", "2+2")
	assert.Error(t, err)
}

func TestEvalArgs(t *testing.T) {
	out, err := execute(t, "", "eval", "--given", "x=3", "2+2", "x*x+1; 2x", "sqrt(16)")
	require.NoError(t, err)
	assert.Equal(t, "4\n10\n6\n4\n", out)

	out, err = execute(t, "", "eval", "--fmt", "%.2f", "1/3")
	require.NoError(t, err)
	assert.Equal(t, "0.33\n", out)
}

func TestEvalLines(t *testing.T) {
	out, err := execute(t, "1+1\n\n3×4\n", "eval", "--lines")
	require.NoError(t, err)
	assert.Equal(t, "2\n12\n", out)

	// Without --lines, the newline is only space and the terms multiply.
	out, err = execute(t, "1+1\n\n3×4\n", "eval")
	require.NoError(t, err)
	assert.Equal(t, "13\n", out)
}

func TestEvalErrors(t *testing.T) {
	out, err := execute(t, "", "eval", "y+1", "2÷2")
	require.NoError(t, err)
	assert.Equal(t, "undefined variable: \"y\"\n1\n", out)

	out, err = execute(t, "", "eval", "--echo", "2+3")
	require.NoError(t, err)
	assert.Equal(t, "([2] + [3]) : 5\n", out)

	_, err = execute(t, "", "eval", "2+")
	assert.Error(t, err)
	_, err = execute(t, "", "eval", "--given", "x", "x")
	assert.Error(t, err)
	_, err = execute(t, "", "eval", "--given", "x=y", "x")
	assert.Error(t, err)
}
