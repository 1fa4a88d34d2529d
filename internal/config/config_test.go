package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.yaml")
	src := `
precision: 128
digits: 10
logging:
  level: debug
  file: /tmp/calc.log
keys:
  evaluate: ["enter", "="]
  quit: ["ctrl+d"]
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint(128), cfg.Precision)
	assert.Equal(t, 10, cfg.Digits)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/calc.log", cfg.Logging.File)
	assert.Equal(t, []string{"enter", "="}, cfg.Keys.Evaluate)
	assert.Nil(t, cfg.Keys.Clear)
	assert.Equal(t, []string{"ctrl+d"}, cfg.Keys.Quit)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("digits: 6\n"), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint(64), cfg.Precision)
	assert.Equal(t, 6, cfg.Digits)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadInvalid(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"syntax", "precision: [\n"},
		{"type", "precision: lots\n"},
		{"zero-digits", "digits: 0\n"},
		{"many-digits", "digits: 40\n"},
		{"zero-prec", "precision: 0\n"},
		{"level", "logging:\n  level: loud\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "calc.yaml")
			require.NoError(t, os.WriteFile(path, []byte(c.src), 0o644))
			cfg, err := Load(path)
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.yaml")
	want := Default()
	want.Digits = -1
	want.Keys.Clear = []string{"esc"}
	require.NoError(t, want.Save(path))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "evaluate")
	assert.NotContains(t, string(b), "quit")
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
