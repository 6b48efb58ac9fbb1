package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"rebel/internal/config"
)

func writeFile(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, `
[output]
format = "json"
color = "off"

[check]
jobs = 2
seed = 99

[layout]
target = "i386-linux-gnu"
`)
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	f, err := config.Discover(nested)
	require.NoError(t, err)
	require.Equal(t, path, f.Path)
	require.Equal(t, "json", f.Config.Output.Format)
	require.Equal(t, "off", f.Config.Output.Color)
	require.Equal(t, 2, f.Config.Check.Jobs)
	require.Equal(t, uint64(99), f.Config.Check.Seed)
	require.Equal(t, "i386-linux-gnu", f.Config.Layout.Target)

	// unset keys keep their defaults
	require.Equal(t, 256, f.Config.Check.Samples)
	require.Equal(t, "off", f.Config.Trace.Level)
}

func TestDiscoverWithoutFile(t *testing.T) {
	f, err := config.Discover(t.TempDir())
	require.NoError(t, err)
	if f.Path != "" {
		// a rebel.toml above the temp dir is picked up; nothing more to check
		t.Skipf("found %s above the temp dir", f.Path)
	}
	require.Equal(t, config.Default(), f.Config)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"format":  "[output]\nformat = \"yaml\"\n",
		"color":   "[output]\ncolor = \"sometimes\"\n",
		"target":  "[layout]\ntarget = \"pdp11\"\n",
		"level":   "[trace]\nlevel = \"loud\"\n",
		"unknown": "[check]\nthreads = 4\n",
		"syntax":  "[check\n",
		"samples": "[check]\nsamples = -1\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), body)
			_, err := config.Load(path)
			require.Error(t, err)
			require.Contains(t, err.Error(), path)
		})
	}
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, config.Default().Validate())
}
