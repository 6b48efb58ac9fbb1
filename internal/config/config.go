// Package config loads rebel.toml, the optional defaults file for the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"rebel/internal/catalog"
	"rebel/internal/layout"
	"rebel/internal/trace"
)

// FileName is the file searched for from the working directory upward.
const FileName = "rebel.toml"

type Config struct {
	Output OutputConfig `toml:"output"`
	Check  CheckConfig  `toml:"check"`
	Layout LayoutConfig `toml:"layout"`
	Trace  TraceConfig  `toml:"trace"`
}

type OutputConfig struct {
	Format string `toml:"format"` // text|json|msgpack|toml
	Color  string `toml:"color"`  // auto|on|off
	Width  int    `toml:"width"`
}

type CheckConfig struct {
	Jobs           int    `toml:"jobs"`
	Samples        int    `toml:"samples"`
	Seed           uint64 `toml:"seed"`
	MaxDiagnostics int    `toml:"max_diagnostics"`
}

type LayoutConfig struct {
	Target string `toml:"target"`
}

type TraceConfig struct {
	Level  string `toml:"level"`
	Output string `toml:"output"`
	Format string `toml:"format"`
}

// Default is the configuration used when no file is found.
func Default() Config {
	return Config{
		Output: OutputConfig{Format: string(catalog.FormatText), Color: "auto"},
		Check:  CheckConfig{Samples: 256, Seed: 1, MaxDiagnostics: 32},
		Layout: LayoutConfig{Target: "host"},
		Trace:  TraceConfig{Level: "off", Output: "stderr", Format: "text"},
	}
}

// File is a loaded configuration and where it came from.
type File struct {
	Path   string // empty when defaults are used
	Config Config
}

// Find walks from startDir up to the filesystem root looking for rebel.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover finds and loads rebel.toml above startDir, falling back to
// Default when there is none.
func Discover(startDir string) (*File, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &File{Config: Default()}, nil
	}
	return Load(path)
}

// Load decodes path over the defaults and validates it.
func Load(path string) (*File, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &File{Path: path, Config: cfg}, nil
}

// Validate checks every enumerated value.
func (c Config) Validate() error {
	if _, err := catalog.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("[output].format: %w", err)
	}
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("[output].color: %q is not auto, on or off", c.Output.Color)
	}
	if c.Output.Width < 0 {
		return fmt.Errorf("[output].width: must not be negative")
	}
	if c.Check.Jobs < 0 || c.Check.Samples < 0 || c.Check.MaxDiagnostics < 0 {
		return fmt.Errorf("[check]: jobs, samples and max_diagnostics must not be negative")
	}
	if _, ok := layout.TargetByName(c.Layout.Target); !ok {
		return fmt.Errorf("[layout].target: unknown target %q", c.Layout.Target)
	}
	if _, err := trace.ParseLevel(c.Trace.Level); err != nil {
		return fmt.Errorf("[trace].level: %w", err)
	}
	if _, err := trace.ParseFormat(c.Trace.Format); err != nil {
		return fmt.Errorf("[trace].format: %w", err)
	}
	return nil
}
