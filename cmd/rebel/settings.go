package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rebel/internal/config"
	"rebel/internal/observ"
	"rebel/internal/trace"
)

// settings is the merged view of rebel.toml and the global flags.
type settings struct {
	cfg     config.Config
	cfgPath string
	color   bool
	quiet   bool
	timings bool
	timer   *observ.Timer
	cleanup func()
}

type settingsKey struct{}

// prepare runs before every command: it loads configuration, resolves
// colour and installs the tracer.
func prepare(cmd *cobra.Command, _ []string) error {
	root := cmd.Root()
	timer := observ.NewTimer()
	idx := timer.Begin("config")

	cfgPath, err := root.PersistentFlags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	var file *config.File
	if cfgPath != "" {
		file, err = config.Load(cfgPath)
	} else {
		file, err = config.Discover(".")
	}
	if err != nil {
		return err
	}
	timer.End(idx, file.Path)

	s := &settings{cfg: file.Config, cfgPath: file.Path, timer: timer}

	colorFlag := root.PersistentFlags().Lookup("color")
	colorValue := s.cfg.Output.Color
	if colorFlag.Changed {
		colorValue = colorFlag.Value.String()
	}
	mode, err := readColorMode(colorValue)
	if err != nil {
		return err
	}
	s.color = shouldUseColor(mode)
	color.NoColor = !s.color

	if s.quiet, err = root.PersistentFlags().GetBool("quiet"); err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = root.PersistentFlags().GetBool("timings"); err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	stopTracing, err := setupTracing(cmd, s.cfg.Trace)
	if err != nil {
		stopProfiling()
		return err
	}
	s.cleanup = func() {
		stopTracing()
		stopProfiling()
	}
	source := s.cfgPath
	if source == "" {
		source = "defaults"
	}
	trace.Point(trace.FromContext(cmd.Context()), trace.ScopeDriver, "config", source, trace.CurrentSpan(cmd.Context()))

	cmd.SetContext(context.WithValue(cmd.Context(), settingsKey{}, s))
	return nil
}

// finish prints timings and releases the tracer.
func finish(cmd *cobra.Command) {
	s := settingsOf(cmd)
	if s.timings {
		fmt.Fprint(cmd.ErrOrStderr(), s.timer.Summary())
	}
	if s.cleanup != nil {
		s.cleanup()
	}
}

func settingsOf(cmd *cobra.Command) *settings {
	if s, ok := cmd.Context().Value(settingsKey{}).(*settings); ok {
		return s
	}
	return &settings{cfg: config.Default(), timer: observ.NewTimer()}
}

// stringFlag returns the flag value when it was set on the command line,
// otherwise fallback.
func stringFlag(cmd *cobra.Command, name, fallback string) string {
	f := cmd.Flags().Lookup(name)
	if f == nil || !f.Changed {
		return fallback
	}
	return f.Value.String()
}

func intFlag(cmd *cobra.Command, name string, fallback int) (int, error) {
	f := cmd.Flags().Lookup(name)
	if f == nil || !f.Changed {
		return fallback, nil
	}
	return cmd.Flags().GetInt(name)
}
