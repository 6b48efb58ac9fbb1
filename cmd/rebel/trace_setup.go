package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rebel/internal/config"
	"rebel/internal/trace"
)

// setupTracing merges the trace flags over the [trace] table and installs
// the tracer in the command context. It returns a cleanup function.
func setupTracing(cmd *cobra.Command, cfg config.TraceConfig) (func(), error) {
	root := cmd.Root()

	traceOutput := cfg.Output
	if f := root.PersistentFlags().Lookup("trace"); f.Changed {
		traceOutput = f.Value.String()
	}
	levelStr := cfg.Level
	if f := root.PersistentFlags().Lookup("trace-level"); f.Changed {
		levelStr = f.Value.String()
	}
	formatStr := cfg.Format
	if f := root.PersistentFlags().Lookup("trace-format"); f.Changed {
		formatStr = f.Value.String()
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("invalid trace level: %w", err)
	}
	// --trace alone implies phase-level tracing
	if level == trace.LevelOff && root.PersistentFlags().Lookup("trace").Changed {
		level = trace.LevelPhase
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func() {}, nil
	}

	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return nil, fmt.Errorf("invalid trace format: %w", err)
	}
	if traceOutput == "stderr" {
		traceOutput = "-"
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Format:     format,
		OutputPath: traceOutput,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}

	ctx := trace.WithTracer(cmd.Context(), tracer)
	span := trace.Begin(tracer, trace.ScopeDriver, cmd.CommandPath(), 0)
	cmd.SetContext(trace.WithSpan(ctx, span))

	return func() {
		span.End("")
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}, nil
}
