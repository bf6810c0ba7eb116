package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"uscl/internal/trace"
)

// setupTracing reads the trace flags, attaches a tracer to the command
// context, and returns a cleanup function.
func setupTracing(cmd *cobra.Command) (func(), error) {
	root := cmd.Root()

	traceOutput, err := root.PersistentFlags().GetString("trace")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := root.PersistentFlags().GetString("trace-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	// --trace without an explicit level means phase.
	if traceOutput != "" && level == trace.LevelOff {
		level = trace.LevelPhase
	}

	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func() {}, nil
	}

	if traceOutput == "" || traceOutput == "-" {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.NewStreamTracer(os.Stderr, level)))
		return func() {}, nil
	}

	f, err := os.Create(traceOutput)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace output: %w", err)
	}
	cmd.SetContext(trace.WithTracer(cmd.Context(), trace.NewStreamTracer(f, level)))
	return func() {
		if err := f.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}, nil
}
