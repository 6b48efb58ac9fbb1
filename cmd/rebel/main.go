package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"rebel/internal/version"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rebel",
		Short: "Inspect and check the rebel vocabulary",
		Long: `rebel lists the vocabulary catalogue, previews textual expansions,
evaluates the numeric utilities, prints primitive layouts and runs the
catalogue's properties as a self-check.`,
		Version:           version.Version,
		SilenceUsage:      true,
		PersistentPreRunE: prepare,
	}

	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().String("config", "", "path to rebel.toml (default: search upward)")
	root.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	root.PersistentFlags().Bool("timings", false, "show timing information")
	root.PersistentFlags().String("trace", "", "trace output file (- for stderr)")
	root.PersistentFlags().String("trace-level", "", "trace level (off|error|phase|detail|debug)")
	root.PersistentFlags().String("trace-format", "", "trace format (text|ndjson)")
	root.PersistentFlags().String("cpu-profile", "", "write a CPU profile to this file")
	root.PersistentFlags().String("mem-profile", "", "write a heap profile to this file on exit")

	root.AddCommand(newCatalogueCmd())
	root.AddCommand(newExpandCmd())
	root.AddCommand(newEvalCmd())
	root.AddCommand(newLayoutCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newVersionCmd())

	// finish runs even when the command fails
	for _, c := range root.Commands() {
		if run := c.RunE; run != nil {
			c.RunE = func(cmd *cobra.Command, args []string) error {
				defer finish(cmd)
				return run(cmd, args)
			}
		}
	}
	return root
}

// main builds the command tree and runs it; any error exits with status 1.
func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// terminalWidth is the width of stdout, or 0 when it is not a terminal.
func terminalWidth() int {
	if !isTerminal(os.Stdout) {
		return 0
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return w
}
