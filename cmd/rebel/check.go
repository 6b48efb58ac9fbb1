package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rebel/internal/check"
	"rebel/internal/diag"
	"rebel/internal/diagfmt"
	"rebel/internal/layout"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [ENTRY...]",
		Short: "Run the catalogue's properties as a self-check",
		Long: `Run every built-in property (or only those about the given catalogue
names) and report violations. Exits with status 1 when any property fails.`,
		RunE: runCheck,
	}
	cmd.Flags().Int("jobs", 0, "parallel properties (0: GOMAXPROCS)")
	cmd.Flags().Int("samples", 0, "random samples per property")
	cmd.Flags().Uint64("seed", 0, "random seed")
	cmd.Flags().Int("max-diagnostics", 0, "diagnostics kept per property")
	cmd.Flags().String("target", "", "layout target (host|x86_64-linux-gnu|i386-linux-gnu)")
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	cmd.Flags().BoolP("verbose", "v", false, "also print informational diagnostics and notes")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	s := settingsOf(cmd)
	cfg := s.cfg.Check

	jobs, err := intFlag(cmd, "jobs", cfg.Jobs)
	if err != nil {
		return err
	}
	samples, err := intFlag(cmd, "samples", cfg.Samples)
	if err != nil {
		return err
	}
	maxDiag, err := intFlag(cmd, "max-diagnostics", cfg.MaxDiagnostics)
	if err != nil {
		return err
	}
	seed := cfg.Seed
	if cmd.Flags().Changed("seed") {
		if seed, err = cmd.Flags().GetUint64("seed"); err != nil {
			return err
		}
	}
	targetName := stringFlag(cmd, "target", s.cfg.Layout.Target)
	target, ok := layout.TargetByName(targetName)
	if !ok {
		return fmt.Errorf("unknown target %q", targetName)
	}
	format := strings.ToLower(stringFlag(cmd, "format", "pretty"))
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
	verbose, _ := cmd.Flags().GetBool("verbose")

	props, err := selectProperties(check.Default(), args)
	if err != nil {
		return err
	}

	res, err := check.Run(cmd.Context(), props, check.Options{
		Jobs:           jobs,
		Samples:        samples,
		Seed:           seed,
		MaxDiagnostics: maxDiag,
		Target:         target,
		Timer:          s.timer,
	})
	if err != nil {
		return err
	}
	res.Bag.Sort()

	out := cmd.OutOrStdout()
	if format == "json" {
		err = diagfmt.JSON(out, res.Bag, diagfmt.JSONOpts{IncludeNotes: true})
	} else {
		minSev := diag.SevWarning
		if verbose {
			minSev = diag.SevInfo
		}
		err = diagfmt.Pretty(out, res.Bag, diagfmt.PrettyOpts{Color: s.color, ShowNotes: verbose, MinSeverity: minSev})
		if err == nil && !s.quiet {
			err = diagfmt.Summary(out, res.Passed(), res.Failed(), s.color)
		}
	}
	if err != nil {
		return err
	}
	if res.Failed() > 0 {
		cmd.SilenceErrors = true
		return fmt.Errorf("%d properties failed", res.Failed())
	}
	return nil
}

// selectProperties keeps the properties about the named entries. Property
// names are accepted too, e.g. "single-evaluation".
func selectProperties(all []check.Property, names []string) ([]check.Property, error) {
	if len(names) == 0 {
		return all, nil
	}
	var out []check.Property
	for _, n := range names {
		matched := false
		for _, p := range all {
			if strings.EqualFold(p.Entry, n) || p.Name == n {
				out = append(out, p)
				matched = true
			}
		}
		if !matched {
			return nil, fmt.Errorf("no property covers %q", n)
		}
	}
	return out, nil
}
