package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rebel/internal/catalog"
	"rebel/internal/trace"
)

func newCatalogueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "catalogue [NAME...]",
		Aliases: []string{"catalog", "ls"},
		Short:   "List the vocabulary catalogue",
		Long: `List every catalogue name with its group, Go spelling and notes.
Names given as arguments restrict the listing; lookup ignores case.`,
		RunE: runCatalogue,
	}
	cmd.Flags().String("group", "", "only list one group (primitive|declaration|control|utility)")
	cmd.Flags().String("format", "", "output format (text|json|msgpack|toml)")
	cmd.Flags().Int("width", 0, "maximum line width for text output (0: terminal width)")
	return cmd
}

func runCatalogue(cmd *cobra.Command, args []string) error {
	s := settingsOf(cmd)

	format, err := catalog.ParseFormat(stringFlag(cmd, "format", s.cfg.Output.Format))
	if err != nil {
		return err
	}
	width, err := intFlag(cmd, "width", s.cfg.Output.Width)
	if err != nil {
		return err
	}
	if width == 0 {
		width = terminalWidth()
	}

	entries := catalog.All()
	if g := stringFlag(cmd, "group", ""); g != "" {
		group, ok := catalog.ParseGroup(g)
		if !ok {
			return fmt.Errorf("unknown group %q", g)
		}
		entries = catalog.ByGroup(group)
	}
	if len(args) > 0 {
		entries, err = selectEntries(entries, args)
		if err != nil {
			return err
		}
	}

	span := trace.Begin(trace.FromContext(cmd.Context()), trace.ScopeGroup, "catalogue", trace.CurrentSpan(cmd.Context())).
		WithExtra("format", string(format))
	defer span.End(fmt.Sprintf("%d entries", len(entries)))

	idx := s.timer.Begin("render")
	defer s.timer.End(idx, string(format))
	return catalog.Export(cmd.OutOrStdout(), entries, format, catalog.RenderOptions{Width: width, Color: s.color})
}

func selectEntries(from []catalog.Entry, names []string) ([]catalog.Entry, error) {
	var out []catalog.Entry
	var missing []string
	for _, n := range names {
		e, ok := catalog.Lookup(n)
		if !ok {
			missing = append(missing, n)
			continue
		}
		for _, f := range from {
			if f.Name == e.Name {
				out = append(out, f)
				break
			}
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("unknown names: %s", strings.Join(missing, ", "))
	}
	return out, nil
}
