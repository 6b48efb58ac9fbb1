package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"rebel/decl"
	"rebel/internal/layout"
	"rebel/prim"
)

func newLayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print sizes and alignments of the primitives",
		Long: `Print the size and alignment of every primitive alias on a target.
--struct and --union declare an aggregate over primitive names and print
its layout, e.g.

  rebel layout --struct 'Point:x=INT,y=INT'
  rebel layout --union 'Num:i=INT,r=REAL' --target i386-linux-gnu`,
		Args: cobra.NoArgs,
		RunE: runLayout,
	}
	cmd.Flags().String("target", "", "target (host|x86_64-linux-gnu|i386-linux-gnu)")
	cmd.Flags().StringArray("struct", nil, "declare a struct NAME:FIELD=TYPE,...")
	cmd.Flags().StringArray("union", nil, "declare a union NAME:FIELD=TYPE,...")
	cmd.Flags().Bool("json", false, "print layouts as JSON")
	return cmd
}

type layoutRow struct {
	Name    string `json:"name"`
	Go      string `json:"go,omitempty"`
	Host    string `json:"host,omitempty"`
	Size    int    `json:"size"`
	Align   int    `json:"align"`
	Offsets []int  `json:"offsets,omitempty"`
	// Storage is the untagged size of a union.
	Storage int `json:"storage,omitempty"`
}

type layoutPayload struct {
	Target string      `json:"target"`
	Rows   []layoutRow `json:"rows"`
}

func runLayout(cmd *cobra.Command, _ []string) error {
	s := settingsOf(cmd)
	name := stringFlag(cmd, "target", s.cfg.Layout.Target)
	target, ok := layout.TargetByName(name)
	if !ok {
		return fmt.Errorf("unknown target %q", name)
	}
	le := layout.New(target)

	var rows []layoutRow
	for _, a := range prim.Aliases() {
		l, err := le.LayoutOf(a.Type)
		if err != nil {
			return fmt.Errorf("%s: %w", a.Name, err)
		}
		rows = append(rows, layoutRow{Name: a.Name, Go: "prim." + a.GoName, Host: a.Host, Size: l.Size, Align: l.Align})
	}

	structs, _ := cmd.Flags().GetStringArray("struct")
	for _, arg := range structs {
		name, fields, err := parseAggregate(arg)
		if err != nil {
			return err
		}
		sd, err := decl.Struct(name, fields...)
		if err != nil {
			return err
		}
		l, err := sd.Layout(le)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		rows = append(rows, layoutRow{Name: name, Go: "struct", Size: l.Size, Align: l.Align, Offsets: l.FieldOffsets})
	}
	unions, _ := cmd.Flags().GetStringArray("union")
	for _, arg := range unions {
		name, fields, err := parseAggregate(arg)
		if err != nil {
			return err
		}
		ud, err := decl.Union(name, fields...)
		if err != nil {
			return err
		}
		tagged, err := ud.Layout(le)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		shared, err := ud.StorageLayout(le)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		rows = append(rows, layoutRow{Name: name, Go: "union", Size: tagged.Size, Align: tagged.Align,
			Offsets: []int{0, tagged.PayloadOffset}, Storage: shared.Size})
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return writeJSON(cmd, layoutPayload{Target: target.Triple, Rows: rows})
	}
	return renderLayout(cmd.OutOrStdout(), target, rows, s.color)
}

// parseAggregate reads "Name:field=TYPE,field=TYPE" where TYPE is a
// primitive catalogue name.
func parseAggregate(arg string) (string, []decl.Field, error) {
	name, body, ok := strings.Cut(arg, ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", nil, fmt.Errorf("aggregate %q: want NAME:FIELD=TYPE,...", arg)
	}
	var fields []decl.Field
	for part := range strings.SplitSeq(body, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fname, tname, ok := strings.Cut(part, "=")
		if !ok {
			return "", nil, fmt.Errorf("%s: field %q: want FIELD=TYPE", name, part)
		}
		a, ok := prim.Lookup(strings.ToUpper(strings.TrimSpace(tname)))
		if !ok {
			return "", nil, fmt.Errorf("%s.%s: unknown primitive %q", name, fname, tname)
		}
		fields = append(fields, decl.Field{Name: strings.TrimSpace(fname), Type: a.Type})
	}
	return name, fields, nil
}

func renderLayout(w io.Writer, target layout.Target, rows []layoutRow, useColor bool) error {
	header := []string{"NAME", "GO", "HOST", "SIZE", "ALIGN", "OFFSETS"}
	cells := [][]string{header}
	for _, r := range rows {
		offs := make([]string, len(r.Offsets))
		for i, o := range r.Offsets {
			offs[i] = fmt.Sprint(o)
		}
		extra := strings.Join(offs, " ")
		if r.Storage > 0 {
			extra += fmt.Sprintf(" (untagged %d)", r.Storage)
		}
		cells = append(cells, []string{r.Name, r.Go, r.Host, fmt.Sprint(r.Size), fmt.Sprint(r.Align), extra})
	}
	widths := make([]int, len(header))
	for _, row := range cells {
		for i, c := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(c))
		}
	}

	bold := lipgloss.NewStyle().Bold(true)
	var b strings.Builder
	title := "target " + target.Triple
	if useColor {
		title = bold.Render(title)
	}
	b.WriteString(title + "\n")
	for i, row := range cells {
		var line strings.Builder
		for c, cell := range row {
			if c > 0 {
				line.WriteString("  ")
			}
			if c == len(row)-1 {
				line.WriteString(cell)
				continue
			}
			line.WriteString(runewidth.FillRight(cell, widths[c]))
		}
		text := strings.TrimRight(line.String(), " ")
		if useColor && i == 0 {
			text = bold.Render(text)
		}
		b.WriteString(text + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
