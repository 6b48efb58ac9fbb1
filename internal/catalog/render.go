package catalog

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// RenderOptions controls the text table.
type RenderOptions struct {
	// Width limits each line; the last column is truncated to fit. 0 means
	// unlimited.
	Width int
	// Color styles the header and the group column.
	Color bool
}

const (
	colSep      = "  "
	minNoteWide = 12
)

var tableHeader = [...]string{"SIGNATURE", "GROUP", "GO", "NOTE"}

// Render writes entries as an aligned table.
func Render(w io.Writer, entries []Entry, opts RenderOptions) error {
	rows := make([][4]string, 0, len(entries)+1)
	rows = append(rows, tableHeader)
	for _, e := range entries {
		rows = append(rows, [4]string{e.Signature(), string(e.Group), e.Go, e.Note})
	}

	var widths [3]int
	for _, r := range rows {
		for c := range widths {
			widths[c] = max(widths[c], runewidth.StringWidth(r[c]))
		}
	}
	noteWidth := 0
	if opts.Width > 0 {
		used := 0
		for _, wd := range widths {
			used += wd + len(colSep)
		}
		noteWidth = max(opts.Width-used, minNoteWide)
	}

	headerStyle := lipgloss.NewStyle().Bold(true)
	var b strings.Builder
	for i, r := range rows {
		var line strings.Builder
		for c, wd := range widths {
			cell := runewidth.FillRight(r[c], wd)
			switch {
			case !opts.Color:
			case i == 0:
				cell = headerStyle.Render(cell)
			case c == 1:
				cell = groupStyle(Group(r[c])).Render(cell)
			}
			line.WriteString(cell)
			line.WriteString(colSep)
		}
		last := truncate(r[3], noteWidth)
		if opts.Color && i == 0 {
			last = headerStyle.Render(last)
		}
		line.WriteString(last)
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// RenderExpansion writes an expansion preview with its hazard counts.
func RenderExpansion(w io.Writer, e Entry, out string, hz []Hazard) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n  => %s\n", e.Signature(), out)
	if e.Go != "" {
		fmt.Fprintf(&b, "  go: %s\n", e.Go)
	}
	for _, h := range hz {
		mark := ""
		if h.Repeated() {
			mark = "  (evaluated more than once)"
		}
		fmt.Fprintf(&b, "  %-10s x%d%s\n", h.Param, h.Count, mark)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func groupStyle(g Group) lipgloss.Style {
	switch g {
	case GroupPrimitive:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	case GroupDeclaration:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	case GroupControl:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
