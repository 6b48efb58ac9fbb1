// Package diagfmt renders self-check and evaluation diagnostics for the
// terminal and as JSON.
package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"rebel/internal/diag"
)

// Pretty prints one block per diagnostic:
//
//	<SEV> <CODE> <entry>/<property>: <message>
//	  note: <msg>
//
// bag.Sort() is expected beforehand.
func Pretty(w io.Writer, bag *diag.Bag, opts PrettyOpts) error {
	for _, d := range bag.Items() {
		if d.Severity < opts.MinSeverity {
			continue
		}
		sev := severityColor(d.Severity, opts.Color).Sprint(d.Severity.String())
		code := paint(opts.Color, color.Faint).Sprint(d.Code.ID())
		if _, err := fmt.Fprintf(w, "%s %s %s: %s\n", sev, code, d.Subject, d.Message); err != nil {
			return err
		}
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			label := paint(opts.Color, color.FgCyan).Sprint("note")
			if _, err := fmt.Fprintf(w, "  %s: %s\n", label, n.Msg); err != nil {
				return err
			}
		}
	}
	return nil
}

// Summary prints the closing "N passed, M failed" line.
func Summary(w io.Writer, passed, failed int, useColor bool) error {
	status := paint(useColor, color.FgGreen, color.Bold).Sprint("ok")
	if failed > 0 {
		status = paint(useColor, color.FgRed, color.Bold).Sprint("FAILED")
	}
	_, err := fmt.Fprintf(w, "%s: %d passed, %d failed\n", status, passed, failed)
	return err
}

func severityColor(s diag.Severity, useColor bool) *color.Color {
	switch s {
	case diag.SevError:
		return paint(useColor, color.FgRed, color.Bold)
	case diag.SevWarning:
		return paint(useColor, color.FgYellow, color.Bold)
	default:
		return paint(useColor, color.FgBlue)
	}
}

// paint builds a color that is forced on or off regardless of the global
// NoColor switch.
func paint(on bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if on {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
