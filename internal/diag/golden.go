package diag

import (
	"sort"
	"strings"
)

// FormatGolden renders diagnostics one per line, sorted, as
//
//	error CHK1001 CLAMP/clamp-in-range message
//
// with notes on their own "note" lines when includeNotes is set.
func FormatGolden(diags []*Diagnostic, includeNotes bool) string {
	if len(diags) == 0 {
		return ""
	}
	sorted := make([]*Diagnostic, 0, len(diags))
	for _, d := range diags {
		if d != nil {
			sorted = append(sorted, d)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := sorted[i], sorted[j]
		if a, b := di.Subject.String(), dj.Subject.String(); a != b {
			return a < b
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})

	var sb strings.Builder
	for i, d := range sorted {
		if i > 0 {
			sb.WriteByte('\n')
		}
		writeLine(&sb, strings.ToLower(d.Severity.String()), d.Code.ID(), d.Subject.String(), d.Message)
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			sb.WriteByte('\n')
			writeLine(&sb, "note", d.Code.ID(), d.Subject.String(), n.Msg)
		}
	}
	return sb.String()
}

func writeLine(sb *strings.Builder, sev, code, subject, msg string) {
	sb.WriteString(sev)
	sb.WriteByte(' ')
	sb.WriteString(code)
	sb.WriteByte(' ')
	sb.WriteString(subject)
	sb.WriteByte(' ')
	sb.WriteString(strings.Join(strings.Fields(msg), " "))
}
