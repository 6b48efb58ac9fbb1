// Package check runs the catalogue's testable properties as a self-check.
//
// Each Property exercises one catalogue name through its Go form (and, where
// useful, through internal/eval or the textual expansion) and reports
// violations as diagnostics. Properties run in parallel; every property gets
// its own bag and its own deterministic random source, so results do not
// depend on scheduling.
package check

import (
	"fmt"
	"math/rand/v2"

	"rebel/internal/diag"
	"rebel/internal/layout"
)

// Property is one named, self-contained check.
type Property struct {
	Entry string // catalogue name under test
	Name  string // e.g. "clamp-in-range"
	Run   func(c *Case)
}

func (p Property) Subject() diag.Subject {
	return diag.Subject{Entry: p.Entry, Property: p.Name}
}

// Case is the environment handed to a running property.
type Case struct {
	Samples int
	Rand    *rand.Rand
	Layout  *layout.LayoutEngine

	subject diag.Subject
	rep     diag.Reporter
	failed  bool
}

// Errorf records a violation.
func (c *Case) Errorf(format string, args ...any) {
	c.failed = true
	c.rep.Report(diag.SevError, diag.CheckViolation, c.subject, fmt.Sprintf(format, args...))
}

// Report records a diagnostic with an explicit code. Errors mark the case
// failed.
func (c *Case) Report(sev diag.Severity, code diag.Code, msg string, notes ...diag.Note) {
	if sev >= diag.SevError {
		c.failed = true
	}
	c.rep.Report(sev, code, c.subject, msg, notes...)
}

// Failed reports whether any error was recorded.
func (c *Case) Failed() bool { return c.failed }
