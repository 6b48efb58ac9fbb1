package diag

// Reporter receives diagnostics from producers.
type Reporter interface {
	Report(sev Severity, code Code, subject Subject, msg string, notes ...Note)
}

// BagReporter stores reported diagnostics in a Bag.
type BagReporter struct {
	Bag *Bag
}

func (r BagReporter) Report(sev Severity, code Code, subject Subject, msg string, notes ...Note) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(&Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Subject:  subject,
		Notes:    append([]Note(nil), notes...),
	})
}

// NopReporter drops everything.
type NopReporter struct{}

func (NopReporter) Report(Severity, Code, Subject, string, ...Note) {}
