// Package diag defines the diagnostic model used by the catalogue self-check.
//
// A Diagnostic names the catalogue entry and the property it concerns
// instead of a source span: the vocabulary has no source of its own.
// Producers emit through a Reporter; BagReporter collects into a Bag, which
// supports limits, sorting and deduplication. FormatGolden renders a stable
// one-line-per-entry form for tests and CLI short output.
package diag
