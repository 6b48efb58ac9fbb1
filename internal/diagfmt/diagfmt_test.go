package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"rebel/internal/diag"
)

func sampleBag() *diag.Bag {
	bag := diag.NewBag(8)
	bag.Add(&diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.CheckViolation,
		Message:  "CLAMP(5,0,3) = 4 is outside the range",
		Subject:  diag.Subject{Entry: "CLAMP", Property: "clamp-in-range"},
	})
	bag.Add(&diag.Diagnostic{
		Severity: diag.SevInfo,
		Code:     diag.CheckTextualHazard,
		Message:  "textual SQR repeats arguments",
		Subject:  diag.Subject{Property: "single-evaluation"},
		Notes:    []diag.Note{{Msg: "x appears 2 times in the expansion"}},
	})
	return bag
}

func TestPrettyPlain(t *testing.T) {
	var buf bytes.Buffer
	if err := Pretty(&buf, sampleBag(), PrettyOpts{ShowNotes: true}); err != nil {
		t.Fatal(err)
	}
	want := "ERROR CHK1001 CLAMP/clamp-in-range: CLAMP(5,0,3) = 4 is outside the range\n" +
		"INFO CHK1005 single-evaluation: textual SQR repeats arguments\n" +
		"  note: x appears 2 times in the expansion\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyMinSeverity(t *testing.T) {
	var buf bytes.Buffer
	if err := Pretty(&buf, sampleBag(), PrettyOpts{MinSeverity: diag.SevWarning}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "ERROR CHK1001 CLAMP/clamp-in-range: CLAMP(5,0,3) = 4 is outside the range\n" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := Summary(&buf, 3, 1, false); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "FAILED: 3 passed, 1 failed\n" {
		t.Fatalf("summary = %q", got)
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, sampleBag(), JSONOpts{Max: 1}); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 2 || len(out.Diagnostics) != 1 {
		t.Fatalf("count=%d len=%d, want 2 and 1", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Code != "CHK1001" || d.Entry != "CLAMP" || d.Property != "clamp-in-range" || d.Severity != "ERROR" {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
}
