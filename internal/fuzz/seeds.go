package fuzztests

import (
	"strings"
	"testing"

	"rebel/internal/catalog"
)

const maxFuzzInput = 1 << 12

// addCatalogueSeeds seeds f with every name applied to its own parameter
// list plus a few nested and malformed fragments.
func addCatalogueSeeds(f *testing.F) {
	for _, e := range catalog.All() {
		f.Add(e.Signature())
		f.Add(e.Name + "(" + strings.Repeat("x,", len(e.Params)) + ")")
	}
	for _, s := range []string{
		"IF(x) THEN y = MAX(a, MIN(b, c)); END ELSE BEGIN RETURN(0); END",
		`FOREACH(p, xs) DO puts("CLAMP(1,2"); DONE`,
		"CLAMP(CLAMP(CLAMP(x, 0, 1), 0, 1), 0, 1)",
		"MAX((a, b), c)",
		"SQR(",
		"'\\''",
		"RANGE(1,5,1) BEGIN BREAK; END",
	} {
		f.Add(s)
	}
}

func clip(s string) string {
	if len(s) > maxFuzzInput {
		return s[:maxFuzzInput]
	}
	return s
}
