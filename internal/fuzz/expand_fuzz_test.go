package fuzztests

import (
	"errors"
	"strings"
	"testing"

	"rebel/internal/catalog"
)

func FuzzExpandText(f *testing.F) {
	addCatalogueSeeds(f)
	f.Fuzz(func(t *testing.T, src string) {
		src = clip(src)
		out, err := catalog.ExpandText(src)
		if err != nil {
			if !errors.Is(err, catalog.ErrArity) && !errors.Is(err, catalog.ErrUnbalanced) && !errors.Is(err, catalog.ErrTooDeep) {
				t.Fatalf("unexpected error kind for %q: %v", src, err)
			}
			return
		}
		// a fully expanded fragment is a fixed point
		again, err := catalog.ExpandText(out)
		if err != nil {
			return
		}
		if again != out && !strings.Contains(src, "__VA_ARGS__") {
			t.Fatalf("expansion of %q is not stable:\n%s\n%s", src, out, again)
		}
	})
}
