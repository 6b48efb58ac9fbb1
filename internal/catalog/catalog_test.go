package catalog_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"rebel/internal/catalog"
)

func TestCatalogueShape(t *testing.T) {
	require.Equal(t, 57, catalog.Len())

	counts := map[catalog.Group]int{}
	seen := map[string]bool{}
	for _, e := range catalog.All() {
		require.False(t, seen[e.Name], "duplicate %s", e.Name)
		seen[e.Name] = true
		counts[e.Group]++
		require.NotEmpty(t, e.Expansion, e.Name)
		require.NotEmpty(t, e.Go, e.Name)
		if e.Kind != catalog.KindFunction {
			require.Empty(t, e.Params, e.Name)
		}
	}
	require.Equal(t, 17, counts[catalog.GroupPrimitive])
	require.Equal(t, 2, counts[catalog.GroupDeclaration])
	require.Equal(t, 21, counts[catalog.GroupControl])
	require.Equal(t, 17, counts[catalog.GroupUtility])
}

func TestLookupIgnoresCase(t *testing.T) {
	e, ok := catalog.Lookup("round_down")
	require.True(t, ok)
	require.Equal(t, "ROUND_DOWN", e.Name)
	require.Equal(t, "ROUND_DOWN(x, a)", e.Signature())

	_, ok = catalog.Lookup("NOPE")
	require.False(t, ok)

	e, _ = catalog.Lookup("STRUCT")
	require.True(t, e.Variadic())
	e.Params[0] = "mutated"
	again, _ := catalog.Lookup("STRUCT")
	require.Equal(t, "name", again.Params[0])
}

func TestParseGroup(t *testing.T) {
	g, ok := catalog.ParseGroup(" Utility ")
	require.True(t, ok)
	require.Equal(t, catalog.GroupUtility, g)
	_, ok = catalog.ParseGroup("misc")
	require.False(t, ok)
	require.Len(t, catalog.ByGroup(catalog.GroupDeclaration), 2)
}

func TestExpandSingleName(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"MAX", []string{"a", "b"}, "((a) > (b) ? (a) : (b))"},
		{"ALIGN", []string{"13", "8"}, "(((13) + ((8) - 1)) & ~((8) - 1))"},
		{"IF", []string{"x > 0"}, "if (x > 0)"},
		{"UNTIL", []string{"done"}, "while (!(done))"},
		{"FOREVER", nil, "for (;;)"},
		{"RANGE", []string{"1", "10", "2"}, "for (INT i = (1); i <= (10); i += (2))"},
		{"STRUCT", []string{"Point", "INT x;", "INT y;"}, "typedef struct { INT x;, INT y; } Point;"},
		{"FUN", []string{"INT", "add", "INT a", "INT b"}, "INT add(INT a, INT b)"},
		{"ARRAY_SIZE", []string{"xs"}, "(sizeof(xs) / sizeof(*(xs)))"},
		{"FOREACH", []string{"p", "arr"}, "for (typeof(*(arr)) *p = (arr); p < (arr) + (sizeof(arr) / sizeof(*(arr))); ++p)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := catalog.Expand(tc.name, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestExpandErrors(t *testing.T) {
	_, err := catalog.Expand("MAX", "a")
	require.ErrorIs(t, err, catalog.ErrArity)

	_, err = catalog.Expand("INT")
	require.ErrorIs(t, err, catalog.ErrNotMacro)

	_, err = catalog.Expand("TRUE")
	require.ErrorIs(t, err, catalog.ErrNotMacro)

	_, err = catalog.Expand("SPLICE")
	require.ErrorIs(t, err, catalog.ErrUnknownName)

	_, err = catalog.Expand("BREAK", "x")
	require.ErrorIs(t, err, catalog.ErrArity)

	_, err = catalog.Expand("STRUCT")
	var ee *catalog.ExpandError
	require.True(t, errors.As(err, &ee))
	require.Equal(t, "STRUCT", ee.Name)

	_, err = catalog.ExpandText("MAX(a, b")
	require.ErrorIs(t, err, catalog.ErrUnbalanced)
}

func TestExpandText(t *testing.T) {
	got, err := catalog.ExpandText("IF(x > 0) THEN y = 1; END ELSE BEGIN y = 2; END")
	require.NoError(t, err)
	require.Equal(t, "if (x > 0) { y = 1; } else { y = 2; }", got)

	got, err = catalog.ExpandText("WHILE(TRUE) DO BREAK; DONE")
	require.NoError(t, err)
	require.Equal(t, "while (TRUE) { break; }", got, "constants are declarations")

	got, err = catalog.ExpandText(`IF(s == "IF(") THEN END`)
	require.NoError(t, err)
	require.Equal(t, `if (s == "IF(") { }`, got)

	got, err = catalog.ExpandText("INT MAX = 3;")
	require.NoError(t, err)
	require.Equal(t, "INT MAX = 3;", got, "function names without arguments are left alone")

	got, err = catalog.ExpandText("x = SQR(MAX(a, 0.5f));")
	require.NoError(t, err)
	require.Equal(t, "x = ((((a) > (0.5f) ? (a) : (0.5f))) * (((a) > (0.5f) ? (a) : (0.5f))));", got)
}

func TestHazards(t *testing.T) {
	hz, err := catalog.Hazards("CLAMP")
	require.NoError(t, err)
	require.Equal(t, []catalog.Hazard{
		{Param: "x", Count: 4},
		{Param: "min", Count: 4},
		{Param: "max", Count: 2},
	}, hz)

	hz, err = catalog.Hazards("SQR")
	require.NoError(t, err)
	require.Equal(t, 2, hz[0].Count)
	require.True(t, hz[0].Repeated())

	hz, err = catalog.Hazards("IF")
	require.NoError(t, err)
	require.False(t, hz[0].Repeated())

	hz, err = catalog.Hazards("FOREACH")
	require.NoError(t, err)
	require.Equal(t, []catalog.Hazard{{Param: "item", Count: 3}, {Param: "container", Count: 5}}, hz)

	hz, err = catalog.Hazards("BREAK")
	require.NoError(t, err)
	require.Empty(t, hz)
}

func TestRenderGolden(t *testing.T) {
	var buf bytes.Buffer
	err := catalog.Render(&buf, catalog.ByGroup(catalog.GroupDeclaration), catalog.RenderOptions{})
	require.NoError(t, err)

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "render_declaration", buf.Bytes())
}

func TestRenderTruncatesLastColumn(t *testing.T) {
	var buf bytes.Buffer
	err := catalog.Render(&buf, catalog.ByGroup(catalog.GroupDeclaration), catalog.RenderOptions{Width: 60})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	for _, l := range lines[1:] {
		require.True(t, strings.HasSuffix(l, "..."), l)
		// three padded columns plus the minimum note width
		require.LessOrEqual(t, runewidth.StringWidth(l), 62+12)
	}
}

func TestExportImport(t *testing.T) {
	for _, f := range []catalog.Format{catalog.FormatJSON, catalog.FormatMsgpack, catalog.FormatTOML} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, catalog.Export(&buf, catalog.All(), f, catalog.RenderOptions{}))
			got, err := catalog.Import(&buf, f)
			require.NoError(t, err)
			require.NoError(t, catalog.Verify(got))
		})
	}

	_, err := catalog.Import(strings.NewReader("x"), catalog.FormatText)
	require.Error(t, err)

	got := catalog.All()
	got[3].Expansion = "long"
	require.Error(t, catalog.Verify(got))
}

func TestParseFormat(t *testing.T) {
	f, err := catalog.ParseFormat("JSON")
	require.NoError(t, err)
	require.Equal(t, catalog.FormatJSON, f)

	f, err = catalog.ParseFormat("")
	require.NoError(t, err)
	require.Equal(t, catalog.FormatText, f)

	_, err = catalog.ParseFormat("yaml")
	require.Error(t, err)
}
