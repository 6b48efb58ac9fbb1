package check_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"rebel/internal/check"
	"rebel/internal/diag"
	"rebel/internal/layout"
	"rebel/internal/observ"
	"rebel/internal/trace"
)

func TestDefaultPropertiesPass(t *testing.T) {
	for _, target := range []layout.Target{layout.Host(), layout.X86_64LinuxGNU(), layout.I386LinuxGNU()} {
		t.Run(target.Triple, func(t *testing.T) {
			res, err := check.Run(context.Background(), check.Default(), check.Options{
				Jobs:    4,
				Samples: 64,
				Seed:    7,
				Target:  target,
			})
			require.NoError(t, err)
			require.False(t, res.Bag.HasErrors(), "%s", diag.FormatGolden(res.Bag.Items(), true))
			require.Equal(t, len(check.Default()), res.Passed())
			require.Zero(t, res.Failed())
		})
	}
}

func TestHazardsAreReportedAsInfo(t *testing.T) {
	var props []check.Property
	for _, p := range check.Default() {
		if p.Name == "single-evaluation" {
			props = append(props, p)
		}
	}
	require.Len(t, props, 1)

	res, err := check.Run(context.Background(), props, check.Options{})
	require.NoError(t, err)
	require.False(t, res.Bag.HasWarnings())

	var clamp *diag.Diagnostic
	for _, d := range res.Bag.Items() {
		require.Equal(t, diag.CheckTextualHazard, d.Code)
		if strings.Contains(d.Message, "CLAMP") {
			clamp = d
		}
	}
	require.NotNil(t, clamp)
	require.Len(t, clamp.Notes, 3)
	require.Equal(t, "x appears 4 times in the expansion", clamp.Notes[0].Msg)
}

func TestViolationsAndPanicsBecomeDiagnostics(t *testing.T) {
	props := []check.Property{
		{Entry: "MAX", Name: "always-fails", Run: func(c *check.Case) { c.Errorf("broken %d", 1) }},
		{Entry: "MIN", Name: "panics", Run: func(*check.Case) { panic("boom") }},
		{Entry: "ABS", Name: "passes", Run: func(*check.Case) {}},
	}
	timer := observ.NewTimer()
	res, err := check.Run(context.Background(), props, check.Options{Jobs: 2, Timer: timer})
	require.NoError(t, err)

	require.Equal(t, 1, res.Passed())
	require.Equal(t, 2, res.Failed())
	require.False(t, res.Outcomes[0].Passed)
	require.False(t, res.Outcomes[1].Passed)
	require.True(t, res.Outcomes[2].Passed)

	items := res.Bag.Items()
	require.Len(t, items, 2)
	require.Equal(t, diag.CheckViolation, items[0].Code)
	require.Equal(t, "broken 1", items[0].Message)
	require.Equal(t, "MAX/always-fails", items[0].Subject.String())
	require.Equal(t, diag.CheckPanic, items[1].Code)
	require.Equal(t, "panic: boom", items[1].Message)

	require.Len(t, timer.Report().Phases, 3)
}

func TestRunIsDeterministicPerSeed(t *testing.T) {
	var seen [2][]int
	for round := range 2 {
		props := []check.Property{{Entry: "SQR", Name: "draw", Run: func(c *check.Case) {
			seen[round] = append(seen[round], c.Rand.IntN(1000), c.Rand.IntN(1000))
		}}}
		_, err := check.Run(context.Background(), props, check.Options{Seed: 42, Jobs: 1})
		require.NoError(t, err)
	}
	require.Equal(t, seen[0], seen[1])
}

func TestRunEmitsSpans(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelDebug, trace.FormatText)
	ctx := trace.WithTracer(context.Background(), tr)

	props := []check.Property{{Entry: "SIGN", Name: "noop", Run: func(*check.Case) {}}}
	_, err := check.Run(ctx, props, check.Options{})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "SIGN/noop")
	require.Contains(t, buf.String(), "check")
}

func TestPanicEmitsErrorEvent(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelError, trace.FormatText)
	ctx := trace.WithTracer(context.Background(), tr)

	props := []check.Property{{Entry: "CLAMP", Name: "panics", Run: func(*check.Case) { panic("boom") }}}
	res, err := check.Run(ctx, props, check.Options{})
	require.NoError(t, err)
	require.Equal(t, 1, res.Failed())
	require.NoError(t, tr.Flush())
	require.Contains(t, buf.String(), "! CLAMP/panics (panic: boom)")
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := check.Run(ctx, check.Default(), check.Options{Jobs: 1})
	require.ErrorIs(t, err, context.Canceled)
}
