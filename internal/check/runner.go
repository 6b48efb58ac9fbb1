package check

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"rebel/internal/diag"
	"rebel/internal/layout"
	"rebel/internal/observ"
	"rebel/internal/trace"
)

// Options tune a run.
type Options struct {
	Jobs           int // <= 0 means GOMAXPROCS
	Samples        int // random samples per property; <= 0 means DefaultSamples
	Seed           uint64
	MaxDiagnostics int // per property
	Target         layout.Target
	// Timer, when set, receives one phase per property.
	Timer *observ.Timer
}

const (
	DefaultSamples        = 256
	DefaultMaxDiagnostics = 32
)

// Outcome is the result of one property.
type Outcome struct {
	Property Property
	Passed   bool
	Dur      time.Duration
	Bag      *diag.Bag
}

// Result collects every outcome in property order and their merged
// diagnostics.
type Result struct {
	Outcomes []Outcome
	Bag      *diag.Bag
}

func (r *Result) Passed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Passed {
			n++
		}
	}
	return n
}

func (r *Result) Failed() int { return len(r.Outcomes) - r.Passed() }

// Run executes props in parallel. The error is non-nil only when ctx is
// cancelled; property failures are reported in the Result.
func Run(ctx context.Context, props []Property, opts Options) (*Result, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	samples := opts.Samples
	if samples <= 0 {
		samples = DefaultSamples
	}
	maxDiag := opts.MaxDiagnostics
	if maxDiag <= 0 {
		maxDiag = DefaultMaxDiagnostics
	}
	target := opts.Target
	if target.PtrSize == 0 {
		target = layout.Host()
	}
	engine := layout.New(target)

	tracer := trace.FromContext(ctx)
	runSpan := trace.Begin(tracer, trace.ScopeGroup, "check", trace.CurrentSpan(ctx)).
		WithExtra("properties", fmt.Sprint(len(props)))
	ctx = trace.WithSpan(ctx, runSpan)

	results := make([]Outcome, len(props))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(props))))

	for i, p := range props {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			bag := diag.NewBag(maxDiag)
			c := &Case{
				Samples: samples,
				Rand:    rand.New(rand.NewPCG(opts.Seed, uint64(i))),
				Layout:  engine,
				subject: p.Subject(),
				rep:     diag.BagReporter{Bag: bag},
			}
			span := trace.Begin(tracer, trace.ScopeEntry, p.Subject().String(), runSpan.ID())
			start := time.Now()
			runCase(p, c, tracer, span.ID())
			dur := time.Since(start)
			detail := "ok"
			if c.Failed() {
				detail = "failed"
			}
			span.End(detail)
			results[i] = Outcome{Property: p, Passed: !c.Failed(), Dur: dur, Bag: bag}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		runSpan.End("cancelled")
		return nil, err
	}

	res := &Result{Outcomes: results, Bag: diag.NewBag(maxDiag * max(1, len(props)))}
	for _, o := range results {
		res.Bag.Merge(o.Bag)
		if opts.Timer != nil {
			opts.Timer.Record(o.Property.Subject().String(), o.Dur, "")
		}
	}
	runSpan.End(fmt.Sprintf("%d passed, %d failed", res.Passed(), res.Failed()))
	return res, nil
}

// runCase converts a panic in the property into a diagnostic and an error
// event under the property's span.
func runCase(p Property, c *Case, tracer trace.Tracer, parent uint64) {
	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprintf("panic: %v", r)
			c.Report(diag.SevError, diag.CheckPanic, msg)
			trace.Error(tracer, trace.ScopeEntry, p.Subject().String(), errors.New(msg), parent)
		}
	}()
	p.Run(c)
}
