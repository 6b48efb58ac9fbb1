// Package trace provides structured tracing for the rebel tooling.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	rebel check --trace=- --trace-level=detail
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelError: Only failures
//   - LevelPhase: Command and group boundaries
//   - LevelDetail: Per-entry events (one property, one catalogue name)
//   - LevelDebug: Everything
//
// # Scopes
//
//   - ScopeDriver: Top-level CLI commands
//   - ScopeGroup: A catalogue group or a batch of properties
//   - ScopeEntry: A single catalogue entry or property
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopeGroup, "check", parentID)
//	defer span.End("")
package trace
