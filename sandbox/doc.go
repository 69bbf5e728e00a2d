// Package sandbox runs several search engines on the same maze and compares
// what they found and how much work each did.
//
// Engines run concurrently, one goroutine each. This is safe because engines
// never mutate the grid. Compare honours context cancellation: it returns
// ctx.Err() as soon as the context is done and discards results that arrive
// later.
//
// Runs are logged with log/slog and, when a Metrics value is attached,
// exported as Prometheus collectors. Each Compare call opens an
// OpenTelemetry span with one child span per engine.
package sandbox
