package sandbox

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mazelab/astar"
	"github.com/katalvlaran/mazelab/bfs"
	"github.com/katalvlaran/mazelab/dijkstra"
	"github.com/katalvlaran/mazelab/grid"
	"github.com/katalvlaran/mazelab/search"
)

// Runner compares engines. It is safe for concurrent use once built.
type Runner struct {
	engines []search.Engine
	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer
}

// tracerName is the instrumentation scope of the default tracer.
const tracerName = "github.com/katalvlaran/mazelab/sandbox"

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the structured logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics attaches Prometheus collectors.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithTracer sets the OpenTelemetry tracer. The default comes from the
// global provider, which records nothing until one is installed.
func WithTracer(t trace.Tracer) Option {
	return func(r *Runner) {
		if t != nil {
			r.tracer = t
		}
	}
}

// WithEngines replaces the default engine list.
func WithEngines(engines ...search.Engine) Option {
	return func(r *Runner) { r.engines = engines }
}

// DefaultEngines returns BFS, Dijkstra and A* in that order.
func DefaultEngines() []search.Engine {
	return []search.Engine{bfs.Engine(), dijkstra.Engine(), astar.Engine()}
}

// New builds a Runner with the default engines and a discarding logger.
func New(opts ...Option) *Runner {
	r := &Runner{
		engines: DefaultEngines(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer:  otel.Tracer(tracerName),
	}
	for _, fn := range opts {
		if fn != nil {
			fn(r)
		}
	}
	return r
}

// Engines returns the configured engines in run order.
func (r *Runner) Engines() []search.Engine {
	return append([]search.Engine(nil), r.engines...)
}

// Compare solves start→goal on g with every engine concurrently.
//
// Endpoints are validated once up front. The first engine error cancels the
// rest and is returned wrapped with the engine name.
func (r *Runner) Compare(ctx context.Context, g *grid.Grid, start, goal grid.Coordinate) (*Report, error) {
	// 1) Reject what no engine could run on
	if len(r.engines) == 0 {
		return nil, ErrNoEngines
	}
	if err := search.ValidateEndpoints(g, start, goal); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// 2) Open the run: report, scoped logger, span
	rep := &Report{RunID: uuid.New(), Start: start, Goal: goal, Entries: make([]Entry, len(r.engines))}
	log := r.logger.With(slog.String("run_id", rep.RunID.String()))

	ctx, span := r.tracer.Start(ctx, "sandbox.Runner.Compare",
		trace.WithAttributes(
			attribute.String("run_id", rep.RunID.String()),
			attribute.String("start", start.String()),
			attribute.String("goal", goal.String()),
			attribute.Int("engines", len(r.engines)),
		),
	)
	defer span.End()

	log.Debug("compare started",
		slog.String("start", start.String()),
		slog.String("goal", goal.String()),
		slog.Int("engines", len(r.engines)))

	// 3) One goroutine per engine; each writes only its own Entries slot
	eg, egCtx := errgroup.WithContext(ctx)
	for i, e := range r.engines {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			_, es := r.tracer.Start(egCtx, "sandbox.engine."+e.Name())
			defer es.End()

			began := time.Now()
			out, err := e.Solve(g, start, goal)
			if err != nil {
				es.RecordError(err)
				es.SetStatus(codes.Error, "solve failed")
				return fmt.Errorf("sandbox: %s: %w", e.Name(), err)
			}
			es.SetAttributes(
				attribute.String("state", out.State.String()),
				attribute.Int("path_len", len(out.Path)),
				attribute.Int("expanded", out.Steps),
			)
			rep.Entries[i] = Entry{
				Engine:   e.Name(),
				Path:     out.Path,
				Steps:    out.Steps,
				Visited:  out.Visited,
				State:    out.State,
				Duration: time.Since(began),
			}
			return nil
		})
	}

	// 4) Wait for the group or the caller, whichever is first
	done := make(chan error, 1)
	go func() { done <- eg.Wait() }()

	select {
	case <-ctx.Done():
		span.SetStatus(codes.Error, "cancelled")
		log.Warn("compare cancelled", slog.String("error", ctx.Err().Error()))
		return nil, ctx.Err()
	case err := <-done:
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "engine failed")
			log.Error("compare failed", slog.String("error", err.Error()))
			return nil, err
		}
	}

	// 5) Publish per-engine results
	for _, e := range rep.Entries {
		r.metrics.observe(e)
		log.Debug("engine finished",
			slog.String("engine", e.Engine),
			slog.String("state", e.State.String()),
			slog.Int("path_len", e.PathLength()),
			slog.Int("expanded", e.Steps),
			slog.Duration("duration", e.Duration))
	}
	span.SetAttributes(attribute.Bool("consistent", rep.Consistent()))
	span.SetStatus(codes.Ok, "")
	log.Info("compare finished",
		slog.Int("engines", len(rep.Entries)),
		slog.Bool("consistent", rep.Consistent()))
	return rep, nil
}
