// SPDX-License-Identifier: MIT
//
// File: planner.go
// Role: answers empire documents against one vehicle's route graph.
// Concurrency:
//   - a Planner is immutable after NewPlanner; Odds and Batch are safe for
//     concurrent use.

package mission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rebelnav/navodds/odds"
	"github.com/rebelnav/navodds/route"
)

// ErrNilDocument is returned when a nil Falcon or Empire is passed in.
var ErrNilDocument = errors.New("mission: nil document")

// Planner holds the route graph built from one vehicle document.
type Planner struct {
	graph      *route.Graph
	autonomy   int
	departure  string
	arrival    string
	searchOpts []odds.Option
	logger     *slog.Logger
	observe    Observer
}

// Observer is called after every query with its outcome. res is nil when
// err is set. It may be called concurrently from Batch.
type Observer func(e *Empire, res *odds.Result, err error, elapsed time.Duration)

// PlannerOption configures a Planner.
type PlannerOption func(*Planner)

// WithSearchOptions appends odds options to every query.
func WithSearchOptions(opts ...odds.Option) PlannerOption {
	return func(p *Planner) { p.searchOpts = append(p.searchOpts, opts...) }
}

// WithLogger sets the logger used for per-query debug records.
func WithLogger(l *slog.Logger) PlannerOption {
	return func(p *Planner) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithObserver registers fn to be called after every query.
func WithObserver(fn Observer) PlannerOption {
	return func(p *Planner) { p.observe = fn }
}

// NewPlanner loads f's routes (inline and database) and builds the graph.
func NewPlanner(ctx context.Context, f *Falcon, opts ...PlannerOption) (*Planner, error) {
	if f == nil || f.Autonomy == nil {
		return nil, fmt.Errorf("%w: %w", route.ErrMalformedInput, ErrNilDocument)
	}
	routes, err := f.LoadRoutes(ctx)
	if err != nil {
		return nil, err
	}
	g, err := route.BuildGraph(routes)
	if err != nil {
		return nil, err
	}
	p := &Planner{
		graph:     g,
		autonomy:  *f.Autonomy,
		departure: f.Departure,
		arrival:   f.Arrival,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Graph exposes the route graph. Callers must not modify it.
func (p *Planner) Graph() *route.Graph { return p.graph }

// Departure returns the starting planet.
func (p *Planner) Departure() string { return p.departure }

// Arrival returns the destination planet.
func (p *Planner) Arrival() string { return p.arrival }

// Autonomy returns the tank size in days.
func (p *Planner) Autonomy() int { return p.autonomy }

// Odds runs one search for e.
func (p *Planner) Odds(ctx context.Context, e *Empire) (*odds.Result, error) {
	if e == nil || e.Countdown == nil {
		return nil, fmt.Errorf("%w: %w", route.ErrMalformedInput, ErrNilDocument)
	}
	sched, err := odds.NewSchedule(e.Hazards())
	if err != nil {
		return nil, err
	}
	q := odds.Query{
		Autonomy:    p.autonomy,
		Countdown:   e.Days(),
		Start:       p.departure,
		Destination: p.arrival,
	}
	opts := append(append([]odds.Option(nil), p.searchOpts...), odds.WithContext(ctx))

	start := time.Now()
	res, err := odds.Search(p.graph, q, sched, opts...)
	elapsed := time.Since(start)
	if p.observe != nil {
		p.observe(e, res, err, elapsed)
	}
	if err != nil {
		return nil, err
	}
	p.logger.Debug("odds computed",
		slog.Int("countdown", q.Countdown),
		slog.Int("hazards", sched.Len()),
		slog.Float64("probability", res.Probability),
		slog.Int("expanded", res.Expanded),
		slog.Int("enqueued", res.Enqueued),
		slog.Duration("elapsed", elapsed),
	)

	return res, nil
}

// Batch answers every empire document, at most parallelism at a time
// (unbounded when parallelism <= 0). Results are index-aligned with empires.
// The first failure cancels the remaining searches.
func (p *Planner) Batch(ctx context.Context, empires []*Empire, parallelism int) ([]*odds.Result, error) {
	results := make([]*odds.Result, len(empires))
	g, gctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}
	for i, e := range empires {
		i, e := i, e
		g.Go(func() error {
			res, err := p.Odds(gctx, e)
			if err != nil {
				return fmt.Errorf("empire %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
