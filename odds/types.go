// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: sentinel errors, functional options, query and result types.

package odds

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/rebelnav/navodds/route"
)

// CaptureSurvival is the probability of getting through one hazard encounter.
const CaptureSurvival = 0.9

// Sentinel errors for the odds search.
var (
	// ErrMalformedInput is shared with package route so that a single
	// errors.Is check covers graph, hazard and parameter problems.
	ErrMalformedInput = route.ErrMalformedInput

	// ErrResourceExhausted is returned when the MaxStates cap is reached.
	ErrResourceExhausted = errors.New("odds: search state budget exhausted")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("odds: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("odds: invalid option supplied")
)

// Query holds the scalar parameters of one search.
type Query struct {
	// Autonomy is the tank size in travel days. Must be > 0.
	Autonomy int

	// Countdown is the last day (inclusive) on which arrival counts. Must be >= 0.
	Countdown int

	// Start is the departure planet.
	Start string

	// Destination is the arrival planet.
	Destination string
}

func (q Query) validate() error {
	switch {
	case q.Autonomy <= 0:
		return fmt.Errorf("%w: autonomy must be positive (%d)", ErrMalformedInput, q.Autonomy)
	case q.Countdown < 0:
		return fmt.Errorf("%w: countdown cannot be negative (%d)", ErrMalformedInput, q.Countdown)
	case q.Start == "" || q.Destination == "":
		return fmt.Errorf("%w: start and destination planets are required", ErrMalformedInput)
	}
	return nil
}

// State is one point of the expanded search space.
type State struct {
	Planet      string
	Day         int
	Fuel        int
	Probability float64
}

// Stop is one step of a reconstructed itinerary.
// Refuel is true when the vehicle reached this state by waiting in place.
type Stop struct {
	State
	Refuel bool
}

// Result is the outcome of a search.
type Result struct {
	// Probability is the best chance of arriving on or before the countdown.
	Probability float64

	// Arrival is the day of the best arrival, or -1 if the destination is unreachable.
	Arrival int

	// Itinerary lists the states of one best plan, start first. Nil when unreachable.
	Itinerary []Stop

	// Expanded counts dequeued states whose neighbors were examined.
	Expanded int

	// Enqueued counts states pushed onto the frontier, the seed included.
	Enqueued int
}

// Option configures the search via functional arguments.
// Invalid values are recorded and surfaced when Search runs.
type Option func(*Options)

// Options holds parameters and callbacks for one search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called for every state pushed onto the frontier, while
	// the graph's read lock is held; it must not modify the graph.
	OnEnqueue func(s State)

	// OnDequeue is called for every state popped from the frontier,
	// before the countdown and arrival checks.
	OnDequeue func(s State)

	// MaxStates, if > 0, caps the number of enqueued states.
	MaxStates int

	// Prune enables the dijkstra reachability bound.
	Prune bool

	// Survival is the factor applied on each hazard encounter.
	Survival float64

	err error
}

// DefaultOptions returns background context, no-op hooks, no state cap,
// pruning on and CaptureSurvival.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(State) {},
		OnDequeue: func(State) {},
		Prune:     true,
		Survival:  CaptureSurvival,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback run on every enqueue.
func WithOnEnqueue(fn func(s State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback run on every dequeue.
func WithOnDequeue(fn func(s State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithMaxStates caps the frontier.
//
//	n > 0: at most n states are ever enqueued
//	n == 0: no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// WithCaptureSurvival overrides the per-encounter survival factor.
// f must lie in (0, 1].
func WithCaptureSurvival(f float64) Option {
	return func(o *Options) {
		if math.IsNaN(f) || f <= 0 || f > 1 {
			o.err = fmt.Errorf("%w: capture survival must be in (0,1] (%v)", ErrOptionViolation, f)
			return
		}
		o.Survival = f
	}
}

// WithoutReachabilityPruning explores every state the reference algorithm
// would, including those that can no longer reach the destination in time.
func WithoutReachabilityPruning() Option {
	return func(o *Options) { o.Prune = false }
}
