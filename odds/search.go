// SPDX-License-Identifier: MIT
//
// File: search.go
// Role: the time-and-fuel expanded breadth-first search and its refuel chain.
// Determinism:
//   - FIFO frontier, neighbors in route.Graph order.
// Concurrency:
//   - walker state is per call; graph and schedule are only read.

package odds

import (
	"context"
	"errors"
	"fmt"

	"github.com/rebelnav/navodds/dijkstra"
	"github.com/rebelnav/navodds/route"
)

// stateKey identifies a frontier state for deduplication.
type stateKey struct {
	planet string
	day    int
	fuel   int
}

// queueItem is a frontier entry: a key and the probability it was enqueued with.
type queueItem struct {
	key  stateKey
	prob float64
}

// link records how a key was last improved.
type link struct {
	from   stateKey
	refuel bool
}

// walker encapsulates mutable search state.
type walker struct {
	graph *route.Graph
	q     Query
	sched Schedule
	opts  Options
	ctx   context.Context

	// bound[p] = fewest days from p to the destination; nil when pruning is off.
	bound map[string]int

	queue   []queueItem
	head    int
	visited map[stateKey]float64
	parent  map[stateKey]link
	seed    stateKey

	best     float64
	bestKey  stateKey
	found    bool
	expanded int
	enqueued int
}

// ComputeOdds is the one-call form of Search: it indexes hazards and returns
// only the probability.
func ComputeOdds(g *route.Graph, autonomy int, start, destination string, countdown int,
	hazards []Hazard, opts ...Option) (float64, error) {
	sched, err := NewSchedule(hazards)
	if err != nil {
		return 0, err
	}
	res, err := Search(g, Query{
		Autonomy:    autonomy,
		Countdown:   countdown,
		Start:       start,
		Destination: destination,
	}, sched, opts...)
	if err != nil {
		return 0, err
	}

	return res.Probability, nil
}

// Search returns the maximum probability of reaching q.Destination from
// q.Start on or before q.Countdown, together with one itinerary achieving it.
//
// Returns ErrMalformedInput for a nil graph, invalid query or bad option,
// ErrResourceExhausted when WithMaxStates is exceeded, or the context error.
func Search(g *route.Graph, q Query, sched Schedule, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, o.err)
	}
	if g == nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, ErrGraphNil)
	}
	if err := q.validate(); err != nil {
		return nil, err
	}

	w := &walker{
		graph:   g,
		q:       q,
		sched:   sched,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[stateKey]float64),
		parent:  make(map[stateKey]link),
		seed:    stateKey{planet: q.Start, day: 0, fuel: q.Autonomy},
	}
	if o.Prune {
		if err := w.computeBound(); err != nil {
			return nil, err
		}
	}

	// the seed is never recorded in visited, matching the reference behavior
	if err := w.enqueue(w.seed, 1.0); err != nil {
		return nil, err
	}
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.result(), nil
}

// computeBound fills bound with fewest-day distances to the destination.
// An unknown destination leaves bound empty, which prunes every move.
func (w *walker) computeBound() error {
	w.bound = map[string]int{}
	if !w.graph.HasPlanet(w.q.Destination) {
		return nil
	}
	dist, _, err := dijkstra.Dijkstra(w.graph,
		dijkstra.Source(w.q.Destination),
		dijkstra.WithMaxDistance(w.q.Countdown),
	)
	if err != nil {
		return fmt.Errorf("odds: reachability bound: %w", err)
	}
	for p, d := range dist {
		if d != dijkstra.Unreachable {
			w.bound[p] = d
		}
	}

	return nil
}

// reachable reports whether a vehicle on planet at day could still arrive in time.
func (w *walker) reachable(planet string, day int) bool {
	if w.bound == nil {
		return true
	}
	d, ok := w.bound[planet]
	return ok && d <= w.q.Countdown-day
}

func (w *walker) factor(planet string, day int) float64 {
	return w.sched.Factor(planet, day, w.opts.Survival)
}

// loop processes the frontier until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if item.key.day > w.q.Countdown {
			continue
		}
		if item.key.planet == w.q.Destination {
			// arrival ends this branch
			if !w.found || item.prob > w.best {
				w.best, w.bestKey, w.found = item.prob, item.key, true
			}
			continue
		}
		w.expanded++
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the oldest item and invokes OnDequeue.
func (w *walker) dequeue() queueItem {
	item := w.queue[w.head]
	w.queue[w.head] = queueItem{}
	w.head++
	// reclaim the consumed prefix once it dominates the slice
	if w.head > 1024 && w.head*2 > len(w.queue) {
		w.queue = append(w.queue[:0], w.queue[w.head:]...)
		w.head = 0
	}
	w.opts.OnDequeue(item.key.state(item.prob))

	return item
}

// enqueue pushes a state, enforcing MaxStates.
func (w *walker) enqueue(k stateKey, prob float64) error {
	if w.opts.MaxStates > 0 && w.enqueued >= w.opts.MaxStates {
		return fmt.Errorf("%w: more than %d states", ErrResourceExhausted, w.opts.MaxStates)
	}
	w.queue = append(w.queue, queueItem{key: k, prob: prob})
	w.enqueued++
	w.opts.OnEnqueue(k.state(prob))

	return nil
}

// improve records prob for k and enqueues it if it strictly beats the
// recorded value. Returns false when k was not improved.
func (w *walker) improve(k stateKey, prob float64, via link) (bool, error) {
	if prob <= w.visited[k] {
		return false, nil
	}
	w.visited[k] = prob
	w.parent[k] = via

	return true, w.enqueue(k, prob)
}

// expand examines every hop out of item's planet: direct jumps when the
// tank covers them, the waiting chain otherwise.
func (w *walker) expand(item queueItem) error {
	cur := item.key
	var err error
	w.graph.EachNeighbor(cur.planet, func(h route.Hop) bool {
		// compared without adding so huge travel times cannot wrap the day
		if h.TravelTime > w.q.Countdown-cur.day {
			return true
		}
		if cur.fuel < h.TravelTime {
			err = w.refuel(item)
			return err == nil
		}
		nextDay := cur.day + h.TravelTime
		if !w.reachable(h.To, nextDay) {
			return true
		}
		next := stateKey{planet: h.To, day: nextDay, fuel: cur.fuel - h.TravelTime}
		_, err = w.improve(next, item.prob*w.factor(h.To, nextDay), link{from: cur})
		return err == nil
	})

	return err
}

// refuel enqueues the waiting chain rooted at item: one full-tank state per
// day on the same planet, stopping at the first day that does not improve.
func (w *walker) refuel(item queueItem) error {
	cur := item.key
	// day > cur.day stops the walk if the increment wraps at math.MaxInt
	for day := cur.day + 1; day > cur.day && day <= w.q.Countdown; day++ {
		if !w.reachable(cur.planet, day) {
			break // later days are even further out of reach
		}
		k := stateKey{planet: cur.planet, day: day, fuel: w.q.Autonomy}
		ok, err := w.improve(k, item.prob*w.factor(cur.planet, day), link{from: cur, refuel: true})
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}

	return nil
}

// result assembles the public Result after the frontier drained.
func (w *walker) result() *Result {
	res := &Result{
		Arrival:  -1,
		Expanded: w.expanded,
		Enqueued: w.enqueued,
	}
	if !w.found {
		return res
	}
	res.Probability = w.best
	res.Arrival = w.bestKey.day
	res.Itinerary = w.itinerary()

	return res
}

// itinerary walks parent links back from the best arrival to the seed.
func (w *walker) itinerary() []Stop {
	stops := make([]Stop, 0, 8)
	for k := w.bestKey; ; {
		prob := w.visited[k]
		if k == w.seed {
			prob = 1.0
		} else if k == w.bestKey {
			prob = w.best
		}
		l, ok := w.parent[k]
		stops = append(stops, Stop{State: k.state(prob), Refuel: ok && l.refuel && k != w.seed})
		if k == w.seed || !ok || len(stops) > len(w.parent)+1 {
			break
		}
		k = l.from
	}
	for i, j := 0, len(stops)-1; i < j; i, j = i+1, j-1 {
		stops[i], stops[j] = stops[j], stops[i]
	}

	return stops
}

func (k stateKey) state(prob float64) State {
	return State{Planet: k.planet, Day: k.day, Fuel: k.fuel, Probability: prob}
}

// IsResourceExhausted reports whether err came from the MaxStates cap.
func IsResourceExhausted(err error) bool {
	return errors.Is(err, ErrResourceExhausted)
}
