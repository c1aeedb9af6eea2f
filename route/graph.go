// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: route lifecycle (BuildGraph, AddRoute) and read-only queries.
// Determinism:
//   - Neighbors() is sorted by (To, TravelTime); Planets() and Routes() are sorted.
// Concurrency:
//   - AddRoute under write lock; queries under read lock, returning copies.

package route

import (
	"fmt"
	"sort"
)

// BuildGraph converts a list of undirected routes into a Graph.
//
// Fails with ErrMalformedInput (wrapping ErrEmptyPlanet or
// ErrNegativeTravelTime) on the first invalid record; the index of the
// offending record is part of the message.
//
// Complexity: O(R·d) where d is the largest planet degree (sorted insertion).
func BuildGraph(routes []Route) (*Graph, error) {
	g := NewGraph()
	for i, r := range routes {
		if err := g.AddRoute(r.Origin, r.Destination, r.TravelTime); err != nil {
			return nil, fmt.Errorf("route %d: %w", i, err)
		}
	}

	return g, nil
}

// AddRoute inserts an undirected route between origin and destination.
// Both endpoints are created on first mention.
func (g *Graph) AddRoute(origin, destination string, travelTime int) error {
	if origin == "" || destination == "" {
		return fmt.Errorf("%w: %w", ErrMalformedInput, ErrEmptyPlanet)
	}
	if travelTime < 0 {
		return fmt.Errorf("%w: %w (%s-%s: %d)", ErrMalformedInput, ErrNegativeTravelTime,
			origin, destination, travelTime)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.insertHop(origin, Hop{To: destination, TravelTime: travelTime})
	if origin != destination {
		g.insertHop(destination, Hop{To: origin, TravelTime: travelTime})
	}
	g.routeCount++

	return nil
}

// insertHop keeps adjacency[from] sorted so reads never sort.
// Caller must hold the write lock.
func (g *Graph) insertHop(from string, h Hop) {
	hops := g.adjacency[from]
	i := sort.Search(len(hops), func(i int) bool { return !hopLess(hops[i], h) })
	hops = append(hops, Hop{})
	copy(hops[i+1:], hops[i:])
	hops[i] = h
	g.adjacency[from] = hops
}

func hopLess(a, b Hop) bool {
	if a.To != b.To {
		return a.To < b.To
	}
	return a.TravelTime < b.TravelTime
}

// Neighbors returns a copy of the hops leaving planet.
// An unknown planet has no hops; this is not an error.
func (g *Graph) Neighbors(planet string) []Hop {
	g.mu.RLock()
	defer g.mu.RUnlock()

	hops := g.adjacency[planet]
	out := make([]Hop, len(hops))
	copy(out, hops)

	return out
}

// EachNeighbor calls fn for every hop leaving planet, in Neighbors order,
// until fn returns false. The read lock is held for the whole walk, so fn
// must not modify g.
func (g *Graph) EachNeighbor(planet string, fn func(h Hop) bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, h := range g.adjacency[planet] {
		if !fn(h) {
			return
		}
	}
}

// HasPlanet reports whether any route mentions planet.
func (g *Graph) HasPlanet(planet string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[planet]
	return ok
}

// Planets returns every planet name, sorted ascending.
func (g *Graph) Planets() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.adjacency))
	for p := range g.adjacency {
		out = append(out, p)
	}
	sort.Strings(out)

	return out
}

// PlanetCount returns the number of distinct planets.
func (g *Graph) PlanetCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// RouteCount returns the number of routes added (mirrors are not counted).
func (g *Graph) RouteCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.routeCount
}

// Routes reconstructs the canonical route list: each route once, with
// Origin <= Destination, sorted by (Origin, Destination, TravelTime).
// BuildGraph(g.Routes()) yields a graph equal to g.
func (g *Graph) Routes() []Route {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Route, 0, g.routeCount)
	for from, hops := range g.adjacency {
		for _, h := range hops {
			// every non-loop route is stored twice; keep the ordered copy
			if from <= h.To {
				out = append(out, Route{Origin: from, Destination: h.To, TravelTime: h.TravelTime})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Origin != b.Origin {
			return a.Origin < b.Origin
		}
		if a.Destination != b.Destination {
			return a.Destination < b.Destination
		}
		return a.TravelTime < b.TravelTime
	})

	return out
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		adjacency:  make(map[string][]Hop, len(g.adjacency)),
		routeCount: g.routeCount,
	}
	for p, hops := range g.adjacency {
		cp := make([]Hop, len(hops))
		copy(cp, hops)
		c.adjacency[p] = cp
	}

	return c
}
