// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Route, Hop and Graph declarations, sentinel errors, constructor.
// Concurrency:
//   - mu guards adjacency and routeCount.

package route

import (
	"errors"
	"sync"
)

// Sentinel errors for graph construction.
var (
	// ErrMalformedInput indicates structurally invalid graph, hazard or
	// parameter data. Every package in this module wraps it for input errors.
	ErrMalformedInput = errors.New("malformed input")

	// ErrEmptyPlanet indicates a route endpoint with an empty name.
	ErrEmptyPlanet = errors.New("route: planet name is empty")

	// ErrNegativeTravelTime indicates a route whose travel time is below zero.
	ErrNegativeTravelTime = errors.New("route: travel time is negative")
)

// Route is an undirected connection between two planets.
type Route struct {
	// Origin is one endpoint of the route.
	Origin string

	// Destination is the other endpoint of the route.
	Destination string

	// TravelTime is the number of days the jump takes (and the fuel it burns).
	TravelTime int
}

// Hop is one adjacency entry: the planet reached and the days it takes.
type Hop struct {
	To         string
	TravelTime int
}

// Graph maps every planet to the hops leaving it.
//
// Every Route contributes one Hop on each endpoint (a self-loop contributes
// a single Hop). The zero value is not usable; call NewGraph or BuildGraph.
type Graph struct {
	mu sync.RWMutex // guards adjacency and routeCount

	// adjacency[planet] = hops leaving planet, kept sorted by (To, TravelTime)
	adjacency  map[string][]Hop
	routeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{adjacency: make(map[string][]Hop)}
}
