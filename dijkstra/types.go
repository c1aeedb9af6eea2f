// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrEmptySource indicates that no source planet was provided.
	ErrEmptySource = errors.New("dijkstra: source planet is empty")

	// ErrNilGraph indicates that a nil *route.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source planet is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source planet not found in graph")

	// ErrBadMaxDistance indicates a negative distance cap.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Unreachable is the distance reported for planets never settled.
const Unreachable = math.MaxInt

// Options configures a Dijkstra run.
type Options struct {
	Source      string // starting planet
	ReturnPath  bool   // return the predecessor map
	MaxDistance int    // planets farther than this are not settled

	err error // first invalid option, surfaced by Dijkstra
}

// Option is a functional option for Dijkstra.
type Option func(*Options)

// Source sets the starting planet. Required.
func Source(planet string) Option {
	return func(o *Options) { o.Source = planet }
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance caps exploration at max days. Negative values are recorded
// and returned as ErrBadMaxDistance when Dijkstra runs.
func WithMaxDistance(max int) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w (%d)", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options with no path output and no distance cap.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		MaxDistance: math.MaxInt,
	}
}
