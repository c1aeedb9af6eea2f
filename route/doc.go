// Package route builds the travel network a vehicle moves through:
// an undirected, weighted multigraph of planets connected by routes
// whose weight is the number of days the jump takes.
//
// What
//
//   - Route{Origin, Destination, TravelTime} is one undirected edge.
//   - BuildGraph mirrors every route in both directions, so Neighbors(a)
//     contains b exactly as often as Neighbors(b) contains a.
//   - Parallel routes are kept; the search picks whichever serves it best.
//   - Planets are opaque names and exist only because a route mentions them.
//
// Why
//
//   - The odds search reads the adjacency of one planet at a time and must
//     never fail on an unknown name: an unknown planet simply has no hops.
//   - A Graph is built once per mission and shared read-only by any number
//     of concurrent queries.
//
// Determinism
//
//	Neighbors returns hops sorted by (To, TravelTime) and Planets returns
//	names sorted ascending, so every traversal built on top is reproducible.
//
// Concurrency
//
//	AddRoute takes the write lock; every query takes the read lock and
//	returns a copy, so callers can never mutate the adjacency in place.
//
// Errors
//
//   - ErrMalformedInput      root of every input-shape failure in this module.
//   - ErrEmptyPlanet         origin or destination is the empty string.
//   - ErrNegativeTravelTime  travel time below zero.
//
// Usage
//
//	g, err := route.BuildGraph([]route.Route{
//	    {Origin: "Tatooine", Destination: "Dagobah", TravelTime: 6},
//	    {Origin: "Dagobah", Destination: "Endor", TravelTime: 4},
//	})
//	if err != nil {
//	    // errors.Is(err, route.ErrMalformedInput)
//	}
//	for _, h := range g.Neighbors("Dagobah") {
//	    fmt.Println(h.To, h.TravelTime)
//	}
package route
