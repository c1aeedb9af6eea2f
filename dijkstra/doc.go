// Package dijkstra computes minimum total travel days over a route.Graph.
//
// The odds search uses it as a reachability bound: distances are taken from
// the destination (routes are undirected, so dist(destination→p) equals
// dist(p→destination)), and any state that cannot arrive before the
// countdown even with unlimited fuel and no hazards is never enqueued.
//
// Complexity:
//
//   - Time:  O((V + E) log V)  lazy decrease-key min-heap
//   - Space: O(V + E)
//
// Options:
//
//   - Source(id)          starting planet, required.
//   - WithReturnPath()    also return the predecessor map.
//   - WithMaxDistance(d)  stop once the closest unsettled planet is beyond d days.
//
// Errors:
//
//   - ErrEmptySource     Source was not provided.
//   - ErrNilGraph        graph pointer is nil.
//   - ErrVertexNotFound  Source is not mentioned by any route.
//   - ErrBadMaxDistance  WithMaxDistance(d) with d < 0.
//
// Example:
//
//	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("Endor"))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(dist["Tatooine"]) // fewest days from Tatooine to Endor
package dijkstra
