// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"

	"github.com/rebelnav/navodds/route"
)

// Dijkstra computes the fewest travel days from the source planet to every
// other planet in g.
//
// Returns:
//
//   - dist: planet → minimum days; planets never settled map to Unreachable.
//   - prev: predecessor map if WithReturnPath() was given, nil otherwise.
//     prev[p] == "" for the source and for unreachable planets.
//   - err:  ErrEmptySource, ErrNilGraph, ErrVertexNotFound or ErrBadMaxDistance.
//
// Travel times are non-negative by construction (route.Graph rejects
// negative values), so no pre-scan is needed.
func Dijkstra(g *route.Graph, opts ...Option) (map[string]int, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasPlanet(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	planets := g.Planets()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int, len(planets)),
		prev:    make(map[string]string, len(planets)),
		settled: make(map[string]bool, len(planets)),
		pq:      make(nodePQ, 0, len(planets)),
	}
	r.init(planets)
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state of one Dijkstra execution.
type runner struct {
	g       *route.Graph
	options Options
	dist    map[string]int
	prev    map[string]string
	settled map[string]bool
	pq      nodePQ
}

func (r *runner) init(planets []string) {
	for _, p := range planets {
		r.dist[p] = Unreachable
		r.prev[p] = ""
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops the closest unsettled planet until the heap drains or the
// closest candidate lies beyond MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.settled[item.id] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.settled[item.id] = true
		r.relax(item.id)
	}

	// planets whose tentative distance exceeded the cap were never settled
	for p, d := range r.dist {
		if !r.settled[p] && d != Unreachable {
			r.dist[p] = Unreachable
			r.prev[p] = ""
		}
	}
}

// relax lowers the tentative distance of u's neighbors. u is settled, so
// r.dist[u] <= MaxDistance and the subtraction cannot overflow.
func (r *runner) relax(u string) {
	du := r.dist[u]
	r.g.EachNeighbor(u, func(h route.Hop) bool {
		if h.TravelTime > r.options.MaxDistance-du {
			return true
		}
		newDist := du + h.TravelTime
		if newDist >= r.dist[h.To] {
			return true
		}
		r.dist[h.To] = newDist
		r.prev[h.To] = u
		heap.Push(&r.pq, &nodeItem{id: h.To, dist: newDist})
		return true
	})
}

// nodeItem is a heap entry: a planet and its tentative distance.
type nodeItem struct {
	id   string
	dist int
}

// nodePQ is a min-heap of *nodeItem ordered by dist, ties broken by id
// so the settle order is deterministic.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// PathTo rebuilds the planet sequence source → dest from a predecessor map.
// Returns nil when dest was not reached.
func PathTo(prev map[string]string, dist map[string]int, dest string) []string {
	d, ok := dist[dest]
	if !ok || d == Unreachable {
		return nil
	}
	path := []string{}
	for cur := dest; cur != ""; cur = prev[cur] {
		path = append(path, cur)
		if len(path) > len(dist) {
			return nil // corrupt predecessor map
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
