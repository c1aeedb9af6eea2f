// Package dijkstra_test validates travel-day distances over route graphs:
// option validation, basic correctness, distance caps, and path recovery.
package dijkstra_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/rebelnav/navodds/dijkstra"
	"github.com/rebelnav/navodds/route"
)

func mustGraph(t *testing.T, routes ...route.Route) *route.Graph {
	t.Helper()
	g, err := route.BuildGraph(routes)
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	return g
}

func universe(t *testing.T) *route.Graph {
	return mustGraph(t,
		route.Route{Origin: "Tatooine", Destination: "Dagobah", TravelTime: 6},
		route.Route{Origin: "Dagobah", Destination: "Endor", TravelTime: 4},
		route.Route{Origin: "Dagobah", Destination: "Hoth", TravelTime: 1},
		route.Route{Origin: "Hoth", Destination: "Endor", TravelTime: 1},
		route.Route{Origin: "Tatooine", Destination: "Hoth", TravelTime: 6},
	)
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_EmptySource(t *testing.T) {
	if _, _, err := dijkstra.Dijkstra(route.NewGraph()); err != dijkstra.ErrEmptySource {
		t.Fatalf("Expected ErrEmptySource, got %v", err)
	}
}

func TestDijkstra_NilGraph(t *testing.T) {
	if _, _, err := dijkstra.Dijkstra(nil, dijkstra.Source("X")); err != dijkstra.ErrNilGraph {
		t.Fatalf("Expected ErrNilGraph, got %v", err)
	}
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	if _, _, err := dijkstra.Dijkstra(universe(t), dijkstra.Source("Alderaan")); err != dijkstra.ErrVertexNotFound {
		t.Fatalf("Expected ErrVertexNotFound, got %v", err)
	}
}

func TestDijkstra_NegativeMaxDistance(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(universe(t), dijkstra.Source("Endor"), dijkstra.WithMaxDistance(-1))
	if !errors.Is(err, dijkstra.ErrBadMaxDistance) {
		t.Fatalf("Expected ErrBadMaxDistance, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Distances
// ------------------------------------------------------------------------

func TestDijkstra_UniverseFromEndor(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(universe(t), dijkstra.Source("Endor"))
	if err != nil {
		t.Fatal(err)
	}
	if prev != nil {
		t.Errorf("prev should be nil without WithReturnPath, got %v", prev)
	}
	want := map[string]int{"Endor": 0, "Hoth": 1, "Dagobah": 2, "Tatooine": 7}
	if !reflect.DeepEqual(dist, want) {
		t.Errorf("dist = %v; want %v", dist, want)
	}
}

func TestDijkstra_Disconnected(t *testing.T) {
	g := mustGraph(t,
		route.Route{Origin: "A", Destination: "B", TravelTime: 2},
		route.Route{Origin: "C", Destination: "D", TravelTime: 1},
	)
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		t.Fatal(err)
	}
	if dist["B"] != 2 {
		t.Errorf("dist[B] = %d; want 2", dist["B"])
	}
	for _, p := range []string{"C", "D"} {
		if dist[p] != dijkstra.Unreachable {
			t.Errorf("dist[%s] = %d; want Unreachable", p, dist[p])
		}
	}
}

func TestDijkstra_ParallelRoutesPickShortest(t *testing.T) {
	g := mustGraph(t,
		route.Route{Origin: "A", Destination: "B", TravelTime: 9},
		route.Route{Origin: "A", Destination: "B", TravelTime: 3},
	)
	dist, _, _ := dijkstra.Dijkstra(g, dijkstra.Source("B"))
	if dist["A"] != 3 {
		t.Errorf("dist[A] = %d; want 3", dist["A"])
	}
}

func TestDijkstra_ZeroTravelTime(t *testing.T) {
	g := mustGraph(t,
		route.Route{Origin: "A", Destination: "B", TravelTime: 0},
		route.Route{Origin: "B", Destination: "C", TravelTime: 0},
	)
	dist, _, _ := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if dist["C"] != 0 {
		t.Errorf("dist[C] = %d; want 0", dist["C"])
	}
}

func TestDijkstra_HugeTravelTimeDoesNotWrap(t *testing.T) {
	g := mustGraph(t,
		route.Route{Origin: "A", Destination: "B", TravelTime: 1},
		route.Route{Origin: "B", Destination: "C", TravelTime: math.MaxInt},
	)
	for _, opts := range [][]dijkstra.Option{
		{dijkstra.Source("A")},
		{dijkstra.Source("A"), dijkstra.WithMaxDistance(5)},
	} {
		dist, _, err := dijkstra.Dijkstra(g, opts...)
		if err != nil {
			t.Fatal(err)
		}
		if dist["B"] != 1 {
			t.Errorf("dist[B] = %d; want 1", dist["B"])
		}
		if dist["C"] != dijkstra.Unreachable {
			t.Errorf("dist[C] = %d; want Unreachable", dist["C"])
		}
	}
}

func TestDijkstra_MaxDistance(t *testing.T) {
	dist, _, err := dijkstra.Dijkstra(universe(t), dijkstra.Source("Endor"), dijkstra.WithMaxDistance(2))
	if err != nil {
		t.Fatal(err)
	}
	if dist["Dagobah"] != 2 {
		t.Errorf("dist[Dagobah] = %d; want 2", dist["Dagobah"])
	}
	if dist["Tatooine"] != dijkstra.Unreachable {
		t.Errorf("dist[Tatooine] = %d; want Unreachable beyond cap", dist["Tatooine"])
	}
}

// ------------------------------------------------------------------------
// 3. Paths
// ------------------------------------------------------------------------

func TestDijkstra_PathTo(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(universe(t), dijkstra.Source("Tatooine"), dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	got := dijkstra.PathTo(prev, dist, "Endor")
	want := []string{"Tatooine", "Hoth", "Endor"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PathTo(Endor) = %v; want %v", got, want)
	}
	if p := dijkstra.PathTo(prev, dist, "Tatooine"); !reflect.DeepEqual(p, []string{"Tatooine"}) {
		t.Errorf("PathTo(source) = %v; want [Tatooine]", p)
	}
	if p := dijkstra.PathTo(prev, dist, "Alderaan"); p != nil {
		t.Errorf("PathTo(unknown) = %v; want nil", p)
	}
}
