package dijkstra_test

import (
	"fmt"

	"github.com/rebelnav/navodds/dijkstra"
	"github.com/rebelnav/navodds/route"
)

// ExampleDijkstra finds the fastest way from Tatooine to Endor, ignoring fuel.
func ExampleDijkstra() {
	g, _ := route.BuildGraph([]route.Route{
		{Origin: "Tatooine", Destination: "Dagobah", TravelTime: 6},
		{Origin: "Dagobah", Destination: "Endor", TravelTime: 4},
		{Origin: "Dagobah", Destination: "Hoth", TravelTime: 1},
		{Origin: "Hoth", Destination: "Endor", TravelTime: 1},
		{Origin: "Tatooine", Destination: "Hoth", TravelTime: 6},
	})
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("Tatooine"), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(dist["Endor"], dijkstra.PathTo(prev, dist, "Endor"))
	// Output:
	// 7 [Tatooine Hoth Endor]
}
