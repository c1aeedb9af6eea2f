package odds_test

import (
	"fmt"

	"github.com/rebelnav/navodds/odds"
	"github.com/rebelnav/navodds/route"
)

// ExampleComputeOdds reproduces the mission where hunters wait on Hoth.
func ExampleComputeOdds() {
	g, _ := route.BuildGraph([]route.Route{
		{Origin: "Tatooine", Destination: "Dagobah", TravelTime: 6},
		{Origin: "Dagobah", Destination: "Endor", TravelTime: 4},
		{Origin: "Dagobah", Destination: "Hoth", TravelTime: 1},
		{Origin: "Hoth", Destination: "Endor", TravelTime: 1},
		{Origin: "Tatooine", Destination: "Hoth", TravelTime: 6},
	})
	hunters := []odds.Hazard{{Planet: "Hoth", Day: 6}, {Planet: "Hoth", Day: 7}, {Planet: "Hoth", Day: 8}}

	for _, countdown := range []int{7, 8, 9, 10} {
		p, err := odds.ComputeOdds(g, 6, "Tatooine", "Endor", countdown, hunters)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("countdown %2d: %.4f\n", countdown, p)
	}
	// Output:
	// countdown  7: 0.0000
	// countdown  8: 0.8100
	// countdown  9: 0.9000
	// countdown 10: 1.0000
}

// ExampleSearch prints the plan behind the best odds.
func ExampleSearch() {
	g, _ := route.BuildGraph([]route.Route{
		{Origin: "Tatooine", Destination: "Dagobah", TravelTime: 6},
		{Origin: "Dagobah", Destination: "Endor", TravelTime: 4},
		{Origin: "Dagobah", Destination: "Hoth", TravelTime: 1},
		{Origin: "Hoth", Destination: "Endor", TravelTime: 1},
		{Origin: "Tatooine", Destination: "Hoth", TravelTime: 6},
	})
	sched, _ := odds.NewSchedule([]odds.Hazard{{Planet: "Hoth", Day: 6}, {Planet: "Hoth", Day: 7}, {Planet: "Hoth", Day: 8}})

	res, err := odds.Search(g, odds.Query{Autonomy: 6, Countdown: 9, Start: "Tatooine", Destination: "Endor"}, sched)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range res.Itinerary {
		action := "arrive"
		if s.Refuel {
			action = "refuel"
		}
		fmt.Printf("day %d %-6s %s\n", s.Day, action, s.Planet)
	}
	// Output:
	// day 0 arrive Tatooine
	// day 6 arrive Dagobah
	// day 7 refuel Dagobah
	// day 8 arrive Hoth
	// day 9 arrive Endor
}
