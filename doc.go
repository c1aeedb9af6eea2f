// Package navodds computes the odds that a fuel-limited vehicle reaches its
// arrival planet before a countdown expires, given a schedule of bounty
// hunters it would rather not meet.
//
// The module is organized in layers:
//
//	route/     undirected planet graph with integer travel times (thread-safe)
//	dijkstra/  fewest-day distances, used to prune hopeless search states
//	odds/      time-and-fuel expanded search for the best success probability
//	mission/   vehicle and empire documents (JSON, YAML, SQLite routes) and Planner
//	cmd/navodds  command-line front end
//
// Every input failure wraps route.ErrMalformedInput; the search additionally
// reports odds.ErrResourceExhausted when a state budget is set and exceeded.
//
// Quick start:
//
//	g, _ := route.BuildGraph([]route.Route{
//		{Origin: "Tatooine", Destination: "Hoth", TravelTime: 6},
//		{Origin: "Hoth", Destination: "Endor", TravelTime: 1},
//	})
//	p, _ := odds.ComputeOdds(g, 6, "Tatooine", "Endor", 8,
//		[]odds.Hazard{{Planet: "Hoth", Day: 6}})
//	fmt.Println(p) // 0.9
//
// Library packages never log; cmd/navodds wires log/slog, Prometheus
// textfile metrics and environment configuration around them.
package navodds
