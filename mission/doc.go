// Package mission loads the two documents that describe a mission and turns
// them into odds queries.
//
// The vehicle document carries the tank size, the departure and arrival
// planets and the route network, either inline or as a SQLite database:
//
//	{
//	  "autonomy": 6,
//	  "departure": "Tatooine",
//	  "arrival": "Endor",
//	  "routes_db": "universe.db",
//	  "routes": [{"origin": "Tatooine", "destination": "Dagobah", "travelTime": 6}]
//	}
//
// The empire document carries the countdown and the bounty-hunter schedule:
//
//	{
//	  "countdown": 8,
//	  "bounty_hunters": [{"planet": "Hoth", "day": 6}]
//	}
//
// Both documents may also be written in YAML (.yaml, .yml). Structural
// problems are reported as route.ErrMalformedInput so a caller can treat
// every input failure of the module the same way; a missing file is
// ErrFileNotFound.
//
// A Planner builds the route graph once and answers any number of empire
// documents against it, sequentially or concurrently (Batch).
package mission
