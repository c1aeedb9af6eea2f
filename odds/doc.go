// Package odds computes the best chance a vehicle has of reaching a
// destination planet before a countdown expires, given a fuel autonomy and a
// schedule of bounty-hunter (hazard) presences.
//
// What
//
//   - Explores the time-and-fuel expanded state space (planet, day, fuel)
//     breadth-first from (start, 0, autonomy) with probability 1.
//   - Every day spent on a planet where hunters are present multiplies the
//     running probability by CaptureSurvival (0.9); encounters compound.
//   - A jump the tank cannot cover makes the vehicle wait in place instead:
//     one state per waiting day, each with a full tank, each exposed to the
//     hazards of that day.
//   - A state is (re-)enqueued only when its probability strictly improves the
//     best value recorded for its (planet, day, fuel) key, so the search always
//     terminates.
//   - Unreachability is a normal 0.0 result, never an error.
//
// Waiting semantics
//
//	From (planet, day, p) the waiting chain visits day+1, day+2, … up to the
//	countdown, offering p·factor(planet, d) with a full tank, and stops at the
//	first day that does not strictly improve the recorded value for that key.
//
// Reachability bound
//
//	By default the search first runs dijkstra from the destination and never
//	enqueues a state that could not arrive in time even with an infinite tank.
//	Such states contribute nothing, so the result is unchanged; only the
//	number of states visited shrinks. WithoutReachabilityPruning() turns it off.
//
// Determinism
//
//	route.Graph returns neighbors in a fixed order and the frontier is FIFO,
//	so hook sequences and results are bit-identical across runs.
//
// Concurrency
//
//	All mutable state (frontier, visited table, best value) lives in a walker
//	created per call. A route.Graph and a Schedule are read-only here and may
//	be shared by concurrent searches.
//
// Options
//
//   - WithContext(ctx)              cancellation, checked once per dequeue.
//   - WithMaxStates(n)              cap on enqueued states (ErrResourceExhausted).
//   - WithOnEnqueue(fn), WithOnDequeue(fn)  observation hooks.
//   - WithCaptureSurvival(f)        per-encounter survival factor, 0 < f <= 1.
//   - WithoutReachabilityPruning()  explore exactly the reference state set.
//
// Errors
//
//   - ErrMalformedInput     nil graph, autonomy <= 0, countdown < 0, empty
//     planet names, negative hazard days, or an invalid option.
//   - ErrResourceExhausted  the MaxStates cap was hit; no partial result.
//   - context.Canceled / context.DeadlineExceeded from WithContext.
//
// Usage
//
//	p, err := odds.ComputeOdds(g, 6, "Tatooine", "Endor", 8, []odds.Hazard{
//	    {Planet: "Hoth", Day: 6}, {Planet: "Hoth", Day: 7}, {Planet: "Hoth", Day: 8},
//	})
//	// p == 0.81
package odds
