package odds_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rebelnav/navodds/odds"
	"github.com/rebelnav/navodds/route"
)

// mission is one randomly generated query.
type mission struct {
	g         *route.Graph
	autonomy  int
	countdown int
	hazards   []odds.Hazard
}

// randomMission builds a small connected-ish network with positive travel times.
func randomMission(t *testing.T, rng *rand.Rand) mission {
	t.Helper()
	const planets = 6
	name := func(i int) string { return fmt.Sprintf("P%d", i) }

	var routes []route.Route
	for i := 1; i < planets; i++ {
		routes = append(routes, route.Route{Origin: name(rng.Intn(i)), Destination: name(i), TravelTime: 1 + rng.Intn(4)})
	}
	for k := rng.Intn(5); k > 0; k-- {
		routes = append(routes, route.Route{Origin: name(rng.Intn(planets)), Destination: name(rng.Intn(planets)), TravelTime: 1 + rng.Intn(5)})
	}
	g, err := route.BuildGraph(routes)
	require.NoError(t, err)

	var hz []odds.Hazard
	for k := rng.Intn(10); k > 0; k-- {
		hz = append(hz, odds.Hazard{Planet: name(rng.Intn(planets)), Day: rng.Intn(12)})
	}

	return mission{g: g, autonomy: 1 + rng.Intn(5), countdown: rng.Intn(12), hazards: hz}
}

func (m mission) odds(t *testing.T, countdown int, hz []odds.Hazard, opts ...odds.Option) float64 {
	t.Helper()
	p, err := odds.ComputeOdds(m.g, m.autonomy, "P0", "P5", countdown, hz, opts...)
	require.NoError(t, err)
	return p
}

// TestProperties checks range, determinism, pruning equivalence and both
// monotonicity properties over many random missions.
func TestProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		m := randomMission(t, rng)
		base := m.odds(t, m.countdown, m.hazards)

		require.GreaterOrEqual(t, base, 0.0, "mission %d", i)
		require.LessOrEqual(t, base, 1.0, "mission %d", i)

		require.Equal(t, base, m.odds(t, m.countdown, m.hazards), "mission %d: not deterministic", i)
		require.Equal(t, base, m.odds(t, m.countdown, m.hazards, odds.WithoutReachabilityPruning()),
			"mission %d: pruning changed the result", i)

		require.GreaterOrEqual(t, m.odds(t, m.countdown+1, m.hazards), base,
			"mission %d: longer countdown lowered the odds", i)

		if len(m.hazards) > 0 {
			k := rng.Intn(len(m.hazards))
			fewer := append(append([]odds.Hazard{}, m.hazards[:k]...), m.hazards[k+1:]...)
			require.GreaterOrEqual(t, m.odds(t, m.countdown, fewer), base,
				"mission %d: removing a hazard lowered the odds", i)
		}
	}
}

// TestCountdownMonotonic_Reference sweeps the reference mission's countdown.
func TestCountdownMonotonic_Reference(t *testing.T) {
	g := universe(t)
	prev := 0.0
	for c := 0; c <= 20; c++ {
		p, err := odds.ComputeOdds(g, 6, "Tatooine", "Endor", c, hothHunters)
		require.NoError(t, err)
		require.GreaterOrEqual(t, p, prev, "countdown=%d", c)
		prev = p
	}
	require.Equal(t, 1.0, prev)
}

// TestUnreachableIgnoringFuel is zero whenever no path fits the countdown.
func TestUnreachableIgnoringFuel(t *testing.T) {
	g, err := route.BuildGraph([]route.Route{
		{Origin: "A", Destination: "B", TravelTime: 3},
		{Origin: "C", Destination: "D", TravelTime: 1},
	})
	require.NoError(t, err)
	for _, c := range []int{0, 5, 100} {
		p, err := odds.ComputeOdds(g, 10, "A", "D", c, nil, odds.WithoutReachabilityPruning())
		require.NoError(t, err)
		require.Zero(t, p)
	}
}
