// SPDX-License-Identifier: MIT

package odds

import "fmt"

// Hazard is a bounty-hunter presence on a planet on one day.
type Hazard struct {
	Planet string
	Day    int
}

// Schedule maps a planet to the set of days hunters are present there.
// A nil Schedule is valid and has no hazards.
type Schedule map[string]map[int]struct{}

// NewSchedule indexes hazards by planet. Duplicate entries collapse:
// a planet/day pair is either hazardous or not.
func NewSchedule(hazards []Hazard) (Schedule, error) {
	s := make(Schedule)
	for i, h := range hazards {
		if h.Planet == "" {
			return nil, fmt.Errorf("%w: hazard %d has no planet", ErrMalformedInput, i)
		}
		if h.Day < 0 {
			return nil, fmt.Errorf("%w: hazard %d on %s has negative day %d", ErrMalformedInput, i, h.Planet, h.Day)
		}
		days, ok := s[h.Planet]
		if !ok {
			days = make(map[int]struct{})
			s[h.Planet] = days
		}
		days[h.Day] = struct{}{}
	}

	return s, nil
}

// Has reports whether hunters are on planet on day.
func (s Schedule) Has(planet string, day int) bool {
	_, ok := s[planet][day]
	return ok
}

// Factor is the multiplier for being on planet on day: survival on a hazard
// day, 1 otherwise. The search passes CaptureSurvival unless overridden.
func (s Schedule) Factor(planet string, day int, survival float64) float64 {
	if s.Has(planet, day) {
		return survival
	}
	return 1.0
}

// Len returns the number of distinct planet/day pairs.
func (s Schedule) Len() int {
	n := 0
	for _, days := range s {
		n += len(days)
	}
	return n
}
