// SPDX-License-Identifier: MIT

package mission

import (
	"errors"

	"github.com/rebelnav/navodds/odds"
)

// Defaults applied when the vehicle document omits departure or arrival.
const (
	DefaultDeparture = "Tatooine"
	DefaultArrival   = "Endor"
)

// Sentinel errors for document loading.
var (
	// ErrFileNotFound indicates that a document or route database does not exist.
	ErrFileNotFound = errors.New("mission: file not found")

	// ErrInvalidDocument indicates content that cannot be decoded at all.
	ErrInvalidDocument = errors.New("mission: invalid document")

	// ErrUnsupportedFormat indicates a file extension that is neither JSON nor YAML.
	ErrUnsupportedFormat = errors.New("mission: unsupported document format")
)

// RouteRecord is one route of the vehicle document.
// Both "travelTime" and "travel_time" spellings are accepted.
type RouteRecord struct {
	Origin      string `json:"origin" yaml:"origin" validate:"required"`
	Destination string `json:"destination" yaml:"destination" validate:"required"`
	TravelTime  *int   `json:"travelTime" yaml:"travelTime" validate:"required,gte=0"`

	TravelTimeAlt *int `json:"travel_time,omitempty" yaml:"travel_time,omitempty" validate:"-"`
}

// Falcon is the vehicle document.
type Falcon struct {
	Autonomy  *int          `json:"autonomy" yaml:"autonomy" validate:"required,gt=0"`
	Departure string        `json:"departure" yaml:"departure"`
	Arrival   string        `json:"arrival" yaml:"arrival"`
	RoutesDB  string        `json:"routes_db" yaml:"routes_db"`
	Routes    []RouteRecord `json:"routes" yaml:"routes" validate:"dive"`

	// baseDir resolves a relative RoutesDB; set by LoadFalcon.
	baseDir string
}

// BountyHunter is one hazard entry of the empire document.
type BountyHunter struct {
	Planet string `json:"planet" yaml:"planet" validate:"required"`
	Day    *int   `json:"day" yaml:"day" validate:"required,gte=0"`
}

// Empire is the adversary document.
type Empire struct {
	Countdown     *int           `json:"countdown" yaml:"countdown" validate:"required,gte=0"`
	BountyHunters []BountyHunter `json:"bounty_hunters" yaml:"bounty_hunters" validate:"dive"`
}

// Hazards converts the bounty-hunter list for the odds search.
func (e *Empire) Hazards() []odds.Hazard {
	out := make([]odds.Hazard, 0, len(e.BountyHunters))
	for _, bh := range e.BountyHunters {
		out = append(out, odds.Hazard{Planet: bh.Planet, Day: *bh.Day})
	}
	return out
}

// Days returns the countdown. Only valid on a validated document.
func (e *Empire) Days() int { return *e.Countdown }
