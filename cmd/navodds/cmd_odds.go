package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rebelnav/navodds/mission"
	"github.com/rebelnav/navodds/odds"
)

// stopJSON is one itinerary step in --json output.
type stopJSON struct {
	Planet      string  `json:"planet"`
	Day         int     `json:"day"`
	Fuel        int     `json:"fuel"`
	Probability float64 `json:"probability"`
	Refuel      bool    `json:"refuel,omitempty"`
}

// oddsJSON is the --json document for one empire.
type oddsJSON struct {
	Empire     string     `json:"empire,omitempty"`
	Odds       float64    `json:"odds"`
	Percent    int        `json:"percent"`
	ArrivalDay *int       `json:"arrival_day,omitempty"`
	Itinerary  []stopJSON `json:"itinerary,omitempty"`
	Expanded   int        `json:"expanded"`
	Enqueued   int        `json:"enqueued"`
}

func toJSON(source string, res *odds.Result) oddsJSON {
	out := oddsJSON{
		Empire:   source,
		Odds:     res.Probability,
		Percent:  mission.Percent(res.Probability),
		Expanded: res.Expanded,
		Enqueued: res.Enqueued,
	}
	if res.Arrival >= 0 {
		day := res.Arrival
		out.ArrivalDay = &day
	}
	for _, s := range res.Itinerary {
		out.Itinerary = append(out.Itinerary, stopJSON{
			Planet:      s.Planet,
			Day:         s.Day,
			Fuel:        s.Fuel,
			Probability: s.Probability,
			Refuel:      s.Refuel,
		})
	}

	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newOddsCmd(a *app) *cobra.Command {
	var (
		itinerary bool
		asJSON    bool
	)
	cmd := &cobra.Command{
		Use:   "odds FALCON EMPIRE",
		Short: "Print the success probability for one empire document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := mission.LoadEmpire(args[1])
			if err != nil {
				return err
			}
			p, err := a.planner(cmd, args[0], map[*mission.Empire]string{e: args[1]})
			if err != nil {
				return err
			}
			res, err := p.Odds(cmd.Context(), e)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(w, toJSON("", res))
			}
			fmt.Fprintln(w, mission.FormatOdds(res.Probability))
			if itinerary {
				printItinerary(w, res)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&itinerary, "itinerary", false, "also print the day-by-day itinerary")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	return cmd
}

func printItinerary(w io.Writer, res *odds.Result) {
	if len(res.Itinerary) == 0 {
		fmt.Fprintln(w, "no itinerary reaches the arrival planet in time")
		return
	}
	for i, s := range res.Itinerary {
		action := "travel"
		switch {
		case i == 0:
			action = "depart"
		case s.Refuel:
			action = "refuel"
		}
		fmt.Fprintf(w, "day %2d  %-10s %-6s fuel=%d odds=%s\n",
			s.Day, s.Planet, action, s.Fuel, mission.FormatOdds(s.Probability))
	}
}
