package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newRoutesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "routes FALCON",
		Short: "Print the route graph as an adjacency list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.planner(cmd, args[0], nil)
			if err != nil {
				return err
			}
			g := p.Graph()
			w := cmd.OutOrStdout()
			for _, planet := range g.Planets() {
				hops := g.Neighbors(planet)
				parts := make([]string, len(hops))
				for i, h := range hops {
					parts[i] = fmt.Sprintf("%s(%d)", h.To, h.TravelTime)
				}
				fmt.Fprintf(w, "%s: %s\n", planet, strings.Join(parts, " "))
			}
			fmt.Fprintf(w, "%d planets, %d routes, departure %s, arrival %s, autonomy %d\n",
				g.PlanetCount(), g.RouteCount(), p.Departure(), p.Arrival(), p.Autonomy())
			return nil
		},
	}
}
