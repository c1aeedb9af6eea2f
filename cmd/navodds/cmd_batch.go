package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rebelnav/navodds/mission"
)

func newBatchCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "batch FALCON EMPIRE...",
		Short: "Evaluate several empire documents against one route graph",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args[1:]
			empires := make([]*mission.Empire, len(paths))
			sources := make(map[*mission.Empire]string, len(paths))
			for i, path := range paths {
				e, err := mission.LoadEmpire(path)
				if err != nil {
					return err
				}
				empires[i], sources[e] = e, path
			}
			p, err := a.planner(cmd, args[0], sources)
			if err != nil {
				return err
			}

			results, err := p.Batch(cmd.Context(), empires, a.parallelism)
			if err != nil {
				return err
			}
			a.logger.Debug("batch computed",
				"documents", len(paths),
				"parallel", a.parallelism,
			)

			w := cmd.OutOrStdout()
			if asJSON {
				out := make([]oddsJSON, len(results))
				for i, res := range results {
					out[i] = toJSON(paths[i], res)
				}
				return writeJSON(w, out)
			}
			for i, res := range results {
				fmt.Fprintf(w, "%s\t%s\n", paths[i], mission.FormatOdds(res.Probability))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&a.parallelism, "parallel", 0, "maximum concurrent searches (0 = unlimited)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the results as JSON")

	return cmd
}
