package main

import (
	"github.com/spf13/cobra"

	"github.com/gowtham152/optimization-galaxy/engine"
)

func newHybridCmd(a *app) *cobra.Command {
	var (
		input string
		algs  []string
	)
	cmd := &cobra.Command{
		Use:   "hybrid <problem>",
		Short: "Run several strategies on one instance and keep the best",
		Long: `hybrid runs every listed strategy on its own fresh copy of the instance.
The best result has the shortest tour for tsp and the largest objective
otherwise; ties go to the strategy listed first.`,
		Example: `  optgalaxy hybrid tsp -a greedy,dp,divideconquer -i cities.tsp`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			problem, err := engine.ParseProblemType(args[0])
			if err != nil {
				return err
			}
			if len(algs) == 0 {
				algs = a.cfg.Hybrid.Algorithms
			}
			list, err := engine.ParseAlgorithms(algs)
			if err != nil {
				return err
			}
			res, err := a.eng.HybridSolve(cmd.Context(), problem, list, source(cmd, input))
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "Instance file (default stdin)")
	cmd.Flags().StringSliceVarP(&algs, "algorithms", "a", nil, "Strategies to compare (default from config)")

	return cmd
}
