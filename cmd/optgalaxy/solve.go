package main

import (
	"github.com/spf13/cobra"

	"github.com/gowtham152/optimization-galaxy/engine"
)

func newSolveCmd(a *app) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "solve <problem> <algorithm>",
		Short: "Solve one instance with one strategy",
		Example: `  optgalaxy solve tsp dp -i cities.tsp
  cat items.csv | optgalaxy solve knapsack backtracking`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			problem, err := engine.ParseProblemType(args[0])
			if err != nil {
				return err
			}
			alg, err := engine.ParseAlgorithm(args[1])
			if err != nil {
				return err
			}
			env, err := a.eng.Solve(cmd.Context(), problem, alg, source(cmd, input))
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), env)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "Instance file (default stdin)")

	return cmd
}
