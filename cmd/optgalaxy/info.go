package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gowtham152/optimization-galaxy/engine"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List problem types and strategies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, p := range engine.ProblemTypes() {
				if _, err := fmt.Fprintf(out, "%s:", p); err != nil {
					return err
				}
				for _, alg := range engine.Algorithms() {
					fmt.Fprintf(out, " %s", alg)
				}
				fmt.Fprintln(out)
			}

			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "optgalaxy version %s\n", version)
		},
	}
}
