package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gowtham152/optimization-galaxy/engine"
)

func newBatchCmd(a *app) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "batch <problem> <algorithm> <file>...",
		Short: "Solve many instance files concurrently",
		Long: `batch solves each file on its own goroutine, at most --workers at a time,
and prints the envelopes as one JSON array in argument order. An unreadable
file is solved as the fallback instance, like any other malformed source.`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			problem, err := engine.ParseProblemType(args[0])
			if err != nil {
				return err
			}
			alg, err := engine.ParseAlgorithm(args[1])
			if err != nil {
				return err
			}
			if workers <= 0 {
				workers = a.cfg.Batch.Workers
			}

			var (
				files = args[2:]
				envs  = make([]engine.Envelope, len(files))
			)
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(workers)
			for i, path := range files {
				g.Go(func() error {
					env, err := a.eng.Solve(ctx, problem, alg, engine.FromFile(path))
					if err != nil {
						return err
					}
					envs[i] = env
					a.log.Info().
						Str("file", path).
						Float64("objective", env.Objective()).
						Bool("fallback", env.UsedFallback).
						Msg("batch item solved")

					return nil
				})
			}
			if err = g.Wait(); err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), envs)
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Concurrent solves (default from config)")

	return cmd
}
