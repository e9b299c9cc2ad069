package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gowtham152/optimization-galaxy/engine"
	"github.com/gowtham152/optimization-galaxy/internal/config"
	"github.com/gowtham152/optimization-galaxy/internal/logging"
	"github.com/gowtham152/optimization-galaxy/internal/metrics"
)

// app is the state shared by every subcommand, built in PersistentPreRunE.
type app struct {
	cfgPath    string
	logLevel   string
	metricsOut string

	cfg config.Config
	log zerolog.Logger
	reg *prometheus.Registry
	eng *engine.Engine
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "optgalaxy",
		Short: "Combinatorial optimization engine",
		Long: `optgalaxy solves symmetric TSP (TSPLIB text), 0/1 knapsack (CSV) and
bipartite matching (JSON/YAML) instances with greedy, dp, backtracking,
branchbound or divideconquer strategies.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(errOut)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.dumpMetrics()
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides config")
	pf.StringVar(&a.metricsOut, "metrics-out", "", "Write Prometheus text metrics to this file after the run")

	root.AddCommand(
		newSolveCmd(a),
		newHybridCmd(a),
		newBatchCmd(a),
		newAlgorithmsCmd(),
		newVersionCmd(),
	)

	return root
}

func (a *app) setup(errOut io.Writer) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	a.cfg = cfg
	a.log = logging.New(cfg.Logging, errOut)

	a.reg = prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(a.reg)
	if err != nil {
		return err
	}
	a.eng = engine.New(
		engine.WithLogger(a.log),
		engine.WithLimits(cfg.EngineLimits()),
		engine.WithObserver(rec),
	)
	a.log.Debug().Str("config", a.cfgPath).Msg("engine ready")

	return nil
}

func (a *app) dumpMetrics() error {
	if a.metricsOut == "" || a.reg == nil {
		return nil
	}
	f, err := os.Create(a.metricsOut)
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	if err = metrics.WriteText(f, a.reg); err != nil {
		f.Close()
		return fmt.Errorf("metrics: %w", err)
	}

	return f.Close()
}

// source picks the input file, or stdin for "" and "-".
func source(cmd *cobra.Command, path string) engine.Source {
	if path == "" || path == "-" {
		return engine.FromReader(cmd.InOrStdin())
	}

	return engine.FromFile(path)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
