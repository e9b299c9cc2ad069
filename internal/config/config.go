// Package config loads optgalaxy settings: defaults, then an optional YAML
// file, then OPTGALAXY_* environment variables (LIMITS_TSP_HELD_KARP and
// so on: dots in a key become underscores).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/gowtham152/optimization-galaxy/engine"
	"github.com/gowtham152/optimization-galaxy/knapsack"
	"github.com/gowtham152/optimization-galaxy/tsp"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "OPTGALAXY"

// ErrInvalid is returned for settings that load but make no sense.
var ErrInvalid = errors.New("config: invalid setting")

type Config struct {
	Logging Logging `mapstructure:"logging" yaml:"logging"`
	Limits  Limits  `mapstructure:"limits" yaml:"limits"`
	Hybrid  Hybrid  `mapstructure:"hybrid" yaml:"hybrid"`
	Batch   Batch   `mapstructure:"batch" yaml:"batch"`
}

type Logging struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Pretty bool   `mapstructure:"pretty" yaml:"pretty"`
}

// Limits are the size guards; see tsp.Limits and knapsack.Limits.
type Limits struct {
	TSP struct {
		HeldKarp       int `mapstructure:"held_karp" yaml:"held_karp"`
		Backtracking   int `mapstructure:"backtracking" yaml:"backtracking"`
		BranchAndBound int `mapstructure:"branch_and_bound" yaml:"branch_and_bound"`
		DivideBase     int `mapstructure:"divide_base" yaml:"divide_base"`
	} `mapstructure:"tsp" yaml:"tsp"`
	Knapsack struct {
		Backtracking  int `mapstructure:"backtracking" yaml:"backtracking"`
		DivideConquer int `mapstructure:"divide_conquer" yaml:"divide_conquer"`
		DPCells       int `mapstructure:"dp_cells" yaml:"dp_cells"`
	} `mapstructure:"knapsack" yaml:"knapsack"`
}

// Hybrid holds the default algorithm list of the hybrid command.
type Hybrid struct {
	Algorithms []string `mapstructure:"algorithms" yaml:"algorithms"`
}

// Batch bounds the concurrency of the batch command.
type Batch struct {
	Workers int `mapstructure:"workers" yaml:"workers"`
}

func setDefaults(v *viper.Viper) {
	tl, kl := tsp.DefaultLimits(), knapsack.DefaultLimits()
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.pretty", false)
	v.SetDefault("limits.tsp.held_karp", tl.HeldKarp)
	v.SetDefault("limits.tsp.backtracking", tl.Backtracking)
	v.SetDefault("limits.tsp.branch_and_bound", tl.BranchAndBound)
	v.SetDefault("limits.tsp.divide_base", tl.DivideBase)
	v.SetDefault("limits.knapsack.backtracking", kl.Backtracking)
	v.SetDefault("limits.knapsack.divide_conquer", kl.DivideConquer)
	v.SetDefault("limits.knapsack.dp_cells", kl.DPCells)
	v.SetDefault("hybrid.algorithms", []string{"greedy", "dp", "branchbound", "divideconquer"})
	v.SetDefault("batch.workers", 4)
}

// Load returns the defaults overlaid with the file at path (skipped when
// path is empty) and the environment.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate rejects negative guards and a non-positive worker count.
func (c Config) Validate() error {
	for name, v := range map[string]int{
		"limits.tsp.held_karp":           c.Limits.TSP.HeldKarp,
		"limits.tsp.backtracking":        c.Limits.TSP.Backtracking,
		"limits.tsp.branch_and_bound":    c.Limits.TSP.BranchAndBound,
		"limits.tsp.divide_base":         c.Limits.TSP.DivideBase,
		"limits.knapsack.backtracking":   c.Limits.Knapsack.Backtracking,
		"limits.knapsack.divide_conquer": c.Limits.Knapsack.DivideConquer,
		"limits.knapsack.dp_cells":       c.Limits.Knapsack.DPCells,
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s=%d", ErrInvalid, name, v)
		}
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("%w: batch.workers=%d", ErrInvalid, c.Batch.Workers)
	}

	return nil
}

// EngineLimits converts the guards for engine.WithLimits.
func (c Config) EngineLimits() engine.Limits {
	return engine.Limits{
		TSP: tsp.Limits{
			HeldKarp:       c.Limits.TSP.HeldKarp,
			Backtracking:   c.Limits.TSP.Backtracking,
			BranchAndBound: c.Limits.TSP.BranchAndBound,
			DivideBase:     c.Limits.TSP.DivideBase,
		},
		Knapsack: knapsack.Limits{
			Backtracking:  c.Limits.Knapsack.Backtracking,
			DivideConquer: c.Limits.Knapsack.DivideConquer,
			DPCells:       c.Limits.Knapsack.DPCells,
		},
	}
}
