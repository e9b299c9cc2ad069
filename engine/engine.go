package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Observer is notified after every successful Solve. Implementations must
// be safe for concurrent use.
type Observer interface {
	ObserveSolve(env Envelope)
}

// Engine runs solve requests. The zero value is not usable; call New.
type Engine struct {
	log       zerolog.Logger
	limits    Limits
	observers []Observer
	now       func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default is zerolog.Nop().
func WithLogger(l zerolog.Logger) Option { return func(e *Engine) { e.log = l } }

// WithLimits overrides the size guards. Zero fields keep their defaults.
func WithLimits(l Limits) Option { return func(e *Engine) { e.limits = l } }

// WithObserver adds an observer; it may be given more than once.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.observers = append(e.observers, o)
		}
	}
}

// New returns an Engine with default limits and no logging.
func New(opts ...Option) *Engine {
	e := &Engine{
		log:    zerolog.Nop(),
		limits: DefaultLimits(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Limits returns the guards in effect.
func (e *Engine) Limits() Limits { return e.limits }

// Solve loads a fresh instance of problem from src and runs algorithm on it.
//
// The problem tag is checked before the source is read and the algorithm
// tag after, so an unknown algorithm still costs one load. A source that
// cannot be read or parsed is not an error, and neither is a nil src: the
// family's fallback instance is solved and the Envelope is marked.
//
// Errors: ErrUnknownProblemType, ErrUnknownAlgorithm, ctx.Err().
func (e *Engine) Solve(ctx context.Context, problem ProblemType, algorithm Algorithm, src Source) (Envelope, error) {
	if err := ctx.Err(); err != nil {
		return Envelope{}, err
	}
	fam, ok := families[problem]
	if !ok {
		return Envelope{}, fmt.Errorf("%w: %q", ErrUnknownProblemType, problem)
	}

	var in instance
	data, err := readSource(src)
	if err != nil {
		in = fam.fallback(err)
	} else {
		in = fam.load(data)
	}

	solve, ok := fam.solvers[algorithm]
	if !ok {
		return Envelope{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}

	start := e.now()
	sol := solve(in, e.limits)
	elapsed := e.now().Sub(start)

	usedFallback, reason := in.fallback()
	env := Envelope{
		RunID:          uuid.New(),
		Solution:       sol,
		ExecutionTime:  elapsed.Seconds(),
		Algorithm:      algorithm,
		ProblemType:    problem,
		Timestamp:      start.UTC(),
		UsedFallback:   usedFallback,
		FallbackReason: reason,
		InstanceSize:   in.size(),
	}
	e.logSolve(env)
	for _, o := range e.observers {
		o.ObserveSolve(env)
	}

	return env, nil
}

func (e *Engine) logSolve(env Envelope) {
	if env.UsedFallback {
		e.log.Warn().
			Str("problem", string(env.ProblemType)).
			Str("reason", env.FallbackReason).
			Msg("source unusable, solved fallback instance")
	}
	if env.Solution.Redirected() {
		e.log.Warn().
			Str("problem", string(env.ProblemType)).
			Str("algorithm", string(env.Algorithm)).
			Int("n", env.InstanceSize).
			Str("note", env.Solution.Note()).
			Msg("size guard redirected solve")
	}
	e.log.Debug().
		Str("run_id", env.RunID.String()).
		Str("problem", string(env.ProblemType)).
		Str("algorithm", string(env.Algorithm)).
		Int("n", env.InstanceSize).
		Float64("seconds", env.ExecutionTime).
		Float64("objective", env.Objective()).
		Bool("optimal", env.Solution.Optimal()).
		Msg("solved")
}

// HybridSolve runs Solve once per algorithm, in order, each on its own
// fresh instance, and picks the best envelope: the shortest distance for
// TSP, the largest objective otherwise. On a tie the earlier algorithm
// wins. The first error aborts the run.
//
// Errors: ErrNoAlgorithms, and anything Solve returns.
func (e *Engine) HybridSolve(ctx context.Context, problem ProblemType, algorithms []Algorithm, src Source) (HybridResult, error) {
	if len(algorithms) == 0 {
		return HybridResult{}, ErrNoAlgorithms
	}
	all := make([]Envelope, 0, len(algorithms))
	var best int
	for i, alg := range algorithms {
		env, err := e.Solve(ctx, problem, alg, src)
		if err != nil {
			return HybridResult{}, fmt.Errorf("hybrid %s: %w", alg, err)
		}
		all = append(all, env)
		if i > 0 && env.Solution.better(all[best].Solution) {
			best = i
		}
	}

	return HybridResult{Best: all[best], All: all, Method: hybridMethod(algorithms)}, nil
}
