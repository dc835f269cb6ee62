package solver

import (
	"context"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/urbancharge/urbancharge/pkg/community"
	errs "github.com/urbancharge/urbancharge/pkg/errors"
	"github.com/urbancharge/urbancharge/pkg/observability"
)

// Strategy names accepted by Run.
const (
	StrategyAll       = "all"
	StrategyNaive     = "naive"
	StrategyLessNaive = "less-naive"
	StrategyOptimized = "optimized"
)

// DefaultIterations is the budget used when a randomized strategy is run
// without an explicit iteration count.
const DefaultIterations = 100

// Strategies lists the strategy names in menu order.
func Strategies() []string {
	return []string{StrategyNaive, StrategyLessNaive, StrategyOptimized, StrategyAll}
}

// ValidateStrategy returns INVALID_ALGORITHM for unknown strategy names.
func ValidateStrategy(name string) error {
	if !slices.Contains(Strategies(), name) {
		return errs.New(errs.ErrCodeInvalidAlgorithm, "unknown algorithm %q (want one of %v)", name, Strategies())
	}
	return nil
}

// NeedsIterations reports whether the strategy takes an iteration budget.
func NeedsIterations(name string) bool {
	return name == StrategyNaive || name == StrategyLessNaive
}

// Request describes a single solver run.
type Request struct {
	Strategy   string
	Iterations int         // Budget for randomized strategies
	Seed       uint64      // Seeds the generator when Rand is nil
	Rand       *rand.Rand  // Optional generator; overrides Seed
	Logger     *log.Logger // Optional; improvements are logged at debug level
}

// Result reports the outcome of Run.
type Result struct {
	RunID        string
	Strategy     string
	Iterations   int
	Seed         uint64
	InitialScore int // Score after seeding every city with a point
	FinalScore   int
	Valid        bool
	Stats        Stats
	Duration     time.Duration
}

// NewRand returns the generator Run uses for a seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Run seeds uc with a charging point in every city and applies the named
// strategy. Randomized strategies require a positive iteration count.
//
// Run checks ctx once before mutating uc; a search, once started, runs to
// completion.
func Run(ctx context.Context, uc *community.UrbanCommunity, req Request) (Result, error) {
	if err := ValidateStrategy(req.Strategy); err != nil {
		return Result{}, err
	}
	if NeedsIterations(req.Strategy) && req.Iterations <= 0 {
		return Result{}, errs.New(errs.ErrCodeInvalidInput, "iterations must be positive, got %d", req.Iterations)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	rng := req.Rand
	if rng == nil {
		rng = NewRand(req.Seed)
	}

	res := Result{
		RunID:    uuid.NewString(),
		Strategy: req.Strategy,
		Seed:     req.Seed,
	}
	if NeedsIterations(req.Strategy) {
		res.Iterations = req.Iterations
	}

	logger := req.Logger
	if logger != nil {
		logger = logger.With("run", res.RunID[:8], "algorithm", req.Strategy)
	}
	hooks := observability.Solver()

	AddAllChargingPoints(uc)
	res.InitialScore = uc.Score()
	hooks.OnSolveStart(ctx, req.Strategy, uc.Len())
	if logger != nil {
		logger.Debug("seeded", "cities", uc.Len(), "score", res.InitialScore)
	}

	opts := []Option{
		WithImprovementFunc(func(score, step int) {
			hooks.OnImprovement(ctx, req.Strategy, score, step)
		}),
	}
	if logger != nil {
		opts = append(opts, WithLogger(logger))
	}

	start := time.Now()
	switch req.Strategy {
	case StrategyNaive:
		res.Stats = Naive(uc, req.Iterations, rng, opts...)
	case StrategyLessNaive:
		res.Stats = LessNaive(uc, req.Iterations, rng, opts...)
	case StrategyOptimized:
		res.Stats = Optimized(uc, opts...)
	case StrategyAll:
		res.Stats = Stats{BestScores: []int{res.InitialScore}}
	}
	res.Duration = time.Since(start)
	res.FinalScore = uc.Score()
	res.Valid = uc.IsValid()

	hooks.OnSolveComplete(ctx, req.Strategy, res.FinalScore, res.Duration, nil)
	if logger != nil {
		logger.Debug("finished", "score", res.FinalScore, "steps", res.Stats.Steps, "refused", res.Stats.Refused)
	}
	return res, nil
}
