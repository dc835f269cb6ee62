package solver

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/urbancharge/urbancharge/pkg/community"
)

// Stats summarizes the steps a strategy took.
type Stats struct {
	Steps   int // Toggle or removal attempts
	Added   int // Charging points added
	Removed int // Charging points removed
	Refused int // Removals refused by the accessibility check

	// BestScores starts with the score before the run and gains an entry each
	// time the best score improves. It never increases.
	BestScores []int
}

// Option configures a strategy run.
type Option func(*config)

type config struct {
	logger    *log.Logger
	onImprove func(score, step int)
}

// WithLogger logs improvements at debug level.
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithImprovementFunc calls fn each time the best score improves, with the
// new score and the step that reached it.
func WithImprovementFunc(fn func(score, step int)) Option {
	return func(c *config) { c.onImprove = fn }
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c config) improved(st *Stats, score int) {
	st.BestScores = append(st.BestScores, score)
	if c.logger != nil {
		c.logger.Debug("improved", "score", score, "step", st.Steps)
	}
	if c.onImprove != nil {
		c.onImprove(score, st.Steps)
	}
}

// AddAllChargingPoints puts a charging point in every city that lacks one.
// The result is always valid and scores the number of cities.
func AddAllChargingPoints(uc *community.UrbanCommunity) {
	for i := 0; i < uc.Len(); i++ {
		c := uc.CityAt(i)
		if !c.HasChargingPoint() {
			_ = uc.AddChargingPoint(c.Name())
		}
	}
}

// Naive toggles the point of a uniformly random city iterations times.
// It keeps no record of earlier states and can end with a higher score than
// it started with.
func Naive(uc *community.UrbanCommunity, iterations int, rng *rand.Rand, opts ...Option) Stats {
	cfg := newConfig(opts)
	st := Stats{BestScores: []int{uc.Score()}}
	if uc.Len() == 0 {
		return st
	}

	best := uc.Score()
	for i := 0; i < iterations; i++ {
		toggle(uc, rng, &st)
		if s := uc.Score(); s < best {
			best = s
			cfg.improved(&st, s)
		}
	}
	return st
}

// LessNaive performs the Naive toggle until iterations consecutive steps pass
// without beating the best score seen. Each improvement resets the count.
// The best configuration found is restored before returning, so the final
// score equals the last entry of Stats.BestScores.
func LessNaive(uc *community.UrbanCommunity, iterations int, rng *rand.Rand, opts ...Option) Stats {
	cfg := newConfig(opts)
	st := Stats{BestScores: []int{uc.Score()}}
	if uc.Len() == 0 {
		return st
	}

	bestSet := uc.ChargingSet()
	best := len(bestSet)
	for i := 0; i < iterations; {
		toggle(uc, rng, &st)
		if s := uc.Score(); s < best {
			best = s
			bestSet = uc.ChargingSet()
			cfg.improved(&st, s)
			i = 0
			continue
		}
		i++
	}

	if uc.Score() != best {
		if err := uc.Restore(bestSet); err != nil && cfg.logger != nil {
			cfg.logger.Warn("could not restore best configuration", "err", err)
		}
	}
	return st
}

// Optimized visits cities from the most to the least connected and, for each
// one, tries to remove the points of its neighbors starting with the least
// connected. It is deterministic and takes no budget.
func Optimized(uc *community.UrbanCommunity, opts ...Option) Stats {
	cfg := newConfig(opts)
	st := Stats{BestScores: []int{uc.Score()}}

	for _, hub := range SortByDegree(uc, uc.Cities(), Descending) {
		neighbors, err := uc.Neighbors(hub.Name())
		if err != nil {
			continue
		}
		for _, n := range SortByDegree(uc, neighbors, Ascending) {
			current, err := uc.City(n.Name())
			if err != nil || !current.HasChargingPoint() {
				continue
			}
			st.Steps++
			r, err := uc.TryRemoveChargingPoint(n.Name())
			if err != nil || !r.OK() {
				st.Refused++
				continue
			}
			st.Removed++
			cfg.improved(&st, uc.Score())
		}
	}
	return st
}

// toggle removes the point of a random city when allowed, or adds one if the
// city had none.
func toggle(uc *community.UrbanCommunity, rng *rand.Rand, st *Stats) {
	c := uc.CityAt(rng.IntN(uc.Len()))
	st.Steps++
	if c.HasChargingPoint() {
		r, err := uc.TryRemoveChargingPoint(c.Name())
		if err == nil && r.OK() {
			st.Removed++
		} else {
			st.Refused++
		}
		return
	}
	if err := uc.AddChargingPoint(c.Name()); err == nil {
		st.Added++
	}
}
