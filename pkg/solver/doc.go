// Package solver searches for a small set of charging points that keeps an
// urban community accessible.
//
// # Strategies
//
// Every strategy mutates a [community.UrbanCommunity] in place and relies on
// the community's own removal check to stay valid, so each one expects to
// start from a valid configuration. [AddAllChargingPoints] produces the
// trivially valid starting point with a point in every city:
//
//   - [Naive]: a fixed number of random toggles. A random city loses its point
//     if the removal is allowed, or gains one if it had none. The walk keeps
//     no memory and may end worse than it started.
//   - [LessNaive]: the same toggle, but the iteration budget counts
//     consecutive steps without improvement and resets on every new best
//     score. The best configuration seen is restored at the end.
//   - [Optimized]: a deterministic single pass. Cities are visited from the
//     most to the least connected, and each one strips the points of its
//     neighbors from the least connected first.
//
// Refused removals are the expected outcome of most steps and never surface
// as errors.
//
// # Randomness
//
// Randomized strategies take a *rand.Rand from math/rand/v2 so runs can be
// replayed from a seed:
//
//	rng := rand.New(rand.NewPCG(seed, seed))
//	stats := solver.LessNaive(uc, 100, rng)
//
// # Running by name
//
// [Run] resolves a strategy by name, seeds the community, executes the
// strategy, and reports a [Result] with a unique run ID. The CLI uses it for
// the solve command and the interactive console.
package solver
