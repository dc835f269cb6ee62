package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/urbancharge/urbancharge/pkg/community"
	errs "github.com/urbancharge/urbancharge/pkg/errors"
	"github.com/urbancharge/urbancharge/pkg/io"
	"github.com/urbancharge/urbancharge/pkg/solver"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	algorithm  string
	iterations int
	seed       uint64
	output     string // file to save the solved community to
	json       bool   // print the result as JSON instead of a table
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Place charging points with a search strategy",
		Long: `Solve loads a community, puts a charging point in every city, and then
removes as many as the chosen strategy can while every city keeps access.

Strategies:
  naive       random toggles for a fixed number of iterations
  less-naive  random toggles until --iterations steps pass without improvement
  optimized   one deterministic pass from the most connected cities
  all         keep a charging point in every city`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.algorithm = stringSetting(cmd, "algorithm", opts.algorithm, c.Settings.Algorithm)
			opts.iterations = intSetting(cmd, "iterations", opts.iterations, c.Settings.Iterations)
			if !cmd.Flags().Changed("seed") {
				opts.seed = c.Settings.Seed
			}
			if err := solver.ValidateStrategy(opts.algorithm); err != nil {
				return err
			}
			if opts.output != "" {
				if err := errs.ValidatePath(opts.output); err != nil {
					return err
				}
			}
			return c.runSolve(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", "", "strategy: "+strings.Join(solver.Strategies(), ", ")+" (default optimized)")
	cmd.Flags().IntVarP(&opts.iterations, "iterations", "n", 0, "iteration budget for naive and less-naive (default 100)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "save the solved community (.json for JSON)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the result as JSON")

	_ = cmd.RegisterFlagCompletionFunc("algorithm", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return solver.Strategies(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (c *CLI) runSolve(ctx context.Context, path string, opts solveOpts) error {
	logger := loggerFromContext(ctx)

	uc, err := c.loadCommunity(path)
	if err != nil {
		return err
	}

	if opts.seed == 0 {
		opts.seed = randomSeed()
	}

	// Solve a copy so a failed run leaves nothing half-done.
	work := uc.Clone()
	prog := newProgress(logger)
	res, err := solver.Run(ctx, work, solver.Request{
		Strategy:   opts.algorithm,
		Iterations: opts.iterations,
		Seed:       opts.seed,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	prog.debug("Solved with " + res.Strategy)

	if opts.output != "" {
		if err := io.SaveFile(work, opts.output); err != nil {
			return fmt.Errorf("save: %w", err)
		}
	}

	if opts.json {
		return writeResultJSON(work, res)
	}

	printCommunity(work)
	printNewline()
	printResult(res)
	if opts.output != "" {
		printSuccess("Saved")
		printFile(opts.output)
	}
	return nil
}

// randomSeed picks a seed for runs that did not ask for one. It is reported
// with the result so the run can be repeated.
func randomSeed() uint64 {
	return rand.Uint64()
}

func printResult(res solver.Result) {
	printKeyValue("Run", res.RunID)
	printKeyValue("Algorithm", StyleHighlight.Render(res.Strategy))
	if solver.NeedsIterations(res.Strategy) {
		printKeyValue("Iterations", strconv.Itoa(res.Iterations))
		printKeyValue("Seed", strconv.FormatUint(res.Seed, 10))
	}
	printKeyValue("Score", fmt.Sprintf("%d %s %d", res.InitialScore, iconArrow, res.FinalScore))
	printKeyValue("Steps", fmt.Sprintf("%d (%d refused)", res.Stats.Steps, res.Stats.Refused))
	printKeyValue("Time", res.Duration.String())
}

// resultJSON is the --json output of solve.
type resultJSON struct {
	RunID        string   `json:"run_id"`
	Algorithm    string   `json:"algorithm"`
	Iterations   int      `json:"iterations,omitempty"`
	Seed         uint64   `json:"seed,omitempty"`
	InitialScore int      `json:"initial_score"`
	Score        int      `json:"score"`
	Valid        bool     `json:"valid"`
	Steps        int      `json:"steps"`
	BestScores   []int    `json:"best_scores"`
	ChargingSet  []string `json:"charging_set"`
	DurationMS   float64  `json:"duration_ms"`
}

func newResultJSON(uc *community.UrbanCommunity, res solver.Result) resultJSON {
	out := resultJSON{
		RunID:        res.RunID,
		Algorithm:    res.Strategy,
		Iterations:   res.Iterations,
		InitialScore: res.InitialScore,
		Score:        res.FinalScore,
		Valid:        res.Valid,
		Steps:        res.Stats.Steps,
		BestScores:   res.Stats.BestScores,
		ChargingSet:  uc.ChargingSet(),
		DurationMS:   float64(res.Duration.Microseconds()) / 1000,
	}
	if solver.NeedsIterations(res.Strategy) {
		out.Seed = res.Seed
	}
	if out.ChargingSet == nil {
		out.ChargingSet = []string{}
	}
	return out
}

func writeResultJSON(uc *community.UrbanCommunity, res solver.Result) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(newResultJSON(uc, res))
}
