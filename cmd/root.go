package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/ross-bechtel/softball-lineup-optimizer/sim"
)

var (
	// CLI flags shared by the subcommands
	seed           int64  // Seed for all random draws
	logLevel       string // Log verbosity level
	rosterPath     string // Roster YAML file ("" = built-in sample roster)
	maxConsecutive int    // Longest permitted run of restricted-category batters

	// CLI flags for the run subcommand
	gamesPerLineup int  // Games simulated per candidate lineup
	maxLineups     int  // Cap on lineups to evaluate (0 = all legal lineups)
	workers        int  // Parallel lineup evaluators (1 = sequential)
	topLineups     int  // Ranked lineups to display in the summary
	verboseInnings bool // Print per-inning run totals for the best lineup
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "lineup-optimizer",
	Short: "Monte Carlo batting-order optimizer for slowpitch softball",
}

// loadRoster resolves the roster from --roster or falls back to the sample.
func loadRoster() *sim.Roster {
	cfg := DefaultRosterConfig()
	if rosterPath != "" {
		loaded, err := LoadRosterConfig(rosterPath)
		if err != nil {
			logrus.Fatalf("Invalid roster: %v", err)
		}
		cfg = loaded
	}
	roster, err := cfg.Roster()
	if err != nil {
		logrus.Fatalf("Invalid roster: %v", err)
	}
	return roster
}

func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// runCmd searches the legal lineup space for the highest-scoring batting order
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Search for the batting order that maximizes expected runs",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		roster := loadRoster()
		legality := sim.NewLegalityConfig(maxConsecutive)
		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed))

		logrus.Infof("Starting search with %d players, %d games per lineup, seed=%d",
			roster.Len(), gamesPerLineup, seed)

		gen := sim.NewGenerator(roster, legality, maxLineups, rng.ForSubsystem(sim.SubsystemLineups))
		candidates := gen.Generate()
		logrus.Infof("Found %d legal lineups out of %d permutations",
			candidates.LegalCount, candidates.TotalPermutations)

		// Each lineup's games draw from an RNG stream derived from the master
		// seed and the lineup itself, so scores are stable across --workers.
		evaluatorFor := func(l sim.Lineup) sim.LineupEvaluator {
			atBat := sim.NewRatingAtBat(roster, rng.Derive("lineup:"+l.Key()))
			return sim.NewEvaluator(sim.NewGameSimulator(sim.NewInningSimulator(atBat)), gamesPerLineup)
		}

		driver := sim.NewSearchDriver(evaluatorFor, workers)
		result := driver.Run(candidates.Lineups)

		sim.WriteSummary(os.Stdout, roster, candidates, result, gamesPerLineup, topLineups)

		if verboseInnings && result.Best != nil {
			replayBest(roster, rng, result.Best.Lineup)
		}

		logrus.Info("Search complete.")
	},
}

// replayBest plays one more game of the winning lineup with per-inning output.
func replayBest(roster *sim.Roster, rng *sim.PartitionedRNG, best sim.Lineup) {
	atBat := sim.NewRatingAtBat(roster, rng.ForSubsystem(sim.SubsystemAtBat))
	game := sim.NewGameSimulator(sim.NewInningSimulator(atBat)).
		WithObserver(func(inning, runs int) {
			logrus.Infof("Inning %d: %d runs", inning, runs)
		})
	logrus.Infof("Replay of best lineup: %d total runs", game.Play(best))
}

// lineupsCmd inspects the legality rule without running any games
var lineupsCmd = &cobra.Command{
	Use:   "lineups",
	Short: "Count legal lineups and show examples",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		roster := loadRoster()
		legality := sim.NewLegalityConfig(maxConsecutive)
		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seed))

		gen := sim.NewGenerator(roster, legality, 0, rng.ForSubsystem(sim.SubsystemLineups))
		candidates := gen.Generate()

		sim.WriteLegalityReport(os.Stdout, roster, legality, candidates, 5)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	for _, c := range []*cobra.Command{runCmd, lineupsCmd} {
		c.Flags().Int64Var(&seed, "seed", 42, "Seed for all random draws")
		c.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
		c.Flags().StringVar(&rosterPath, "roster", "", "Roster YAML file (default: built-in sample roster)")
		c.Flags().IntVar(&maxConsecutive, "max-consecutive", sim.DefaultMaxConsecutive, "Longest permitted run of restricted batters (wraparound included)")
	}

	runCmd.Flags().IntVar(&gamesPerLineup, "games", sim.DefaultGamesPerLineup, "Games simulated per candidate lineup")
	runCmd.Flags().IntVar(&maxLineups, "max-lineups", 0, "Cap on lineups to evaluate, sampled uniformly from the legal set (0 = all)")
	runCmd.Flags().IntVar(&workers, "workers", 1, "Parallel lineup evaluators")
	runCmd.Flags().IntVar(&topLineups, "top", 5, "Ranked lineups to display")
	runCmd.Flags().BoolVar(&verboseInnings, "verbose-innings", false, "Replay the best lineup with per-inning run totals")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(lineupsCmd)
}
