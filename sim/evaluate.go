package sim

import "gonum.org/v1/gonum/stat"

// DefaultGamesPerLineup is how many games each candidate lineup plays.
const DefaultGamesPerLineup = 10

// GamePlayer plays one full game of a batting order and returns total runs.
// *GameSimulator is the real implementation.
type GamePlayer interface {
	Play(order []string) int
}

// LineupRecord is one evaluated lineup: its average runs per game and the
// raw per-game totals in generation order. Immutable once created.
type LineupRecord struct {
	Lineup      Lineup
	AverageRuns float64
	GameRuns    []int
}

// StdDev returns the sample standard deviation of the game totals.
// Zero for fewer than two games.
func (r LineupRecord) StdDev() float64 {
	if len(r.GameRuns) < 2 {
		return 0
	}
	return stat.StdDev(runsAsFloats(r.GameRuns), nil)
}

// Range returns the lowest and highest game totals.
func (r LineupRecord) Range() (min, max int) {
	if len(r.GameRuns) == 0 {
		return 0, 0
	}
	min, max = r.GameRuns[0], r.GameRuns[0]
	for _, runs := range r.GameRuns[1:] {
		if runs < min {
			min = runs
		}
		if runs > max {
			max = runs
		}
	}
	return min, max
}

// Evaluator scores one lineup at a time by playing repeated games and
// averaging. Variance across the sample is reported, not reduced; the method
// accepts the noise.
type Evaluator struct {
	game  GamePlayer
	games int
}

// NewEvaluator creates an evaluator playing games games per lineup.
// Non-positive games falls back to DefaultGamesPerLineup.
func NewEvaluator(game GamePlayer, games int) *Evaluator {
	if games <= 0 {
		games = DefaultGamesPerLineup
	}
	return &Evaluator{game: game, games: games}
}

// Evaluate plays the configured number of games with the lineup and returns
// its record.
func (e *Evaluator) Evaluate(l Lineup) LineupRecord {
	runs := make([]int, e.games)
	for i := range runs {
		runs[i] = e.game.Play(l)
	}
	return LineupRecord{
		Lineup:      l,
		AverageRuns: stat.Mean(runsAsFloats(runs), nil),
		GameRuns:    runs,
	}
}

func runsAsFloats(runs []int) []float64 {
	out := make([]float64, len(runs))
	for i, r := range runs {
		out[i] = float64(r)
	}
	return out
}
