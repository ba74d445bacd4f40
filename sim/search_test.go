package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEvaluator scores lineups from a fixed table keyed by lineup identity.
type stubEvaluator map[string]float64

func (s stubEvaluator) Evaluate(l Lineup) LineupRecord {
	return LineupRecord{Lineup: l, AverageRuns: s[l.Key()], GameRuns: []int{int(s[l.Key()])}}
}

func stubFactory(s stubEvaluator) EvaluatorFactory {
	return func(Lineup) LineupEvaluator { return s }
}

func TestSearchDriver_BestAndRanking(t *testing.T) {
	lineups := []Lineup{{"Ana", "Ben"}, {"Ben", "Ana"}}
	scores := stubEvaluator{"Ana,Ben": 5.0, "Ben,Ana": 3.0}

	result := NewSearchDriver(stubFactory(scores), 1).Run(lineups)

	require.NotNil(t, result.Best)
	assert.Equal(t, 5.0, result.Best.AverageRuns)
	assert.Equal(t, Lineup{"Ana", "Ben"}, result.Best.Lineup)

	ranked := result.Ranked()
	require.Len(t, ranked, 2)
	assert.Equal(t, 5.0, ranked[0].AverageRuns)
	assert.Equal(t, 3.0, ranked[1].AverageRuns)
}

func TestSearchDriver_TieKeepsEarliest(t *testing.T) {
	lineups := []Lineup{{"Ana", "Ben"}, {"Ben", "Ana"}, {"Ana", "Cal"}}
	scores := stubEvaluator{"Ana,Ben": 4.0, "Ben,Ana": 4.0, "Ana,Cal": 2.0}

	result := NewSearchDriver(stubFactory(scores), 1).Run(lineups)

	require.NotNil(t, result.Best)
	assert.Equal(t, Lineup{"Ana", "Ben"}, result.Best.Lineup, "strict improvement only: first 4.0 stays best")

	ranked := result.Ranked()
	assert.Equal(t, Lineup{"Ana", "Ben"}, ranked[0].Lineup, "stable sort keeps generation order on ties")
	assert.Equal(t, Lineup{"Ben", "Ana"}, ranked[1].Lineup)
}

func TestSearchDriver_ZeroAverageCanWin(t *testing.T) {
	// Best starts below any achievable score, so an all-zero lineup still
	// becomes best when it is the only candidate.
	lineups := []Lineup{{"Ana", "Ben"}}
	scores := stubEvaluator{"Ana,Ben": 0.0}

	result := NewSearchDriver(stubFactory(scores), 1).Run(lineups)
	require.NotNil(t, result.Best)
	assert.Equal(t, 0.0, result.Best.AverageRuns)
}

func TestSearchDriver_EmptyCandidates(t *testing.T) {
	result := NewSearchDriver(stubFactory(stubEvaluator{}), 1).Run(nil)
	assert.Nil(t, result.Best)
	assert.Empty(t, result.Records)
}

func TestSearchDriver_RecordsKeepGenerationOrder(t *testing.T) {
	lineups := []Lineup{{"Ana"}, {"Ben"}, {"Cal"}}
	scores := stubEvaluator{"Ana": 1.0, "Ben": 9.0, "Cal": 5.0}

	result := NewSearchDriver(stubFactory(scores), 1).Run(lineups)
	require.Len(t, result.Records, 3)
	assert.Equal(t, Lineup{"Ana"}, result.Records[0].Lineup)
	assert.Equal(t, Lineup{"Ben"}, result.Records[1].Lineup)
	assert.Equal(t, Lineup{"Cal"}, result.Records[2].Lineup)
}

func TestSearchDriver_ParallelMatchesSequential(t *testing.T) {
	// With per-lineup evaluation streams the worker count must not change
	// any score or the ranking.
	roster := generatorRoster(t, 3, 2)
	lineups := newTestGenerator(roster, 0).Generate().Lineups
	require.NotEmpty(t, lineups)

	rng := NewPartitionedRNG(NewSimulationKey(42))
	factory := func(l Lineup) LineupEvaluator {
		atBat := NewRatingAtBat(roster, rng.Derive("lineup:"+l.Key()))
		return NewEvaluator(NewGameSimulator(NewInningSimulator(atBat)), 5)
	}

	sequential := NewSearchDriver(factory, 1).Run(lineups)
	parallel := NewSearchDriver(factory, 4).Run(lineups)

	require.Equal(t, len(sequential.Records), len(parallel.Records))
	for i := range sequential.Records {
		assert.Equal(t, sequential.Records[i].Lineup, parallel.Records[i].Lineup)
		assert.Equal(t, sequential.Records[i].AverageRuns, parallel.Records[i].AverageRuns)
		assert.Equal(t, sequential.Records[i].GameRuns, parallel.Records[i].GameRuns)
	}
	require.NotNil(t, parallel.Best)
	assert.Equal(t, sequential.Best.Lineup, parallel.Best.Lineup)
}
