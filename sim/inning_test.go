package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fixedAtBat always returns the same number of bases.
type fixedAtBat int

func (f fixedAtBat) Bases(string) int { return int(f) }

// countingAtBat wraps a model and counts plate appearances.
type countingAtBat struct {
	model  AtBatModel
	atBats int
}

func (c *countingAtBat) Bases(name string) int {
	c.atBats++
	return c.model.Bases(name)
}

// scriptedAtBat returns a fixed sequence of outcomes, then outs.
type scriptedAtBat struct {
	outcomes []int
	next     int
}

func (s *scriptedAtBat) Bases(string) int {
	if s.next >= len(s.outcomes) {
		return 0
	}
	out := s.outcomes[s.next]
	s.next++
	return out
}

var testOrder = []string{"Ana", "Ben", "Cal"}

func TestInningSimulator_AllHomeRunsHitTheRunCap(t *testing.T) {
	// Every at-bat scores exactly one run (bases are empty each time), so
	// the inning ends at the cap with one run per plate appearance.
	counter := &countingAtBat{model: fixedAtBat(4)}
	runs := NewInningSimulator(counter).Play(testOrder)
	assert.Equal(t, RunCapPerInning, runs)
	assert.Equal(t, RunCapPerInning, counter.atBats)
}

func TestInningSimulator_AllOutsEndsAfterThree(t *testing.T) {
	counter := &countingAtBat{model: fixedAtBat(0)}
	runs := NewInningSimulator(counter).Play(testOrder)
	assert.Equal(t, 0, runs)
	assert.Equal(t, OutsPerInning, counter.atBats)
}

func TestInningSimulator_EmptyOrderScoresNothing(t *testing.T) {
	runs := NewInningSimulator(fixedAtBat(4)).Play(nil)
	assert.Equal(t, 0, runs)
}

func TestInningSimulator_SinglesStation(t *testing.T) {
	// Five singles: the leadoff batter walks the bases one slot per single
	// and scores on the fifth; then three outs end the inning.
	model := &scriptedAtBat{outcomes: []int{1, 1, 1, 1, 1}}
	runs := NewInningSimulator(model).Play(testOrder)
	assert.Equal(t, 1, runs)
}

func TestInningSimulator_RunnersAdvanceByHitSize(t *testing.T) {
	// Double then triple: the runner from second (slot 1) advances 1+3 >= 4
	// and scores; the batter holds at third-equivalent.
	model := &scriptedAtBat{outcomes: []int{2, 3}}
	runs := NewInningSimulator(model).Play(testOrder)
	assert.Equal(t, 1, runs)
}

func TestInningSimulator_GrandSlamScoresEveryRunner(t *testing.T) {
	// Load three runners with singles, then a home run: three runners plus
	// the batter all score, on top of nothing scored earlier.
	model := &scriptedAtBat{outcomes: []int{1, 1, 1, 4}}
	runs := NewInningSimulator(model).Play(testOrder)
	assert.Equal(t, 4, runs)
}

func TestInningSimulator_BattingOrderCyclesByModulo(t *testing.T) {
	// Seven at-bats against a three-player order: the order wraps
	// independent of outs.
	var faced []string
	model := recordingAtBat{outcomes: []int{1, 1, 1, 1, 0, 0, 0}, faced: &faced}
	NewInningSimulator(&model).Play(testOrder)
	assert.Equal(t, []string{"Ana", "Ben", "Cal", "Ana", "Ben", "Cal", "Ana"}, faced)
}

// recordingAtBat scripts outcomes and records which batter faced each one.
type recordingAtBat struct {
	outcomes []int
	next     int
	faced    *[]string
}

func (r *recordingAtBat) Bases(name string) int {
	*r.faced = append(*r.faced, name)
	if r.next >= len(r.outcomes) {
		return 0
	}
	out := r.outcomes[r.next]
	r.next++
	return out
}

func TestInningSimulator_RunnerOnFourthSlotScoresOnNextHit(t *testing.T) {
	// A runner who reaches the fourth slot (position 3) has not scored yet;
	// any further advance sends them home. Triple then single: runner from
	// slot 2 moves to slot 3 without scoring, then the single scores them.
	model := &scriptedAtBat{outcomes: []int{3, 1, 1}}
	runs := NewInningSimulator(model).Play(testOrder)
	// triple: batter to slot 2. single: batter's runner 2+1=3, no score, new
	// batter to slot 0. second single: slot-3 runner scores, others advance.
	assert.Equal(t, 1, runs)
}
