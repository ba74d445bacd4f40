package sim

import "github.com/sirupsen/logrus"

const (
	// numBaseSlots is the size of the base array: first, second, third, and
	// a fourth slot for a runner one advance away from scoring. Only the
	// first three are physical bases.
	numBaseSlots = 4

	// scoringThreshold is the position a runner must reach to score.
	scoringThreshold = 4

	// OutsPerInning ends the inning when reached.
	OutsPerInning = 3

	// RunCapPerInning is the slowpitch mercy rule: the inning ends once the
	// run total reaches it.
	RunCapPerInning = 6
)

// InningSimulator plays single innings of a batting order against an
// AtBatModel, tracking base occupancy, outs, and the run cap.
type InningSimulator struct {
	atBat  AtBatModel
	outs   int
	runCap int
}

// NewInningSimulator creates an inning simulator with the standard
// three-out, six-run inning.
func NewInningSimulator(atBat AtBatModel) *InningSimulator {
	return &InningSimulator{atBat: atBat, outs: OutsPerInning, runCap: RunCapPerInning}
}

// Play simulates one inning and returns the runs scored. The batting order
// cycles by modulo index across the whole inning regardless of outs; base
// state starts empty and is discarded afterward. An empty order yields 0.
func (s *InningSimulator) Play(order []string) int {
	if len(order) == 0 {
		return 0
	}

	var bases [numBaseSlots]string // batter name per slot, "" = vacant
	runs, outs, idx := 0, 0, 0

	for outs < s.outs && runs < s.runCap {
		batter := order[idx%len(order)]
		gained := s.atBat.Bases(batter)

		if gained == 0 {
			outs++
		} else {
			// Advance runners back-to-front so a trailing runner never
			// overwrites an occupied slot before it has been moved.
			for i := numBaseSlots - 1; i >= 0; i-- {
				if bases[i] == "" {
					continue
				}
				if i+gained >= scoringThreshold {
					runs++
				} else {
					bases[i+gained] = bases[i]
				}
				bases[i] = ""
			}
			if gained >= scoringThreshold {
				runs++
			} else {
				bases[gained-1] = batter
			}
		}

		logrus.Tracef("at-bat %s: %d bases (outs=%d runs=%d)", batter, gained, outs, runs)
		idx++
	}

	return runs
}
