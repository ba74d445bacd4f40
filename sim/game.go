package sim

// InningsPerGame is the fixed game length.
const InningsPerGame = 6

// InningPlayer plays one inning of a batting order and returns its runs.
// *InningSimulator is the real implementation.
type InningPlayer interface {
	Play(order []string) int
}

// InningObserver is notified after each inning with its 1-based number and
// run total. Purely observational; the original's verbose per-inning
// printout hangs off this hook.
type InningObserver func(inning, runs int)

// GameSimulator plays fixed-length games by summing independent innings.
// Base state never carries across innings: each Play call on the inning
// player starts from empty bases.
type GameSimulator struct {
	inning   InningPlayer
	observer InningObserver
}

// NewGameSimulator creates a six-inning game over the given inning player.
func NewGameSimulator(inning InningPlayer) *GameSimulator {
	return &GameSimulator{inning: inning}
}

// WithObserver attaches an observer and returns the simulator for chaining.
func (g *GameSimulator) WithObserver(obs InningObserver) *GameSimulator {
	g.observer = obs
	return g
}

// Play simulates one game and returns total runs.
func (g *GameSimulator) Play(order []string) int {
	total := 0
	for inning := 1; inning <= InningsPerGame; inning++ {
		runs := g.inning.Play(order)
		total += runs
		if g.observer != nil {
			g.observer(inning, runs)
		}
	}
	return total
}
