package sim

import (
	"math/rand"
	"strings"

	"github.com/sirupsen/logrus"
)

// Lineup is one batting order: a permutation of every roster player's name.
type Lineup []string

// Key returns a stable identity string for the lineup, used for ranking
// tie-breaks and for deriving the lineup's evaluation RNG stream.
func (l Lineup) Key() string {
	return strings.Join(l, ",")
}

func (l Lineup) String() string {
	return strings.Join(l, " -> ")
}

// GenerationResult is the Generator's output: the candidate lineups to
// evaluate plus the counts the final report displays.
type GenerationResult struct {
	Lineups           []Lineup // legal lineups, possibly a sampled subset
	LegalCount        int      // size of the full legal set before sampling
	TotalPermutations int      // n! for an n-player roster
	Sampled           bool     // true when Lineups is a truncated sample
}

// Generator enumerates the legal batting orders of a roster.
//
// Enumeration is exhaustive: every permutation is produced and filtered
// through the legality rule, and sampling (when maxLineups caps the output)
// shuffles the full legal set before truncating. That keeps the sample
// uniform over the legal subset, which direct constrained generation cannot
// guarantee without the same enumeration. The cost is the full n! walk, so
// rosters much past ten players are out of reach; that ceiling is accepted,
// not worked around.
type Generator struct {
	roster     *Roster
	cfg        LegalityConfig
	maxLineups int // 0 = no cap
	rng        *rand.Rand
}

// NewGenerator creates a Generator. rng drives the sampling shuffle and is
// only consulted when maxLineups truncates the legal set; it must be the
// SubsystemLineups stream so sampling never perturbs at-bat outcomes.
func NewGenerator(roster *Roster, cfg LegalityConfig, maxLineups int, rng *rand.Rand) *Generator {
	return &Generator{
		roster:     roster,
		cfg:        cfg,
		maxLineups: maxLineups,
		rng:        rng,
	}
}

// Generate enumerates all permutations of the roster, keeps the legal ones,
// and applies the sampling cap. An empty roster yields zero lineups.
func (g *Generator) Generate() GenerationResult {
	names := g.roster.Names()
	if len(names) == 0 {
		return GenerationResult{}
	}

	legal := g.enumerateLegal(names)
	result := GenerationResult{
		Lineups:           legal,
		LegalCount:        len(legal),
		TotalPermutations: factorial(len(names)),
	}

	if g.maxLineups > 0 && len(legal) > g.maxLineups {
		g.rng.Shuffle(len(legal), func(i, j int) {
			legal[i], legal[j] = legal[j], legal[i]
		})
		result.Lineups = legal[:g.maxLineups]
		result.Sampled = true
		logrus.Infof("sampled %d of %d legal lineups", g.maxLineups, result.LegalCount)
	}

	return result
}

// enumerateLegal walks every permutation of names with Heap's algorithm,
// collecting the ones the legality rule accepts. Categories are resolved
// once up front and permuted in lockstep so the filter never re-resolves
// names in the hot loop.
func (g *Generator) enumerateLegal(names []string) []Lineup {
	order := append([]string(nil), names...)
	cats := g.roster.Categories(order)

	var legal []Lineup
	keep := func() {
		if g.cfg.Legal(cats) {
			legal = append(legal, Lineup(append([]string(nil), order...)))
		}
	}

	n := len(order)
	counters := make([]int, n)
	keep()
	for i := 0; i < n; {
		if counters[i] < i {
			j := 0
			if i%2 != 0 {
				j = counters[i]
			}
			order[i], order[j] = order[j], order[i]
			cats[i], cats[j] = cats[j], cats[i]
			keep()
			counters[i]++
			i = 0
		} else {
			counters[i] = 0
			i++
		}
	}
	return legal
}

func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}
	return f
}
