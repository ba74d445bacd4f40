package sim

// MaxBases is the most a batter can advance in one at-bat (a home run).
const MaxBases = 4

// AtBatModel maps a batter to the number of bases gained, 0 through MaxBases.
// 0 is an out. Implementations are stochastic; tests use fixed or scripted
// models.
type AtBatModel interface {
	Bases(name string) int
}

// RatingAtBat draws at-bat outcomes from a player's average-bases rating.
//
// A rating r splits into whole and fractional parts; the outcome is
// floor(r)+1 with probability frac(r) and floor(r) otherwise, clamped to
// MaxBases. The expectation equals r exactly for r < 4. A rating of 1.3
// means a 70% single and a 30% double.
type RatingAtBat struct {
	roster *Roster
	rng    UniformSource
}

// NewRatingAtBat creates the rating-driven model. rng must be dedicated to
// this model's draws (SubsystemAtBat, or a per-lineup derived stream).
func NewRatingAtBat(roster *Roster, rng UniformSource) *RatingAtBat {
	return &RatingAtBat{roster: roster, rng: rng}
}

// Bases draws one at-bat outcome. A name missing from the roster is an
// automatic out rather than an error; the roster loader is responsible for
// rejecting bad configurations before play starts. Degenerate ratings are
// clamped: negative behaves as 0, and anything at or above MaxBases is a
// guaranteed home run.
func (m *RatingAtBat) Bases(name string) int {
	rating, ok := m.roster.Rating(name)
	if !ok {
		return 0
	}
	if rating < 0 {
		rating = 0
	}
	whole := int(rating)
	frac := rating - float64(whole)
	if m.rng.Float64() < frac {
		whole++
	}
	if whole > MaxBases {
		whole = MaxBases
	}
	return whole
}
