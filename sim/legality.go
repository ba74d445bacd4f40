package sim

// DefaultMaxConsecutive is the league rule: at most three restricted-category
// players may bat in a row, counting the wrap from the bottom of the order
// back to the top.
const DefaultMaxConsecutive = 3

// LegalityConfig parameterizes the consecutive-run rule. MaxConsecutive and
// WraparoundWindow are numerically equal under the default rule but are
// distinct knobs: the first is the longest permitted run, the second is how
// many leading batters are appended to the order to detect runs that cross
// the wraparound.
type LegalityConfig struct {
	MaxConsecutive   int
	WraparoundWindow int
}

// NewLegalityConfig returns the rule with the given run limit and a
// wraparound window equal to it.
func NewLegalityConfig(maxConsecutive int) LegalityConfig {
	return LegalityConfig{MaxConsecutive: maxConsecutive, WraparoundWindow: maxConsecutive}
}

// DefaultLegalityConfig returns the standard three-in-a-row rule.
func DefaultLegalityConfig() LegalityConfig {
	return NewLegalityConfig(DefaultMaxConsecutive)
}

// Legal reports whether an ordering with the given category tags satisfies
// the consecutive-run rule, treating the order as circular. The scan runs
// twice: once over the tags as given, and once over the tags extended by
// their first WraparoundWindow elements. The second scan runs even for
// orders shorter than the window (they trivially pass).
func (cfg LegalityConfig) Legal(cats []Category) bool {
	if !cfg.scanOK(cats) {
		return false
	}
	window := cfg.WraparoundWindow
	if window > len(cats) {
		window = len(cats)
	}
	wrapped := make([]Category, 0, len(cats)+window)
	wrapped = append(wrapped, cats...)
	wrapped = append(wrapped, cats[:window]...)
	return cfg.scanOK(wrapped)
}

// scanOK is the linear pass: count consecutive Restricted tags, reset on
// Unrestricted, fail when the run exceeds MaxConsecutive.
func (cfg LegalityConfig) scanOK(cats []Category) bool {
	run := 0
	for _, c := range cats {
		if c == Restricted {
			run++
			if run > cfg.MaxConsecutive {
				return false
			}
		} else {
			run = 0
		}
	}
	return true
}

// LegalityChecker binds a LegalityConfig to a Roster so orderings can be
// checked by player name.
type LegalityChecker struct {
	cfg    LegalityConfig
	roster *Roster
}

// NewLegalityChecker creates a checker for the given roster and rule.
func NewLegalityChecker(roster *Roster, cfg LegalityConfig) *LegalityChecker {
	return &LegalityChecker{cfg: cfg, roster: roster}
}

// Legal reports whether the named batting order satisfies the rule.
func (c *LegalityChecker) Legal(order []string) bool {
	return c.cfg.Legal(c.roster.Categories(order))
}
