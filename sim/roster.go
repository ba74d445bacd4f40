package sim

import (
	"fmt"
	"sort"
	"strings"
)

// Category is the fairness category a player belongs to. The consecutive-run
// rule in legality.go limits how many Restricted players may bat in a row.
type Category uint8

const (
	// Unrestricted players reset the consecutive-run counter.
	Unrestricted Category = iota
	// Restricted players count toward the consecutive-run limit.
	Restricted
)

func (c Category) String() string {
	if c == Restricted {
		return "restricted"
	}
	return "unrestricted"
}

// Player is one roster entry: a unique name, an average-bases-per-at-bat
// rating, and a fairness category. Immutable once the Roster is built.
type Player struct {
	Name     string
	Rating   float64
	Category Category
}

// Roster is the fixed set of players an optimization run draws lineups from.
// Order is preserved from construction and defines the identity permutation.
type Roster struct {
	players []Player
	byName  map[string]Player
}

// NewRoster validates and builds a Roster. Names must be non-empty and
// unique; ratings must be non-negative. An empty player list is allowed and
// yields a roster that generates zero lineups.
func NewRoster(players []Player) (*Roster, error) {
	byName := make(map[string]Player, len(players))
	for _, p := range players {
		if p.Name == "" {
			return nil, fmt.Errorf("roster: player with empty name")
		}
		if p.Rating < 0 {
			return nil, fmt.Errorf("roster: player %q has negative rating %v", p.Name, p.Rating)
		}
		if _, dup := byName[p.Name]; dup {
			return nil, fmt.Errorf("roster: duplicate player %q", p.Name)
		}
		byName[p.Name] = p
	}
	return &Roster{players: append([]Player(nil), players...), byName: byName}, nil
}

// NewRosterFromRatings builds a Roster from a name-to-rating map and the set
// of restricted player names; every name not in the restricted set is
// Unrestricted. Restricted names must all appear in the ratings map.
// Players are ordered by name for a deterministic identity permutation.
func NewRosterFromRatings(ratings map[string]float64, restricted []string) (*Roster, error) {
	restrictedSet := make(map[string]bool, len(restricted))
	for _, name := range restricted {
		if _, ok := ratings[name]; !ok {
			return nil, fmt.Errorf("roster: restricted player %q not in ratings", name)
		}
		restrictedSet[name] = true
	}
	names := make([]string, 0, len(ratings))
	for name := range ratings {
		names = append(names, name)
	}
	sort.Strings(names)
	players := make([]Player, 0, len(names))
	for _, name := range names {
		cat := Unrestricted
		if restrictedSet[name] {
			cat = Restricted
		}
		players = append(players, Player{Name: name, Rating: ratings[name], Category: cat})
	}
	return NewRoster(players)
}

// Len returns the number of players on the roster.
func (r *Roster) Len() int {
	return len(r.players)
}

// Players returns the roster entries in construction order.
func (r *Roster) Players() []Player {
	return append([]Player(nil), r.players...)
}

// Names returns the player names in construction order.
func (r *Roster) Names() []string {
	names := make([]string, len(r.players))
	for i, p := range r.players {
		names[i] = p.Name
	}
	return names
}

// Rating looks up a player's rating. ok is false for unknown names.
func (r *Roster) Rating(name string) (rating float64, ok bool) {
	p, ok := r.byName[name]
	return p.Rating, ok
}

// CategoryOf returns a player's category. Unknown names are Unrestricted,
// which keeps the legality scan total over arbitrary orderings.
func (r *Roster) CategoryOf(name string) Category {
	return r.byName[name].Category
}

// Categories maps an ordering of player names to their category tags.
func (r *Roster) Categories(order []string) []Category {
	cats := make([]Category, len(order))
	for i, name := range order {
		cats[i] = r.byName[name].Category
	}
	return cats
}

// CategoryNames returns the names in the given category, construction order.
func (r *Roster) CategoryNames(c Category) []string {
	var names []string
	for _, p := range r.players {
		if p.Category == c {
			names = append(names, p.Name)
		}
	}
	return names
}

func (r *Roster) String() string {
	return strings.Join(r.Names(), ", ")
}
