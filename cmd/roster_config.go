package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/ross-bechtel/softball-lineup-optimizer/sim"
)

// RosterConfig is the YAML roster file: player ratings plus the names
// subject to the consecutive-batting limit. Everyone not listed under
// restricted is unrestricted; the split is computed, never stored per player.
type RosterConfig struct {
	Players    []PlayerConfig `yaml:"players"`
	Restricted []string       `yaml:"restricted"`
}

// PlayerConfig is one roster entry in the YAML file.
type PlayerConfig struct {
	Name   string  `yaml:"name"`
	Rating float64 `yaml:"rating"` // average bases per at-bat
}

// LoadRosterConfig reads and parses a roster YAML file.
func LoadRosterConfig(path string) (*RosterConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}
	var cfg RosterConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse roster file: %w", err)
	}
	return &cfg, nil
}

// DefaultRosterConfig is the sample roster used when --roster is not given.
func DefaultRosterConfig() *RosterConfig {
	return &RosterConfig{
		Players: []PlayerConfig{
			{Name: "Ross", Rating: 0.65},
			{Name: "Brendon", Rating: 0.9},
			{Name: "Lindsey", Rating: 0.3},
			{Name: "Aidan", Rating: 1.25},
			{Name: "Robbie", Rating: 0.65},
			{Name: "Kaitlin", Rating: 0.45},
			{Name: "Kate", Rating: 0.2},
			{Name: "Thomas", Rating: 0.5},
			{Name: "Jake", Rating: 0.6},
			{Name: "Josh", Rating: 0.6},
		},
		Restricted: []string{"Ross", "Brendon", "Aidan", "Robbie", "Thomas", "Jake", "Josh"},
	}
}

// Roster validates the config and builds the immutable sim.Roster,
// preserving the file's player order.
func (c *RosterConfig) Roster() (*sim.Roster, error) {
	if len(c.Players) == 0 {
		return nil, fmt.Errorf("roster config: no players")
	}
	known := make(map[string]bool, len(c.Players))
	for _, p := range c.Players {
		known[p.Name] = true
	}
	restricted := make(map[string]bool, len(c.Restricted))
	for _, name := range c.Restricted {
		if !known[name] {
			return nil, fmt.Errorf("roster config: restricted player %q not on roster", name)
		}
		restricted[name] = true
	}
	players := make([]sim.Player, 0, len(c.Players))
	for _, p := range c.Players {
		cat := sim.Unrestricted
		if restricted[p.Name] {
			cat = sim.Restricted
		}
		players = append(players, sim.Player{Name: p.Name, Rating: p.Rating, Category: cat})
	}
	roster, err := sim.NewRoster(players)
	if err != nil {
		return nil, fmt.Errorf("roster config: %w", err)
	}
	return roster, nil
}
