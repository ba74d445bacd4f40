// Package sim provides the core Monte Carlo engine for the lineup optimizer.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - legality.go: the consecutive-run fairness rule and its wraparound scan
//   - inning.go: the base-state machine that turns at-bat outcomes into runs
//   - search.go: the loop that scores every candidate lineup and ranks them
//
// # Architecture
//
// The pipeline is a straight line. A Roster (roster.go) feeds the Generator
// (lineup.go), which enumerates every batting order and keeps the ones the
// LegalityConfig accepts. The SearchDriver (search.go) pushes each surviving
// Lineup through an Evaluator (evaluate.go), which plays repeated games
// (game.go) of six innings (inning.go) where each plate appearance is drawn
// from a player's rating by the at-bat model (atbat.go). Results fold back
// up as LineupRecords and a ranked SearchResult; report.go renders them.
//
// # Determinism
//
// All randomness flows from a PartitionedRNG (rng.go) seeded by a single
// SimulationKey. Lineup sampling and at-bat play draw from isolated
// subsystem streams, and each lineup's evaluation stream is derived from
// the master key plus the lineup's own identity, so results do not depend
// on how many workers evaluate lineups concurrently.
//
// # Key Interfaces
//
// The extension points are single-method interfaces:
//   - AtBatModel: player name to bases gained (mocked in inning tests)
//   - InningPlayer: batting order to runs for one inning
//   - GamePlayer: batting order to runs for one game
//   - LineupEvaluator: lineup to LineupRecord (mocked in search tests)
package sim
