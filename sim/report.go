// Renders search results for the console: the winning lineup, its sample of
// game scores, and the top of the ranking table.

package sim

import (
	"fmt"
	"io"
	"strings"
)

// WriteSummary displays the outcome of an optimization run. It consumes
// LineupRecords and scalar summaries only; nothing here affects the search.
func WriteSummary(w io.Writer, roster *Roster, gen GenerationResult, res SearchResult, gamesPerLineup, topK int) {
	fmt.Fprintln(w, "=== Lineup Search Results ===")
	fmt.Fprintf(w, "Roster size          : %d players\n", roster.Len())
	fmt.Fprintf(w, "Legal lineups        : %d of %d permutations\n", gen.LegalCount, gen.TotalPermutations)
	if gen.Sampled {
		fmt.Fprintf(w, "Sampled              : %d lineups\n", len(gen.Lineups))
	}
	fmt.Fprintf(w, "Games per lineup     : %d\n", gamesPerLineup)
	fmt.Fprintf(w, "Lineups tested       : %d\n", len(res.Records))
	fmt.Fprintf(w, "Total time           : %.2fs\n", res.Duration.Seconds())

	if res.Best == nil {
		fmt.Fprintln(w, "No legal lineup found.")
		return
	}

	best := *res.Best
	fmt.Fprintln(w, "\nBest lineup:")
	for i, name := range best.Lineup {
		rating, _ := roster.Rating(name)
		fmt.Fprintf(w, "%2d. %-12s (avg: %.2f bases, %s)\n", i+1, name, rating, roster.CategoryOf(name))
	}
	min, max := best.Range()
	fmt.Fprintf(w, "\nAverage runs per game: %.2f\n", best.AverageRuns)
	fmt.Fprintf(w, "Game results         : %v\n", best.GameRuns)
	fmt.Fprintf(w, "Range                : %d - %d runs (stddev %.2f)\n", min, max, best.StdDev())

	ranked := res.Ranked()
	if topK > len(ranked) {
		topK = len(ranked)
	}
	if topK > 1 {
		fmt.Fprintf(w, "\nTop %d lineups:\n", topK)
		for i, rec := range ranked[:topK] {
			fmt.Fprintf(w, "%2d. %.2f avg runs  %s\n", i+1, rec.AverageRuns, rec.Lineup)
		}
	}
}

// WriteLegalityReport summarizes the legal lineup space for the lineups
// subcommand: category split, counts, and a few example legal orders.
func WriteLegalityReport(w io.Writer, roster *Roster, cfg LegalityConfig, gen GenerationResult, examples int) {
	fmt.Fprintln(w, "=== Legal Lineup Report ===")
	fmt.Fprintf(w, "Restricted           : %s\n", strings.Join(roster.CategoryNames(Restricted), ", "))
	fmt.Fprintf(w, "Unrestricted         : %s\n", strings.Join(roster.CategoryNames(Unrestricted), ", "))
	fmt.Fprintf(w, "Rule                 : at most %d restricted in a row, wraparound window %d\n",
		cfg.MaxConsecutive, cfg.WraparoundWindow)
	fmt.Fprintf(w, "Total permutations   : %d\n", gen.TotalPermutations)
	fmt.Fprintf(w, "Legal lineups        : %d\n", gen.LegalCount)
	if gen.TotalPermutations > 0 {
		fmt.Fprintf(w, "Percentage legal     : %.1f%%\n",
			float64(gen.LegalCount)/float64(gen.TotalPermutations)*100)
	}

	if examples > len(gen.Lineups) {
		examples = len(gen.Lineups)
	}
	if examples > 0 {
		fmt.Fprintln(w, "\nExample legal lineups:")
		for i, l := range gen.Lineups[:examples] {
			fmt.Fprintf(w, "%2d. %s\n", i+1, l)
		}
	}
}
