package sim

import (
	"math"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// LineupEvaluator scores one lineup. *Evaluator is the real implementation;
// search tests substitute stubs.
type LineupEvaluator interface {
	Evaluate(l Lineup) LineupRecord
}

// EvaluatorFactory builds the evaluator for one lineup. The factory is what
// keeps parallel search deterministic: each lineup's evaluator draws from an
// RNG stream derived from the master seed and the lineup's identity, so the
// scores do not depend on which worker runs it or when.
type EvaluatorFactory func(l Lineup) LineupEvaluator

// SearchResult is the driver's output. Records holds every evaluated lineup
// in generation order; Ranked() sorts a copy for reporting. Duration is
// observational only.
type SearchResult struct {
	Best     *LineupRecord
	Records  []LineupRecord
	Duration time.Duration
}

// Ranked returns the records sorted descending by average runs. The sort is
// stable, so ties keep generation order, which is fixed before any
// evaluation starts and therefore identical across worker counts.
func (r SearchResult) Ranked() []LineupRecord {
	ranked := append([]LineupRecord(nil), r.Records...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AverageRuns > ranked[j].AverageRuns
	})
	return ranked
}

// SearchDriver evaluates every candidate lineup and tracks the best.
type SearchDriver struct {
	evaluatorFor EvaluatorFactory
	workers      int
}

// NewSearchDriver creates a driver. workers <= 1 evaluates sequentially;
// larger values fan lineups out over a worker pool.
func NewSearchDriver(evaluatorFor EvaluatorFactory, workers int) *SearchDriver {
	if workers < 1 {
		workers = 1
	}
	return &SearchDriver{evaluatorFor: evaluatorFor, workers: workers}
}

// Run evaluates all lineups and returns the result. Best is nil when the
// candidate set is empty. Best-so-far starts at -Inf, not 0, so a lineup
// averaging exactly zero runs still wins when it is the strongest candidate.
// Progress is logged at roughly 10% increments.
func (d *SearchDriver) Run(lineups []Lineup) SearchResult {
	start := time.Now()
	records := make([]LineupRecord, len(lineups))

	if d.workers == 1 {
		d.runSequential(lineups, records, start)
	} else {
		d.runParallel(lineups, records, start)
	}

	result := SearchResult{Records: records, Duration: time.Since(start)}

	bestAvg := math.Inf(-1)
	for i := range records {
		if records[i].AverageRuns > bestAvg {
			bestAvg = records[i].AverageRuns
			result.Best = &records[i]
		}
	}
	return result
}

func (d *SearchDriver) runSequential(lineups []Lineup, records []LineupRecord, start time.Time) {
	progress := newProgressLogger(len(lineups), start)
	for i, l := range lineups {
		records[i] = d.evaluatorFor(l).Evaluate(l)
		progress.done()
	}
}

// runParallel fans lineups out over d.workers goroutines. Each result lands
// at its lineup's original index, so Records keeps generation order no
// matter the completion order.
func (d *SearchDriver) runParallel(lineups []Lineup, records []LineupRecord, start time.Time) {
	progress := newProgressLogger(len(lineups), start)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < d.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				l := lineups[i]
				records[i] = d.evaluatorFor(l).Evaluate(l)
				progress.done()
			}
		}()
	}
	for i := range lineups {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}

// progressLogger emits an info line each time another ~10% of the lineups
// finishes. Safe for concurrent done() calls.
type progressLogger struct {
	total      int
	start      time.Time
	completed  atomic.Int64
	lastDecile atomic.Int64
}

func newProgressLogger(total int, start time.Time) *progressLogger {
	return &progressLogger{total: total, start: start}
}

func (p *progressLogger) done() {
	if p.total == 0 {
		return
	}
	n := p.completed.Add(1)
	decile := n * 10 / int64(p.total)
	if decile == 0 {
		return
	}
	for {
		last := p.lastDecile.Load()
		if decile <= last {
			return
		}
		if p.lastDecile.CompareAndSwap(last, decile) {
			logrus.Infof("progress: %.1f%% (%d/%d lineups) - %.1fs elapsed",
				float64(n)/float64(p.total)*100, n, p.total, time.Since(p.start).Seconds())
			return
		}
	}
}
