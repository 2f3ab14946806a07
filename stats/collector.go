package stats

import (
	"sync"

	"github.com/google/uuid"
)

// counters holds the sample total plus the five running totals spec.md §6
// names. Separated into
// its own struct so Collector can guard it with one mutex while RunID
// stays immutable after construction.
type counters struct {
	total    int
	correct  int
	stable   int
	unstable int
	robust   int
	fragile  int
}

// Collector accumulates per-dataset statistics across a run. RunID is
// assigned once at construction and never mutated, so it is read without
// locking; the counters are guarded by muCounters since a caller may
// process samples from multiple goroutines (spec.md §5 permits
// parallelizing across samples when per-sample state is isolated).
type Collector struct {
	runID      uuid.UUID
	muCounters sync.RWMutex
	c          counters
}

// NewCollector starts a fresh Collector with a freshly generated RunID.
func NewCollector() *Collector {
	return &Collector{runID: uuid.New()}
}

// RunID returns this run's identifier.
func (c *Collector) RunID() uuid.UUID { return c.runID }

// Record updates the counters for one sample's outcome. correct reports
// whether the classifier's concrete prediction matched the sample's
// reference label; stable/unstable are mutually exclusive and come from
// the StabilityStatus result (a Result of Unknown increments neither).
// "Robust" means correct and stable; "fragile" means correct but unstable
// — a correctly classified sample whose prediction does not survive
// perturbation.
func (c *Collector) Record(correct, stable, unstable bool) {
	c.muCounters.Lock()
	defer c.muCounters.Unlock()

	c.c.total++
	if correct {
		c.c.correct++
	}
	if stable {
		c.c.stable++
	}
	if unstable {
		c.c.unstable++
	}
	if correct && stable {
		c.c.robust++
	}
	if correct && unstable {
		c.c.fragile++
	}
}

// Snapshot is a point-in-time, safe-to-read copy of the running counters.
type Snapshot struct {
	Total    int
	Correct  int
	Stable   int
	Unstable int
	Robust   int
	Fragile  int
}

// Snapshot returns the current counter values.
func (c *Collector) Snapshot() Snapshot {
	c.muCounters.RLock()
	defer c.muCounters.RUnlock()

	return Snapshot{
		Total:    c.c.total,
		Correct:  c.c.correct,
		Stable:   c.c.stable,
		Unstable: c.c.unstable,
		Robust:   c.c.robust,
		Fragile:  c.c.fragile,
	}
}
