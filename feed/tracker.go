package feed

import (
	"sync"

	"github.com/google/uuid"
)

// Batch identifies the fetches issued for one selection.
type Batch struct {
	ID         string
	Selection  string
	generation uint64
}

// Tracker discards the results of superseded selections.
//
// Each Begin supersedes every previous batch: when the user switches portfolio
// while prices are still loading, the old results are dropped on arrival instead
// of being waited for.
type Tracker struct {
	mu      sync.Mutex
	current uint64
}

// Begin starts a batch for selection.
func (t *Tracker) Begin(selection string) Batch {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current++
	return Batch{ID: uuid.NewString(), Selection: selection, generation: t.current}
}

// Accept reports whether the results of b are still wanted.
func (t *Tracker) Accept(b Batch) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return b.generation != 0 && b.generation == t.current
}
