// Package ttable implements the shared, concurrent table of resolved game
// states that workers in internal/search consult and populate: a score once
// recorded here only ever accumulates more information over time, never
// regresses.
//
// Grounded on the teacher's internal/engine/transposition.go for the overall
// shape of a fixed-size, mutex-free-on-the-fast-path hash table, and on
// _examples/original_source/cooperate/src/table.rs's Table::update for the
// insert-or-merge-on-conflict loop. The teacher's table is a single flat
// slice behind one implicit single-threaded owner (the engine never shares
// it across a write race); cooperate's is a lock-free DashSet. This
// implementation sits between the two: N independently-mutexed shards (the
// standard Go idiom for a concurrent map that needs more than sync.Map's
// unsynchronized-reads guarantee, since every entry here can be mutated by
// concurrent Merge calls) rather than either a single global mutex or a
// lock-free set, since Go has no direct DashMap/DashSet equivalent in the
// example pack's dependency set.
package ttable

import (
	"sync"

	"github.com/onoro-dev/onoro-solver/internal/score"
)

// Entry is one resolved state: its proof score, and the depth to which it
// was explored (entries are only replaced by Merge if doing so adds
// information, never loses it).
type Entry struct {
	Score score.Score
}

const shardCount = 64

type shard struct {
	mu      sync.RWMutex
	entries map[uint64]Entry
}

// Table is a sharded concurrent map from a game state's canonical hash to
// its resolved Entry.
type Table struct {
	shards [shardCount]*shard
}

// New returns an empty Table.
func New() *Table {
	t := &Table{}
	for i := range t.shards {
		t.shards[i] = &shard{entries: make(map[uint64]Entry)}
	}
	return t
}

func (t *Table) shardFor(hash uint64) *shard {
	return t.shards[hash%shardCount]
}

// Get returns the entry for hash, if present.
func (t *Table) Get(hash uint64) (Entry, bool) {
	s := t.shardFor(hash)
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[hash]
	return e, ok
}

// Update merges newEntry into the table's entry for hash, creating it if
// absent. Matches cooperate's Table::update: the stored score is always the
// Merge of whatever was there with the newly proposed score, so concurrent
// workers refining the same state from different angles never lose
// information to a race. Returns the merged entry.
func (t *Table) Update(hash uint64, newEntry Entry) Entry {
	s := t.shardFor(hash)
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.entries[hash]
	if !ok {
		s.entries[hash] = newEntry
		return newEntry
	}
	merged := Entry{Score: existing.Score.Merge(newEntry.Score)}
	s.entries[hash] = merged
	return merged
}

// Len returns the total number of resolved entries across all shards.
func (t *Table) Len() int {
	n := 0
	for _, s := range t.shards {
		s.mu.RLock()
		n += len(s.entries)
		s.mu.RUnlock()
	}
	return n
}
