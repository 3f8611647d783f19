// Package xhash defines the pass-through hashing seam the solver threads
// through its shared tables (internal/ttable, internal/pending): swapping
// the Hasher implementation must never change which proofs are found, only
// how the tables distribute and compare keys. The solver takes its Hasher
// from search.Options.Hasher.
//
// Grounded on the teacher's internal/board/zobrist.go for the "a board
// state reduces to a single uint64" idiom this generalizes, and wired to
// github.com/cespare/xxhash/v2 (already an indirect dependency of the
// teacher's go.mod via badger) as the realistic alternative to the
// solver's own Zobrist-style hash.
package xhash

import "github.com/cespare/xxhash/v2"

// Hasher reduces an already-hashed canonical state value to the uint64 key
// used by the shared tables. identityHasher is the default (the
// canonicalizer's Zobrist hash is already well-distributed, so no further
// mixing is needed); XXHasher remixes it through xxhash, useful for tables
// that want a hash independent of the canonicalizer's own mixing to rule
// out accidental correlation between table sharding and proof structure.
type Hasher interface {
	Hash(canonicalHash uint64) uint64
}

// Identity returns a Hasher that passes its input through unchanged.
func Identity() Hasher { return identityHasher{} }

type identityHasher struct{}

func (identityHasher) Hash(h uint64) uint64 { return h }

// XXHasher remixes the input through xxhash.
type XXHasher struct{}

// Hash implements Hasher.
func (XXHasher) Hash(h uint64) uint64 {
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(h >> (8 * i))
	}
	return xxhash.Sum64(buf[:])
}
