// Package search implements the depth-bounded, memoizing game-tree solver
// that drives the parallel Onoro search: the generic Game contract, the
// per-goroutine exploration stack, the worker pool, and the top-level Solve
// entry point.
package search

import "github.com/onoro-dev/onoro-solver/internal/score"

// Game is the contract a two-player, perfect-information game state must
// satisfy to be explored by this package's solver. Self is the concrete
// state type (F-bounded so ApplyMove can return the same concrete type
// callers already use, e.g. *onoro.Board), M is the move type, and P is the
// player-identifier type.
//
// Grounded on abstract_game::Game (original_source/abstract_game/src/game.rs):
// EachMove/ApplyMove/CurrentPlayer/Finished mirror each_move/with_move/
// current_player/finished there, adapted to Go's explicit-error,
// no-iterator-trait idiom (EachMove returns a slice rather than a lazy
// iterator, matching onoro.Board.EachMove).
type Game[Self any, M any, P comparable] interface {
	EachMove() []M
	ApplyMove(m M) (Self, error)
	CurrentPlayer() P
	// Finished reports the winner and whether the game has ended.
	Finished() (winner P, over bool)
}

// Hashable is implemented by game states that can key the shared tables:
// CanonicalHash must agree for any two states the game considers the same
// abstract position (e.g. via onoro.Canonicalize), so transposition lookups
// across symmetric states coalesce correctly.
type Hashable interface {
	CanonicalHash() uint64
}

// HashableGame combines Game and Hashable: the constraint the worker and
// Solve entry point actually require, since the shared tables key on
// CanonicalHash.
type HashableGame[Self any, M any, P comparable] interface {
	Game[Self, M, P]
	Hashable
}

// Outcome is the recorded result of fully exploring a game state to some
// depth: the proof score from the mover's perspective and (if phase 2 or
// phase 1 respectively) the move that achieves it.
type Outcome[M any] struct {
	Score score.Score
	Move  M
	HasMove bool
}
