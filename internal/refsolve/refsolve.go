// Package refsolve implements a serial, uncached minimax solver used only
// as a test oracle against which internal/search's parallel, memoizing
// solver is checked: it trades all performance for being obviously correct.
//
// Grounded on _examples/original_source/cooperate/src/search.rs's
// find_best_move: same depth-bounded recursion, same "check every move for
// an immediate win before recursing" short-circuit, same break-on-forced-win
// early exit. Ported using internal/search.Game instead of abstract_game's
// Game trait, and internal/score.Score instead of abstract_game::Score.
package refsolve

import (
	"github.com/onoro-dev/onoro-solver/internal/score"
	"github.com/onoro-dev/onoro-solver/internal/search"
)

// Metrics counts nodes visited during a FindBestMove call, mirroring
// cooperate::Metrics (n_states, n_leaves, n_misses).
type Metrics struct {
	NumStates int
	NumLeaves int
	NumMisses int
}

// FindBestMove performs an uncached, serial minimax search of g to the
// given depth, returning the best proof score found for the player to move
// and the move that achieves it. hasMove is false if depth is 0 or g has no
// legal moves. Callers must confirm g is not already finished first,
// matching the original's debug_assert!(onoro.finished().is_none()).
func FindBestMove[G search.Game[G, M, P], M any, P comparable](g G, depth int, metrics *Metrics) (sc score.Score, best M, hasMove bool) {
	metrics.NumStates++

	if depth == 0 {
		metrics.NumLeaves++
		return score.Tie(0), best, false
	}

	moves := g.EachMove()

	// First, check if any move ends the game immediately for the mover.
	mover := g.CurrentPlayer()
	for _, m := range moves {
		next, err := g.ApplyMove(m)
		if err != nil {
			continue
		}
		if winner, over := next.Finished(); over && winner == mover {
			metrics.NumLeaves++
			return score.Win(1), m, true
		}
	}

	metrics.NumMisses++

	var bestScore score.Score
	var bestMove M
	have := false

	for _, m := range moves {
		next, err := g.ApplyMove(m)
		if err != nil {
			continue
		}

		var childScore score.Score
		if depth-1 > 0 && len(next.EachMove()) == 0 {
			// next has no legal moves at all (and we haven't hit the depth
			// limit, so this isn't just "unexplored"): the original treats
			// winning by no legal moves as not a win until after the other
			// player's failed attempt at making a move, i.e. a win for the
			// player choosing m in exactly 2 plies, with no further
			// backstep applied.
			childScore = score.Win(2)
		} else {
			s, _, _ := FindBestMove[G, M, P](next, depth-1, metrics)
			childScore = s.Backstep()
		}

		if !have || childScore.Better(bestScore) {
			bestScore = childScore
			bestMove = m
			have = true
		}

		if bestScore.WinDepth() != 0 && bestScore.CurPlayerWins() && bestScore.ScoreAtDepth(depth) == score.ValueCurrentPlayerWins {
			bestScore = bestScore.BreakEarly()
			break
		}
	}

	return bestScore, bestMove, have
}
