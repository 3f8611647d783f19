package search

import (
	"context"
	"log"

	"github.com/onoro-dev/onoro-solver/internal/pending"
	"github.com/onoro-dev/onoro-solver/internal/score"
	"github.com/onoro-dev/onoro-solver/internal/ttable"
	"github.com/onoro-dev/onoro-solver/internal/xhash"
)

// Metrics accumulates per-worker node counts, reported back to Solve for the
// combined progress log line. Mirrors cooperate::Metrics, widened with a
// NumSuspends counter since this implementation's Stack actually tracks
// suspension (see stack.go) where the original's version left it as a TODO.
type Metrics struct {
	NumStates   uint64
	NumLeaves   uint64
	NumHits     uint64
	NumSuspends uint64
}

// Add folds other's counts into m, used when a worker reports its totals back
// to the coordinating Solve call.
func (m *Metrics) Add(other *Metrics) {
	m.NumStates += other.NumStates
	m.NumLeaves += other.NumLeaves
	m.NumHits += other.NumHits
	m.NumSuspends += other.NumSuspends
}

// worker drives Stacks to completion, consulting and populating the shared
// resolved-state table and claiming states via the shared pending table to
// avoid duplicating another worker's in-flight work.
//
// Grounded on internal/engine/worker.go's Worker struct: per-worker scratch
// state (here, just Metrics; the teacher's Worker additionally carries killer
// moves and continuation history, which have no analog in an exact solver
// with no move ordering heuristics) plus shared, pointer-held resources
// (transposition table, history table there; ttable.Table/pending.Table
// here). The frame-stepping loop itself is grounded on
// _examples/original_source/cooperate/src/stack.rs's doc-comment worker-loop
// sketch: pop a stack, step its bottom frame one move at a time, consult
// (table, pending) per move, suspend or commit as the answer dictates.
type worker[G HashableGame[G, M, P], M any, P comparable] struct {
	id      int
	tt      *ttable.Table
	pend    *pending.Table
	hasher  xhash.Hasher
	metrics Metrics
}

// canonHash resolves g's table key through the worker's configured Hasher,
// matching the §6 solve(..., hasher) seam: swapping Hasher must never change
// which proof is found, only how table keys are distributed.
func canonHash[G Hashable](g G, hasher xhash.Hasher) uint64 {
	return hasher.Hash(g.CanonicalHash())
}

// runQueue drives every stack assigned to this worker to completion, in
// order, stopping early if ctx is cancelled (another worker in the same
// errgroup failed). A worker never runs two stacks concurrently; when a
// stack suspends (waiting on another worker's in-flight claim) this
// goroutine blocks, which Go's scheduler turns into free CPU for the other
// workers still running, the same effect the original's manual stack-swap
// achieves by hand.
func (w *worker[G, M, P]) runQueue(ctx context.Context, queue []*Stack[G, M]) error {
	for _, st := range queue {
		if err := ctx.Err(); err != nil {
			return err
		}
		w.runStack(st)
	}
	return nil
}

// runStack drives st's bottom frame, one move at a time, until every frame
// has been popped, leaving the final folded result in st.RootResult. Mirrors
// internal/refsolve.FindBestMove's recursion shape (immediate-win
// short-circuit, Win(2)-without-backstep into a position with no replies,
// BreakEarly on a fully proven win) but as an explicit frame stack so a
// worker can suspend mid-descent instead of blocking inside a call frame,
// and memoized/deduplicated through ttable and pending across workers,
// matching _examples/original_source/cooperate/src/search.rs's
// find_best_move plus global_data.rs's get_or_queue/commit_score.
func (w *worker[G, M, P]) runStack(st *Stack[G, M]) {
	for !st.Done() {
		frame := st.Bottom()

		m, ok := frame.NextMove()
		if !ok {
			w.commit(st)
			continue
		}

		next, err := frame.Game.ApplyMove(m)
		if err != nil {
			continue
		}

		if winner, over := next.Finished(); over && winner == frame.Game.CurrentPlayer() {
			w.metrics.NumLeaves++
			w.fold(st, frame, m, score.Win(1))
			continue
		}

		childDepth := st.Depth() - 1

		if childDepth > 0 && len(next.EachMove()) == 0 {
			// next has no legal moves at all (and we haven't hit the depth
			// limit, so this isn't just "unexplored"): treated as a win for
			// the player choosing m in exactly 2 plies, with no further
			// backstep applied, matching internal/refsolve.FindBestMove.
			w.metrics.NumLeaves++
			w.fold(st, frame, m, score.Win(2))
			continue
		}

		// §4.7's deadlock-avoidance rule: a move that leads back to a state
		// already open on this very stack can never be resolved by
		// suspending on the pending table (it would be waiting on itself),
		// so it is folded in directly as a forced tie instead.
		if w.isAncestor(st, next) {
			w.fold(st, frame, m, score.Tie(0).Backstep())
			continue
		}

		hash := canonHash(next, w.hasher)

		if entry, ok := w.tt.Get(hash); ok && entry.Score.Determined(childDepth) {
			w.metrics.NumHits++
			w.fold(st, frame, m, entry.Score.Backstep())
			continue
		}

		if childDepth <= 0 {
			w.metrics.NumLeaves++
			w.fold(st, frame, m, score.Tie(0).Backstep())
			continue
		}

		wait, claimed := w.pend.Claim(childDepth, hash)
		if !claimed {
			st.State = StackSuspended
			w.metrics.NumSuspends++
			<-wait
			st.State = StackLive
			if entry, ok := w.tt.Get(hash); ok {
				w.fold(st, frame, m, entry.Score.Backstep())
			} else {
				// The claim holder hit its own ancestor guard and resolved
				// without recording a usable entry; treat it the same way.
				w.fold(st, frame, m, score.Tie(0).Backstep())
			}
			continue
		}

		st.Push(next, next.EachMove(), m, true)
		w.metrics.NumStates++
	}
}

// isAncestor reports whether next's canonical position already appears on
// st, i.e. some still-open frame of this very stack is exploring it.
func (w *worker[G, M, P]) isAncestor(st *Stack[G, M], next G) bool {
	h := canonHash(next, w.hasher)
	for i := range st.Frames {
		if canonHash(st.Frames[i].Game, w.hasher) == h {
			return true
		}
	}
	return false
}

// fold records sc (already expressed from frame's own mover's perspective)
// as the result of trying move m, keeping it only if it improves on
// frame.BestScore, then checks whether the improved score is already a
// proven win deep enough to stop trying further moves (BreakEarly).
func (w *worker[G, M, P]) fold(st *Stack[G, M], frame *Frame[G, M], m M, sc score.Score) {
	if frame.BestScore.Score.IsAncestor() || sc.Better(frame.BestScore.Score) {
		frame.BestScore = Outcome[M]{Score: sc, Move: m, HasMove: true}
	}

	bs := frame.BestScore.Score
	depth := st.Depth()
	if bs.WinDepth() != 0 && bs.CurPlayerWins() && bs.ScoreAtDepth(depth) == score.ValueCurrentPlayerWins {
		frame.BestScore.Score = bs.BreakEarly()
		frame.exhaust()
	}
}

// commit finalizes st's bottom frame once its moves are exhausted: records
// its score in the shared table, releases any pending claim it held, pops
// it, and folds the result into the parent frame (or, if this was the last
// frame, leaves it in st.RootResult for the caller).
func (w *worker[G, M, P]) commit(st *Stack[G, M]) {
	frame := st.Bottom()

	finalScore := frame.BestScore.Score
	if finalScore.IsAncestor() {
		// No move was ever folded in (every move errored out, or the frame
		// had none to begin with): there is no real proof to record, so the
		// in-progress sentinel must not leak into the shared table as if it
		// were a real result.
		finalScore = score.Tie(0)
	}

	depth := st.Depth()
	hash := canonHash(frame.Game, w.hasher)
	w.tt.Update(hash, ttable.Entry{Score: finalScore})
	if frame.Claimed {
		w.pend.Resolve(depth, hash)
	}

	result := Outcome[M]{Score: finalScore, Move: frame.BestScore.Move, HasMove: frame.BestScore.HasMove}
	viaMove, hasVia := frame.ViaMove, frame.HasViaMove

	st.Pop()

	if st.Done() {
		st.RootResult = result
		return
	}

	if hasVia {
		w.fold(st, st.Bottom(), viaMove, finalScore.Backstep())
	}
}

func (w *worker[G, M, P]) logProgress(label string) {
	log.Printf("[worker %d] %s: states=%d leaves=%d hits=%d suspends=%d",
		w.id, label, w.metrics.NumStates, w.metrics.NumLeaves, w.metrics.NumHits, w.metrics.NumSuspends)
}
