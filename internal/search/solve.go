package search

import (
	"context"
	"log"
	"math/rand"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/onoro-dev/onoro-solver/internal/pending"
	"github.com/onoro-dev/onoro-solver/internal/score"
	"github.com/onoro-dev/onoro-solver/internal/ttable"
	"github.com/onoro-dev/onoro-solver/internal/xhash"
)

// Options configures a Solve call, mirroring the teacher's SearchLimits/
// DifficultySettings struct-literal configuration style
// (internal/engine/engine.go) rather than flags or env vars.
//
// Depth/Workers/UnitDepth mirror the §6 external interface's search_depth,
// num_threads, and unit_depth parameters.
type Options struct {
	// Depth is the maximum number of plies to search.
	Depth int

	// Workers is the number of goroutines exploring the search tree
	// concurrently. Defaults to 1 if <= 0.
	Workers int

	// UnitDepth is the number of plies to BFS out from the initial state
	// before handing independent subtrees to workers (§4.9): each distinct
	// position found at UnitDepth plies out becomes its own Stack, searched
	// to depth Depth-UnitDepth. Clamped to [0, Depth]; 0 means no seeding:
	// a single Stack rooted at the initial state, run by one worker.
	UnitDepth int

	// Hasher remixes each state's canonical hash before it keys the shared
	// tables. Defaults to xhash.Identity() if nil.
	Hasher xhash.Hasher
}

// Result is the outcome of a Solve call: the proof score for the player to
// move in the initial state, the move that achieves it (if any), and the
// combined metrics across every worker.
type Result[M any] struct {
	Score   score.Score
	Move    M
	HasMove bool
	Metrics Metrics
}

// seedStacks performs the §4.9 BFS-to-unit-depth seeding step: a breadth-
// first walk out from g to unitDepth plies, deduplicated by canonical hash
// so a position reachable by more than one path is only searched once.
// Positions that finish before reaching unitDepth are left out entirely:
// whichever frame later reaches them as a candidate move resolves them
// locally via the immediate-Finished()/win-in-2 checks in runStack, so they
// need no Stack (and no independent table entry) of their own.
func seedStacks[G HashableGame[G, M, P], M any, P comparable](g G, unitDepth int, hasher xhash.Hasher) []G {
	if unitDepth <= 0 {
		return []G{g}
	}

	type queued struct {
		game  G
		depth int
	}

	seen := map[uint64]bool{canonHash(g, hasher): true}
	frontier := []queued{{g, 0}}
	var descendants []G

	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]

		if _, over := cur.game.Finished(); over {
			continue
		}
		if cur.depth == unitDepth {
			descendants = append(descendants, cur.game)
			continue
		}

		for _, m := range cur.game.EachMove() {
			next, err := cur.game.ApplyMove(m)
			if err != nil {
				continue
			}
			h := canonHash(next, hasher)
			if seen[h] {
				continue
			}
			seen[h] = true
			frontier = append(frontier, queued{next, cur.depth + 1})
		}
	}

	return descendants
}

// assignQueues distributes stacks across numWorkers queues. Matches §4.9's
// "assign the resulting stacks to worker queues uniformly at random": a
// fixed-seed shuffle keeps the distribution reproducible across identical
// runs (and so test-friendly) while not favoring any one worker by the
// order BFS happened to discover positions in.
func assignQueues[G any, M any](stacks []*Stack[G, M], numWorkers int) [][]*Stack[G, M] {
	order := rand.New(rand.NewSource(1)).Perm(len(stacks))
	queues := make([][]*Stack[G, M], numWorkers)
	for i, idx := range order {
		w := i % numWorkers
		queues[w] = append(queues[w], stacks[idx])
	}
	return queues
}

// Solve computes the game-theoretic proof score (and best move) for the
// initial state g, searching to opts.Depth plies. It first BFS-seeds
// independent Stacks at opts.UnitDepth plies out (§4.9), runs them across
// opts.Workers goroutines sharing one ttable.Table and one pending.Table,
// then folds the root's own score from the now-resolved cache: every
// position at UnitDepth plies out is fully determined by the time the
// worker pool finishes, so this final fold only does real search work for
// the first UnitDepth plies, and pure table lookups below that.
//
// Grounded on _examples/other_examples/1f591a8b_bluebear94-odnocam's
// Lazy-SMP loop: one errgroup.Group launches a helper goroutine per worker,
// all sharing the same transposition table, generalizing the teacher's
// manual sync.WaitGroup fan-in (internal/engine/engine.go's workerSearch).
// Unlike Lazy-SMP's "helpers search redundantly to warm shared state"
// design, here each worker runs a disjoint set of BFS-seeded stacks, since
// the pending table already prevents duplicate work on subtrees reached
// from more than one stack.
func Solve[G HashableGame[G, M, P], M any, P comparable](ctx context.Context, g G, opts Options) (Result[M], error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}
	hasher := opts.Hasher
	if hasher == nil {
		hasher = xhash.Identity()
	}
	unitDepth := opts.UnitDepth
	if unitDepth < 0 {
		unitDepth = 0
	}
	if unitDepth > opts.Depth {
		unitDepth = opts.Depth
	}

	tt := ttable.New()
	pend := pending.New(opts.Depth)

	descendants := seedStacks[G, M, P](g, unitDepth, hasher)
	rootDepth := opts.Depth - unitDepth

	stacks := make([]*Stack[G, M], len(descendants))
	for i, d := range descendants {
		stacks[i] = NewRootStack[G, M](d, rootDepth, d.EachMove())
	}
	queues := assignQueues(stacks, workers)

	workerMetrics := make([]Metrics, workers)

	eg, egCtx := errgroup.WithContext(ctx)
	for wID := 0; wID < workers; wID++ {
		wID := wID
		eg.Go(func() error {
			w := &worker[G, M, P]{id: wID, tt: tt, pend: pend, hasher: hasher}
			err := w.runQueue(egCtx, queues[wID])
			w.logProgress("done")
			workerMetrics[wID] = w.metrics
			return err
		})
	}

	if err := eg.Wait(); err != nil {
		return Result[M]{}, err
	}

	// Every UnitDepth-deep descendant is now fully resolved in tt. Fold the
	// root's own score back from it: the descent below only performs real
	// work for the first UnitDepth plies before landing on table hits.
	folder := &worker[G, M, P]{id: -1, tt: tt, pend: pend, hasher: hasher}
	rootStack := NewRootStack[G, M](g, opts.Depth, g.EachMove())
	folder.runStack(rootStack)

	var res Result[M]
	res.Score = rootStack.RootResult.Score
	res.Move = rootStack.RootResult.Move
	res.HasMove = rootStack.RootResult.HasMove

	for _, m := range workerMetrics {
		res.Metrics.Add(&m)
	}
	res.Metrics.Add(&folder.metrics)

	log.Printf("[solver] explored %s states (%s leaves, %s table hits, %s suspends)",
		humanize.Comma(int64(res.Metrics.NumStates)),
		humanize.Comma(int64(res.Metrics.NumLeaves)),
		humanize.Comma(int64(res.Metrics.NumHits)),
		humanize.Comma(int64(res.Metrics.NumSuspends)))

	return res, nil
}
