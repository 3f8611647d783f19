package search

import "github.com/onoro-dev/onoro-solver/internal/score"

// StackState mirrors cooperate's StackState enum: a unit of work is either
// Live (ready to make progress), Split (waiting on child stacks it spawned),
// or Suspended (waiting on another goroutine's claim via internal/pending).
type StackState int

const (
	StackLive StackState = iota
	StackSplit
	StackSuspended
)

func (s StackState) String() string {
	switch s {
	case StackLive:
		return "live"
	case StackSplit:
		return "split"
	case StackSuspended:
		return "suspended"
	default:
		return "unknown"
	}
}

// Frame is one ply of an in-progress depth-first exploration: the game state
// at this ply, the moves left to try, and the best score/move found among
// the moves already tried.
//
// Grounded on _examples/original_source/cooperate/src/stack.rs's
// StackFrame, minus move_iter/dependants: the original keeps a lazy move
// iterator and a lock-free linked list of suspended dependants because it
// runs a manual, non-blocking scheduler. worker.runStack drives each frame
// from a single goroutine that blocks on internal/pending's channel-based
// claims instead, so a frame only needs the remaining move slice and its
// running best.
type Frame[G any, M any] struct {
	Game  G
	Moves []M

	// next is the index into Moves of the next move to try.
	next int

	// ViaMove is the move, applied in the parent frame, that produced Game.
	// Unset (HasViaMove false) for a stack's bottom-most (root) frame, which
	// has no parent to fold its result into.
	ViaMove    M
	HasViaMove bool

	// Claimed records whether this frame's exploration holds a pending.Table
	// claim on its own canonical hash that must be resolved when the frame
	// commits. False for a stack's root frame, which is never pend.Claim'd
	// by its own stack (the BFS seeding step already deduped it).
	Claimed bool

	// BestScore starts as the Ancestor sentinel (score.Ancestor(), §4.2):
	// "no real result folded in yet", distinguishable from every genuine
	// proof a child can produce. Folding a move's result in replaces it
	// only if it IsAncestor() (nothing recorded yet) or is Better.
	BestScore Outcome[M]
}

// NextMove returns the next untried move for this frame, advancing past it.
// ok is false once every move has been tried.
func (f *Frame[G, M]) NextMove() (m M, ok bool) {
	if f.next >= len(f.Moves) {
		return m, false
	}
	m = f.Moves[f.next]
	f.next++
	return m, true
}

// exhaust marks every remaining move as tried, used by BreakEarly (§9): once
// one move proves a forced win deep enough, the rest can't improve on it.
func (f *Frame[G, M]) exhaust() {
	f.next = len(f.Moves)
}

// newFrame builds a Frame whose BestScore starts at the Ancestor sentinel,
// matching §4.2's "mark positions currently being explored" role: while
// this frame is open, its own canonical hash is checked against against
// every move about to be descended into (see worker.isAncestor), so a move
// that cycles back to this frame is recognized and resolved as a forced tie
// (§4.7) instead of being pushed and suspended on itself forever.
func newFrame[G any, M any](game G, moves []M) Frame[G, M] {
	return Frame[G, M]{Game: game, Moves: moves, BestScore: Outcome[M]{Score: score.Ancestor()}}
}

// Stack is one goroutine's depth-first search path through the game tree,
// rooted either at a BFS-seeded descendant (§4.9) or at the solve entry's
// own initial state for the final root-folding pass. Go's stack-per-goroutine
// model and GC mean this never needs the original's ArrayVec-of-fixed-size
// plus raw dependant pointers; a plain growable slice of frames suffices.
type Stack[G any, M any] struct {
	RootDepth int
	Frames    []Frame[G, M]
	State     StackState

	// RootResult is set once Done() becomes true: the folded score/move for
	// this stack's bottom-most frame, reported back to the caller that
	// spawned the stack (internal/search.Solve, for the final fold; workers
	// otherwise only care about the side effects on the shared tables).
	RootResult Outcome[M]
}

// NewRootStack starts a new Stack at the given search depth with initialGame
// as its only frame.
func NewRootStack[G any, M any](initialGame G, depth int, moves []M) *Stack[G, M] {
	s := &Stack[G, M]{RootDepth: depth, State: StackLive}
	s.Frames = append(s.Frames, newFrame[G, M](initialGame, moves))
	return s
}

// Push adds a new bottom frame for game, exploring moves, reached via
// viaMove from the current bottom frame. claimed records whether the pusher
// holds a pending.Table claim on game's hash that must be released when this
// frame commits.
func (s *Stack[G, M]) Push(game G, moves []M, viaMove M, claimed bool) {
	f := newFrame[G, M](game, moves)
	f.ViaMove = viaMove
	f.HasViaMove = true
	f.Claimed = claimed
	s.Frames = append(s.Frames, f)
}

// Pop discards the bottom frame, returning to the frame above it. Called when
// a frame has exhausted its moves and its score is ready to report upward.
func (s *Stack[G, M]) Pop() {
	s.Frames = s.Frames[:len(s.Frames)-1]
}

// Bottom returns the frame currently being explored.
func (s *Stack[G, M]) Bottom() *Frame[G, M] {
	return &s.Frames[len(s.Frames)-1]
}

// Done reports whether every frame has been popped, meaning the stack's root
// question has been fully answered.
func (s *Stack[G, M]) Done() bool {
	return len(s.Frames) == 0
}

// Depth returns the search depth remaining at the bottom frame.
func (s *Stack[G, M]) Depth() int {
	return s.RootDepth - (len(s.Frames) - 1)
}
