package refsolve

import (
	"testing"

	"github.com/onoro-dev/onoro-solver/internal/fixtures"
	"github.com/onoro-dev/onoro-solver/internal/onoro"
)

func TestFindBestMoveSolvesOneStickNim(t *testing.T) {
	n := fixtures.NewNim(1)
	var m Metrics
	sc, move, hasMove := FindBestMove[*fixtures.Nim, int, fixtures.Player](n, 4, &m)
	if !hasMove {
		t.Fatal("expected a best move for a 1-stick pile")
	}
	if move != 1 {
		t.Fatalf("best move = %d, want 1 (the only legal move)", move)
	}
	if !sc.CurPlayerWins() || sc.WinDepth() != 1 {
		t.Fatalf("score = %v, want an immediate win in 1", sc)
	}
}

func TestFindBestMoveSolvesThreeStickNimAsALoss(t *testing.T) {
	// With 3 sticks and a 1-or-2 take, the player to move always loses
	// against correct play: taking 1 leaves 2 (opponent takes 2 and wins),
	// taking 2 leaves 1 (opponent takes 1 and wins).
	n := fixtures.NewNim(3)
	var m Metrics
	sc, _, hasMove := FindBestMove[*fixtures.Nim, int, fixtures.Player](n, 5, &m)
	if !hasMove {
		t.Fatal("expected a recorded move even when every line loses")
	}
	if sc.CurPlayerWins() {
		t.Fatalf("score = %v, want a proven loss for the player to move", sc)
	}
}

func TestFindBestMoveDepthZeroReturnsNoMove(t *testing.T) {
	n := fixtures.NewNim(5)
	var m Metrics
	_, _, hasMove := FindBestMove[*fixtures.Nim, int, fixtures.Player](n, 0, &m)
	if hasMove {
		t.Fatal("depth 0 should never report a move")
	}
	if m.NumLeaves != 1 {
		t.Fatalf("NumLeaves = %d, want 1", m.NumLeaves)
	}
}

func TestFindBestMoveTicTacToeFirstMoverDoesNotLose(t *testing.T) {
	g := fixtures.NewTicTacToe()
	var m Metrics
	sc, _, hasMove := FindBestMove[*fixtures.TicTacToe, fixtures.TTTMove, fixtures.Player](g, 9, &m)
	if !hasMove {
		t.Fatal("expected a best move from the empty board")
	}
	if sc.CurPlayerWins() == false && sc.WinDepth() != 0 {
		t.Fatalf("score = %v, want a proven loss to never occur for perfect tic-tac-toe play", sc)
	}
}

// TestFindBestMoveSolvesOnoroDefaultStart exercises the oracle against a
// real Onoro position rather than only the fixtures package's toy games,
// confirming the *onoro.Board -> internal/search.Game wiring
// (internal/onoro/adapter.go) actually produces a usable move from the
// standard three-pawn opening.
func TestFindBestMoveSolvesOnoroDefaultStart(t *testing.T) {
	b := onoro.DefaultStart()
	var m Metrics
	sc, _, hasMove := FindBestMove[*onoro.Board, onoro.Move, onoro.Color](b, 4, &m)
	if !hasMove {
		t.Fatal("expected a recorded move from the default start")
	}
	if sc.CurPlayerWins() && sc.WinDepth() == 0 {
		t.Fatalf("score = %v: a win must carry a nonzero win depth", sc)
	}
}
