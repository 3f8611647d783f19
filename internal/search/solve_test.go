package search

import (
	"context"
	"testing"

	"github.com/onoro-dev/onoro-solver/internal/fixtures"
)

func TestSolveOneStickNimIsAnImmediateWin(t *testing.T) {
	n := fixtures.NewNim(1)
	res, err := Solve[*fixtures.Nim, int, fixtures.Player](context.Background(), n, Options{Depth: 4, Workers: 2, UnitDepth: 1})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !res.HasMove {
		t.Fatal("expected a recorded best move")
	}
	if res.Move != 1 {
		t.Fatalf("best move = %d, want 1", res.Move)
	}
	if !res.Score.CurPlayerWins() || res.Score.WinDepth() != 1 {
		t.Fatalf("score = %v, want an immediate win in 1", res.Score)
	}
}

func TestSolveThreeStickNimIsALoss(t *testing.T) {
	n := fixtures.NewNim(3)
	res, err := Solve[*fixtures.Nim, int, fixtures.Player](context.Background(), n, Options{Depth: 5, Workers: 3, UnitDepth: 1})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !res.HasMove {
		t.Fatal("expected a recorded best move even in a lost position")
	}
	if res.Score.CurPlayerWins() {
		t.Fatalf("score = %v, want a proven loss", res.Score)
	}
}

func TestSolveAgreesWithSingleWorker(t *testing.T) {
	n := fixtures.NewNim(7)
	single, err := Solve[*fixtures.Nim, int, fixtures.Player](context.Background(), n, Options{Depth: 8, Workers: 1})
	if err != nil {
		t.Fatalf("Solve (1 worker): %v", err)
	}
	parallel, err := Solve[*fixtures.Nim, int, fixtures.Player](context.Background(), n, Options{Depth: 8, Workers: 4, UnitDepth: 2})
	if err != nil {
		t.Fatalf("Solve (4 workers): %v", err)
	}
	if single.Score.CurPlayerWins() != parallel.Score.CurPlayerWins() {
		t.Fatalf("worker count changed the proof: single=%v parallel=%v", single.Score, parallel.Score)
	}
	if !single.Score.Compatible(parallel.Score) {
		t.Fatalf("single-worker and multi-worker proofs disagree: single=%v parallel=%v", single.Score, parallel.Score)
	}
}

func TestSolveTicTacToeFromEmptyBoardIsNotALoss(t *testing.T) {
	g := fixtures.NewTicTacToe()
	res, err := Solve[*fixtures.TicTacToe, fixtures.TTTMove, fixtures.Player](context.Background(), g, Options{Depth: 9, Workers: 4, UnitDepth: 2})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if !res.Score.CurPlayerWins() && res.Score.WinDepth() != 0 {
		t.Fatalf("score = %v, want no proven loss for the first mover", res.Score)
	}
}

// TestSolveUnitDepthZeroMatchesSeededSearch checks that UnitDepth: 0 (no BFS
// seeding, a single Stack rooted at the initial state) reaches the same
// proof as a seeded multi-worker search, i.e. the seeding step is purely a
// scheduling optimization and never changes which answer is found.
func TestSolveUnitDepthZeroMatchesSeededSearch(t *testing.T) {
	n := fixtures.NewNim(5)
	unseeded, err := Solve[*fixtures.Nim, int, fixtures.Player](context.Background(), n, Options{Depth: 6, Workers: 4})
	if err != nil {
		t.Fatalf("Solve (UnitDepth 0): %v", err)
	}
	seeded, err := Solve[*fixtures.Nim, int, fixtures.Player](context.Background(), n, Options{Depth: 6, Workers: 4, UnitDepth: 2})
	if err != nil {
		t.Fatalf("Solve (UnitDepth 2): %v", err)
	}
	if !unseeded.Score.Compatible(seeded.Score) {
		t.Fatalf("UnitDepth changed the proof: unseeded=%v seeded=%v", unseeded.Score, seeded.Score)
	}
}
