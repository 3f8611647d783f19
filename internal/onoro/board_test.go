package onoro

import "testing"

func TestDefaultStartScenario(t *testing.T) {
	b, err := Parse(". W\nB B")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if b.PlayerColor() != White {
		t.Errorf("PlayerColor() = %v, want White", b.PlayerColor())
	}
	if !b.InPhase1() {
		t.Error("InPhase1() = false, want true")
	}
	moves := b.EachMove()
	if len(moves) != 3 {
		t.Fatalf("EachMove() len = %d, want 3", len(moves))
	}
	for _, m := range moves {
		next, err := b.ApplyMove(m)
		if err != nil {
			t.Fatalf("ApplyMove(%+v): %v", m, err)
		}
		if next.PawnsInPlay() != 4 {
			t.Errorf("PawnsInPlay() after move = %d, want 4", next.PawnsInPlay())
		}
	}
}

func TestDefaultStartMatchesParsedStandardOpening(t *testing.T) {
	parsed, err := Parse(". W\nB B")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b := DefaultStart()

	if b.PlayerColor() != White {
		t.Errorf("PlayerColor() = %v, want White", b.PlayerColor())
	}
	if !b.InPhase1() {
		t.Error("InPhase1() = false, want true")
	}
	if got := len(b.EachMove()); got != 3 {
		t.Fatalf("EachMove() len = %d, want 3", got)
	}
	if Canonicalize(b).Hash != Canonicalize(parsed).Hash {
		t.Error("DefaultStart() is not canonically equal to the parsed standard opening")
	}
}

func TestSixPawnHexScenario(t *testing.T) {
	b, err := Parse(". W B\nB . W\nW B .")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if b.PawnsInPlay() != 6 {
		t.Fatalf("PawnsInPlay() = %d, want 6", b.PawnsInPlay())
	}
	moves := b.EachMove()
	if len(moves) != 7 {
		t.Errorf("EachMove() len = %d, want 7", len(moves))
	}
}

func TestParseRejectsUnbalancedColors(t *testing.T) {
	if _, err := Parse("B B\nB ."); err == nil {
		t.Error("Parse accepted an unbalanced board")
	}
}

func TestParseRejectsDisconnected(t *testing.T) {
	if _, err := Parse("B . . W\n. . . .\nB . . W"); err == nil {
		t.Error("Parse accepted a disconnected board")
	}
}

func TestNewBoardSeedsTwoAdjacentPawns(t *testing.T) {
	b := NewBoard()
	if b.PawnsInPlay() != 2 {
		t.Fatalf("PawnsInPlay() = %d, want 2", b.PawnsInPlay())
	}
	if b.PlayerColor() != Black {
		t.Errorf("PlayerColor() = %v, want Black", b.PlayerColor())
	}
	moves := b.EachMove()
	if len(moves) == 0 {
		t.Fatal("no placements available from the two-pawn start")
	}
	next, err := b.ApplyMove(moves[0])
	if err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if next.PawnsInPlay() != 3 || next.PlayerColor() != White {
		t.Errorf("after first placement: pawns=%d toMove=%v, want 3/White", next.PawnsInPlay(), next.PlayerColor())
	}
}

func TestInPhase1FlagAtPawnCountBoundary(t *testing.T) {
	var full Board
	full.placed = MaxPawns
	if full.InPhase1() {
		t.Error("InPhase1() = true with all pawns placed, want false")
	}

	var partial Board
	partial.placed = MaxPawns - 1
	if !partial.InPhase1() {
		t.Error("InPhase1() = false with one pawn left to place, want true")
	}
}
