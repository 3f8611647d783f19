package onoro

import (
	"testing"

	"github.com/onoro-dev/onoro-solver/internal/hexgrid"
)

func TestIsNeighbor(t *testing.T) {
	cases := []struct {
		a, b hexgrid.HexPosition
		want bool
	}{
		{hexgrid.HexPosition{X: 5, Y: 5}, hexgrid.HexPosition{X: 6, Y: 5}, true},
		{hexgrid.HexPosition{X: 5, Y: 5}, hexgrid.HexPosition{X: 5, Y: 6}, true},
		{hexgrid.HexPosition{X: 5, Y: 5}, hexgrid.HexPosition{X: 6, Y: 6}, true},
		{hexgrid.HexPosition{X: 5, Y: 5}, hexgrid.HexPosition{X: 4, Y: 6}, false},
		{hexgrid.HexPosition{X: 5, Y: 5}, hexgrid.HexPosition{X: 5, Y: 5}, false},
		{hexgrid.HexPosition{X: 5, Y: 5}, hexgrid.HexPosition{X: 7, Y: 5}, false},
	}
	for _, c := range cases {
		if got := isNeighbor(c.a, c.b); got != c.want {
			t.Errorf("isNeighbor(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestConnectedAndNoLonely(t *testing.T) {
	triangle := []hexgrid.HexPosition{
		{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6},
	}
	if !connectedAndNoLonely(triangle) {
		t.Error("triangle of mutually-adjacent pawns should be connected with no lonely pawn")
	}

	chain := []hexgrid.HexPosition{
		{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 7, Y: 5},
	}
	if connectedAndNoLonely(chain) {
		t.Error("a bare three-in-a-row chain has two degree-1 endpoints, want false")
	}

	disconnected := []hexgrid.HexPosition{
		{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6},
		{X: 10, Y: 10}, {X: 11, Y: 10}, {X: 11, Y: 11},
	}
	if connectedAndNoLonely(disconnected) {
		t.Error("two disjoint triangles should not be reported connected")
	}
}

func TestEachMoveNilOnTerminalBoard(t *testing.T) {
	b, err := Parse("B B B B\nW W W W")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !b.IsTerminal() {
		t.Fatal("expected the four-in-a-row board to be terminal")
	}
	if moves := b.EachMove(); moves != nil {
		t.Errorf("EachMove() on a terminal board = %v, want nil", moves)
	}
}

// TestPhase2MoveGenerationOnLadderBoard builds a 16-pawn "ladder" of two
// parallel rows of eight (row-internal offset (1,0), vertical offset
// (0,1), both lattice neighbor directions), which satisfies the
// connected/min-degree-2 invariant: interior pawns have degree 4, row
// endpoints have degree 2 or 3. Colors alternate along each row (and
// between the rows) so no four-in-a-row ends the game before phase 2
// moves can be generated. It only checks the generator's own
// self-consistency (every move it returns is accepted by ApplyMove),
// since independently hand-enumerating all legal phase 2 destinations
// for sixteen pawns is impractical without running the solver.
func TestPhase2MoveGenerationOnLadderBoard(t *testing.T) {
	var placements []placement
	for x := 0; x < 8; x++ {
		lower, upper := Black, White
		if x%2 == 1 {
			lower, upper = White, Black
		}
		placements = append(placements, placement{hexgrid.HexPosition{X: int8(x), Y: 0}, lower})
		placements = append(placements, placement{hexgrid.HexPosition{X: int8(x), Y: 1}, upper})
	}
	b, err := buildFromPlacements(placements)
	if err != nil {
		t.Fatalf("buildFromPlacements: %v", err)
	}
	if b.IsTerminal() {
		t.Fatal("alternating-color ladder should not contain a four-in-a-row")
	}
	if b.InPhase1() {
		t.Fatal("16-pawn board should be in phase 2")
	}

	moves := b.EachMove()
	if len(moves) == 0 {
		t.Fatal("expected at least one phase 2 move on the ladder board")
	}
	for _, m := range moves {
		if m.Kind != MoveShift {
			t.Errorf("move %+v has Kind %v, want MoveShift", m, m.Kind)
		}
		if _, err := b.ApplyMove(m); err != nil {
			t.Errorf("ApplyMove(%+v) rejected a move EachMove generated: %v", m, err)
		}
	}
}
