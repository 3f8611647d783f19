package onoro

import (
	"testing"

	"github.com/onoro-dev/onoro-solver/internal/hexgrid"
)

func TestSymmStateClassAtCenter(t *testing.T) {
	for n := 1; n <= 6; n++ {
		if got := symmStateClass(0, 0, n); got != hexgrid.ClassC {
			t.Errorf("symmStateClass(0, 0, %d) = %v, want ClassC", n, got)
		}
	}
}

// rotatePlacements applies g to every placement's position about the
// origin, preserving each pawn's color. Since Canonicalize is translation
// invariant (it always re-derives its own origin from the center of
// mass), applying a rigid symmetry to an already-connected pawn set and
// rebuilding a board from it must canonicalize identically.
func rotatePlacements(in []placement, g hexgrid.GroupElem) []placement {
	out := make([]placement, len(in))
	for i, p := range in {
		o := hexgrid.HexOffset{Dx: p.pos.X, Dy: p.pos.Y}
		o = g.Apply(o)
		out[i] = placement{pos: hexgrid.HexPosition{X: o.Dx, Y: o.Dy}, color: p.color}
	}
	return out
}

func sixPawnHexPlacements() []placement {
	return []placement{
		{hexgrid.HexPosition{X: 1, Y: 0}, White},
		{hexgrid.HexPosition{X: 2, Y: 0}, Black},
		{hexgrid.HexPosition{X: 0, Y: -1}, Black},
		{hexgrid.HexPosition{X: 2, Y: -1}, White},
		{hexgrid.HexPosition{X: 0, Y: -2}, White},
		{hexgrid.HexPosition{X: 1, Y: -2}, Black},
	}
}

func TestCanonicalizeIsRotationInvariant(t *testing.T) {
	base := sixPawnHexPlacements()
	b1, err := buildFromPlacements(base)
	if err != nil {
		t.Fatalf("buildFromPlacements(base): %v", err)
	}
	v1 := Canonicalize(b1)

	for _, g := range hexgrid.AllD6() {
		rotated := rotatePlacements(base, g)
		b2, err := buildFromPlacements(rotated)
		if err != nil {
			t.Fatalf("buildFromPlacements(rotated by %+v): %v", g, err)
		}
		v2 := Canonicalize(b2)
		if !v1.Equal(v2) {
			t.Errorf("Canonicalize not invariant under %+v: %v != %v", g, v1, v2)
		}
	}
}

func TestCanonicalizeDistinguishesDifferentPositions(t *testing.T) {
	hex, err := buildFromPlacements(sixPawnHexPlacements())
	if err != nil {
		t.Fatalf("buildFromPlacements: %v", err)
	}

	// A straight four-in-a-row-supporting ladder of the same pawn count
	// has a visibly different shape (and color arrangement) from the
	// hex ring, so the two must not canonicalize equal.
	var ladder []placement
	for x := 0; x < 3; x++ {
		ladder = append(ladder, placement{hexgrid.HexPosition{X: int8(x), Y: 0}, Black})
		ladder = append(ladder, placement{hexgrid.HexPosition{X: int8(x), Y: 1}, White})
	}
	other, err := buildFromPlacements(ladder)
	if err != nil {
		t.Fatalf("buildFromPlacements(ladder): %v", err)
	}

	if Canonicalize(hex).Equal(Canonicalize(other)) {
		t.Error("two structurally different boards canonicalized equal")
	}
}

func TestCanonicalizeStableAcrossRepeatedCalls(t *testing.T) {
	b, err := Parse(". W B\nB . W\nW B .")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	v1 := Canonicalize(b)
	v2 := Canonicalize(b)
	if !v1.Equal(v2) {
		t.Error("Canonicalize is not deterministic across repeated calls on the same board")
	}
}
