package onoro

import (
	"testing"

	"github.com/onoro-dev/onoro-solver/internal/hexgrid"
)

func ladderSixteen(t *testing.T) *Board {
	t.Helper()
	var placements []placement
	for x := 0; x < 8; x++ {
		placements = append(placements, placement{pos: hexgrid.HexPosition{X: int8(x), Y: 0}, color: Black})
		placements = append(placements, placement{pos: hexgrid.HexPosition{X: int8(x), Y: 1}, color: White})
	}
	b, err := buildFromPlacements(placements)
	if err != nil {
		t.Fatalf("buildFromPlacements: %v", err)
	}
	return b
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	b := ladderSixteen(t)
	word, err := Compress(b)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	b2, err := Decompress(word)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if b2.PawnsInPlay() != MaxPawns {
		t.Fatalf("decompressed PawnsInPlay() = %d, want %d", b2.PawnsInPlay(), MaxPawns)
	}
	if !Canonicalize(b).Equal(Canonicalize(b2)) {
		t.Error("Compress/Decompress round trip changed the abstract position")
	}
}

func TestCompressRejectsIncompleteBoard(t *testing.T) {
	b, err := Parse(". W B\nB . W\nW B .")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := Compress(b); err == nil {
		t.Error("Compress accepted a board with fewer than MaxPawns pawns")
	}
}

func TestDecompressRejectsDegenerateWord(t *testing.T) {
	if _, err := Decompress(0); err == nil {
		t.Error("Decompress accepted an all-zero word")
	}
}
