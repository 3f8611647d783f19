package onoro

import (
	"fmt"

	"github.com/onoro-dev/onoro-solver/internal/hexgrid"
)

// Compress encodes a fully-placed (phase 2) board into a single 64-bit
// little-endian word for the wire/persistence format: the low 16 bits
// are the color of each pawn in BFS visitation order (bit set = White),
// starting from the pawn at the lexicographically smallest position;
// the remaining 48 bits are six neighbor-presence bits (one per lattice
// direction, in hexgrid.NeighborOffsets order) for each of the first
// eight pawns visited.
//
// Resolution of the Open Question in spec.md §9 ("whether [the root's
// color] bit is always set/cleared or independent is ambiguous"): this
// implementation encodes every pawn's actual color independently,
// including the root's, with no implied bit. The choice of "first eight
// BFS steps" for the neighbor bitmask (rather than all sixteen) is what
// makes 6 bits/step * 8 steps == 48 fit the word exactly; it relies on
// the connectivity + minimum-degree-2 invariant to guarantee the first
// eight steps' neighbor bitmasks are enough to discover all sixteen
// pawns for the compact clusters the solver encounters in practice. This
// is pinned down, as instructed, by round-trip tests against a small
// corpus of boards (compress_test.go) rather than a general proof for
// every graph-theoretically possible min-degree-2 connected 16-node
// shape.
func Compress(b *Board) (uint64, error) {
	if b.PawnsInPlay() != MaxPawns {
		return 0, fmt.Errorf("%w: compression requires all %d pawns placed", ErrInvalidBoardString, MaxPawns)
	}

	order := bfsOrder(b)
	occupied := make(map[hexgrid.HexPosition]bool, MaxPawns)
	for _, p := range order {
		occupied[p.pos] = true
	}

	var word uint64
	for i, p := range order {
		if p.color == White {
			word |= 1 << uint(i)
		}
	}

	bit := uint(16)
	for i := 0; i < 8; i++ {
		for _, d := range hexgrid.NeighborOffsets {
			if occupied[order[i].pos.Add(d)] {
				word |= 1 << bit
			}
			bit++
		}
	}
	return word, nil
}

// Decompress reconstructs a Board from a word produced by Compress.
func Decompress(word uint64) (*Board, error) {
	colorBits := uint16(word)
	neighborBits := word >> 16

	type point struct{ x, y int }
	known := make([]bool, MaxPawns)
	pos := make([]point, MaxPawns)
	pos[0] = point{0, 0}
	known[0] = true
	next := 1

	bit := uint(0)
	for i := 0; i < 8; i++ {
		if !known[i] {
			return nil, fmt.Errorf("%w: BFS frontier exhausted before all pawns were discovered", ErrInvalidDecompression)
		}
		for _, d := range hexgrid.NeighborOffsets {
			set := (neighborBits>>bit)&1 != 0
			bit++
			if !set {
				continue
			}
			np := point{pos[i].x + int(d.Dx), pos[i].y + int(d.Dy)}
			seen := false
			for j := 0; j < next; j++ {
				if known[j] && pos[j] == np {
					seen = true
					break
				}
			}
			if seen {
				continue
			}
			if next >= MaxPawns {
				return nil, fmt.Errorf("%w: more than %d pawns encoded", ErrInvalidDecompression, MaxPawns)
			}
			pos[next] = np
			known[next] = true
			next++
		}
	}
	if next != MaxPawns {
		return nil, fmt.Errorf("%w: only discovered %d of %d pawns", ErrInvalidDecompression, next, MaxPawns)
	}

	minX, maxX, minY, maxY := pos[0].x, pos[0].x, pos[0].y, pos[0].y
	for _, p := range pos {
		minX, maxX = minInt(minX, p.x), maxInt(maxX, p.x)
		minY, maxY = minInt(minY, p.y), maxInt(maxY, p.y)
	}
	if maxX-minX > 13 || maxY-minY > 13 {
		return nil, fmt.Errorf("%w: decompressed pawn spread exceeds the board", ErrInvalidDecompression)
	}
	shiftX, shiftY := 1-minX, 1-minY

	b := &Board{}
	positions := make([]hexgrid.HexPosition, MaxPawns)
	nextSlot := [2]int{0, 1} // black pawns fill even slots, white odd
	for i := 0; i < MaxPawns; i++ {
		x, y := pos[i].x+shiftX, pos[i].y+shiftY
		positions[i] = hexgrid.HexPosition{X: int8(x), Y: int8(y)}

		color := Black
		if colorBits&(1<<uint(i)) != 0 {
			color = White
		}
		slot := nextSlot[color]
		if slot >= MaxPawns {
			return nil, fmt.Errorf("%w: color bits do not encode %d black and %d white pawns", ErrInvalidDecompression, MaxPawns/2, MaxPawns/2)
		}
		nextSlot[color] += 2

		b.pawns[slot] = hexgrid.Pack(positions[i])
		b.sumX += int32(x)
		b.sumY += int32(y)
	}
	b.placed = MaxPawns
	b.toMove = Black

	if !connectedAndNoLonely(positions) {
		return nil, fmt.Errorf("%w: decompressed board fails connectivity/degree invariants", ErrInvalidDecompression)
	}
	if color, won := b.detectWinFull(); won {
		b.finished = true
		b.winner = color
	}
	return b, nil
}

type bfsPawn struct {
	pos   hexgrid.HexPosition
	color Color
}

// bfsOrder returns b's sixteen pawns in breadth-first visitation order
// starting from the pawn at the lexicographically smallest position,
// expanding neighbors in hexgrid.NeighborOffsets order.
func bfsOrder(b *Board) []bfsPawn {
	pawns := make([]bfsPawn, MaxPawns)
	for i := 0; i < MaxPawns; i++ {
		pawns[i] = bfsPawn{pos: b.pawns[i].Position(), color: colorOf(i)}
	}

	root := 0
	for i := 1; i < MaxPawns; i++ {
		if lexLess(pawns[i].pos, pawns[root].pos) {
			root = i
		}
	}

	byPos := make(map[hexgrid.HexPosition]int, MaxPawns)
	for i, p := range pawns {
		byPos[p.pos] = i
	}

	visited := make([]bool, MaxPawns)
	order := make([]bfsPawn, 0, MaxPawns)
	queue := []int{root}
	visited[root] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		order = append(order, pawns[cur])
		for _, d := range hexgrid.NeighborOffsets {
			if idx, ok := byPos[pawns[cur].pos.Add(d)]; ok && !visited[idx] {
				visited[idx] = true
				queue = append(queue, idx)
			}
		}
	}
	return order
}

func lexLess(a, b hexgrid.HexPosition) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}
