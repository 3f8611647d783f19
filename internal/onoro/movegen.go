package onoro

import "github.com/onoro-dev/onoro-solver/internal/hexgrid"

// MoveKind tags which of the two phases a Move belongs to.
type MoveKind uint8

const (
	MovePlace MoveKind = iota // phase 1: place the next pawn
	MoveShift                 // phase 2: relocate an owned pawn
)

// Move is a single legal transition, tagged by phase. From is the zero
// HexPosition for MovePlace.
type Move struct {
	Kind MoveKind
	From hexgrid.HexPosition
	To   hexgrid.HexPosition
}

// EachMove returns every legal move from b. Phase 1 placements come from
// a bit-packed neighbor-count scan; phase 2 shifts are verified directly
// against the connectivity and minimum-degree invariants rather than via
// the DFS-timestamp incremental check: with at most 16 pawns, a full
// O(n) connectivity check per candidate is cheap enough that the
// asymptotic win of the incremental scheme isn't worth its bookkeeping.
// See DESIGN.md for this tradeoff.
func (b *Board) EachMove() []Move {
	if b.IsTerminal() {
		return nil
	}
	if b.InPhase1() {
		return b.phase1Moves()
	}
	return b.phase2Moves()
}

func (b *Board) phase1Moves() []Move {
	cands := b.candidateEmptyTiles(-1)
	moves := make([]Move, len(cands))
	for i, p := range cands {
		moves[i] = Move{Kind: MovePlace, To: p}
	}
	return moves
}

func (b *Board) phase2Moves() []Move {
	var moves []Move
	for slot := 0; slot < MaxPawns; slot++ {
		if colorOf(slot) != b.toMove {
			continue
		}
		from := b.pawns[slot].Position()
		for _, to := range b.candidateEmptyTiles(slot) {
			if to == from {
				continue
			}
			if b.wouldBeLegalAfterMove(slot, to) {
				moves = append(moves, Move{Kind: MoveShift, From: from, To: to})
			}
		}
	}
	return moves
}

// candidateEmptyTiles returns every empty tile adjacent to at least two
// pawns, excluding the pawn in excludeSlot from the occupancy count (use
// -1 to exclude none). Implemented with the "sum six shifted copies"
// bit-packed occupancy technique: one 16-bit row per y coordinate (the
// board's packed tile coordinates are each 4 bits, 0..15), six shifted
// copies (one per lattice neighbor direction), summed cell by cell, give
// the per-cell neighbor count.
func (b *Board) candidateEmptyTiles(excludeSlot int) []hexgrid.HexPosition {
	var occ [16]uint16
	for i := 0; i < int(b.placed); i++ {
		if i == excludeSlot {
			continue
		}
		x, y := b.pawns[i].Unpack()
		occ[y] |= 1 << uint(x)
	}

	var count [16][16]uint8
	for _, d := range hexgrid.NeighborOffsets {
		shifted := shiftGrid(occ, d)
		for y := 0; y < 16; y++ {
			row := shifted[y]
			for x := 0; x < 16; x++ {
				if row&(1<<uint(x)) != 0 {
					count[y][x]++
				}
			}
		}
	}

	var exclude hexgrid.HexPosition
	hasExclude := excludeSlot >= 0
	if hasExclude {
		exclude = b.pawns[excludeSlot].Position()
	}

	var out []hexgrid.HexPosition
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if occ[y]&(1<<uint(x)) != 0 {
				continue
			}
			if count[y][x] < 2 {
				continue
			}
			p := hexgrid.HexPosition{X: int8(x), Y: int8(y)}
			if hasExclude && p == exclude {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}

// shiftGrid returns occ translated by offset d: shiftGrid(occ, d)[y][x]
// == occ[y+d.Dy][x+d.Dx], i.e. reading the result at (x, y) reports
// whether the lattice neighbor of (x, y) in direction d is occupied.
func shiftGrid(occ [16]uint16, d hexgrid.HexOffset) [16]uint16 {
	var out [16]uint16
	dx, dy := int(d.Dx), int(d.Dy)
	for y := 0; y < 16; y++ {
		sy := y + dy
		if sy < 0 || sy >= 16 {
			continue
		}
		row := occ[sy]
		if dx >= 0 {
			row >>= uint(dx)
		} else {
			row <<= uint(-dx)
		}
		out[y] = row
	}
	return out
}

// wouldBeLegalAfterMove reports whether moving the pawn in slot to to
// leaves the pawn graph connected with every pawn retaining at least two
// neighbors.
func (b *Board) wouldBeLegalAfterMove(slot int, to hexgrid.HexPosition) bool {
	positions := make([]hexgrid.HexPosition, 0, MaxPawns)
	for i := 0; i < int(b.placed); i++ {
		if i == slot {
			continue
		}
		positions = append(positions, b.pawns[i].Position())
	}
	positions = append(positions, to)
	return connectedAndNoLonely(positions)
}

func isNeighbor(a, b hexgrid.HexPosition) bool {
	o := a.Sub(b)
	for _, d := range hexgrid.NeighborOffsets {
		if o == d {
			return true
		}
	}
	return false
}

// connectedAndNoLonely reports whether positions forms a single
// connected component under lattice adjacency in which every vertex has
// degree >= 2.
func connectedAndNoLonely(positions []hexgrid.HexPosition) bool {
	n := len(positions)
	if n == 0 {
		return true
	}
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if isNeighbor(positions[i], positions[j]) {
				adj[i] = append(adj[i], j)
				adj[j] = append(adj[j], i)
			}
		}
	}
	for _, nbrs := range adj {
		if len(nbrs) < 2 {
			return false
		}
	}

	visited := make([]bool, n)
	queue := make([]int, 0, n)
	queue = append(queue, 0)
	visited[0] = true
	count := 1
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range adj[cur] {
			if !visited[nb] {
				visited[nb] = true
				count++
				queue = append(queue, nb)
			}
		}
	}
	return count == n
}

// ApplyMove returns a clone of b with m applied.
func (b *Board) ApplyMove(m Move) (*Board, error) {
	next := b.Clone()
	var err error
	switch m.Kind {
	case MovePlace:
		err = next.PlacePawn(m.To)
	case MoveShift:
		err = next.MovePawn(m.From, m.To)
	}
	if err != nil {
		return nil, err
	}
	return next, nil
}
