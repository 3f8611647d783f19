// Package onoro implements the Onoro board: its state, legal-move
// generator, symmetry canonicalization, and external text/wire formats.
package onoro

import (
	"fmt"

	"github.com/onoro-dev/onoro-solver/internal/hexgrid"
)

// MaxPawns is the total number of pawns in play once both players have
// placed all of theirs (N=16, 8 per player).
const MaxPawns = 16

// Color is a pawn's owner / the player to move.
type Color uint8

const (
	Black Color = iota
	White
)

// Other returns the opposing color. Black moves first.
func (c Color) Other() Color {
	if c == Black {
		return White
	}
	return Black
}

func (c Color) String() string {
	if c == Black {
		return "B"
	}
	return "W"
}

// TileState is the result of querying a single board tile.
type TileState uint8

const (
	Empty TileState = iota
	TileBlack
	TileWhite
)

// colorOf returns the color of the pawn placed in slot i: pawns are
// placed strictly alternately starting with Black, so parity of the
// placement index determines color regardless of whose-turn state.
func colorOf(slot int) Color {
	if slot%2 == 0 {
		return Black
	}
	return White
}

// Board is a fixed-size Onoro position: up to MaxPawns pawns, a
// whose-turn flag, and the running sum of pawn coordinates used for
// O(1) center-of-mass lookups during canonicalization.
type Board struct {
	pawns  [MaxPawns]hexgrid.Tile
	toMove Color
	placed uint8 // pawns placed so far, 0..MaxPawns
	finished bool
	winner Color

	sumX, sumY int32
}

// NewBoard returns a minimal, non-standard two-pawn seed: one black and
// one white pawn on adjacent tiles near the center of the coordinate
// space, with Black to place the third pawn. It exists only to give
// this package's own unit tests a cheap connected starting point (a
// lone pawn, or an empty board, has no neighbors to satisfy phase 1's
// >=2-neighbor placement rule); it is not the game's standard opening
// position. Solver-facing code and scenario tests want DefaultStart.
func NewBoard() *Board {
	b := &Board{toMove: Black}
	b.pawns[0] = hexgrid.Pack(hexgrid.HexPosition{X: 7, Y: 7})
	b.pawns[1] = hexgrid.Pack(hexgrid.HexPosition{X: 8, Y: 7})
	b.sumX, b.sumY = 15, 14
	b.placed = 2
	return b
}

// DefaultStart returns the standard three-pawn opening position: Black
// places at the board's center, then White and Black each place one
// adjacent pawn, leaving White to move next. This is the canonical
// ". W / B B" position (three pawns, White to move, still in phase 1,
// three legal moves).
//
// Grounded on onoro.rs's default_start(): the same three placements
// (mid,mid), (mid+1,mid+1), (mid+1,mid) in the same order, with "mid"
// pinned to this package's fixed center (7,7) rather than computed
// from a board-width type parameter, since Board has none.
func DefaultStart() *Board {
	b := &Board{toMove: Black}
	for _, pos := range [3]hexgrid.HexPosition{
		{X: 7, Y: 7},
		{X: 8, Y: 8},
		{X: 8, Y: 7},
	} {
		if err := b.PlacePawn(pos); err != nil {
			panic(fmt.Sprintf("onoro: DefaultStart: %v", err))
		}
	}
	return b
}

// Clone returns an independent copy. Boards are small value-like
// structs (this is a straight struct copy, ~28 bytes), so cloning is
// cheap and done freely by the move generator and search.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// InPhase1 reports whether not all pawns have been placed yet.
func (b *Board) InPhase1() bool { return b.placed < MaxPawns }

// PawnsInPlay is the number of pawns placed so far.
func (b *Board) PawnsInPlay() int { return int(b.placed) }

// PlayerColor is the color to move.
func (b *Board) PlayerColor() Color { return b.toMove }

// Winner reports the winning color, if the game has finished.
func (b *Board) Winner() (Color, bool) { return b.winner, b.finished }

// IsTerminal reports whether the game is over (a win was detected; no
// moves are generated from a terminal board).
func (b *Board) IsTerminal() bool { return b.finished }

// GetTile returns the occupant of a lattice position.
func (b *Board) GetTile(pos hexgrid.HexPosition) TileState {
	for i := 0; i < int(b.placed); i++ {
		if b.pawns[i].Position() == pos {
			if colorOf(i) == Black {
				return TileBlack
			}
			return TileWhite
		}
	}
	return Empty
}

// sumOfMass returns the running sum of pawn coordinates.
func (b *Board) sumOfMass() (int32, int32) { return b.sumX, b.sumY }

// PlacePawn places the next pawn (phase 1) at pos, updates bookkeeping,
// recenters the board if the placement touched the outer border, checks
// for a win, and advances the turn.
func (b *Board) PlacePawn(pos hexgrid.HexPosition) error {
	if !b.InPhase1() {
		return fmt.Errorf("onoro: PlacePawn called after all pawns are placed")
	}
	slot := int(b.placed)
	color := colorOf(slot)
	assertInvariant(color == b.toMove, "placement color does not match player to move")

	b.pawns[slot] = hexgrid.Pack(pos)
	b.sumX += int32(pos.X)
	b.sumY += int32(pos.Y)
	b.placed++

	b.recenter()

	if b.hasFourInRowThrough(b.pawns[slot].Position(), color) {
		b.finished = true
		b.winner = color
	}
	b.toMove = b.toMove.Other()
	return nil
}

// MovePawn relocates the owned pawn at from to the empty tile to
// (phase 2), updates bookkeeping, recenters, checks for a win, and
// advances the turn. Callers (the move generator) are responsible for
// only presenting legal (from, to) pairs; this method does not
// re-validate connectivity.
func (b *Board) MovePawn(from, to hexgrid.HexPosition) error {
	if b.InPhase1() {
		return fmt.Errorf("onoro: MovePawn called before all pawns are placed")
	}
	slot := -1
	for i := 0; i < MaxPawns; i++ {
		if b.pawns[i].Position() == from {
			slot = i
			break
		}
	}
	if slot < 0 {
		return fmt.Errorf("onoro: MovePawn: no pawn at %v", from)
	}
	color := colorOf(slot)
	if color != b.toMove {
		return fmt.Errorf("onoro: MovePawn: pawn at %v does not belong to the player to move", from)
	}

	b.sumX += int32(to.X) - int32(from.X)
	b.sumY += int32(to.Y) - int32(from.Y)
	b.pawns[slot] = hexgrid.Pack(to)

	b.recenter()

	if b.hasFourInRowThrough(b.pawns[slot].Position(), color) {
		b.finished = true
		b.winner = color
	}
	b.toMove = b.toMove.Other()
	return nil
}

// recenter keeps every placed pawn within 1..14 (Tile packs each axis
// into 4 bits, 0..15; the all-zero Tile is reserved for "no pawn", and
// we keep a one-tile margin on both ends so a single placement or move
// never needs more than a one-step translation to stay off the border).
// If any placed pawn now sits on the outer ring, the whole board is
// translated by one unit away from that border.
func (b *Board) recenter() {
	var dx, dy int8
	for i := 0; i < int(b.placed); i++ {
		x, y := b.pawns[i].Unpack()
		if x == 0 {
			dx = 1
		} else if x == 15 {
			dx = -1
		}
		if y == 0 {
			dy = 1
		} else if y == 15 {
			dy = -1
		}
	}
	if dx == 0 && dy == 0 {
		return
	}
	for i := 0; i < int(b.placed); i++ {
		x, y := b.pawns[i].Unpack()
		b.pawns[i] = hexgrid.PackTile(x+int(dx), y+int(dy))
	}
	b.sumX += int32(dx) * int32(b.placed)
	b.sumY += int32(dy) * int32(b.placed)
}

// winDirections are the three undirected lattice axes a line of pawns
// can run along: constant-y, constant-x, and constant-(x-y).
var winDirections = [3]hexgrid.HexOffset{
	{Dx: 1, Dy: 0},
	{Dx: 0, Dy: 1},
	{Dx: 1, Dy: 1},
}

// hasFourInRowThrough reports whether four same-colored pawns lie in an
// unbroken line along any axis through pos. Used as the fast path right
// after a move or placement, since a win can only newly appear in a
// line through the tile that just changed.
func (b *Board) hasFourInRowThrough(pos hexgrid.HexPosition, c Color) bool {
	for _, d := range winDirections {
		count := 1 + b.runLength(pos, d, c) + b.runLength(pos, d.Neg(), c)
		if count >= 4 {
			return true
		}
	}
	return false
}

func (b *Board) runLength(pos hexgrid.HexPosition, step hexgrid.HexOffset, c Color) int {
	n := 0
	cur := pos.Add(step)
	for b.GetTile(cur) == tileStateOf(c) {
		n++
		cur = cur.Add(step)
	}
	return n
}

func tileStateOf(c Color) TileState {
	if c == Black {
		return TileBlack
	}
	return TileWhite
}

// detectWinFull scans every placed pawn for a four-in-a-row, used when
// reconstructing a board directly (notation parse, decompression)
// rather than incrementally via PlacePawn/MovePawn.
func (b *Board) detectWinFull() (Color, bool) {
	for i := 0; i < int(b.placed); i++ {
		c := colorOf(i)
		pos := b.pawns[i].Position()
		if b.hasFourInRowThrough(pos, c) {
			return c, true
		}
	}
	return Black, false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// floorDiv32 is integer division rounding toward negative infinity for
// either sign of a (Go's / truncates toward zero instead).
func floorDiv32(a, b int32) int32 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// modPositive32 is a%b folded into [0, b).
func modPositive32(a, b int32) int32 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
