// Package hexgrid implements axial coordinates over the triangular lattice
// and the dihedral symmetry groups that act on them.
package hexgrid

import "fmt"

// HexPosition is an absolute axial coordinate (x, y) on the triangular
// lattice. Neighbors differ by one of the six NeighborOffsets.
type HexPosition struct {
	X, Y int8
}

// HexOffset is a relative axial displacement between two HexPositions.
type HexOffset struct {
	Dx, Dy int8
}

// NeighborOffsets are the six unit steps on the triangular lattice.
var NeighborOffsets = [6]HexOffset{
	{Dx: 1, Dy: 0},
	{Dx: -1, Dy: 0},
	{Dx: 0, Dy: 1},
	{Dx: 0, Dy: -1},
	{Dx: 1, Dy: 1},
	{Dx: -1, Dy: -1},
}

// Add returns the position obtained by applying offset o to p.
func (p HexPosition) Add(o HexOffset) HexPosition {
	return HexPosition{X: p.X + o.Dx, Y: p.Y + o.Dy}
}

// Sub returns the offset from q to p (p - q).
func (p HexPosition) Sub(q HexPosition) HexOffset {
	return HexOffset{Dx: p.X - q.X, Dy: p.Y - q.Y}
}

func (p HexPosition) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add composes two offsets.
func (o HexOffset) Add(o2 HexOffset) HexOffset {
	return HexOffset{Dx: o.Dx + o2.Dx, Dy: o.Dy + o2.Dy}
}

// Neg returns the inverse offset.
func (o HexOffset) Neg() HexOffset {
	return HexOffset{Dx: -o.Dx, Dy: -o.Dy}
}

func (o HexOffset) String() string {
	return fmt.Sprintf("<%d,%d>", o.Dx, o.Dy)
}

// Neighbors returns the six positions adjacent to p.
func (p HexPosition) Neighbors() [6]HexPosition {
	var out [6]HexPosition
	for i, d := range NeighborOffsets {
		out[i] = p.Add(d)
	}
	return out
}

// Tile packs a lattice position into a single byte: x and y each take
// 4 bits, x,y in 0..15. The all-zero value (Tile(0), i.e. (0,0)) is
// reserved to mean "no pawn" -- board.go keeps all live pawns within
// 1..=14 so the origin is never a legal occupied tile.
type Tile uint8

// NoTile is the reserved empty-slot marker.
const NoTile Tile = 0

// PackTile encodes (x, y), each expected in 0..15, into a Tile.
func PackTile(x, y int) Tile {
	return Tile(uint8(x&0xF)<<4 | uint8(y&0xF))
}

// Pack is PackTile taking a HexPosition directly.
func Pack(p HexPosition) Tile {
	return PackTile(int(p.X), int(p.Y))
}

// Unpack decodes a Tile back into its (x, y) components.
func (t Tile) Unpack() (x, y int) {
	return int(t >> 4), int(t & 0xF)
}

// Position converts a packed Tile back into a HexPosition.
func (t Tile) Position() HexPosition {
	x, y := t.Unpack()
	return HexPosition{X: int8(x), Y: int8(y)}
}
