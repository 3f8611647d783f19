package onoro

import (
	"sort"

	"github.com/onoro-dev/onoro-solver/internal/hexgrid"
)

// pawnOffset is one pawn's position relative to a board's canonicalized
// origin, in its final canonical orientation.
type pawnOffset struct {
	offset hexgrid.HexOffset
	color  Color
}

// CanonicalView is the symmetry-reduced representative of a board: two
// boards describe the same abstract position iff their CanonicalViews
// are Equal.
type CanonicalView struct {
	Class hexgrid.SymmetryClass
	Op    hexgrid.GroupElem
	Hash  uint64

	pawns []pawnOffset // sorted by (Dx, Dy, color) for structural comparison
}

// comOffsetForOp maps a D6 element to the sub-tile offset used when
// computing the canonicalization origin, ported from
// board_symm_state_op_to_com_offset in the reference canonicalizer: it
// mirrors the diagram of twelve unit-square regions, one per D6 element,
// each carrying the offset from the unit square's corner to the center
// of the hex tile that region belongs to.
func comOffsetForOp(op hexgrid.GroupElem) hexgrid.HexOffset {
	switch {
	case !op.Reflect && op.Rot == 0:
		return hexgrid.HexOffset{Dx: 0, Dy: 0}
	case !op.Reflect && op.Rot == 1:
		return hexgrid.HexOffset{Dx: 0, Dy: 1}
	case !op.Reflect && op.Rot == 2:
		return hexgrid.HexOffset{Dx: 1, Dy: 1}
	case !op.Reflect && op.Rot == 3:
		return hexgrid.HexOffset{Dx: 1, Dy: 1}
	case !op.Reflect && op.Rot == 4:
		return hexgrid.HexOffset{Dx: 1, Dy: 0}
	case !op.Reflect && op.Rot == 5:
		return hexgrid.HexOffset{Dx: 0, Dy: 0}
	case op.Reflect && op.Rot == 0:
		return hexgrid.HexOffset{Dx: 0, Dy: 1}
	case op.Reflect && op.Rot == 1:
		return hexgrid.HexOffset{Dx: 0, Dy: 0}
	case op.Reflect && op.Rot == 2:
		return hexgrid.HexOffset{Dx: 0, Dy: 0}
	case op.Reflect && op.Rot == 3:
		return hexgrid.HexOffset{Dx: 1, Dy: 0}
	case op.Reflect && op.Rot == 4:
		return hexgrid.HexOffset{Dx: 1, Dy: 1}
	default: // Reflect && Rot == 5
		return hexgrid.HexOffset{Dx: 1, Dy: 1}
	}
}

// symmStateOp returns the D6 element that maps the folded center-of-mass
// point (x, y), scaled by n_pawns, into the canonical fundamental
// triangle. Ported exactly from symm_state_op in the reference
// canonicalizer.
func symmStateOp(x, y, n int) hexgrid.GroupElem {
	x2 := maxInt(x, y)
	y2 := minInt(x, y)
	x3 := minInt(x2, n-y2)
	y3 := minInt(y2, n-x2)

	c1 := y < x
	c2 := x2+y2 < n
	c3a := y3+n <= 2*x3
	c3b := 2*y3 <= x3

	rot := func(k uint8) hexgrid.GroupElem { return hexgrid.GroupElem{Rot: k, Reflect: false} }
	rfl := func(k uint8) hexgrid.GroupElem { return hexgrid.GroupElem{Rot: k, Reflect: true} }

	if c1 {
		if c2 {
			if c3a {
				return rfl(3)
			} else if c3b {
				return rot(0)
			}
			return rfl(1)
		}
		if c3a {
			return rot(4)
		} else if c3b {
			return rfl(5)
		}
		return rot(2)
	}
	if c2 {
		if c3a {
			return rot(1)
		} else if c3b {
			return rfl(2)
		}
		return rot(5)
	}
	if c3a {
		return rfl(0)
	} else if c3b {
		return rot(3)
	}
	return rfl(4)
}

// symmStateClass returns the symmetry class of the folded center-of-mass
// point, ported exactly from symm_state_class.
func symmStateClass(x, y, n int) hexgrid.SymmetryClass {
	x2 := maxInt(x, y)
	y2 := minInt(x, y)
	x3 := minInt(x2, n-y2)
	y3 := minInt(y2, n-x2)

	switch {
	case x == 0 && y == 0:
		return hexgrid.ClassC
	case 3*x2 == 2*n && 3*y2 == n:
		return hexgrid.ClassV
	case 2*x2 == n && (y2 == 0 || 2*y2 == n):
		return hexgrid.ClassE
	case 2*y3 == x3 || (x2+y2 == n && 3*y2 < n):
		return hexgrid.ClassCV
	case x2 == y2 || y2 == 0:
		return hexgrid.ClassCE
	case y3+n == 2*x3 || (x2+y2 == n && 3*y2 > n):
		return hexgrid.ClassEV
	default:
		return hexgrid.ClassTrivial
	}
}

// boardSymmState computes the primary normalizing operator, the
// symmetry class, and the center-offset for b's current center of mass.
func boardSymmState(b *Board) (op hexgrid.GroupElem, class hexgrid.SymmetryClass, centerOffset hexgrid.HexOffset) {
	n := int32(b.PawnsInPlay())
	x := int(modPositive32(b.sumX, n))
	y := int(modPositive32(b.sumY, n))
	op = symmStateOp(x, y, int(n))
	class = symmStateClass(x, y, int(n))
	centerOffset = comOffsetForOp(op)
	return
}

// originTile is the rotation-invariant tile used as the coordinate
// origin for canonicalization: the floor of the center of mass, plus
// the class-specific sub-tile offset.
func originTile(b *Board, centerOffset hexgrid.HexOffset) hexgrid.HexPosition {
	n := int32(b.PawnsInPlay())
	fx := floorDiv32(b.sumX, n)
	fy := floorDiv32(b.sumY, n)
	return hexgrid.HexPosition{X: int8(fx), Y: int8(fy)}.Add(centerOffset)
}

// Canonicalize computes b's CanonicalView.
//
// The reference design precomputes, per symmetry class, a single hash
// and a bit-permutation table so that trying every residual-group
// element is an O(1) bit-permutation rather than a recomputation. This
// implementation instead directly applies each candidate group element
// to every pawn offset before the Zobrist lookup (see zobrist.go) and
// keeps the element achieving the lexicographically smallest hash —
// mathematically the same search over the same group, just without the
// bit-permutation shortcut. With at most 16 pawns and a residual group
// of order <= 12, this is at most 192 table lookups per canonicalize
// call, negligible next to a single tree-search node's cost.
//
// Equality between two CanonicalViews is likewise a direct structural
// comparison of their normalized (offset, color) pawn lists rather than
// the reference design's "retry with another residual-group element on
// hash collision": since both views already store their own minimal
// (lexicographically smallest) orientation, two boards are the same
// abstract position iff their classes, hashes, and full normalized pawn
// lists agree. This sidesteps the collision-retry dance entirely while
// still resolving hash collisions correctly, at the cost of an O(n log
// n) comparison (sorting is done once, at construction) instead of an
// O(1) hash-only check in the common case.
func Canonicalize(b *Board) CanonicalView {
	op0, class, centerOffset := boardSymmState(b)
	origin := originTile(b, centerOffset)

	n := b.PawnsInPlay()
	baseOffset := make([]hexgrid.HexOffset, n)
	colors := make([]Color, n)
	for i := 0; i < n; i++ {
		baseOffset[i] = op0.Apply(b.pawns[i].Position().Sub(origin))
		colors[i] = colorOf(i)
	}

	group := hexgrid.Group(class)
	var bestHash uint64
	var bestOp hexgrid.GroupElem
	for gi, g := range group {
		h := uint64(0)
		for i := 0; i < n; i++ {
			h ^= tileHash(colors[i], g.Apply(baseOffset[i]))
		}
		if gi == 0 || h < bestHash {
			bestHash = h
			bestOp = g
		}
	}

	pawns := make([]pawnOffset, n)
	for i := 0; i < n; i++ {
		pawns[i] = pawnOffset{offset: bestOp.Apply(baseOffset[i]), color: colors[i]}
	}
	sort.Slice(pawns, func(i, j int) bool {
		if pawns[i].offset.Dx != pawns[j].offset.Dx {
			return pawns[i].offset.Dx < pawns[j].offset.Dx
		}
		if pawns[i].offset.Dy != pawns[j].offset.Dy {
			return pawns[i].offset.Dy < pawns[j].offset.Dy
		}
		return pawns[i].color < pawns[j].color
	})

	return CanonicalView{
		Class: class,
		Op:    op0.Compose(bestOp),
		Hash:  bestHash,
		pawns: pawns,
	}
}

// Equal reports whether v and o represent the same abstract position.
func (v CanonicalView) Equal(o CanonicalView) bool {
	if v.Hash != o.Hash || v.Class != o.Class || len(v.pawns) != len(o.pawns) {
		return false
	}
	for i := range v.pawns {
		if v.pawns[i] != o.pawns[i] {
			return false
		}
	}
	return true
}
