package hexgrid

// GroupElem is one element of the dihedral group D6 acting on offsets
// about the origin tile, parameterized as the semidirect product
// Z6 rtimes Z2: apply the canonical reflection s0 first (if Reflect),
// then rotate by Rot sixty-degree steps. This is the standard
// dihedral-group parameterization and the twelve (Rot, Reflect) pairs
// are exactly the twelve elements of D6.
type GroupElem struct {
	Rot     uint8 // 0..5, number of 60-degree rotations
	Reflect bool
}

// Identity is the neutral element of D6.
var Identity = GroupElem{Rot: 0, Reflect: false}

// rot60 rotates an offset by 60 degrees about the origin: (x,y) ->
// (x-y,x). Applying it six times is the identity. Pure integer
// arithmetic, constant time.
func rot60(o HexOffset) HexOffset {
	return HexOffset{Dx: o.Dx - o.Dy, Dy: o.Dx}
}

// reflect0 is the canonical reflection s0: (x,y) -> (x-y,-y).
func reflect0(o HexOffset) HexOffset {
	return HexOffset{Dx: o.Dx - o.Dy, Dy: -o.Dy}
}

// Apply transforms an offset by the group element.
func (g GroupElem) Apply(o HexOffset) HexOffset {
	if g.Reflect {
		o = reflect0(o)
	}
	for i := uint8(0); i < g.Rot; i++ {
		o = rot60(o)
	}
	return o
}

// ApplyPosition transforms an absolute position about a center c.
func (g GroupElem) ApplyPosition(p, center HexPosition) HexPosition {
	return center.Add(g.Apply(p.Sub(center)))
}

// Compose returns the element equal to applying g first, then h
// (function composition h o g, i.e. (h.Compose(g))(x) == h(g(x))
// when called as g.Compose(h) below we define it so that
// g.Compose(h).Apply(o) == h.Apply(g.Apply(o))).
func (g GroupElem) Compose(h GroupElem) GroupElem {
	// Standard dihedral multiplication rule for elements represented
	// as r^k (Reflect=false) or r^k . s (Reflect=true):
	//   r^a       . r^b       = r^(a+b)
	//   r^a       . r^b.s     = r^(a+b).s
	//   r^a.s     . r^b       = r^(a-b).s
	//   r^a.s     . r^b.s     = r^(a-b)
	// Apply order here: result(x) = h(g(x)), i.e. result = h . g in
	// standard (right-to-left) composition notation, with g playing
	// the role of the "inner" (first-applied, i.e. rightmost) factor.
	a, b := h.Rot, g.Rot
	if !h.Reflect {
		return GroupElem{Rot: (a + b) % 6, Reflect: g.Reflect}
	}
	if !g.Reflect {
		return GroupElem{Rot: mod6(int(a) - int(b)), Reflect: true}
	}
	return GroupElem{Rot: mod6(int(a) - int(b)), Reflect: false}
}

func mod6(k int) uint8 {
	k %= 6
	if k < 0 {
		k += 6
	}
	return uint8(k)
}

// Inverse returns the inverse group element.
func (g GroupElem) Inverse() GroupElem {
	if !g.Reflect {
		return GroupElem{Rot: mod6(-int(g.Rot)), Reflect: false}
	}
	// Every r^k.s is an involution.
	return g
}

// AllD6 enumerates all twelve elements of D6.
func AllD6() []GroupElem {
	out := make([]GroupElem, 0, 12)
	for k := uint8(0); k < 6; k++ {
		out = append(out, GroupElem{Rot: k, Reflect: false})
		out = append(out, GroupElem{Rot: k, Reflect: true})
	}
	return out
}

// SymmetryClass classifies where a board's center of mass falls in the
// fundamental domain of the lattice, which determines the residual
// subgroup of D6 that is a symmetry of the board.
type SymmetryClass uint8

const (
	ClassTrivial SymmetryClass = iota // generic interior point: only identity
	ClassCV                           // boundary between C and V: order 2
	ClassCE                           // boundary between C and E: order 2
	ClassEV                           // boundary between E and V: order 2
	ClassE                            // edge midpoint: K4, order 4
	ClassV                            // vertex: D3, order 6
	ClassC                            // cell center: full D6, order 12
)

func (c SymmetryClass) String() string {
	switch c {
	case ClassC:
		return "C"
	case ClassV:
		return "V"
	case ClassE:
		return "E"
	case ClassCV:
		return "CV"
	case ClassCE:
		return "CE"
	case ClassEV:
		return "EV"
	default:
		return "Trivial"
	}
}

// d3 is the order-6 vertex stabilizer: rotations by multiples of 120
// degrees, plus the three reflections that fix the same vertex.
func d3() []GroupElem {
	return []GroupElem{
		{Rot: 0, Reflect: false}, {Rot: 2, Reflect: false}, {Rot: 4, Reflect: false},
		{Rot: 1, Reflect: true}, {Rot: 3, Reflect: true}, {Rot: 5, Reflect: true},
	}
}

// k4 is the order-4 edge-midpoint stabilizer (Klein four-group):
// identity, the 180-degree rotation, and the two reflections whose
// product is that rotation.
func k4() []GroupElem {
	return []GroupElem{
		{Rot: 0, Reflect: false}, {Rot: 3, Reflect: false},
		{Rot: 0, Reflect: true}, {Rot: 3, Reflect: true},
	}
}

// Group returns the residual symmetry subgroup fixing a board whose
// center of mass falls in the given symmetry class.
func Group(c SymmetryClass) []GroupElem {
	switch c {
	case ClassC:
		return AllD6()
	case ClassV:
		return d3()
	case ClassE:
		return k4()
	case ClassCV:
		// order-2 subgroup common to the C and V domains: identity
		// plus one of D3's three reflections.
		return []GroupElem{{Rot: 0, Reflect: false}, {Rot: 1, Reflect: true}}
	case ClassCE:
		// order-2 subgroup common to the C and E domains: identity
		// plus the 180-degree rotation from K4.
		return []GroupElem{{Rot: 0, Reflect: false}, {Rot: 3, Reflect: false}}
	case ClassEV:
		// order-2 subgroup common to E's K4 and V's D3: identity plus
		// the one reflection (Rot=3, Reflect=true) both contain.
		return []GroupElem{{Rot: 0, Reflect: false}, {Rot: 3, Reflect: true}}
	default:
		return []GroupElem{Identity}
	}
}
