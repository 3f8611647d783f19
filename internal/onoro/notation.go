package onoro

import (
	"fmt"
	"strings"

	"github.com/onoro-dev/onoro-solver/internal/hexgrid"
)

// String renders b in the board-string notation: whitespace-separated
// tile characters per row, row-major top to bottom, each row indented by
// spaces equal to its descent index to show the shear of the axial
// grid; '.' empty, 'B' black, 'W' white.
func (b *Board) String() string {
	if b.placed == 0 {
		return ""
	}
	minX, maxX, minY, maxY := b.boundingBox()

	var sb strings.Builder
	for y := maxY; y >= minY; y-- {
		sb.WriteString(strings.Repeat(" ", int(maxY-y)))
		for x := minX; x <= maxX; x++ {
			if x > minX {
				sb.WriteByte(' ')
			}
			switch b.GetTile(hexgrid.HexPosition{X: int8(x), Y: int8(y)}) {
			case TileBlack:
				sb.WriteByte('B')
			case TileWhite:
				sb.WriteByte('W')
			default:
				sb.WriteByte('.')
			}
		}
		if y != minY {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (b *Board) boundingBox() (minX, maxX, minY, maxY int32) {
	minX, minY = 15, 15
	maxX, maxY = 0, 0
	for i := 0; i < int(b.placed); i++ {
		x, y := b.pawns[i].Unpack()
		minX, maxX = int32(minInt(int(minX), x)), int32(maxInt(int(maxX), x))
		minY, maxY = int32(minInt(int(minY), y)), int32(maxInt(int(maxY), y))
	}
	return
}

type placement struct {
	pos   hexgrid.HexPosition
	color Color
}

// Parse reads board-string notation back into a Board. Rows may be
// separated by newlines (the canonical form) or by '/' (a convenience
// accepted for single-line inputs, as used in spec examples). Column
// index within a row (after stripping leading/trailing whitespace and
// splitting on whitespace) is the x coordinate; rows run top to bottom
// in decreasing y (row index r is y = -r). A tile's neighbors in the row
// below are then the same column (0,-1) and the previous column (-1,-1),
// matching the lattice's neighbor offsets, so token positions need no
// further shear correction; the leading-space indentation is a purely
// cosmetic readability aid for String, not required for parsing.
func Parse(s string) (*Board, error) {
	lines := strings.Split(strings.ReplaceAll(s, "/", "\n"), "\n")

	var placements []placement
	for y, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for x, tok := range strings.Fields(line) {
			switch tok {
			case ".":
			case "B":
				placements = append(placements, placement{hexgrid.HexPosition{X: int8(x), Y: int8(-y)}, Black})
			case "W":
				placements = append(placements, placement{hexgrid.HexPosition{X: int8(x), Y: int8(-y)}, White})
			default:
				return nil, fmt.Errorf("%w: unrecognized tile %q", ErrInvalidBoardString, tok)
			}
		}
	}
	return buildFromPlacements(placements)
}

func buildFromPlacements(placements []placement) (*Board, error) {
	n := len(placements)
	if n == 0 {
		return nil, fmt.Errorf("%w: board has no pawns", ErrInvalidBoardString)
	}
	if n > MaxPawns {
		return nil, fmt.Errorf("%w: too many pawns (%d)", ErrInvalidBoardString, n)
	}

	var blackCount, whiteCount int
	positions := make([]hexgrid.HexPosition, n)
	for i, p := range placements {
		positions[i] = p.pos
		if p.color == Black {
			blackCount++
		} else {
			whiteCount++
		}
	}
	if !(blackCount == whiteCount || blackCount == whiteCount+1) {
		return nil, fmt.Errorf("%w: unbalanced colors (black=%d white=%d)", ErrInvalidBoardString, blackCount, whiteCount)
	}

	if n == 2 {
		if !isNeighbor(positions[0], positions[1]) {
			return nil, fmt.Errorf("%w: the two pawns must be adjacent", ErrInvalidBoardString)
		}
	} else if n >= 3 && !connectedAndNoLonely(positions) {
		return nil, fmt.Errorf("%w: pawns must be connected with every pawn having at least two neighbors", ErrInvalidBoardString)
	}

	blacks := make([]placement, 0, blackCount)
	whites := make([]placement, 0, whiteCount)
	for _, p := range placements {
		if p.color == Black {
			blacks = append(blacks, p)
		} else {
			whites = append(whites, p)
		}
	}

	// Shift into the 1..14 interior so the board satisfies the same
	// off-border invariant PlacePawn/MovePawn maintain via recenter,
	// regardless of what coordinates the input notation happened to use.
	minX, maxX, minY, maxY := positions[0].X, positions[0].X, positions[0].Y, positions[0].Y
	for _, p := range positions {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	if int(maxX-minX) > 13 || int(maxY-minY) > 13 {
		return nil, fmt.Errorf("%w: pawn spread exceeds the board", ErrInvalidBoardString)
	}
	shift := hexgrid.HexOffset{Dx: 1 - minX, Dy: 1 - minY}

	b := &Board{}
	bi, wi := 0, 0
	for slot := 0; slot < n; slot++ {
		var p placement
		if slot%2 == 0 {
			p = blacks[bi]
			bi++
		} else {
			p = whites[wi]
			wi++
		}
		pos := p.pos.Add(shift)
		b.pawns[slot] = hexgrid.Pack(pos)
		b.sumX += int32(pos.X)
		b.sumY += int32(pos.Y)
	}
	b.placed = uint8(n)
	if blackCount == whiteCount {
		b.toMove = Black
	} else {
		b.toMove = White
	}
	if color, won := b.detectWinFull(); won {
		b.finished = true
		b.winner = color
	}
	return b, nil
}
