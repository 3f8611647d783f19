package fixtures

import "fmt"

// GomokuSize and GomokuWinLength fix the board to a size small enough for
// the solver mechanics tests to exercise deep into the game tree: a full
// 15x15/five-in-a-row board's game tree is far larger than anything this
// fixture needs to prove, and spec.md §9 only calls for Gomoku as a solver
// mechanics fixture alongside Nim/Tic-Tac-Toe, not a faithfully-sized
// implementation.
const (
	GomokuSize      = 4
	GomokuWinLength = 3
)

// GomokuMove is a board coordinate in [0,GomokuSize)x[0,GomokuSize).
type GomokuMove struct {
	X, Y int
}

// Gomoku is a small free-form "N in a row, any direction" placement game:
// no captures, no gravity (unlike Connect Four), first player to complete a
// run of GomokuWinLength stones in a row/column/diagonal wins; a full board
// with no winner is a tie.
//
// Grounded the same way as TicTacToe (itself grounded on tic_tac_toe.rs):
// occupancy plus per-player marks, generalized from a fixed 3x3/3-line
// board to a parametric size/run-length since the original's single-u32
// bitmask trick doesn't generalize past 3x3 without outgrowing a machine
// word's convenient bit layout.
type Gomoku struct {
	marks     [GomokuSize * GomokuSize]Player
	occupied  [GomokuSize * GomokuSize]bool
	toMove    Player
	moveCount int
}

// NewGomoku starts an empty board, Player1 to move.
func NewGomoku() *Gomoku {
	return &Gomoku{toMove: Player1}
}

func gomokuIndex(x, y int) int { return y*GomokuSize + x }

// EachMove returns every empty cell, in row-major order.
func (g *Gomoku) EachMove() []GomokuMove {
	moves := make([]GomokuMove, 0, GomokuSize*GomokuSize-g.moveCount)
	for y := 0; y < GomokuSize; y++ {
		for x := 0; x < GomokuSize; x++ {
			if !g.occupied[gomokuIndex(x, y)] {
				moves = append(moves, GomokuMove{X: x, Y: y})
			}
		}
	}
	return moves
}

// ApplyMove places the current player's stone at m.
func (g *Gomoku) ApplyMove(m GomokuMove) (*Gomoku, error) {
	if m.X < 0 || m.X >= GomokuSize || m.Y < 0 || m.Y >= GomokuSize {
		return nil, fmt.Errorf("fixtures: gomoku move %v out of bounds", m)
	}
	idx := gomokuIndex(m.X, m.Y)
	if g.occupied[idx] {
		return nil, fmt.Errorf("fixtures: gomoku cell %v already occupied", m)
	}
	next := *g
	next.marks[idx] = g.toMove
	next.occupied[idx] = true
	next.moveCount++
	next.toMove = g.toMove.Opposite()
	return &next, nil
}

// CurrentPlayer returns the player to move.
func (g *Gomoku) CurrentPlayer() Player { return g.toMove }

var gomokuDirections = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// runFrom counts the length of the same-player run starting at (x, y) and
// extending in direction (dx, dy), including (x, y) itself.
func (g *Gomoku) runFrom(x, y, dx, dy int, p Player) int {
	n := 0
	for x >= 0 && x < GomokuSize && y >= 0 && y < GomokuSize && g.occupied[gomokuIndex(x, y)] && g.marks[gomokuIndex(x, y)] == p {
		n++
		x += dx
		y += dy
	}
	return n
}

// Finished reports the winner (the player who just moved, symmetric with
// TicTacToe.Finished's convention), a draw (Tie, true) once the board fills
// with no winner, or (_, false) if the game continues.
func (g *Gomoku) Finished() (Player, bool) {
	last := g.toMove.Opposite()
	for y := 0; y < GomokuSize; y++ {
		for x := 0; x < GomokuSize; x++ {
			idx := gomokuIndex(x, y)
			if !g.occupied[idx] || g.marks[idx] != last {
				continue
			}
			for _, d := range gomokuDirections {
				if g.runFrom(x, y, d[0], d[1], last) >= GomokuWinLength {
					return last, true
				}
			}
		}
	}
	if g.moveCount == GomokuSize*GomokuSize {
		return Tie, true
	}
	var zero Player
	return zero, false
}

// CanonicalHash folds occupancy and per-player marks into one key. As with
// TicTacToe, board-symmetry reduction is out of scope for a fixture whose
// only job is exercising solver mechanics.
func (g *Gomoku) CanonicalHash() uint64 {
	var h uint64
	for i := range g.marks {
		if !g.occupied[i] {
			continue
		}
		h |= 1 << uint(i)
		if g.marks[i] == Player2 {
			h |= 1 << uint(GomokuSize*GomokuSize+i)
		}
	}
	return h
}
