package fixtures

import "fmt"

// Tie is a sentinel Player value returned by TicTacToe.Finished for a drawn
// board: neither Player1 nor Player2, distinguishable by equality.
const Tie Player = 2

// TTTMove is a board coordinate in [0,3)x[0,3), row-major.
type TTTMove struct {
	X, Y int
}

// TicTacToe is standard 3x3 tic-tac-toe.
//
// Grounded on tic_tac_toe.rs's TicTacToe/TTTMove/TTTMoveGen: that
// implementation packs the board into one u32 (player1's marks in the low
// 16 bits, player2's in the high 16, one bit per cell plus a duplicate used
// for the row/column/diagonal bit-AND win check). This keeps an occupancy
// bitmask but stores each cell's mark in a per-cell array, and Finished
// checks each of the eight lines by comparing its three marks rather than
// with bitmask ANDs.
type TicTacToe struct {
	marks     [9]Player
	occupied  uint16
	toMove    Player
	moveCount int
}

// NewTicTacToe starts an empty board, Player1 to move.
func NewTicTacToe() *TicTacToe {
	return &TicTacToe{toMove: Player1}
}

func cellIndex(x, y int) int { return y*3 + x }

// EachMove returns every empty cell, in row-major order (matching
// TTTMoveGen's bit-scan order).
func (t *TicTacToe) EachMove() []TTTMove {
	moves := make([]TTTMove, 0, 9-t.moveCount)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if t.occupied&(1<<cellIndex(x, y)) == 0 {
				moves = append(moves, TTTMove{X: x, Y: y})
			}
		}
	}
	return moves
}

// ApplyMove places the current player's mark at m.
func (t *TicTacToe) ApplyMove(m TTTMove) (*TicTacToe, error) {
	idx := cellIndex(m.X, m.Y)
	if m.X < 0 || m.X >= 3 || m.Y < 0 || m.Y >= 3 {
		return nil, fmt.Errorf("fixtures: tic-tac-toe move %v out of bounds", m)
	}
	if t.occupied&(1<<idx) != 0 {
		return nil, fmt.Errorf("fixtures: tic-tac-toe cell %v already occupied", m)
	}
	next := *t
	next.marks[idx] = t.toMove
	next.occupied |= 1 << idx
	next.moveCount++
	next.toMove = t.toMove.Opposite()
	return &next, nil
}

// CurrentPlayer returns the player to move.
func (t *TicTacToe) CurrentPlayer() Player { return t.toMove }

var winLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// Finished reports the winner (the player who just moved, matching
// tic_tac_toe.rs's finished() returning Win(current_player.opposite())
// since current_player has already advanced past the winning move), a draw
// (Tie, true) once the board is full, or (_, false) if the game continues.
func (t *TicTacToe) Finished() (Player, bool) {
	for _, line := range winLines {
		a, b, c := t.marks[line[0]], t.marks[line[1]], t.marks[line[2]]
		if t.occupied&(1<<line[0]) != 0 && a == b && b == c {
			return a, true
		}
	}
	if t.moveCount == 9 {
		return Tie, true
	}
	var zero Player
	return zero, false
}

// CanonicalHash folds the occupancy bitmask and per-player marks into one
// key. Board-symmetry reduction (rotations/reflections of the 3x3 grid)
// is out of scope for a fixture whose only job is exercising the solver on
// a small, exactly-checkable tree, unlike internal/onoro's Canonicalize.
func (t *TicTacToe) CanonicalHash() uint64 {
	h := uint64(t.occupied)
	for i, p := range t.marks {
		if t.occupied&(1<<i) != 0 && p == Player2 {
			h |= 1 << (16 + i)
		}
	}
	return h
}
