// Package cycle holds the fixed Hamiltonian cycle over the 8x8 board and the
// lookup tables derived from it. Everything is built once at init and never
// written again, so the tables are safe to share between goroutines.
package cycle

import (
	"fmt"

	"snek/game/types"
)

// successor is the hard-coded cycle. Row 0 runs right, the remaining rows
// snake back and forth over columns 1..7, and column 0 is the return lane:
//
//	>>>>>>>v
//	^v<<<<<<
//	^>>>>>>v
//	^v<<<<<<
//	^>>>>>>v
//	^v<<<<<<
//	^>>>>>>v
//	^<<<<<<<
var successor = [types.NumCells]types.Cell{
	1, 2, 3, 4, 5, 6, 7, 15,
	0, 17, 9, 10, 11, 12, 13, 14,
	8, 18, 19, 20, 21, 22, 23, 31,
	16, 33, 25, 26, 27, 28, 29, 30,
	24, 34, 35, 36, 37, 38, 39, 47,
	32, 49, 41, 42, 43, 44, 45, 46,
	40, 50, 51, 52, 53, 54, 55, 63,
	48, 56, 57, 58, 59, 60, 61, 62,
}

// Start is the cell that sits at step 0.
const Start types.Cell = 0

// Neighbor slots, in the order the autopilot evaluates them.
const (
	Left = iota
	Right
	Up
	Down
)

var (
	steps     [types.NumCells]int
	neighbors [types.NumCells][4]types.Cell
)

func init() {
	for i := range steps {
		steps[i] = -1
	}

	k, step := Start, 0
	for successor[k] != Start {
		steps[k] = step
		step++
		k = successor[k]
	}
	steps[k] = step

	if step != types.NumCells-1 {
		panic(fmt.Sprintf("cycle: walk from %d closed after %d cells", Start, step+1))
	}
	for c, s := range steps {
		if s < 0 {
			panic(fmt.Sprintf("cycle: cell %d is not on the cycle", c))
		}
	}

	for i := 0; i < types.NumCells; i++ {
		c := types.Cell(i)
		neighbors[i] = [4]types.Cell{
			Left:  types.CellAt(c.Row(), c.Col()-1),
			Right: types.CellAt(c.Row(), c.Col()+1),
			Up:    types.CellAt(c.Row()-1, c.Col()),
			Down:  types.CellAt(c.Row()+1, c.Col()),
		}
	}
}

// Successor returns the cell after c on the cycle.
func Successor(c types.Cell) types.Cell {
	return successor[c]
}

// Step returns the position of c on the cycle, counted from Start (0..63).
func Step(c types.Cell) int {
	return steps[c]
}

// Neighbors returns the grid neighbors of c as left, right, up, down.
// Missing neighbors at the board edge are types.NoCell.
func Neighbors(c types.Cell) [4]types.Cell {
	return neighbors[c]
}
