// Package ai decides where the snake moves next.
//
// The Autopilot follows a fixed Hamiltonian cycle over the board, which on
// its own guarantees the snake never traps itself. While the body is short it
// cuts across the cycle towards the food, but only with moves that stay
// strictly ahead of the head in cycle order, never jump past the tail, and
// never skip over the food.
package ai

import (
	"snek/game/cycle"
	"snek/game/entity"
	"snek/game/types"
)

// Autopilot is a stateless policy apart from a scratch occupancy mask that is
// fully rewritten on every call. One Autopilot must not be shared between
// goroutines.
type Autopilot struct {
	scratch [types.NumCells]bool
}

func New() *Autopilot {
	return &Autopilot{}
}

// Next returns the cell the head of s should move into. The result is always
// a grid neighbor of the head.
func (a *Autopilot) Next(s *entity.Snake, food types.Cell) types.Cell {
	head, tail := s.Head(), s.Tail()

	// The tail leaves this tick, so it counts as free.
	s.CopyMask(&a.scratch)
	a.scratch[tail] = false

	headStep := cycle.Step(head)
	tailStep := cycle.Step(tail)

	if s.Len() > types.ShortcutLimit {
		return cycle.Successor(head)
	}

	// Food behind the head in cycle order puts no cap on the shortcut.
	foodStep := types.NumCells - 1
	if food.Valid() && cycle.Step(food) > headStep {
		foodStep = cycle.Step(food)
	}

	best, bestStep := types.NoCell, -1
	for _, n := range cycle.Neighbors(head) {
		if n == types.NoCell || a.scratch[n] {
			continue
		}
		step := cycle.Step(n)

		if step <= headStep {
			continue
		}
		if (tailStep < headStep && step < tailStep) || (tailStep > headStep && step > tailStep) {
			continue
		}
		if step > foodStep {
			continue
		}

		if step > bestStep {
			best, bestStep = n, step
		}
	}

	if best == types.NoCell {
		return cycle.Successor(head)
	}
	return best
}
