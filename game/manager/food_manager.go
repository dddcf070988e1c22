package manager

import (
	"time"

	"golang.org/x/exp/rand"

	"snek/game/entity"
	"snek/game/types"
)

// FoodManager places food uniformly at random on the cells the snake leaves free.
type FoodManager struct {
	rng  *rand.Rand
	free []types.Cell
}

// NewFoodManager returns a FoodManager seeded with seed, or with the clock when seed is 0.
func NewFoodManager(seed uint64) *FoodManager {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &FoodManager{
		rng:  rand.New(rand.NewSource(seed)),
		free: make([]types.Cell, 0, types.NumCells),
	}
}

// Spawn picks a free cell for the next food, or types.NoCell when the snake
// covers the whole board.
func (fm *FoodManager) Spawn(s *entity.Snake) types.Cell {
	if s.Full() {
		return types.NoCell
	}

	fm.free = fm.free[:0]
	for i := 0; i < types.NumCells; i++ {
		if c := types.Cell(i); !s.Occupied(c) {
			fm.free = append(fm.free, c)
		}
	}
	return fm.free[fm.rng.Intn(len(fm.free))]
}
