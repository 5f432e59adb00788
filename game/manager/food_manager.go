package manager

import (
	"toroidal-snake/game/entity"
	"toroidal-snake/game/types"

	"golang.org/x/exp/rand"
)

type FoodManager struct {
	size int
	rng  *rand.Rand
}

func NewFoodManager(size int, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		size: size,
		rng:  rng,
	}
}

// FreeCells lists every cell not covered by the snake, row by row.
func (fm *FoodManager) FreeCells(snake *entity.Snake) []types.Cell {
	occupied := snake.Occupied()
	free := make([]types.Cell, 0, fm.size*fm.size-len(occupied))
	for y := 0; y < fm.size; y++ {
		for x := 0; x < fm.size; x++ {
			c := types.Cell{X: x, Y: y}
			if _, ok := occupied[c]; !ok {
				free = append(free, c)
			}
		}
	}
	return free
}

// GenerateFood picks uniformly among free cells. ok is false when the snake
// covers the whole board.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (food types.Cell, ok bool) {
	free := fm.FreeCells(snake)
	if len(free) == 0 {
		return types.Cell{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}
