package snake

import "math/rand"

// FoodSpawner picks free grid cells for food.
type FoodSpawner struct {
	rng    *rand.Rand
	width  int
	height int
}

// NewFoodSpawner creates a spawner over a width x height grid.
func NewFoodSpawner(rng *rand.Rand, width, height int) *FoodSpawner {
	return &FoodSpawner{rng: rng, width: width, height: height}
}

// Spawn samples uniformly random cells until one is not on the body.
// When the body covers every cell it returns NoFood and false instead of
// sampling forever.
func (f *FoodSpawner) Spawn(body []Cell) (Cell, bool) {
	if len(body) >= f.width*f.height && f.full(body) {
		return NoFood, false
	}
	for {
		c := Cell{X: f.rng.Intn(f.width), Y: f.rng.Intn(f.height)}
		if !occupies(body, c) {
			return c, true
		}
	}
}

// full reports whether every grid cell is covered by the body.
func (f *FoodSpawner) full(body []Cell) bool {
	seen := make(map[Cell]struct{}, len(body))
	for _, seg := range body {
		if seg.X >= 0 && seg.X < f.width && seg.Y >= 0 && seg.Y < f.height {
			seen[seg] = struct{}{}
		}
	}
	return len(seen) == f.width*f.height
}
