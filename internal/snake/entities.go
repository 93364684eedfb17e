package snake

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"math/rand"
	"slices"
)

// ErrGridTooSmall is returned by Reset when the grid cannot hold the
// configured obstacles and food. It is a configuration error.
var ErrGridTooSmall = errors.New("snake: grid too small for configured obstacles and food")

// Occupier is anything that claims grid cells: entity sets and the snake body.
type Occupier interface {
	Has(c Cell) bool
}

// CellSet is a set of grid cells.
type CellSet map[Cell]struct{}

// NewCellSet creates a set holding the given cells.
func NewCellSet(cells ...Cell) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Has reports whether c is in the set.
func (s CellSet) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Add puts c in the set.
func (s CellSet) Add(c Cell) {
	s[c] = struct{}{}
}

// Remove deletes c and reports whether it was present.
func (s CellSet) Remove(c Cell) bool {
	if _, ok := s[c]; !ok {
		return false
	}
	delete(s, c)
	return true
}

// Len returns the number of cells in the set.
func (s CellSet) Len() int {
	return len(s)
}

// Sorted returns the cells in row-major order.
func (s CellSet) Sorted() []Cell {
	return slices.SortedFunc(maps.Keys(s), compareCells)
}

func compareCells(a, b Cell) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

// PlaceRandom rejection-samples a cell not claimed by any of avoid.
// It gives up after attempts tries; failure is a normal outcome.
func PlaceRandom(rng *rand.Rand, grid Grid, attempts int, avoid ...Occupier) (Cell, bool) {
	for range attempts {
		c := grid.RandomCell(rng)
		if !claimed(c, avoid) {
			return c, true
		}
	}
	return Cell{}, false
}

func claimed(c Cell, avoid []Occupier) bool {
	for _, o := range avoid {
		if o.Has(c) {
			return true
		}
	}
	return false
}

// Entities holds the obstacle, food and boost sets. The three sets are
// pairwise disjoint and never overlap the snake outside of a tick.
type Entities struct {
	Obstacles CellSet
	Foods     CellSet
	Boosts    CellSet
}

// NewEntities creates empty entity sets.
func NewEntities() Entities {
	return Entities{
		Obstacles: NewCellSet(),
		Foods:     NewCellSet(),
		Boosts:    NewCellSet(),
	}
}

// Populate fills obstacles and food for a fresh round. It samples
// obstacleCount+foodCount distinct cells from the grid minus protect; the
// first obstacleCount become obstacles. Boosts are cleared.
func (e *Entities) Populate(rng *rand.Rand, grid Grid, protect CellSet, obstacleCount, foodCount int) error {
	available := make([]Cell, 0, grid.Size())
	for y := range grid.H {
		for x := range grid.W {
			if c := (Cell{X: x, Y: y}); !protect.Has(c) {
				available = append(available, c)
			}
		}
	}

	needed := obstacleCount + foodCount
	if len(available) < needed {
		return fmt.Errorf("%w: need %d free cells, have %d on a %dx%d grid",
			ErrGridTooSmall, needed, len(available), grid.W, grid.H)
	}

	// Partial Fisher-Yates: the first `needed` slots become the sample.
	for i := range needed {
		j := i + rng.Intn(len(available)-i)
		available[i], available[j] = available[j], available[i]
	}

	e.Obstacles = NewCellSet(available[:obstacleCount]...)
	e.Foods = NewCellSet(available[obstacleCount:needed]...)
	e.Boosts = NewCellSet()
	return nil
}

// SpawnFood adds one food cell away from the snake and the other entities.
func (e *Entities) SpawnFood(rng *rand.Rand, grid Grid, attempts int, body Occupier) bool {
	c, ok := PlaceRandom(rng, grid, attempts, body, e.Obstacles, e.Foods, e.Boosts)
	if ok {
		e.Foods.Add(c)
	}
	return ok
}

// SpawnBoost adds one boost cell away from the snake and the other entities.
func (e *Entities) SpawnBoost(rng *rand.Rand, grid Grid, attempts int, body Occupier) bool {
	c, ok := PlaceRandom(rng, grid, attempts, body, e.Obstacles, e.Foods, e.Boosts)
	if ok {
		e.Boosts.Add(c)
	}
	return ok
}

// RelocateObstacles replaces the obstacle set with count freshly sampled
// cells. It stops after count*100 draws and keeps whatever it found.
// Returns the number of obstacles placed.
func (e *Entities) RelocateObstacles(rng *rand.Rand, grid Grid, count int, body Occupier) int {
	fresh := NewCellSet()
	for attempts := 0; fresh.Len() < count && attempts < count*100; attempts++ {
		c := grid.RandomCell(rng)
		if !claimed(c, []Occupier{body, e.Foods, e.Boosts}) {
			fresh.Add(c)
		}
	}
	e.Obstacles = fresh
	return fresh.Len()
}

// RelocateFoods moves every food cell to a fresh random cell, keeping the
// count unless a placement runs out of attempts. Returns the new count.
func (e *Entities) RelocateFoods(rng *rand.Rand, grid Grid, attempts int, body Occupier) int {
	fresh := NewCellSet()
	for range e.Foods.Len() {
		if c, ok := PlaceRandom(rng, grid, attempts, body, e.Obstacles, e.Boosts, fresh); ok {
			fresh.Add(c)
		}
	}
	e.Foods = fresh
	return fresh.Len()
}
