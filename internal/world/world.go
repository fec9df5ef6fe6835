// Package world seeds a grid with static obstacles before any search runs.
package world

import (
	"math/rand/v2"
	"time"

	"github.com/pdrpinto/navgrid"
	"github.com/pdrpinto/navgrid/internal"
)

// Default obstacle fraction range, as a share of all cells.
const (
	DefaultMinFraction = 0.10
	DefaultMaxFraction = 0.15
)

// NewSource returns a random source for Seed. A zero seed picks one from the clock.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Seed marks a random share of the grid's cells occupied and returns them in
// the order they were drawn. The share is uniform in [minFraction, maxFraction);
// the cells are the prefix of a Fisher-Yates shuffle of all coordinates, so no
// cell is drawn twice.
func Seed(grid *navgrid.Grid, rng *rand.Rand, minFraction, maxFraction float64) []navgrid.Coord {
	if maxFraction < minFraction {
		minFraction, maxFraction = maxFraction, minFraction
	}
	fraction := minFraction + rng.Float64()*(maxFraction-minFraction)
	total := float64(grid.Len()) * fraction

	locations := grid.Coords()
	internal.Shuffle(locations, rng.IntN)

	var placed []navgrid.Coord
	for i := 0; float64(i) < total && i < len(locations); i++ {
		if err := grid.MarkOccupied(locations[i]); err != nil {
			continue
		}
		placed = append(placed, locations[i])
	}
	return placed
}

// Count returns how many cells Seed marks for a grid of n cells at the given fraction.
func Count(n int, fraction float64) int {
	total := float64(n) * fraction
	count := 0
	for float64(count) < total && count < n {
		count++
	}
	return count
}
