package navgrid

import (
	"errors"
	"math"
	"strings"
)

// ErrUnknownHeuristic is returned by HeuristicByName for names it does not know.
var ErrUnknownHeuristic = errors.New("unknown heuristic")

// Heuristic returns the estimated distance from one coordinate to another.
// It must depend on the two coordinates only.
type Heuristic func(from Coord, to Coord) float64

// Manhattan is the axis-sum distance.
func Manhattan(from, to Coord) float64 {
	return float64(abs(from.X-to.X) + abs(from.Y-to.Y))
}

// Chebyshev is the larger of the two axis distances, the number of uniform-cost
// 8-directional moves between two cells on an empty grid.
func Chebyshev(from, to Coord) float64 {
	return float64(max(abs(from.X-to.X), abs(from.Y-to.Y)))
}

// Euclidean is the straight-line distance.
func Euclidean(from, to Coord) float64 {
	dx := float64(from.X - to.X)
	dy := float64(from.Y - to.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// HeuristicByName maps "manhattan", "chebyshev" or "euclidean" to its function.
func HeuristicByName(name string) (Heuristic, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "manhattan":
		return Manhattan, nil
	case "chebyshev":
		return Chebyshev, nil
	case "euclidean":
		return Euclidean, nil
	}
	return nil, ErrUnknownHeuristic
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
