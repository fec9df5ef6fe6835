package navgrid

import (
	"errors"
	"math"
)

// DefaultWidth and DefaultDepth are the grid dimensions used when none are configured.
const (
	DefaultWidth = 50
	DefaultDepth = 50
)

// ErrCellNotFound is returned when a coordinate was never built into the grid.
var ErrCellNotFound = errors.New("cell not found")

// Coord addresses one grid cell.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Vec3 is a continuous 3-axis position. Y is the vertical axis.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// CoordOf collapses a world point onto the grid by rounding x and z up and dropping y.
func CoordOf(point Vec3) Coord {
	return Coord{X: int(math.Ceil(point.X)), Y: int(math.Ceil(point.Z))}
}

// Position is the flattened display position of a coordinate; the vertical axis is always 0.
func (c Coord) Position() Vec3 {
	return Vec3{X: float64(c.X), Y: 0, Z: float64(c.Y)}
}

// CellState is the occupancy of one cell.
type CellState struct {
	Occupied bool `json:"occupied"`
}

// CellLookup answers occupancy queries. The second result is false when the
// coordinate is not part of the grid.
type CellLookup interface {
	CellAt(coord Coord) (CellState, bool)
}

// Bounds is a rectangle of coordinates, inclusive on both ends.
type Bounds struct {
	Min Coord `json:"min"`
	Max Coord `json:"max"`
}

// Contains reports whether c lies inside b, counting Max as inside.
func (b Bounds) Contains(c Coord) bool {
	return c.X >= b.Min.X && c.X <= b.Max.X && c.Y >= b.Min.Y && c.Y <= b.Max.Y
}

// Grid is a fixed set of cells centered on the origin. Cells can be marked
// occupied but never removed or freed. Reads are safe from many goroutines as
// long as nobody calls MarkOccupied concurrently.
type Grid struct {
	width    int
	depth    int
	min      Coord
	occupied []bool
}

// Build creates a width x depth grid covering [-width/2, -width/2+width) on x and
// the same on y for depth, every cell free.
func Build(width, depth int) *Grid {
	if width < 0 {
		width = 0
	}
	if depth < 0 {
		depth = 0
	}
	return &Grid{
		width:    width,
		depth:    depth,
		min:      Coord{X: -(width / 2), Y: -(depth / 2)},
		occupied: make([]bool, width*depth),
	}
}

func (g *Grid) Width() int { return g.width }
func (g *Grid) Depth() int { return g.depth }

// Len returns the number of cells in the grid.
func (g *Grid) Len() int { return len(g.occupied) }

// Bounds returns the search bounds for this grid. Max is one past the last
// built cell on each axis; the neighbor generator accepts it as legal, and the
// occupancy lookup then drops it because no cell exists there.
func (g *Grid) Bounds() Bounds {
	return Bounds{
		Min: g.min,
		Max: Coord{X: g.min.X + g.width, Y: g.min.Y + g.depth},
	}
}

func (g *Grid) index(c Coord) (int, bool) {
	x, y := c.X-g.min.X, c.Y-g.min.Y
	if x < 0 || x >= g.width || y < 0 || y >= g.depth {
		return 0, false
	}
	return x*g.depth + y, true
}

// CellAt returns the state of the cell at coord, or false if it was never built.
func (g *Grid) CellAt(coord Coord) (CellState, bool) {
	i, ok := g.index(coord)
	if !ok {
		return CellState{}, false
	}
	return CellState{Occupied: g.occupied[i]}, true
}

// MarkOccupied flips the cell at coord to occupied for the lifetime of the grid.
func (g *Grid) MarkOccupied(coord Coord) error {
	i, ok := g.index(coord)
	if !ok {
		return ErrCellNotFound
	}
	g.occupied[i] = true
	return nil
}

// Coords lists every cell coordinate in build order: x-major, then y.
func (g *Grid) Coords() []Coord {
	coords := make([]Coord, 0, len(g.occupied))
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.depth; y++ {
			coords = append(coords, Coord{X: g.min.X + x, Y: g.min.Y + y})
		}
	}
	return coords
}

// Occupied lists the occupied coordinates in build order.
func (g *Grid) Occupied() []Coord {
	var coords []Coord
	for _, c := range g.Coords() {
		if i, _ := g.index(c); g.occupied[i] {
			coords = append(coords, c)
		}
	}
	return coords
}
