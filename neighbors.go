package navgrid

// neighborOffsets is the fixed expansion order around a cell.
var neighborOffsets = [8]Coord{
	{X: 0, Y: -1},
	{X: 0, Y: 1},
	{X: 1, Y: -1},
	{X: 1, Y: 1},
	{X: 1, Y: 0},
	{X: -1, Y: -1},
	{X: -1, Y: 1},
	{X: -1, Y: 0},
}

// Neighbors returns the legal, free, 8-directionally adjacent cells around
// current, each scored against target and costed one step past current.
// parent is the arena index of current and becomes every returned node's Parent.
//
// A candidate must lie within bounds (both ends inclusive), exist in lookup and
// be free.
func Neighbors(lookup CellLookup, bounds Bounds, current Node, parent int, target Coord, heuristic Heuristic) []Node {
	result := make([]Node, 0, len(neighborOffsets))
	for _, offset := range neighborOffsets {
		coord := Coord{X: current.Coord.X + offset.X, Y: current.Coord.Y + offset.Y}
		if !bounds.Contains(coord) {
			continue
		}
		cell, ok := lookup.CellAt(coord)
		if !ok || cell.Occupied {
			continue
		}
		candidate := Node{
			Coord:  coord,
			Cost:   current.Cost + 1,
			Parent: parent,
		}
		candidate.scoreAgainst(target, heuristic)
		result = append(result, candidate)
	}
	return result
}
