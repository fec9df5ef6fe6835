package navgrid

// noParent marks the root of a search tree.
const noParent = -1

// Node is the per-search record for one visited cell. Nodes live in an arena
// owned by a single search; Parent indexes into that arena.
type Node struct {
	Coord    Coord
	Occupied bool
	Cost     int     // steps taken from the start, one per move in any direction
	Score    float64 // heuristic estimate to the current target
	Parent   int     // arena index, -1 for the start node
}

// scoreAgainst recomputes the heuristic score of n against target.
func (n *Node) scoreAgainst(target Coord, heuristic Heuristic) {
	n.Score = heuristic(n.Coord, target)
}

// Waypoint is one step of a returned path.
type Waypoint struct {
	Coord    Coord `json:"coord"`
	Position Vec3  `json:"position"`
}

func (c Coord) waypoint() Waypoint {
	return Waypoint{Coord: c, Position: c.Position()}
}
