package navgrid

import (
	"runtime"

	"github.com/pdrpinto/navgrid/internal"
)

// Result contains the outcome of a search.
type Result struct {
	Path     []Waypoint // goal first, start last
	Cost     int        // step cost of the node that reached the goal
	Expanded int        // nodes taken off the open set
	Found    bool
}

// Options defines parameters for the search.
type Options struct {
	Heuristic       Heuristic
	NumberOfWorkers int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithHeuristic replaces the default Manhattan heuristic.
func WithHeuristic(heuristic Heuristic) Option {
	return func(options *Options) {
		if heuristic != nil {
			options.Heuristic = heuristic
		}
	}
}

// WithWorkers specifies how many goroutines FindPaths runs searches on.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		Heuristic:       Manhattan,
		NumberOfWorkers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.NumberOfWorkers < 1 {
		searchOptions.NumberOfWorkers = 1
	}
	return searchOptions
}

// Calculate runs the best-first search from start to goal and returns the path
// from goal back to start. Occupied nodes are left out of the path. An
// unreachable goal yields an empty Result with Found false; it is not an error.
func Calculate(lookup CellLookup, start, goal Coord, bounds Bounds, options ...Option) Result {
	return newSearch(lookup, start, goal, bounds, applyOptions(options)).run()
}

// FindPath collapses origin and destination onto the grid and returns the
// waypoints from start to goal, or none if the goal cannot be reached.
func (g *Grid) FindPath(origin, destination Vec3, options ...Option) []Waypoint {
	result := Calculate(g, CoordOf(origin), CoordOf(destination), g.Bounds(), options...)
	return internal.Reverse(result.Path)
}

// search is the state of one best-first run. Nothing in it is shared between runs.
type search struct {
	lookup    CellLookup
	bounds    Bounds
	goal      Coord
	heuristic Heuristic

	nodes  []Node
	open   *openSet
	closed map[Coord]bool

	expanded int
	final    int
	done     bool
	found    bool
}

func newSearch(lookup CellLookup, start, goal Coord, bounds Bounds, options Options) *search {
	s := &search{
		lookup:    lookup,
		bounds:    bounds,
		goal:      goal,
		heuristic: options.Heuristic,
		open:      newOpenSet(),
		closed:    make(map[Coord]bool),
		final:     noParent,
	}

	startNode := Node{Coord: start, Parent: noParent}
	if cell, ok := lookup.CellAt(start); ok {
		startNode.Occupied = cell.Occupied
	}
	startNode.scoreAgainst(goal, s.heuristic)
	s.add(startNode)
	return s
}

func (s *search) add(n Node) {
	s.nodes = append(s.nodes, n)
	s.open.push(n.Coord, len(s.nodes)-1, n.Score)
}

// step takes the best node off the open set and either finishes on it or
// expands it. It returns the arena index of that node, or noParent when the
// open set was already empty.
func (s *search) step() int {
	if s.done {
		return noParent
	}
	if s.open.Len() == 0 {
		s.done = true
		return noParent
	}

	current := s.open.popMin(s.nodes)
	s.expanded++
	currentNode := s.nodes[current]

	if currentNode.Coord == s.goal {
		s.done = true
		s.found = true
		s.final = current
		return current
	}

	s.closed[currentNode.Coord] = true
	for _, neighbor := range Neighbors(s.lookup, s.bounds, currentNode, current, s.goal, s.heuristic) {
		if s.closed[neighbor.Coord] {
			continue
		}
		if existing, inOpen := s.open.find(neighbor.Coord); inOpen {
			// The existing entry is measured against the node being expanded,
			// not against the candidate.
			if existing.Score > currentNode.Score {
				s.open.remove(neighbor.Coord)
				s.add(neighbor)
			}
			continue
		}
		s.add(neighbor)
	}
	return current
}

func (s *search) run() Result {
	for !s.done {
		s.step()
	}
	return s.result()
}

func (s *search) result() Result {
	if !s.found {
		return Result{Expanded: s.expanded}
	}
	return Result{
		Path:     s.reconstructPath(s.final),
		Cost:     s.nodes[s.final].Cost,
		Expanded: s.expanded,
		Found:    true,
	}
}

// reconstructPath walks parent links from the arena index final to the root,
// keeping only free nodes. The result runs goal to start.
func (s *search) reconstructPath(final int) []Waypoint {
	var path []Waypoint
	for i := final; i != noParent; i = s.nodes[i].Parent {
		if !s.nodes[i].Occupied {
			path = append(path, s.nodes[i].Coord.waypoint())
		}
	}
	return path
}
