package navgrid

import "github.com/pdrpinto/navgrid/internal"

// StepSnapshot exposes the per-iteration state of the search.
type StepSnapshot struct {
	Current   Coord
	Open      map[Coord]bool
	Closed    map[Coord]bool
	Done      bool
	Found     bool
	Path      []Waypoint // start first, set once the goal is reached
	StepIndex int
}

// Stepper runs the same search as Calculate, one open-set selection per Step.
type Stepper struct {
	search    *search
	stepCount int
}

// NewStepper prepares a search from start to goal without running it.
func NewStepper(lookup CellLookup, start, goal Coord, bounds Bounds, options ...Option) *Stepper {
	return &Stepper{search: newSearch(lookup, start, goal, bounds, applyOptions(options))}
}

// Step advances the search by one selection and returns a snapshot.
// Once the search is done every further call returns the final snapshot.
func (s *Stepper) Step() StepSnapshot {
	if s.search.done {
		return s.snapshot(noParent)
	}
	current := s.search.step()
	if current != noParent {
		s.stepCount++
	}
	return s.snapshot(current)
}

// Result returns the outcome so far; Found stays false until the goal is selected.
func (s *Stepper) Result() Result {
	return s.search.result()
}

func (s *Stepper) snapshot(current int) StepSnapshot {
	snapshot := StepSnapshot{
		Open:      s.search.open.coords(),
		Closed:    copyBoolMap(s.search.closed),
		Done:      s.search.done,
		Found:     s.search.found,
		StepIndex: s.stepCount,
	}
	if current != noParent {
		snapshot.Current = s.search.nodes[current].Coord
	} else if s.search.found {
		snapshot.Current = s.search.goal
	}
	if s.search.found {
		snapshot.Path = internal.Reverse(s.search.reconstructPath(s.search.final))
	}
	return snapshot
}

func copyBoolMap[T comparable](m map[T]bool) map[T]bool {
	if m == nil {
		return nil
	}
	c := make(map[T]bool, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
