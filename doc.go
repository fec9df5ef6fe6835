// Package navgrid provides best-first route finding on a bounded 2-D grid with static obstacles.
//
// It exposes three main entry points:
//
//   - Calculate: run the search to completion and get a Result whose Path runs goal to start.
//   - Grid.FindPath: collapse two world points onto the grid and get start-to-goal waypoints.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// FindPaths runs many independent searches over one shared, read-only grid with a worker pool.
//
// The frontier is ordered by the heuristic score alone (accumulated step cost is tracked but
// never used as a selection key), ties go to the first node seen, and the first node that
// reaches the goal coordinate ends the search.
package navgrid
