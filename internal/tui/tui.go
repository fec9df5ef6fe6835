// Package tui is an interactive terminal front end: move a cursor over the
// grid, pick a start and a goal, and see the path drawn.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/pdrpinto/navgrid"
	"github.com/pdrpinto/navgrid/internal/render"
)

const helpText = "arrows/hjkl move  enter pick start/goal  c clear  q quit"

// App holds the interactive session state.
type App struct {
	screen   tcell.Screen
	renderer *render.Renderer
	grid     *navgrid.Grid
	options  []navgrid.Option

	cursor navgrid.Coord
	start  *navgrid.Coord
	goal   *navgrid.Coord
	path   []navgrid.Waypoint
	status string
}

// New creates an app on an initialized screen. The cursor starts at the origin
// when it is part of the grid, otherwise at the first cell.
func New(screen tcell.Screen, grid *navgrid.Grid, options ...navgrid.Option) *App {
	cursor := navgrid.Coord{}
	if _, ok := grid.CellAt(cursor); !ok {
		cursor = grid.Bounds().Min
	}
	return &App{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		grid:     grid,
		options:  options,
		cursor:   cursor,
		status:   helpText,
	}
}

func (a *App) Cursor() navgrid.Coord { return a.cursor }
func (a *App) Path() []navgrid.Waypoint { return a.path }
func (a *App) Status() string { return a.status }

// Run draws the grid and handles events until the user quits.
func (a *App) Run() {
	a.draw()
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		if a.HandleEvent(ev) {
			return
		}
	}
}

// HandleEvent applies one event and redraws. It returns true when the app should exit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		if a.handleKey(ev) {
			return true
		}
	}
	a.draw()
	return false
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		a.move(0, -1)
	case tcell.KeyDown:
		a.move(0, 1)
	case tcell.KeyLeft:
		a.move(-1, 0)
	case tcell.KeyRight:
		a.move(1, 0)
	case tcell.KeyEnter:
		a.pick()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'k':
			a.move(0, -1)
		case 'j':
			a.move(0, 1)
		case 'h':
			a.move(-1, 0)
		case 'l':
			a.move(1, 0)
		case ' ':
			a.pick()
		case 'c':
			a.clear()
		}
	}
	return false
}

func (a *App) move(dx, dy int) {
	next := navgrid.Coord{X: a.cursor.X + dx, Y: a.cursor.Y + dy}
	if _, ok := a.grid.CellAt(next); ok {
		a.cursor = next
	}
}

// pick sets the start on the first press and the goal on the second, then
// searches. A third press starts over.
func (a *App) pick() {
	cursor := a.cursor
	if a.start == nil || a.goal != nil {
		a.start, a.goal, a.path = &cursor, nil, nil
		a.status = fmt.Sprintf("start (%d,%d), pick a goal", cursor.X, cursor.Y)
		return
	}
	a.goal = &cursor
	a.path = a.grid.FindPath(a.start.Position(), a.goal.Position(), a.options...)
	if len(a.path) == 0 {
		a.status = fmt.Sprintf("no path from (%d,%d) to (%d,%d)", a.start.X, a.start.Y, cursor.X, cursor.Y)
		return
	}
	a.status = fmt.Sprintf("path: %d waypoints", len(a.path))
}

func (a *App) clear() {
	a.start, a.goal, a.path = nil, nil, nil
	a.status = helpText
}

func (a *App) draw() {
	cursor := a.cursor
	a.renderer.Draw(render.Scene{
		Grid:   a.grid,
		Path:   a.path,
		Start:  a.start,
		Goal:   a.goal,
		Cursor: &cursor,
		Status: a.status,
	})
}
