// Package render draws a grid, its obstacles and a found path onto a terminal.
package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/pdrpinto/navgrid"
)

const (
	GlyphFree     = '·'
	GlyphOccupied = '█'
	GlyphPath     = '•'
	GlyphStart    = 'S'
	GlyphGoal     = 'E'
)

// Scene is everything one frame shows. Start, Goal and Cursor are optional.
type Scene struct {
	Grid   *navgrid.Grid
	Path   []navgrid.Waypoint
	Start  *navgrid.Coord
	Goal   *navgrid.Coord
	Cursor *navgrid.Coord
	Status string
}

func (s Scene) onPath() map[navgrid.Coord]bool {
	m := make(map[navgrid.Coord]bool, len(s.Path))
	for _, w := range s.Path {
		m[w.Coord] = true
	}
	return m
}

func (s Scene) glyphAt(c navgrid.Coord, path map[navgrid.Coord]bool) rune {
	switch {
	case s.Start != nil && c == *s.Start:
		return GlyphStart
	case s.Goal != nil && c == *s.Goal:
		return GlyphGoal
	case path[c]:
		return GlyphPath
	}
	if cell, ok := s.Grid.CellAt(c); ok && cell.Occupied {
		return GlyphOccupied
	}
	return GlyphFree
}

// CellAt maps a screen column and row to the grid coordinate drawn there.
func CellAt(grid *navgrid.Grid, col, row int) (navgrid.Coord, bool) {
	origin := grid.Bounds().Min
	c := navgrid.Coord{X: origin.X + col, Y: origin.Y + row}
	_, ok := grid.CellAt(c)
	return c, ok
}

// ScreenPos maps a grid coordinate to its screen column and row.
func ScreenPos(grid *navgrid.Grid, c navgrid.Coord) (col, row int) {
	origin := grid.Bounds().Min
	return c.X - origin.X, c.Y - origin.Y
}

// Styles used by Renderer.
type Styles struct {
	Free     tcell.Style
	Occupied tcell.Style
	Path     tcell.Style
	Endpoint tcell.Style
	Status   tcell.Style
}

// DefaultStyles draw a green path over grey obstacles.
func DefaultStyles() Styles {
	base := tcell.StyleDefault
	return Styles{
		Free:     base.Foreground(tcell.ColorDarkGray),
		Occupied: base.Foreground(tcell.ColorSilver),
		Path:     base.Foreground(tcell.ColorGreen).Bold(true),
		Endpoint: base.Foreground(tcell.ColorYellow).Bold(true),
		Status:   base.Foreground(tcell.ColorWhite),
	}
}

// Renderer owns the markers of one screen. Every Draw clears what the previous one put there.
type Renderer struct {
	screen tcell.Screen
	styles Styles
}

// NewRenderer creates a renderer on an initialized screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen, styles: DefaultStyles()}
}

// Draw renders the scene and shows it.
func (r *Renderer) Draw(scene Scene) {
	r.screen.Clear()
	path := scene.onPath()

	for _, c := range scene.Grid.Coords() {
		glyph := scene.glyphAt(c, path)
		style := r.styleFor(glyph)
		if scene.Cursor != nil && c == *scene.Cursor {
			style = style.Reverse(true)
		}
		col, row := ScreenPos(scene.Grid, c)
		r.screen.SetContent(col, row, glyph, nil, style)
	}

	if scene.Status != "" {
		row := scene.Grid.Depth() + 1
		for i, ch := range []rune(scene.Status) {
			r.screen.SetContent(i, row, ch, nil, r.styles.Status)
		}
	}

	r.screen.Show()
}

func (r *Renderer) styleFor(glyph rune) tcell.Style {
	switch glyph {
	case GlyphOccupied:
		return r.styles.Occupied
	case GlyphPath:
		return r.styles.Path
	case GlyphStart, GlyphGoal:
		return r.styles.Endpoint
	}
	return r.styles.Free
}

// Text renders the scene as plain text, one grid row per line.
func Text(scene Scene) string {
	path := scene.onPath()
	var b strings.Builder
	origin := scene.Grid.Bounds().Min
	for row := 0; row < scene.Grid.Depth(); row++ {
		for col := 0; col < scene.Grid.Width(); col++ {
			b.WriteRune(scene.glyphAt(navgrid.Coord{X: origin.X + col, Y: origin.Y + row}, path))
		}
		b.WriteByte('\n')
	}
	if scene.Status != "" {
		b.WriteString(scene.Status)
		b.WriteByte('\n')
	}
	return b.String()
}
