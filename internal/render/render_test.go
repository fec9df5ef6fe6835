package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/pdrpinto/navgrid"
)

func testScene(t *testing.T) Scene {
	t.Helper()
	g := navgrid.Build(4, 3) // x -2..1, y -1..1
	if err := g.MarkOccupied(navgrid.Coord{X: 0, Y: -1}); err != nil {
		t.Fatal(err)
	}
	start := navgrid.Coord{X: -2, Y: 0}
	goal := navgrid.Coord{X: 1, Y: 0}
	path := g.FindPath(start.Position(), goal.Position())
	if len(path) == 0 {
		t.Fatal("fixture path not found")
	}
	return Scene{Grid: g, Path: path, Start: &start, Goal: &goal, Status: "ok"}
}

func TestText(t *testing.T) {
	scene := testScene(t)
	got := Text(scene)
	want := "··█·\n" +
		"S••E\n" +
		"····\n" +
		"ok\n"
	if got != want {
		t.Errorf("Text() =\n%s\nwant\n%s", got, want)
	}
}

func TestText_NoPath(t *testing.T) {
	g := navgrid.Build(2, 2)
	_ = g.MarkOccupied(navgrid.Coord{X: 0, Y: 0})
	got := Text(Scene{Grid: g})
	if got != "··\n·█\n" {
		t.Errorf("Text() = %q", got)
	}
}

func TestRenderer_Draw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(20, 10)

	scene := testScene(t)
	cursor := navgrid.Coord{X: -1, Y: 1}
	scene.Cursor = &cursor
	NewRenderer(screen).Draw(scene)

	tests := []struct {
		col, row int
		want     rune
	}{
		{0, 1, GlyphStart},
		{3, 1, GlyphGoal},
		{1, 1, GlyphPath},
		{2, 1, GlyphPath},
		{2, 0, GlyphOccupied},
		{0, 0, GlyphFree},
		{0, 4, 'o'},
		{1, 4, 'k'},
	}
	for _, tt := range tests {
		mainc, _, _, _ := screen.GetContent(tt.col, tt.row)
		if mainc != tt.want {
			t.Errorf("content at (%d,%d) = %q, want %q", tt.col, tt.row, mainc, tt.want)
		}
	}

	_, _, style, _ := screen.GetContent(1, 1)
	if fg, _, _ := style.Decompose(); fg != tcell.ColorGreen {
		t.Errorf("path foreground = %v, want green", fg)
	}
	_, _, style, _ = screen.GetContent(1, 2)
	if _, _, attrs := style.Decompose(); attrs&tcell.AttrReverse == 0 {
		t.Error("Expected cursor cell to be reversed")
	}
}

func TestRenderer_RedrawClearsOldPath(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(20, 10)

	r := NewRenderer(screen)
	scene := testScene(t)
	r.Draw(scene)
	scene.Path, scene.Start, scene.Goal, scene.Status = nil, nil, nil, ""
	r.Draw(scene)

	for col := 0; col < 4; col++ {
		mainc, _, _, _ := screen.GetContent(col, 1)
		if mainc != GlyphFree {
			t.Errorf("content at (%d,1) = %q after redraw, want free", col, mainc)
		}
	}
	if mainc, _, _, _ := screen.GetContent(0, 4); mainc != ' ' {
		t.Errorf("status not cleared: %q", mainc)
	}
}

func TestCellAtAndScreenPos(t *testing.T) {
	g := navgrid.Build(6, 4)
	for _, c := range g.Coords() {
		col, row := ScreenPos(g, c)
		back, ok := CellAt(g, col, row)
		if !ok || back != c {
			t.Errorf("round trip %v -> (%d,%d) -> %v, %v", c, col, row, back, ok)
		}
	}
	if _, ok := CellAt(g, 6, 0); ok {
		t.Error("Expected column past the grid to be absent")
	}
}
