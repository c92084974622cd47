// Package model holds the racetrack grid: four same-shaped layers
// (walls, active, buttons, colors) plus the spawn and target cells.
package model

import "errors"

var (
	ErrShapeMismatch = errors.New("model: all map layers must be same shape")
	ErrOutOfBounds   = errors.New("model: coordinate outside the grid")
)

// Point is a grid coordinate, row first.
type Point struct {
	Row, Col int
}

// AnyColor disables color filtering in queries.
const AnyColor = -1

type ActiveFilter int

const (
	AnyState ActiveFilter = iota
	OnlyActive
	OnlyInactive
)

func (f ActiveFilter) Name() string {
	switch f {
	case AnyState:
		return "ANY"
	case OnlyActive:
		return "ACTIVE"
	case OnlyInactive:
		return "INACTIVE"
	default:
		return "N/A"
	}
}

// Track is the editable racetrack. Walls holds the wall color index
// per cell, 0 meaning no wall. Active marks whether a wall currently
// blocks movement; its value is ignored where Walls is 0. Buttons and
// Colors are the toggle buttons and the shared color layer. ScreenW
// and ScreenH remember the canvas size of the last render so a loaded
// track renders at its original dimensions.
type Track struct {
	Walls   [][]int
	Active  [][]bool
	Buttons [][]bool
	Colors  [][]int

	Rows, Cols int

	Target Point
	Spawn  Point

	ScreenW, ScreenH int
}

// New builds a track from its layers. All four layers must agree in
// shape, and target and spawn must lie inside it.
func New(walls [][]int, active, buttons [][]bool, colors [][]int, target, spawn Point, screenW, screenH int) (*Track, error) {
	rows := len(walls)
	if len(active) != rows || len(buttons) != rows || len(colors) != rows {
		return nil, ErrShapeMismatch
	}
	cols := 0
	if rows > 0 {
		cols = len(walls[0])
	}
	for r := 0; r < rows; r++ {
		if len(walls[r]) != cols || len(active[r]) != cols ||
			len(buttons[r]) != cols || len(colors[r]) != cols {
			return nil, ErrShapeMismatch
		}
	}
	t := &Track{
		Walls:   walls,
		Active:  active,
		Buttons: buttons,
		Colors:  colors,
		Rows:    rows,
		Cols:    cols,
		Target:  target,
		Spawn:   spawn,
		ScreenW: screenW,
		ScreenH: screenH,
	}
	if !t.InBounds(target) || !t.InBounds(spawn) {
		return nil, ErrOutOfBounds
	}
	return t, nil
}

func (t *Track) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < t.Rows && p.Col >= 0 && p.Col < t.Cols
}

// FindWalls returns the cells holding a wall, optionally narrowed to
// one color (AnyColor matches all) and one active state.
func (t *Track) FindWalls(color int, state ActiveFilter) map[Point]bool {
	out := make(map[Point]bool)
	for r := 0; r < t.Rows; r++ {
		for c := 0; c < t.Cols; c++ {
			if t.Walls[r][c] == 0 {
				continue
			}
			if color != AnyColor && t.Colors[r][c] != color {
				continue
			}
			if state == OnlyActive && !t.Active[r][c] {
				continue
			}
			if state == OnlyInactive && t.Active[r][c] {
				continue
			}
			out[Point{r, c}] = true
		}
	}
	return out
}

// FindButtons returns the button cells, optionally narrowed to one color.
func (t *Track) FindButtons(color int) map[Point]bool {
	out := make(map[Point]bool)
	for r := 0; r < t.Rows; r++ {
		for c := 0; c < t.Cols; c++ {
			if !t.Buttons[r][c] {
				continue
			}
			if color != AnyColor && t.Colors[r][c] != color {
				continue
			}
			out[Point{r, c}] = true
		}
	}
	return out
}

// TraversableCells returns every cell a runner may currently occupy:
// cells without a wall, and cells whose wall is deactivated. Buttons
// are always traversable.
func (t *Track) TraversableCells() map[Point]bool {
	out := make(map[Point]bool)
	for r := 0; r < t.Rows; r++ {
		for c := 0; c < t.Cols; c++ {
			if t.Walls[r][c] == 0 || !t.Active[r][c] {
				out[Point{r, c}] = true
			}
		}
	}
	return out
}

// Toggle flips the active flag of every wall of the given color,
// whatever its current state.
func (t *Track) Toggle(color int) {
	for p := range t.FindWalls(color, AnyState) {
		t.Active[p.Row][p.Col] = !t.Active[p.Row][p.Col]
	}
}

// GridCoord maps a canvas pixel to its cell. The caller must have
// checked that the pixel lies inside the canvas; no clamping happens
// here.
func (t *Track) GridCoord(x, y float64) Point {
	w := float64(t.ScreenW) / float64(t.Cols)
	h := float64(t.ScreenH) / float64(t.Rows)
	return Point{Row: int(y / h), Col: int(x / w)}
}

// Clone returns a deep copy sharing no layer storage with t.
func (t *Track) Clone() *Track {
	c := *t
	c.Walls = cloneInts(t.Walls)
	c.Active = cloneBools(t.Active)
	c.Buttons = cloneBools(t.Buttons)
	c.Colors = cloneInts(t.Colors)
	return &c
}

func cloneInts(src [][]int) [][]int {
	out := make([][]int, len(src))
	for i, row := range src {
		out[i] = append([]int(nil), row...)
	}
	return out
}

func cloneBools(src [][]bool) [][]bool {
	out := make([][]bool, len(src))
	for i, row := range src {
		out[i] = append([]bool(nil), row...)
	}
	return out
}
