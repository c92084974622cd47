package model

// Blank returns an empty track: no walls, no buttons, every cell
// active, spawn in the top-left corner and target in the bottom-right.
func Blank(rows, cols, screenW, screenH int) *Track {
	walls := make([][]int, rows)
	active := make([][]bool, rows)
	buttons := make([][]bool, rows)
	colors := make([][]int, rows)
	for r := 0; r < rows; r++ {
		walls[r] = make([]int, cols)
		active[r] = make([]bool, cols)
		buttons[r] = make([]bool, cols)
		colors[r] = make([]int, cols)
		for c := 0; c < cols; c++ {
			active[r][c] = true
		}
	}
	t, err := New(walls, active, buttons, colors,
		Point{rows - 1, cols - 1}, Point{0, 0}, screenW, screenH)
	if err != nil {
		panic(err)
	}
	return t
}

// PaintWall places a wall of the given color at p, or erases the cell
// when color is 0. A cell is never wall and button at once, so any
// button here is cleared.
func (t *Track) PaintWall(p Point, color int, active bool) {
	if !t.InBounds(p) {
		return
	}
	if color == 0 {
		t.Walls[p.Row][p.Col] = 0
		t.Active[p.Row][p.Col] = true
	} else {
		t.Walls[p.Row][p.Col] = color
		t.Active[p.Row][p.Col] = active
	}
	t.Colors[p.Row][p.Col] = color
	t.Buttons[p.Row][p.Col] = false
}

// PaintButton places a toggle button of the given color at p, or
// erases the cell when color is 0. Any wall here is cleared.
func (t *Track) PaintButton(p Point, color int) {
	if !t.InBounds(p) {
		return
	}
	t.Buttons[p.Row][p.Col] = color != 0
	t.Walls[p.Row][p.Col] = 0
	t.Colors[p.Row][p.Col] = color
	t.Active[p.Row][p.Col] = true
}

// PlaceTarget moves the target to p and clears whatever occupied the
// cell.
func (t *Track) PlaceTarget(p Point) {
	if !t.InBounds(p) {
		return
	}
	t.clearCell(p)
	t.Target = p
}

// PlaceSpawn moves the spawn to p and clears whatever occupied the
// cell.
func (t *Track) PlaceSpawn(p Point) {
	if !t.InBounds(p) {
		return
	}
	t.clearCell(p)
	t.Spawn = p
}

func (t *Track) clearCell(p Point) {
	t.Walls[p.Row][p.Col] = 0
	t.Buttons[p.Row][p.Col] = false
	t.Colors[p.Row][p.Col] = 0
	t.Active[p.Row][p.Col] = true
}

// BrushCells lists the in-bounds cells of the square brush of the
// given size centered on p, row-major. Size 1 is just p itself.
func (t *Track) BrushCells(p Point, size int) []Point {
	if size < 1 {
		size = 1
	}
	out := make([]Point, 0, (2*size-1)*(2*size-1))
	for r := p.Row - size + 1; r < p.Row+size; r++ {
		for c := p.Col - size + 1; c < p.Col+size; c++ {
			q := Point{r, c}
			if t.InBounds(q) {
				out = append(out, q)
			}
		}
	}
	return out
}
