package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func layers(rows, cols int) ([][]int, [][]bool, [][]bool, [][]int) {
	walls := make([][]int, rows)
	active := make([][]bool, rows)
	buttons := make([][]bool, rows)
	colors := make([][]int, rows)
	for r := 0; r < rows; r++ {
		walls[r] = make([]int, cols)
		active[r] = make([]bool, cols)
		buttons[r] = make([]bool, cols)
		colors[r] = make([]int, cols)
	}
	return walls, active, buttons, colors
}

func TestNewShapeMismatch(t *testing.T) {
	walls, _, buttons, colors := layers(5, 5)
	_, active, _, _ := layers(5, 4)

	_, err := New(walls, active, buttons, colors, Point{0, 0}, Point{0, 0}, 100, 100)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	// ragged row
	walls2, active2, buttons2, colors2 := layers(3, 3)
	walls2[1] = walls2[1][:2]
	_, err = New(walls2, active2, buttons2, colors2, Point{0, 0}, Point{0, 0}, 100, 100)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestNewOutOfBounds(t *testing.T) {
	walls, active, buttons, colors := layers(3, 3)
	_, err := New(walls, active, buttons, colors, Point{3, 0}, Point{0, 0}, 100, 100)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = New(walls, active, buttons, colors, Point{0, 0}, Point{0, -1}, 100, 100)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestBlankDefaults(t *testing.T) {
	track := Blank(15, 10, 600, 900)

	assert.Equal(t, Point{14, 9}, track.Target)
	assert.Equal(t, Point{0, 0}, track.Spawn)
	assert.Equal(t, 15, track.Rows)
	assert.Equal(t, 10, track.Cols)
	assert.Empty(t, track.FindWalls(AnyColor, AnyState))
	assert.Empty(t, track.FindButtons(AnyColor))
	assert.Len(t, track.TraversableCells(), 150)
}

func TestPaintWallAndFind(t *testing.T) {
	track := Blank(15, 10, 600, 900)
	track.PaintWall(Point{2, 3}, 1, true)

	assert.Equal(t, map[Point]bool{{2, 3}: true}, track.FindWalls(1, AnyState))
	assert.Empty(t, track.FindWalls(2, AnyState))
	assert.Equal(t, map[Point]bool{{2, 3}: true}, track.FindWalls(AnyColor, OnlyActive))
	assert.Empty(t, track.FindWalls(AnyColor, OnlyInactive))

	safe := track.TraversableCells()
	assert.False(t, safe[Point{2, 3}])
	assert.Len(t, safe, 149)
}

func TestToggle(t *testing.T) {
	track := Blank(15, 10, 600, 900)
	track.PaintWall(Point{2, 3}, 1, true)
	track.PaintWall(Point{5, 5}, 2, true)

	track.Toggle(1)

	assert.True(t, track.TraversableCells()[Point{2, 3}])
	assert.False(t, track.TraversableCells()[Point{5, 5}], "other colors keep their state")
	assert.Equal(t, map[Point]bool{{2, 3}: true}, track.FindWalls(1, OnlyInactive))

	// toggling twice restores the original state
	track.Toggle(1)
	assert.False(t, track.TraversableCells()[Point{2, 3}])
	assert.Equal(t, map[Point]bool{{2, 3}: true}, track.FindWalls(1, OnlyActive))
}

func TestToggleFlipsBothDirectionsAtOnce(t *testing.T) {
	track := Blank(4, 4, 100, 100)
	track.PaintWall(Point{0, 1}, 3, true)
	track.PaintWall(Point{1, 1}, 3, false)

	track.Toggle(3)

	assert.False(t, track.Active[0][1])
	assert.True(t, track.Active[1][1])
}

func TestTraversableProperties(t *testing.T) {
	track := Blank(6, 6, 120, 120)
	track.PaintWall(Point{1, 1}, 2, true)
	track.PaintWall(Point{2, 2}, 4, false)
	track.PaintButton(Point{3, 3}, 5)

	safe := track.TraversableCells()

	for p := range track.FindButtons(AnyColor) {
		assert.True(t, safe[p], "buttons are always traversable")
	}
	assert.True(t, safe[Point{2, 2}], "deactivated walls are walkable")
	for p := range track.FindWalls(AnyColor, OnlyActive) {
		assert.False(t, safe[p], "active walls block")
	}
	assert.Len(t, safe, 35)
}

func TestFindButtonsByColor(t *testing.T) {
	track := Blank(4, 4, 100, 100)
	track.PaintButton(Point{0, 0}, 5)
	track.PaintButton(Point{1, 2}, 6)

	assert.Equal(t, map[Point]bool{{0, 0}: true}, track.FindButtons(5))
	assert.Len(t, track.FindButtons(AnyColor), 2)
	assert.Empty(t, track.FindButtons(3))
}

func TestPaintExclusivity(t *testing.T) {
	track := Blank(4, 4, 100, 100)
	p := Point{1, 1}

	track.PaintWall(p, 2, true)
	track.PaintButton(p, 3)
	assert.Zero(t, track.Walls[1][1], "button painting clears the wall")
	assert.True(t, track.Buttons[1][1])
	assert.Equal(t, 3, track.Colors[1][1])

	track.PaintWall(p, 4, false)
	assert.False(t, track.Buttons[1][1], "wall painting clears the button")
	assert.Equal(t, 4, track.Walls[1][1])
	assert.False(t, track.Active[1][1])

	track.PaintWall(p, 0, true)
	assert.Zero(t, track.Walls[1][1], "color 0 erases")
	assert.Zero(t, track.Colors[1][1])
	assert.True(t, track.Active[1][1])
}

func TestPlaceTargetAndSpawnClearCell(t *testing.T) {
	track := Blank(4, 4, 100, 100)
	track.PaintWall(Point{2, 2}, 2, true)
	track.PaintButton(Point{3, 1}, 5)

	track.PlaceTarget(Point{2, 2})
	assert.Equal(t, Point{2, 2}, track.Target)
	assert.Zero(t, track.Walls[2][2])
	assert.True(t, track.Active[2][2])

	track.PlaceSpawn(Point{3, 1})
	assert.Equal(t, Point{3, 1}, track.Spawn)
	assert.False(t, track.Buttons[3][1])
	assert.Zero(t, track.Colors[3][1])
}

func TestPaintIgnoresOutOfBounds(t *testing.T) {
	track := Blank(4, 4, 100, 100)
	before := track.Clone()

	track.PaintWall(Point{-1, 0}, 2, true)
	track.PaintButton(Point{0, 4}, 2)
	track.PlaceTarget(Point{9, 9})

	assert.Equal(t, before, track)
}

func TestGridCoord(t *testing.T) {
	track := Blank(15, 10, 600, 900)

	cases := []struct {
		x, y float64
		want Point
	}{
		{0, 0, Point{0, 0}},
		{59, 59, Point{0, 0}},
		{60, 0, Point{0, 1}},
		{0, 60, Point{1, 0}},
		{599, 899, Point{14, 9}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, track.GridCoord(c.x, c.y), "pixel (%v,%v)", c.x, c.y)
	}
}

func TestBrushCells(t *testing.T) {
	track := Blank(5, 5, 100, 100)

	assert.Equal(t, []Point{{2, 2}}, track.BrushCells(Point{2, 2}, 1))
	assert.Len(t, track.BrushCells(Point{2, 2}, 2), 9)

	corner := track.BrushCells(Point{0, 0}, 2)
	assert.ElementsMatch(t, []Point{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, corner)

	assert.Equal(t, []Point{{4, 4}}, track.BrushCells(Point{4, 4}, 0), "size clamps to 1")
}

func TestClone(t *testing.T) {
	track := Blank(4, 4, 100, 100)
	track.PaintWall(Point{1, 1}, 2, true)

	clone := track.Clone()
	require.Equal(t, track, clone)

	clone.PaintWall(Point{1, 1}, 0, true)
	clone.PlaceSpawn(Point{2, 2})

	assert.Equal(t, 2, track.Walls[1][1], "clone mutations do not leak back")
	assert.Equal(t, Point{0, 0}, track.Spawn)
}
