package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/zucenko/racetrack/render"
)

// Nine draws a stretchable frame from a 9-sliced ring texture. The
// sidebar uses it to highlight the selected color and tool.
type Nine struct {
	images              *ebiten.Image
	alpha               float64
	R, G, B, Scale      float64
	positions           [4][2]int
	x, y, width, height int
	scaleCenterWidth    float64
	scaleCenterHeight   float64
	targetPositions     [4][2]float64
}

// NewSelectionFrame builds a Nine over a procedurally drawn ring, so
// no image asset ships with the builder.
func NewSelectionFrame() *Nine {
	ring := ebiten.NewImageFromImage(render.FrameRing(112, 18))
	return &Nine{
		images: ring,
		alpha:  1,
		R:      1, G: 1, B: 1, Scale: .2,
		positions: [4][2]int{{0, 0}, {56, 56}, {57, 57}, {112, 112}},
	}
}

func (n *Nine) SetPosition(x, y int) {
	n.x = x
	n.y = y
	n.SetSize(n.width, n.height)
}

func (n *Nine) SetSize(width, height int) {
	n.width = width
	n.height = height
	n.targetPositions[0][0] = float64(n.x)
	n.targetPositions[0][1] = float64(n.y)

	n.targetPositions[1][0] = float64(n.x) + n.Scale*float64(n.positions[1][0])
	n.targetPositions[1][1] = float64(n.y) + n.Scale*float64(n.positions[1][1])

	n.targetPositions[2][0] = float64(n.x+n.width) - n.Scale*float64(n.positions[3][0]-n.positions[2][0])
	n.targetPositions[2][1] = float64(n.y+n.height) - n.Scale*float64(n.positions[3][1]-n.positions[2][1])

	innerWidth := n.targetPositions[2][0] - n.targetPositions[1][0]
	innerHigh := n.targetPositions[2][1] - n.targetPositions[1][1]

	n.scaleCenterWidth = innerWidth / float64(n.positions[2][0]-n.positions[1][0])
	n.scaleCenterHeight = innerHigh / float64(n.positions[2][1]-n.positions[1][1])
}

func (n *Nine) slice(x0, y0, x1, y1 int) *ebiten.Image {
	return n.images.SubImage(image.Rect(x0, y0, x1, y1)).(*ebiten.Image)
}

func (n *Nine) draw(screen *ebiten.Image, sx, sy, tx, ty float64, x0, y0, x1, y1 int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(tx, ty)
	op.ColorScale.Scale(float32(n.R), float32(n.G), float32(n.B), float32(n.alpha))
	screen.DrawImage(n.slice(x0, y0, x1, y1), op)
}

func (n *Nine) Draw(screen *ebiten.Image) {
	p, t := n.positions, n.targetPositions

	n.draw(screen, n.Scale, n.Scale, t[0][0], t[0][1], p[0][0], p[0][1], p[1][0], p[1][1])
	n.draw(screen, n.scaleCenterWidth, n.Scale, t[1][0], t[0][1], p[1][0], p[0][1], p[2][0], p[1][1])
	n.draw(screen, n.Scale, n.Scale, t[2][0], t[0][1], p[2][0], p[0][1], p[3][0], p[1][1])

	n.draw(screen, n.Scale, n.scaleCenterHeight, t[0][0], t[1][1], p[0][0], p[1][1], p[1][0], p[2][1])
	n.draw(screen, n.scaleCenterWidth, n.scaleCenterHeight, t[1][0], t[1][1], p[1][0], p[1][1], p[2][0], p[2][1])
	n.draw(screen, n.Scale, n.scaleCenterHeight, t[2][0], t[1][1], p[2][0], p[1][1], p[3][0], p[2][1])

	n.draw(screen, n.Scale, n.Scale, t[0][0], t[2][1], p[0][0], p[2][1], p[1][0], p[3][1])
	n.draw(screen, n.scaleCenterWidth, n.Scale, t[1][0], t[2][1], p[1][0], p[2][1], p[2][0], p[3][1])
	n.draw(screen, n.Scale, n.Scale, t[2][0], t[2][1], p[2][0], p[2][1], p[3][0], p[3][1])
}
