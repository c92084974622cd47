package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Kind is the tool selected in the sidebar.
type Kind int

const (
	KindWall Kind = iota
	KindButton
	KindTarget
	KindSpawn
)

func (k Kind) Name() string {
	switch k {
	case KindWall:
		return "WALL"
	case KindButton:
		return "BUTTON"
	case KindTarget:
		return "TARGET"
	case KindSpawn:
		return "SPAWN"
	default:
		return fmt.Sprintf("N/A(%d)", k)
	}
}

// Button is one clickable sidebar tile.
type Button struct {
	X, Y          int
	Width, Height int
	Image         *ebiten.Image
}

func (b *Button) Inside(x, y int) bool {
	return b.X < x && x < b.X+b.Width && b.Y < y && y < b.Y+b.Height
}

func (b *Button) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(b.X), float64(b.Y))
	screen.DrawImage(b.Image, op)
}
