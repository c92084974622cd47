// Package render rasterizes a track into an RGBA image. The image is
// a pure function of the track fields and the requested size, so two
// renders of the same state are byte-identical.
package render

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/zucenko/racetrack/model"
)

func hexRGBA(u uint32) color.RGBA {
	return color.RGBA{
		R: uint8(0xff & (u >> 16)),
		G: uint8(0xff & (u >> 8)),
		B: uint8(0xff & u),
		A: 0xff,
	}
}

// Palette is the fixed color scheme shared by walls and buttons.
// Index 0 doubles as the eraser color in the builder.
var Palette = []color.RGBA{
	hexRGBA(0xffffff),
	hexRGBA(0x000000),
	hexRGBA(0xd20000),
	hexRGBA(0xde9f00),
	hexRGBA(0x00ae00),
	hexRGBA(0x0000cd),
	hexRGBA(0x8b008b),
	hexRGBA(0x739f9f),
}

var (
	white      = hexRGBA(0xffffff)
	black      = hexRGBA(0x000000)
	starGold   = hexRGBA(0xedbc1e)
	spawnGreen = hexRGBA(0x278b00)
	buttonGray = hexRGBA(0xa4a4a4)
)

const borderWidth = 2

func paletteColor(i int) color.RGBA {
	if i < 0 || i >= len(Palette) {
		return Palette[0]
	}
	return Palette[i]
}

// Track draws the whole grid, cell by cell in row-major order. Active
// walls are filled rectangles, deactivated walls outlined ones,
// buttons filled circles, the target a star and the spawn a triangle
// overlay. Every cell ends with a 2px black border.
func Track(t *model.Track, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fillRect(img, 0, 0, width, height, white)

	w := float64(width) / float64(t.Cols)
	h := float64(height) / float64(t.Rows)

	for row := 0; row < t.Rows; row++ {
		for col := 0; col < t.Cols; col++ {
			x, y := float64(col)*w, float64(row)*h
			cw, ch := int(w+1), int(h+1)
			cellColor := paletteColor(t.Colors[row][col])
			here := model.Point{Row: row, Col: col}

			switch {
			case t.Walls[row][col] != 0:
				if t.Active[row][col] {
					fillRect(img, int(x), int(y), cw, ch, cellColor)
				} else {
					strokeRect(img, int(x), int(y), cw, ch, int(0.2*w), cellColor)
				}
			case t.Buttons[row][col]:
				fillCircle(img, x+w/2, y+h/2, 0.4*math.Min(w, h), cellColor)
			case here == t.Target:
				drawStar(img, x+0.1*w, y+0.1*h, 0.8*w, 0.8*h, starGold)
			}
			if here == t.Spawn {
				drawTriangle(img, x+0.1*w, y+0.1*h, 0.8*w, 0.8*h, spawnGreen)
			}
			strokeRect(img, int(x), int(y), cw, ch, borderWidth, black)
		}
	}
	return img
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	b := img.Bounds()
	for py := y; py < y+h; py++ {
		if py < b.Min.Y || py >= b.Max.Y {
			continue
		}
		for px := x; px < x+w; px++ {
			if px < b.Min.X || px >= b.Max.X {
				continue
			}
			img.SetRGBA(px, py, c)
		}
	}
}

// strokeRect draws a border of the given thickness just inside the
// rectangle, the way pygame draws an unfilled rect.
func strokeRect(img *image.RGBA, x, y, w, h, thickness int, c color.RGBA) {
	if thickness < 1 {
		thickness = 1
	}
	fillRect(img, x, y, w, thickness, c)
	fillRect(img, x, y+h-thickness, w, thickness, c)
	fillRect(img, x, y, thickness, h, c)
	fillRect(img, x+w-thickness, y, thickness, h, c)
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.RGBA) {
	for py := int(cy - r); py <= int(cy+r)+1; py++ {
		for px := int(cx - r); px <= int(cx+r)+1; px++ {
			dx := float64(px) + 0.5 - cx
			dy := float64(py) + 0.5 - cy
			if dx*dx+dy*dy <= r*r {
				setClipped(img, px, py, c)
			}
		}
	}
}

// fillPolygon rasterizes a closed polygon with an even-odd scanline
// sweep sampled at pixel centers.
func fillPolygon(img *image.RGBA, xs, ys []float64, c color.RGBA) {
	if len(xs) < 3 || len(xs) != len(ys) {
		return
	}
	minY, maxY := ys[0], ys[0]
	for _, y := range ys {
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	for py := int(minY); py <= int(maxY)+1; py++ {
		sy := float64(py) + 0.5
		var crossings []float64
		for i := range xs {
			j := (i + 1) % len(xs)
			y0, y1 := ys[i], ys[j]
			if (y0 <= sy) == (y1 <= sy) {
				continue
			}
			x := xs[i] + (sy-y0)/(y1-y0)*(xs[j]-xs[i])
			crossings = append(crossings, x)
		}
		sort.Float64s(crossings)
		for k := 0; k+1 < len(crossings); k += 2 {
			for px := int(crossings[k] + 0.5); float64(px)+0.5 <= crossings[k+1]; px++ {
				setClipped(img, px, py, c)
			}
		}
	}
}

func setClipped(img *image.RGBA, x, y int, c color.RGBA) {
	b := img.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return
	}
	img.SetRGBA(x, y, c)
}

// drawStar draws a five-point star filling the given box.
func drawStar(img *image.RGBA, x, y, w, h float64, c color.RGBA) {
	cx, cy := x+w/2, y+h/2
	outerX, outerY := w/2, h/2
	const inner = 0.42
	xs := make([]float64, 10)
	ys := make([]float64, 10)
	for i := 0; i < 10; i++ {
		a := -math.Pi/2 + float64(i)*math.Pi/5
		rx, ry := outerX, outerY
		if i%2 == 1 {
			rx, ry = outerX*inner, outerY*inner
		}
		xs[i] = cx + rx*math.Cos(a)
		ys[i] = cy + ry*math.Sin(a)
	}
	fillPolygon(img, xs, ys, c)
}

// drawTriangle draws the upward spawn triangle filling the given box.
func drawTriangle(img *image.RGBA, x, y, w, h float64, c color.RGBA) {
	xs := []float64{x + w/2, x + w, x}
	ys := []float64{y, y + h, y + h}
	fillPolygon(img, xs, ys, c)
}
