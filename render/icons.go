package render

import "image"

// Icon builders for the builder sidebar. They reuse the cell drawing
// primitives so the sidebar previews what lands on the track.

// StarIcon draws the target marker on a white tile.
func StarIcon(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillRect(img, 0, 0, w, h, white)
	drawStar(img, 0.1*float64(w), 0.1*float64(h), 0.8*float64(w), 0.8*float64(h), starGold)
	return img
}

// SpawnIcon draws the spawn marker on a white tile.
func SpawnIcon(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillRect(img, 0, 0, w, h, white)
	drawTriangle(img, 0.1*float64(w), 0.1*float64(h), 0.8*float64(w), 0.8*float64(h), spawnGreen)
	return img
}

// ButtonIcon draws the toggle-button marker on a white tile.
func ButtonIcon(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillRect(img, 0, 0, w, h, white)
	fillCircle(img, float64(w)/2, float64(h)/2, 0.35*float64(min(w, h)), buttonGray)
	return img
}

// Swatch is a solid tile of the given palette color.
func Swatch(w, h, colorIndex int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillRect(img, 0, 0, w, h, paletteColor(colorIndex))
	return img
}

// FrameRing draws a black annulus, the texture behind the 9-slice
// selection frame.
func FrameRing(size, thickness int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	outer := c
	inner := c - float64(thickness)
	for py := 0; py < size; py++ {
		for px := 0; px < size; px++ {
			dx := float64(px) + 0.5 - c
			dy := float64(py) + 0.5 - c
			d := dx*dx + dy*dy
			if d <= outer*outer && d >= inner*inner {
				img.SetRGBA(px, py, black)
			}
		}
	}
	return img
}
